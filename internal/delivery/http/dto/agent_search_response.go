package dto

import "github.com/google/uuid"

// AgentSearchItemResponse deliberately names its score fields final_score and
// vector_score so clients never confuse the AI pipeline's numbers with the
// heuristic fit_score.
type AgentSearchItemResponse struct {
	JobID          uuid.UUID `json:"job_id"`
	Title          string    `json:"title"`
	Vessel         string    `json:"vessel,omitempty"`
	PrimaryRegion  string    `json:"primary_region,omitempty"`
	ContractType   string    `json:"contract_type,omitempty"`
	SalaryMin      *int      `json:"salary_min,omitempty"`
	SalaryMax      *int      `json:"salary_max,omitempty"`
	SalaryCurrency string    `json:"salary_currency,omitempty"`
	IsUrgent       bool      `json:"is_urgent"`
	PostedDate     string    `json:"posted_date,omitempty"`
	FinalScore     float64   `json:"final_score"`
	VectorScore    float64   `json:"vector_score"`
	Explanation    string    `json:"explanation,omitempty"`
}
