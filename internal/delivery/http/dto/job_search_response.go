package dto

import "github.com/google/uuid"

type JobSearchItemResponse struct {
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
	FitScore       int       `json:"fit_score"`
	MatchType      string    `json:"match_type"`
}
