package dto

import (
	"time"

	"crewmatch/internal/domain/candidate"

	"github.com/google/uuid"
)

type UpdateProfileRequest struct {
	PrimaryPosition    string   `json:"primary_position" validate:"required,max=120"`
	SecondaryPositions []string `json:"secondary_positions" validate:"max=10,dive,max=120"`
	PositionsHeld      []string `json:"positions_held" validate:"max=20,dive,max=120"`
	PreferredRegions   string   `json:"preferred_regions" validate:"max=500"`
	ContractTypes      string   `json:"contract_types" validate:"max=200"`
	DesiredSalary      string   `json:"desired_salary" validate:"max=100"`
	SalaryCurrency     string   `json:"salary_currency" validate:"omitempty,len=3,alpha"`
}

type ProfileResponse struct {
	ID                     uuid.UUID `json:"id"`
	PrimaryPosition        string    `json:"primary_position,omitempty"`
	SecondaryPositions     []string  `json:"secondary_positions,omitempty"`
	PositionsHeld          []string  `json:"positions_held,omitempty"`
	PositionCategory       string    `json:"position_category,omitempty"`
	PreferredRegions       []string  `json:"preferred_regions,omitempty"`
	PreferredContractTypes []string  `json:"preferred_contract_types,omitempty"`
	DesiredSalaryMin       *int      `json:"desired_salary_min,omitempty"`
	DesiredSalaryMax       *int      `json:"desired_salary_max,omitempty"`
	SalaryCurrency         string    `json:"salary_currency,omitempty"`
	UpdatedAt              string    `json:"updated_at,omitempty"`
}

func ProfileResponseFrom(p candidate.Profile) ProfileResponse {
	out := ProfileResponse{
		ID:                     p.ID,
		SecondaryPositions:     p.SecondaryPositions,
		PositionsHeld:          p.PositionsHeld,
		PreferredRegions:       p.PreferredRegions,
		PreferredContractTypes: p.PreferredContractTypes,
		DesiredSalaryMin:       p.DesiredSalaryMin,
		DesiredSalaryMax:       p.DesiredSalaryMax,
	}
	if p.PrimaryPosition != nil {
		out.PrimaryPosition = *p.PrimaryPosition
	}
	if p.PositionCategory != nil {
		out.PositionCategory = *p.PositionCategory
	}
	if p.SalaryCurrency != nil {
		out.SalaryCurrency = *p.SalaryCurrency
	}
	if !p.UpdatedAt.IsZero() {
		out.UpdatedAt = p.UpdatedAt.UTC().Format(time.RFC3339)
	}
	return out
}
