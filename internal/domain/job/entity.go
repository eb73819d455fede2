package job

import (
	"time"

	"github.com/google/uuid"
)

const (
	StatusOpen   = "open"
	StatusFilled = "filled"
	StatusClosed = "closed"
)

type Listing struct {
	ID             uuid.UUID
	Title          string
	Vessel         *string
	PrimaryRegion  *string
	ContractType   *string
	SalaryMin      *int
	SalaryMax      *int
	SalaryCurrency *string
	IsUrgent       bool
	Status         string
	PostedAt       *time.Time
	CreatedAt      time.Time
}
