package candidate

import (
	"time"

	"github.com/google/uuid"
)

// Profile is a candidate's matching profile. Every list and pointer field
// may be absent; absence is "no signal" for the scoring engine, never an
// error.
type Profile struct {
	ID                     uuid.UUID
	UserID                 uuid.UUID
	PrimaryPosition        *string
	SecondaryPositions     []string
	PositionsHeld          []string
	PositionCategory       *string
	PreferredRegions       []string
	PreferredContractTypes []string
	DesiredSalaryMin       *int
	DesiredSalaryMax       *int
	SalaryCurrency         *string
	CreatedAt              time.Time
	UpdatedAt              time.Time
}
