package scoring

// Candidate is the scoring-relevant slice of a candidate profile. Empty
// and nil fields are "no signal" and only reduce score contributions.
type Candidate struct {
	PrimaryPosition        string
	SecondaryPositions     []string
	PositionsHeld          []string
	PositionCategory       string
	PreferredRegions       []string
	PreferredContractTypes []string
	DesiredSalaryMin       *int
}

// Job is the scoring-relevant slice of a job listing.
type Job struct {
	Title         string
	PrimaryRegion string
	ContractType  string
	SalaryMin     *int
	SalaryMax     *int
}

type MatchLevel string

const (
	MatchExact   MatchLevel = "exact"
	MatchRelated MatchLevel = "related"
	MatchNone    MatchLevel = "none"
)

// MatchResult is the per-pair output: an integer fit score in 0..100 and
// the discrete match tier behind its role component.
type MatchResult struct {
	Score      int
	MatchLevel MatchLevel
}
