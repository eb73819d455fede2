package scoring

import "strings"

// Score weights. Additive, capped at 100; absent data contributes 0,
// never a penalty.
const (
	exactWeight    = 50
	relatedWeight  = 35
	regionWeight   = 25
	contractWeight = 15
	salaryWeight   = 10
)

// Scorer scores jobs against a single candidate. The sought-position set
// is built once at construction and reused across the batch.
type Scorer struct {
	candidate Candidate
	sought    []string
}

func NewScorer(c Candidate) *Scorer {
	return &Scorer{candidate: c, sought: SoughtPositions(c)}
}

// SoughtPositions exposes the candidate's derived sought set in its stable
// display order.
func (s *Scorer) SoughtPositions() []string {
	return s.sought
}

func (s *Scorer) Score(j Job) MatchResult {
	level := ResolveMatchLevel(j.Title, s.sought, s.candidate.PositionCategory)

	score := 0
	switch level {
	case MatchExact:
		score += exactWeight
	case MatchRelated:
		score += relatedWeight
	}

	if regionMatches(j.PrimaryRegion, s.candidate.PreferredRegions) {
		score += regionWeight
	}
	if contractMatches(j.ContractType, s.candidate.PreferredContractTypes) {
		score += contractWeight
	}
	if salaryFits(j.SalaryMax, s.candidate.DesiredSalaryMin) {
		score += salaryWeight
	}

	if score > 100 {
		score = 100
	}
	return MatchResult{Score: score, MatchLevel: level}
}

// Score computes the fit of a single candidate/job pair.
func Score(j Job, c Candidate) MatchResult {
	return NewScorer(c).Score(j)
}

func regionMatches(jobRegion string, preferred []string) bool {
	jr := strings.ToLower(strings.TrimSpace(jobRegion))
	if jr == "" {
		return false
	}
	for _, p := range preferred {
		pr := strings.ToLower(strings.TrimSpace(p))
		if pr == "" {
			continue
		}
		if strings.Contains(pr, jr) || strings.Contains(jr, pr) {
			return true
		}
	}
	return false
}

func contractMatches(jobContract string, preferred []string) bool {
	jc := strings.TrimSpace(jobContract)
	if jc == "" {
		return false
	}
	for _, p := range preferred {
		if strings.TrimSpace(p) == jc {
			return true
		}
	}
	return false
}

// salaryFits passes only when both sides state a number and the job's
// ceiling reaches the candidate's floor. A job with no stated maximum
// neither gains nor loses these points.
func salaryFits(salaryMax, desiredMin *int) bool {
	if desiredMin == nil || salaryMax == nil {
		return false
	}
	return *salaryMax >= *desiredMin
}
