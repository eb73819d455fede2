package usecase

import (
	"context"
	"errors"
	"log"
	"time"

	"crewmatch/internal/domain/candidate"
	"crewmatch/internal/domain/job"
	"crewmatch/internal/domain/scoring"
	"crewmatch/internal/repository"

	"github.com/google/uuid"
)

type JobSearchParams struct {
	Limit    int
	Offset   int
	MinScore int
}

// JobSearchItem is one scored listing in a candidate's search result. The
// heuristic FitScore/MatchType pair never carries agent-pipeline scores;
// those travel through AgentSearchItem instead.
type JobSearchItem struct {
	JobID          uuid.UUID
	Title          string
	Vessel         string
	PrimaryRegion  string
	ContractType   string
	SalaryMin      *int
	SalaryMax      *int
	SalaryCurrency string
	IsUrgent       bool
	PostedAt       *time.Time
	FitScore       int
	MatchType      string
}

type JobSearchUsecase interface {
	Search(ctx context.Context, userID uuid.UUID, params JobSearchParams) ([]JobSearchItem, error)
}

type JobSearch struct {
	candidates repository.CandidateRepository
	jobs       repository.JobRepository
	cache      SearchCache
	logger     *log.Logger
}

func NewJobSearchUsecase(candidates repository.CandidateRepository, jobs repository.JobRepository, cache SearchCache, logger *log.Logger) *JobSearch {
	return &JobSearch{candidates: candidates, jobs: jobs, cache: cache, logger: logger}
}

func (u *JobSearch) Search(ctx context.Context, userID uuid.UUID, params JobSearchParams) ([]JobSearchItem, error) {
	if userID == uuid.Nil {
		return nil, ErrUnauthorized
	}

	limit := params.Limit
	if limit <= 0 {
		limit = 20
	}
	if limit > 50 {
		limit = 50
	}
	offset := params.Offset
	if offset < 0 {
		return nil, ErrInvalidInput
	}
	minScore := params.MinScore
	if minScore < 0 {
		minScore = 0
	}
	params = JobSearchParams{Limit: limit, Offset: offset, MinScore: minScore}

	profile, err := u.candidates.GetProfileByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, ErrInternal
	}

	cacheKey := JobSearchCacheKey(userID, profile.UpdatedAt, params)
	lockKey := JobSearchLockKey(cacheKey)

	if u.cache != nil {
		var cached []JobSearchItem
		hit, err := u.cache.GetJSON(ctx, cacheKey, &cached)
		if err == nil && hit {
			if u.logger != nil {
				u.logger.Printf("[Search] Cache HIT: %s", cacheKey)
			}
			return cached, nil
		}
		if u.logger != nil {
			u.logger.Printf("[Search] Cache MISS: %s", cacheKey)
		}
	}

	lockAcquired := false
	if u.cache != nil {
		ok, err := u.cache.SetIfNotExists(ctx, lockKey, "1", 30*time.Second)
		if err == nil && ok {
			lockAcquired = true
		} else if err == nil && !ok {
			// Another request is computing the same page; give it a
			// moment and fall back to computing ourselves.
			time.Sleep(300 * time.Millisecond)
			var cached []JobSearchItem
			hit, err2 := u.cache.GetJSON(ctx, cacheKey, &cached)
			if err2 == nil && hit {
				if u.logger != nil {
					u.logger.Printf("[Search] Cache HIT after lock wait: %s", cacheKey)
				}
				return cached, nil
			}
		}
	}

	listings, err := u.jobs.ListOpenListings(ctx, limit, offset)
	if err != nil {
		return nil, ErrInternal
	}

	scorer := scoring.NewScorer(profileToEngine(profile))

	items := make([]JobSearchItem, 0, len(listings))
	rankInput := make([]scoring.RankedItem, 0, len(listings))
	for _, l := range listings {
		res := scorer.Score(listingToEngine(l))
		if res.Score < minScore {
			continue
		}

		rankInput = append(rankInput, scoring.RankedItem{
			OriginalIndex: len(items),
			IsUrgent:      l.IsUrgent,
			Score:         res.Score,
		})
		items = append(items, JobSearchItem{
			JobID:          l.ID,
			Title:          l.Title,
			Vessel:         strFromPtr(l.Vessel),
			PrimaryRegion:  strFromPtr(l.PrimaryRegion),
			ContractType:   strFromPtr(l.ContractType),
			SalaryMin:      l.SalaryMin,
			SalaryMax:      l.SalaryMax,
			SalaryCurrency: strFromPtr(l.SalaryCurrency),
			IsUrgent:       l.IsUrgent,
			PostedAt:       l.PostedAt,
			FitScore:       res.Score,
			MatchType:      string(res.MatchLevel),
		})
	}

	ranked := scoring.Rank(rankInput)
	ordered := make([]JobSearchItem, 0, len(items))
	for _, it := range ranked {
		if it.OriginalIndex < 0 || it.OriginalIndex >= len(items) {
			continue
		}
		ordered = append(ordered, items[it.OriginalIndex])
	}

	if u.cache != nil {
		_ = u.cache.SetJSON(ctx, cacheKey, ordered, 0)
		if u.logger != nil {
			u.logger.Printf("[Search] Cache SET: %s", cacheKey)
		}
		if lockAcquired {
			_ = u.cache.Delete(ctx, lockKey)
		}
	}

	return ordered, nil
}

// profileToEngine strips persistence concerns off a stored profile and
// hands the scoring engine its value-type view.
func profileToEngine(p candidate.Profile) scoring.Candidate {
	return scoring.Candidate{
		PrimaryPosition:        strFromPtr(p.PrimaryPosition),
		SecondaryPositions:     p.SecondaryPositions,
		PositionsHeld:          p.PositionsHeld,
		PositionCategory:       strFromPtr(p.PositionCategory),
		PreferredRegions:       p.PreferredRegions,
		PreferredContractTypes: p.PreferredContractTypes,
		DesiredSalaryMin:       p.DesiredSalaryMin,
	}
}

func listingToEngine(l job.Listing) scoring.Job {
	return scoring.Job{
		Title:         l.Title,
		PrimaryRegion: strFromPtr(l.PrimaryRegion),
		ContractType:  strFromPtr(l.ContractType),
		SalaryMin:     l.SalaryMin,
		SalaryMax:     l.SalaryMax,
	}
}

func strFromPtr(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
