package usecase

import (
	"context"
	"strings"
	"time"

	"crewmatch/internal/infrastructure/agentsearch"
	"crewmatch/internal/repository"

	"github.com/google/uuid"
)

// AgentSearchItem is a listing scored by the external AI pipeline. Its
// FinalScore/VectorScore fields are the pipeline's own numbers, deliberately
// disjoint from the heuristic FitScore so the two are never conflated.
type AgentSearchItem struct {
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
	FinalScore     float64
	VectorScore    float64
	Explanation    string
}

type agentPipeline interface {
	Enabled() bool
	Search(ctx context.Context, query string, limit int) ([]agentsearch.Result, error)
}

type AgentSearchUsecase interface {
	Search(ctx context.Context, query string, limit int) ([]AgentSearchItem, error)
}

type AgentSearch struct {
	pipeline agentPipeline
	jobs     repository.JobRepository
}

func NewAgentSearchUsecase(pipeline agentPipeline, jobs repository.JobRepository) *AgentSearch {
	return &AgentSearch{pipeline: pipeline, jobs: jobs}
}

func (u *AgentSearch) Search(ctx context.Context, query string, limit int) ([]AgentSearchItem, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, ErrInvalidInput
	}
	if limit <= 0 {
		limit = 20
	}
	if limit > 50 {
		limit = 50
	}

	if u.pipeline == nil || !u.pipeline.Enabled() {
		return nil, ErrAgentSearchUnavailable
	}

	results, err := u.pipeline.Search(ctx, query, limit)
	if err != nil {
		return nil, ErrAgentSearchUnavailable
	}
	if len(results) == 0 {
		return []AgentSearchItem{}, nil
	}

	ids := make([]uuid.UUID, 0, len(results))
	for _, r := range results {
		if r.JobID == uuid.Nil {
			continue
		}
		ids = append(ids, r.JobID)
	}

	listings, err := u.jobs.ListByIDs(ctx, ids)
	if err != nil {
		return nil, ErrInternal
	}

	byID := make(map[uuid.UUID]int, len(listings))
	for i, l := range listings {
		byID[l.ID] = i
	}

	// Pipeline order is the ranking; listings it scored that we no longer
	// have (closed between search and hydration) are dropped.
	out := make([]AgentSearchItem, 0, len(results))
	for _, r := range results {
		idx, ok := byID[r.JobID]
		if !ok {
			continue
		}
		l := listings[idx]
		out = append(out, AgentSearchItem{
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
			FinalScore:     r.FinalScore,
			VectorScore:    r.VectorScore,
			Explanation:    r.Explanation,
		})
	}

	return out, nil
}
