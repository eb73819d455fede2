package usecase

import (
	"context"
	"errors"
	"testing"

	"crewmatch/internal/domain/job"
	"crewmatch/internal/infrastructure/agentsearch"

	"github.com/google/uuid"
)

type mockPipeline struct {
	enabled bool
	results []agentsearch.Result
	err     error
}

func (m mockPipeline) Enabled() bool { return m.enabled }

func (m mockPipeline) Search(_ context.Context, _ string, _ int) ([]agentsearch.Result, error) {
	return m.results, m.err
}

func TestAgentSearch_EmptyQuery(t *testing.T) {
	uc := NewAgentSearchUsecase(mockPipeline{enabled: true}, mockJobRepo{})
	_, err := uc.Search(context.Background(), "   ", 10)
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestAgentSearch_Disabled(t *testing.T) {
	uc := NewAgentSearchUsecase(mockPipeline{enabled: false}, mockJobRepo{})
	_, err := uc.Search(context.Background(), "chief stew med", 10)
	if !errors.Is(err, ErrAgentSearchUnavailable) {
		t.Fatalf("expected ErrAgentSearchUnavailable, got %v", err)
	}
}

func TestAgentSearch_PreservesPipelineOrder(t *testing.T) {
	idA := uuid.New()
	idB := uuid.New()
	idGone := uuid.New()

	pipeline := mockPipeline{
		enabled: true,
		results: []agentsearch.Result{
			{JobID: idB, FinalScore: 0.92, VectorScore: 0.88, Explanation: "strong interior match"},
			{JobID: idGone, FinalScore: 0.80, VectorScore: 0.79},
			{JobID: idA, FinalScore: 0.61, VectorScore: 0.70},
		},
	}
	jobs := mockJobRepo{listings: []job.Listing{
		{ID: idA, Title: "Stewardess", Status: job.StatusOpen},
		{ID: idB, Title: "Chief Stewardess", Status: job.StatusOpen},
	}}

	uc := NewAgentSearchUsecase(pipeline, jobs)
	items, err := uc.Search(context.Background(), "chief stew med", 10)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	if len(items) != 2 {
		t.Fatalf("expected 2 items (stale listing dropped), got %d", len(items))
	}
	if items[0].JobID != idB || items[1].JobID != idA {
		t.Fatalf("pipeline order not preserved: %v, %v", items[0].JobID, items[1].JobID)
	}
	if items[0].FinalScore != 0.92 || items[0].VectorScore != 0.88 {
		t.Fatalf("pipeline scores not carried: %+v", items[0])
	}
	if items[0].Explanation != "strong interior match" {
		t.Fatalf("explanation not carried: %q", items[0].Explanation)
	}
}

func TestAgentSearch_PipelineError(t *testing.T) {
	pipeline := mockPipeline{enabled: true, err: errors.New("upstream timeout")}
	uc := NewAgentSearchUsecase(pipeline, mockJobRepo{})
	_, err := uc.Search(context.Background(), "deckhand", 10)
	if !errors.Is(err, ErrAgentSearchUnavailable) {
		t.Fatalf("expected ErrAgentSearchUnavailable, got %v", err)
	}
}
