package usecase

import (
	"context"
	"errors"

	"crewmatch/internal/domain/scoring"
	"crewmatch/internal/repository"

	"github.com/google/uuid"
)

// FitResult carries the per-pair verdict plus the sought-position set it
// was resolved against, so consumers can explain the match.
type FitResult struct {
	Score           int
	MatchType       string
	SoughtPositions []string
}

type JobFitUsecase interface {
	CalculateFit(ctx context.Context, userID, jobID uuid.UUID) (FitResult, error)
}

type JobFit struct {
	candidates repository.CandidateRepository
	jobs       repository.JobRepository
}

func NewJobFitUsecase(candidates repository.CandidateRepository, jobs repository.JobRepository) *JobFit {
	return &JobFit{candidates: candidates, jobs: jobs}
}

func (u *JobFit) CalculateFit(ctx context.Context, userID, jobID uuid.UUID) (FitResult, error) {
	if userID == uuid.Nil {
		return FitResult{}, ErrUnauthorized
	}
	if jobID == uuid.Nil {
		return FitResult{}, ErrJobNotFound
	}

	listing, err := u.jobs.GetByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, repository.ErrJobNotFound) {
			return FitResult{}, ErrJobNotFound
		}
		return FitResult{}, ErrInternal
	}

	profile, err := u.candidates.GetProfileByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return FitResult{}, ErrProfileNotFound
		}
		return FitResult{}, ErrInternal
	}

	scorer := scoring.NewScorer(profileToEngine(profile))
	res := scorer.Score(listingToEngine(listing))

	return FitResult{
		Score:           res.Score,
		MatchType:       string(res.MatchLevel),
		SoughtPositions: scorer.SoughtPositions(),
	}, nil
}
