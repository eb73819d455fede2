package usecase

import (
	"context"
	"errors"
	"strings"

	"crewmatch/internal/domain/candidate"
	"crewmatch/internal/domain/scoring"
	"crewmatch/internal/parse"
	"crewmatch/internal/repository"

	"github.com/google/uuid"
)

// ProfileInput mirrors the free-text profile form: salary and contract
// preferences arrive as typed text and are normalized before persistence.
type ProfileInput struct {
	PrimaryPosition    string
	SecondaryPositions []string
	PositionsHeld      []string
	PreferredRegions   string
	ContractTypes      string
	DesiredSalary      string
	SalaryCurrency     string
}

type CandidateProfileUsecase interface {
	GetProfile(ctx context.Context, userID uuid.UUID) (candidate.Profile, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, in ProfileInput) (candidate.Profile, error)
}

type CandidateProfile struct {
	candidates repository.CandidateRepository
}

func NewCandidateProfileUsecase(candidates repository.CandidateRepository) *CandidateProfile {
	return &CandidateProfile{candidates: candidates}
}

func (u *CandidateProfile) GetProfile(ctx context.Context, userID uuid.UUID) (candidate.Profile, error) {
	if userID == uuid.Nil {
		return candidate.Profile{}, ErrUnauthorized
	}

	p, err := u.candidates.GetProfileByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return candidate.Profile{}, ErrProfileNotFound
		}
		return candidate.Profile{}, ErrInternal
	}
	return p, nil
}

func (u *CandidateProfile) UpdateProfile(ctx context.Context, userID uuid.UUID, in ProfileInput) (candidate.Profile, error) {
	if userID == uuid.Nil {
		return candidate.Profile{}, ErrUnauthorized
	}

	p := candidate.Profile{UserID: userID}

	existing, err := u.candidates.GetProfileByUserID(ctx, userID)
	switch {
	case err == nil:
		p.ID = existing.ID
	case errors.Is(err, repository.ErrProfileNotFound):
		p.ID = uuid.New()
	default:
		return candidate.Profile{}, ErrInternal
	}

	primary := strings.TrimSpace(in.PrimaryPosition)
	if primary != "" {
		p.PrimaryPosition = &primary
		if category := scoring.ClassifyCategory(primary); category != "" {
			p.PositionCategory = &category
		}
	}

	p.SecondaryPositions = trimList(in.SecondaryPositions)
	p.PositionsHeld = trimList(in.PositionsHeld)
	p.PreferredRegions = parse.CommaList(in.PreferredRegions)
	p.PreferredContractTypes = parse.ContractTypes(in.ContractTypes)

	p.DesiredSalaryMin, p.DesiredSalaryMax = parse.SalaryRange(in.DesiredSalary)
	if currency := strings.TrimSpace(in.SalaryCurrency); currency != "" && p.DesiredSalaryMin != nil {
		p.SalaryCurrency = &currency
	}

	if err := u.candidates.UpsertProfile(ctx, p); err != nil {
		return candidate.Profile{}, ErrInternal
	}

	saved, err := u.candidates.GetProfileByUserID(ctx, userID)
	if err != nil {
		return candidate.Profile{}, ErrInternal
	}
	return saved, nil
}

func trimList(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		out = append(out, s)
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
