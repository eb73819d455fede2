package repository

import (
	"context"
	"database/sql"
	"errors"

	"crewmatch/internal/database"
	"crewmatch/internal/domain/candidate"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

var ErrProfileNotFound = errors.New("candidate profile not found")

type CandidateRepository interface {
	GetProfileByUserID(ctx context.Context, userID uuid.UUID) (candidate.Profile, error)
	UpsertProfile(ctx context.Context, p candidate.Profile) error
}

type PostgresCandidateRepository struct {
	db database.DB
}

func NewPostgresCandidateRepository(db database.DB) *PostgresCandidateRepository {
	return &PostgresCandidateRepository{db: db}
}

func (r *PostgresCandidateRepository) GetProfileByUserID(ctx context.Context, userID uuid.UUID) (candidate.Profile, error) {
	row := r.db.QueryRow(ctx,
		`SELECT id, user_id, primary_position, secondary_positions, positions_held,
		        position_category, preferred_regions, preferred_contract_types,
		        desired_salary_min, desired_salary_max, salary_currency,
		        created_at, updated_at
		 FROM candidate_profiles
		 WHERE user_id = $1`,
		userID,
	)

	var p candidate.Profile
	err := row.Scan(
		&p.ID, &p.UserID, &p.PrimaryPosition, &p.SecondaryPositions, &p.PositionsHeld,
		&p.PositionCategory, &p.PreferredRegions, &p.PreferredContractTypes,
		&p.DesiredSalaryMin, &p.DesiredSalaryMax, &p.SalaryCurrency,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) || errors.Is(err, pgx.ErrNoRows) {
			return candidate.Profile{}, ErrProfileNotFound
		}
		return candidate.Profile{}, err
	}
	return p, nil
}

func (r *PostgresCandidateRepository) UpsertProfile(ctx context.Context, p candidate.Profile) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO candidate_profiles (
		    id, user_id, primary_position, secondary_positions, positions_held,
		    position_category, preferred_regions, preferred_contract_types,
		    desired_salary_min, desired_salary_max, salary_currency
		 ) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		 ON CONFLICT (user_id) DO UPDATE SET
		    primary_position = EXCLUDED.primary_position,
		    secondary_positions = EXCLUDED.secondary_positions,
		    positions_held = EXCLUDED.positions_held,
		    position_category = EXCLUDED.position_category,
		    preferred_regions = EXCLUDED.preferred_regions,
		    preferred_contract_types = EXCLUDED.preferred_contract_types,
		    desired_salary_min = EXCLUDED.desired_salary_min,
		    desired_salary_max = EXCLUDED.desired_salary_max,
		    salary_currency = EXCLUDED.salary_currency,
		    updated_at = NOW()`,
		p.ID, p.UserID, p.PrimaryPosition, p.SecondaryPositions, p.PositionsHeld,
		p.PositionCategory, p.PreferredRegions, p.PreferredContractTypes,
		p.DesiredSalaryMin, p.DesiredSalaryMax, p.SalaryCurrency,
	)
	return err
}
