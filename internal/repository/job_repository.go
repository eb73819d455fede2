package repository

import (
	"context"
	"database/sql"
	"errors"

	"crewmatch/internal/database"
	"crewmatch/internal/domain/job"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

var ErrJobNotFound = errors.New("job not found")

type JobRepository interface {
	ExistsByID(ctx context.Context, jobID uuid.UUID) (bool, error)
	GetByID(ctx context.Context, jobID uuid.UUID) (job.Listing, error)
	ListOpenListings(ctx context.Context, limit, offset int) ([]job.Listing, error)
	ListByIDs(ctx context.Context, ids []uuid.UUID) ([]job.Listing, error)
}

type PostgresJobRepository struct {
	db database.DB
}

func NewPostgresJobRepository(db database.DB) *PostgresJobRepository {
	return &PostgresJobRepository{db: db}
}

func (r *PostgresJobRepository) ExistsByID(ctx context.Context, jobID uuid.UUID) (bool, error) {
	var exists bool
	row := r.db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM job_listings WHERE id = $1)`, jobID)
	if err := row.Scan(&exists); err != nil {
		if errors.Is(err, sql.ErrNoRows) || errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		return false, err
	}
	return exists, nil
}

const listingColumns = `id, COALESCE(title, ''), vessel, primary_region, contract_type,
	 salary_min, salary_max, salary_currency, COALESCE(is_urgent, FALSE),
	 COALESCE(status, 'open'), posted_at, created_at`

func (r *PostgresJobRepository) GetByID(ctx context.Context, jobID uuid.UUID) (job.Listing, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+listingColumns+` FROM job_listings WHERE id = $1`,
		jobID,
	)

	l, err := scanListing(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) || errors.Is(err, pgx.ErrNoRows) {
			return job.Listing{}, ErrJobNotFound
		}
		return job.Listing{}, err
	}
	return l, nil
}

func (r *PostgresJobRepository) ListOpenListings(ctx context.Context, limit, offset int) ([]job.Listing, error) {
	if limit <= 0 {
		limit = 20
	}
	if limit > 50 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}

	rows, err := r.db.Query(ctx,
		`SELECT `+listingColumns+`
		 FROM job_listings
		 WHERE status = 'open'
		 ORDER BY is_urgent DESC, posted_at DESC NULLS LAST, created_at DESC
		 LIMIT $1 OFFSET $2`,
		limit, offset,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectListings(rows)
}

func (r *PostgresJobRepository) ListByIDs(ctx context.Context, ids []uuid.UUID) ([]job.Listing, error) {
	if len(ids) == 0 {
		return []job.Listing{}, nil
	}

	rows, err := r.db.Query(ctx,
		`SELECT `+listingColumns+` FROM job_listings WHERE id = ANY($1)`,
		ids,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectListings(rows)
}

func collectListings(rows database.Rows) ([]job.Listing, error) {
	out := make([]job.Listing, 0)
	for rows.Next() {
		l, err := scanListing(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, l)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

type listingScanner interface {
	Scan(dest ...any) error
}

func scanListing(s listingScanner) (job.Listing, error) {
	var l job.Listing
	err := s.Scan(
		&l.ID, &l.Title, &l.Vessel, &l.PrimaryRegion, &l.ContractType,
		&l.SalaryMin, &l.SalaryMax, &l.SalaryCurrency, &l.IsUrgent,
		&l.Status, &l.PostedAt, &l.CreatedAt,
	)
	if err != nil {
		return job.Listing{}, err
	}
	return l, nil
}
