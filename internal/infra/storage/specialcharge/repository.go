package specialcharge

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/avlok/LMS-LodgeService/internal/domain"
	"github.com/avlok/LMS-LodgeService/pkg/dbmetrics"
	"github.com/avlok/LMS-LodgeService/pkg/psqlbuilder"
)

// Reuse the dbmetrics executor interface for database access.
type DBExecutor = dbmetrics.DBExecutor

// Repository provides access to the special charge catalogue.
type Repository struct {
	db DBExecutor
}

// NewRepository creates a special charge repository.
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

var chargeColumns = []string{
	"id",
	"name",
	"rate_cents",
	"rate_type",
	"created_at",
	"updated_at",
}

// List returns the full charge catalogue ordered by name.
func (r *Repository) List(ctx context.Context) ([]domain.SpecialCharge, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(chargeColumns...).
		From("special_charges").
		OrderBy("name ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanCharges(rows)
}

// GetByIDs returns the charges for the given ids.
// ErrChargeNotFound is returned when any id is missing, so a quote can never
// silently drop a requested charge.
func (r *Repository) GetByIDs(ctx context.Context, ids []int64) ([]domain.SpecialCharge, error) {
	if len(ids) == 0 {
		return []domain.SpecialCharge{}, nil
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(chargeColumns...).
		From("special_charges").
		Where(squirrel.Eq{"id": ids}).
		OrderBy("name ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByIDs - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByIDs - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	charges, err := r.scanCharges(rows)
	if err != nil {
		return nil, err
	}

	if len(charges) != len(uniqueIDs(ids)) {
		return nil, ErrChargeNotFound
	}

	return charges, nil
}

func uniqueIDs(ids []int64) []int64 {
	seen := make(map[int64]struct{}, len(ids))
	unique := make([]int64, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		unique = append(unique, id)
	}
	return unique
}

func (r *Repository) scanCharges(rows *sql.Rows) ([]domain.SpecialCharge, error) {
	charges := make([]domain.SpecialCharge, 0)

	for rows.Next() {
		var charge domain.SpecialCharge
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&charge.ID,
			&charge.Name,
			&charge.Rate,
			&charge.RateType,
			&createdAt,
			&updatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: scanCharges - scan row: %v", ErrScanRow, err)
		}

		charge.CreatedAt = createdAt.Time
		charge.UpdatedAt = updatedAt.Time

		charges = append(charges, charge)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanCharges - rows error: %v", ErrScanRow, err)
	}

	return charges, nil
}
