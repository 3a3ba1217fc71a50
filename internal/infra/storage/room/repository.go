package room

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/avlok/LMS-LodgeService/internal/domain"
	"github.com/avlok/LMS-LodgeService/pkg/dbmetrics"
	"github.com/avlok/LMS-LodgeService/pkg/psqlbuilder"
)

// Repository provides access to the room inventory.
type Repository struct {
	db DBExecutor
}

// NewRepository creates a room repository.
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

var roomColumns = []string{
	"id",
	"number",
	"room_type",
	"capacity",
	"nightly_tariff_cents",
	"created_at",
	"updated_at",
}

// ListAvailable returns rooms without an overlapping active reservation in
// the half-open range [checkIn, checkOut). Back-to-back check-out and
// check-in on the same date is not a conflict. An empty result is valid;
// any query failure surfaces as a wrapped repository error so callers can
// distinguish "no rooms" from "query failed".
func (r *Repository) ListAvailable(ctx context.Context, checkIn, checkOut time.Time) ([]domain.Room, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	// Overlap is half-open: existing.check_in < requested.check_out AND
	// existing.check_out > requested.check_in.
	args := make([]interface{}, 0, len(domain.ActiveStatuses)+2)
	placeholders := ""
	for i, s := range domain.ActiveStatuses {
		if i > 0 {
			placeholders += ", "
		}
		placeholders += "?"
		args = append(args, string(s))
	}
	args = append(args, checkOut, checkIn)

	overlapExpr := `NOT EXISTS (
		SELECT 1
		FROM reservation_rooms rr
		JOIN reservations res ON res.id = rr.reservation_id
		WHERE rr.room_id = rooms.id
		  AND res.status IN (` + placeholders + `)
		  AND res.check_in < ?
		  AND res.check_out > ?
	)`

	selectBuilder := psqlbuilder.Select(roomColumns...).
		From("rooms").
		Where(squirrel.GtOrEq{"capacity": 1}).
		Where(squirrel.Expr(overlapExpr, args...)).
		OrderBy("number ASC")

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListAvailable - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListAvailable - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanRooms(rows)
}

// GetByID returns a single room.
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Room, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(roomColumns...).
		From("rooms").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var room domain.Room
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&room.ID,
		&room.Number,
		&room.Type,
		&room.Capacity,
		&room.NightlyTariff,
		&createdAt,
		&updatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, ErrRoomNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan room: %v", ErrScanRow, err)
	}

	room.CreatedAt = createdAt.Time
	room.UpdatedAt = updatedAt.Time

	return &room, nil
}

// GetByIDs returns the rooms for the given ids, ordered by number.
// Missing ids are simply absent from the result; the caller decides whether
// that is an error.
func (r *Repository) GetByIDs(ctx context.Context, ids []int64) ([]domain.Room, error) {
	if len(ids) == 0 {
		return []domain.Room{}, nil
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(roomColumns...).
		From("rooms").
		Where(squirrel.Eq{"id": ids}).
		OrderBy("number ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByIDs - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByIDs - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanRooms(rows)
}

// List returns all rooms, optionally restricted to one room type.
func (r *Repository) List(ctx context.Context, roomType *string) ([]domain.Room, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(roomColumns...).
		From("rooms").
		OrderBy("number ASC")

	if roomType != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"room_type": *roomType})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanRooms(rows)
}

func (r *Repository) scanRooms(rows *sql.Rows) ([]domain.Room, error) {
	rooms := make([]domain.Room, 0)

	for rows.Next() {
		var room domain.Room
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&room.ID,
			&room.Number,
			&room.Type,
			&room.Capacity,
			&room.NightlyTariff,
			&createdAt,
			&updatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: scanRooms - scan row: %v", ErrScanRow, err)
		}

		room.CreatedAt = createdAt.Time
		room.UpdatedAt = updatedAt.Time

		rooms = append(rooms, room)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanRooms - rows error: %v", ErrScanRow, err)
	}

	return rooms, nil
}
