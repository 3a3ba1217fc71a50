package reservation

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/avlok/LMS-LodgeService/internal/domain"
	"github.com/avlok/LMS-LodgeService/pkg/dbmetrics"
	"github.com/avlok/LMS-LodgeService/pkg/psqlbuilder"
)

// Repository provides access to reservations and their room allocations.
// A reservation row owns its reservation_rooms rows; both are written
// together and the caller is expected to run Create inside a transaction.
type Repository struct {
	db DBExecutor
}

// NewRepository creates a reservation repository.
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

var reservationColumns = []string{
	"id",
	"reference",
	"user_id",
	"guest_count",
	"guest_type",
	"check_in",
	"check_out",
	"status",
	"total_cents",
	"notes",
	"cancellation_reason",
	"cancelled_at",
	"created_at",
	"updated_at",
}

// Create inserts a reservation together with its room allocations.
// Run inside a transaction when availability was checked beforehand, so the
// check and the insert are atomic.
func (r *Repository) Create(ctx context.Context, res *domain.Reservation) (*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("reservations").
		Columns(
			"reference",
			"user_id",
			"guest_count",
			"guest_type",
			"check_in",
			"check_out",
			"status",
			"total_cents",
			"notes",
		).
		Values(
			res.Reference,
			res.UserID,
			res.GuestCount,
			res.GuestType,
			res.CheckIn,
			res.CheckOut,
			res.Status,
			res.TotalCents,
			res.Notes,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&res.ID,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	res.CreatedAt = createdAt.Time
	res.UpdatedAt = updatedAt.Time

	for i := range res.Rooms {
		alloc := &res.Rooms[i]

		query, args, err := psqlbuilder.Insert("reservation_rooms").
			Columns(
				"id",
				"reservation_id",
				"room_id",
				"room_number",
				"room_type",
				"capacity",
				"nightly_tariff_cents",
				"guest_count",
			).
			Values(
				alloc.ID,
				res.ID,
				alloc.RoomID,
				alloc.RoomNumber,
				alloc.RoomType,
				alloc.Capacity,
				alloc.NightlyTariff,
				alloc.GuestCount,
			).
			ToSql()
		if err != nil {
			return nil, fmt.Errorf("%w: Create - build allocation insert: %v", ErrBuildQuery, err)
		}

		if _, err := executor.ExecContext(ctx, query, args...); err != nil {
			return nil, fmt.Errorf("%w: Create - insert allocation: %v", ErrExecQuery, err)
		}
	}

	return res, nil
}

// GetByID returns a reservation with its room allocations.
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(reservationColumns...).
		From("reservations").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	res, err := r.scanReservationRow(executor.QueryRowContext(ctx, query, args...))
	if err != nil {
		return nil, err
	}

	rooms, err := r.loadAllocations(ctx, []int64{res.ID})
	if err != nil {
		return nil, err
	}
	res.Rooms = rooms[res.ID]

	return res, nil
}

// ListWithFilter returns reservations matching the filter.
//
// Filtering:
//   - RoomType restricts to stays that include at least one room of the type
//   - Status selects one status; otherwise inactive stays are excluded
//     unless IncludeInactive is set
//   - From/To select stays overlapping the half-open window [From, To)
func (r *Repository) ListWithFilter(ctx context.Context, filter domain.ReservationFilter) ([]*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(reservationColumns...).
		From("reservations").
		OrderBy("check_in ASC, id ASC")

	if filter.RoomType != nil {
		selectBuilder = selectBuilder.Where(squirrel.Expr(
			`EXISTS (
				SELECT 1 FROM reservation_rooms rr
				WHERE rr.reservation_id = reservations.id AND rr.room_type = ?
			)`, *filter.RoomType))
	}

	if filter.From != nil {
		selectBuilder = selectBuilder.Where(squirrel.Gt{"check_out": *filter.From})
	}
	if filter.To != nil {
		selectBuilder = selectBuilder.Where(squirrel.Lt{"check_in": *filter.To})
	}

	if filter.Status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": *filter.Status})
	} else if !filter.IncludeInactive {
		inactive := make([]string, len(domain.InactiveStatuses))
		for i, s := range domain.InactiveStatuses {
			inactive[i] = string(s)
		}
		selectBuilder = selectBuilder.Where(squirrel.NotEq{"status": inactive})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListWithFilter - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListWithFilter - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	reservations, err := r.scanReservations(rows)
	if err != nil {
		return nil, err
	}

	return r.attachAllocations(ctx, reservations)
}

// GetOverlapping returns active reservations holding any of the given rooms
// in the half-open range [checkIn, checkOut). Inside a transaction the rows
// are locked with FOR UPDATE so a concurrent creation cannot slip between
// the check and the insert.
func (r *Repository) GetOverlapping(ctx context.Context, roomIDs []int64, checkIn, checkOut time.Time) ([]*domain.Reservation, error) {
	if len(roomIDs) == 0 {
		return []*domain.Reservation{}, nil
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	inactive := make([]string, len(domain.InactiveStatuses))
	for i, s := range domain.InactiveStatuses {
		inactive[i] = string(s)
	}

	selectBuilder := psqlbuilder.Select(reservationColumns...).
		From("reservations").
		Where(squirrel.Expr(
			`EXISTS (
				SELECT 1 FROM reservation_rooms rr
				WHERE rr.reservation_id = reservations.id AND rr.room_id = ANY(?)
			)`, pq.Array(roomIDs))).
		Where(squirrel.NotEq{"status": inactive}).
		Where(squirrel.Lt{"check_in": checkOut}).
		Where(squirrel.Gt{"check_out": checkIn}).
		OrderBy("id ASC")

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetOverlapping - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetOverlapping - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	reservations, err := r.scanReservations(rows)
	if err != nil {
		return nil, err
	}

	return r.attachAllocations(ctx, reservations)
}

// UpdateStatus moves a reservation from one status to another. The update is
// guarded on the expected current status, so a transition raced by another
// writer matches no row and fails with ErrStatusConflict instead of
// overwriting the newer state.
func (r *Repository) UpdateStatus(ctx context.Context, id int64, from, to domain.ReservationStatus) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("reservations").
		Set("status", to).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id, "status": from}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return r.classifyMissedUpdate(ctx, id)
	}

	return nil
}

// Cancel marks a reservation cancelled with a reason. The update only matches
// rows still in a cancellable status, so cancelling a stay that checked in (or
// was already cancelled) concurrently fails with ErrStatusConflict.
func (r *Repository) Cancel(ctx context.Context, id int64, reason string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	cancellable := make([]string, len(domain.CancellableStatuses))
	for i, s := range domain.CancellableStatuses {
		cancellable[i] = string(s)
	}

	query, args, err := psqlbuilder.Update("reservations").
		Set("status", domain.StatusCancelled).
		Set("cancellation_reason", reason).
		Set("cancelled_at", squirrel.Expr("NOW()")).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		Where(squirrel.Eq{"status": cancellable}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Cancel - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Cancel - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Cancel - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return r.classifyMissedUpdate(ctx, id)
	}

	return nil
}

// classifyMissedUpdate distinguishes "no such reservation" from "the status
// guard did not match" after a guarded update touched zero rows.
func (r *Repository) classifyMissedUpdate(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("1").
		From("reservations").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: classifyMissedUpdate - build select query: %v", ErrBuildQuery, err)
	}

	var one int
	err = executor.QueryRowContext(ctx, query, args...).Scan(&one)
	if err == sql.ErrNoRows {
		return ErrReservationNotFound
	}
	if err != nil {
		return fmt.Errorf("%w: classifyMissedUpdate - execute select: %v", ErrExecQuery, err)
	}

	return ErrStatusConflict
}

// Helper methods

func (r *Repository) attachAllocations(ctx context.Context, reservations []*domain.Reservation) ([]*domain.Reservation, error) {
	if len(reservations) == 0 {
		return reservations, nil
	}

	ids := make([]int64, len(reservations))
	for i, res := range reservations {
		ids[i] = res.ID
	}

	rooms, err := r.loadAllocations(ctx, ids)
	if err != nil {
		return nil, err
	}

	for _, res := range reservations {
		res.Rooms = rooms[res.ID]
	}

	return reservations, nil
}

func (r *Repository) loadAllocations(ctx context.Context, reservationIDs []int64) (map[int64][]domain.RoomAllocation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"reservation_id",
		"room_id",
		"room_number",
		"room_type",
		"capacity",
		"nightly_tariff_cents",
		"guest_count",
	).
		From("reservation_rooms").
		Where(squirrel.Eq{"reservation_id": reservationIDs}).
		OrderBy("room_number ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: loadAllocations - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: loadAllocations - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	result := make(map[int64][]domain.RoomAllocation)

	for rows.Next() {
		var alloc domain.RoomAllocation
		var reservationID int64

		err := rows.Scan(
			&alloc.ID,
			&reservationID,
			&alloc.RoomID,
			&alloc.RoomNumber,
			&alloc.RoomType,
			&alloc.Capacity,
			&alloc.NightlyTariff,
			&alloc.GuestCount,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: loadAllocations - scan row: %v", ErrScanRow, err)
		}

		result[reservationID] = append(result[reservationID], alloc)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: loadAllocations - rows error: %v", ErrScanRow, err)
	}

	return result, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func (r *Repository) scanReservationRow(row rowScanner) (*domain.Reservation, error) {
	var res domain.Reservation
	var cancelledAt, createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&res.ID,
		&res.Reference,
		&res.UserID,
		&res.GuestCount,
		&res.GuestType,
		&res.CheckIn,
		&res.CheckOut,
		&res.Status,
		&res.TotalCents,
		&res.Notes,
		&res.CancellationReason,
		&cancelledAt,
		&createdAt,
		&updatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, ErrReservationNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: scanReservationRow - scan reservation: %v", ErrScanRow, err)
	}

	if cancelledAt.Valid {
		res.CancelledAt = &cancelledAt.Time
	}
	res.CreatedAt = createdAt.Time
	res.UpdatedAt = updatedAt.Time

	return &res, nil
}

func (r *Repository) scanReservations(rows *sql.Rows) ([]*domain.Reservation, error) {
	reservations := make([]*domain.Reservation, 0)

	for rows.Next() {
		res, err := r.scanReservationRow(rows)
		if err != nil {
			return nil, err
		}
		reservations = append(reservations, res)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanReservations - rows error: %v", ErrScanRow, err)
	}

	return reservations, nil
}
