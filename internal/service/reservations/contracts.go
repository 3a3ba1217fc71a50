package reservations

import (
	"context"
	"time"

	"github.com/avlok/LMS-LodgeService/internal/domain"
)

// ReservationRepository is the reservation persistence contract.
type ReservationRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Reservation, error)
	ListWithFilter(ctx context.Context, filter domain.ReservationFilter) ([]*domain.Reservation, error)
	UpdateStatus(ctx context.Context, id int64, from, to domain.ReservationStatus) error
	Cancel(ctx context.Context, id int64, reason string) error
}

// TimeProvider abstracts the current time.
type TimeProvider interface {
	Now() time.Time
}

// Logger is the logging contract.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
