package generate_allocations

import (
	"context"
	"time"

	"github.com/avlok/LMS-LodgeService/internal/domain"
)

// RoomRepository is the room inventory read contract.
type RoomRepository interface {
	ListAvailable(ctx context.Context, checkIn, checkOut time.Time) ([]domain.Room, error)
}

// Logger is the logging contract.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
