package calendar

import (
	"context"
	"fmt"
	"time"

	"github.com/avlok/LMS-LodgeService/internal/domain"
)

// RoomRepository is the room read contract for calendar queries.
type RoomRepository interface {
	List(ctx context.Context, roomType *string) ([]domain.Room, error)
}

// ReservationRepository is the reservation read contract for calendar
// queries.
type ReservationRepository interface {
	ListWithFilter(ctx context.Context, filter domain.ReservationFilter) ([]*domain.Reservation, error)
}

// Logger is the logging contract.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// EventsRequest scopes a calendar query.
type EventsRequest struct {
	From     *time.Time
	To       *time.Time
	RoomType string // "" or "all" means every room type
	Status   string // "" or "all" means every status, including inactive
}

// EventsResponse is one calendar page of rooms and events.
type EventsResponse struct {
	Rooms  []domain.Room
	Events []domain.CalendarEvent
}

// Service answers calendar queries straight from the repositories.
type Service struct {
	roomRepo        RoomRepository
	reservationRepo ReservationRepository
	logger          Logger
}

// NewService creates the calendar service.
func NewService(roomRepo RoomRepository, reservationRepo ReservationRepository, logger Logger) *Service {
	return &Service{
		roomRepo:        roomRepo,
		reservationRepo: reservationRepo,
		logger:          logger,
	}
}

// Events returns the rooms and reservation events for the requested window
// and filters. The calendar shows every lifecycle state, cancelled and
// checked-out included, so the listing opts into inactive stays.
func (s *Service) Events(ctx context.Context, req *EventsRequest) (*EventsResponse, error) {
	var roomType *string
	if req.RoomType != "" && req.RoomType != domain.FilterAll {
		roomType = &req.RoomType
	}

	rooms, err := s.roomRepo.List(ctx, roomType)
	if err != nil {
		s.logger.Error("Events: failed to list rooms: %v", err)
		return nil, fmt.Errorf("calendar: list rooms: %w", err)
	}

	filter := domain.ReservationFilter{
		RoomType:        roomType,
		From:            req.From,
		To:              req.To,
		IncludeInactive: true,
	}
	if req.Status != "" && req.Status != domain.FilterAll {
		status, err := domain.NormalizeStatus(req.Status)
		if err != nil {
			s.logger.Warn("Events: unknown status filter %q", req.Status)
			return nil, err
		}
		filter.Status = &status
	}

	reservations, err := s.reservationRepo.ListWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("Events: failed to list reservations: %v", err)
		return nil, fmt.Errorf("calendar: list reservations: %w", err)
	}

	s.logger.Info("Events: %d rooms, %d reservations", len(rooms), len(reservations))

	return &EventsResponse{
		Rooms:  rooms,
		Events: Project(reservations),
	}, nil
}
