package reservations

import (
	"context"
	"errors"
	"fmt"

	"github.com/avlok/LMS-LodgeService/internal/domain"
	reservationRepo "github.com/avlok/LMS-LodgeService/internal/infra/storage/reservation"
	"github.com/avlok/LMS-LodgeService/internal/service/reservations/models"
)

// Service manages the reservation lifecycle after creation: lookups,
// listings, status transitions, and cancellation.
type Service struct {
	repo         ReservationRepository
	timeProvider TimeProvider
	logger       Logger
}

// NewService creates the reservation lifecycle service.
func NewService(repo ReservationRepository, timeProvider TimeProvider, logger Logger) *Service {
	return &Service{
		repo:         repo,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// GetByID fetches a reservation. A user may only see their own reservation.
func (s *Service) GetByID(ctx context.Context, id int64, userID int64) (*models.ReservationResponse, error) {
	s.logger.Info("GetByID: fetching reservation id=%d for user=%d", id, userID)

	reservation, err := s.fetch(ctx, id)
	if err != nil {
		return nil, err
	}

	if reservation.UserID != userID {
		s.logger.Warn("GetByID: access denied for user=%d to reservation id=%d", userID, id)
		return nil, ErrAccessDenied
	}

	return models.FromDomainReservation(reservation), nil
}

// List returns reservations matching the filter. Cancelled and checked-out
// stays are excluded unless the filter opts in.
func (s *Service) List(ctx context.Context, req *models.ListReservationsRequest) ([]*models.ReservationResponse, error) {
	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("List: invalid status filter: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidStatus, err)
	}

	reservations, err := s.repo.ListWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: fetched %d reservations", len(reservations))
	return models.FromDomainReservations(reservations), nil
}

// Cancel cancels a reservation on behalf of its owner. Only tentative holds
// and confirmed bookings can be cancelled; a stay that already checked in
// must run its course.
func (s *Service) Cancel(ctx context.Context, id int64, req *models.CancelReservationRequest) (*models.ReservationResponse, error) {
	s.logger.Info("Cancel: cancelling reservation id=%d for user=%d", id, req.UserID)

	if len(req.CancellationReason) > domain.MaxCancellationReasonLength {
		return nil, fmt.Errorf("%w: cancellation reason must not exceed %d characters",
			ErrInvalidInput, domain.MaxCancellationReasonLength)
	}

	reservation, err := s.fetch(ctx, id)
	if err != nil {
		return nil, err
	}

	if reservation.UserID != req.UserID {
		s.logger.Warn("Cancel: access denied for user=%d to reservation id=%d", req.UserID, id)
		return nil, ErrAccessDenied
	}

	if !reservation.CanBeCancelled() {
		s.logger.Warn("Cancel: reservation id=%d in status %s cannot be cancelled", id, reservation.Status)
		return nil, ErrCannotCancel
	}

	if err := s.repo.Cancel(ctx, id, req.CancellationReason); err != nil {
		if errors.Is(err, reservationRepo.ErrStatusConflict) {
			s.logger.Warn("Cancel: reservation id=%d left the cancellable statuses concurrently", id)
			return nil, ErrCannotCancel
		}
		s.logger.Error("Cancel: repository error for reservation id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	now := s.timeProvider.Now()
	reservation.Status = domain.StatusCancelled
	reservation.CancellationReason = &req.CancellationReason
	reservation.CancelledAt = &now
	reservation.UpdatedAt = now

	s.logger.Info("Cancel: reservation id=%d cancelled", id)
	return models.FromDomainReservation(reservation), nil
}

// UpdateStatus moves a reservation along its lifecycle. Legacy status names
// are accepted and normalized. Cancellation goes through Cancel, which
// records the reason; it is rejected here.
func (s *Service) UpdateStatus(ctx context.Context, id int64, req *models.UpdateStatusRequest) (*models.ReservationResponse, error) {
	s.logger.Info("UpdateStatus: reservation id=%d -> %s", id, req.Status)

	target, err := domain.NormalizeStatus(req.Status)
	if err != nil {
		s.logger.Warn("UpdateStatus: unknown status %q for reservation id=%d", req.Status, id)
		return nil, fmt.Errorf("%w: %q", ErrInvalidStatus, req.Status)
	}

	if target == domain.StatusCancelled {
		return nil, fmt.Errorf("%w: use the cancellation endpoint to cancel", ErrInvalidTransition)
	}

	reservation, err := s.fetch(ctx, id)
	if err != nil {
		return nil, err
	}

	if !reservation.CanTransitionTo(target) {
		s.logger.Warn("UpdateStatus: reservation id=%d cannot move %s -> %s", id, reservation.Status, target)
		return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, reservation.Status, target)
	}

	if err := s.repo.UpdateStatus(ctx, id, reservation.Status, target); err != nil {
		if errors.Is(err, reservationRepo.ErrStatusConflict) {
			s.logger.Warn("UpdateStatus: reservation id=%d moved off %s concurrently", id, reservation.Status)
			return nil, fmt.Errorf("%w: reservation changed concurrently", ErrInvalidTransition)
		}
		s.logger.Error("UpdateStatus: repository error for reservation id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
	}

	reservation.Status = target
	reservation.UpdatedAt = s.timeProvider.Now()

	s.logger.Info("UpdateStatus: reservation id=%d now %s", id, target)
	return models.FromDomainReservation(reservation), nil
}

func (s *Service) fetch(ctx context.Context, id int64) (*domain.Reservation, error) {
	reservation, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			s.logger.Warn("reservation id=%d not found", id)
			return nil, ErrReservationNotFound
		}
		s.logger.Error("repository error for reservation id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: repository error: %v", ErrInternal, err)
	}
	return reservation, nil
}
