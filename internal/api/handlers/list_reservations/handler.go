package list_reservations

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/avlok/LMS-LodgeService/internal/api/handlers"
	"github.com/avlok/LMS-LodgeService/internal/domain"
	"github.com/avlok/LMS-LodgeService/internal/service/reservations"
	"github.com/avlok/LMS-LodgeService/internal/service/reservations/models"
)

const (
	msgInvalidQuery  = "invalid query parameters, expected from/to as YYYY-MM-DD"
	msgInvalidStatus = "unknown reservation status"
)

type Handler struct {
	service ReservationService
	logger  Logger
}

func NewHandler(service ReservationService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/reservations
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	req, err := parseQuery(r)
	if err != nil {
		h.logger.Warn("GET /reservations - Failed to parse query: %v", err)
		handlers.RespondBadRequest(w, msgInvalidQuery)
		return
	}

	result, err := h.service.List(r.Context(), req)
	if err != nil {
		if errors.Is(err, reservations.ErrInvalidStatus) {
			handlers.RespondBadRequest(w, msgInvalidStatus)
			return
		}
		h.logger.Error("GET /reservations - Failed: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

func parseQuery(r *http.Request) (*models.ListReservationsRequest, error) {
	query := r.URL.Query()
	req := &models.ListReservationsRequest{
		IncludeInactive: query.Get("includeInactive") == "true",
	}

	if roomType := query.Get("roomType"); roomType != "" {
		req.RoomType = &roomType
	}

	if status := query.Get("status"); status != "" {
		req.Status = &status
	}

	if raw := query.Get("from"); raw != "" {
		from, err := time.Parse(domain.DateFormat, raw)
		if err != nil {
			return nil, fmt.Errorf("parse from: %w", err)
		}
		req.From = &from
	}

	if raw := query.Get("to"); raw != "" {
		to, err := time.Parse(domain.DateFormat, raw)
		if err != nil {
			return nil, fmt.Errorf("parse to: %w", err)
		}
		req.To = &to
	}

	return req, nil
}
