package get_calendar_events

import (
	"errors"
	"net/http"

	"github.com/avlok/LMS-LodgeService/internal/api/handlers"
	"github.com/avlok/LMS-LodgeService/internal/domain"
)

const (
	msgInvalidQuery  = "invalid query parameters, expected from/to as YYYY-MM-DD"
	msgInvalidStatus = "unknown reservation status"
)

type Handler struct {
	service CalendarService
	logger  Logger
}

func NewHandler(service CalendarService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/calendar/events
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	params := queryParams{
		From:     query.Get("from"),
		To:       query.Get("to"),
		RoomType: query.Get("roomType"),
		Status:   query.Get("status"),
	}

	serviceReq, err := params.ToServiceRequest()
	if err != nil {
		h.logger.Warn("GET /calendar/events - Failed to parse query: %v", err)
		handlers.RespondBadRequest(w, msgInvalidQuery)
		return
	}

	result, err := h.service.Events(r.Context(), serviceReq)
	if err != nil {
		if errors.Is(err, domain.ErrUnknownStatus) {
			handlers.RespondBadRequest(w, msgInvalidStatus)
			return
		}
		h.logger.Error("GET /calendar/events - Failed: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromServiceResponse(result))
}
