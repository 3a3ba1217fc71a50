package get_available_rooms

import (
	"errors"
	"net/http"

	"github.com/avlok/LMS-LodgeService/internal/api/handlers"
	getAvailableRooms "github.com/avlok/LMS-LodgeService/internal/usecase/get_available_rooms"
)

const (
	msgInvalidQuery     = "invalid query parameters, expected checkIn/checkOut as YYYY-MM-DD, guestCount, guestType"
	msgInvalidStayRange = "check-out date must be after check-in date"
)

type Handler struct {
	useCase GetAvailableRoomsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableRoomsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/rooms/available
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	params := queryParams{
		CheckIn:    query.Get("checkIn"),
		CheckOut:   query.Get("checkOut"),
		GuestCount: query.Get("guestCount"),
		GuestType:  query.Get("guestType"),
	}

	useCaseReq, err := params.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("GET /rooms/available - Failed to parse query: %v", err)
		handlers.RespondBadRequest(w, msgInvalidQuery)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, getAvailableRooms.ErrInvalidStayRange):
			handlers.RespondBadRequest(w, msgInvalidStayRange)

		case errors.Is(err, getAvailableRooms.ErrInvalidInput):
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("GET /rooms/available - Failed to list rooms: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
