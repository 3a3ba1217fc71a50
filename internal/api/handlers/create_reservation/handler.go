package create_reservation

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/avlok/LMS-LodgeService/internal/api/handlers"
	"github.com/avlok/LMS-LodgeService/internal/api/middleware"
	createReservation "github.com/avlok/LMS-LodgeService/internal/usecase/create_reservation"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidDate        = "invalid date format, expected YYYY-MM-DD"
	msgInvalidStayRange   = "check-out date must be after check-in date"
	msgRoomNotFound       = "room not found"
	msgChargeNotFound     = "special charge not found"
	msgRoomNotAvailable   = "one or more rooms are no longer available for the requested stay"
	msgUnauthorized       = "authentication required"
)

type Handler struct {
	useCase  CreateReservationUseCase
	validate *validator.Validate
	logger   Logger
}

func NewHandler(useCase CreateReservationUseCase, logger Logger) *Handler {
	return &Handler{
		useCase:  useCase,
		validate: validator.New(),
		logger:   logger,
	}
}

// Handle POST /api/v1/reservations
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		handlers.RespondError(w, http.StatusUnauthorized, msgUnauthorized)
		return
	}

	var req CreateReservationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /reservations - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if err := h.validate.Struct(&req); err != nil {
		h.logger.Warn("POST /reservations - Validation failed: user_id=%d, error=%v", userID, err)
		handlers.RespondBadRequest(w, validationMessage(err))
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(userID)
	if err != nil {
		h.logger.Warn("POST /reservations - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createReservation.ErrRoomNotAvailable):
			h.logger.Warn("POST /reservations - Rooms not available: user_id=%d", userID)
			handlers.RespondError(w, http.StatusConflict, msgRoomNotAvailable)

		case errors.Is(err, createReservation.ErrRoomNotFound):
			handlers.RespondNotFound(w, msgRoomNotFound)

		case errors.Is(err, createReservation.ErrChargeNotFound):
			handlers.RespondNotFound(w, msgChargeNotFound)

		case errors.Is(err, createReservation.ErrInvalidStayRange):
			handlers.RespondBadRequest(w, msgInvalidStayRange)

		case errors.Is(err, createReservation.ErrInvalidInput):
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("POST /reservations - Failed to create reservation: user_id=%d, error=%v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /reservations - Reservation created: id=%d, reference=%s, user_id=%d",
		result.Reservation.ID, result.Reservation.Reference, userID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}

// validationMessage flattens the first field error into a readable message.
func validationMessage(err error) string {
	var fieldErrors validator.ValidationErrors
	if errors.As(err, &fieldErrors) && len(fieldErrors) > 0 {
		fe := fieldErrors[0]
		return "invalid field " + fe.Field() + ": failed " + fe.Tag() + " validation"
	}
	return msgInvalidRequestBody
}
