package quote_payment

import (
	"errors"
	"net/http"

	"github.com/avlok/LMS-LodgeService/internal/api/handlers"
	quotePayment "github.com/avlok/LMS-LodgeService/internal/usecase/quote_payment"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidDate        = "invalid date format, expected YYYY-MM-DD"
	msgInvalidStayRange   = "check-out date must be after check-in date"
	msgRoomNotFound       = "room not found"
	msgChargeNotFound     = "special charge not found"
)

type Handler struct {
	useCase QuotePaymentUseCase
	logger  Logger
}

func NewHandler(useCase QuotePaymentUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/payments/quote
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req QuotePaymentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /payments/quote - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /payments/quote - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, quotePayment.ErrInvalidStayRange):
			handlers.RespondBadRequest(w, msgInvalidStayRange)

		case errors.Is(err, quotePayment.ErrRoomNotFound):
			handlers.RespondNotFound(w, msgRoomNotFound)

		case errors.Is(err, quotePayment.ErrChargeNotFound):
			handlers.RespondNotFound(w, msgChargeNotFound)

		case errors.Is(err, quotePayment.ErrInvalidInput):
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("POST /payments/quote - Failed to compute quote: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
