package generate_allocations

import (
	"errors"
	"net/http"

	"github.com/avlok/LMS-LodgeService/internal/api/handlers"
	generateAllocations "github.com/avlok/LMS-LodgeService/internal/usecase/generate_allocations"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidDate        = "invalid date format, expected YYYY-MM-DD"
	msgInvalidStayRange   = "check-out date must be after check-in date"
)

type Handler struct {
	useCase GenerateAllocationsUseCase
	logger  Logger
}

func NewHandler(useCase GenerateAllocationsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/allocations/generate
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req GenerateAllocationsRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /allocations/generate - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /allocations/generate - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, generateAllocations.ErrInvalidStayRange):
			handlers.RespondBadRequest(w, msgInvalidStayRange)

		case errors.Is(err, generateAllocations.ErrInvalidInput):
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("POST /allocations/generate - Failed to generate options: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
