package list_special_charges

import (
	"net/http"

	"github.com/avlok/LMS-LodgeService/internal/api/handlers"
	"github.com/avlok/LMS-LodgeService/internal/domain"
)

type Handler struct {
	repo   SpecialChargeRepository
	logger Logger
}

func NewHandler(repo SpecialChargeRepository, logger Logger) *Handler {
	return &Handler{
		repo:   repo,
		logger: logger,
	}
}

// ChargeResponse is one catalogue entry.
type ChargeResponse struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	RateCents int64  `json:"rateCents"`
	RateType  string `json:"rateType"`
}

// Handle GET /api/v1/special-charges
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	charges, err := h.repo.List(r.Context())
	if err != nil {
		h.logger.Error("GET /special-charges - Failed: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, toResponse(charges))
}

func toResponse(charges []domain.SpecialCharge) []ChargeResponse {
	out := make([]ChargeResponse, len(charges))
	for i, charge := range charges {
		out[i] = ChargeResponse{
			ID:        charge.ID,
			Name:      charge.Name,
			RateCents: int64(charge.Rate),
			RateType:  string(charge.RateType),
		}
	}
	return out
}
