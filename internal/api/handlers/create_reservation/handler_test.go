package create_reservation

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avlok/LMS-LodgeService/internal/api/middleware"
	"github.com/avlok/LMS-LodgeService/internal/domain"
	createReservation "github.com/avlok/LMS-LodgeService/internal/usecase/create_reservation"
	"github.com/avlok/LMS-LodgeService/pkg/money"
)

type mockUseCase struct {
	executeFn func(ctx context.Context, req *createReservation.Request) (*createReservation.Response, error)
}

func (m *mockUseCase) Execute(ctx context.Context, req *createReservation.Request) (*createReservation.Response, error) {
	return m.executeFn(ctx, req)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func validBody() string {
	return `{
		"checkIn": "2026-09-12",
		"checkOut": "2026-09-14",
		"guestCount": 2,
		"guestType": "couple",
		"allocations": [{"roomId": 1, "guestCount": 2}]
	}`
}

func serve(h *Handler, body string, userID string) *httptest.ResponseRecorder {
	router := mux.NewRouter()
	protected := router.PathPrefix("/api/v1").Subrouter()
	protected.Use(middleware.Auth)
	protected.HandleFunc("/reservations", h.Handle).Methods(http.MethodPost)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/reservations", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if userID != "" {
		req.Header.Set(middleware.UserIDHeader, userID)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func sampleResponse(userID int64) *createReservation.Response {
	return &createReservation.Response{
		Reservation: &domain.Reservation{
			ID:         7,
			Reference:  "ref-7",
			UserID:     userID,
			GuestCount: 2,
			GuestType:  domain.GuestTypeCouple,
			CheckIn:    time.Date(2026, 9, 12, 0, 0, 0, 0, time.UTC),
			CheckOut:   time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC),
			Status:     domain.StatusReservation,
			TotalCents: money.Cents(16000),
		},
		Payment: domain.PaymentCalculation{
			RoomTariff: money.Cents(16000),
			Subtotal:   money.Cents(16000),
			Total:      money.Cents(16000),
		},
		Nights: 2,
	}
}

func TestHandle_Created(t *testing.T) {
	uc := &mockUseCase{
		executeFn: func(ctx context.Context, req *createReservation.Request) (*createReservation.Response, error) {
			assert.Equal(t, int64(42), req.UserID)
			return sampleResponse(req.UserID), nil
		},
	}

	rec := serve(NewHandler(uc, nopLogger{}), validBody(), "42")

	require.Equal(t, http.StatusCreated, rec.Code)

	var resp CreateReservationResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, int64(7), resp.ID)
	assert.Equal(t, "reservation", resp.Status)
	assert.Equal(t, int64(16000), resp.Payment.TotalCents)
}

func TestHandle_MissingUserHeader(t *testing.T) {
	uc := &mockUseCase{
		executeFn: func(ctx context.Context, req *createReservation.Request) (*createReservation.Response, error) {
			t.Fatal("usecase must not run without authentication")
			return nil, nil
		},
	}

	rec := serve(NewHandler(uc, nopLogger{}), validBody(), "")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestHandle_ValidationFailure(t *testing.T) {
	uc := &mockUseCase{
		executeFn: func(ctx context.Context, req *createReservation.Request) (*createReservation.Response, error) {
			t.Fatal("usecase must not run for invalid body")
			return nil, nil
		},
	}

	body := `{"checkIn": "2026-09-12", "checkOut": "2026-09-14", "guestCount": 2, "guestType": "alien", "allocations": [{"roomId": 1, "guestCount": 2}]}`
	rec := serve(NewHandler(uc, nopLogger{}), body, "42")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandle_OverlapConflict(t *testing.T) {
	uc := &mockUseCase{
		executeFn: func(ctx context.Context, req *createReservation.Request) (*createReservation.Response, error) {
			return nil, createReservation.ErrRoomNotAvailable
		},
	}

	rec := serve(NewHandler(uc, nopLogger{}), validBody(), "42")

	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestHandle_UnknownRoom(t *testing.T) {
	uc := &mockUseCase{
		executeFn: func(ctx context.Context, req *createReservation.Request) (*createReservation.Response, error) {
			return nil, createReservation.ErrRoomNotFound
		},
	}

	rec := serve(NewHandler(uc, nopLogger{}), validBody(), "42")

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
