package cancel_reservation

// CancelReservationRequest is the HTTP request model.
type CancelReservationRequest struct {
	CancellationReason string `json:"cancellationReason"`
}
