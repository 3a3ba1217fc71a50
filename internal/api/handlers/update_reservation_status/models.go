package update_reservation_status

// UpdateStatusRequest is the HTTP request model. Legacy status names
// ("pending", "confirmed", "completed") are accepted.
type UpdateStatusRequest struct {
	Status string `json:"status"`
}
