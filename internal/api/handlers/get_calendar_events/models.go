package get_calendar_events

import (
	"fmt"
	"time"

	"github.com/avlok/LMS-LodgeService/internal/domain"
	"github.com/avlok/LMS-LodgeService/internal/service/calendar"
)

// Query parameters of GET /calendar/events.
type queryParams struct {
	From     string
	To       string
	RoomType string
	Status   string
}

// ToServiceRequest parses the optional window bounds.
func (q queryParams) ToServiceRequest() (*calendar.EventsRequest, error) {
	req := &calendar.EventsRequest{
		RoomType: q.RoomType,
		Status:   q.Status,
	}

	if q.From != "" {
		from, err := time.Parse(domain.DateFormat, q.From)
		if err != nil {
			return nil, fmt.Errorf("parse from: %w", err)
		}
		req.From = &from
	}

	if q.To != "" {
		to, err := time.Parse(domain.DateFormat, q.To)
		if err != nil {
			return nil, fmt.Errorf("parse to: %w", err)
		}
		req.To = &to
	}

	return req, nil
}

// RoomResponse is one room row of the calendar.
type RoomResponse struct {
	ID                 int64  `json:"id"`
	Number             string `json:"number"`
	Type               string `json:"type"`
	Capacity           int    `json:"capacity"`
	NightlyTariffCents int64  `json:"nightlyTariffCents"`
}

// EventResponse is one reservation bar on the calendar.
type EventResponse struct {
	ID    int64  `json:"id"`
	Title string `json:"title"`
	Start string `json:"start"` // YYYY-MM-DD
	End   string `json:"end"`   // YYYY-MM-DD, exclusive
	Color string `json:"color"`
}

// CalendarEventsResponse is the HTTP response model.
type CalendarEventsResponse struct {
	Rooms  []RoomResponse  `json:"rooms"`
	Events []EventResponse `json:"events"`
}

// FromServiceResponse converts the service result.
func FromServiceResponse(result *calendar.EventsResponse) *CalendarEventsResponse {
	rooms := make([]RoomResponse, len(result.Rooms))
	for i, room := range result.Rooms {
		rooms[i] = RoomResponse{
			ID:                 room.ID,
			Number:             room.Number,
			Type:               room.Type,
			Capacity:           room.Capacity,
			NightlyTariffCents: int64(room.NightlyTariff),
		}
	}

	events := make([]EventResponse, len(result.Events))
	for i, event := range result.Events {
		events[i] = EventResponse{
			ID:    event.ID,
			Title: event.Title,
			Start: event.Start.Format(domain.DateFormat),
			End:   event.End.Format(domain.DateFormat),
			Color: event.Color,
		}
	}

	return &CalendarEventsResponse{
		Rooms:  rooms,
		Events: events,
	}
}
