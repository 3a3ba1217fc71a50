package get_calendar_events

import (
	"context"

	"github.com/avlok/LMS-LodgeService/internal/service/calendar"
)

type CalendarService interface {
	Events(ctx context.Context, req *calendar.EventsRequest) (*calendar.EventsResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
