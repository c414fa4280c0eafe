package update_preferences

import (
	"context"

	"github.com/m04kA/SMC-MeetingRoomService/internal/domain"
)

type SessionService interface {
	SetPreferences(ctx context.Context, id string, room domain.RoomKey, view domain.CalendarView) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
