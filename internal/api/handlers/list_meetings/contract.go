package list_meetings

import (
	"context"

	"github.com/m04kA/SMC-MeetingRoomService/internal/domain"
)

type MeetingService interface {
	ListByRoom(ctx context.Context, room domain.RoomKey) ([]*domain.Meeting, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
