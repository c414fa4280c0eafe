package get_notification

import (
	"context"

	"github.com/m04kA/SMC-MeetingRoomService/internal/domain"
)

type SessionService interface {
	Notification(ctx context.Context, id string) (*domain.Notification, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
