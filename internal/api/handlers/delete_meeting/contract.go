package delete_meeting

import (
	"context"

	"github.com/m04kA/SMC-MeetingRoomService/internal/domain"
)

type MeetingService interface {
	Remove(ctx context.Context, id string, principal domain.Principal) error
}

type Notifier interface {
	PushNotification(ctx context.Context, sessionID string, n domain.Notification) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
