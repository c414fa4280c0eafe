package toggle_admin

import (
	"context"

	"github.com/m04kA/SMC-MeetingRoomService/internal/domain"
)

type SessionService interface {
	ToggleAdmin(ctx context.Context, id string) (*domain.Session, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
