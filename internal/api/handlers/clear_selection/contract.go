package clear_selection

import (
	"context"

	"github.com/m04kA/SMC-MeetingRoomService/internal/domain"
)

type MeetingService interface {
	ClearActive(ctx context.Context, principal domain.Principal) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
