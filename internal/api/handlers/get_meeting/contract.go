package get_meeting

import (
	"context"

	"github.com/m04kA/SMC-MeetingRoomService/internal/domain"
)

type MeetingService interface {
	GetByID(ctx context.Context, id string) (*domain.Meeting, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
