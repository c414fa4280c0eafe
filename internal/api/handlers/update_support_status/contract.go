package update_support_status

import (
	"context"

	"github.com/m04kA/SMC-MeetingRoomService/internal/domain"
	supportModels "github.com/m04kA/SMC-MeetingRoomService/internal/service/support/models"
)

type SupportService interface {
	UpdateStatus(ctx context.Context, meetingID string, req *supportModels.UpdateStatusRequest, principal domain.Principal) (*domain.Meeting, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
