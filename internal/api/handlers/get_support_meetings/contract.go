package get_support_meetings

import (
	"context"

	"github.com/m04kA/SMC-MeetingRoomService/internal/domain"
	supportModels "github.com/m04kA/SMC-MeetingRoomService/internal/service/support/models"
)

type SupportService interface {
	Dashboard(ctx context.Context, principal domain.Principal) (*supportModels.DashboardResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
