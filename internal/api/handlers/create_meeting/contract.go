package create_meeting

import (
	"context"

	"github.com/m04kA/SMC-MeetingRoomService/internal/domain"
	saveMeeting "github.com/m04kA/SMC-MeetingRoomService/internal/usecase/save_meeting"
)

type SaveMeetingUseCase interface {
	Execute(ctx context.Context, req *saveMeeting.Request, principal domain.Principal) (*domain.Meeting, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
