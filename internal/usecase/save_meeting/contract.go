package save_meeting

import (
	"context"

	"github.com/m04kA/SMC-MeetingRoomService/internal/domain"
	meetingsModels "github.com/m04kA/SMC-MeetingRoomService/internal/service/meetings/models"
)

// MeetingStore интерфейс стора броней
type MeetingStore interface {
	Upsert(ctx context.Context, input meetingsModels.UpsertInput, roomKey domain.RoomKey, principal domain.Principal) (*domain.Meeting, error)
}

// MeetingRepository интерфейс чтения броней комнаты.
// Внутри транзакции usecase'а выборка идет с FOR UPDATE.
type MeetingRepository interface {
	ListByRoom(ctx context.Context, room domain.RoomKey) ([]*domain.Meeting, error)
}

// Notifier интерфейс канала транзиентных уведомлений
type Notifier interface {
	PushNotification(ctx context.Context, sessionID string, n domain.Notification) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
