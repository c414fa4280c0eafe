package session

import (
	"context"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-MeetingRoomService/internal/domain"
)

// SessionRepository интерфейс хранилища состояния сессий
type SessionRepository interface {
	Create(ctx context.Context, s *domain.Session) error
	Get(ctx context.Context, id string) (*domain.Session, error)
	SetAdmin(ctx context.Context, id string, admin bool) error
	SetPreferences(ctx context.Context, id string, room domain.RoomKey, view domain.CalendarView) error
	PushNotification(ctx context.Context, id string, n domain.Notification) error
	GetNotification(ctx context.Context, id string) (*domain.Notification, error)
}

// IDGenerator интерфейс генерации идентификаторов (для тестирования)
type IDGenerator interface {
	NewID() string
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// UUIDGenerator реальный генератор идентификаторов для production
type UUIDGenerator struct{}

// NewID возвращает новый uuid
func (g *UUIDGenerator) NewID() string {
	return uuid.NewString()
}
