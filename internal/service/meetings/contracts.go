package meetings

import (
	"context"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-MeetingRoomService/internal/domain"
)

// MeetingRepository интерфейс репозитория броней
type MeetingRepository interface {
	Create(ctx context.Context, m *domain.Meeting) (*domain.Meeting, error)
	Update(ctx context.Context, m *domain.Meeting) error
	GetByID(ctx context.Context, id string) (*domain.Meeting, error)
	ListByRoom(ctx context.Context, room domain.RoomKey) ([]*domain.Meeting, error)
	Delete(ctx context.Context, id string) error
}

// SelectionStore интерфейс для управления активной бронью редактора
type SelectionStore interface {
	SetSelection(ctx context.Context, sessionID, meetingID string) error
	ClearSelection(ctx context.Context, sessionID string) error
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
