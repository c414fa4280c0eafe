package support

import (
	"context"
	"time"

	"github.com/m04kA/SMC-MeetingRoomService/internal/domain"
	meetingsModels "github.com/m04kA/SMC-MeetingRoomService/internal/service/meetings/models"
)

// MeetingStore интерфейс стора броней. Смена статуса поддержки
// идет через тот же Upsert, что и обычное сохранение, - трекер
// не обходит стор и не пишет в БД напрямую.
type MeetingStore interface {
	Upsert(ctx context.Context, input meetingsModels.UpsertInput, roomKey domain.RoomKey, principal domain.Principal) (*domain.Meeting, error)
	GetByID(ctx context.Context, id string) (*domain.Meeting, error)
}

// MeetingRepository интерфейс чтения броней для дашборда
type MeetingRepository interface {
	ListRequiringSupport(ctx context.Context, filter domain.SupportFilter) ([]*domain.Meeting, error)
}

// SessionReader интерфейс чтения сессии (fallback комнаты при смене статуса)
type SessionReader interface {
	Get(ctx context.Context, id string) (*domain.Session, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
