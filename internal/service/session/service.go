package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-MeetingRoomService/internal/domain"
	sessionRepo "github.com/m04kA/SMC-MeetingRoomService/internal/infra/storage/session"
)

const (
	msgAdminEnabled  = "Has activado el modo admin"
	msgAdminDisabled = "Has vuelto a modo estándar"
)

// Service провайдер сессий и ролей. Выдает стабильный анонимный
// идентификатор, хранит admin-флаг и настройки отображения.
// Никакой криптографии - это осознанная заглушка до реальной
// аутентификации; серверные проверки прав идут по admin-флагу.
type Service struct {
	repo   SessionRepository
	idGen  IDGenerator
	logger Logger
}

// NewService создает новый экземпляр провайдера сессий
func NewService(repo SessionRepository, logger Logger) *Service {
	return &Service{
		repo:   repo,
		idGen:  &UUIDGenerator{},
		logger: logger,
	}
}

// Create выдает новую анонимную сессию с дефолтными настройками
func (s *Service) Create(ctx context.Context) (*domain.Session, error) {
	sess := &domain.Session{
		ID:        s.idGen.NewID(),
		Admin:     false,
		LastRoom:  domain.RoomS2,
		LastView:  domain.ViewWeek,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.repo.Create(ctx, sess); err != nil {
		s.logger.Error("Create: failed to store session: %v", err)
		return nil, fmt.Errorf("%w: Create - store session: %v", ErrInternal, err)
	}

	s.logger.Info("Create: issued session id=%s", sess.ID)
	return sess, nil
}

// Get возвращает состояние сессии
func (s *Service) Get(ctx context.Context, id string) (*domain.Session, error) {
	sess, err := s.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, sessionRepo.ErrSessionNotFound) {
			return nil, ErrSessionNotFound
		}
		s.logger.Error("Get: repository error for session=%s: %v", id, err)
		return nil, fmt.Errorf("%w: Get - repository error: %v", ErrInternal, err)
	}
	return sess, nil
}

// Resolve возвращает principal для auth-middleware
func (s *Service) Resolve(ctx context.Context, id string) (domain.Principal, error) {
	sess, err := s.Get(ctx, id)
	if err != nil {
		return domain.Principal{}, err
	}
	return domain.Principal{SessionID: sess.ID, Admin: sess.Admin}, nil
}

// ToggleAdmin переключает admin-флаг и шлет info-уведомление о смене режима
func (s *Service) ToggleAdmin(ctx context.Context, id string) (*domain.Session, error) {
	sess, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	sess.Admin = !sess.Admin
	if err := s.repo.SetAdmin(ctx, id, sess.Admin); err != nil {
		if errors.Is(err, sessionRepo.ErrSessionNotFound) {
			return nil, ErrSessionNotFound
		}
		s.logger.Error("ToggleAdmin: failed for session=%s: %v", id, err)
		return nil, fmt.Errorf("%w: ToggleAdmin - store flag: %v", ErrInternal, err)
	}

	msg := msgAdminDisabled
	if sess.Admin {
		msg = msgAdminEnabled
	}
	s.notify(ctx, id, msg, domain.SeverityInfo)

	s.logger.Info("ToggleAdmin: session=%s admin=%t", id, sess.Admin)
	return sess, nil
}

// SetPreferences сохраняет последнюю комнату и вид календаря.
// Чистое UI-состояние: бизнес-правил нет, только валидация токенов.
func (s *Service) SetPreferences(ctx context.Context, id string, room domain.RoomKey, view domain.CalendarView) error {
	if !room.Valid() {
		return ErrInvalidRoom
	}
	if !view.Valid() {
		return ErrInvalidView
	}

	if err := s.repo.SetPreferences(ctx, id, room, view); err != nil {
		if errors.Is(err, sessionRepo.ErrSessionNotFound) {
			return ErrSessionNotFound
		}
		s.logger.Error("SetPreferences: failed for session=%s: %v", id, err)
		return fmt.Errorf("%w: SetPreferences - store: %v", ErrInternal, err)
	}

	s.logger.Info("SetPreferences: session=%s room=%s view=%s", id, room, view)
	return nil
}

// Notification возвращает текущее транзиентное уведомление сессии
// (nil, если слот пуст)
func (s *Service) Notification(ctx context.Context, id string) (*domain.Notification, error) {
	n, err := s.repo.GetNotification(ctx, id)
	if err != nil {
		s.logger.Error("Notification: repository error for session=%s: %v", id, err)
		return nil, fmt.Errorf("%w: Notification - repository error: %v", ErrInternal, err)
	}
	return n, nil
}

// notify шлет уведомление, не прерывая основную операцию при сбое
func (s *Service) notify(ctx context.Context, id, message string, severity domain.NotificationSeverity) {
	if err := s.repo.PushNotification(ctx, id, domain.Notification{Message: message, Severity: severity}); err != nil {
		s.logger.Warn("notify: failed for session=%s: %v", id, err)
	}
}
