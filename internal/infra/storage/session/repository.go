package session

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/m04kA/SMC-MeetingRoomService/internal/domain"
)

// Ключи в Redis. Состояние сессии лежит в hash, уведомление -
// отдельным ключом с TTL (автоочистка "тоста" через 2.5 секунды).
const (
	sessionKeyPrefix      = "session:"
	notificationKeySuffix = ":notification"
)

const (
	fieldAdmin         = "admin"
	fieldLastRoom      = "last_room"
	fieldLastView      = "last_view"
	fieldActiveMeeting = "active_meeting"
	fieldCreatedAt     = "created_at"
)

// Repository Redis-репозиторий состояния сессий.
// Заменяет localStorage исходного клиента: admin-флаг, последняя
// комната/вид, активная бронь редактора и слот уведомления.
type Repository struct {
	client *redis.Client
}

// NewRepository создает новый экземпляр репозитория сессий
func NewRepository(client *redis.Client) *Repository {
	return &Repository{client: client}
}

// Create сохраняет новую сессию
func (r *Repository) Create(ctx context.Context, s *domain.Session) error {
	key := sessionKey(s.ID)

	fields := map[string]interface{}{
		fieldAdmin:         strconv.FormatBool(s.Admin),
		fieldLastRoom:      string(s.LastRoom),
		fieldLastView:      string(s.LastView),
		fieldActiveMeeting: s.ActiveMeetingID,
		fieldCreatedAt:     s.CreatedAt.Format(time.RFC3339),
	}

	if err := r.client.HSet(ctx, key, fields).Err(); err != nil {
		return fmt.Errorf("%w: Create - hset: %v", ErrStorage, err)
	}
	return nil
}

// Get возвращает сессию по id
func (r *Repository) Get(ctx context.Context, id string) (*domain.Session, error) {
	values, err := r.client.HGetAll(ctx, sessionKey(id)).Result()
	if err != nil {
		return nil, fmt.Errorf("%w: Get - hgetall: %v", ErrStorage, err)
	}
	if len(values) == 0 {
		return nil, ErrSessionNotFound
	}

	s := &domain.Session{
		ID:              id,
		Admin:           values[fieldAdmin] == "true",
		LastRoom:        domain.RoomKey(values[fieldLastRoom]),
		LastView:        domain.CalendarView(values[fieldLastView]),
		ActiveMeetingID: values[fieldActiveMeeting],
	}
	if raw := values[fieldCreatedAt]; raw != "" {
		if t, err := time.Parse(time.RFC3339, raw); err == nil {
			s.CreatedAt = t
		}
	}

	return s, nil
}

// SetAdmin сохраняет admin-флаг сессии
func (r *Repository) SetAdmin(ctx context.Context, id string, admin bool) error {
	if err := r.requireSession(ctx, id); err != nil {
		return err
	}
	if err := r.client.HSet(ctx, sessionKey(id), fieldAdmin, strconv.FormatBool(admin)).Err(); err != nil {
		return fmt.Errorf("%w: SetAdmin - hset: %v", ErrStorage, err)
	}
	return nil
}

// SetPreferences сохраняет последнюю выбранную комнату и вид календаря
func (r *Repository) SetPreferences(ctx context.Context, id string, room domain.RoomKey, view domain.CalendarView) error {
	if err := r.requireSession(ctx, id); err != nil {
		return err
	}
	fields := map[string]interface{}{
		fieldLastRoom: string(room),
		fieldLastView: string(view),
	}
	if err := r.client.HSet(ctx, sessionKey(id), fields).Err(); err != nil {
		return fmt.Errorf("%w: SetPreferences - hset: %v", ErrStorage, err)
	}
	return nil
}

// SetSelection запоминает бронь, открытую в редакторе
func (r *Repository) SetSelection(ctx context.Context, id, meetingID string) error {
	if err := r.requireSession(ctx, id); err != nil {
		return err
	}
	if err := r.client.HSet(ctx, sessionKey(id), fieldActiveMeeting, meetingID).Err(); err != nil {
		return fmt.Errorf("%w: SetSelection - hset: %v", ErrStorage, err)
	}
	return nil
}

// ClearSelection сбрасывает активную бронь редактора
func (r *Repository) ClearSelection(ctx context.Context, id string) error {
	if err := r.client.HSet(ctx, sessionKey(id), fieldActiveMeeting, "").Err(); err != nil {
		return fmt.Errorf("%w: ClearSelection - hset: %v", ErrStorage, err)
	}
	return nil
}

// PushNotification записывает транзиентное уведомление сессии.
// Один слот на сессию; ключ истекает сам через domain.NotificationTTL.
func (r *Repository) PushNotification(ctx context.Context, id string, n domain.Notification) error {
	payload, err := json.Marshal(n)
	if err != nil {
		return fmt.Errorf("%w: PushNotification - marshal: %v", ErrStorage, err)
	}
	if err := r.client.Set(ctx, notificationKey(id), payload, domain.NotificationTTL).Err(); err != nil {
		return fmt.Errorf("%w: PushNotification - set: %v", ErrStorage, err)
	}
	return nil
}

// GetNotification возвращает текущее уведомление сессии или nil,
// если слот пуст (сообщение истекло или не отправлялось)
func (r *Repository) GetNotification(ctx context.Context, id string) (*domain.Notification, error) {
	raw, err := r.client.Get(ctx, notificationKey(id)).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetNotification - get: %v", ErrStorage, err)
	}

	var n domain.Notification
	if err := json.Unmarshal(raw, &n); err != nil {
		return nil, fmt.Errorf("%w: GetNotification - unmarshal: %v", ErrStorage, err)
	}
	return &n, nil
}

// requireSession проверяет существование сессии перед частичной записью
func (r *Repository) requireSession(ctx context.Context, id string) error {
	exists, err := r.client.Exists(ctx, sessionKey(id)).Result()
	if err != nil {
		return fmt.Errorf("%w: requireSession - exists: %v", ErrStorage, err)
	}
	if exists == 0 {
		return ErrSessionNotFound
	}
	return nil
}

func sessionKey(id string) string {
	return sessionKeyPrefix + id
}

func notificationKey(id string) string {
	return sessionKeyPrefix + id + notificationKeySuffix
}
