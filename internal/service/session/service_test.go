package session

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-MeetingRoomService/internal/domain"
	sessionRepo "github.com/m04kA/SMC-MeetingRoomService/internal/infra/storage/session"
)

type fakeSessionRepository struct {
	byID          map[string]*domain.Session
	notifications map[string]*domain.Notification
}

func newFakeSessionRepository(sessions ...*domain.Session) *fakeSessionRepository {
	f := &fakeSessionRepository{
		byID:          make(map[string]*domain.Session),
		notifications: make(map[string]*domain.Notification),
	}
	for _, s := range sessions {
		f.byID[s.ID] = s
	}
	return f
}

func (f *fakeSessionRepository) Create(_ context.Context, s *domain.Session) error {
	f.byID[s.ID] = s
	return nil
}

func (f *fakeSessionRepository) Get(_ context.Context, id string) (*domain.Session, error) {
	s, ok := f.byID[id]
	if !ok {
		return nil, sessionRepo.ErrSessionNotFound
	}
	copied := *s
	return &copied, nil
}

func (f *fakeSessionRepository) SetAdmin(_ context.Context, id string, admin bool) error {
	s, ok := f.byID[id]
	if !ok {
		return sessionRepo.ErrSessionNotFound
	}
	s.Admin = admin
	return nil
}

func (f *fakeSessionRepository) SetPreferences(_ context.Context, id string, room domain.RoomKey, view domain.CalendarView) error {
	s, ok := f.byID[id]
	if !ok {
		return sessionRepo.ErrSessionNotFound
	}
	s.LastRoom = room
	s.LastView = view
	return nil
}

func (f *fakeSessionRepository) PushNotification(_ context.Context, id string, n domain.Notification) error {
	f.notifications[id] = &n
	return nil
}

func (f *fakeSessionRepository) GetNotification(_ context.Context, id string) (*domain.Notification, error) {
	return f.notifications[id], nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestCreate_IssuesSessionWithDefaults(t *testing.T) {
	repo := newFakeSessionRepository()
	svc := NewService(repo, nopLogger{})

	sess, err := svc.Create(context.Background())

	require.NoError(t, err)
	assert.NotEmpty(t, sess.ID)
	assert.False(t, sess.Admin)
	assert.Equal(t, domain.RoomS2, sess.LastRoom)
	assert.Equal(t, domain.ViewWeek, sess.LastView)
	assert.False(t, sess.CreatedAt.IsZero())
}

func TestResolve_UnknownSession(t *testing.T) {
	svc := NewService(newFakeSessionRepository(), nopLogger{})

	_, err := svc.Resolve(context.Background(), "fantasma")

	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestToggleAdmin_FlipsFlagAndNotifies(t *testing.T) {
	repo := newFakeSessionRepository(&domain.Session{ID: "sess-1"})
	svc := NewService(repo, nopLogger{})

	sess, err := svc.ToggleAdmin(context.Background(), "sess-1")
	require.NoError(t, err)
	assert.True(t, sess.Admin)

	n := repo.notifications["sess-1"]
	require.NotNil(t, n)
	assert.Equal(t, msgAdminEnabled, n.Message)
	assert.Equal(t, domain.SeverityInfo, n.Severity)

	sess, err = svc.ToggleAdmin(context.Background(), "sess-1")
	require.NoError(t, err)
	assert.False(t, sess.Admin)
	assert.Equal(t, msgAdminDisabled, repo.notifications["sess-1"].Message)
}

func TestSetPreferences_ValidatesTokens(t *testing.T) {
	repo := newFakeSessionRepository(&domain.Session{ID: "sess-1"})
	svc := NewService(repo, nopLogger{})

	err := svc.SetPreferences(context.Background(), "sess-1", "SOTANO", domain.ViewWeek)
	assert.ErrorIs(t, err, ErrInvalidRoom)

	err = svc.SetPreferences(context.Background(), "sess-1", domain.RoomVerde, "año")
	assert.ErrorIs(t, err, ErrInvalidView)

	err = svc.SetPreferences(context.Background(), "sess-1", domain.RoomVerde, domain.ViewDay)
	require.NoError(t, err)

	sess, err := svc.Get(context.Background(), "sess-1")
	require.NoError(t, err)
	assert.Equal(t, domain.RoomVerde, sess.LastRoom)
	assert.Equal(t, domain.ViewDay, sess.LastView)
}

func TestNotification_EmptySlot(t *testing.T) {
	repo := newFakeSessionRepository(&domain.Session{ID: "sess-1"})
	svc := NewService(repo, nopLogger{})

	n, err := svc.Notification(context.Background(), "sess-1")

	require.NoError(t, err)
	assert.Nil(t, n)
}
