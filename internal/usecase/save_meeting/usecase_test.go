package save_meeting

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-MeetingRoomService/internal/domain"
	meetingsModels "github.com/m04kA/SMC-MeetingRoomService/internal/service/meetings/models"
	"github.com/m04kA/SMC-MeetingRoomService/pkg/ptr"
)

type fakeStore struct {
	upserted *meetingsModels.UpsertInput
	room     domain.RoomKey
	result   *domain.Meeting
	err      error
}

func (f *fakeStore) Upsert(_ context.Context, input meetingsModels.UpsertInput, roomKey domain.RoomKey, principal domain.Principal) (*domain.Meeting, error) {
	f.upserted = &input
	f.room = roomKey
	if f.err != nil {
		return nil, f.err
	}
	if f.result != nil {
		return f.result, nil
	}
	return &domain.Meeting{
		ID:       "m-new",
		Calendar: roomKey,
		Start:    *input.Start,
		End:      *input.End,
		OwnerID:  principal.SessionID,
	}, nil
}

type fakeRepo struct {
	meetings []*domain.Meeting
	err      error
}

func (f *fakeRepo) ListByRoom(_ context.Context, room domain.RoomKey) ([]*domain.Meeting, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []*domain.Meeting
	for _, m := range f.meetings {
		if m.Calendar == room {
			out = append(out, m)
		}
	}
	return out, nil
}

type fakeNotifier struct {
	pushed []domain.Notification
}

func (f *fakeNotifier) PushNotification(_ context.Context, _ string, n domain.Notification) error {
	f.pushed = append(f.pushed, n)
	return nil
}

type fakeTxManager struct {
	calls int
}

func (f *fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	f.calls++
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newTestUseCase(store *fakeStore, repo *fakeRepo, notifier *fakeNotifier) (*UseCase, *fakeTxManager) {
	tx := &fakeTxManager{}
	return NewUseCase(store, repo, notifier, tx, nopLogger{}), tx
}

func baseRequest() *Request {
	return &Request{
		Room:       domain.RoomS2,
		Start:      "2026-09-01T10:00:00Z",
		End:        "2026-09-01T11:00:00Z",
		ClientName: ptr.Ptr("Laura Gómez"),
		Reason:     ptr.Ptr(domain.ReasonMeeting),
	}
}

func TestExecute_CreateSuccess(t *testing.T) {
	store := &fakeStore{}
	notifier := &fakeNotifier{}
	uc, tx := newTestUseCase(store, &fakeRepo{}, notifier)

	principal := domain.Principal{SessionID: "sess-1"}
	saved, err := uc.Execute(context.Background(), baseRequest(), principal)

	require.NoError(t, err)
	require.NotNil(t, saved)
	assert.Equal(t, domain.RoomS2, store.room)
	assert.Equal(t, 1, tx.calls)

	require.Len(t, notifier.pushed, 1)
	assert.Equal(t, msgSaved, notifier.pushed[0].Message)
	assert.Equal(t, domain.SeveritySuccess, notifier.pushed[0].Severity)
}

func TestExecute_RoomConflict(t *testing.T) {
	start := time.Date(2026, 9, 1, 10, 30, 0, 0, time.UTC)
	repo := &fakeRepo{meetings: []*domain.Meeting{
		{ID: "m-1", Calendar: domain.RoomS2, Start: start, End: start.Add(time.Hour)},
	}}
	store := &fakeStore{}
	notifier := &fakeNotifier{}
	uc, _ := newTestUseCase(store, repo, notifier)

	_, err := uc.Execute(context.Background(), baseRequest(), domain.Principal{SessionID: "sess-1"})

	assert.ErrorIs(t, err, ErrRoomConflict)
	assert.Nil(t, store.upserted, "conflicting save must not reach the store")

	require.Len(t, notifier.pushed, 1)
	assert.Equal(t, msgRoomConflict, notifier.pushed[0].Message)
	assert.Equal(t, domain.SeverityError, notifier.pushed[0].Severity)
}

func TestExecute_TouchingBoundaryIsAccepted(t *testing.T) {
	// существующая бронь заканчивается ровно в начале новой
	end := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)
	repo := &fakeRepo{meetings: []*domain.Meeting{
		{ID: "m-1", Calendar: domain.RoomS2, Start: end.Add(-time.Hour), End: end},
	}}
	store := &fakeStore{}
	uc, _ := newTestUseCase(store, repo, &fakeNotifier{})

	_, err := uc.Execute(context.Background(), baseRequest(), domain.Principal{SessionID: "sess-1"})

	require.NoError(t, err)
	require.NotNil(t, store.upserted)
}

func TestExecute_OtherRoomsDoNotConflict(t *testing.T) {
	// та же полоса времени, но в другой комнате
	start := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)
	repo := &fakeRepo{meetings: []*domain.Meeting{
		{ID: "m-1", Calendar: domain.RoomVerde, Start: start, End: start.Add(2 * time.Hour)},
	}}
	store := &fakeStore{}
	uc, _ := newTestUseCase(store, repo, &fakeNotifier{})

	_, err := uc.Execute(context.Background(), baseRequest(), domain.Principal{SessionID: "sess-1"})

	require.NoError(t, err)
	require.NotNil(t, store.upserted)
}

func TestExecute_EditRequiresAdmin(t *testing.T) {
	store := &fakeStore{}
	notifier := &fakeNotifier{}
	uc, tx := newTestUseCase(store, &fakeRepo{}, notifier)

	req := baseRequest()
	req.MeetingID = "m-1"

	_, err := uc.Execute(context.Background(), req, domain.Principal{SessionID: "sess-1", Admin: false})

	assert.ErrorIs(t, err, ErrAccessDenied)
	assert.Nil(t, store.upserted)
	assert.Equal(t, 0, tx.calls)

	require.Len(t, notifier.pushed, 1)
	assert.Equal(t, msgOnlyAdminEdit, notifier.pushed[0].Message)
}

func TestExecute_EditByAdminExcludesItselfFromConflictCheck(t *testing.T) {
	start := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)
	repo := &fakeRepo{meetings: []*domain.Meeting{
		{ID: "m-1", Calendar: domain.RoomS2, Start: start, End: start.Add(time.Hour)},
	}}
	store := &fakeStore{result: &domain.Meeting{ID: "m-1", Calendar: domain.RoomS2}}
	uc, _ := newTestUseCase(store, repo, &fakeNotifier{})

	req := baseRequest()
	req.MeetingID = "m-1"

	_, err := uc.Execute(context.Background(), req, domain.Principal{SessionID: "sess-1", Admin: true})

	require.NoError(t, err)
	require.NotNil(t, store.upserted)
	assert.Equal(t, "m-1", store.upserted.ID)
}

func TestExecute_InvalidTimestamps(t *testing.T) {
	cases := []struct {
		name    string
		start   string
		end     string
		wantErr error
		wantMsg string
	}{
		{"bad start", "nope", "2026-09-01T11:00:00Z", ErrInvalidStart, msgInvalidStart},
		{"bad end", "2026-09-01T10:00:00Z", "nope", ErrInvalidEnd, msgInvalidEnd},
		{"inverted", "2026-09-01T11:00:00Z", "2026-09-01T10:00:00Z", ErrEndBeforeStart, msgEndBeforeStart},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			store := &fakeStore{}
			notifier := &fakeNotifier{}
			uc, _ := newTestUseCase(store, &fakeRepo{}, notifier)

			req := baseRequest()
			req.Start = tc.start
			req.End = tc.end

			_, err := uc.Execute(context.Background(), req, domain.Principal{SessionID: "sess-1"})

			assert.ErrorIs(t, err, tc.wantErr)
			assert.Nil(t, store.upserted)
			require.Len(t, notifier.pushed, 1)
			assert.Equal(t, tc.wantMsg, notifier.pushed[0].Message)
		})
	}
}

func TestExecute_NotesTooLong(t *testing.T) {
	store := &fakeStore{}
	notifier := &fakeNotifier{}
	uc, _ := newTestUseCase(store, &fakeRepo{}, notifier)

	long := make([]byte, domain.MaxNotesLength+1)
	for i := range long {
		long[i] = 'a'
	}
	req := baseRequest()
	req.Notes = ptr.Ptr(string(long))

	_, err := uc.Execute(context.Background(), req, domain.Principal{SessionID: "sess-1"})

	assert.ErrorIs(t, err, ErrFieldTooLong)
	assert.Nil(t, store.upserted)
	require.Len(t, notifier.pushed, 1)
	assert.Equal(t, msgFieldTooLong, notifier.pushed[0].Message)
}

func TestExecute_InvalidRoom(t *testing.T) {
	uc, _ := newTestUseCase(&fakeStore{}, &fakeRepo{}, &fakeNotifier{})

	req := baseRequest()
	req.Room = "SOTANO"

	_, err := uc.Execute(context.Background(), req, domain.Principal{SessionID: "sess-1"})
	assert.ErrorIs(t, err, ErrInvalidRoom)
}
