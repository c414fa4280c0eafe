package delete_meeting

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-MeetingRoomService/internal/api/middleware"
	"github.com/m04kA/SMC-MeetingRoomService/internal/domain"
)

type fakeMeetingService struct {
	removed []string
	err     error
}

func (f *fakeMeetingService) Remove(_ context.Context, id string, _ domain.Principal) error {
	if f.err != nil {
		return f.err
	}
	f.removed = append(f.removed, id)
	return nil
}

type fakeNotifier struct {
	pushed []domain.Notification
}

func (f *fakeNotifier) PushNotification(_ context.Context, _ string, n domain.Notification) error {
	f.pushed = append(f.pushed, n)
	return nil
}

type fakeResolver struct {
	principal domain.Principal
}

func (f *fakeResolver) Resolve(_ context.Context, _ string) (domain.Principal, error) {
	return f.principal, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newTestRouter(service *fakeMeetingService, notifier *fakeNotifier, principal domain.Principal) http.Handler {
	handler := NewHandler(service, notifier, nopLogger{})

	r := mux.NewRouter()
	r.Use(middleware.Auth(&fakeResolver{principal: principal}))
	r.HandleFunc("/api/v1/meetings/{meetingId}", handler.Handle).Methods(http.MethodDelete)
	return r
}

func TestHandle_AdminDeletes(t *testing.T) {
	service := &fakeMeetingService{}
	notifier := &fakeNotifier{}
	router := newTestRouter(service, notifier, domain.Principal{SessionID: "sess-admin", Admin: true})

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/meetings/m-1", nil)
	req.Header.Set(middleware.HeaderSessionID, "sess-admin")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, []string{"m-1"}, service.removed)

	require.Len(t, notifier.pushed, 1)
	assert.Equal(t, msgDeleted, notifier.pushed[0].Message)
	assert.Equal(t, domain.SeveritySuccess, notifier.pushed[0].Severity)
}

func TestHandle_NonAdminIsRejectedWithoutMutation(t *testing.T) {
	service := &fakeMeetingService{}
	notifier := &fakeNotifier{}
	router := newTestRouter(service, notifier, domain.Principal{SessionID: "sess-1", Admin: false})

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/meetings/m-1", nil)
	req.Header.Set(middleware.HeaderSessionID, "sess-1")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Empty(t, service.removed)

	require.Len(t, notifier.pushed, 1)
	assert.Equal(t, msgOnlyAdminDelete, notifier.pushed[0].Message)
	assert.Equal(t, domain.SeverityError, notifier.pushed[0].Severity)
}
