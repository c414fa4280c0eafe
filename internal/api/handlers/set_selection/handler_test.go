package set_selection

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-MeetingRoomService/internal/api/middleware"
	"github.com/m04kA/SMC-MeetingRoomService/internal/domain"
	meetingsSvc "github.com/m04kA/SMC-MeetingRoomService/internal/service/meetings"
)

type fakeMeetingService struct {
	byID   map[string]*domain.Meeting
	active string
}

func (f *fakeMeetingService) SetActive(_ context.Context, meetingID string, _ domain.Principal) (*domain.Meeting, error) {
	m, ok := f.byID[meetingID]
	if !ok {
		return nil, meetingsSvc.ErrMeetingNotFound
	}
	f.active = meetingID
	return m, nil
}

func (f *fakeMeetingService) ClearActive(_ context.Context, _ domain.Principal) error {
	f.active = ""
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

func newTestRouter(service *fakeMeetingService) http.Handler {
	handler := NewHandler(service, nopLogger{})

	r := mux.NewRouter()
	r.Use(middleware.Auth(&fakeResolver{principal: domain.Principal{SessionID: "sess-1"}}))
	r.HandleFunc("/api/v1/sessions/current/selection", handler.Handle).Methods(http.MethodPut)
	return r
}

func putSelection(t *testing.T, router http.Handler, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPut, "/api/v1/sessions/current/selection", strings.NewReader(body))
	req.Header.Set(middleware.HeaderSessionID, "sess-1")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestHandle_MeetingSelectionStoresPointer(t *testing.T) {
	service := &fakeMeetingService{byID: map[string]*domain.Meeting{
		"m-1": {ID: "m-1", Calendar: domain.RoomS2},
	}}
	router := newTestRouter(service)

	rec := putSelection(t, router, `{"meetingId":"m-1"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "m-1", service.active)
}

func TestHandle_EmptySlotClearsActiveSelection(t *testing.T) {
	service := &fakeMeetingService{byID: map[string]*domain.Meeting{
		"m-1": {ID: "m-1", Calendar: domain.RoomS2},
	}}
	router := newTestRouter(service)

	// открываем существующую бронь, затем выбираем пустой слот
	rec := putSelection(t, router, `{"meetingId":"m-1"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "m-1", service.active)

	rec = putSelection(t, router, `{"start":"2026-09-02T10:00:00Z"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "", service.active, "selecting an empty slot must switch the editor to create mode")
	assert.Contains(t, rec.Body.String(), "2026-09-02T10:30:00Z")
}

func TestHandle_DraftSlotDefaultsEnd(t *testing.T) {
	service := &fakeMeetingService{}
	router := newTestRouter(service)

	rec := putSelection(t, router, `{"start":"2026-09-02T10:00:00Z"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"start":"2026-09-02T10:00:00Z"`)
	assert.Contains(t, rec.Body.String(), `"end":"2026-09-02T10:30:00Z"`)
}

func TestHandle_UnknownMeeting(t *testing.T) {
	service := &fakeMeetingService{}
	router := newTestRouter(service)

	rec := putSelection(t, router, `{"meetingId":"fantasma"}`)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
