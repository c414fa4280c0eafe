package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-MeetingRoomService/internal/domain"
	sessionService "github.com/m04kA/SMC-MeetingRoomService/internal/service/session"
)

type fakeResolver struct {
	principal domain.Principal
	err       error
}

func (f *fakeResolver) Resolve(_ context.Context, _ string) (domain.Principal, error) {
	return f.principal, f.err
}

func TestAuth_InjectsPrincipal(t *testing.T) {
	resolver := &fakeResolver{principal: domain.Principal{SessionID: "sess-1", Admin: true}}

	var got domain.Principal
	var ok bool
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got, ok = PrincipalFromContext(r.Context())
	})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/meetings", nil)
	req.Header.Set(HeaderSessionID, "sess-1")
	rec := httptest.NewRecorder()

	Auth(resolver)(next).ServeHTTP(rec, req)

	require.True(t, ok)
	assert.Equal(t, "sess-1", got.SessionID)
	assert.True(t, got.Admin)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAuth_MissingHeader(t *testing.T) {
	called := false
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { called = true })

	req := httptest.NewRequest(http.MethodGet, "/api/v1/meetings", nil)
	rec := httptest.NewRecorder()

	Auth(&fakeResolver{})(next).ServeHTTP(rec, req)

	assert.False(t, called)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuth_UnknownSession(t *testing.T) {
	resolver := &fakeResolver{err: sessionService.ErrSessionNotFound}
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("next handler must not be called")
	})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/meetings", nil)
	req.Header.Set(HeaderSessionID, "fantasma")
	rec := httptest.NewRecorder()

	Auth(resolver)(next).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
