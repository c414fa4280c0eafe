package middleware

import (
	"context"
	"errors"
	"net/http"

	"github.com/m04kA/SMC-MeetingRoomService/internal/api/handlers"
	"github.com/m04kA/SMC-MeetingRoomService/internal/domain"
	sessionService "github.com/m04kA/SMC-MeetingRoomService/internal/service/session"
)

const (
	// HeaderSessionID заголовок с идентификатором сессии
	HeaderSessionID = "X-Session-ID"

	msgMissingSession = "falta el encabezado X-Session-ID"
	msgUnknownSession = "sesión desconocida"
)

type principalContextKey struct{}

// SessionResolver интерфейс резолва сессии в principal
type SessionResolver interface {
	Resolve(ctx context.Context, id string) (domain.Principal, error)
}

// Auth middleware аутентификации: резолвит X-Session-ID в principal
// и кладет его в контекст запроса
func Auth(resolver SessionResolver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sessionID := r.Header.Get(HeaderSessionID)
			if sessionID == "" {
				handlers.RespondUnauthorized(w, msgMissingSession)
				return
			}

			principal, err := resolver.Resolve(r.Context(), sessionID)
			if err != nil {
				if errors.Is(err, sessionService.ErrSessionNotFound) {
					handlers.RespondUnauthorized(w, msgUnknownSession)
					return
				}
				handlers.RespondInternalError(w)
				return
			}

			ctx := context.WithValue(r.Context(), principalContextKey{}, principal)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// PrincipalFromContext достает principal, положенный Auth middleware
func PrincipalFromContext(ctx context.Context) (domain.Principal, bool) {
	p, ok := ctx.Value(principalContextKey{}).(domain.Principal)
	return p, ok
}
