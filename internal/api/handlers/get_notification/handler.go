package get_notification

import (
	"net/http"

	"github.com/m04kA/SMC-MeetingRoomService/internal/api/handlers"
	"github.com/m04kA/SMC-MeetingRoomService/internal/api/middleware"
	sessionModels "github.com/m04kA/SMC-MeetingRoomService/internal/service/session/models"
)

const msgUnauthorized = "sesión desconocida"

type Handler struct {
	service SessionService
	logger  Logger
}

func NewHandler(service SessionService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/sessions/current/notification
//
// Слот одноместный и гаснет по TTL на стороне Redis: пустой слот
// отдается как 204, клиент просто ничего не показывает.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	principal, ok := middleware.PrincipalFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	n, err := h.service.Notification(r.Context(), principal.SessionID)
	if err != nil {
		h.logger.Error("GET /sessions/current/notification - Failed: session=%s, error=%v", principal.SessionID, err)
		handlers.RespondInternalError(w)
		return
	}

	if n == nil {
		handlers.RespondNoContent(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, sessionModels.FromDomainNotification(n))
}
