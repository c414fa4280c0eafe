package toggle_admin

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-MeetingRoomService/internal/api/handlers"
	"github.com/m04kA/SMC-MeetingRoomService/internal/api/middleware"
	sessionService "github.com/m04kA/SMC-MeetingRoomService/internal/service/session"
	sessionModels "github.com/m04kA/SMC-MeetingRoomService/internal/service/session/models"
)

const msgNotFound = "sesión desconocida"

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

// Handle PATCH /api/v1/sessions/current/admin
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	principal, ok := middleware.PrincipalFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgNotFound)
		return
	}

	sess, err := h.service.ToggleAdmin(r.Context(), principal.SessionID)
	if err != nil {
		if errors.Is(err, sessionService.ErrSessionNotFound) {
			handlers.RespondNotFound(w, msgNotFound)
			return
		}
		h.logger.Error("PATCH /sessions/current/admin - Failed to toggle: id=%s, error=%v", principal.SessionID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("PATCH /sessions/current/admin - Session %s admin=%t", sess.ID, sess.Admin)
	handlers.RespondJSON(w, http.StatusOK, sessionModels.FromDomainSession(sess))
}
