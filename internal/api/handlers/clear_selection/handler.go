package clear_selection

import (
	"net/http"

	"github.com/m04kA/SMC-MeetingRoomService/internal/api/handlers"
	"github.com/m04kA/SMC-MeetingRoomService/internal/api/middleware"
)

const msgUnauthorized = "sesión desconocida"

type Handler struct {
	service MeetingService
	logger  Logger
}

func NewHandler(service MeetingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle DELETE /api/v1/sessions/current/selection
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	principal, ok := middleware.PrincipalFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	if err := h.service.ClearActive(r.Context(), principal); err != nil {
		h.logger.Error("DELETE /sessions/current/selection - Failed: session=%s, error=%v", principal.SessionID, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondNoContent(w)
}
