package get_support_meetings

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-MeetingRoomService/internal/api/handlers"
	"github.com/m04kA/SMC-MeetingRoomService/internal/api/middleware"
	"github.com/m04kA/SMC-MeetingRoomService/internal/service/support"
)

const msgForbidden = "solo los admins pueden ver el panel de apoyos"

type Handler struct {
	service SupportService
	logger  Logger
}

func NewHandler(service SupportService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/support/meetings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	principal, ok := middleware.PrincipalFromContext(r.Context())
	if !ok {
		handlers.RespondForbidden(w, msgForbidden)
		return
	}

	dashboard, err := h.service.Dashboard(r.Context(), principal)
	if err != nil {
		if errors.Is(err, support.ErrAccessDenied) {
			h.logger.Warn("GET /support/meetings - Access denied: session=%s", principal.SessionID)
			handlers.RespondForbidden(w, msgForbidden)
			return
		}
		h.logger.Error("GET /support/meetings - Failed to build dashboard: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, dashboard)
}
