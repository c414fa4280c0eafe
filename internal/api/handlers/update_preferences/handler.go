package update_preferences

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-MeetingRoomService/internal/api/handlers"
	"github.com/m04kA/SMC-MeetingRoomService/internal/api/middleware"
	"github.com/m04kA/SMC-MeetingRoomService/internal/domain"
	sessionService "github.com/m04kA/SMC-MeetingRoomService/internal/service/session"
)

const (
	msgInvalidRequestBody = "cuerpo de solicitud inválido"
	msgInvalidRoom        = "sala desconocida"
	msgInvalidView        = "vista de calendario desconocida"
	msgNotFound           = "sesión desconocida"
)

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

// Handle PUT /api/v1/sessions/current/preferences
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	principal, ok := middleware.PrincipalFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgNotFound)
		return
	}

	var req UpdatePreferencesRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /sessions/current/preferences - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	err := h.service.SetPreferences(r.Context(), principal.SessionID,
		domain.RoomKey(req.Room), domain.CalendarView(req.View))
	if err != nil {
		switch {
		case errors.Is(err, sessionService.ErrInvalidRoom):
			handlers.RespondBadRequest(w, msgInvalidRoom)

		case errors.Is(err, sessionService.ErrInvalidView):
			handlers.RespondBadRequest(w, msgInvalidView)

		case errors.Is(err, sessionService.ErrSessionNotFound):
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("PUT /sessions/current/preferences - Failed: id=%s, error=%v", principal.SessionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondNoContent(w)
}
