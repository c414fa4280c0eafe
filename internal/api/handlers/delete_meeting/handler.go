package delete_meeting

import (
	"context"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-MeetingRoomService/internal/api/handlers"
	"github.com/m04kA/SMC-MeetingRoomService/internal/api/middleware"
	"github.com/m04kA/SMC-MeetingRoomService/internal/domain"
)

const (
	msgInvalidMeetingID = "id de reserva inválido"
	msgOnlyAdminDelete  = "Solo un admin puede eliminar esta reserva"
	msgDeleted          = "Reserva eliminada"
)

type Handler struct {
	service  MeetingService
	notifier Notifier
	logger   Logger
}

func NewHandler(service MeetingService, notifier Notifier, logger Logger) *Handler {
	return &Handler{
		service:  service,
		notifier: notifier,
		logger:   logger,
	}
}

// Handle DELETE /api/v1/meetings/{meetingId}
//
// Удаление только для админа. Отсутствующая бронь - тоже успех:
// DELETE идемпотентен, сервис трактует её как no-op.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	principal, ok := middleware.PrincipalFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgInvalidMeetingID)
		return
	}

	meetingID := mux.Vars(r)["meetingId"]
	if meetingID == "" {
		handlers.RespondBadRequest(w, msgInvalidMeetingID)
		return
	}

	if !principal.Admin {
		h.logger.Warn("DELETE /meetings/{id} - Access denied: meeting=%s session=%s", meetingID, principal.SessionID)
		h.notify(r.Context(), principal, msgOnlyAdminDelete, domain.SeverityError)
		handlers.RespondForbidden(w, msgOnlyAdminDelete)
		return
	}

	if err := h.service.Remove(r.Context(), meetingID, principal); err != nil {
		h.logger.Error("DELETE /meetings/{id} - Failed to delete meeting: id=%s, error=%v", meetingID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.notify(r.Context(), principal, msgDeleted, domain.SeveritySuccess)
	h.logger.Info("DELETE /meetings/{id} - Meeting deleted: id=%s session=%s", meetingID, principal.SessionID)
	handlers.RespondNoContent(w)
}

func (h *Handler) notify(ctx context.Context, principal domain.Principal, message string, severity domain.NotificationSeverity) {
	if err := h.notifier.PushNotification(ctx, principal.SessionID, domain.Notification{Message: message, Severity: severity}); err != nil {
		h.logger.Warn("notify: failed for session=%s: %v", principal.SessionID, err)
	}
}
