package update_support_status

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-MeetingRoomService/internal/api/handlers"
	"github.com/m04kA/SMC-MeetingRoomService/internal/api/middleware"
	meetingsModels "github.com/m04kA/SMC-MeetingRoomService/internal/service/meetings/models"
	"github.com/m04kA/SMC-MeetingRoomService/internal/service/support"
	supportModels "github.com/m04kA/SMC-MeetingRoomService/internal/service/support/models"
)

const (
	msgInvalidRequestBody = "cuerpo de solicitud inválido"
	msgInvalidMeetingID   = "id de reserva inválido"
	msgInvalidStatus      = "estado de apoyo desconocido"
	msgNotFound           = "reserva no encontrada"
	msgForbidden          = "solo los admins pueden cambiar el estado de apoyo"
)

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

// Handle PATCH /api/v1/support/meetings/{meetingId}/status
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	principal, ok := middleware.PrincipalFromContext(r.Context())
	if !ok {
		handlers.RespondForbidden(w, msgForbidden)
		return
	}

	meetingID := mux.Vars(r)["meetingId"]
	if meetingID == "" {
		handlers.RespondBadRequest(w, msgInvalidMeetingID)
		return
	}

	var req supportModels.UpdateStatusRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /support/meetings/{id}/status - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	updated, err := h.service.UpdateStatus(r.Context(), meetingID, &req, principal)
	if err != nil {
		switch {
		case errors.Is(err, support.ErrAccessDenied):
			h.logger.Warn("PATCH /support/meetings/{id}/status - Access denied: meeting=%s session=%s",
				meetingID, principal.SessionID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, support.ErrInvalidStatus):
			h.logger.Warn("PATCH /support/meetings/{id}/status - Invalid status: %q", req.Status)
			handlers.RespondBadRequest(w, msgInvalidStatus)

		case errors.Is(err, support.ErrMeetingNotFound):
			h.logger.Warn("PATCH /support/meetings/{id}/status - Meeting not found: id=%s", meetingID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("PATCH /support/meetings/{id}/status - Failed to update: id=%s, error=%v", meetingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /support/meetings/{id}/status - Status updated: id=%s status=%s", meetingID, req.Status)
	handlers.RespondJSON(w, http.StatusOK, meetingsModels.FromDomainMeeting(updated))
}
