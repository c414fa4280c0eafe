package get_meeting

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-MeetingRoomService/internal/api/handlers"
	"github.com/m04kA/SMC-MeetingRoomService/internal/service/meetings"
	meetingsModels "github.com/m04kA/SMC-MeetingRoomService/internal/service/meetings/models"
)

const (
	msgInvalidMeetingID = "id de reserva inválido"
	msgNotFound         = "reserva no encontrada"
)

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

// Handle GET /api/v1/meetings/{meetingId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	meetingID := mux.Vars(r)["meetingId"]
	if meetingID == "" {
		handlers.RespondBadRequest(w, msgInvalidMeetingID)
		return
	}

	m, err := h.service.GetByID(r.Context(), meetingID)
	if err != nil {
		if errors.Is(err, meetings.ErrMeetingNotFound) {
			h.logger.Warn("GET /meetings/{id} - Meeting not found: id=%s", meetingID)
			handlers.RespondNotFound(w, msgNotFound)
			return
		}
		h.logger.Error("GET /meetings/{id} - Failed to get meeting: id=%s, error=%v", meetingID, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, meetingsModels.FromDomainMeeting(m))
}
