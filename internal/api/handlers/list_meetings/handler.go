package list_meetings

import (
	"net/http"

	"github.com/m04kA/SMC-MeetingRoomService/internal/api/handlers"
	"github.com/m04kA/SMC-MeetingRoomService/internal/domain"
	meetingsModels "github.com/m04kA/SMC-MeetingRoomService/internal/service/meetings/models"
)

const msgInvalidRoom = "sala desconocida"

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

// Handle GET /api/v1/meetings?room=S2
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	room := domain.RoomKey(r.URL.Query().Get("room"))
	if !room.Valid() {
		h.logger.Warn("GET /meetings - Invalid room: %q", room)
		handlers.RespondBadRequest(w, msgInvalidRoom)
		return
	}

	list, err := h.service.ListByRoom(r.Context(), room)
	if err != nil {
		h.logger.Error("GET /meetings - Failed to list meetings: room=%s, error=%v", room, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, meetingsModels.FromDomainMeetingList(list))
}
