package create_session

import (
	"net/http"

	"github.com/m04kA/SMC-MeetingRoomService/internal/api/handlers"
	sessionModels "github.com/m04kA/SMC-MeetingRoomService/internal/service/session/models"
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

// Handle POST /api/v1/sessions
//
// Единственный публичный endpoint записи: выдает анонимную сессию,
// которой дальше ходят все остальные запросы.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sess, err := h.service.Create(r.Context())
	if err != nil {
		h.logger.Error("POST /sessions - Failed to create session: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /sessions - Session created: id=%s", sess.ID)
	handlers.RespondJSON(w, http.StatusCreated, sessionModels.FromDomainSession(sess))
}
