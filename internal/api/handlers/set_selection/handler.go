package set_selection

import (
	"errors"
	"net/http"
	"time"

	"github.com/m04kA/SMC-MeetingRoomService/internal/api/handlers"
	"github.com/m04kA/SMC-MeetingRoomService/internal/api/middleware"
	"github.com/m04kA/SMC-MeetingRoomService/internal/domain"
	"github.com/m04kA/SMC-MeetingRoomService/internal/service/meetings"
	meetingsModels "github.com/m04kA/SMC-MeetingRoomService/internal/service/meetings/models"
)

const (
	msgInvalidRequestBody = "cuerpo de solicitud inválido"
	msgInvalidStart       = "Fecha de inicio inválida"
	msgInvalidEnd         = "Fecha de fin inválida"
	msgNotFound           = "reserva no encontrada"
)

var timestampLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
}

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

// Handle PUT /api/v1/sessions/current/selection
//
// С meetingId запоминает бронь как активную в редакторе сессии и
// возвращает её. Со start/end возвращает черновик слота: конец без
// явного значения достраивается на длину слота по умолчанию, а
// активная бронь редактора сбрасывается - выбор пустого слота
// переводит редактор в режим создания.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	principal, ok := middleware.PrincipalFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgInvalidRequestBody)
		return
	}

	var req SetSelectionRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /sessions/current/selection - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if req.MeetingID != "" {
		m, err := h.service.SetActive(r.Context(), req.MeetingID, principal)
		if err != nil {
			if errors.Is(err, meetings.ErrMeetingNotFound) {
				h.logger.Warn("PUT /sessions/current/selection - Meeting not found: id=%s", req.MeetingID)
				handlers.RespondNotFound(w, msgNotFound)
				return
			}
			h.logger.Error("PUT /sessions/current/selection - Failed: meeting=%s, error=%v", req.MeetingID, err)
			handlers.RespondInternalError(w)
			return
		}

		h.logger.Info("PUT /sessions/current/selection - Selection set: session=%s meeting=%s",
			principal.SessionID, req.MeetingID)
		handlers.RespondJSON(w, http.StatusOK, meetingsModels.FromDomainMeeting(m))
		return
	}

	start, err := parseTimestamp(req.Start)
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidStart)
		return
	}

	end := start.Add(domain.DefaultSlotDuration)
	if req.End != "" {
		end, err = parseTimestamp(req.End)
		if err != nil {
			handlers.RespondBadRequest(w, msgInvalidEnd)
			return
		}
	}

	if err := h.service.ClearActive(r.Context(), principal); err != nil {
		h.logger.Error("PUT /sessions/current/selection - Failed to clear selection: session=%s, error=%v",
			principal.SessionID, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, DraftSlotResponse{
		Start: start.Format(time.RFC3339),
		End:   end.Format(time.RFC3339),
	})
}

func parseTimestamp(raw string) (time.Time, error) {
	var lastErr error
	for _, layout := range timestampLayouts {
		t, err := time.Parse(layout, raw)
		if err == nil {
			return t, nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}
