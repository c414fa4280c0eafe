package update_meeting

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-MeetingRoomService/internal/api/handlers"
	"github.com/m04kA/SMC-MeetingRoomService/internal/api/middleware"
	meetingsModels "github.com/m04kA/SMC-MeetingRoomService/internal/service/meetings/models"
	saveMeeting "github.com/m04kA/SMC-MeetingRoomService/internal/usecase/save_meeting"
)

const (
	msgInvalidRequestBody = "cuerpo de solicitud inválido"
	msgInvalidMeetingID   = "id de reserva inválido"
	msgInvalidRoom        = "sala desconocida"
	msgInvalidTokens      = "motivo o equipo desconocido"
	msgInvalidStart       = "Fecha de inicio inválida"
	msgInvalidEnd         = "Fecha de fin inválida"
	msgEndBeforeStart     = "La hora de fin debe ser mayor a la de inicio"
	msgFieldTooLong       = "El texto ingresado es demasiado largo"
	msgConflict           = "Ya existe una reserva en este horario para esta sala"
	msgNotFound           = "reserva no encontrada"
	msgForbidden          = "Solo un admin puede editar esta reserva"
)

type Handler struct {
	useCase SaveMeetingUseCase
	logger  Logger
}

func NewHandler(useCase SaveMeetingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PUT /api/v1/meetings/{meetingId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	principal, ok := middleware.PrincipalFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgInvalidRequestBody)
		return
	}

	meetingID := mux.Vars(r)["meetingId"]
	if meetingID == "" {
		handlers.RespondBadRequest(w, msgInvalidMeetingID)
		return
	}

	var req UpdateMeetingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /meetings/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(meetingID)
	if err != nil {
		h.logger.Warn("PUT /meetings/{id} - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTokens)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq, principal)
	if err != nil {
		switch {
		case errors.Is(err, saveMeeting.ErrAccessDenied):
			h.logger.Warn("PUT /meetings/{id} - Access denied: meeting=%s session=%s", meetingID, principal.SessionID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, saveMeeting.ErrMeetingNotFound):
			h.logger.Warn("PUT /meetings/{id} - Meeting not found: id=%s", meetingID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, saveMeeting.ErrInvalidRoom):
			handlers.RespondBadRequest(w, msgInvalidRoom)

		case errors.Is(err, saveMeeting.ErrInvalidStart):
			handlers.RespondBadRequest(w, msgInvalidStart)

		case errors.Is(err, saveMeeting.ErrInvalidEnd):
			handlers.RespondBadRequest(w, msgInvalidEnd)

		case errors.Is(err, saveMeeting.ErrEndBeforeStart):
			handlers.RespondBadRequest(w, msgEndBeforeStart)

		case errors.Is(err, saveMeeting.ErrFieldTooLong):
			handlers.RespondBadRequest(w, msgFieldTooLong)

		case errors.Is(err, saveMeeting.ErrRoomConflict):
			h.logger.Warn("PUT /meetings/{id} - Conflict: meeting=%s room=%s", meetingID, req.Room)
			handlers.RespondError(w, http.StatusConflict, msgConflict)

		default:
			h.logger.Error("PUT /meetings/{id} - Failed to update meeting: id=%s, error=%v", meetingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /meetings/{id} - Meeting updated: id=%s room=%s session=%s",
		result.ID, result.Calendar, principal.SessionID)
	handlers.RespondJSON(w, http.StatusOK, meetingsModels.FromDomainMeeting(result))
}
