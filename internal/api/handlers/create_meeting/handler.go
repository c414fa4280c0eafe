package create_meeting

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-MeetingRoomService/internal/api/handlers"
	"github.com/m04kA/SMC-MeetingRoomService/internal/api/middleware"
	meetingsModels "github.com/m04kA/SMC-MeetingRoomService/internal/service/meetings/models"
	saveMeeting "github.com/m04kA/SMC-MeetingRoomService/internal/usecase/save_meeting"
)

const (
	msgInvalidRequestBody = "cuerpo de solicitud inválido"
	msgInvalidRoom        = "sala desconocida"
	msgInvalidTokens      = "motivo o equipo desconocido"
	msgInvalidStart       = "Fecha de inicio inválida"
	msgInvalidEnd         = "Fecha de fin inválida"
	msgEndBeforeStart     = "La hora de fin debe ser mayor a la de inicio"
	msgFieldTooLong       = "El texto ingresado es demasiado largo"
	msgConflict           = "Ya existe una reserva en este horario para esta sala"
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

// Handle POST /api/v1/meetings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	principal, ok := middleware.PrincipalFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgInvalidRequestBody)
		return
	}

	var req CreateMeetingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /meetings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /meetings - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTokens)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq, principal)
	if err != nil {
		switch {
		case errors.Is(err, saveMeeting.ErrInvalidRoom):
			h.logger.Warn("POST /meetings - Invalid room: %q", req.Room)
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
			h.logger.Warn("POST /meetings - Conflict in room=%s session=%s", req.Room, principal.SessionID)
			handlers.RespondError(w, http.StatusConflict, msgConflict)

		default:
			h.logger.Error("POST /meetings - Failed to create meeting: room=%s, error=%v", req.Room, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /meetings - Meeting created: id=%s room=%s session=%s",
		result.ID, result.Calendar, principal.SessionID)
	handlers.RespondJSON(w, http.StatusCreated, meetingsModels.FromDomainMeeting(result))
}
