package save_meeting

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-MeetingRoomService/internal/domain"
	meetingsService "github.com/m04kA/SMC-MeetingRoomService/internal/service/meetings"
)

const (
	msgInvalidStart   = "Fecha de inicio inválida"
	msgInvalidEnd     = "Fecha de fin inválida"
	msgEndBeforeStart = "La hora de fin debe ser mayor a la de inicio"
	msgRoomConflict   = "Ya existe una reserva en este horario para esta sala"
	msgFieldTooLong   = "El texto ingresado es demasiado largo"
	msgOnlyAdminEdit  = "Solo un admin puede editar esta reserva"
	msgSaved          = "Reserva guardada correctamente"
)

// UseCase сценарий сохранения брони: валидация интервала, проверка
// пересечений по комнате и запись через стор. Проверка конфликтов и
// запись идут в одной serializable-транзакции, чтобы две конкурентные
// брони не прошли проверку одновременно.
type UseCase struct {
	store     MeetingStore
	repo      MeetingRepository
	notifier  Notifier
	txManager TransactionManager
	logger    Logger
}

// NewUseCase создает новый экземпляр usecase сохранения брони
func NewUseCase(
	store MeetingStore,
	repo MeetingRepository,
	notifier Notifier,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		store:     store,
		repo:      repo,
		notifier:  notifier,
		txManager: txManager,
		logger:    logger,
	}
}

// Execute сохраняет бронь. Каждый исход (отказ валидации, конфликт,
// успех) дублируется транзиентным уведомлением в сессию вызывающего.
func (uc *UseCase) Execute(ctx context.Context, req *Request, principal domain.Principal) (*domain.Meeting, error) {
	if !req.Room.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidRoom, req.Room)
	}

	// Редактировать существующие брони может только админ
	if req.MeetingID != "" && !principal.Admin {
		uc.logger.Warn("Execute: session=%s denied edit of meeting=%s", principal.SessionID, req.MeetingID)
		uc.notify(ctx, principal, msgOnlyAdminEdit, domain.SeverityError)
		return nil, ErrAccessDenied
	}

	start, end, err := parseRange(req.Start, req.End)
	if err != nil {
		uc.notify(ctx, principal, rejectionMessage(err), domain.SeverityError)
		return nil, err
	}

	if err := validateLengths(req); err != nil {
		uc.notify(ctx, principal, msgFieldTooLong, domain.SeverityError)
		return nil, err
	}

	var saved *domain.Meeting
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		existing, err := uc.repo.ListByRoom(txCtx, req.Room)
		if err != nil {
			return fmt.Errorf("%w: Execute - list room meetings: %v", ErrInternal, err)
		}

		if conflict := findConflict(start, end, existing, req.MeetingID); conflict != nil {
			uc.logger.Info("Execute: room=%s conflict with meeting=%s", req.Room, conflict.ID)
			return fmt.Errorf("%w: meeting %s", ErrRoomConflict, conflict.ID)
		}

		saved, err = uc.store.Upsert(txCtx, req.toUpsertInput(start, end), req.Room, principal)
		if err != nil {
			if errors.Is(err, meetingsService.ErrMeetingNotFound) {
				return ErrMeetingNotFound
			}
			return fmt.Errorf("%w: Execute - upsert: %v", ErrInternal, err)
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrRoomConflict) {
			uc.notify(ctx, principal, msgRoomConflict, domain.SeverityError)
			return nil, err
		}
		if errors.Is(err, ErrMeetingNotFound) {
			return nil, err
		}
		uc.logger.Error("Execute: transaction failed room=%s: %v", req.Room, err)
		if errors.Is(err, ErrInternal) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: Execute - transaction: %v", ErrInternal, err)
	}

	uc.notify(ctx, principal, msgSaved, domain.SeveritySuccess)
	uc.logger.Info("Execute: saved meeting id=%s room=%s session=%s", saved.ID, req.Room, principal.SessionID)
	return saved, nil
}

// notify шлет уведомление, не прерывая основную операцию при сбое
func (uc *UseCase) notify(ctx context.Context, principal domain.Principal, message string, severity domain.NotificationSeverity) {
	if principal.SessionID == "" {
		return
	}
	if err := uc.notifier.PushNotification(ctx, principal.SessionID, domain.Notification{Message: message, Severity: severity}); err != nil {
		uc.logger.Warn("notify: failed for session=%s: %v", principal.SessionID, err)
	}
}

// rejectionMessage подбирает текст уведомления под ошибку валидации
func rejectionMessage(err error) string {
	switch {
	case errors.Is(err, ErrInvalidStart):
		return msgInvalidStart
	case errors.Is(err, ErrInvalidEnd):
		return msgInvalidEnd
	case errors.Is(err, ErrEndBeforeStart):
		return msgEndBeforeStart
	case errors.Is(err, ErrFieldTooLong):
		return msgFieldTooLong
	default:
		return msgEndBeforeStart
	}
}
