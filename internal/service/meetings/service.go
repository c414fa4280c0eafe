package meetings

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-MeetingRoomService/internal/domain"
	meetingRepo "github.com/m04kA/SMC-MeetingRoomService/internal/infra/storage/meeting"
	"github.com/m04kA/SMC-MeetingRoomService/internal/service/meetings/models"
)

// Service авторитативный стор броней переговорных.
// Владеет семантикой create/update/delete и указателем активной
// брони редактора. Валидации здесь нет - стор доверяет вызывающему
// коду (проверки делает usecase сохранения до записи).
type Service struct {
	meetingRepo MeetingRepository
	selections  SelectionStore
	idGen       IDGenerator
	logger      Logger
}

// NewService создает новый экземпляр стора броней
func NewService(
	meetingRepo MeetingRepository,
	selections SelectionStore,
	logger Logger,
) *Service {
	return &Service{
		meetingRepo: meetingRepo,
		selections:  selections,
		idGen:       &UUIDGenerator{},
		logger:      logger,
	}
}

// Upsert создает или обновляет бронь.
//
// data.ID пустой: генерируется новый id, проставляется OwnerID
// (из input либо текущей сессии), комната и support-дефолты.
// data.ID задан: существующая запись заменяется слиянием старых и
// новых полей (nil-поля input сохраняют прежние значения), комната
// принудительно выставляется в roomKey.
//
// Support-поля на КАЖДОЙ записи пересчитываются из input с дефолтами
// (pending / пустые заметки), а не наследуются - так инвариант
// "support-поля всегда определены" держится без special-case'ов.
// В обоих случаях активная бронь редактора сессии сбрасывается.
func (s *Service) Upsert(ctx context.Context, input models.UpsertInput, roomKey domain.RoomKey, principal domain.Principal) (*domain.Meeting, error) {
	if input.ID != "" {
		return s.update(ctx, input, roomKey, principal)
	}
	return s.create(ctx, input, roomKey, principal)
}

func (s *Service) create(ctx context.Context, input models.UpsertInput, roomKey domain.RoomKey, principal domain.Principal) (*domain.Meeting, error) {
	m := &domain.Meeting{
		ID:       s.idGen.NewID(),
		Calendar: roomKey,
		OwnerID:  principal.SessionID,
	}
	applyInput(m, input)

	if input.OwnerID != nil && *input.OwnerID != "" {
		m.OwnerID = *input.OwnerID
	}
	applySupportDefaults(m, input)

	created, err := s.meetingRepo.Create(ctx, m)
	if err != nil {
		s.logger.Error("Upsert: failed to create meeting room=%s: %v", roomKey, err)
		return nil, fmt.Errorf("%w: Upsert - create: %v", ErrInternal, err)
	}

	s.clearSelection(ctx, principal.SessionID)

	s.logger.Info("Upsert: created meeting id=%s room=%s owner=%s", created.ID, roomKey, created.OwnerID)
	return created, nil
}

func (s *Service) update(ctx context.Context, input models.UpsertInput, roomKey domain.RoomKey, principal domain.Principal) (*domain.Meeting, error) {
	existing, err := s.meetingRepo.GetByID(ctx, input.ID)
	if err != nil {
		if errors.Is(err, meetingRepo.ErrMeetingNotFound) {
			s.logger.Warn("Upsert: meeting id=%s not found", input.ID)
			return nil, ErrMeetingNotFound
		}
		s.logger.Error("Upsert: repository error for meeting id=%s: %v", input.ID, err)
		return nil, fmt.Errorf("%w: Upsert - get existing: %v", ErrInternal, err)
	}

	applyInput(existing, input)
	existing.Calendar = roomKey
	applySupportDefaults(existing, input)

	if err := s.meetingRepo.Update(ctx, existing); err != nil {
		if errors.Is(err, meetingRepo.ErrMeetingNotFound) {
			return nil, ErrMeetingNotFound
		}
		s.logger.Error("Upsert: failed to update meeting id=%s: %v", input.ID, err)
		return nil, fmt.Errorf("%w: Upsert - update: %v", ErrInternal, err)
	}

	s.clearSelection(ctx, principal.SessionID)

	s.logger.Info("Upsert: updated meeting id=%s room=%s", existing.ID, roomKey)
	return existing, nil
}

// Remove удаляет бронь по id. Отсутствующая запись - no-op, не ошибка
// (DELETE идемпотентен). Активная бронь редактора сбрасывается всегда.
func (s *Service) Remove(ctx context.Context, id string, principal domain.Principal) error {
	err := s.meetingRepo.Delete(ctx, id)
	if err != nil && !errors.Is(err, meetingRepo.ErrMeetingNotFound) {
		s.logger.Error("Remove: failed to delete meeting id=%s: %v", id, err)
		return fmt.Errorf("%w: Remove - delete: %v", ErrInternal, err)
	}
	if errors.Is(err, meetingRepo.ErrMeetingNotFound) {
		s.logger.Warn("Remove: meeting id=%s not found, nothing to delete", id)
	} else {
		s.logger.Info("Remove: deleted meeting id=%s", id)
	}

	s.clearSelection(ctx, principal.SessionID)
	return nil
}

// GetByID получает бронь по ID
func (s *Service) GetByID(ctx context.Context, id string) (*domain.Meeting, error) {
	m, err := s.meetingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, meetingRepo.ErrMeetingNotFound) {
			return nil, ErrMeetingNotFound
		}
		s.logger.Error("GetByID: repository error for meeting id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}
	return m, nil
}

// ListByRoom получает все брони комнаты по возрастанию начала
func (s *Service) ListByRoom(ctx context.Context, room domain.RoomKey) ([]*domain.Meeting, error) {
	list, err := s.meetingRepo.ListByRoom(ctx, room)
	if err != nil {
		s.logger.Error("ListByRoom: repository error for room=%s: %v", room, err)
		return nil, fmt.Errorf("%w: ListByRoom - repository error: %v", ErrInternal, err)
	}
	return list, nil
}

// SetActive отмечает бронь как открытую в редакторе сессии
func (s *Service) SetActive(ctx context.Context, meetingID string, principal domain.Principal) (*domain.Meeting, error) {
	m, err := s.GetByID(ctx, meetingID)
	if err != nil {
		return nil, err
	}

	if err := s.selections.SetSelection(ctx, principal.SessionID, meetingID); err != nil {
		s.logger.Error("SetActive: failed to store selection session=%s meeting=%s: %v",
			principal.SessionID, meetingID, err)
		return nil, fmt.Errorf("%w: SetActive - store selection: %v", ErrInternal, err)
	}

	return m, nil
}

// ClearActive сбрасывает активную бронь редактора сессии
func (s *Service) ClearActive(ctx context.Context, principal domain.Principal) error {
	if err := s.selections.ClearSelection(ctx, principal.SessionID); err != nil {
		s.logger.Error("ClearActive: failed for session=%s: %v", principal.SessionID, err)
		return fmt.Errorf("%w: ClearActive - clear selection: %v", ErrInternal, err)
	}
	return nil
}

// clearSelection сбрасывает выбор после записи. Ошибка не фатальна:
// сама бронь уже сохранена, поэтому только логируем.
func (s *Service) clearSelection(ctx context.Context, sessionID string) {
	if sessionID == "" {
		return
	}
	if err := s.selections.ClearSelection(ctx, sessionID); err != nil {
		s.logger.Warn("clearSelection: failed for session=%s: %v", sessionID, err)
	}
}

// applyInput накладывает переданные поля input поверх брони.
// nil-указатели (поле не передано) сохраняют прежнее значение.
func applyInput(m *domain.Meeting, input models.UpsertInput) {
	if input.Start != nil {
		m.Start = *input.Start
	}
	if input.End != nil {
		m.End = *input.End
	}
	if input.ClientName != nil {
		m.ClientName = *input.ClientName
	}
	if input.Phone != nil {
		m.Phone = input.Phone
	}
	if input.Reason != nil {
		m.Reason = *input.Reason
	}
	if input.AssignedBy != nil {
		m.AssignedBy = input.AssignedBy
	}
	if input.Title != nil {
		m.Title = input.Title
	}
	if input.Notes != nil {
		m.Notes = input.Notes
	}
	if input.Equipment != nil {
		m.Equipment = input.Equipment
	}
}

// applySupportDefaults пересчитывает support-поля из input с дефолтами
func applySupportDefaults(m *domain.Meeting, input models.UpsertInput) {
	if input.SupportStatus != nil {
		m.SupportStatus = *input.SupportStatus
	} else {
		m.SupportStatus = domain.DefaultSupportStatus
	}
	if input.SupportNotes != nil {
		m.SupportNotes = *input.SupportNotes
	} else {
		m.SupportNotes = domain.DefaultSupportNotes
	}
	m.NormalizeSupport()
}
