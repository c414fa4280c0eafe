package support

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-MeetingRoomService/internal/domain"
	meetingsSvc "github.com/m04kA/SMC-MeetingRoomService/internal/service/meetings"
	meetingsModels "github.com/m04kA/SMC-MeetingRoomService/internal/service/meetings/models"
	"github.com/m04kA/SMC-MeetingRoomService/internal/service/support/models"
	"github.com/m04kA/SMC-MeetingRoomService/pkg/ptr"
)

// Service трекер заявок на оборудование для команды поддержки.
// Читает список броней и двигает supportStatus по workflow
// pending -> in_progress -> done. Доступен только админам.
type Service struct {
	meetingStore MeetingStore
	meetingRepo  MeetingRepository
	sessions     SessionReader
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр трекера поддержки
func NewService(
	meetingStore MeetingStore,
	meetingRepo MeetingRepository,
	sessions SessionReader,
	logger Logger,
) *Service {
	return &Service{
		meetingStore: meetingStore,
		meetingRepo:  meetingRepo,
		sessions:     sessions,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Dashboard возвращает брони с непустым оборудованием, не закончившиеся
// к началу текущего дня, по возрастанию начала, плюс счетчики по статусам.
func (s *Service) Dashboard(ctx context.Context, principal domain.Principal) (*models.DashboardResponse, error) {
	if !principal.Admin {
		s.logger.Warn("Dashboard: access denied for session=%s", principal.SessionID)
		return nil, ErrAccessDenied
	}

	filter := domain.SupportFilter{
		NotEndedBefore: domain.StartOfDay(s.timeProvider.Now()),
	}

	meetings, err := s.meetingRepo.ListRequiringSupport(ctx, filter)
	if err != nil {
		s.logger.Error("Dashboard: repository error: %v", err)
		return nil, fmt.Errorf("%w: Dashboard - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Dashboard: %d meetings require support", len(meetings))
	return models.FromDomainMeetings(meetings), nil
}

// UpdateStatus меняет статус поддержки у брони.
// Полная запись прогоняется через Upsert стора с переопределенным
// статусом - комната берется из самой брони, с fallback'ом на
// последнюю выбранную комнату сессии, если у записи её нет.
func (s *Service) UpdateStatus(ctx context.Context, meetingID string, req *models.UpdateStatusRequest, principal domain.Principal) (*domain.Meeting, error) {
	if !principal.Admin {
		s.logger.Warn("UpdateStatus: access denied for session=%s meeting=%s", principal.SessionID, meetingID)
		return nil, ErrAccessDenied
	}

	status := domain.SupportStatus(req.Status)
	if !status.Valid() {
		s.logger.Warn("UpdateStatus: invalid status=%q for meeting=%s", req.Status, meetingID)
		return nil, ErrInvalidStatus
	}

	m, err := s.meetingStore.GetByID(ctx, meetingID)
	if err != nil {
		if errors.Is(err, meetingsSvc.ErrMeetingNotFound) {
			return nil, ErrMeetingNotFound
		}
		s.logger.Error("UpdateStatus: failed to load meeting id=%s: %v", meetingID, err)
		return nil, fmt.Errorf("%w: UpdateStatus - load meeting: %v", ErrInternal, err)
	}

	room := m.Calendar
	if !room.Valid() {
		room = s.fallbackRoom(ctx, principal)
		s.logger.Warn("UpdateStatus: meeting id=%s has no room, falling back to %s", meetingID, room)
	}

	supportNotes := m.SupportNotes
	if req.SupportNotes != nil {
		supportNotes = *req.SupportNotes
	}

	input := fullUpsertInput(m)
	input.SupportStatus = &status
	input.SupportNotes = &supportNotes

	updated, err := s.meetingStore.Upsert(ctx, input, room, principal)
	if err != nil {
		if errors.Is(err, meetingsSvc.ErrMeetingNotFound) {
			return nil, ErrMeetingNotFound
		}
		s.logger.Error("UpdateStatus: upsert failed for meeting id=%s: %v", meetingID, err)
		return nil, fmt.Errorf("%w: UpdateStatus - upsert: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateStatus: meeting id=%s support status -> %s", meetingID, status)
	return updated, nil
}

// fallbackRoom возвращает последнюю комнату сессии либо дефолтную
func (s *Service) fallbackRoom(ctx context.Context, principal domain.Principal) domain.RoomKey {
	sess, err := s.sessions.Get(ctx, principal.SessionID)
	if err == nil && sess.LastRoom.Valid() {
		return sess.LastRoom
	}
	return domain.RoomS2
}

// fullUpsertInput переносит все поля брони в input, чтобы merge в
// сторе ничего не потерял при смене статуса
func fullUpsertInput(m *domain.Meeting) meetingsModels.UpsertInput {
	return meetingsModels.UpsertInput{
		ID:         m.ID,
		Start:      ptr.Ptr(m.Start),
		End:        ptr.Ptr(m.End),
		ClientName: ptr.Ptr(m.ClientName),
		Phone:      m.Phone,
		Reason:     ptr.Ptr(m.Reason),
		AssignedBy: m.AssignedBy,
		Title:      m.Title,
		Notes:      m.Notes,
		Equipment:  m.Equipment,
		OwnerID:    ptr.Ptr(m.OwnerID),
	}
}
