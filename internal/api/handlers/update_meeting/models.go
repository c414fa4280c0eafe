package update_meeting

import (
	"errors"
	"fmt"

	"github.com/m04kA/SMC-MeetingRoomService/internal/domain"
	saveMeeting "github.com/m04kA/SMC-MeetingRoomService/internal/usecase/save_meeting"
)

var (
	errInvalidReason    = errors.New("unknown reason token")
	errInvalidEquipment = errors.New("unknown equipment token")
)

// UpdateMeetingRequest HTTP request model.
// Отсутствующие поля сохраняют прежние значения (merge-семантика стора).
type UpdateMeetingRequest struct {
	Room  string `json:"room"`
	Start string `json:"start"`
	End   string `json:"end"`

	ClientName   *string  `json:"clientName,omitempty"`
	Phone        *string  `json:"phone,omitempty"`
	Reason       *string  `json:"reason,omitempty"`
	AssignedBy   *string  `json:"assignedBy,omitempty"`
	Title        *string  `json:"title,omitempty"`
	Notes        *string  `json:"notes,omitempty"`
	Equipment    []string `json:"equipment,omitempty"`
	SupportNotes *string  `json:"supportNotes,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *UpdateMeetingRequest) ToUseCaseRequest(meetingID string) (*saveMeeting.Request, error) {
	reason, err := parseReason(r.Reason)
	if err != nil {
		return nil, err
	}

	equipment, err := parseEquipment(r.Equipment)
	if err != nil {
		return nil, err
	}

	return &saveMeeting.Request{
		MeetingID:    meetingID,
		Room:         domain.RoomKey(r.Room),
		Start:        r.Start,
		End:          r.End,
		ClientName:   r.ClientName,
		Phone:        r.Phone,
		Reason:       reason,
		AssignedBy:   r.AssignedBy,
		Title:        r.Title,
		Notes:        r.Notes,
		Equipment:    equipment,
		SupportNotes: r.SupportNotes,
	}, nil
}

func parseReason(raw *string) (*domain.Reason, error) {
	if raw == nil {
		return nil, nil
	}
	reason := domain.Reason(*raw)
	if !reason.Valid() {
		return nil, fmt.Errorf("%w: %q", errInvalidReason, *raw)
	}
	return &reason, nil
}

func parseEquipment(raw []string) ([]domain.Equipment, error) {
	if raw == nil {
		return nil, nil
	}
	equipment := make([]domain.Equipment, 0, len(raw))
	for _, token := range raw {
		e := domain.Equipment(token)
		if !e.Valid() {
			return nil, fmt.Errorf("%w: %q", errInvalidEquipment, token)
		}
		equipment = append(equipment, e)
	}
	return equipment, nil
}
