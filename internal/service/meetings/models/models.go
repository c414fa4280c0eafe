package models

import (
	"time"

	"github.com/m04kA/SMC-MeetingRoomService/internal/domain"
)

// UpsertInput входные данные операции upsert.
// nil-указатель означает "поле не передано": при редактировании
// такие поля сохраняют прежнее значение (merge-семантика).
type UpsertInput struct {
	ID            string // пустой = создание новой брони
	Start         *time.Time
	End           *time.Time
	ClientName    *string
	Phone         *string
	Reason        *domain.Reason
	AssignedBy    *string
	Title         *string
	Notes         *string
	Equipment     []domain.Equipment // nil = не передано, пустой слайс = очистить
	OwnerID       *string
	SupportStatus *domain.SupportStatus
	SupportNotes  *string
}

// MeetingResponse ответ с данными брони
type MeetingResponse struct {
	ID       string `json:"id"`
	Calendar string `json:"calendar"`
	Start    string `json:"start"` // RFC 3339
	End      string `json:"end"`   // RFC 3339

	ClientName string  `json:"clientName"`
	Phone      *string `json:"phone,omitempty"`
	Reason     string  `json:"reason"`
	AssignedBy *string `json:"assignedBy,omitempty"`
	Title      *string `json:"title,omitempty"`
	Notes      *string `json:"notes,omitempty"`

	Equipment []string `json:"equipment"`
	OwnerID   string   `json:"ownerId"`

	SupportStatus string `json:"supportStatus"`
	SupportNotes  string `json:"supportNotes"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// MeetingListResponse ответ со списком броней
type MeetingListResponse struct {
	Meetings []MeetingResponse `json:"meetings"`
}

// FromDomainMeeting конвертирует domain модель в DTO
func FromDomainMeeting(m *domain.Meeting) *MeetingResponse {
	if m == nil {
		return nil
	}

	equipment := make([]string, len(m.Equipment))
	for i, e := range m.Equipment {
		equipment[i] = string(e)
	}

	return &MeetingResponse{
		ID:            m.ID,
		Calendar:      string(m.Calendar),
		Start:         m.Start.Format(time.RFC3339),
		End:           m.End.Format(time.RFC3339),
		ClientName:    m.ClientName,
		Phone:         m.Phone,
		Reason:        string(m.Reason),
		AssignedBy:    m.AssignedBy,
		Title:         m.Title,
		Notes:         m.Notes,
		Equipment:     equipment,
		OwnerID:       m.OwnerID,
		SupportStatus: string(m.SupportStatus),
		SupportNotes:  m.SupportNotes,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

// FromDomainMeetingList конвертирует список domain моделей в DTO
func FromDomainMeetingList(meetings []*domain.Meeting) *MeetingListResponse {
	resp := &MeetingListResponse{
		Meetings: make([]MeetingResponse, 0, len(meetings)),
	}
	for _, m := range meetings {
		if converted := FromDomainMeeting(m); converted != nil {
			resp.Meetings = append(resp.Meetings, *converted)
		}
	}
	return resp
}
