package save_meeting

import (
	"time"

	"github.com/m04kA/SMC-MeetingRoomService/internal/domain"
	meetingsModels "github.com/m04kA/SMC-MeetingRoomService/internal/service/meetings/models"
)

// Request входные данные сохранения брони.
// MeetingID пустой - создание, заданный - редактирование.
// Start и End приходят сырыми строками (RFC 3339 либо формат
// datetime-local) и парсятся на этапе валидации.
type Request struct {
	MeetingID string
	Room      domain.RoomKey
	Start     string
	End       string

	ClientName   *string
	Phone        *string
	Reason       *domain.Reason
	AssignedBy   *string
	Title        *string
	Notes        *string
	Equipment    []domain.Equipment
	SupportNotes *string
}

// toUpsertInput собирает input стора из запроса и распарсенного интервала
func (r *Request) toUpsertInput(start, end time.Time) meetingsModels.UpsertInput {
	return meetingsModels.UpsertInput{
		ID:           r.MeetingID,
		Start:        &start,
		End:          &end,
		ClientName:   r.ClientName,
		Phone:        r.Phone,
		Reason:       r.Reason,
		AssignedBy:   r.AssignedBy,
		Title:        r.Title,
		Notes:        r.Notes,
		Equipment:    r.Equipment,
		SupportNotes: r.SupportNotes,
	}
}
