package models

import (
	"time"

	"github.com/m04kA/SMC-MeetingRoomService/internal/domain"
)

// UpdateStatusRequest запрос на смену статуса поддержки
type UpdateStatusRequest struct {
	Status       string  `json:"status"`
	SupportNotes *string `json:"supportNotes,omitempty"`
}

// DashboardItem строка дашборда поддержки
type DashboardItem struct {
	ID            string   `json:"id"`
	Calendar      string   `json:"calendar"`
	RoomLabel     string   `json:"roomLabel"`
	Start         string   `json:"start"` // RFC 3339
	End           string   `json:"end"`   // RFC 3339
	ClientName    string   `json:"clientName"`
	Phone         *string  `json:"phone,omitempty"`
	Title         string   `json:"title"` // título visible либо motivo
	Equipment     []string `json:"equipment"`
	SupportStatus string   `json:"supportStatus"`
	SupportNotes  string   `json:"supportNotes"`
}

// DashboardSummary счетчики дашборда по статусам
type DashboardSummary struct {
	Total      int `json:"total"`
	Pending    int `json:"pending"`
	InProgress int `json:"inProgress"`
	Done       int `json:"done"`
}

// DashboardResponse ответ дашборда поддержки
type DashboardResponse struct {
	Summary DashboardSummary `json:"summary"`
	Items   []DashboardItem  `json:"items"`
}

// FromDomainMeetings строит дашборд из списка броней с оборудованием
func FromDomainMeetings(meetings []*domain.Meeting) *DashboardResponse {
	resp := &DashboardResponse{
		Items: make([]DashboardItem, 0, len(meetings)),
	}

	var summary domain.SupportSummary
	for _, m := range meetings {
		summary.Count(m.SupportStatus)

		equipment := make([]string, len(m.Equipment))
		for i, e := range m.Equipment {
			equipment[i] = string(e)
		}

		// в таблице дашборда показываем título, иначе motivo
		title := "-"
		if m.Title != nil && *m.Title != "" {
			title = *m.Title
		} else if m.Reason != "" {
			title = string(m.Reason)
		}

		resp.Items = append(resp.Items, DashboardItem{
			ID:            m.ID,
			Calendar:      string(m.Calendar),
			RoomLabel:     m.Calendar.Label(),
			Start:         m.Start.Format(time.RFC3339),
			End:           m.End.Format(time.RFC3339),
			ClientName:    m.ClientName,
			Phone:         m.Phone,
			Title:         title,
			Equipment:     equipment,
			SupportStatus: string(m.SupportStatus),
			SupportNotes:  m.SupportNotes,
		})
	}

	resp.Summary = DashboardSummary{
		Total:      summary.Total,
		Pending:    summary.Pending,
		InProgress: summary.InProgress,
		Done:       summary.Done,
	}

	return resp
}
