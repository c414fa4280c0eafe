package models

import (
	"time"

	"github.com/m04kA/SMC-MeetingRoomService/internal/domain"
)

// SessionResponse ответ с состоянием сессии
type SessionResponse struct {
	ID              string `json:"id"`
	Admin           bool   `json:"admin"`
	LastRoom        string `json:"lastRoom"`
	LastView        string `json:"lastView"`
	ActiveMeetingID string `json:"activeMeetingId,omitempty"`
	CreatedAt       string `json:"createdAt"` // RFC 3339
}

// NotificationResponse транзиентное уведомление сессии
type NotificationResponse struct {
	Message  string `json:"message"`
	Severity string `json:"severity"`
}

// FromDomainSession конвертирует domain модель в DTO
func FromDomainSession(s *domain.Session) *SessionResponse {
	if s == nil {
		return nil
	}
	return &SessionResponse{
		ID:              s.ID,
		Admin:           s.Admin,
		LastRoom:        string(s.LastRoom),
		LastView:        string(s.LastView),
		ActiveMeetingID: s.ActiveMeetingID,
		CreatedAt:       s.CreatedAt.Format(time.RFC3339),
	}
}

// FromDomainNotification конвертирует уведомление в DTO (nil, если слот пуст)
func FromDomainNotification(n *domain.Notification) *NotificationResponse {
	if n == nil {
		return nil
	}
	return &NotificationResponse{
		Message:  n.Message,
		Severity: string(n.Severity),
	}
}
