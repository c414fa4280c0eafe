package domain

import "time"

// Session represents the anonymous browser session the UI operates under.
// Заглушка до реальной аутентификации: id генерируется один раз и
// живёт вместе с admin-флагом и настройками отображения.
type Session struct {
	ID       string
	Admin    bool
	LastRoom RoomKey
	LastView CalendarView

	// ActiveMeetingID указывает на бронь, открытую в редакторе.
	// Пустая строка = редактор в режиме создания или закрыт.
	ActiveMeetingID string

	CreatedAt time.Time
}

// Principal is the resolved caller identity attached to each request.
type Principal struct {
	SessionID string
	Admin     bool
}

// CalendarView is the view granularity last chosen by the user.
// Потребляется только рендером на клиенте, мы её лишь храним.
type CalendarView string

const (
	ViewDay   CalendarView = "day"
	ViewWeek  CalendarView = "week"
	ViewMonth CalendarView = "month"
)

// Valid reports whether the view token is one of the known granularities.
func (v CalendarView) Valid() bool {
	switch v {
	case ViewDay, ViewWeek, ViewMonth:
		return true
	}
	return false
}

// NotificationSeverity classifies a transient user-facing message.
type NotificationSeverity string

const (
	SeverityInfo    NotificationSeverity = "info"
	SeveritySuccess NotificationSeverity = "success"
	SeverityError   NotificationSeverity = "error"
)

// Notification is the single-slot transient message shown to a session.
type Notification struct {
	Message  string
	Severity NotificationSeverity
}
