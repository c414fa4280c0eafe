package domain

import "time"

// RoomKey identifies one of the bookable meeting rooms.
// Комнаты фиксированы; в перспективе должны приезжать из таблицы/конфига.
type RoomKey string

const (
	RoomS2    RoomKey = "S2"
	RoomS3    RoomKey = "S3"
	RoomVerde RoomKey = "VERDE"
)

// Reason describes why the room is being reserved.
type Reason string

const (
	ReasonMeeting      Reason = "reunion"
	ReasonPresentation Reason = "presentacion"
	ReasonOther        Reason = "otro"
)

// Equipment is a support item that can be requested for a meeting.
type Equipment string

const (
	EquipmentVideobeam Equipment = "videobeam"
	EquipmentLaptop    Equipment = "laptop"
	EquipmentBanner    Equipment = "banner"
)

// SupportStatus is the fulfillment state of a meeting's equipment request.
// Независимый от самой брони workflow команды поддержки.
type SupportStatus string

const (
	SupportPending    SupportStatus = "pending"
	SupportInProgress SupportStatus = "in_progress"
	SupportDone       SupportStatus = "done"
)

// Meeting represents a room reservation in the system
type Meeting struct {
	ID       string
	Calendar RoomKey
	Start    time.Time
	End      time.Time

	ClientName string
	Phone      *string
	Reason     Reason
	AssignedBy *string
	Title      *string
	Notes      *string

	Equipment []Equipment

	// OwnerID хранит сессию создателя. Записывается всегда,
	// но для edit/delete права проверяются только по admin-флагу.
	OwnerID string

	SupportStatus SupportStatus
	SupportNotes  string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// RequiresSupport returns true if the meeting requested any equipment
func (m *Meeting) RequiresSupport() bool {
	return len(m.Equipment) > 0
}

// DisplayTitle returns the visible label, falling back to the client name.
func (m *Meeting) DisplayTitle() string {
	if m.Title != nil && *m.Title != "" {
		return *m.Title
	}
	return m.ClientName
}

// NormalizeSupport заполняет поля поддержки дефолтами.
// Вызывается на КАЖДОЙ записи (create и edit), чтобы инвариант
// "support-поля всегда определены" держался на уровне стора.
func (m *Meeting) NormalizeSupport() {
	if !m.SupportStatus.Valid() {
		m.SupportStatus = SupportPending
	}
}

// Valid reports whether the status is one of the known support states.
func (s SupportStatus) Valid() bool {
	switch s {
	case SupportPending, SupportInProgress, SupportDone:
		return true
	}
	return false
}

// Valid reports whether the key names a known room.
func (k RoomKey) Valid() bool {
	switch k {
	case RoomS2, RoomS3, RoomVerde:
		return true
	}
	return false
}

// Label returns the human-readable room name used by the support dashboard.
func (k RoomKey) Label() string {
	switch k {
	case RoomS2:
		return "Sala 2° piso"
	case RoomS3:
		return "Sala 3° piso"
	case RoomVerde:
		return "Sala Verde"
	}
	return string(k)
}

// Valid reports whether the reason is one of the known values.
func (r Reason) Valid() bool {
	switch r {
	case ReasonMeeting, ReasonPresentation, ReasonOther:
		return true
	}
	return false
}

// Valid reports whether the equipment value is a known item.
func (e Equipment) Valid() bool {
	switch e {
	case EquipmentVideobeam, EquipmentLaptop, EquipmentBanner:
		return true
	}
	return false
}

// SupportFilter фильтр для выборки встреч дашборда поддержки
type SupportFilter struct {
	NotEndedBefore time.Time // обычно начало текущего дня
}

// SupportSummary aggregates dashboard counters by support status.
type SupportSummary struct {
	Total      int
	Pending    int
	InProgress int
	Done       int
}

// Count registers a meeting in the summary. An unknown or empty
// status is counted as pending, mirroring the store's default.
func (s *SupportSummary) Count(status SupportStatus) {
	s.Total++
	switch status {
	case SupportInProgress:
		s.InProgress++
	case SupportDone:
		s.Done++
	default:
		s.Pending++
	}
}
