package domain

import "time"

// Default values applied by the reservation store
const (
	DefaultSupportStatus = SupportPending
	DefaultSupportNotes  = ""

	// DefaultSlotDuration длительность слота, когда конец не указан явно
	// (правило "+30 минут" из формы бронирования)
	DefaultSlotDuration = 30 * time.Minute
)

// NotificationTTL время жизни транзиентного уведомления (одно на сессию)
const NotificationTTL = 2500 * time.Millisecond

// Business validation constants
const (
	MaxNotesLength        = 500
	MaxSupportNotesLength = 500
	MaxClientNameLength   = 120
)

// Rooms перечисляет все комнаты; используется для валидации и выдачи клиенту
var Rooms = []RoomKey{RoomS2, RoomS3, RoomVerde}

// EquipmentOptions перечисляет все доступные единицы оборудования
var EquipmentOptions = []Equipment{EquipmentVideobeam, EquipmentLaptop, EquipmentBanner}

// SupportStatuses перечисляет состояния workflow поддержки в порядке жизненного цикла
var SupportStatuses = []SupportStatus{SupportPending, SupportInProgress, SupportDone}

// StartOfDay обнуляет время, оставляя только дату
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
