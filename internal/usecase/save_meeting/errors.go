package save_meeting

import "errors"

var (
	// ErrInvalidStart возвращается, когда время начала не парсится
	ErrInvalidStart = errors.New("save_meeting: invalid start timestamp")

	// ErrInvalidEnd возвращается, когда время конца не парсится
	ErrInvalidEnd = errors.New("save_meeting: invalid end timestamp")

	// ErrEndBeforeStart возвращается, когда конец не позже начала
	ErrEndBeforeStart = errors.New("save_meeting: end must be after start")

	// ErrRoomConflict возвращается при пересечении с существующей бронью комнаты
	ErrRoomConflict = errors.New("save_meeting: conflicting reservation in this room")

	// ErrAccessDenied возвращается, когда не-админ редактирует существующую бронь
	ErrAccessDenied = errors.New("save_meeting: access denied")

	// ErrInvalidRoom возвращается при неизвестном ключе комнаты
	ErrInvalidRoom = errors.New("save_meeting: invalid room key")

	// ErrFieldTooLong возвращается при превышении лимитов длины текстовых полей
	ErrFieldTooLong = errors.New("save_meeting: field exceeds length limit")

	// ErrMeetingNotFound возвращается, когда редактируемая бронь не найдена
	ErrMeetingNotFound = errors.New("save_meeting: meeting not found")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("save_meeting: internal error")
)
