package support

import "errors"

var (
	// ErrMeetingNotFound возвращается, когда бронь не найдена
	ErrMeetingNotFound = errors.New("meeting not found")

	// ErrAccessDenied возвращается, когда дашборд запрашивает не-админ
	ErrAccessDenied = errors.New("access denied")

	// ErrInvalidStatus возвращается при неизвестном статусе поддержки
	ErrInvalidStatus = errors.New("invalid support status")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("support service: internal error")
)
