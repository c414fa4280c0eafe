package meetings

import "errors"

var (
	// ErrMeetingNotFound возвращается, когда бронь не найдена
	ErrMeetingNotFound = errors.New("meeting not found")

	// ErrAccessDenied возвращается, когда у сессии нет прав на операцию
	ErrAccessDenied = errors.New("access denied")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("meetings service: internal error")
)
