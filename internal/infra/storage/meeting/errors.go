package meeting

import "errors"

var (
	// ErrMeetingNotFound возвращается, когда бронь не найдена
	ErrMeetingNotFound = errors.New("meeting.repository: meeting not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("meeting.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("meeting.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("meeting.repository: failed to scan row")
)
