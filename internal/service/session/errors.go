package session

import "errors"

var (
	// ErrSessionNotFound возвращается, когда сессия не найдена
	ErrSessionNotFound = errors.New("session not found")

	// ErrInvalidRoom возвращается при неизвестном ключе комнаты
	ErrInvalidRoom = errors.New("invalid room key")

	// ErrInvalidView возвращается при неизвестном виде календаря
	ErrInvalidView = errors.New("invalid calendar view")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("session service: internal error")
)
