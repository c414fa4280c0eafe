package session

import "errors"

var (
	// ErrSessionNotFound возвращается, когда сессия не найдена
	ErrSessionNotFound = errors.New("session.repository: session not found")

	// ErrStorage возвращается при ошибках работы с Redis
	ErrStorage = errors.New("session.repository: storage error")
)
