package save_meeting

import (
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/m04kA/SMC-MeetingRoomService/internal/domain"
)

// timestampLayouts поддерживаемые форматы времени: RFC 3339 и то,
// что присылают input'ы datetime-local (с секундами и без)
var timestampLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
}

// parseRange парсит и проверяет интервал брони.
// Порядок проверок фиксирован: начало, конец, затем их порядок.
func parseRange(startRaw, endRaw string) (time.Time, time.Time, error) {
	start, err := parseTimestamp(startRaw)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: %q", ErrInvalidStart, startRaw)
	}

	end, err := parseTimestamp(endRaw)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: %q", ErrInvalidEnd, endRaw)
	}

	if !end.After(start) {
		return time.Time{}, time.Time{}, ErrEndBeforeStart
	}

	return start, end, nil
}

func parseTimestamp(raw string) (time.Time, error) {
	var lastErr error
	for _, layout := range timestampLayouts {
		t, err := time.Parse(layout, raw)
		if err == nil {
			return t, nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}

// validateLengths проверяет лимиты длины текстовых полей формы.
// Лимиты считаются в рунах, а не в байтах - акценты не крадут символы.
func validateLengths(req *Request) error {
	if req.ClientName != nil && utf8.RuneCountInString(*req.ClientName) > domain.MaxClientNameLength {
		return fmt.Errorf("%w: clientName", ErrFieldTooLong)
	}
	if req.Notes != nil && utf8.RuneCountInString(*req.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes", ErrFieldTooLong)
	}
	if req.SupportNotes != nil && utf8.RuneCountInString(*req.SupportNotes) > domain.MaxSupportNotesLength {
		return fmt.Errorf("%w: supportNotes", ErrFieldTooLong)
	}
	return nil
}

// overlaps проверяет пересечение полуоткрытых интервалов [start, end).
// Стыкующиеся брони (конец одной == начало другой) не конфликтуют.
func overlaps(startA, endA, startB, endB time.Time) bool {
	return startA.Before(endB) && startB.Before(endA)
}

// findConflict ищет первую бронь комнаты, пересекающуюся с кандидатом.
// excludeID исключает редактируемую бронь из проверки, чтобы запись
// не конфликтовала сама с собой.
func findConflict(start, end time.Time, existing []*domain.Meeting, excludeID string) *domain.Meeting {
	for _, m := range existing {
		if excludeID != "" && m.ID == excludeID {
			continue
		}
		if overlaps(start, end, m.Start, m.End) {
			return m
		}
	}
	return nil
}
