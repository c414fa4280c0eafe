package save_meeting

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-MeetingRoomService/internal/domain"
	"github.com/m04kA/SMC-MeetingRoomService/pkg/ptr"
)

func TestParseRange_AcceptedLayouts(t *testing.T) {
	cases := []struct {
		name  string
		start string
		end   string
	}{
		{"rfc3339", "2026-09-01T10:00:00Z", "2026-09-01T11:00:00Z"},
		{"datetime-local", "2026-09-01T10:00", "2026-09-01T11:00"},
		{"datetime-local with seconds", "2026-09-01T10:00:00", "2026-09-01T11:00:00"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			start, end, err := parseRange(tc.start, tc.end)
			require.NoError(t, err)
			assert.True(t, end.After(start))
		})
	}
}

func TestParseRange_InvalidStart(t *testing.T) {
	_, _, err := parseRange("no-es-fecha", "2026-09-01T11:00:00Z")
	assert.ErrorIs(t, err, ErrInvalidStart)
}

func TestParseRange_InvalidEnd(t *testing.T) {
	_, _, err := parseRange("2026-09-01T10:00:00Z", "tampoco")
	assert.ErrorIs(t, err, ErrInvalidEnd)
}

func TestParseRange_EndNotAfterStart(t *testing.T) {
	_, _, err := parseRange("2026-09-01T11:00:00Z", "2026-09-01T10:00:00Z")
	assert.ErrorIs(t, err, ErrEndBeforeStart)

	// равные границы тоже отклоняются
	_, _, err = parseRange("2026-09-01T10:00:00Z", "2026-09-01T10:00:00Z")
	assert.ErrorIs(t, err, ErrEndBeforeStart)
}

func TestValidateLengths_CountsRunesNotBytes(t *testing.T) {
	// имя на пределе лимита целиком из многобайтовых символов
	name := strings.Repeat("é", domain.MaxClientNameLength)
	req := &Request{ClientName: ptr.Ptr(name)}
	assert.NoError(t, validateLengths(req))

	req.ClientName = ptr.Ptr(name + "é")
	assert.ErrorIs(t, validateLengths(req), ErrFieldTooLong)
}

func TestValidateLengths_NotesLimits(t *testing.T) {
	req := &Request{Notes: ptr.Ptr(strings.Repeat("ñ", domain.MaxNotesLength+1))}
	assert.ErrorIs(t, validateLengths(req), ErrFieldTooLong)

	req = &Request{SupportNotes: ptr.Ptr(strings.Repeat("ñ", domain.MaxSupportNotesLength+1))}
	assert.ErrorIs(t, validateLengths(req), ErrFieldTooLong)
}

func TestOverlaps_Symmetry(t *testing.T) {
	a1 := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)
	a2 := a1.Add(time.Hour)
	b1 := a1.Add(30 * time.Minute)
	b2 := b1.Add(time.Hour)

	assert.True(t, overlaps(a1, a2, b1, b2))
	assert.True(t, overlaps(b1, b2, a1, a2))
}

func TestOverlaps_TouchingBoundary(t *testing.T) {
	a1 := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)
	a2 := a1.Add(time.Hour)
	// встык: вторая начинается ровно в конце первой
	assert.False(t, overlaps(a1, a2, a2, a2.Add(time.Hour)))
	assert.False(t, overlaps(a2, a2.Add(time.Hour), a1, a2))
}

func TestOverlaps_Containment(t *testing.T) {
	outer1 := time.Date(2026, 9, 1, 9, 0, 0, 0, time.UTC)
	outer2 := outer1.Add(4 * time.Hour)
	inner1 := outer1.Add(time.Hour)
	inner2 := inner1.Add(time.Hour)

	assert.True(t, overlaps(outer1, outer2, inner1, inner2))
	assert.True(t, overlaps(inner1, inner2, outer1, outer2))
}

func TestFindConflict_ExcludesEditedMeeting(t *testing.T) {
	start := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)
	end := start.Add(time.Hour)

	existing := []*domain.Meeting{
		{ID: "m-1", Calendar: domain.RoomS2, Start: start, End: end},
	}

	// без исключения - конфликт с самой собой
	require.NotNil(t, findConflict(start, end, existing, ""))

	// редактируемая запись исключается из проверки
	assert.Nil(t, findConflict(start, end, existing, "m-1"))
}

func TestFindConflict_ReturnsFirstOverlap(t *testing.T) {
	base := time.Date(2026, 9, 1, 9, 0, 0, 0, time.UTC)
	existing := []*domain.Meeting{
		{ID: "m-1", Start: base, End: base.Add(time.Hour)},
		{ID: "m-2", Start: base.Add(2 * time.Hour), End: base.Add(3 * time.Hour)},
	}

	conflict := findConflict(base.Add(2*time.Hour+30*time.Minute), base.Add(4*time.Hour), existing, "")
	require.NotNil(t, conflict)
	assert.Equal(t, "m-2", conflict.ID)
}

func TestFindConflict_NoOverlap(t *testing.T) {
	base := time.Date(2026, 9, 1, 9, 0, 0, 0, time.UTC)
	existing := []*domain.Meeting{
		{ID: "m-1", Start: base, End: base.Add(time.Hour)},
	}

	assert.Nil(t, findConflict(base.Add(time.Hour), base.Add(2*time.Hour), existing, ""))
}
