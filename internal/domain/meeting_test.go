package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeSupport_DefaultsUnknownStatus(t *testing.T) {
	m := &Meeting{SupportStatus: "casi_listo"}
	m.NormalizeSupport()
	assert.Equal(t, SupportPending, m.SupportStatus)

	m = &Meeting{SupportStatus: SupportDone}
	m.NormalizeSupport()
	assert.Equal(t, SupportDone, m.SupportStatus)
}

func TestRequiresSupport(t *testing.T) {
	assert.False(t, (&Meeting{}).RequiresSupport())
	assert.True(t, (&Meeting{Equipment: []Equipment{EquipmentLaptop}}).RequiresSupport())
}

func TestDisplayTitle_FallsBackToClientName(t *testing.T) {
	title := "Junta mensual"
	m := &Meeting{ClientName: "Laura Gómez", Title: &title}
	assert.Equal(t, "Junta mensual", m.DisplayTitle())

	empty := ""
	m = &Meeting{ClientName: "Laura Gómez", Title: &empty}
	assert.Equal(t, "Laura Gómez", m.DisplayTitle())
}

func TestSupportSummary_CountsUnknownAsPending(t *testing.T) {
	var s SupportSummary
	s.Count(SupportPending)
	s.Count(SupportInProgress)
	s.Count(SupportDone)
	s.Count("")

	assert.Equal(t, 4, s.Total)
	assert.Equal(t, 2, s.Pending)
	assert.Equal(t, 1, s.InProgress)
	assert.Equal(t, 1, s.Done)
}

func TestStartOfDay(t *testing.T) {
	ts := time.Date(2026, 9, 1, 17, 45, 12, 300, time.UTC)
	assert.Equal(t, time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC), StartOfDay(ts))
}

func TestRoomLabels(t *testing.T) {
	assert.Equal(t, "Sala 2° piso", RoomS2.Label())
	assert.Equal(t, "Sala 3° piso", RoomS3.Label())
	assert.Equal(t, "Sala Verde", RoomVerde.Label())
	assert.Equal(t, "X9", RoomKey("X9").Label())
}
