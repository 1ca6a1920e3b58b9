package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDeriveStatus(t *testing.T) {
	now := time.Date(2026, 3, 14, 15, 0, 0, 0, time.UTC)

	yesterday := time.Date(2026, 3, 13, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, EventStatusCompleted, DeriveStatus(yesterday, now))

	today := time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, EventStatusUpcoming, DeriveStatus(today, now), "an event is not completed on its own day")

	tomorrow := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, EventStatusUpcoming, DeriveStatus(tomorrow, now))
}

func TestRefreshStatus(t *testing.T) {
	m := EventModel{
		EventDate:   time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		EventStatus: EventStatusUpcoming, // stale
	}
	m.RefreshStatus(time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC))
	assert.Equal(t, EventStatusCompleted, m.EventStatus)
}
