package dto

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	evModel "nssportal_backend/internals/features/events/model"
)

func TestCreateEventDerivesStatus(t *testing.T) {
	now := time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)
	req := CreateEventRequest{
		EventName:         "Tree Plantation Drive",
		EventDate:         "2026-04-01",
		EventMode:         "offline",
		EventDepartmentID: uuid.New().String(),
		EventTags:         []string{"environment"},
	}

	m, err := req.ToModel(uuid.New(), now)
	require.NoError(t, err)
	assert.Equal(t, evModel.EventStatusUpcoming, m.EventStatus)

	req.EventDate = "2026-01-05"
	m, err = req.ToModel(uuid.New(), now)
	require.NoError(t, err)
	assert.Equal(t, evModel.EventStatusCompleted, m.EventStatus)
}

func TestCreateEventRejectsBadInput(t *testing.T) {
	now := time.Now()

	req := CreateEventRequest{
		EventName:         "Drive",
		EventDate:         "01/04/2026",
		EventMode:         "offline",
		EventDepartmentID: uuid.New().String(),
	}
	_, err := req.ToModel(uuid.New(), now)
	assert.Error(t, err, "date must be YYYY-MM-DD")

	req.EventDate = "2026-04-01"
	req.EventDepartmentID = "not-a-uuid"
	_, err = req.ToModel(uuid.New(), now)
	assert.Error(t, err)
}

func TestUpdateEventAlwaysRecomputesStatus(t *testing.T) {
	now := time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)
	current := &evModel.EventModel{
		EventDate:   time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC),
		EventStatus: evModel.EventStatusUpcoming, // stale on purpose
	}

	// even a name-only edit refreshes the derived column
	name := "Renamed Drive"
	req := UpdateEventRequest{EventName: &name}
	updates, err := req.Updates(current, now)
	require.NoError(t, err)
	assert.Equal(t, evModel.EventStatusCompleted, updates["event_status"])

	// moving the date forward flips it back
	newDate := "2026-05-01"
	req = UpdateEventRequest{EventDate: &newDate}
	updates, err = req.Updates(current, now)
	require.NoError(t, err)
	assert.Equal(t, evModel.EventStatusUpcoming, updates["event_status"])
}
