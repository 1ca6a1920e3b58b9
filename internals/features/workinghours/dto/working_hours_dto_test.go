package dto

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	whModel "nssportal_backend/internals/features/workinghours/model"
)

func TestComputeHours(t *testing.T) {
	cases := []struct {
		name  string
		start string
		end   string
		want  float64
	}{
		{"morning shift", "09:00", "11:30", 2.5},
		{"quarter hour", "14:00", "14:15", 0.25},
		{"zero length", "10:00", "10:00", 0},
		{"end before start clamps to zero", "18:00", "09:00", 0},
		{"full day", "00:00", "23:59", 23.983333333333334},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ComputeHours(tc.start, tc.end)
			require.NoError(t, err)
			assert.InDelta(t, tc.want, got, 1e-9)
		})
	}
}

func TestComputeHoursRejectsBadClock(t *testing.T) {
	for _, in := range []string{"9am", "25:00", "12:60", "", "12-30"} {
		_, err := ComputeHours(in, "10:00")
		assert.Error(t, err, "start %q", in)
		_, err = ComputeHours("10:00", in)
		assert.Error(t, err, "end %q", in)
	}
}

func TestCreateRequestDerivesHoursAndStatus(t *testing.T) {
	req := CreateWorkingHoursRequest{
		EntryActivityName: "Blood donation camp",
		EntryDate:         "2026-03-14",
		EntryStartTime:    "09:00",
		EntryEndTime:      "11:30",
	}
	owner, dept := uuid.New(), uuid.New()

	m, err := req.ToModel(owner, dept)
	require.NoError(t, err)
	assert.Equal(t, owner, m.EntryOwnerID)
	assert.Equal(t, dept, m.EntryDepartmentID)
	assert.Equal(t, 2.5, m.EntryHours)
	assert.Equal(t, "pending", m.EntryStatus)
}

func TestCreateRequestRejectsBadDate(t *testing.T) {
	req := CreateWorkingHoursRequest{
		EntryActivityName: "Camp",
		EntryDate:         "14-03-2026",
		EntryStartTime:    "09:00",
		EntryEndTime:      "11:00",
	}
	_, err := req.ToModel(uuid.New(), uuid.New())
	assert.Error(t, err)
}

func TestUpdateRecomputesHoursWhenEitherClockChanges(t *testing.T) {
	current := &whModel.WorkingHoursEntryModel{
		EntryStartTime: "09:00",
		EntryEndTime:   "11:30",
		EntryHours:     2.5,
	}

	end := "12:00"
	req := UpdateWorkingHoursRequest{EntryEndTime: &end}
	updates, err := req.Updates(current)
	require.NoError(t, err)
	assert.Equal(t, 3.0, updates["entry_hours"], "hours recomputed from stored start + new end")

	start := "10:00"
	req = UpdateWorkingHoursRequest{EntryStartTime: &start}
	updates, err = req.Updates(current)
	require.NoError(t, err)
	assert.Equal(t, 1.5, updates["entry_hours"])
}

func TestUpdateLeavesHoursAloneWithoutClockChange(t *testing.T) {
	current := &whModel.WorkingHoursEntryModel{
		EntryStartTime: "09:00",
		EntryEndTime:   "11:30",
	}
	name := "Renamed activity"
	req := UpdateWorkingHoursRequest{EntryActivityName: &name}

	updates, err := req.Updates(current)
	require.NoError(t, err)
	assert.NotContains(t, updates, "entry_hours")
	assert.NotContains(t, updates, "entry_status", "an edit never touches the review state")
	assert.Equal(t, "Renamed activity", updates["entry_activity_name"])
}

func TestUpdateClampsReversedClocks(t *testing.T) {
	current := &whModel.WorkingHoursEntryModel{
		EntryStartTime: "09:00",
		EntryEndTime:   "11:30",
	}
	end := "08:00"
	req := UpdateWorkingHoursRequest{EntryEndTime: &end}

	updates, err := req.Updates(current)
	require.NoError(t, err)
	assert.Equal(t, 0.0, updates["entry_hours"])
}
