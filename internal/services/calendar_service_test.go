package services

import (
	"testing"

	"pcbang_backend/internal/models"
	"pcbang_backend/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCalendarFixture(t *testing.T) (*fakeStaffRepo, *fakeShiftRepo, CalendarService) {
	t.Helper()
	staffRepo := newFakeStaffRepo()
	shiftRepo := newFakeShiftRepo(staffRepo)
	return staffRepo, shiftRepo, NewCalendarService(shiftRepo)
}

func seedShift(t *testing.T, repo *fakeShiftRepo, staffID int64, date, branch, start, end string) {
	t.Helper()
	_, err := repo.CreateShift(nil, &models.Shift{
		StaffID: staffID, WorkDate: date, Branch: branch, StartTime: start, EndTime: end,
	})
	require.NoError(t, err)
}

func TestProjectEventsValidation(t *testing.T) {
	_, _, svc := newCalendarFixture(t)

	_, err := svc.ProjectEvents("2024/01/01", "2024-01-07", "all")
	assert.ErrorIs(t, err, ErrInvalidWorkDate)

	_, err = svc.ProjectEvents("2024-01-01", "soon", "all")
	assert.ErrorIs(t, err, ErrInvalidWorkDate)

	_, err = svc.ProjectEvents("2024-01-01", "2024-01-07", "Branch Z")
	assert.ErrorIs(t, err, ErrUnknownBranch)
}

func TestProjectEventsBranchFilter(t *testing.T) {
	staffRepo, shiftRepo, svc := newCalendarFixture(t)
	staff := staffRepo.add(models.StaffMember{Name: "Alice", ShiftType: models.ShiftTypeDay})
	seedShift(t, shiftRepo, staff.ID, "2024-01-01", "Branch A", "09:00", "18:00")
	seedShift(t, shiftRepo, staff.ID, "2024-01-02", "Branch B", "09:00", "18:00")

	events, err := svc.ProjectEvents("2024-01-01", "2024-01-07", "Branch A")
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Contains(t, events[0].Title, "Branch A")

	// Both the "all" sentinel and an empty filter return every branch.
	for _, filter := range []string{BranchFilterAll, ""} {
		events, err = svc.ProjectEvents("2024-01-01", "2024-01-07", filter)
		require.NoError(t, err)
		assert.Len(t, events, 2)
	}
}

func TestProjectEventsRangeIsInclusive(t *testing.T) {
	staffRepo, shiftRepo, svc := newCalendarFixture(t)
	staff := staffRepo.add(models.StaffMember{Name: "Alice", ShiftType: models.ShiftTypeDay})
	seedShift(t, shiftRepo, staff.ID, "2024-01-01", "Branch A", "09:00", "18:00")
	seedShift(t, shiftRepo, staff.ID, "2024-01-07", "Branch A", "09:00", "18:00")
	seedShift(t, shiftRepo, staff.ID, "2024-01-08", "Branch A", "09:00", "18:00")

	events, err := svc.ProjectEvents("2024-01-01", "2024-01-07", "all")
	require.NoError(t, err)
	assert.Len(t, events, 2)
}

func TestProjectEventsOvernightEndStaysOnSameDate(t *testing.T) {
	staffRepo, shiftRepo, svc := newCalendarFixture(t)
	staff := staffRepo.add(models.StaffMember{Name: "Night Owl", ShiftType: models.ShiftTypeNight})
	seedShift(t, shiftRepo, staff.ID, "2024-01-01", "Branch A", "20:00", "02:00")

	events, err := svc.ProjectEvents("2024-01-01", "2024-01-01", "all")
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, "2024-01-01T20:00:00", events[0].Start)
	// The end keeps the shift's own date even though the clock time wrapped.
	assert.Equal(t, "2024-01-01T02:00:00", events[0].End)
}

func TestProjectEventsOrderedByDateThenName(t *testing.T) {
	staffRepo, shiftRepo, svc := newCalendarFixture(t)
	zoe := staffRepo.add(models.StaffMember{Name: "Zoe", ShiftType: models.ShiftTypeDay})
	amy := staffRepo.add(models.StaffMember{Name: "Amy", ShiftType: models.ShiftTypeDay})
	seedShift(t, shiftRepo, zoe.ID, "2024-01-02", "Branch A", "09:00", "18:00")
	seedShift(t, shiftRepo, zoe.ID, "2024-01-01", "Branch A", "09:00", "18:00")
	seedShift(t, shiftRepo, amy.ID, "2024-01-01", "Branch B", "09:00", "18:00")

	events, err := svc.ProjectEvents("2024-01-01", "2024-01-07", "all")
	require.NoError(t, err)
	require.Len(t, events, 3)
	assert.Contains(t, events[0].Title, "Amy")
	assert.Contains(t, events[1].Title, "Zoe")
	assert.Equal(t, "2024-01-02T09:00:00", events[2].Start)
}

func TestProjectEventsColorsAreStablePerName(t *testing.T) {
	staffRepo, shiftRepo, svc := newCalendarFixture(t)
	day := staffRepo.add(models.StaffMember{Name: "Alice", ShiftType: models.ShiftTypeDay})
	night := staffRepo.add(models.StaffMember{Name: "Bob", ShiftType: models.ShiftTypeNight})
	seedShift(t, shiftRepo, day.ID, "2024-01-01", "Branch A", "09:00", "18:00")
	seedShift(t, shiftRepo, day.ID, "2024-01-02", "Branch A", "09:00", "18:00")
	seedShift(t, shiftRepo, night.ID, "2024-01-01", "Branch B", "20:00", "02:00")

	events, err := svc.ProjectEvents("2024-01-01", "2024-01-07", "all")
	require.NoError(t, err)
	require.Len(t, events, 3)

	byName := map[string][]models.CalendarEvent{}
	for _, event := range events {
		if event.Title[:5] == "Alice" {
			byName["Alice"] = append(byName["Alice"], event)
		} else {
			byName["Bob"] = append(byName["Bob"], event)
		}
	}

	require.Len(t, byName["Alice"], 2)
	assert.Equal(t, byName["Alice"][0].Color, byName["Alice"][1].Color)
	assert.Equal(t, utils.NameColor("Alice"), byName["Alice"][0].Color)

	// Day and night shifts get distinct fixed palettes.
	require.Len(t, byName["Bob"], 1)
	assert.NotEqual(t, byName["Alice"][0].BackgroundColor, byName["Bob"][0].BackgroundColor)
	assert.NotEqual(t, byName["Alice"][0].TextColor, byName["Bob"][0].TextColor)
}
