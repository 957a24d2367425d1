package services

import (
	"fmt"
	"sort"
	"time"

	"pcbang_backend/internal/models"
	"pcbang_backend/internal/repositories"
	"pcbang_backend/pkg/utils"
)

// BranchFilterAll is the sentinel meaning "no branch filter".
const BranchFilterAll = "all"

// Fixed palettes per shift type so day and night events are visually distinct
// on the calendar.
const (
	dayBackgroundColor   = "#FFF1C2"
	dayTextColor         = "#4A3B00"
	nightBackgroundColor = "#2B3A55"
	nightTextColor       = "#E8EDF7"
)

// --- CalendarService Interface ---
type CalendarService interface {
	ProjectEvents(rangeStart, rangeEnd, branch string) ([]models.CalendarEvent, error)
}

// --- calendarService Implementation ---
type calendarService struct {
	shiftRepo repositories.ShiftRepository
}

// NewCalendarService creates a new instance of CalendarService.
func NewCalendarService(shr repositories.ShiftRepository) CalendarService {
	return &calendarService{shiftRepo: shr}
}

// ProjectEvents converts the shifts in [rangeStart, rangeEnd] (inclusive)
// into calendar events, optionally filtered to one branch. An empty branch or
// the "all" sentinel means every branch. Events come back ordered by
// (work date, staff name).
//
// The end timestamp is built by literal concatenation of the shift date and
// end clock time. For overnight shifts this produces an end earlier than the
// start, with no day added to the date component; the calendar widget has
// always rendered these as-is, so the projection keeps that behavior.
func (s *calendarService) ProjectEvents(rangeStart, rangeEnd, branch string) ([]models.CalendarEvent, error) {
	if _, err := time.Parse(utils.DateLayout, rangeStart); err != nil {
		return nil, fmt.Errorf("%w: range start %q", ErrInvalidWorkDate, rangeStart)
	}
	if _, err := time.Parse(utils.DateLayout, rangeEnd); err != nil {
		return nil, fmt.Errorf("%w: range end %q", ErrInvalidWorkDate, rangeEnd)
	}

	var branchFilter *string
	if branch != "" && branch != BranchFilterAll {
		if !models.IsValidBranch(branch) {
			return nil, fmt.Errorf("%w: %q", ErrUnknownBranch, branch)
		}
		branchFilter = &branch
	}

	shifts, err := s.shiftRepo.GetShiftsInRange(rangeStart, rangeEnd, branchFilter)
	if err != nil {
		return nil, fmt.Errorf("failed to load shifts for calendar: %w", err)
	}

	sort.SliceStable(shifts, func(i, j int) bool {
		if shifts[i].WorkDate != shifts[j].WorkDate {
			return shifts[i].WorkDate < shifts[j].WorkDate
		}
		return shifts[i].StaffName < shifts[j].StaffName
	})

	events := make([]models.CalendarEvent, 0, len(shifts))
	for _, shift := range shifts {
		background, text := shiftTypePalette(shift.StaffShiftType)
		events = append(events, models.CalendarEvent{
			ID:              shift.ID,
			Title:           fmt.Sprintf("%s (%s-%s) %s", shift.StaffName, shift.StartTime, shift.EndTime, shift.Branch),
			Start:           shift.WorkDate + "T" + shift.StartTime + ":00",
			End:             shift.WorkDate + "T" + shift.EndTime + ":00",
			Color:           utils.NameColor(shift.StaffName),
			BackgroundColor: background,
			TextColor:       text,
		})
	}
	return events, nil
}

func shiftTypePalette(shiftType string) (background, text string) {
	if shiftType == models.ShiftTypeNight {
		return nightBackgroundColor, nightTextColor
	}
	return dayBackgroundColor, dayTextColor
}
