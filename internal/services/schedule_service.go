package services

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"pcbang_backend/internal/models"
	"pcbang_backend/internal/repositories"
	"pcbang_backend/pkg/utils"
)

// --- Custom Service Errors for Scheduling ---
var (
	ErrShiftNotFound   = errors.New("shift not found")
	ErrInvalidWorkDate = errors.New("invalid work date, please use YYYY-MM-DD")
	ErrShiftTimeFormat = errors.New("invalid shift time, please use HH:MM (24-hour)")
	ErrUnknownBranch   = errors.New("unknown branch")
)

// --- Shift DTOs ---
type CreateShiftRequest struct {
	StaffID   int64  `json:"staff_id" binding:"required"`
	WorkDate  string `json:"work_date" binding:"required"`
	Branch    string `json:"branch" binding:"required"`
	StartTime string `json:"start_time" binding:"required"`
	EndTime   string `json:"end_time" binding:"required"`
}

type AutoAssignRequest struct {
	WeekStart string `json:"week_start" binding:"required"`
}

// AutoAssignSummary reports what a best-effort assignment batch did: Created
// counts new shifts, Skipped counts slots whose identical shift already
// existed, Failed counts individual inserts that errored (each is logged with
// its date/branch/staff identification).
type AutoAssignSummary struct {
	Created int `json:"created"`
	Skipped int `json:"skipped"`
	Failed  int `json:"failed"`
}

// Shuffler is the randomness source injected into auto-assignment.
// *math/rand.Rand satisfies it directly; tests supply a fixed seed to make
// assignment outcomes reproducible.
type Shuffler interface {
	Shuffle(n int, swap func(i, j int))
}

// --- ScheduleService Interface ---
type ScheduleService interface {
	CreateShift(req CreateShiftRequest) (*models.Shift, error)
	DeleteShift(shiftID int64) error
	AutoAssign(weekStart string) (*AutoAssignSummary, error)
}

// --- scheduleService Implementation ---
type scheduleService struct {
	staffRepo repositories.StaffRepository
	shiftRepo repositories.ShiftRepository
	db        *sql.DB
	rng       Shuffler
}

// NewScheduleService creates a new instance of ScheduleService.
func NewScheduleService(sr repositories.StaffRepository, shr repositories.ShiftRepository, db *sql.DB, rng Shuffler) ScheduleService {
	return &scheduleService{
		staffRepo: sr,
		shiftRepo: shr,
		db:        db,
		rng:       rng,
	}
}

func validateClockTime(clock string, field string) error {
	if _, err := time.Parse("15:04", clock); err != nil {
		return fmt.Errorf("%w: %s %q", ErrShiftTimeFormat, field, clock)
	}
	return nil
}

// CreateShift stores one manual shift assignment. The staff reference is
// validated before any write; the legacy behavior of silently accepting
// orphan shifts is gone.
func (s *scheduleService) CreateShift(req CreateShiftRequest) (*models.Shift, error) {
	if _, err := time.Parse(utils.DateLayout, req.WorkDate); err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidWorkDate, req.WorkDate)
	}
	if !models.IsValidBranch(req.Branch) {
		return nil, fmt.Errorf("%w: %q", ErrUnknownBranch, req.Branch)
	}
	if err := validateClockTime(req.StartTime, "start_time"); err != nil {
		return nil, err
	}
	if err := validateClockTime(req.EndTime, "end_time"); err != nil {
		return nil, err
	}

	if _, err := s.staffRepo.GetStaffMemberByID(req.StaffID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, fmt.Errorf("%w: staff ID %d", ErrStaffNotFound, req.StaffID)
		}
		return nil, fmt.Errorf("failed to validate staff member for shift: %w", err)
	}

	shift := &models.Shift{
		StaffID:   req.StaffID,
		WorkDate:  req.WorkDate,
		Branch:    req.Branch,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
	}

	createdShift, err := s.shiftRepo.CreateShift(s.db, shift)
	if err != nil {
		return nil, fmt.Errorf("failed to create shift in repository: %w", err)
	}
	return createdShift, nil
}

func (s *scheduleService) DeleteShift(shiftID int64) error {
	err := s.shiftRepo.DeleteShift(s.db, shiftID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrShiftNotFound
		}
		return fmt.Errorf("failed to delete shift: %w", err)
	}
	return nil
}

// eligibleFor returns the staff members of the given shift type who may work
// on the given weekday (0=Monday..6=Sunday).
func eligibleFor(staff []models.StaffMember, shiftType string, weekday int) []models.StaffMember {
	eligible := []models.StaffMember{}
	for _, member := range staff {
		if member.ShiftType != shiftType {
			continue
		}
		for _, d := range member.WorkDays {
			if d == weekday {
				eligible = append(eligible, member)
				break
			}
		}
	}
	return eligible
}

// AutoAssign fills the day and night slot of every branch for the 7 days
// starting at weekStart. Eligible staff lists are shuffled independently per
// day so repeated runs spread the load; an identical existing shift is skipped
// rather than duplicated, which makes the whole operation idempotent.
//
// The batch is best-effort: a failed insert is logged and counted, and the
// remaining days and branches are still processed. The caller is expected to
// pass a Monday; a non-Monday start is accepted and simply treated as day 0
// of the window.
func (s *scheduleService) AutoAssign(weekStart string) (*AutoAssignSummary, error) {
	monday, err := time.Parse(utils.DateLayout, weekStart)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidWorkDate, weekStart)
	}

	staff, err := s.staffRepo.GetStaffMembers()
	if err != nil {
		return nil, fmt.Errorf("failed to load staff for auto-assignment: %w", err)
	}

	summary := &AutoAssignSummary{}
	for dayOffset := 0; dayOffset < 7; dayOffset++ {
		day := monday.AddDate(0, 0, dayOffset)
		workDate := day.Format(utils.DateLayout)
		weekday := utils.WeekdayIndex(day)

		dayEligible := eligibleFor(staff, models.ShiftTypeDay, weekday)
		nightEligible := eligibleFor(staff, models.ShiftTypeNight, weekday)
		s.rng.Shuffle(len(dayEligible), func(i, j int) {
			dayEligible[i], dayEligible[j] = dayEligible[j], dayEligible[i]
		})
		s.rng.Shuffle(len(nightEligible), func(i, j int) {
			nightEligible[i], nightEligible[j] = nightEligible[j], nightEligible[i]
		})

		for i, branch := range models.Branches {
			if i < len(dayEligible) {
				s.assignSlot(summary, dayEligible[i].ID, workDate, branch, models.DayShiftStart, models.DayShiftEnd)
			}
			if i < len(nightEligible) {
				s.assignSlot(summary, nightEligible[i].ID, workDate, branch, models.NightShiftStart, models.NightShiftEnd)
			}
		}
	}
	return summary, nil
}

// assignSlot inserts one shift unless the identical assignment already
// exists. Storage errors are non-fatal for the batch; they are logged with
// enough identification to find the slot and counted as failed.
func (s *scheduleService) assignSlot(summary *AutoAssignSummary, staffID int64, workDate, branch, startTime, endTime string) {
	exists, err := s.shiftRepo.ShiftExists(staffID, workDate, branch, startTime, endTime)
	if err != nil {
		utils.LogWarn("auto-assign: existence check failed", map[string]interface{}{
			"work_date": workDate, "branch": branch, "staff_id": staffID, "error": err.Error(),
		})
		summary.Failed++
		return
	}
	if exists {
		summary.Skipped++
		return
	}

	shift := &models.Shift{
		StaffID:   staffID,
		WorkDate:  workDate,
		Branch:    branch,
		StartTime: startTime,
		EndTime:   endTime,
	}
	if _, err := s.shiftRepo.CreateShift(s.db, shift); err != nil {
		// A concurrent run may have filled the slot between the existence
		// check and the insert; the unique index turns that into a skip.
		if errors.Is(err, repositories.ErrDuplicateKey) {
			summary.Skipped++
			return
		}
		utils.LogWarn("auto-assign: shift insert failed", map[string]interface{}{
			"work_date": workDate, "branch": branch, "staff_id": staffID, "error": err.Error(),
		})
		summary.Failed++
		return
	}
	summary.Created++
}
