package services

import (
	"fmt"

	"pcbang_backend/internal/models"
	"pcbang_backend/internal/repositories"
)

// In-memory repository fakes so service behavior can be tested without a
// database. They satisfy the same interfaces the SQL repositories implement.

type fakeStaffRepo struct {
	staff  map[int64]models.StaffMember
	nextID int64
}

func newFakeStaffRepo() *fakeStaffRepo {
	return &fakeStaffRepo{staff: map[int64]models.StaffMember{}}
}

func (r *fakeStaffRepo) add(staff models.StaffMember) models.StaffMember {
	r.nextID++
	staff.ID = r.nextID
	r.staff[staff.ID] = staff
	return staff
}

func (r *fakeStaffRepo) CreateStaffMember(_ repositories.SQLExecutor, staff *models.StaffMember) (*models.StaffMember, error) {
	created := r.add(*staff)
	*staff = created
	return staff, nil
}

func (r *fakeStaffRepo) GetStaffMemberByID(id int64) (*models.StaffMember, error) {
	staff, ok := r.staff[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	return &staff, nil
}

func (r *fakeStaffRepo) GetStaffMembers() ([]models.StaffMember, error) {
	members := make([]models.StaffMember, 0, len(r.staff))
	for id := int64(1); id <= r.nextID; id++ {
		if staff, ok := r.staff[id]; ok {
			members = append(members, staff)
		}
	}
	return members, nil
}

func (r *fakeStaffRepo) UpdateStaffMember(_ repositories.SQLExecutor, staff *models.StaffMember) (*models.StaffMember, error) {
	if _, ok := r.staff[staff.ID]; !ok {
		return nil, repositories.ErrNotFound
	}
	r.staff[staff.ID] = *staff
	return staff, nil
}

func (r *fakeStaffRepo) DeleteStaffMember(_ repositories.SQLExecutor, id int64) error {
	if _, ok := r.staff[id]; !ok {
		return repositories.ErrNotFound
	}
	delete(r.staff, id)
	return nil
}

type fakeShiftRepo struct {
	staffRepo *fakeStaffRepo
	shifts    []models.Shift
	nextID    int64

	// failStaffIDs makes CreateShift fail for the given staff members, to
	// exercise the best-effort batch behavior of auto-assignment.
	failStaffIDs map[int64]bool
}

func newFakeShiftRepo(staffRepo *fakeStaffRepo) *fakeShiftRepo {
	return &fakeShiftRepo{staffRepo: staffRepo, failStaffIDs: map[int64]bool{}}
}

func (r *fakeShiftRepo) CreateShift(_ repositories.SQLExecutor, shift *models.Shift) (*models.Shift, error) {
	if r.failStaffIDs[shift.StaffID] {
		return nil, fmt.Errorf("%w: simulated insert failure", repositories.ErrDatabaseError)
	}
	r.nextID++
	shift.ID = r.nextID
	r.shifts = append(r.shifts, *shift)
	return shift, nil
}

func (r *fakeShiftRepo) GetShiftByID(id int64) (*models.Shift, error) {
	for _, shift := range r.shifts {
		if shift.ID == id {
			s := shift
			return &s, nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (r *fakeShiftRepo) GetShiftsInRange(startDate, endDate string, branch *string) ([]models.ShiftWithStaff, error) {
	rows := []models.ShiftWithStaff{}
	for _, shift := range r.shifts {
		if shift.WorkDate < startDate || shift.WorkDate > endDate {
			continue
		}
		if branch != nil && shift.Branch != *branch {
			continue
		}
		row := models.ShiftWithStaff{Shift: shift}
		if staff, ok := r.staffRepo.staff[shift.StaffID]; ok {
			row.StaffName = staff.Name
			row.StaffShiftType = staff.ShiftType
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func (r *fakeShiftRepo) ShiftExists(staffID int64, workDate, branch, startTime, endTime string) (bool, error) {
	for _, shift := range r.shifts {
		if shift.StaffID == staffID && shift.WorkDate == workDate && shift.Branch == branch &&
			shift.StartTime == startTime && shift.EndTime == endTime {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeShiftRepo) CountShiftsForStaff(staffID int64) (int, error) {
	count := 0
	for _, shift := range r.shifts {
		if shift.StaffID == staffID {
			count++
		}
	}
	return count, nil
}

func (r *fakeShiftRepo) DeleteShift(_ repositories.SQLExecutor, id int64) error {
	for i, shift := range r.shifts {
		if shift.ID == id {
			r.shifts = append(r.shifts[:i], r.shifts[i+1:]...)
			return nil
		}
	}
	return repositories.ErrNotFound
}

type fakeReportRepo struct {
	hoursRows []models.StaffHoursRow
	records   []models.WorkRecordRow
	err       error
}

func (r *fakeReportRepo) GetStaffHoursRows() ([]models.StaffHoursRow, error) {
	if r.err != nil {
		return nil, r.err
	}
	return r.hoursRows, nil
}

func (r *fakeReportRepo) GetWorkRecordRows() ([]models.WorkRecordRow, error) {
	if r.err != nil {
		return nil, r.err
	}
	return r.records, nil
}

// noopShuffler keeps eligible staff in roster order so assignment outcomes
// are predictable in tests.
type noopShuffler struct{}

func (noopShuffler) Shuffle(n int, swap func(i, j int)) {}

func strPtr(s string) *string { return &s }
