package models

// Shift type values for a staff member. The shift type is both a fixed
// attribute of the staff member and the filter used by auto-assignment.
const (
	ShiftTypeDay   = "day"
	ShiftTypeNight = "night"
)

// Fixed slot times used by auto-assignment. The night shift ends past
// midnight; an end time numerically before the start time means the shift
// wraps into the next calendar day.
const (
	DayShiftStart   = "09:00"
	DayShiftEnd     = "18:00"
	NightShiftStart = "20:00"
	NightShiftEnd   = "02:00"
)

// Branches is the fixed set of physical locations shifts can be assigned to.
// Its length determines how many day/night slots auto-assignment fills per day.
var Branches = []string{"Branch A", "Branch B"}

// IsValidBranch reports whether name is one of the known branches.
func IsValidBranch(name string) bool {
	for _, b := range Branches {
		if b == name {
			return true
		}
	}
	return false
}

// IsValidShiftType reports whether t is a known shift type.
func IsValidShiftType(t string) bool {
	return t == ShiftTypeDay || t == ShiftTypeNight
}

// StaffMember represents an employee on the roster.
// WorkDays holds weekday indices (0=Monday..6=Sunday) on which the staff
// member is eligible for auto-assignment.
type StaffMember struct {
	ID        int64   `json:"id" db:"id"`
	Name      string  `json:"name" db:"name"`
	Phone     *string `json:"phone,omitempty" db:"phone"`
	ShiftType string  `json:"shift_type" db:"shift_type"`
	WorkDays  []int   `json:"work_days" db:"work_days"`
}

// Shift represents one concrete work assignment: a staff member at a branch
// on a date, between two clock times. WorkDate is "YYYY-MM-DD"; StartTime and
// EndTime are "HH:MM" 24-hour strings.
type Shift struct {
	ID        int64  `json:"id" db:"id"`
	StaffID   int64  `json:"staff_id" db:"staff_id"`
	WorkDate  string `json:"work_date" db:"work_date"`
	Branch    string `json:"branch" db:"branch"`
	StartTime string `json:"start_time" db:"start_time"`
	EndTime   string `json:"end_time" db:"end_time"`
}

// ShiftWithStaff is a shift row joined with the staff columns the calendar
// projection needs.
type ShiftWithStaff struct {
	Shift
	StaffName      string `json:"staff_name" db:"staff_name"`
	StaffShiftType string `json:"staff_shift_type" db:"staff_shift_type"`
}
