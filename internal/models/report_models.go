package models

// StaffHoursRow is one row of the staff LEFT JOIN shifts query feeding the
// hours report. StartTime/EndTime are nil for staff members with no shifts.
type StaffHoursRow struct {
	StaffID   int64   `db:"staff_id"`
	Name      string  `db:"name"`
	ShiftType string  `db:"shift_type"`
	StartTime *string `db:"start_time"`
	EndTime   *string `db:"end_time"`
}

// HoursReportRow is one aggregated entry of the hours report, one per staff
// member. Staff with zero shifts appear with TotalHours 0.
type HoursReportRow struct {
	StaffID    int64   `json:"staff_id"`
	Name       string  `json:"name"`
	ShiftType  string  `json:"shift_type"`
	TotalHours float64 `json:"total_hours"`
}

// WorkRecordRow is one row of the tabular projection consumed by the
// spreadsheet exporter.
type WorkRecordRow struct {
	Name      string  `db:"name"`
	Phone     *string `db:"phone"`
	ShiftType string  `db:"shift_type"`
	WorkDate  string  `db:"work_date"`
	Branch    string  `db:"branch"`
	StartTime string  `db:"start_time"`
	EndTime   string  `db:"end_time"`
}
