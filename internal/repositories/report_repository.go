package repositories

import (
	"database/sql"
	"fmt"

	"pcbang_backend/internal/models"
)

// ReportRepository defines the read-only queries behind the hours report and
// the spreadsheet export.
type ReportRepository interface {
	GetStaffHoursRows() ([]models.StaffHoursRow, error)
	GetWorkRecordRows() ([]models.WorkRecordRow, error)
}

type reportRepository struct {
	db *sql.DB
}

// NewReportRepository creates a new instance of ReportRepository.
func NewReportRepository(db *sql.DB) ReportRepository {
	return &reportRepository{db: db}
}

// GetStaffHoursRows left-joins every staff member against their shifts so
// that staff with zero shifts still appear (with NULL times).
func (r *reportRepository) GetStaffHoursRows() ([]models.StaffHoursRow, error) {
	reportRows := []models.StaffHoursRow{}

	query := `SELECT s.id, s.name, s.shift_type, sh.start_time, sh.end_time
	          FROM staff s
	          LEFT JOIN shifts sh ON sh.staff_id = s.id
	          ORDER BY s.id ASC`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("%w: querying staff hours rows: %v", ErrDatabaseError, err)
	}
	defer rows.Close()

	for rows.Next() {
		var row models.StaffHoursRow
		var startTime, endTime sql.NullString
		if err := rows.Scan(&row.StaffID, &row.Name, &row.ShiftType, &startTime, &endTime); err != nil {
			return nil, fmt.Errorf("%w: scanning staff hours row: %v", ErrDatabaseError, err)
		}
		if startTime.Valid {
			row.StartTime = &startTime.String
		}
		if endTime.Valid {
			row.EndTime = &endTime.String
		}
		reportRows = append(reportRows, row)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterating staff hours rows: %v", ErrDatabaseError, err)
	}
	return reportRows, nil
}

// GetWorkRecordRows returns the flat tabular projection the spreadsheet
// exporter consumes.
func (r *reportRepository) GetWorkRecordRows() ([]models.WorkRecordRow, error) {
	records := []models.WorkRecordRow{}

	query := `SELECT s.name, s.phone, s.shift_type, sh.work_date, sh.branch, sh.start_time, sh.end_time
	          FROM shifts sh
	          JOIN staff s ON sh.staff_id = s.id
	          ORDER BY sh.work_date ASC, s.name ASC`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("%w: querying work record rows: %v", ErrDatabaseError, err)
	}
	defer rows.Close()

	for rows.Next() {
		var row models.WorkRecordRow
		var phone sql.NullString
		if err := rows.Scan(&row.Name, &phone, &row.ShiftType, &row.WorkDate, &row.Branch, &row.StartTime, &row.EndTime); err != nil {
			return nil, fmt.Errorf("%w: scanning work record row: %v", ErrDatabaseError, err)
		}
		if phone.Valid {
			row.Phone = &phone.String
		}
		records = append(records, row)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterating work record rows: %v", ErrDatabaseError, err)
	}
	return records, nil
}
