package repositories

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"pcbang_backend/internal/models"

	"github.com/lib/pq" // For pq.Error
)

// ShiftRepository defines the interface for shift assignment database operations.
type ShiftRepository interface {
	CreateShift(executor SQLExecutor, shift *models.Shift) (*models.Shift, error)
	GetShiftByID(id int64) (*models.Shift, error)
	GetShiftsInRange(startDate, endDate string, branch *string) ([]models.ShiftWithStaff, error)
	ShiftExists(staffID int64, workDate, branch, startTime, endTime string) (bool, error)
	CountShiftsForStaff(staffID int64) (int, error)
	DeleteShift(executor SQLExecutor, id int64) error
}

type shiftRepository struct {
	db *sql.DB
}

// NewShiftRepository creates a new instance of ShiftRepository.
func NewShiftRepository(db *sql.DB) ShiftRepository {
	return &shiftRepository{db: db}
}

func (r *shiftRepository) CreateShift(executor SQLExecutor, shift *models.Shift) (*models.Shift, error) {
	query := `INSERT INTO shifts (staff_id, work_date, branch, start_time, end_time)
	          VALUES ($1, $2, $3, $4, $5)
	          RETURNING id`

	err := executor.QueryRow(query,
		shift.StaffID, shift.WorkDate, shift.Branch, shift.StartTime, shift.EndTime,
	).Scan(&shift.ID)

	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) {
			if pqErr.Code.Name() == "foreign_key_violation" {
				return nil, fmt.Errorf("%w: creating shift (staff_id %d not found, constraint: %s)", ErrNotFound, shift.StaffID, pqErr.Constraint)
			}
			if pqErr.Code.Name() == "unique_violation" {
				return nil, fmt.Errorf("%w: identical shift already exists for staff_id %d on %s", ErrDuplicateKey, shift.StaffID, shift.WorkDate)
			}
		}
		return nil, fmt.Errorf("%w: creating shift: %v", ErrDatabaseError, err)
	}
	return shift, nil
}

func (r *shiftRepository) GetShiftByID(id int64) (*models.Shift, error) {
	shift := &models.Shift{}
	query := `SELECT id, staff_id, work_date, branch, start_time, end_time FROM shifts WHERE id = $1`

	err := r.db.QueryRow(query, id).Scan(
		&shift.ID, &shift.StaffID, &shift.WorkDate, &shift.Branch, &shift.StartTime, &shift.EndTime,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("%w: getting shift by ID %d: %v", ErrDatabaseError, id, err)
	}
	return shift, nil
}

// GetShiftsInRange returns shifts with work_date in [startDate, endDate]
// (inclusive), joined with the owning staff member and ordered by
// (work_date, staff name). A nil branch means no branch filter.
func (r *shiftRepository) GetShiftsInRange(startDate, endDate string, branch *string) ([]models.ShiftWithStaff, error) {
	shifts := []models.ShiftWithStaff{}

	var queryBuilder strings.Builder
	queryBuilder.WriteString(`SELECT
	    sh.id, sh.staff_id, sh.work_date, sh.branch, sh.start_time, sh.end_time,
	    s.name AS staff_name, s.shift_type AS staff_shift_type
	  FROM shifts sh
	  JOIN staff s ON sh.staff_id = s.id
	  WHERE sh.work_date BETWEEN $1 AND $2`)

	args := []interface{}{startDate, endDate}
	if branch != nil {
		queryBuilder.WriteString(" AND sh.branch = $3")
		args = append(args, *branch)
	}
	queryBuilder.WriteString(" ORDER BY sh.work_date ASC, s.name ASC")

	rows, err := r.db.Query(queryBuilder.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("%w: querying shifts in range: %v", ErrDatabaseError, err)
	}
	defer rows.Close()

	for rows.Next() {
		var row models.ShiftWithStaff
		if err := rows.Scan(
			&row.ID, &row.StaffID, &row.WorkDate, &row.Branch, &row.StartTime, &row.EndTime,
			&row.StaffName, &row.StaffShiftType,
		); err != nil {
			return nil, fmt.Errorf("%w: scanning shift row: %v", ErrDatabaseError, err)
		}
		shifts = append(shifts, row)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterating shift rows: %v", ErrDatabaseError, err)
	}
	return shifts, nil
}

// ShiftExists reports whether an identical (staff, date, branch, start, end)
// assignment is already stored. Auto-assignment uses this for its idempotent skip.
func (r *shiftRepository) ShiftExists(staffID int64, workDate, branch, startTime, endTime string) (bool, error) {
	var exists bool
	query := `SELECT EXISTS (
	            SELECT 1 FROM shifts
	            WHERE staff_id = $1 AND work_date = $2 AND branch = $3 AND start_time = $4 AND end_time = $5
	          )`

	err := r.db.QueryRow(query, staffID, workDate, branch, startTime, endTime).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("%w: checking shift existence: %v", ErrDatabaseError, err)
	}
	return exists, nil
}

func (r *shiftRepository) CountShiftsForStaff(staffID int64) (int, error) {
	var count int
	query := `SELECT COUNT(*) FROM shifts WHERE staff_id = $1`

	err := r.db.QueryRow(query, staffID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("%w: counting shifts for staff ID %d: %v", ErrDatabaseError, staffID, err)
	}
	return count, nil
}

func (r *shiftRepository) DeleteShift(executor SQLExecutor, id int64) error {
	query := `DELETE FROM shifts WHERE id = $1`
	result, err := executor.Exec(query, id)
	if err != nil {
		return fmt.Errorf("%w: deleting shift ID %d: %v", ErrDatabaseError, id, err)
	}
	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
