package repositories

import (
	"database/sql"
	"errors"
	"fmt"

	"pcbang_backend/internal/models"

	"github.com/lib/pq" // For pq.Error and array support
)

// StaffRepository defines the interface for staff roster database operations.
type StaffRepository interface {
	CreateStaffMember(executor SQLExecutor, staff *models.StaffMember) (*models.StaffMember, error)
	GetStaffMemberByID(id int64) (*models.StaffMember, error)
	GetStaffMembers() ([]models.StaffMember, error)
	UpdateStaffMember(executor SQLExecutor, staff *models.StaffMember) (*models.StaffMember, error)
	DeleteStaffMember(executor SQLExecutor, id int64) error
}

type staffRepository struct {
	db *sql.DB
}

// NewStaffRepository creates a new instance of StaffRepository.
func NewStaffRepository(db *sql.DB) StaffRepository {
	return &staffRepository{db: db}
}

// workDaysToArray converts weekday indices to the int64 slice lib/pq arrays expect.
func workDaysToArray(days []int) pq.Int64Array {
	arr := make(pq.Int64Array, 0, len(days))
	for _, d := range days {
		arr = append(arr, int64(d))
	}
	return arr
}

func arrayToWorkDays(arr pq.Int64Array) []int {
	days := make([]int, 0, len(arr))
	for _, d := range arr {
		days = append(days, int(d))
	}
	return days
}

func (r *staffRepository) CreateStaffMember(executor SQLExecutor, staff *models.StaffMember) (*models.StaffMember, error) {
	query := `INSERT INTO staff (name, phone, shift_type, work_days)
	          VALUES ($1, $2, $3, $4)
	          RETURNING id`

	err := executor.QueryRow(query,
		staff.Name, staff.Phone, staff.ShiftType, workDaysToArray(staff.WorkDays),
	).Scan(&staff.ID)

	if err != nil {
		return nil, fmt.Errorf("%w: creating staff member: %v", ErrDatabaseError, err)
	}
	return staff, nil
}

func scanStaffMemberRow(row scanner) (*models.StaffMember, error) {
	var staff models.StaffMember
	var phone sql.NullString
	var workDays pq.Int64Array

	err := row.Scan(&staff.ID, &staff.Name, &phone, &staff.ShiftType, &workDays)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("%w: scanning staff member: %v", ErrDatabaseError, err)
	}

	if phone.Valid {
		staff.Phone = &phone.String
	}
	staff.WorkDays = arrayToWorkDays(workDays)
	return &staff, nil
}

func (r *staffRepository) GetStaffMemberByID(id int64) (*models.StaffMember, error) {
	query := `SELECT id, name, phone, shift_type, work_days FROM staff WHERE id = $1`
	return scanStaffMemberRow(r.db.QueryRow(query, id))
}

func (r *staffRepository) GetStaffMembers() ([]models.StaffMember, error) {
	staffMembers := []models.StaffMember{}

	query := `SELECT id, name, phone, shift_type, work_days FROM staff ORDER BY id ASC`
	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("%w: querying staff members: %v", ErrDatabaseError, err)
	}
	defer rows.Close()

	for rows.Next() {
		staff, err := scanStaffMemberRow(rows)
		if err != nil {
			return nil, err
		}
		staffMembers = append(staffMembers, *staff)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterating staff member rows: %v", ErrDatabaseError, err)
	}
	return staffMembers, nil
}

func (r *staffRepository) UpdateStaffMember(executor SQLExecutor, staff *models.StaffMember) (*models.StaffMember, error) {
	query := `UPDATE staff SET name = $1, phone = $2, shift_type = $3, work_days = $4
	          WHERE id = $5
	          RETURNING id`

	err := executor.QueryRow(query,
		staff.Name, staff.Phone, staff.ShiftType, workDaysToArray(staff.WorkDays), staff.ID,
	).Scan(&staff.ID)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("%w: updating staff member ID %d: %v", ErrDatabaseError, staff.ID, err)
	}
	return staff, nil
}

func (r *staffRepository) DeleteStaffMember(executor SQLExecutor, id int64) error {
	query := `DELETE FROM staff WHERE id = $1`
	result, err := executor.Exec(query, id)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code.Name() == "foreign_key_violation" {
			return fmt.Errorf("%w: staff member ID %d is still referenced by shifts (constraint: %s)", ErrDatabaseError, id, pqErr.Constraint)
		}
		return fmt.Errorf("%w: deleting staff member ID %d: %v", ErrDatabaseError, id, err)
	}
	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
