package services

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"pcbang_backend/internal/models"
	"pcbang_backend/internal/repositories"
	"pcbang_backend/pkg/utils"

	"golang.org/x/text/unicode/norm"
)

// --- Custom Service Errors for Staff ---
var (
	ErrStaffNotFound       = errors.New("staff member not found")
	ErrStaffDataValidation = errors.New("staff data validation error")
	ErrStaffHasShifts      = errors.New("staff member cannot be deleted while shifts reference them")
)

// --- StaffMember DTOs ---
type CreateStaffMemberRequest struct {
	Name      string  `json:"name" binding:"required"`
	Phone     *string `json:"phone"`
	ShiftType string  `json:"shift_type" binding:"required"`
	WorkDays  []int   `json:"work_days" binding:"required"`
}

type UpdateStaffMemberRequest struct {
	Name      *string `json:"name"`
	Phone     *string `json:"phone"`
	ShiftType *string `json:"shift_type"`
	WorkDays  *[]int  `json:"work_days"`
}

// --- StaffService Interface ---
type StaffService interface {
	CreateStaffMember(req CreateStaffMemberRequest) (*models.StaffMember, error)
	GetStaffMemberByID(staffID int64) (*models.StaffMember, error)
	GetStaffMembers() ([]models.StaffMember, error)
	UpdateStaffMember(staffID int64, req UpdateStaffMemberRequest) (*models.StaffMember, error)
	DeleteStaffMember(staffID int64) error
}

// --- staffService Implementation ---
type staffService struct {
	staffRepo repositories.StaffRepository
	shiftRepo repositories.ShiftRepository
	db        *sql.DB
}

// NewStaffService creates a new instance of StaffService.
func NewStaffService(sr repositories.StaffRepository, shr repositories.ShiftRepository, db *sql.DB) StaffService {
	return &staffService{
		staffRepo: sr,
		shiftRepo: shr,
		db:        db,
	}
}

// normalizeName trims whitespace and NFC-normalizes the display name so that
// visually identical names compare (and hash to colors) identically.
func normalizeName(name string) string {
	return norm.NFC.String(strings.TrimSpace(name))
}

// normalizePhone trims the phone number and maps an empty value to nil so it
// is stored as NULL rather than an empty string.
func normalizePhone(phone *string) *string {
	if phone == nil {
		return nil
	}
	return utils.NewNullString(strings.TrimSpace(*phone))
}

func validateWorkDays(days []int) ([]int, error) {
	seen := [7]bool{}
	cleaned := make([]int, 0, len(days))
	for _, d := range days {
		if d < 0 || d > 6 {
			return nil, fmt.Errorf("%w: work day index %d out of range 0..6", ErrStaffDataValidation, d)
		}
		if seen[d] {
			continue
		}
		seen[d] = true
		cleaned = append(cleaned, d)
	}
	return cleaned, nil
}

func (s *staffService) CreateStaffMember(req CreateStaffMemberRequest) (*models.StaffMember, error) {
	name := normalizeName(req.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: name cannot be empty", ErrStaffDataValidation)
	}
	if !models.IsValidShiftType(req.ShiftType) {
		return nil, fmt.Errorf("%w: unknown shift type %q", ErrStaffDataValidation, req.ShiftType)
	}
	workDays, err := validateWorkDays(req.WorkDays)
	if err != nil {
		return nil, err
	}

	staff := &models.StaffMember{
		Name:      name,
		Phone:     normalizePhone(req.Phone),
		ShiftType: req.ShiftType,
		WorkDays:  workDays,
	}

	createdStaff, err := s.staffRepo.CreateStaffMember(s.db, staff)
	if err != nil {
		return nil, fmt.Errorf("failed to create staff member in repository: %w", err)
	}
	return createdStaff, nil
}

func (s *staffService) GetStaffMemberByID(staffID int64) (*models.StaffMember, error) {
	staff, err := s.staffRepo.GetStaffMemberByID(staffID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrStaffNotFound
		}
		return nil, fmt.Errorf("failed to get staff member by ID: %w", err)
	}
	return staff, nil
}

func (s *staffService) GetStaffMembers() ([]models.StaffMember, error) {
	staffMembers, err := s.staffRepo.GetStaffMembers()
	if err != nil {
		return nil, fmt.Errorf("failed to get staff members: %w", err)
	}
	return staffMembers, nil
}

// UpdateStaffMember applies a partial update: fields left unset in the request
// keep their prior value.
func (s *staffService) UpdateStaffMember(staffID int64, req UpdateStaffMemberRequest) (*models.StaffMember, error) {
	staff, err := s.staffRepo.GetStaffMemberByID(staffID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrStaffNotFound
		}
		return nil, fmt.Errorf("failed to find staff member for update: %w", err)
	}

	if req.Name != nil {
		name := normalizeName(*req.Name)
		if name == "" {
			return nil, fmt.Errorf("%w: name cannot be empty if provided", ErrStaffDataValidation)
		}
		staff.Name = name
	}
	if req.Phone != nil {
		staff.Phone = normalizePhone(req.Phone)
	}
	if req.ShiftType != nil {
		if !models.IsValidShiftType(*req.ShiftType) {
			return nil, fmt.Errorf("%w: unknown shift type %q", ErrStaffDataValidation, *req.ShiftType)
		}
		staff.ShiftType = *req.ShiftType
	}
	if req.WorkDays != nil {
		workDays, err := validateWorkDays(*req.WorkDays)
		if err != nil {
			return nil, err
		}
		staff.WorkDays = workDays
	}

	updatedStaff, err := s.staffRepo.UpdateStaffMember(s.db, staff)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrStaffNotFound
		}
		return nil, fmt.Errorf("failed to update staff member in repository: %w", err)
	}
	return updatedStaff, nil
}

// DeleteStaffMember removes a staff member from the roster. Deletion is
// blocked while shifts still reference the staff member, so the shift store
// never holds orphan assignments.
func (s *staffService) DeleteStaffMember(staffID int64) error {
	_, err := s.staffRepo.GetStaffMemberByID(staffID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrStaffNotFound
		}
		return fmt.Errorf("failed to find staff member for deletion: %w", err)
	}

	shiftCount, err := s.shiftRepo.CountShiftsForStaff(staffID)
	if err != nil {
		return fmt.Errorf("failed to count shifts for staff member: %w", err)
	}
	if shiftCount > 0 {
		return fmt.Errorf("%w: staff ID %d has %d shifts", ErrStaffHasShifts, staffID, shiftCount)
	}

	err = s.staffRepo.DeleteStaffMember(s.db, staffID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrStaffNotFound
		}
		return fmt.Errorf("failed to delete staff member: %w", err)
	}
	return nil
}
