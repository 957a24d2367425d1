package services

import (
	"testing"

	"pcbang_backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStaffFixture(t *testing.T) (*fakeStaffRepo, *fakeShiftRepo, StaffService) {
	t.Helper()
	staffRepo := newFakeStaffRepo()
	shiftRepo := newFakeShiftRepo(staffRepo)
	svc := NewStaffService(staffRepo, shiftRepo, nil)
	return staffRepo, shiftRepo, svc
}

func TestCreateStaffMemberNormalizesName(t *testing.T) {
	_, _, svc := newStaffFixture(t)

	// "café" with a decomposed accent plus surrounding whitespace.
	staff, err := svc.CreateStaffMember(CreateStaffMemberRequest{
		Name:      "  café staff  ",
		ShiftType: models.ShiftTypeDay,
		WorkDays:  []int{0, 1},
	})
	require.NoError(t, err)
	assert.Equal(t, "café staff", staff.Name) // NFC composed, trimmed
}

func TestCreateStaffMemberBlankPhoneStoredAsNil(t *testing.T) {
	_, _, svc := newStaffFixture(t)

	staff, err := svc.CreateStaffMember(CreateStaffMemberRequest{
		Name:      "Alice",
		Phone:     strPtr("   "),
		ShiftType: models.ShiftTypeDay,
		WorkDays:  []int{0},
	})
	require.NoError(t, err)
	assert.Nil(t, staff.Phone)
}

func TestCreateStaffMemberValidation(t *testing.T) {
	_, _, svc := newStaffFixture(t)

	tests := []struct {
		name string
		req  CreateStaffMemberRequest
	}{
		{"blank name", CreateStaffMemberRequest{Name: "   ", ShiftType: models.ShiftTypeDay, WorkDays: []int{0}}},
		{"unknown shift type", CreateStaffMemberRequest{Name: "Alice", ShiftType: "evening", WorkDays: []int{0}}},
		{"work day out of range", CreateStaffMemberRequest{Name: "Alice", ShiftType: models.ShiftTypeDay, WorkDays: []int{7}}},
		{"negative work day", CreateStaffMemberRequest{Name: "Alice", ShiftType: models.ShiftTypeDay, WorkDays: []int{-1}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.CreateStaffMember(tt.req)
			assert.ErrorIs(t, err, ErrStaffDataValidation)
		})
	}
}

func TestCreateStaffMemberDeduplicatesWorkDays(t *testing.T) {
	_, _, svc := newStaffFixture(t)

	staff, err := svc.CreateStaffMember(CreateStaffMemberRequest{
		Name:      "Alice",
		ShiftType: models.ShiftTypeNight,
		WorkDays:  []int{3, 3, 1, 1},
	})
	require.NoError(t, err)
	assert.Equal(t, []int{3, 1}, staff.WorkDays)
}

func TestUpdateStaffMemberKeepsUnsetFields(t *testing.T) {
	staffRepo, _, svc := newStaffFixture(t)
	staff := staffRepo.add(models.StaffMember{
		Name:      "Alice",
		Phone:     strPtr("010-1234"),
		ShiftType: models.ShiftTypeDay,
		WorkDays:  []int{0, 2},
	})

	updated, err := svc.UpdateStaffMember(staff.ID, UpdateStaffMemberRequest{
		Phone: strPtr("010-9999"),
	})
	require.NoError(t, err)
	assert.Equal(t, "Alice", updated.Name)
	assert.Equal(t, "010-9999", *updated.Phone)
	assert.Equal(t, models.ShiftTypeDay, updated.ShiftType)
	assert.Equal(t, []int{0, 2}, updated.WorkDays)
}

func TestUpdateStaffMemberValidatesProvidedFields(t *testing.T) {
	staffRepo, _, svc := newStaffFixture(t)
	staff := staffRepo.add(models.StaffMember{Name: "Alice", ShiftType: models.ShiftTypeDay, WorkDays: []int{0}})

	_, err := svc.UpdateStaffMember(staff.ID, UpdateStaffMemberRequest{ShiftType: strPtr("afternoon")})
	assert.ErrorIs(t, err, ErrStaffDataValidation)

	_, err = svc.UpdateStaffMember(999, UpdateStaffMemberRequest{Name: strPtr("Bob")})
	assert.ErrorIs(t, err, ErrStaffNotFound)
}

func TestDeleteStaffMemberBlockedWhileShiftsExist(t *testing.T) {
	staffRepo, shiftRepo, svc := newStaffFixture(t)
	staff := staffRepo.add(models.StaffMember{Name: "Alice", ShiftType: models.ShiftTypeDay, WorkDays: []int{0}})
	_, err := shiftRepo.CreateShift(nil, &models.Shift{
		StaffID: staff.ID, WorkDate: "2024-01-01", Branch: "Branch A",
		StartTime: "09:00", EndTime: "18:00",
	})
	require.NoError(t, err)

	err = svc.DeleteStaffMember(staff.ID)
	assert.ErrorIs(t, err, ErrStaffHasShifts)

	// Once the shift is gone the delete goes through.
	require.NoError(t, shiftRepo.DeleteShift(nil, 1))
	require.NoError(t, svc.DeleteStaffMember(staff.ID))

	assert.ErrorIs(t, svc.DeleteStaffMember(staff.ID), ErrStaffNotFound)
}
