package services

import (
	"fmt"
	"sort"

	"pcbang_backend/internal/models"
	"pcbang_backend/internal/repositories"
	"pcbang_backend/pkg/utils"
)

// --- ReportService Interface ---
type ReportService interface {
	HoursReport() ([]models.HoursReportRow, error)
	WorkRecords() ([]models.WorkRecordRow, error)
}

// --- reportService Implementation ---
type reportService struct {
	reportRepo repositories.ReportRepository
}

// NewReportService creates a new instance of ReportService.
func NewReportService(rr repositories.ReportRepository) ReportService {
	return &reportService{reportRepo: rr}
}

// HoursReport aggregates total worked hours per staff member across all
// their shifts. Staff with zero shifts appear with TotalHours 0, and rows
// with malformed time strings contribute 0 hours instead of failing the
// report. Output is ordered by staff id for deterministic comparison.
func (s *reportService) HoursReport() ([]models.HoursReportRow, error) {
	rows, err := s.reportRepo.GetStaffHoursRows()
	if err != nil {
		return nil, fmt.Errorf("failed to load hours report rows: %w", err)
	}

	totals := map[int64]*models.HoursReportRow{}
	for _, row := range rows {
		entry, ok := totals[row.StaffID]
		if !ok {
			entry = &models.HoursReportRow{
				StaffID:   row.StaffID,
				Name:      row.Name,
				ShiftType: row.ShiftType,
			}
			totals[row.StaffID] = entry
		}
		if row.StartTime != nil && row.EndTime != nil {
			entry.TotalHours += utils.HoursBetween(*row.StartTime, *row.EndTime)
		}
	}

	report := make([]models.HoursReportRow, 0, len(totals))
	for _, entry := range totals {
		report = append(report, *entry)
	}
	sort.Slice(report, func(i, j int) bool { return report[i].StaffID < report[j].StaffID })
	return report, nil
}

// WorkRecords returns the flat rows the spreadsheet exporter serializes.
func (s *reportService) WorkRecords() ([]models.WorkRecordRow, error) {
	records, err := s.reportRepo.GetWorkRecordRows()
	if err != nil {
		return nil, fmt.Errorf("failed to load work records: %w", err)
	}
	return records, nil
}
