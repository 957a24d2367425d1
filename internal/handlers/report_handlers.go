package handlers

import (
	"net/http"
	"time"

	"pcbang_backend/internal/models"
	"pcbang_backend/internal/services"
	"pcbang_backend/pkg/utils"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
)

const workRecordSheet = "WorkRecords"

// ReportHandler holds the report service.
type ReportHandler struct {
	reportService services.ReportService
}

// NewReportHandler creates a new ReportHandler.
func NewReportHandler(rs services.ReportService) *ReportHandler {
	return &ReportHandler{reportService: rs}
}

// GetHoursReport returns total worked hours per staff member.
func (h *ReportHandler) GetHoursReport(c *gin.Context) {
	report, err := h.reportService.HoursReport()
	if err != nil {
		utils.LogError(err, "GetHoursReport: Error from reportService.HoursReport")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to build hours report.", "Internal error"))
		return
	}

	if report == nil {
		report = []models.HoursReportRow{}
	}
	c.JSON(http.StatusOK, gin.H{"data": report})
}

// ExportWorkRecords streams every stored work record as an .xlsx workbook.
func (h *ReportHandler) ExportWorkRecords(c *gin.Context) {
	records, err := h.reportService.WorkRecords()
	if err != nil {
		utils.LogError(err, "ExportWorkRecords: Error from reportService.WorkRecords")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to load work records for export.", "Internal error"))
		return
	}

	workbook, err := buildWorkRecordWorkbook(records)
	if err != nil {
		utils.LogError(err, "ExportWorkRecords: Failed to build workbook")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to build export workbook.", "Internal error"))
		return
	}
	defer workbook.Close()

	filename := "work_records_" + time.Now().Format("20060102") + ".xlsx"
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	if err := workbook.Write(c.Writer); err != nil {
		utils.LogError(err, "ExportWorkRecords: Failed to stream workbook")
	}
}

func buildWorkRecordWorkbook(records []models.WorkRecordRow) (*excelize.File, error) {
	f := excelize.NewFile()
	index, err := f.NewSheet(workRecordSheet)
	if err != nil {
		return nil, err
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, err
	}

	header := []interface{}{"Name", "Phone", "Shift Type", "Date", "Branch", "Start", "End"}
	if err := f.SetSheetRow(workRecordSheet, "A1", &header); err != nil {
		return nil, err
	}

	for i, record := range records {
		phone := ""
		if record.Phone != nil {
			phone = *record.Phone
		}
		row := []interface{}{record.Name, phone, record.ShiftType, record.WorkDate, record.Branch, record.StartTime, record.EndTime}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		if err := f.SetSheetRow(workRecordSheet, cell, &row); err != nil {
			return nil, err
		}
	}
	return f, nil
}
