package handlers

import (
	"errors"
	"net/http"

	"pcbang_backend/internal/models"
	"pcbang_backend/internal/services"
	"pcbang_backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// ScheduleHandler holds the scheduling and calendar services.
type ScheduleHandler struct {
	scheduleService services.ScheduleService
	calendarService services.CalendarService
}

// NewScheduleHandler creates a new ScheduleHandler.
func NewScheduleHandler(ss services.ScheduleService, cs services.CalendarService) *ScheduleHandler {
	return &ScheduleHandler{scheduleService: ss, calendarService: cs}
}

// GetEvents returns the calendar events for a date range, in the shape the
// calendar widget consumes. Query params: start, end (YYYY-MM-DD, inclusive)
// and an optional branch filter ("all" or absent means every branch).
func (h *ScheduleHandler) GetEvents(c *gin.Context) {
	rangeStart := c.Query("start")
	rangeEnd := c.Query("end")
	branch := c.DefaultQuery("branch", services.BranchFilterAll)

	events, err := h.calendarService.ProjectEvents(rangeStart, rangeEnd, branch)
	if err != nil {
		utils.LogError(err, "GetEvents: Error from calendarService.ProjectEvents")
		if errors.Is(err, services.ErrInvalidWorkDate) || errors.Is(err, services.ErrUnknownBranch) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Validation failed: "+err.Error(), err.Error()))
		} else {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to fetch events.", "Internal error"))
		}
		return
	}

	if events == nil {
		events = []models.CalendarEvent{}
	}
	c.JSON(http.StatusOK, events)
}

// CreateShift handles the creation of a single manual shift.
func (h *ScheduleHandler) CreateShift(c *gin.Context) {
	var req services.CreateShiftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError(err, "CreateShift: Failed to bind JSON")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid request payload: "+err.Error(), err.Error()))
		return
	}

	shift, err := h.scheduleService.CreateShift(req)
	if err != nil {
		utils.LogError(err, "CreateShift: Error from scheduleService.CreateShift")
		if errors.Is(err, services.ErrStaffNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeBadRequest, "Staff member for shift not found.", err.Error()))
		} else if errors.Is(err, services.ErrInvalidWorkDate) || errors.Is(err, services.ErrShiftTimeFormat) || errors.Is(err, services.ErrUnknownBranch) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Validation failed: "+err.Error(), err.Error()))
		} else {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to create shift.", "Internal error"))
		}
		return
	}
	c.JSON(http.StatusCreated, shift)
}

// DeleteShift handles deleting a shift by id.
func (h *ScheduleHandler) DeleteShift(c *gin.Context) {
	idStr := c.Param("id")
	shiftID, err := utils.StrToInt64(idStr)
	if err != nil {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid shift ID format.", err.Error()))
		return
	}

	err = h.scheduleService.DeleteShift(shiftID)
	if err != nil {
		utils.LogError(err, "DeleteShift: Error from scheduleService.DeleteShift for ID "+idStr)
		if errors.Is(err, services.ErrShiftNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Shift not found to delete.", err.Error()))
		} else {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to delete shift.", "Internal error"))
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Shift deleted successfully"})
}

// AutoAssign fills the week starting at week_start with day and night shifts
// per branch and returns the created/skipped/failed summary.
func (h *ScheduleHandler) AutoAssign(c *gin.Context) {
	var req services.AutoAssignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError(err, "AutoAssign: Failed to bind JSON")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid request payload: "+err.Error(), err.Error()))
		return
	}

	summary, err := h.scheduleService.AutoAssign(req.WeekStart)
	if err != nil {
		utils.LogError(err, "AutoAssign: Error from scheduleService.AutoAssign")
		if errors.Is(err, services.ErrInvalidWorkDate) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Validation failed: "+err.Error(), err.Error()))
		} else {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to run auto-assignment.", "Internal error"))
		}
		return
	}
	c.JSON(http.StatusOK, summary)
}
