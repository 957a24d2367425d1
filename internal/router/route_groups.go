package router

import (
	"pcbang_backend/internal/handlers"
	"pcbang_backend/internal/middleware"

	"github.com/gin-gonic/gin"
)

// SetupAuthRoutes sets up the authentication routes.
func SetupAuthRoutes(apiGroup *gin.RouterGroup, authHandler *handlers.AuthHandler) {
	authRoutes := apiGroup.Group("/auth")
	{
		authRoutes.POST("/login", authHandler.Login)
	}
}

// SetupStaffRoutes sets up the staff roster routes.
// Write operations are restricted to the Admin role.
func SetupStaffRoutes(authenticatedGroup *gin.RouterGroup, staffHandler *handlers.StaffHandler) {
	staffWriteRoutes := authenticatedGroup.Group("/staff")
	staffWriteRoutes.Use(middleware.RoleAuthMiddleware("Admin"))
	{
		staffWriteRoutes.POST("", staffHandler.CreateStaffMember)
		staffWriteRoutes.PUT("/:id", staffHandler.UpdateStaffMember)
		staffWriteRoutes.DELETE("/:id", staffHandler.DeleteStaffMember)
	}

	authenticatedGroup.GET("/staff", staffHandler.GetStaffMembers)
	authenticatedGroup.GET("/staff/:id", staffHandler.GetStaffMemberByID)
}

// SetupScheduleRoutes sets up the calendar feed, shift CRUD and
// auto-assignment routes.
func SetupScheduleRoutes(authenticatedGroup *gin.RouterGroup, scheduleHandler *handlers.ScheduleHandler) {
	authenticatedGroup.GET("/events", scheduleHandler.GetEvents)

	shiftRoutes := authenticatedGroup.Group("/shifts")
	shiftRoutes.Use(middleware.RoleAuthMiddleware("Admin"))
	{
		shiftRoutes.POST("", scheduleHandler.CreateShift)
		shiftRoutes.DELETE("/:id", scheduleHandler.DeleteShift)
	}

	authenticatedGroup.POST("/auto-assign", middleware.RoleAuthMiddleware("Admin"), scheduleHandler.AutoAssign)
}

// SetupReportRoutes sets up the reporting routes.
func SetupReportRoutes(authenticatedGroup *gin.RouterGroup, reportHandler *handlers.ReportHandler) {
	reportRoutes := authenticatedGroup.Group("/reports")
	{
		reportRoutes.GET("/hours", reportHandler.GetHoursReport)
		reportRoutes.GET("/export", reportHandler.ExportWorkRecords)
	}
}
