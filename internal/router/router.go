package router

import (
	"database/sql"
	"math/rand"
	"time"

	"pcbang_backend/internal/handlers"
	"pcbang_backend/internal/middleware"
	"pcbang_backend/internal/repositories"
	"pcbang_backend/internal/services"
	"pcbang_backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// Options carries the configuration the route tree needs.
type Options struct {
	AdminUsername string
	AdminPassword string
}

// Setup initializes the routing for the application.
func Setup(engine *gin.Engine, db *sql.DB, opts Options) error {
	// Initialize Repositories
	staffRepo := repositories.NewStaffRepository(db)
	shiftRepo := repositories.NewShiftRepository(db)
	reportRepo := repositories.NewReportRepository(db)

	// Initialize Services. Auto-assignment gets a time-seeded randomness
	// source; tests construct the service with a fixed seed instead.
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	authService, err := services.NewAuthService(opts.AdminUsername, opts.AdminPassword)
	if err != nil {
		return err
	}
	staffService := services.NewStaffService(staffRepo, shiftRepo, db)
	scheduleService := services.NewScheduleService(staffRepo, shiftRepo, db, rng)
	calendarService := services.NewCalendarService(shiftRepo)
	reportService := services.NewReportService(reportRepo)

	// Initialize Handlers
	authHandler := handlers.NewAuthHandler(authService)
	staffHandler := handlers.NewStaffHandler(staffService)
	scheduleHandler := handlers.NewScheduleHandler(scheduleService, calendarService)
	reportHandler := handlers.NewReportHandler(reportService)

	apiV1 := engine.Group("/api/v1")

	// Public authentication routes
	SetupAuthRoutes(apiV1, authHandler)

	// Authenticated routes
	authenticated := apiV1.Group("")
	authenticated.Use(middleware.AuthMiddleware())
	{
		SetupStaffRoutes(authenticated, staffHandler)
		SetupScheduleRoutes(authenticated, scheduleHandler)
		SetupReportRoutes(authenticated, reportHandler)
	}

	utils.LogInfo("Routes registered", map[string]interface{}{"base_path": "/api/v1"})
	return nil
}
