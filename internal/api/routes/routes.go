package routes

import (
	"site-security-backend/internal/api/handlers"
	"site-security-backend/internal/api/middleware"
	"site-security-backend/internal/config"
	"site-security-backend/internal/repository"
	"site-security-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// Services bundles the wired service layer so the server entrypoint can run
// background work (status sync) against the same instances the routes use.
type Services struct {
	Scheduler *service.ShiftSchedulerService
	Coverage  *service.CoverageService
	Gates     *service.GateService
	Staff     *service.StaffService
}

// SetupRoutes configures all the routes for the application
func SetupRoutes(db *gorm.DB, cfg *config.Config) (*gin.Engine, *Services) {
	// Create router
	router := gin.New()

	// Add middleware
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.CORS(cfg))

	// Initialize validator
	validator := validator.New()

	// Initialize repositories
	shiftRepo := repository.NewShiftAssignmentRepository(db)
	gateRepo := repository.NewGateRepository(db)
	staffRepo := repository.NewStaffMemberRepository(db)

	// Initialize services
	staffService := service.NewStaffService(staffRepo, validator)
	gateService := service.NewGateService(gateRepo)
	coverageService := service.NewCoverageService(shiftRepo, gateRepo, staffService, cfg.CoverageCacheTTL(), cfg.StaffLookupTimeout())
	schedulerService := service.NewShiftSchedulerService(db, shiftRepo, staffRepo, gateRepo, validator, coverageService)
	ldapService := service.NewLDAPService(cfg)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db)
	shiftHandler := handlers.NewShiftHandler(schedulerService)
	coverageHandler := handlers.NewCoverageHandler(coverageService)
	gateHandler := handlers.NewGateHandler(gateService)
	staffHandler := handlers.NewStaffHandler(staffService, ldapService)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// API v1 routes. Authentication is enforced upstream by the gateway;
	// the core trusts its callers.
	v1 := router.Group("/api/v1")
	{
		// Shift scheduling routes
		shifts := v1.Group("/shifts")
		{
			shifts.POST("", shiftHandler.CreateShift)
			shifts.GET("", shiftHandler.ListShifts)
			shifts.GET("/:id", shiftHandler.GetShift)
			shifts.PATCH("/:id", shiftHandler.UpdateShift)
			shifts.POST("/:id/cancel", shiftHandler.CancelShift)
			shifts.POST("/:id/missed", shiftHandler.MarkShiftMissed)
		}

		// Coverage routes (polled by the gate-status dashboard)
		coverage := v1.Group("/coverage")
		{
			coverage.GET("", coverageHandler.GetCoverageSummary)
			coverage.GET("/:location", coverageHandler.GetCoverage)
		}

		// Gate catalogue routes
		gates := v1.Group("/gates")
		{
			gates.GET("", gateHandler.ListGates)
			gates.POST("", gateHandler.CreateGate)
			gates.GET("/:location", gateHandler.GetGate)
			gates.DELETE("/:location", gateHandler.DeleteGate)
		}

		// Staff routes
		staff := v1.Group("/staff")
		{
			staff.POST("", staffHandler.CreateStaff)
			staff.GET("", staffHandler.ListStaff)
			staff.GET("/directory/search", staffHandler.SearchDirectory)
			staff.GET("/:id", staffHandler.GetStaff)
			staff.PATCH("/:id", staffHandler.UpdateStaff)
		}
	}

	return router, &Services{
		Scheduler: schedulerService,
		Coverage:  coverageService,
		Gates:     gateService,
		Staff:     staffService,
	}
}
