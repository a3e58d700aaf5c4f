package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/spaceresearch/mission-console/internal/api/handler"
	"github.com/spaceresearch/mission-console/internal/api/middleware"
	"github.com/spaceresearch/mission-console/internal/core/domain"
	"github.com/spaceresearch/mission-console/internal/core/service"
	"github.com/spaceresearch/mission-console/internal/infrastructure/auth"
	"github.com/spaceresearch/mission-console/internal/infrastructure/db/postgrest"
	redisinfra "github.com/spaceresearch/mission-console/internal/infrastructure/db/redis"
	"github.com/spaceresearch/mission-console/internal/infrastructure/mail"
	"github.com/spaceresearch/mission-console/internal/pkg/config"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(cfg *config.Config, db *postgrest.Client, rdb *redis.Client, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("mission_console"))

	// --- Dependencies ---
	provider := auth.NewProvider(auth.Config{
		BaseURL: cfg.Auth.URL,
		APIKey:  cfg.Auth.APIKey,
		Timeout: cfg.Auth.Timeout,
	})
	revoker := redisinfra.NewRevocationStore(rdb)
	mailer := mail.NewMailer(cfg.Mail.ResendAPIKey, cfg.Mail.From)

	profileRepo := postgrest.NewProfileRepository(db)
	departmentRepo := postgrest.NewDepartmentRepository(db)
	employeeRepo := postgrest.NewEmployeeRepository(db, log)
	satelliteRepo := postgrest.NewSatelliteRepository(db, log)
	missionRepo := postgrest.NewMissionRepository(db, log)
	telemetryRepo := postgrest.NewTelemetryRepository(db)
	equipmentRepo := postgrest.NewEquipmentRepository(db)
	researchRepo := postgrest.NewResearchRepository(db)
	reportRepo := postgrest.NewReportRepository(db)

	authService := service.NewAuthService(provider, profileRepo, revoker, mailer, log)
	catalogService := service.NewCatalogService(missionRepo, satelliteRepo, equipmentRepo, log)
	personnelService := service.NewPersonnelService(employeeRepo, departmentRepo, log)
	researchService := service.NewResearchService(researchRepo, profileRepo, log)
	telemetryService := service.NewTelemetryService(telemetryRepo, log)
	analyticsService := service.NewAnalyticsService(missionRepo, satelliteRepo, employeeRepo, reportRepo, log)

	authHandler := handler.NewAuthHandler(authService)
	catalogHandler := handler.NewCatalogHandler(catalogService)
	personnelHandler := handler.NewPersonnelHandler(personnelService)
	researchHandler := handler.NewResearchHandler(researchService)
	telemetryHandler := handler.NewTelemetryHandler(telemetryService)
	analyticsHandler := handler.NewAnalyticsHandler(analyticsService)
	pageHandler := handler.NewPageHandler(
		authService, catalogService, personnelService,
		researchService, telemetryService, analyticsService, log,
	)

	sessionMW := middleware.Session(revoker, cfg.JWTSecret, log)
	signedIn := middleware.RBAC(domain.RoleAdmin, domain.RoleUser)
	adminOnly := middleware.RBAC(domain.RoleAdmin)

	// --- Auth routes ---
	authGroup := e.Group("/auth", sessionMW)
	authGroup.POST("/signup", authHandler.Signup)
	authGroup.POST("/login", authHandler.Login)
	authGroup.POST("/logout", authHandler.Logout)
	authGroup.POST("/reset-password", authHandler.ResetPassword)

	// --- Record API ---
	apiGroup := e.Group("/api", sessionMW)

	apiGroup.GET("/missions", catalogHandler.ListMissions, signedIn)
	apiGroup.GET("/missions/:mission_id/:pad_id/:loc_id", catalogHandler.GetMission, signedIn)
	apiGroup.POST("/missions", catalogHandler.AddMission, adminOnly)
	apiGroup.PUT("/missions/:mission_id/:pad_id/:loc_id", catalogHandler.UpdateMission, adminOnly)
	apiGroup.DELETE("/missions/:mission_id/:pad_id/:loc_id", catalogHandler.DeleteMission, adminOnly)

	apiGroup.GET("/satellites", catalogHandler.ListSatellites, signedIn)
	apiGroup.GET("/satellites/:sat_id", catalogHandler.GetSatellite, signedIn)
	apiGroup.POST("/satellites", catalogHandler.AddSatellite, adminOnly)
	apiGroup.PUT("/satellites/:sat_id", catalogHandler.UpdateSatellite, adminOnly)
	apiGroup.DELETE("/satellites/:sat_id", catalogHandler.DeleteSatellite, adminOnly)

	apiGroup.GET("/equipment", catalogHandler.ListEquipment, signedIn)

	apiGroup.GET("/employees", personnelHandler.ListEmployees, adminOnly)
	apiGroup.GET("/employees/:emp_id", personnelHandler.GetEmployee, adminOnly)
	apiGroup.POST("/employees", personnelHandler.AddEmployee, adminOnly)
	apiGroup.PUT("/employees/:emp_id", personnelHandler.UpdateEmployee, adminOnly)
	apiGroup.DELETE("/employees/:emp_id", personnelHandler.DeleteEmployee, adminOnly)

	apiGroup.GET("/departments", personnelHandler.ListDepartments, adminOnly)
	apiGroup.POST("/departments", personnelHandler.AddDepartment, adminOnly)
	apiGroup.PUT("/departments/:dept_id", personnelHandler.UpdateDepartment, adminOnly)
	apiGroup.DELETE("/departments/:dept_id", personnelHandler.DeleteDepartment, adminOnly)

	apiGroup.GET("/research", researchHandler.ListFacts, signedIn)
	apiGroup.POST("/research", researchHandler.AddFact, adminOnly)
	apiGroup.PUT("/research/:fact_id/:user_id", researchHandler.UpdateFact, adminOnly)
	apiGroup.DELETE("/research/:fact_id/:user_id", researchHandler.DeleteFact, adminOnly)

	apiGroup.GET("/telemetry", telemetryHandler.ListReadings, adminOnly)
	apiGroup.GET("/telemetry/:sat_id/latest", telemetryHandler.LatestReadings, adminOnly)

	apiGroup.GET("/analytics/missions", analyticsHandler.MissionStatistics, signedIn)
	apiGroup.GET("/analytics/satellites", analyticsHandler.SatelliteStatistics, signedIn)
	apiGroup.GET("/analytics/departments", analyticsHandler.DepartmentSummary, adminOnly)
	apiGroup.GET("/analytics/salaries/above-average", analyticsHandler.AboveAverageSalaries, adminOnly)
	apiGroup.GET("/analytics/salaries/report", analyticsHandler.SalaryReport, adminOnly)
	apiGroup.GET("/analytics/employees/:emp_id/details", analyticsHandler.EmployeeDetails, adminOnly)
	apiGroup.GET("/analytics/employees/:emp_id/years-of-service", analyticsHandler.YearsOfService, adminOnly)
	apiGroup.GET("/analytics/employees/:emp_id/subordinates", analyticsHandler.CountSubordinates, adminOnly)

	// --- Health probes and metrics (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())

	// --- Page navigation: everything else goes through the dispatcher ---
	e.GET("/*", pageHandler.Dispatch, sessionMW)

	return e
}
