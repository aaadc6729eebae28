package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/nominasoft/hr-system/internal/api/handler"
	"github.com/nominasoft/hr-system/internal/api/middleware"
	"github.com/nominasoft/hr-system/internal/core/domain"
	"github.com/nominasoft/hr-system/internal/core/service"
	"github.com/nominasoft/hr-system/internal/core/token"
	"github.com/nominasoft/hr-system/internal/infrastructure/config"
	mongodb "github.com/nominasoft/hr-system/internal/infrastructure/db/mongo"
	redisdb "github.com/nominasoft/hr-system/internal/infrastructure/db/redis"
	"github.com/nominasoft/hr-system/internal/infrastructure/queue"
)

// NewRouter builds and returns the Echo instance with all routes registered.
// The returned Dispatcher must be started by the caller.
func NewRouter(db *mongo.Database, rdb *redis.Client, tokens *token.Service, cfg *config.Config, log zerolog.Logger) (*echo.Echo, *queue.Dispatcher) {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("hr"))

	// --- Dependencies ---
	authRepo := mongodb.NewAuthRepository(db)
	employeeRepo := mongodb.NewEmployeeRepository(db)
	attendanceRepo := mongodb.NewAttendanceRepository(db)
	leaveRepo := mongodb.NewLeaveRepository(db)
	payrollRepo := mongodb.NewPayrollRepository(db)
	revoker := redisdb.NewRevocationList(rdb, cfg.Auth.AccessTokenTTL)

	authService := service.NewAuthService(authRepo, tokens, log)
	employeeService := service.NewEmployeeService(employeeRepo, authRepo, revoker, log)
	attendanceService := service.NewAttendanceService(attendanceRepo, employeeRepo, log)
	leaveService := service.NewLeaveService(leaveRepo, employeeRepo, log)

	payrollProcessor := service.NewPayrollProcessor(payrollRepo, employeeRepo, log)
	dispatcher := queue.NewDispatcher(cfg.Payroll.Workers, payrollProcessor, log)
	payrollService := service.NewPayrollService(payrollRepo, employeeRepo, dispatcher, log)

	authHandler := handler.NewAuthHandler(authService)
	employeeHandler := handler.NewEmployeeHandler(employeeService)
	attendanceHandler := handler.NewAttendanceHandler(attendanceService)
	leaveHandler := handler.NewLeaveHandler(leaveService)
	payrollHandler := handler.NewPayrollHandler(payrollService)

	authMiddleware := middleware.Auth(tokens, revoker)
	hrOnly := middleware.RequireRoles(domain.RoleAdmin, domain.RoleHRManager)
	adminOnly := middleware.RequireRoles(domain.RoleAdmin)

	// --- Auth routes ---
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)
	e.POST("/auth/refresh", authHandler.Refresh)

	// --- Protected routes ---
	v1 := e.Group("/v1", authMiddleware)

	v1.GET("/employees", employeeHandler.List, hrOnly)
	v1.POST("/employees", employeeHandler.Create, hrOnly)
	v1.GET("/employees/:id", employeeHandler.Get)
	v1.PUT("/employees/:id", employeeHandler.Update, hrOnly)
	v1.DELETE("/employees/:id", employeeHandler.Deactivate, adminOnly)

	v1.POST("/attendance/clock-in", attendanceHandler.ClockIn)
	v1.POST("/attendance/clock-out", attendanceHandler.ClockOut)
	v1.GET("/attendance", attendanceHandler.List)

	v1.POST("/leave", leaveHandler.Request)
	v1.GET("/leave", leaveHandler.List)
	v1.PUT("/leave/:id/decision", leaveHandler.Decide, hrOnly)

	v1.GET("/payroll", payrollHandler.List)
	v1.POST("/payroll/run", payrollHandler.Run, adminOnly)

	// --- Health probes and metrics (no auth required) ---
	healthHandler := handler.NewHealthHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())

	return e, dispatcher
}
