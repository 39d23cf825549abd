package app

import (
	"go-hrm/internal/announcement"
	"go-hrm/internal/attendance"
	"go-hrm/internal/auth"
	"go-hrm/internal/auth/token"
	"go-hrm/internal/config"
	"go-hrm/internal/department"
	"go-hrm/internal/employee"
	"go-hrm/internal/employeesalary"
	"go-hrm/internal/leave"
	"go-hrm/internal/mailer"
	"go-hrm/internal/messaging/kafka"
	"go-hrm/internal/middleware"
	"go-hrm/internal/notification"
	"go-hrm/internal/passwordreset"
	"go-hrm/internal/payroll"
	"go-hrm/internal/project"
	"go-hrm/internal/rbac"
	"go-hrm/internal/rbac/infra"
	"go-hrm/internal/shared/counter"
	"go-hrm/internal/shared/media"
	"go-hrm/internal/support"
	"go-hrm/internal/user"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const developmentJWTSecret = "insecure-development-secret"

func tokenManager(cfg *config.Config) *token.Manager {
	secret := cfg.JWTSecret
	if secret == "" {
		// Validate hanya mengizinkan secret kosong di development
		secret = developmentJWTSecret
	}
	return token.NewManager(secret, cfg.JWTAccessTTL, cfg.JWTRefreshTTL)
}

func registerModules(
	router *gin.Engine,
	cfg *config.Config,
	gormDB *gorm.DB,
	rdb *redis.Client,
) error {
	logger := zap.L()
	loc := cfg.Location()

	// --- Repositories ---
	userRepo := user.NewRepository(gormDB)
	counterRepo := counter.NewRepository(gormDB)
	employeeRepo := employee.NewRepository(gormDB)
	departmentRepo := department.NewRepository(gormDB)
	attendanceRepo := attendance.NewRepository(gormDB)
	leaveRepo := leave.NewRepository(gormDB)
	projectRepo := project.NewRepository(gormDB)
	employeeSalaryRepo := employeesalary.NewRepository(gormDB)
	payrollRepo := payroll.NewRepository(gormDB)
	passwordResetRepo := passwordreset.NewRepository(gormDB)
	notificationRepo := notification.NewRepository(gormDB)
	announcementRepo := announcement.NewRepository(gormDB)
	supportRepo := support.NewRepository(gormDB)
	outboxRepo := kafka.NewOutboxRepository(gormDB)
	authRepo := auth.NewRepository(rdb)

	// --- RBAC Core ---
	enforcer, err := infra.NewEnforcer()
	if err != nil {
		return err
	}
	rbacService, err := rbac.NewService(enforcer)
	if err != nil {
		return err
	}

	tokens := tokenManager(cfg)
	mail := mailer.New(cfg, logger)
	entitlements, err := config.ParseEntitlements(cfg.DefaultLeaveEntitlements)
	if err != nil {
		return err
	}

	// --- Services ---
	authService := auth.NewService(authRepo, userRepo, employeeRepo, tokens)
	userService := user.NewService(userRepo)
	employeeService := employee.NewService(gormDB, employeeRepo, userRepo, counterRepo, outboxRepo, rdb, cfg.CompanyEmailDomain)
	departmentService := department.NewService(departmentRepo, employeeRepo, rdb)
	attendanceService := attendance.NewService(gormDB, attendanceRepo, loc)
	leaveService := leave.NewService(gormDB, leaveRepo, employeeRepo, userRepo, notificationRepo, outboxRepo, entitlements)
	projectService := project.NewService(gormDB, projectRepo, userRepo, notificationRepo)
	employeeSalaryService := employeesalary.NewService(gormDB, employeeSalaryRepo, employeeRepo)
	payrollService := payroll.NewService(gormDB, payrollRepo, employeeRepo, employeeSalaryService, attendanceRepo, notificationRepo, outboxRepo)
	passwordResetService := passwordreset.NewService(gormDB, passwordResetRepo, userRepo, employeeRepo, mail)
	notificationService := notification.NewService(notificationRepo)
	announcementService := announcement.NewService(gormDB, announcementRepo, userRepo, employeeRepo, notificationRepo, outboxRepo, loc)
	supportService := support.NewService(gormDB, supportRepo, userRepo, notificationRepo)

	// --- Handlers ---
	authHandler := auth.NewHandler(authService, auth.CookieConfig{
		Secure:     !cfg.IsDevelopment(),
		AccessTTL:  cfg.JWTAccessTTL,
		RefreshTTL: cfg.JWTRefreshTTL,
	})
	userHandler := user.NewHandler(userService)
	employeeHandler := employee.NewHandler(employeeService, media.NewStore(cfg.MediaRoot))
	departmentHandler := department.NewHandler(departmentService)
	attendanceHandler := attendance.NewHandler(attendanceService)
	leaveHandler := leave.NewHandler(leaveService)
	projectHandler := project.NewHandler(projectService)
	employeeSalaryHandler := employeesalary.NewHandler(employeeSalaryService)
	payrollHandler := payroll.NewHandlerWithRedis(payrollService, rdb)
	passwordResetHandler := passwordreset.NewHandler(passwordResetService)
	notificationHandler := notification.NewHandler(notificationService)
	announcementHandler := announcement.NewHandlerWithRedis(announcementService, rdb)
	supportHandler := support.NewHandler(supportService)
	rbacHandler := rbac.NewHandler(rbacService)

	guards := middleware.Guards{
		Tokens:    tokens,
		RBAC:      rbacService,
		Logger:    logger,
		Redis:     rdb,
		AnonLimit: middleware.PerMinute(cfg.RateLimitAnonPerMin),
		UserLimit: middleware.PerMinute(cfg.RateLimitUserPerMin),
	}

	// --- Routes Registration ---
	api := router.Group("/api")
	{
		auth.RegisterRoutes(api, authHandler, guards)
		user.RegisterRoutes(api, userHandler, guards)
		employee.RegisterRoutes(api, employeeHandler, guards)
		department.RegisterRoutes(api, departmentHandler, guards)
		attendance.RegisterRoutes(api, attendanceHandler, guards)
		leave.RegisterRoutes(api, leaveHandler, guards)
		project.RegisterRoutes(api, projectHandler, guards)
		employeesalary.RegisterRoutes(api, employeeSalaryHandler, guards)
		payroll.RegisterRoutes(api, payrollHandler, guards)
		passwordreset.RegisterRoutes(api, passwordResetHandler, guards)
		notification.RegisterRoutes(api, notificationHandler, guards)
		announcement.RegisterRoutes(api, announcementHandler, guards)
		support.RegisterRoutes(api, supportHandler, guards)
		rbac.RegisterRoutes(api, rbacHandler, guards)
	}

	return nil
}
