package app

import (
	"github.com/mohamedibrahim3/employees-manger/internal/auth"
	"github.com/mohamedibrahim3/employees-manger/internal/bootstrap"
	"github.com/mohamedibrahim3/employees-manger/internal/employee"
	"github.com/mohamedibrahim3/employees-manger/internal/rbac"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func registerModules(
	router *gin.Engine,
	gormDB *gorm.DB,
	rdb *redis.Client,
) error {
	// Fail fast if a label table drifted out of sync with its code set.
	employee.MustVerifyLabelMappings()

	// --- Repositories ---
	authRepo := auth.NewRepository(gormDB)
	employeeRepo := employee.NewRepository(gormDB)

	// --- RBAC Core ---
	enforcer, err := rbac.NewEnforcer()
	if err != nil {
		return err
	}
	rbacService := rbac.NewService(enforcer)

	// --- Services ---
	authService := auth.NewService(authRepo)
	employeeService := employee.NewService(gormDB, employeeRepo, rdb, zap.L())

	// --- Handlers ---
	auditLogger := bootstrap.NewStdoutAuditLogger()
	authHandler := auth.NewHandler(authService)
	employeeHandler := employee.NewHandler(employeeService, auditLogger, zap.L())

	// --- Routes Registration ---
	api := router.Group("/api/v1")
	{
		auth.RegisterRoutes(api, authHandler, rbacService)
		employee.RegisterRoutes(api, employeeHandler, rbacService, zap.L())
	}

	return nil
}
