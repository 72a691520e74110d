package employee

import (
	"github.com/mohamedibrahim3/employees-manger/internal/middleware"
	"github.com/mohamedibrahim3/employees-manger/internal/rbac"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	rbacService rbac.Service,
	logger *zap.Logger,
) {
	employees := r.Group("/employees")
	employees.Use(middleware.AuthMiddleware())
	employees.Use(middleware.ContextLogger(logger))
	{
		employees.GET("",
			middleware.RateLimitByUser(3, 10),
			middleware.RBACAuthorize(rbacService, "employee", "read"),
			handler.GetAll,
		)

		employees.GET("/search",
			middleware.RateLimitByUser(3, 10),
			middleware.RBACAuthorize(rbacService, "employee", "read"),
			handler.Search,
		)

		employees.GET("/administrations",
			middleware.RateLimitByUser(5, 20),
			middleware.RBACAuthorize(rbacService, "employee", "read"),
			handler.Administrations,
		)

		employees.GET("/:id",
			middleware.RateLimitByUser(3, 10),
			middleware.RBACAuthorize(rbacService, "employee", "read"),
			handler.GetById,
		)

		employees.POST("",
			middleware.RateLimitByUser(0.5, 2),
			middleware.RBACAuthorize(rbacService, "employee", "create"),
			handler.Create,
		)

		employees.PUT("/:id",
			middleware.RateLimitByUser(0.5, 2),
			middleware.RBACAuthorize(rbacService, "employee", "update"),
			handler.Update,
		)

		employees.DELETE("/:id",
			middleware.RateLimitByUser(0.1, 1),
			middleware.RBACAuthorize(rbacService, "employee", "delete"),
			handler.Delete,
		)

		// Restricted surface: security notes are readable and editable only
		// by roles holding the security-notes permission.
		employees.GET("/:id/security-notes",
			middleware.RateLimitByUser(1, 5),
			middleware.RBACAuthorize(rbacService, "security-notes", "read"),
			handler.GetSecurityNotes,
		)
		employees.PATCH("/:id/security-notes",
			middleware.RateLimitByUser(0.5, 2),
			middleware.RBACAuthorize(rbacService, "security-notes", "update"),
			handler.UpdateSecurityNotes,
		)

		penalties := employees.Group("/:id/penalties")
		penalties.Use(middleware.RateLimitByUser(1, 5))
		{
			penalties.POST("", middleware.RBACAuthorize(rbacService, "employee", "update"), handler.CreatePenalty)
			penalties.PUT("/:penaltyId", middleware.RBACAuthorize(rbacService, "employee", "update"), handler.UpdatePenalty)
			penalties.DELETE("/:penaltyId", middleware.RBACAuthorize(rbacService, "employee", "update"), handler.DeletePenalty)
		}

		bonuses := employees.Group("/:id/bonuses")
		bonuses.Use(middleware.RateLimitByUser(1, 5))
		{
			bonuses.POST("", middleware.RBACAuthorize(rbacService, "employee", "update"), handler.CreateBonus)
			bonuses.PUT("/:bonusId", middleware.RBACAuthorize(rbacService, "employee", "update"), handler.UpdateBonus)
			bonuses.DELETE("/:bonusId", middleware.RBACAuthorize(rbacService, "employee", "update"), handler.DeleteBonus)
		}

		reports := employees.Group("/:id/efficiency-reports")
		reports.Use(middleware.RateLimitByUser(1, 5))
		{
			reports.POST("", middleware.RBACAuthorize(rbacService, "employee", "update"), handler.CreateEfficiencyReport)
			reports.PUT("/:reportId", middleware.RBACAuthorize(rbacService, "employee", "update"), handler.UpdateEfficiencyReport)
			reports.DELETE("/:reportId", middleware.RBACAuthorize(rbacService, "employee", "update"), handler.DeleteEfficiencyReport)
		}
	}
}
