package middleware

import (
	"net/http"

	autherrors "github.com/mohamedibrahim3/employees-manger/internal/auth/errors"
	"github.com/mohamedibrahim3/employees-manger/internal/rbac"
	"github.com/mohamedibrahim3/employees-manger/internal/shared/response"

	"github.com/gin-gonic/gin"
)

// RBACAuthorize checks the authenticated role against the static policy set.
// It must run after AuthMiddleware, which puts the role on the Gin context.
func RBACAuthorize(service rbac.Service, resource, action string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := c.GetString("role")
		if role == "" {
			response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "missing auth context", nil)
			c.Abort()
			return
		}

		allowed, err := service.Enforce(role, resource, action)
		if err != nil {
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "authorization check failed", nil)
			c.Abort()
			return
		}

		if !allowed {
			response.Error(c, autherrors.ErrForbidden.HTTPStatus, autherrors.ErrForbidden.Code, autherrors.ErrForbidden.Message, nil)
			c.Abort()
			return
		}

		c.Next()
	}
}
