package rbac_test

import (
	"testing"

	"github.com/mohamedibrahim3/employees-manger/internal/rbac"

	"github.com/stretchr/testify/assert"
)

func TestEnforcerPolicies(t *testing.T) {
	enforcer, err := rbac.NewEnforcer()
	assert.NoError(t, err)

	service := rbac.NewService(enforcer)

	cases := []struct {
		role     string
		resource string
		action   string
		allowed  bool
	}{
		{rbac.RoleViewer, "employee", "read", true},
		{rbac.RoleViewer, "employee", "create", false},
		{rbac.RoleViewer, "security-notes", "read", false},

		{rbac.RoleHR, "employee", "read", true},
		{rbac.RoleHR, "employee", "create", true},
		{rbac.RoleHR, "employee", "update", true},
		{rbac.RoleHR, "employee", "delete", true},
		{rbac.RoleHR, "security-notes", "read", false},
		{rbac.RoleHR, "security-notes", "update", false},

		{rbac.RoleSecurity, "employee", "read", true},
		{rbac.RoleSecurity, "employee", "create", false},
		{rbac.RoleSecurity, "security-notes", "read", true},
		{rbac.RoleSecurity, "security-notes", "update", true},

		{rbac.RoleAdmin, "employee", "delete", true},
		{rbac.RoleAdmin, "security-notes", "update", true},
		{rbac.RoleAdmin, "user", "create", true},
		{rbac.RoleHR, "user", "create", false},

		{"UNKNOWN_ROLE", "employee", "read", false},
	}

	for _, tc := range cases {
		allowed, err := service.Enforce(tc.role, tc.resource, tc.action)
		assert.NoError(t, err)
		assert.Equal(t, tc.allowed, allowed, "%s %s %s", tc.role, tc.resource, tc.action)
	}
}
