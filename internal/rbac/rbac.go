package rbac

import (
	"github.com/casbin/casbin/v2"
	casbinmodel "github.com/casbin/casbin/v2/model"
)

// Roles are fixed for this system; policies are static and loaded once at
// startup. ADMIN inherits everything, SECURITY additionally holds the
// restricted security-notes surface, HR manages employee records, VIEWER only
// reads.
const (
	RoleAdmin    = "ADMIN"
	RoleHR       = "HR"
	RoleSecurity = "SECURITY"
	RoleViewer   = "VIEWER"
)

const modelText = `
[request_definition]
r = sub, obj, act

[policy_definition]
p = sub, obj, act

[role_definition]
g = _, _

[policy_effect]
e = some(where (p.eft == allow))

[matchers]
m = g(r.sub, p.sub) && r.obj == p.obj && r.act == p.act
`

func NewEnforcer() (*casbin.Enforcer, error) {
	m, err := casbinmodel.NewModelFromString(modelText)
	if err != nil {
		return nil, err
	}

	e, err := casbin.NewEnforcer(m)
	if err != nil {
		return nil, err
	}

	policies := [][]string{
		{RoleViewer, "employee", "read"},
		{RoleHR, "employee", "create"},
		{RoleHR, "employee", "update"},
		{RoleHR, "employee", "delete"},
		{RoleSecurity, "security-notes", "read"},
		{RoleSecurity, "security-notes", "update"},
		{RoleAdmin, "user", "create"},
	}
	if _, err := e.AddPolicies(policies); err != nil {
		return nil, err
	}

	groupings := [][]string{
		{RoleHR, RoleViewer},
		{RoleSecurity, RoleViewer},
		{RoleAdmin, RoleHR},
		{RoleAdmin, RoleSecurity},
	}
	if _, err := e.AddGroupingPolicies(groupings); err != nil {
		return nil, err
	}

	return e, nil
}
