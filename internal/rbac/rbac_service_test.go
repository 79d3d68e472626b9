package rbac

import (
	"testing"

	"go-leave/internal/domain"
	"go-leave/internal/rbac/infra"

	"github.com/stretchr/testify/assert"
)

func newTestService(t *testing.T) Service {
	t.Helper()
	enforcer, err := infra.NewEnforcer("")
	assert.NoError(t, err)

	svc, err := NewService(enforcer, DefaultPolicy, RoleInheritance)
	assert.NoError(t, err)
	return svc
}

func TestRBACService_Enforce(t *testing.T) {
	svc := newTestService(t)

	tests := []struct {
		role     string
		resource string
		action   string
		want     bool
	}{
		{RoleEmployee, "leave", "create", true},
		{RoleEmployee, "attendance", "mark", true},
		{RoleEmployee, "leave", "approve", false},
		{RoleEmployee, "attendance", "bulk", false},
		{RoleEmployee, "holiday", "create", false},
		{RoleAdmin, "leave", "approve", true},
		{RoleAdmin, "attendance", "read", true},
		// inherited from EMPLOYEE
		{RoleAdmin, "leave", "create", true},
		{RoleAdmin, "attendance", "mark", true},
		{"GUEST", "leave", "read_own", false},
	}

	for _, tt := range tests {
		t.Run(tt.role+"_"+tt.resource+"_"+tt.action, func(t *testing.T) {
			allowed, err := svc.Enforce(domain.EnforceRequest{
				EmployeeID: "emp-1",
				Role:       tt.role,
				Resource:   tt.resource,
				Action:     tt.action,
			})

			assert.NoError(t, err)
			assert.Equal(t, tt.want, allowed)
		})
	}
}

func TestRBACService_PermissionsForRole(t *testing.T) {
	svc := newTestService(t)

	employee, err := svc.PermissionsForRole(RoleEmployee)
	assert.NoError(t, err)
	admin, err := svc.PermissionsForRole(RoleAdmin)
	assert.NoError(t, err)

	assert.Len(t, employee, 7)
	assert.Len(t, admin, len(DefaultPolicy))
	assert.Contains(t, admin, domain.PermissionResponse{Resource: "leave", Action: "create"})
	assert.NotContains(t, employee, domain.PermissionResponse{Resource: "leave", Action: "approve"})
}
