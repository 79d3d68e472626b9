package rbac

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go-leave/internal/domain"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type mockService struct {
	EnforceFn     func(req domain.EnforceRequest) (bool, error)
	PermissionsFn func(role string) ([]domain.PermissionResponse, error)
}

func (m *mockService) Enforce(req domain.EnforceRequest) (bool, error) {
	return m.EnforceFn(req)
}

func (m *mockService) PermissionsForRole(role string) ([]domain.PermissionResponse, error) {
	return m.PermissionsFn(role)
}

func newRouter(handler *Handler, role string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(func(c *gin.Context) {
		c.Set("employee_id", "emp-1")
		if role != "" {
			c.Set("role", role)
		}
		c.Next()
	})
	RegisterRoutes(router.Group(""), handler)
	return router
}

func TestHandler_Enforce(t *testing.T) {
	var got domain.EnforceRequest
	svc := &mockService{
		EnforceFn: func(req domain.EnforceRequest) (bool, error) {
			got = req
			return true, nil
		},
	}
	router := newRouter(NewHandler(svc), RoleEmployee)

	req := httptest.NewRequest(http.MethodPost, "/rbac/enforce",
		strings.NewReader(`{"role":"ADMIN","resource":" leave ","action":"create"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"allowed":true`)
	// the token role wins over the body
	assert.Equal(t, RoleEmployee, got.Role)
	assert.Equal(t, "leave", got.Resource)
	assert.Equal(t, "emp-1", got.EmployeeID)
}

func TestHandler_Enforce_NoRole(t *testing.T) {
	router := newRouter(NewHandler(&mockService{}), "")

	req := httptest.NewRequest(http.MethodPost, "/rbac/enforce",
		strings.NewReader(`{"resource":"leave","action":"create"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestHandler_MyPermissions(t *testing.T) {
	svc := &mockService{
		PermissionsFn: func(role string) ([]domain.PermissionResponse, error) {
			assert.Equal(t, RoleAdmin, role)
			return []domain.PermissionResponse{{Resource: "leave", Action: "approve"}}, nil
		},
	}
	router := newRouter(NewHandler(svc), RoleAdmin)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/rbac/me/permissions", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"approve"`)
}
