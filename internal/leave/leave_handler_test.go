package leave_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go-leave/internal/leave"
	leaveerrors "go-leave/internal/leave/errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type fakeLeaveService struct {
	SubmitFn      func(ctx context.Context, employeeID string, req leave.SubmitLeaveRequest) (leave.LeaveResponse, error)
	TransitionFn  func(ctx context.Context, leaveID, newStatus, actorID string) (leave.LeaveResponse, error)
	UpdateFn      func(ctx context.Context, employeeID, id string, req leave.UpdateLeaveRequest) (leave.LeaveResponse, error)
	GetByIDFn     func(ctx context.Context, id string) (leave.LeaveResponse, error)
	ListFn        func(ctx context.Context, filter leave.ListFilter) ([]leave.LeaveResponse, error)
	ListMineFn    func(ctx context.Context, employeeID string) ([]leave.LeaveResponse, error)
	ListLogsFn    func(ctx context.Context, leaveID string) ([]leave.LeaveLogResponse, error)
	ListAllLogsFn func(ctx context.Context) ([]leave.LeaveLogResponse, error)
}

func (f *fakeLeaveService) Submit(ctx context.Context, employeeID string, req leave.SubmitLeaveRequest) (leave.LeaveResponse, error) {
	return f.SubmitFn(ctx, employeeID, req)
}
func (f *fakeLeaveService) Transition(ctx context.Context, leaveID, newStatus, actorID string) (leave.LeaveResponse, error) {
	return f.TransitionFn(ctx, leaveID, newStatus, actorID)
}
func (f *fakeLeaveService) Update(ctx context.Context, employeeID, id string, req leave.UpdateLeaveRequest) (leave.LeaveResponse, error) {
	return f.UpdateFn(ctx, employeeID, id, req)
}
func (f *fakeLeaveService) GetByID(ctx context.Context, id string) (leave.LeaveResponse, error) {
	return f.GetByIDFn(ctx, id)
}
func (f *fakeLeaveService) List(ctx context.Context, filter leave.ListFilter) ([]leave.LeaveResponse, error) {
	return f.ListFn(ctx, filter)
}
func (f *fakeLeaveService) ListMine(ctx context.Context, employeeID string) ([]leave.LeaveResponse, error) {
	return f.ListMineFn(ctx, employeeID)
}
func (f *fakeLeaveService) ListLogs(ctx context.Context, leaveID string) ([]leave.LeaveLogResponse, error) {
	return f.ListLogsFn(ctx, leaveID)
}
func (f *fakeLeaveService) ListAllLogs(ctx context.Context) ([]leave.LeaveLogResponse, error) {
	return f.ListAllLogsFn(ctx)
}

func newContext(method, target, body string) (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	c.Request = req
	return c, w
}

func TestLeaveHandler_Submit(t *testing.T) {
	employeeID := uuid.NewString()

	t.Run("success", func(t *testing.T) {
		svc := &fakeLeaveService{
			SubmitFn: func(ctx context.Context, eid string, req leave.SubmitLeaveRequest) (leave.LeaveResponse, error) {
				assert.Equal(t, employeeID, eid)
				return leave.LeaveResponse{ID: uuid.NewString(), Status: leave.StatusPending}, nil
			},
		}
		h := leave.NewHandler(svc, nil)
		c, w := newContext(http.MethodPost, "/api/v1/leaves",
			`{"start_date":"2024-01-10","end_date":"2024-01-12","reason":"trip","leave_type_id":"`+uuid.NewString()+`"}`)
		c.Set("employee_id", employeeID)

		h.Submit(c)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, w.Body.String(), "PENDING")
	})

	t.Run("missing leave type", func(t *testing.T) {
		h := leave.NewHandler(&fakeLeaveService{}, nil)
		c, w := newContext(http.MethodPost, "/api/v1/leaves",
			`{"start_date":"2024-01-10","end_date":"2024-01-12","reason":"trip"}`)

		h.Submit(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "INVALID_INPUT")
	})

	t.Run("holiday conflict carries dates", func(t *testing.T) {
		svc := &fakeLeaveService{
			SubmitFn: func(ctx context.Context, eid string, req leave.SubmitLeaveRequest) (leave.LeaveResponse, error) {
				return leave.LeaveResponse{}, leaveerrors.HolidayConflict([]string{"2024-01-11"}, []string{"Founders Day"})
			},
		}
		h := leave.NewHandler(svc, nil)
		c, w := newContext(http.MethodPost, "/api/v1/leaves",
			`{"start_date":"2024-01-10","end_date":"2024-01-12","reason":"trip","leave_type_id":"`+uuid.NewString()+`"}`)

		h.Submit(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "2024-01-11 (Founders Day)")
	})
}

func TestLeaveHandler_Transition(t *testing.T) {
	actorID := uuid.NewString()
	leaveID := uuid.NewString()

	t.Run("passes actor from token", func(t *testing.T) {
		svc := &fakeLeaveService{
			TransitionFn: func(ctx context.Context, id, status, actor string) (leave.LeaveResponse, error) {
				assert.Equal(t, leaveID, id)
				assert.Equal(t, leave.StatusApproved, status)
				assert.Equal(t, actorID, actor)
				return leave.LeaveResponse{ID: id, Status: status}, nil
			},
		}
		h := leave.NewHandler(svc, nil)
		c, w := newContext(http.MethodPatch, "/api/v1/leaves/"+leaveID+"/status", `{"status":"APPROVED"}`)
		c.Params = gin.Params{{Key: "id", Value: leaveID}}
		c.Set("employee_id", actorID)

		h.Transition(c)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("unknown status rejected by binding", func(t *testing.T) {
		h := leave.NewHandler(&fakeLeaveService{}, nil)
		c, w := newContext(http.MethodPatch, "/api/v1/leaves/"+leaveID+"/status", `{"status":"DONE"}`)
		c.Params = gin.Params{{Key: "id", Value: leaveID}}

		h.Transition(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("not found", func(t *testing.T) {
		svc := &fakeLeaveService{
			TransitionFn: func(ctx context.Context, id, status, actor string) (leave.LeaveResponse, error) {
				return leave.LeaveResponse{}, leaveerrors.ErrLeaveNotFound
			},
		}
		h := leave.NewHandler(svc, nil)
		c, w := newContext(http.MethodPatch, "/api/v1/leaves/x/status", `{"status":"REJECTED"}`)

		h.Transition(c)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestLeaveHandler_GetByID_Ownership(t *testing.T) {
	owner := uuid.NewString()
	svc := &fakeLeaveService{
		GetByIDFn: func(ctx context.Context, id string) (leave.LeaveResponse, error) {
			return leave.LeaveResponse{ID: id, EmployeeID: owner}, nil
		},
	}
	h := leave.NewHandler(svc, nil)

	c, w := newContext(http.MethodGet, "/api/v1/leaves/1", "")
	c.Set("employee_id", uuid.NewString())
	c.Set("role", "EMPLOYEE")
	h.GetByID(c)
	assert.Equal(t, http.StatusForbidden, w.Code)

	c, w = newContext(http.MethodGet, "/api/v1/leaves/1", "")
	c.Set("employee_id", uuid.NewString())
	c.Set("role", "ADMIN")
	h.GetByID(c)
	assert.Equal(t, http.StatusOK, w.Code)

	c, w = newContext(http.MethodGet, "/api/v1/leaves/1", "")
	c.Set("employee_id", owner)
	c.Set("role", "EMPLOYEE")
	h.GetByID(c)
	assert.Equal(t, http.StatusOK, w.Code)
}
