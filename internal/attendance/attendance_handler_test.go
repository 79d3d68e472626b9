package attendance_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go-leave/internal/attendance"
	attendanceerrors "go-leave/internal/attendance/errors"
	attendanceMock "go-leave/internal/attendance/mock"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func newTestContext(method, target, body string) (*gin.Context, *httptest.ResponseRecorder) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	var r *http.Request
	if body == "" {
		r = httptest.NewRequest(method, target, nil)
	} else {
		r = httptest.NewRequest(method, target, strings.NewReader(body))
		r.Header.Set("Content-Type", "application/json")
	}
	c.Request = r
	c.Set("employee_id", "emp-1")
	return c, w
}

func TestAttendanceHandler_MarkSelf(t *testing.T) {
	tests := []struct {
		name       string
		result     attendance.MarkResult
		err        error
		wantStatus int
		wantBody   string
	}{
		{
			name:       "created",
			result:     attendance.MarkResult{Result: attendance.MarkCreated},
			wantStatus: http.StatusCreated,
			wantBody:   `"result":"created"`,
		},
		{
			name:       "already marked",
			result:     attendance.MarkResult{Result: attendance.MarkAlreadyMarked},
			wantStatus: http.StatusOK,
			wantBody:   `"result":"already_marked"`,
		},
		{
			name:       "holiday",
			err:        attendanceerrors.ErrHolidayBlocked,
			wantStatus: http.StatusUnprocessableEntity,
			wantBody:   "BLOCKED",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			svc := attendanceMock.NewMockService(ctrl)
			h := attendance.NewHandler(svc)
			svc.EXPECT().MarkSelf(gomock.Any(), "emp-1").Return(tt.result, tt.err)

			// a date in the query is not forwarded; self-marking is always today
			c, w := newTestContext(http.MethodPost, "/api/v1/attendances/mark?date=2019-03-04", "")
			h.MarkSelf(c)

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.wantBody)
		})
	}
}

func TestAttendanceHandler_MarkBulk(t *testing.T) {
	t.Run("empty list rejected before service", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		h := attendance.NewHandler(attendanceMock.NewMockService(ctrl))

		c, w := newTestContext(http.MethodPost, "/api/v1/attendances/bulk", `{"employee_ids":[]}`)
		h.MarkBulk(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "INVALID_INPUT")
	})

	t.Run("passes actor through", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := attendanceMock.NewMockService(ctrl)
		h := attendance.NewHandler(svc)
		svc.EXPECT().
			MarkBulk(gomock.Any(), "emp-1", attendance.BulkMarkRequest{EmployeeIDs: []string{"a", "b"}, Date: "2024-01-10"}).
			Return(attendance.BulkMarkResult{Date: "2024-01-10", CountMarked: 2}, nil)

		c, w := newTestContext(http.MethodPost, "/api/v1/attendances/bulk", `{"employee_ids":["a","b"],"date":"2024-01-10"}`)
		h.MarkBulk(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"count_marked":2`)
	})
}

func TestAttendanceHandler_Summary(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := attendanceMock.NewMockService(ctrl)
	h := attendance.NewHandler(svc)
	svc.EXPECT().Summary(gomock.Any(), "").Return(attendance.SummaryResponse{
		Date:    "2024-01-10",
		Present: []attendance.Person{{ID: "a", FullName: "Alice"}},
		Absent:  []attendance.Person{},
	}, nil)

	c, w := newTestContext(http.MethodGet, "/api/v1/attendances/summary", "")
	h.Summary(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Alice")
}
