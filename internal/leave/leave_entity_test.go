package leave_test

import (
	"testing"
	"time"

	"go-leave/internal/leave"

	"github.com/stretchr/testify/assert"
)

func TestLeaveRequest_Days(t *testing.T) {
	jan := func(d int) time.Time { return time.Date(2024, 1, d, 0, 0, 0, 0, time.UTC) }

	assert.Equal(t, 1, leave.LeaveRequest{StartDate: jan(10), EndDate: jan(10)}.Days())
	assert.Equal(t, 3, leave.LeaveRequest{StartDate: jan(10), EndDate: jan(12)}.Days())
	assert.Equal(t, 22, leave.LeaveRequest{StartDate: jan(10), EndDate: jan(31)}.Days())
}
