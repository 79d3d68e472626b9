package leave

import (
	"time"

	"go-leave/internal/shared/dateutil"

	"github.com/google/uuid"
)

const (
	StatusPending  = "PENDING"
	StatusApproved = "APPROVED"
	StatusRejected = "REJECTED"
)

func IsValidStatus(s string) bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected:
		return true
	}
	return false
}

type LeaveRequest struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	EmployeeID  uuid.UUID  `gorm:"type:uuid;not null;index:idx_leave_requests_employee_dates"`
	LeaveTypeID *uuid.UUID `gorm:"type:uuid;index"`
	StartDate   time.Time  `gorm:"type:date;not null;index:idx_leave_requests_employee_dates"`
	EndDate     time.Time  `gorm:"type:date;not null;index:idx_leave_requests_employee_dates"`
	Reason      string     `gorm:"type:text"`
	Status      string     `gorm:"type:varchar(20);not null;default:'PENDING';index"`
	CreatedAt   time.Time  `gorm:"not null;<-:create"`
	UpdatedAt   time.Time

	LeaveType *LeaveType `gorm:"foreignKey:LeaveTypeID;constraint:OnDelete:SET NULL"`
}

func (LeaveRequest) TableName() string {
	return "leave_requests"
}

// Days is the inclusive length of the request.
func (l LeaveRequest) Days() int {
	return dateutil.InclusiveDays(l.StartDate, l.EndDate)
}

// LeaveLog is append-only; nothing updates or deletes it.
type LeaveLog struct {
	ID             uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	LeaveID        uuid.UUID  `gorm:"type:uuid;not null;index"`
	ActorID        *uuid.UUID `gorm:"type:uuid"`
	PreviousStatus string     `gorm:"type:varchar(20);not null"`
	NewStatus      string     `gorm:"type:varchar(20);not null"`
	ChangedAt      time.Time  `gorm:"not null;default:now()"`
}

func (LeaveLog) TableName() string {
	return "leave_logs"
}

type LeaveType struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name        string    `gorm:"type:varchar(50);not null;uniqueIndex:uq_leave_types_name"`
	AnnualLimit int       `gorm:"not null;default:0;check:chk_leave_types_annual_limit,annual_limit >= 0"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (LeaveType) TableName() string {
	return "leave_types"
}

type LeaveBalance struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	EmployeeID  uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_leave_balances_employee_type"`
	LeaveTypeID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_leave_balances_employee_type"`
	Remaining   int       `gorm:"not null;default:0;check:chk_leave_balances_remaining,remaining >= 0"`
	UpdatedAt   time.Time

	LeaveType *LeaveType `gorm:"foreignKey:LeaveTypeID;constraint:OnDelete:CASCADE"`
}

func (LeaveBalance) TableName() string {
	return "leave_balances"
}
