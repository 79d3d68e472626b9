package attendance

import (
	"time"

	"github.com/google/uuid"
)

const (
	StatusPresent = "PRESENT"
	StatusAbsent  = "ABSENT"

	SourceSelf = "SELF"
	SourceBulk = "BULK"
)

// Attendance rows are hard-deleted so the (employee, date) unique index always
// describes live data.
type Attendance struct {
	ID             uuid.UUID    `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	EmployeeID     uuid.UUID    `gorm:"column:employee_id;type:uuid;not null;uniqueIndex:uq_attendances_employee_date"`
	AttendanceDate time.Time    `gorm:"column:attendance_date;type:date;not null;uniqueIndex:uq_attendances_employee_date;index"`
	Status         string       `gorm:"column:status;type:varchar(20);not null;default:PRESENT"`
	Source         string       `gorm:"column:source;type:varchar(10);not null;default:SELF"`
	MarkedBy       *uuid.UUID   `gorm:"column:marked_by;type:uuid"`
	MarkedAt       time.Time    `gorm:"column:marked_at;type:timestamptz;not null"`
	Employee       *EmployeeRef `gorm:"foreignKey:EmployeeID;references:ID"`
}

func (Attendance) TableName() string {
	return "attendances"
}

type EmployeeRef struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	FullName string    `gorm:"column:full_name"`
}

func (EmployeeRef) TableName() string {
	return "employees"
}
