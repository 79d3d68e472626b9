package app

import (
	"go-leave/internal/attendance"
	"go-leave/internal/employee"
	"go-leave/internal/holiday"
	"go-leave/internal/leave"
	"go-leave/internal/messaging/kafka"

	"gorm.io/gorm"
)

// Models in dependency order: referenced tables first.
func Models() []any {
	return []any{
		&employee.Employee{},
		&holiday.Holiday{},
		&leave.LeaveType{},
		&leave.LeaveBalance{},
		&leave.LeaveRequest{},
		&leave.LeaveLog{},
		&attendance.Attendance{},
	}
}

func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(Models()...); err != nil {
		return err
	}
	return db.Exec(kafka.Schema).Error
}
