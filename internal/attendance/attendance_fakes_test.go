package attendance_test

import (
	"context"
	"database/sql"
	"sort"
	"time"

	"go-leave/internal/attendance"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type attendanceKey struct {
	employeeID uuid.UUID
	date       time.Time
}

type memAttendanceRepo struct {
	rows map[attendanceKey]attendance.Attendance

	createErr error
	// raceWinner is stored as if another request committed it just before
	// Create fails with createErr.
	raceWinner *attendance.Attendance
}

func newMemAttendanceRepo() *memAttendanceRepo {
	return &memAttendanceRepo{rows: map[attendanceKey]attendance.Attendance{}}
}

func (r *memAttendanceRepo) WithTx(_ *sql.Tx) attendance.Repository { return r }

func (r *memAttendanceRepo) Create(_ context.Context, a *attendance.Attendance) error {
	if r.createErr != nil {
		if w := r.raceWinner; w != nil {
			r.rows[attendanceKey{w.EmployeeID, w.AttendanceDate}] = *w
		}
		return r.createErr
	}
	r.rows[attendanceKey{a.EmployeeID, a.AttendanceDate}] = *a
	return nil
}

func (r *memAttendanceRepo) FindByEmployeeAndDate(_ context.Context, employeeID uuid.UUID, date time.Time) (*attendance.Attendance, error) {
	a, ok := r.rows[attendanceKey{employeeID, date}]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &a, nil
}

func (r *memAttendanceRepo) DeleteByEmployeeAndDate(_ context.Context, employeeID uuid.UUID, date time.Time) error {
	delete(r.rows, attendanceKey{employeeID, date})
	return nil
}

func (r *memAttendanceRepo) FindPresentOn(_ context.Context, date time.Time) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	for k, a := range r.rows {
		if k.date.Equal(date) && a.Status == attendance.StatusPresent {
			ids = append(ids, k.employeeID)
		}
	}
	return ids, nil
}

func (r *memAttendanceRepo) FindByEmployee(_ context.Context, employeeID uuid.UUID) ([]attendance.Attendance, error) {
	var rows []attendance.Attendance
	for k, a := range r.rows {
		if k.employeeID == employeeID {
			rows = append(rows, a)
		}
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].AttendanceDate.After(rows[j].AttendanceDate) })
	return rows, nil
}
