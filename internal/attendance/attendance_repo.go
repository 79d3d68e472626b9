package attendance

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

//go:generate mockgen -source=attendance_repo.go -destination=mock/attendance_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, a *Attendance) error
	FindByEmployeeAndDate(ctx context.Context, employeeID uuid.UUID, date time.Time) (*Attendance, error)
	DeleteByEmployeeAndDate(ctx context.Context, employeeID uuid.UUID, date time.Time) error
	FindPresentOn(ctx context.Context, date time.Time) ([]uuid.UUID, error)
	FindByEmployee(ctx context.Context, employeeID uuid.UUID) ([]Attendance, error)
}

type repository struct {
	db *gorm.DB
	tx *sql.Tx
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{db: r.db, tx: tx}
}

func (r *repository) conn(ctx context.Context) *gorm.DB {
	db := r.db.WithContext(ctx)
	if r.tx != nil {
		db.Statement.ConnPool = r.tx
	}
	return db
}

func (r *repository) Create(ctx context.Context, a *Attendance) error {
	return r.conn(ctx).Omit("Employee").Create(a).Error
}

func (r *repository) FindByEmployeeAndDate(ctx context.Context, employeeID uuid.UUID, date time.Time) (*Attendance, error) {
	var a Attendance
	err := r.conn(ctx).
		Where("employee_id = ? AND attendance_date = ?", employeeID, date).
		First(&a).Error
	return &a, err
}

func (r *repository) DeleteByEmployeeAndDate(ctx context.Context, employeeID uuid.UUID, date time.Time) error {
	return r.conn(ctx).
		Where("employee_id = ? AND attendance_date = ?", employeeID, date).
		Delete(&Attendance{}).Error
}

func (r *repository) FindPresentOn(ctx context.Context, date time.Time) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	err := r.conn(ctx).
		Model(&Attendance{}).
		Where("attendance_date = ? AND status = ?", date, StatusPresent).
		Pluck("employee_id", &ids).Error
	return ids, err
}

func (r *repository) FindByEmployee(ctx context.Context, employeeID uuid.UUID) ([]Attendance, error) {
	var rows []Attendance
	err := r.conn(ctx).
		Preload("Employee").
		Where("employee_id = ?", employeeID).
		Order("attendance_date DESC").
		Find(&rows).Error
	return rows, err
}
