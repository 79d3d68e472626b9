package leave

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

//go:generate mockgen -source=leave_repo.go -destination=mock/leave_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, l *LeaveRequest) error
	Update(ctx context.Context, l *LeaveRequest) error
	FindByID(ctx context.Context, id string) (*LeaveRequest, error)
	FindByIDForUpdate(ctx context.Context, id string) (*LeaveRequest, error)
	FindAll(ctx context.Context, filter ListFilter) ([]LeaveRequest, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status string) error
	CreateLog(ctx context.Context, log *LeaveLog) error
	FindLogs(ctx context.Context, leaveID string) ([]LeaveLog, error)
	FindAllLogs(ctx context.Context) ([]LeaveLog, error)
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

// conn runs statements on the bound transaction when there is one.
func (r *repository) conn(ctx context.Context) *gorm.DB {
	db := r.db.WithContext(ctx)
	if r.tx != nil {
		db.Statement.ConnPool = r.tx
	}
	return db
}

func (r *repository) Create(ctx context.Context, l *LeaveRequest) error {
	return r.conn(ctx).Omit("LeaveType").Create(l).Error
}

// Update writes the editable fields. Status is never written here; it only
// changes through UpdateStatus inside a transition.
func (r *repository) Update(ctx context.Context, l *LeaveRequest) error {
	return r.conn(ctx).
		Model(&LeaveRequest{ID: l.ID}).
		Omit("status", "created_at", "LeaveType").
		Updates(l).Error
}

func (r *repository) FindByID(ctx context.Context, id string) (*LeaveRequest, error) {
	var l LeaveRequest
	err := r.conn(ctx).
		Preload("LeaveType").
		First(&l, "id = ?", id).Error
	return &l, err
}

func (r *repository) FindByIDForUpdate(ctx context.Context, id string) (*LeaveRequest, error) {
	var l LeaveRequest
	err := r.conn(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&l, "id = ?", id).Error
	return &l, err
}

func (r *repository) FindAll(ctx context.Context, filter ListFilter) ([]LeaveRequest, error) {
	var rows []LeaveRequest
	q := r.conn(ctx).Preload("LeaveType")
	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}
	if filter.EmployeeID != "" {
		q = q.Where("employee_id = ?", filter.EmployeeID)
	}
	err := q.Order("created_at DESC").Find(&rows).Error
	return rows, err
}

func (r *repository) UpdateStatus(ctx context.Context, id uuid.UUID, status string) error {
	return r.conn(ctx).
		Model(&LeaveRequest{}).
		Where("id = ?", id).
		Update("status", status).Error
}

func (r *repository) CreateLog(ctx context.Context, log *LeaveLog) error {
	return r.conn(ctx).Create(log).Error
}

func (r *repository) FindLogs(ctx context.Context, leaveID string) ([]LeaveLog, error) {
	var rows []LeaveLog
	err := r.conn(ctx).
		Where("leave_id = ?", leaveID).
		Order("changed_at ASC").
		Find(&rows).Error
	return rows, err
}

func (r *repository) FindAllLogs(ctx context.Context) ([]LeaveLog, error) {
	var rows []LeaveLog
	err := r.conn(ctx).
		Order("changed_at DESC").
		Find(&rows).Error
	return rows, err
}
