package leave

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

//go:generate mockgen -source=leave_type_repo.go -destination=mock/leave_type_repo_mock.go -package=mock
type TypeRepository interface {
	WithTx(tx *sql.Tx) TypeRepository
	CreateType(ctx context.Context, t *LeaveType) error
	UpdateType(ctx context.Context, t *LeaveType) error
	FindTypeByID(ctx context.Context, id string) (*LeaveType, error)
	FindAllTypes(ctx context.Context) ([]LeaveType, error)
	UpsertBalance(ctx context.Context, b *LeaveBalance) error
	FindBalancesByEmployee(ctx context.Context, employeeID string) ([]LeaveBalance, error)
	DecrementBalance(ctx context.Context, employeeID, leaveTypeID uuid.UUID, days int) (int64, error)
}

type typeRepository struct {
	db *gorm.DB
	tx *sql.Tx
}

func NewTypeRepository(db *gorm.DB) TypeRepository {
	return &typeRepository{db: db}
}

func (r *typeRepository) WithTx(tx *sql.Tx) TypeRepository {
	return &typeRepository{db: r.db, tx: tx}
}

func (r *typeRepository) conn(ctx context.Context) *gorm.DB {
	db := r.db.WithContext(ctx)
	if r.tx != nil {
		db.Statement.ConnPool = r.tx
	}
	return db
}

func (r *typeRepository) CreateType(ctx context.Context, t *LeaveType) error {
	return r.conn(ctx).Create(t).Error
}

func (r *typeRepository) UpdateType(ctx context.Context, t *LeaveType) error {
	return r.conn(ctx).
		Model(&LeaveType{ID: t.ID}).
		Select("name", "annual_limit").
		Updates(t).Error
}

func (r *typeRepository) FindTypeByID(ctx context.Context, id string) (*LeaveType, error) {
	var t LeaveType
	err := r.conn(ctx).First(&t, "id = ?", id).Error
	return &t, err
}

func (r *typeRepository) FindAllTypes(ctx context.Context) ([]LeaveType, error) {
	var rows []LeaveType
	err := r.conn(ctx).Order("name ASC").Find(&rows).Error
	return rows, err
}

func (r *typeRepository) UpsertBalance(ctx context.Context, b *LeaveBalance) error {
	return r.conn(ctx).
		Omit("LeaveType").
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "employee_id"}, {Name: "leave_type_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"remaining", "updated_at"}),
		}).
		Create(b).Error
}

func (r *typeRepository) FindBalancesByEmployee(ctx context.Context, employeeID string) ([]LeaveBalance, error) {
	var rows []LeaveBalance
	err := r.conn(ctx).
		Preload("LeaveType").
		Where("employee_id = ?", employeeID).
		Find(&rows).Error
	return rows, err
}

// DecrementBalance subtracts days in one arithmetic UPDATE and reports how many
// rows matched. Zero means there is no balance row for the pair.
func (r *typeRepository) DecrementBalance(ctx context.Context, employeeID, leaveTypeID uuid.UUID, days int) (int64, error) {
	res := r.conn(ctx).
		Model(&LeaveBalance{}).
		Where("employee_id = ? AND leave_type_id = ?", employeeID, leaveTypeID).
		Update("remaining", gorm.Expr("remaining - ?", days))
	return res.RowsAffected, res.Error
}
