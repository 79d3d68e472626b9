package holiday

import (
	"context"
	"database/sql"
	"time"

	"gorm.io/gorm"
)

//go:generate mockgen -source=holiday_repo.go -destination=mock/holiday_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, h *Holiday) error
	FindAll(ctx context.Context, year int) ([]Holiday, error)
	Delete(ctx context.Context, id string) error
	ExistsOn(ctx context.Context, date time.Time) (bool, error)
	FindBetween(ctx context.Context, start, end time.Time) ([]Holiday, error)
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

func (r *repository) Create(ctx context.Context, h *Holiday) error {
	return r.conn(ctx).Create(h).Error
}

// FindAll lists holidays by date; year 0 means every year.
func (r *repository) FindAll(ctx context.Context, year int) ([]Holiday, error) {
	var rows []Holiday
	q := r.conn(ctx)
	if year > 0 {
		q = q.Where("EXTRACT(YEAR FROM date) = ?", year)
	}
	err := q.Order("date ASC").Find(&rows).Error
	return rows, err
}

func (r *repository) Delete(ctx context.Context, id string) error {
	res := r.conn(ctx).Delete(&Holiday{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *repository) ExistsOn(ctx context.Context, date time.Time) (bool, error) {
	var count int64
	err := r.conn(ctx).
		Model(&Holiday{}).
		Where("date = ?", date).
		Count(&count).Error
	return count > 0, err
}

func (r *repository) FindBetween(ctx context.Context, start, end time.Time) ([]Holiday, error) {
	var rows []Holiday
	err := r.conn(ctx).
		Where("date BETWEEN ? AND ?", start, end).
		Order("date ASC").
		Find(&rows).Error
	return rows, err
}
