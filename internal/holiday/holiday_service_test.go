package holiday_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"go-leave/internal/holiday"
	holidayerrors "go-leave/internal/holiday/errors"
	holidayMock "go-leave/internal/holiday/mock"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

func setupService(t *testing.T) (holiday.Service, *holidayMock.MockRepository) {
	ctrl := gomock.NewController(t)
	repo := holidayMock.NewMockRepository(ctrl)
	return holiday.NewService(repo), repo
}

func TestHolidayService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		svc, repo := setupService(t)

		repo.EXPECT().
			Create(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, h *holiday.Holiday) error {
				assert.Equal(t, time.Date(2024, 1, 11, 0, 0, 0, 0, time.UTC), h.Date)
				return nil
			})

		resp, err := svc.Create(ctx, holiday.CreateHolidayRequest{Name: "Founders Day", Date: "2024-01-11"})

		assert.NoError(t, err)
		assert.Equal(t, "2024-01-11", resp.Date)
		assert.Equal(t, "Founders Day", resp.Name)
	})

	t.Run("invalid date", func(t *testing.T) {
		svc, _ := setupService(t)

		_, err := svc.Create(ctx, holiday.CreateHolidayRequest{Name: "x", Date: "11/01/2024"})

		assert.ErrorIs(t, err, holidayerrors.ErrInvalidHolidayDate)
	})

	t.Run("duplicate date", func(t *testing.T) {
		svc, repo := setupService(t)

		repo.EXPECT().
			Create(ctx, gomock.Any()).
			Return(&pgconn.PgError{Code: "23505", ConstraintName: "uq_holidays_date"})

		_, err := svc.Create(ctx, holiday.CreateHolidayRequest{Name: "x", Date: "2024-01-11"})

		assert.ErrorIs(t, err, holidayerrors.ErrHolidayAlreadyExists)
	})
}

func TestHolidayService_List(t *testing.T) {
	ctx := context.Background()
	svc, repo := setupService(t)

	repo.EXPECT().FindAll(ctx, 2024).Return([]holiday.Holiday{
		{ID: uuid.New(), Name: "New Year", Date: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)},
	}, nil)

	resp, err := svc.List(ctx, 2024)

	assert.NoError(t, err)
	assert.Len(t, resp, 1)
	assert.Equal(t, "2024-01-01", resp[0].Date)

	_, err = svc.List(ctx, -1)
	assert.ErrorIs(t, err, holidayerrors.ErrInvalidYear)
}

func TestHolidayService_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("not found", func(t *testing.T) {
		svc, repo := setupService(t)
		id := uuid.NewString()

		repo.EXPECT().Delete(ctx, id).Return(gorm.ErrRecordNotFound)

		assert.ErrorIs(t, svc.Delete(ctx, id), holidayerrors.ErrHolidayNotFound)
	})

	t.Run("malformed id", func(t *testing.T) {
		svc, _ := setupService(t)

		assert.ErrorIs(t, svc.Delete(ctx, "abc"), holidayerrors.ErrHolidayNotFound)
	})

	t.Run("repository error", func(t *testing.T) {
		svc, repo := setupService(t)
		id := uuid.NewString()

		repo.EXPECT().Delete(ctx, id).Return(errors.New("db down"))

		assert.EqualError(t, svc.Delete(ctx, id), "db down")
	})
}

func TestHolidayService_IsHoliday_TruncatesClock(t *testing.T) {
	ctx := context.Background()
	svc, repo := setupService(t)

	repo.EXPECT().
		ExistsOn(ctx, time.Date(2024, 1, 11, 0, 0, 0, 0, time.UTC)).
		Return(true, nil)

	ok, err := svc.IsHoliday(ctx, time.Date(2024, 1, 11, 15, 30, 0, 0, time.UTC))

	assert.NoError(t, err)
	assert.True(t, ok)
}
