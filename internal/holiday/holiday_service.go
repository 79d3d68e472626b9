package holiday

import (
	"context"
	"errors"
	"strings"
	"time"

	holidayerrors "go-leave/internal/holiday/errors"
	"go-leave/internal/shared/apperror"
	"go-leave/internal/shared/dateutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -source=holiday_service.go -destination=mock/holiday_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateHolidayRequest) (HolidayResponse, error)
	List(ctx context.Context, year int) ([]HolidayResponse, error)
	Delete(ctx context.Context, id string) error
	IsHoliday(ctx context.Context, date time.Time) (bool, error)
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("holiday.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("holiday.service")
	}
	return &service{repo: repo, logger: l}
}

func (s *service) Create(ctx context.Context, req CreateHolidayRequest) (HolidayResponse, error) {
	s.logger.Debug("create holiday requested", zap.String("date", req.Date))

	date, err := dateutil.Parse(strings.TrimSpace(req.Date))
	if err != nil {
		return HolidayResponse{}, holidayerrors.ErrInvalidHolidayDate
	}

	h := &Holiday{
		ID:   uuid.New(),
		Name: strings.TrimSpace(req.Name),
		Date: date,
	}
	if err := s.repo.Create(ctx, h); err != nil {
		if apperror.IsUniqueViolation(err, "uq_holidays_date") {
			s.logger.Warn("create holiday duplicate date", zap.String("date", req.Date))
			return HolidayResponse{}, holidayerrors.ErrHolidayAlreadyExists
		}
		s.logger.Error("create holiday persist failed", zap.Error(err))
		return HolidayResponse{}, err
	}

	s.logger.Info("create holiday success",
		zap.String("holiday_id", h.ID.String()),
		zap.String("date", dateutil.Format(h.Date)),
	)
	return mapToResponse(*h), nil
}

func (s *service) List(ctx context.Context, year int) ([]HolidayResponse, error) {
	if year < 0 {
		return nil, holidayerrors.ErrInvalidYear
	}
	rows, err := s.repo.FindAll(ctx, year)
	if err != nil {
		s.logger.Error("list holidays failed", zap.Error(err))
		return nil, err
	}
	res := make([]HolidayResponse, len(rows))
	for i, h := range rows {
		res[i] = mapToResponse(h)
	}
	return res, nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return holidayerrors.ErrHolidayNotFound
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return holidayerrors.ErrHolidayNotFound
		}
		s.logger.Error("delete holiday failed", zap.String("holiday_id", id), zap.Error(err))
		return err
	}
	s.logger.Info("delete holiday success", zap.String("holiday_id", id))
	return nil
}

func (s *service) IsHoliday(ctx context.Context, date time.Time) (bool, error) {
	return s.repo.ExistsOn(ctx, dateutil.Truncate(date))
}

func mapToResponse(h Holiday) HolidayResponse {
	return HolidayResponse{
		ID:   h.ID.String(),
		Name: h.Name,
		Date: dateutil.Format(h.Date),
	}
}
