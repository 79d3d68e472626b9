package leave

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"go-leave/internal/events"
	"go-leave/internal/holiday"
	leaveerrors "go-leave/internal/leave/errors"
	"go-leave/internal/messaging/kafka"
	"go-leave/internal/metrics"
	"go-leave/internal/shared/apperror"
	"go-leave/internal/shared/contextutil"
	"go-leave/internal/shared/dateutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -source=leave_service.go -destination=mock/leave_service_mock.go -package=mock
type Service interface {
	Submit(ctx context.Context, employeeID string, req SubmitLeaveRequest) (LeaveResponse, error)
	Transition(ctx context.Context, leaveID, newStatus, actorID string) (LeaveResponse, error)
	Update(ctx context.Context, employeeID, id string, req UpdateLeaveRequest) (LeaveResponse, error)
	GetByID(ctx context.Context, id string) (LeaveResponse, error)
	List(ctx context.Context, filter ListFilter) ([]LeaveResponse, error)
	ListMine(ctx context.Context, employeeID string) ([]LeaveResponse, error)
	ListLogs(ctx context.Context, leaveID string) ([]LeaveLogResponse, error)
	ListAllLogs(ctx context.Context) ([]LeaveLogResponse, error)
}

type service struct {
	db       *sql.DB
	repo     Repository
	types    TypeRepository
	holidays holiday.Repository
	outbox   kafka.OutboxRepository
	metrics  *metrics.Metrics
	clock    dateutil.Clock
	loc      *time.Location
	logger   *zap.Logger
}

func NewService(
	db *sql.DB,
	repo Repository,
	types TypeRepository,
	holidays holiday.Repository,
	clock dateutil.Clock,
	loc *time.Location,
	logger ...*zap.Logger,
) Service {
	return NewServiceWithOutbox(db, repo, types, holidays, nil, nil, clock, loc, logger...)
}

func NewServiceWithOutbox(
	db *sql.DB,
	repo Repository,
	types TypeRepository,
	holidays holiday.Repository,
	outboxRepo kafka.OutboxRepository,
	m *metrics.Metrics,
	clock dateutil.Clock,
	loc *time.Location,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("leave.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("leave.service")
	}
	if clock == nil {
		clock = dateutil.SystemClock()
	}
	if loc == nil {
		loc = time.UTC
	}
	return &service{
		db:       db,
		repo:     repo,
		types:    types,
		holidays: holidays,
		outbox:   outboxRepo,
		metrics:  m,
		clock:    clock,
		loc:      loc,
		logger:   l,
	}
}

func (s *service) Submit(ctx context.Context, employeeID string, req SubmitLeaveRequest) (LeaveResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)
	log.Debug("submit leave requested",
		zap.String("employee_id", employeeID),
		zap.String("start_date", req.StartDate),
		zap.String("end_date", req.EndDate),
		zap.String("leave_type_id", req.LeaveTypeID),
	)

	employeeUUID, err := uuid.Parse(employeeID)
	if err != nil {
		return LeaveResponse{}, leaveerrors.ErrInvalidEmployeeID
	}

	startDate, endDate, err := s.validatePeriod(req.StartDate, req.EndDate)
	if err != nil {
		log.Warn("submit leave validation failed", zap.Error(err))
		return LeaveResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		log.Error("submit leave begin tx failed", zap.Error(err))
		return LeaveResponse{}, err
	}
	defer tx.Rollback()

	conflicts, err := s.holidays.WithTx(tx).FindBetween(ctx, startDate, endDate)
	if err != nil {
		log.Error("submit leave holiday lookup failed", zap.Error(err))
		return LeaveResponse{}, err
	}
	if len(conflicts) > 0 {
		dates := make([]string, len(conflicts))
		names := make([]string, len(conflicts))
		for i, h := range conflicts {
			dates[i] = dateutil.Format(h.Date)
			names[i] = h.Name
		}
		log.Warn("submit leave overlaps holidays", zap.Strings("dates", dates))
		return LeaveResponse{}, leaveerrors.HolidayConflict(dates, names)
	}

	leaveType, err := s.findLeaveType(ctx, s.types.WithTx(tx), req.LeaveTypeID)
	if err != nil {
		log.Warn("submit leave type lookup failed", zap.String("leave_type_id", req.LeaveTypeID), zap.Error(err))
		return LeaveResponse{}, err
	}

	l := &LeaveRequest{
		ID:          uuid.New(),
		EmployeeID:  employeeUUID,
		LeaveTypeID: &leaveType.ID,
		StartDate:   startDate,
		EndDate:     endDate,
		Reason:      strings.TrimSpace(req.Reason),
		Status:      StatusPending,
		CreatedAt:   s.clock.Now().UTC(),
	}

	if err := s.repo.WithTx(tx).Create(ctx, l); err != nil {
		log.Error("submit leave persist failed", zap.Error(err))
		return LeaveResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		log.Error("submit leave commit failed", zap.Error(err))
		return LeaveResponse{}, err
	}

	s.metrics.IncLeaveSubmitted()
	log.Info("submit leave success",
		zap.String("leave_id", l.ID.String()),
		zap.String("employee_id", employeeID),
		zap.Int("days", l.Days()),
	)

	l.LeaveType = leaveType
	return mapToResponse(*l), nil
}

// Transition is the only path that changes a request's status. It locks the
// row, writes the audit log, applies the balance decrement on approval and
// queues the change notification, all in one transaction.
func (s *service) Transition(ctx context.Context, leaveID, newStatus, actorID string) (LeaveResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)
	log.Debug("transition leave requested",
		zap.String("leave_id", leaveID),
		zap.String("new_status", newStatus),
		zap.String("actor_id", actorID),
	)

	if !IsValidStatus(newStatus) {
		return LeaveResponse{}, leaveerrors.ErrInvalidStatus
	}

	var actor *uuid.UUID
	if actorID != "" {
		parsed, err := uuid.Parse(actorID)
		if err != nil {
			return LeaveResponse{}, leaveerrors.ErrInvalidActorID
		}
		actor = &parsed
	}

	if _, err := uuid.Parse(leaveID); err != nil {
		return LeaveResponse{}, leaveerrors.ErrLeaveNotFound
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		log.Error("transition leave begin tx failed", zap.Error(err))
		return LeaveResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	l, err := qtx.FindByIDForUpdate(ctx, leaveID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return LeaveResponse{}, leaveerrors.ErrLeaveNotFound
		}
		log.Error("transition leave fetch failed", zap.Error(err))
		return LeaveResponse{}, err
	}

	if l.Status == newStatus {
		log.Debug("transition leave unchanged", zap.String("leave_id", leaveID), zap.String("status", newStatus))
		return mapToResponse(*l), nil
	}

	previous := l.Status
	if err := qtx.UpdateStatus(ctx, l.ID, newStatus); err != nil {
		log.Error("transition leave update status failed", zap.Error(err))
		return LeaveResponse{}, err
	}

	changedAt := s.clock.Now().UTC()
	if err := qtx.CreateLog(ctx, &LeaveLog{
		ID:             uuid.New(),
		LeaveID:        l.ID,
		ActorID:        actor,
		PreviousStatus: previous,
		NewStatus:      newStatus,
		ChangedAt:      changedAt,
	}); err != nil {
		log.Error("transition leave audit log failed", zap.Error(err))
		return LeaveResponse{}, err
	}

	if newStatus == StatusApproved {
		if err := s.decrementBalance(ctx, tx, l, log); err != nil {
			return LeaveResponse{}, err
		}
	}

	if s.outbox != nil {
		event := events.LeaveStatusChangedEvent{
			EventType:      events.LeaveStatusChangedType,
			RequestID:      contextutil.GetRequestID(ctx),
			LeaveID:        l.ID.String(),
			EmployeeID:     l.EmployeeID.String(),
			PreviousStatus: previous,
			NewStatus:      newStatus,
			ActorID:        actorID,
			StartDate:      dateutil.Format(l.StartDate),
			EndDate:        dateutil.Format(l.EndDate),
			OccurredAt:     changedAt,
		}
		outboxEvent, err := kafka.NewEvent(
			events.LeaveStatusChangedTopic,
			event.EventType,
			"leave",
			event.LeaveID,
			event.RequestID,
			event,
		)
		if err != nil {
			log.Error("marshal leave status event failed", zap.Error(err))
			return LeaveResponse{}, err
		}
		if err := s.outbox.WithTx(tx).Create(ctx, outboxEvent); err != nil {
			log.Error("transition leave outbox persist failed", zap.Error(err))
			return LeaveResponse{}, err
		}
	}

	if err := tx.Commit(); err != nil {
		log.Error("transition leave commit failed", zap.Error(err))
		return LeaveResponse{}, err
	}

	s.metrics.IncLeaveTransition(previous, newStatus)
	log.Info("transition leave success",
		zap.String("leave_id", leaveID),
		zap.String("previous_status", previous),
		zap.String("new_status", newStatus),
	)

	l.Status = newStatus
	return mapToResponse(*l), nil
}

func (s *service) decrementBalance(ctx context.Context, tx *sql.Tx, l *LeaveRequest, log *zap.Logger) error {
	if l.LeaveTypeID == nil {
		log.Warn("approve leave without leave type, balance untouched", zap.String("leave_id", l.ID.String()))
		s.metrics.IncBalanceSkipped()
		return nil
	}

	days := l.Days()
	affected, err := s.types.WithTx(tx).DecrementBalance(ctx, l.EmployeeID, *l.LeaveTypeID, days)
	if err != nil {
		if apperror.IsCheckViolation(err, "chk_leave_balances_remaining") {
			log.Warn("approve leave insufficient balance",
				zap.String("leave_id", l.ID.String()),
				zap.Int("days", days),
			)
			return leaveerrors.ErrInsufficientBalance
		}
		log.Error("approve leave decrement balance failed", zap.Error(err))
		return err
	}
	if affected == 0 {
		log.Warn("approve leave without balance row, decrement skipped",
			zap.String("leave_id", l.ID.String()),
			zap.String("employee_id", l.EmployeeID.String()),
			zap.String("leave_type_id", l.LeaveTypeID.String()),
		)
		s.metrics.IncBalanceSkipped()
	}
	return nil
}

func (s *service) Update(ctx context.Context, employeeID, id string, req UpdateLeaveRequest) (LeaveResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)

	if _, err := uuid.Parse(id); err != nil {
		return LeaveResponse{}, leaveerrors.ErrLeaveNotFound
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		log.Error("update leave begin tx failed", zap.Error(err))
		return LeaveResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	l, err := qtx.FindByIDForUpdate(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return LeaveResponse{}, leaveerrors.ErrLeaveNotFound
		}
		return LeaveResponse{}, err
	}
	if l.EmployeeID.String() != employeeID {
		return LeaveResponse{}, leaveerrors.ErrLeaveNotOwned
	}
	if l.Status != StatusPending {
		return LeaveResponse{}, leaveerrors.ErrLeaveNotPending
	}

	l.Reason = strings.TrimSpace(req.Reason)
	if err := qtx.Update(ctx, l); err != nil {
		log.Error("update leave persist failed", zap.Error(err))
		return LeaveResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		log.Error("update leave commit failed", zap.Error(err))
		return LeaveResponse{}, err
	}

	log.Info("update leave success", zap.String("leave_id", id))
	return mapToResponse(*l), nil
}

func (s *service) GetByID(ctx context.Context, id string) (LeaveResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return LeaveResponse{}, leaveerrors.ErrLeaveNotFound
	}
	l, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return LeaveResponse{}, leaveerrors.ErrLeaveNotFound
		}
		return LeaveResponse{}, err
	}
	return mapToResponse(*l), nil
}

func (s *service) List(ctx context.Context, filter ListFilter) ([]LeaveResponse, error) {
	if filter.Status != "" && !IsValidStatus(filter.Status) {
		return nil, leaveerrors.ErrInvalidStatus
	}
	leaves, err := s.repo.FindAll(ctx, filter)
	if err != nil {
		s.logger.Error("list leaves failed", zap.Error(err))
		return nil, err
	}
	return mapToListResponse(leaves), nil
}

func (s *service) ListMine(ctx context.Context, employeeID string) ([]LeaveResponse, error) {
	if _, err := uuid.Parse(employeeID); err != nil {
		return nil, leaveerrors.ErrInvalidEmployeeID
	}
	return s.List(ctx, ListFilter{EmployeeID: employeeID})
}

func (s *service) ListLogs(ctx context.Context, leaveID string) ([]LeaveLogResponse, error) {
	if _, err := s.GetByID(ctx, leaveID); err != nil {
		return nil, err
	}
	logs, err := s.repo.FindLogs(ctx, leaveID)
	if err != nil {
		s.logger.Error("list leave logs failed", zap.String("leave_id", leaveID), zap.Error(err))
		return nil, err
	}
	return mapToLogResponses(logs), nil
}

func (s *service) ListAllLogs(ctx context.Context) ([]LeaveLogResponse, error) {
	logs, err := s.repo.FindAllLogs(ctx)
	if err != nil {
		s.logger.Error("list all leave logs failed", zap.Error(err))
		return nil, err
	}
	return mapToLogResponses(logs), nil
}

func (s *service) validatePeriod(start, end string) (time.Time, time.Time, error) {
	startDate, err := dateutil.Parse(strings.TrimSpace(start))
	if err != nil {
		return time.Time{}, time.Time{}, leaveerrors.ErrInvalidDateFormat
	}
	endDate, err := dateutil.Parse(strings.TrimSpace(end))
	if err != nil {
		return time.Time{}, time.Time{}, leaveerrors.ErrInvalidDateFormat
	}
	if startDate.Before(dateutil.Today(s.clock, s.loc)) {
		return time.Time{}, time.Time{}, leaveerrors.ErrStartDateInPast
	}
	if endDate.Before(startDate) {
		return time.Time{}, time.Time{}, leaveerrors.ErrInvalidDateRange
	}
	return startDate, endDate, nil
}

func (s *service) findLeaveType(ctx context.Context, repo TypeRepository, id string) (*LeaveType, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, leaveerrors.ErrLeaveTypeNotFound
	}
	t, err := repo.FindTypeByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, leaveerrors.ErrLeaveTypeNotFound
		}
		return nil, err
	}
	return t, nil
}

func mapToResponse(l LeaveRequest) LeaveResponse {
	resp := LeaveResponse{
		ID:         l.ID.String(),
		EmployeeID: l.EmployeeID.String(),
		StartDate:  dateutil.Format(l.StartDate),
		EndDate:    dateutil.Format(l.EndDate),
		TotalDays:  l.Days(),
		Reason:     l.Reason,
		Status:     l.Status,
		CreatedAt:  l.CreatedAt.UTC().Format(time.RFC3339),
	}
	if l.LeaveTypeID != nil {
		resp.LeaveTypeID = l.LeaveTypeID.String()
	}
	if l.LeaveType != nil {
		resp.LeaveTypeName = l.LeaveType.Name
	}
	return resp
}

func mapToListResponse(leaves []LeaveRequest) []LeaveResponse {
	res := make([]LeaveResponse, len(leaves))
	for i, l := range leaves {
		res[i] = mapToResponse(l)
	}
	return res
}

func mapToLogResponses(logs []LeaveLog) []LeaveLogResponse {
	res := make([]LeaveLogResponse, len(logs))
	for i, lg := range logs {
		res[i] = LeaveLogResponse{
			ID:             lg.ID.String(),
			LeaveID:        lg.LeaveID.String(),
			PreviousStatus: lg.PreviousStatus,
			NewStatus:      lg.NewStatus,
			ChangedAt:      lg.ChangedAt.UTC().Format(time.RFC3339),
		}
		if lg.ActorID != nil {
			res[i].ActorID = lg.ActorID.String()
		}
	}
	return res
}
