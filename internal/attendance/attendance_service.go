package attendance

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	attendanceerrors "go-leave/internal/attendance/errors"
	"go-leave/internal/employee"
	"go-leave/internal/holiday"
	"go-leave/internal/metrics"
	"go-leave/internal/shared/apperror"
	"go-leave/internal/shared/contextutil"
	"go-leave/internal/shared/dateutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -source=attendance_service.go -destination=mock/attendance_service_mock.go -package=mock
type Service interface {
	MarkSelf(ctx context.Context, employeeID string) (MarkResult, error)
	MarkBulk(ctx context.Context, actorID string, req BulkMarkRequest) (BulkMarkResult, error)
	Summary(ctx context.Context, date string) (SummaryResponse, error)
	History(ctx context.Context, employeeID string) ([]AttendanceResponse, error)
}

type service struct {
	db        *sql.DB
	repo      Repository
	holidays  holiday.Repository
	directory employee.Directory
	metrics   *metrics.Metrics
	clock     dateutil.Clock
	loc       *time.Location
	logger    *zap.Logger
}

func NewService(
	db *sql.DB,
	repo Repository,
	holidays holiday.Repository,
	directory employee.Directory,
	m *metrics.Metrics,
	clock dateutil.Clock,
	loc *time.Location,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("attendance.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("attendance.service")
	}
	if clock == nil {
		clock = dateutil.SystemClock()
	}
	if loc == nil {
		loc = time.UTC
	}
	return &service{
		db:        db,
		repo:      repo,
		holidays:  holidays,
		directory: directory,
		metrics:   m,
		clock:     clock,
		loc:       loc,
		logger:    l,
	}
}

// MarkSelf records the caller as present for today in the configured zone.
// A second call for the same day reports already_marked and leaves the
// existing row alone. Other days go through MarkBulk.
func (s *service) MarkSelf(ctx context.Context, employeeID string) (MarkResult, error) {
	log := contextutil.GetLogger(ctx, s.logger)

	employeeUUID, err := uuid.Parse(employeeID)
	if err != nil {
		return MarkResult{}, attendanceerrors.ErrInvalidEmployeeID
	}
	day := dateutil.Today(s.clock, s.loc)
	log.Debug("mark attendance requested",
		zap.String("employee_id", employeeID),
		zap.String("date", dateutil.Format(day)),
	)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		log.Error("mark attendance begin tx failed", zap.Error(err))
		return MarkResult{}, err
	}
	defer tx.Rollback()

	if err := s.ensureNotHoliday(ctx, tx, day, log); err != nil {
		return MarkResult{}, err
	}

	qtx := s.repo.WithTx(tx)
	existing, err := qtx.FindByEmployeeAndDate(ctx, employeeUUID, day)
	if err == nil {
		log.Info("attendance already marked", zap.String("employee_id", employeeID))
		return MarkResult{Result: MarkAlreadyMarked, Attendance: toResponsePtr(*existing)}, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Error("mark attendance lookup failed", zap.Error(err))
		return MarkResult{}, err
	}

	a := &Attendance{
		ID:             uuid.New(),
		EmployeeID:     employeeUUID,
		AttendanceDate: day,
		Status:         StatusPresent,
		Source:         SourceSelf,
		MarkedAt:       s.clock.Now().UTC(),
	}
	if err := qtx.Create(ctx, a); err != nil {
		if apperror.IsUniqueViolation(err, "uq_attendances_employee_date") {
			// a concurrent request won the insert; its row is only visible outside this tx
			_ = tx.Rollback()
			log.Info("attendance already marked", zap.String("employee_id", employeeID))
			return s.alreadyMarked(ctx, employeeUUID, day, log), nil
		}
		log.Error("mark attendance persist failed", zap.Error(err))
		return MarkResult{}, err
	}

	if err := tx.Commit(); err != nil {
		log.Error("mark attendance commit failed", zap.Error(err))
		return MarkResult{}, err
	}

	s.metrics.AddAttendanceMarked("self", 1)
	log.Info("mark attendance success", zap.String("employee_id", employeeID), zap.String("attendance_id", a.ID.String()))
	return MarkResult{Result: MarkCreated, Attendance: toResponsePtr(*a)}, nil
}

func (s *service) alreadyMarked(ctx context.Context, employeeID uuid.UUID, day time.Time, log *zap.Logger) MarkResult {
	res := MarkResult{Result: MarkAlreadyMarked}
	winner, err := s.repo.FindByEmployeeAndDate(ctx, employeeID, day)
	if err != nil {
		log.Warn("reload winning attendance failed", zap.Error(err))
		return res
	}
	res.Attendance = toResponsePtr(*winner)
	return res
}

// MarkBulk replaces each listed employee's row for the date with a fresh one.
func (s *service) MarkBulk(ctx context.Context, actorID string, req BulkMarkRequest) (BulkMarkResult, error) {
	log := contextutil.GetLogger(ctx, s.logger)

	var actor *uuid.UUID
	if actorID != "" {
		parsed, err := uuid.Parse(actorID)
		if err != nil {
			return BulkMarkResult{}, attendanceerrors.ErrInvalidEmployeeID
		}
		actor = &parsed
	}

	status := strings.ToUpper(strings.TrimSpace(req.Status))
	if status == "" {
		status = StatusPresent
	}
	if status != StatusPresent && status != StatusAbsent {
		return BulkMarkResult{}, attendanceerrors.ErrInvalidStatus
	}

	day, err := s.resolveDate(req.Date)
	if err != nil {
		return BulkMarkResult{}, err
	}

	employeeUUIDs, err := uniqueEmployeeIDs(req.EmployeeIDs)
	if err != nil {
		return BulkMarkResult{}, err
	}
	ids := make([]string, len(employeeUUIDs))
	for i, id := range employeeUUIDs {
		ids[i] = id.String()
	}

	missing, err := s.directory.Missing(ctx, ids)
	if err != nil {
		log.Error("bulk attendance directory check failed", zap.Error(err))
		return BulkMarkResult{}, err
	}
	if len(missing) > 0 {
		log.Warn("bulk attendance unknown employees", zap.Strings("employee_ids", missing))
		return BulkMarkResult{}, attendanceerrors.ErrUnknownEmployees.WithDetails(map[string]any{"employee_ids": missing})
	}

	log.Debug("bulk attendance requested",
		zap.Int("count", len(ids)),
		zap.String("date", dateutil.Format(day)),
		zap.String("status", status),
	)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		log.Error("bulk attendance begin tx failed", zap.Error(err))
		return BulkMarkResult{}, err
	}
	defer tx.Rollback()

	if err := s.ensureNotHoliday(ctx, tx, day, log); err != nil {
		return BulkMarkResult{}, err
	}

	qtx := s.repo.WithTx(tx)
	now := s.clock.Now().UTC()
	for _, employeeUUID := range employeeUUIDs {
		if err := qtx.DeleteByEmployeeAndDate(ctx, employeeUUID, day); err != nil {
			log.Error("bulk attendance delete failed", zap.Stringer("employee_id", employeeUUID), zap.Error(err))
			return BulkMarkResult{}, err
		}
		if err := qtx.Create(ctx, &Attendance{
			ID:             uuid.New(),
			EmployeeID:     employeeUUID,
			AttendanceDate: day,
			Status:         status,
			Source:         SourceBulk,
			MarkedBy:       actor,
			MarkedAt:       now,
		}); err != nil {
			log.Error("bulk attendance insert failed", zap.Stringer("employee_id", employeeUUID), zap.Error(err))
			return BulkMarkResult{}, err
		}
	}

	if err := tx.Commit(); err != nil {
		log.Error("bulk attendance commit failed", zap.Error(err))
		return BulkMarkResult{}, err
	}

	s.metrics.AddAttendanceMarked("bulk", len(ids))
	log.Info("bulk attendance success", zap.Int("count_marked", len(ids)), zap.String("date", dateutil.Format(day)))
	return BulkMarkResult{Date: dateutil.Format(day), CountMarked: len(ids)}, nil
}

// Summary splits every known employee into present and absent for the date.
func (s *service) Summary(ctx context.Context, date string) (SummaryResponse, error) {
	day, err := s.resolveDate(date)
	if err != nil {
		return SummaryResponse{}, err
	}

	people, err := s.directory.ListAll(ctx)
	if err != nil {
		s.logger.Error("attendance summary directory failed", zap.Error(err))
		return SummaryResponse{}, err
	}

	presentIDs, err := s.repo.FindPresentOn(ctx, day)
	if err != nil {
		s.logger.Error("attendance summary lookup failed", zap.Error(err))
		return SummaryResponse{}, err
	}

	isHoliday, err := s.holidays.ExistsOn(ctx, day)
	if err != nil {
		s.logger.Error("attendance summary holiday lookup failed", zap.Error(err))
		return SummaryResponse{}, err
	}

	present := make(map[string]struct{}, len(presentIDs))
	for _, id := range presentIDs {
		present[id.String()] = struct{}{}
	}

	resp := SummaryResponse{
		Date:      dateutil.Format(day),
		IsHoliday: isHoliday,
		Present:   []Person{},
		Absent:    []Person{},
	}
	for _, p := range people {
		person := Person{ID: p.ID, FullName: p.FullName}
		if _, ok := present[strings.ToLower(p.ID)]; ok {
			resp.Present = append(resp.Present, person)
		} else {
			resp.Absent = append(resp.Absent, person)
		}
	}
	return resp, nil
}

func (s *service) History(ctx context.Context, employeeID string) ([]AttendanceResponse, error) {
	employeeUUID, err := uuid.Parse(employeeID)
	if err != nil {
		return nil, attendanceerrors.ErrInvalidEmployeeID
	}
	rows, err := s.repo.FindByEmployee(ctx, employeeUUID)
	if err != nil {
		s.logger.Error("attendance history failed", zap.Error(err))
		return nil, err
	}
	res := make([]AttendanceResponse, len(rows))
	for i, a := range rows {
		res[i] = mapToResponse(a)
	}
	return res, nil
}

func (s *service) ensureNotHoliday(ctx context.Context, tx *sql.Tx, day time.Time, log *zap.Logger) error {
	isHoliday, err := s.holidays.WithTx(tx).ExistsOn(ctx, day)
	if err != nil {
		log.Error("attendance holiday lookup failed", zap.Error(err))
		return err
	}
	if isHoliday {
		log.Warn("attendance blocked on holiday", zap.String("date", dateutil.Format(day)))
		s.metrics.IncAttendanceBlocked()
		return attendanceerrors.ErrHolidayBlocked
	}
	return nil
}

// resolveDate parses a YYYY-MM-DD date; empty means today in the configured zone.
func (s *service) resolveDate(v string) (time.Time, error) {
	v = strings.TrimSpace(v)
	if v == "" {
		return dateutil.Today(s.clock, s.loc), nil
	}
	day, err := dateutil.Parse(v)
	if err != nil {
		return time.Time{}, attendanceerrors.ErrInvalidDate
	}
	return day, nil
}

// uniqueEmployeeIDs parses raw ids and drops repeats of the same employee,
// however the uuid was spelled. Blank entries are ignored.
func uniqueEmployeeIDs(raw []string) ([]uuid.UUID, error) {
	seen := make(map[uuid.UUID]struct{}, len(raw))
	out := make([]uuid.UUID, 0, len(raw))
	for _, id := range raw {
		id = strings.TrimSpace(id)
		if id == "" {
			continue
		}
		parsed, err := uuid.Parse(id)
		if err != nil {
			return nil, attendanceerrors.ErrInvalidEmployeeID.WithDetails(map[string]any{"employee_ids": []string{id}})
		}
		if _, ok := seen[parsed]; ok {
			continue
		}
		seen[parsed] = struct{}{}
		out = append(out, parsed)
	}
	if len(out) == 0 {
		return nil, attendanceerrors.ErrEmptyEmployeeList
	}
	return out, nil
}

func toResponsePtr(a Attendance) *AttendanceResponse {
	resp := mapToResponse(a)
	return &resp
}

func mapToResponse(a Attendance) AttendanceResponse {
	resp := AttendanceResponse{
		ID:             a.ID.String(),
		EmployeeID:     a.EmployeeID.String(),
		AttendanceDate: dateutil.Format(a.AttendanceDate),
		Status:         a.Status,
		Source:         a.Source,
		MarkedAt:       a.MarkedAt.UTC().Format(time.RFC3339),
	}
	if a.MarkedBy != nil {
		resp.MarkedBy = a.MarkedBy.String()
	}
	if a.Employee != nil {
		resp.EmployeeName = a.Employee.FullName
	}
	return resp
}
