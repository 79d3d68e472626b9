package leave

import (
	"context"
	"errors"
	"strings"

	"go-leave/internal/employee"
	leaveerrors "go-leave/internal/leave/errors"
	"go-leave/internal/shared/apperror"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -source=leave_type_service.go -destination=mock/leave_type_service_mock.go -package=mock
type TypeService interface {
	CreateType(ctx context.Context, req LeaveTypeRequest) (LeaveTypeResponse, error)
	UpdateType(ctx context.Context, id string, req LeaveTypeRequest) (LeaveTypeResponse, error)
	ListTypes(ctx context.Context) ([]LeaveTypeResponse, error)
	SetBalance(ctx context.Context, req SetBalanceRequest) (LeaveBalanceResponse, error)
	ListBalances(ctx context.Context, employeeID string) ([]LeaveBalanceResponse, error)
}

type typeService struct {
	repo      TypeRepository
	directory employee.Directory
	logger    *zap.Logger
}

func NewTypeService(repo TypeRepository, directory employee.Directory, logger ...*zap.Logger) TypeService {
	l := zap.L().Named("leave.type_service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("leave.type_service")
	}
	return &typeService{repo: repo, directory: directory, logger: l}
}

func (s *typeService) CreateType(ctx context.Context, req LeaveTypeRequest) (LeaveTypeResponse, error) {
	t := &LeaveType{
		ID:          uuid.New(),
		Name:        strings.TrimSpace(req.Name),
		AnnualLimit: intValue(req.AnnualLimit),
	}
	if err := s.repo.CreateType(ctx, t); err != nil {
		if apperror.IsUniqueViolation(err, "uq_leave_types_name") {
			return LeaveTypeResponse{}, leaveerrors.ErrLeaveTypeAlreadyExists
		}
		s.logger.Error("create leave type failed", zap.Error(err))
		return LeaveTypeResponse{}, err
	}
	s.logger.Info("create leave type success", zap.String("leave_type_id", t.ID.String()), zap.String("name", t.Name))
	return mapTypeToResponse(*t), nil
}

func (s *typeService) UpdateType(ctx context.Context, id string, req LeaveTypeRequest) (LeaveTypeResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return LeaveTypeResponse{}, leaveerrors.ErrLeaveTypeMissing
	}
	t, err := s.repo.FindTypeByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return LeaveTypeResponse{}, leaveerrors.ErrLeaveTypeMissing
		}
		return LeaveTypeResponse{}, err
	}

	t.Name = strings.TrimSpace(req.Name)
	t.AnnualLimit = intValue(req.AnnualLimit)
	if err := s.repo.UpdateType(ctx, t); err != nil {
		if apperror.IsUniqueViolation(err, "uq_leave_types_name") {
			return LeaveTypeResponse{}, leaveerrors.ErrLeaveTypeAlreadyExists
		}
		s.logger.Error("update leave type failed", zap.Error(err))
		return LeaveTypeResponse{}, err
	}
	return mapTypeToResponse(*t), nil
}

func (s *typeService) ListTypes(ctx context.Context) ([]LeaveTypeResponse, error) {
	rows, err := s.repo.FindAllTypes(ctx)
	if err != nil {
		return nil, err
	}
	res := make([]LeaveTypeResponse, len(rows))
	for i, t := range rows {
		res[i] = mapTypeToResponse(t)
	}
	return res, nil
}

// SetBalance overwrites the remaining days for one employee and leave type.
func (s *typeService) SetBalance(ctx context.Context, req SetBalanceRequest) (LeaveBalanceResponse, error) {
	missing, err := s.directory.Missing(ctx, []string{req.EmployeeID})
	if err != nil {
		return LeaveBalanceResponse{}, err
	}
	if len(missing) > 0 {
		return LeaveBalanceResponse{}, leaveerrors.ErrInvalidEmployeeID
	}

	t, err := s.repo.FindTypeByID(ctx, req.LeaveTypeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return LeaveBalanceResponse{}, leaveerrors.ErrLeaveTypeNotFound
		}
		return LeaveBalanceResponse{}, err
	}

	b := &LeaveBalance{
		ID:          uuid.New(),
		EmployeeID:  uuid.MustParse(req.EmployeeID),
		LeaveTypeID: t.ID,
		Remaining:   intValue(req.Remaining),
	}
	if err := s.repo.UpsertBalance(ctx, b); err != nil {
		s.logger.Error("set leave balance failed", zap.Error(err))
		return LeaveBalanceResponse{}, err
	}

	s.logger.Info("set leave balance success",
		zap.String("employee_id", req.EmployeeID),
		zap.String("leave_type_id", req.LeaveTypeID),
		zap.Int("remaining", b.Remaining),
	)
	b.LeaveType = t
	return mapBalanceToResponse(*b), nil
}

func (s *typeService) ListBalances(ctx context.Context, employeeID string) ([]LeaveBalanceResponse, error) {
	if _, err := uuid.Parse(employeeID); err != nil {
		return nil, leaveerrors.ErrInvalidEmployeeID
	}
	rows, err := s.repo.FindBalancesByEmployee(ctx, employeeID)
	if err != nil {
		return nil, err
	}
	res := make([]LeaveBalanceResponse, len(rows))
	for i, b := range rows {
		res[i] = mapBalanceToResponse(b)
	}
	return res, nil
}

func intValue(v *int) int {
	if v == nil {
		return 0
	}
	return *v
}

func mapTypeToResponse(t LeaveType) LeaveTypeResponse {
	return LeaveTypeResponse{
		ID:          t.ID.String(),
		Name:        t.Name,
		AnnualLimit: t.AnnualLimit,
	}
}

func mapBalanceToResponse(b LeaveBalance) LeaveBalanceResponse {
	resp := LeaveBalanceResponse{
		EmployeeID:  b.EmployeeID.String(),
		LeaveTypeID: b.LeaveTypeID.String(),
		Remaining:   b.Remaining,
	}
	if b.LeaveType != nil {
		resp.LeaveTypeName = b.LeaveType.Name
	}
	return resp
}
