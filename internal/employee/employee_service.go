package employee

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	employeeerrors "go-leave/internal/employee/errors"
	"go-leave/internal/shared/contextutil"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const (
	DirectoryCacheKey = "employees:directory"
	directoryCacheTTL = time.Hour
)

// Directory is the read side other features depend on.
//
//go:generate mockgen -source=employee_service.go -destination=mock/employee_service_mock.go -package=mock
type Directory interface {
	GetByID(ctx context.Context, id string) (EmployeeResponse, error)
	ListAll(ctx context.Context) ([]EmployeeResponse, error)
	ListAdmins(ctx context.Context) ([]EmployeeResponse, error)
	Missing(ctx context.Context, ids []string) ([]string, error)
}

type Service interface {
	Directory
	Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)
}

type service struct {
	repo   Repository
	rdb    *redis.Client
	sf     *singleflight.Group
	logger *zap.Logger
}

func NewService(repo Repository, rdb *redis.Client, logger ...*zap.Logger) Service {
	l := zap.L().Named("employee.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employee.service")
	}
	return &service{
		repo:   repo,
		rdb:    rdb,
		sf:     &singleflight.Group{},
		logger: l,
	}
}

func (s *service) Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("create employee requested",
		zap.String("request_id", rid),
		zap.String("email", req.Email),
	)

	role := req.Role
	if role == "" {
		role = RoleEmployee
	}
	empl := &Employee{
		ID:       uuid.New(),
		FullName: strings.TrimSpace(req.FullName),
		Email:    strings.ToLower(strings.TrimSpace(req.Email)),
		Role:     role,
	}

	if err := s.repo.Create(ctx, empl); err != nil {
		s.logger.Error("create employee persist failed", zap.String("request_id", rid), zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	s.invalidateDirectory(ctx)

	s.logger.Info("create employee success",
		zap.String("request_id", rid),
		zap.String("employee_id", empl.ID.String()),
	)
	return mapToResponse(*empl), nil
}

func (s *service) GetByID(ctx context.Context, id string) (EmployeeResponse, error) {
	s.logger.Debug("get employee by id requested", zap.String("employee_id", id))
	if _, err := uuid.Parse(id); err != nil {
		return EmployeeResponse{}, employeeerrors.ErrInvalidEmployeeID
	}
	empl, err := s.repo.FindByID(ctx, id)
	if err != nil {
		s.logger.Warn("get employee by id failed", zap.String("employee_id", id), zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}
	return mapToResponse(*empl), nil
}

func (s *service) ListAll(ctx context.Context) ([]EmployeeResponse, error) {
	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, DirectoryCacheKey).Result(); err == nil {
			var resp []EmployeeResponse
			if json.Unmarshal([]byte(cached), &resp) == nil {
				return resp, nil
			}
		}
	}

	v, err, _ := s.sf.Do(DirectoryCacheKey, func() (interface{}, error) {
		emps, err := s.repo.FindAll(ctx)
		if err != nil {
			s.logger.Error("list employees failed", zap.Error(err))
			return nil, mapRepositoryError(err)
		}

		resp := mapToListResponse(emps)

		if s.rdb != nil {
			if jsonData, err := json.Marshal(resp); err == nil {
				if err := s.rdb.Set(ctx, DirectoryCacheKey, jsonData, directoryCacheTTL).Err(); err != nil {
					s.logger.Warn("cache employee directory failed", zap.Error(err))
				}
			}
		}

		return resp, nil
	})
	if err != nil {
		return nil, err
	}

	return v.([]EmployeeResponse), nil
}

func (s *service) ListAdmins(ctx context.Context) ([]EmployeeResponse, error) {
	admins, err := s.repo.FindByRole(ctx, RoleAdmin)
	if err != nil {
		s.logger.Error("list admins failed", zap.Error(err))
		return nil, mapRepositoryError(err)
	}
	return mapToListResponse(admins), nil
}

// Missing returns the ids from the input that do not name a known employee,
// in input order and without duplicates.
func (s *service) Missing(ctx context.Context, ids []string) ([]string, error) {
	parsed := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if u, err := uuid.Parse(id); err == nil {
			parsed = append(parsed, u)
		}
	}

	found, err := s.repo.FindExistingIDs(ctx, parsed)
	if err != nil {
		s.logger.Error("check employee ids failed", zap.Error(err))
		return nil, err
	}
	known := make(map[string]struct{}, len(found))
	for _, id := range found {
		known[id.String()] = struct{}{}
	}

	missing := []string{}
	seen := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		key := strings.ToLower(id)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		if u, err := uuid.Parse(id); err == nil {
			if _, ok := known[u.String()]; ok {
				continue
			}
		}
		missing = append(missing, id)
	}
	return missing, nil
}

func (s *service) invalidateDirectory(ctx context.Context) {
	if s.rdb == nil {
		return
	}
	if err := s.rdb.Del(ctx, DirectoryCacheKey).Err(); err != nil {
		s.logger.Error("failed to invalidate employee directory cache",
			zap.Error(err),
			zap.String("key", DirectoryCacheKey),
		)
	}
}

func mapToResponse(empl Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:       empl.ID.String(),
		FullName: empl.FullName,
		Email:    empl.Email,
		Role:     empl.Role,
	}
}

func mapToListResponse(emps []Employee) []EmployeeResponse {
	res := make([]EmployeeResponse, len(emps))
	for i, e := range emps {
		res[i] = mapToResponse(e)
	}
	return res
}
