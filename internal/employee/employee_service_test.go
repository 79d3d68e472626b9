package employee_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"go-leave/internal/employee"
	employeeerrors "go-leave/internal/employee/errors"
	employeeMock "go-leave/internal/employee/mock"

	"github.com/go-redis/redismock/v9"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

type serviceDeps struct {
	service   employee.Service
	repo      *employeeMock.MockRepository
	redismock redismock.ClientMock
}

func setupServiceTest(t *testing.T) *serviceDeps {
	ctrl := gomock.NewController(t)

	dbRedis, redisMock := redismock.NewClientMock()
	repo := employeeMock.NewMockRepository(ctrl)

	return &serviceDeps{
		service:   employee.NewService(repo, dbRedis),
		repo:      repo,
		redismock: redisMock,
	}
}

func TestEmployeeService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("success defaults role and invalidates directory cache", func(t *testing.T) {
		deps := setupServiceTest(t)

		deps.repo.EXPECT().
			Create(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, e *employee.Employee) error {
				assert.Equal(t, employee.RoleEmployee, e.Role)
				assert.Equal(t, "jane@example.com", e.Email)
				return nil
			})
		deps.redismock.ExpectDel(employee.DirectoryCacheKey).SetVal(1)

		resp, err := deps.service.Create(ctx, employee.CreateEmployeeRequest{
			FullName: " Jane Doe ",
			Email:    "Jane@Example.com",
		})

		assert.NoError(t, err)
		assert.Equal(t, "Jane Doe", resp.FullName)
		assert.Equal(t, employee.RoleEmployee, resp.Role)
		assert.NoError(t, deps.redismock.ExpectationsWereMet())
	})

	t.Run("duplicate email", func(t *testing.T) {
		deps := setupServiceTest(t)

		deps.repo.EXPECT().
			Create(ctx, gomock.Any()).
			Return(&pgconn.PgError{Code: "23505", ConstraintName: "uq_employee_email"})

		_, err := deps.service.Create(ctx, employee.CreateEmployeeRequest{
			FullName: "Jane",
			Email:    "jane@example.com",
			Role:     employee.RoleAdmin,
		})

		assert.ErrorIs(t, err, employeeerrors.ErrEmployeeAlreadyExists)
	})
}

func TestEmployeeService_GetByID(t *testing.T) {
	ctx := context.Background()

	t.Run("invalid id", func(t *testing.T) {
		deps := setupServiceTest(t)

		_, err := deps.service.GetByID(ctx, "not-a-uuid")

		assert.ErrorIs(t, err, employeeerrors.ErrInvalidEmployeeID)
	})

	t.Run("not found", func(t *testing.T) {
		deps := setupServiceTest(t)
		id := uuid.NewString()

		deps.repo.EXPECT().FindByID(ctx, id).Return(nil, gorm.ErrRecordNotFound)

		_, err := deps.service.GetByID(ctx, id)

		assert.ErrorIs(t, err, employeeerrors.ErrEmployeeNotFound)
	})

	t.Run("success", func(t *testing.T) {
		deps := setupServiceTest(t)
		id := uuid.New()

		deps.repo.EXPECT().FindByID(ctx, id.String()).Return(&employee.Employee{
			ID:       id,
			FullName: "Budi",
			Role:     employee.RoleAdmin,
		}, nil)

		resp, err := deps.service.GetByID(ctx, id.String())

		assert.NoError(t, err)
		assert.Equal(t, id.String(), resp.ID)
		assert.Equal(t, employee.RoleAdmin, resp.Role)
	})
}

func TestEmployeeService_ListAll(t *testing.T) {
	ctx := context.Background()

	t.Run("cache hit skips repository", func(t *testing.T) {
		deps := setupServiceTest(t)
		cached := []employee.EmployeeResponse{{ID: uuid.NewString(), FullName: "Cached"}}
		data, _ := json.Marshal(cached)

		deps.redismock.ExpectGet(employee.DirectoryCacheKey).SetVal(string(data))

		resp, err := deps.service.ListAll(ctx)

		assert.NoError(t, err)
		assert.Equal(t, cached, resp)
		assert.NoError(t, deps.redismock.ExpectationsWereMet())
	})

	t.Run("cache miss loads and stores", func(t *testing.T) {
		deps := setupServiceTest(t)
		id := uuid.New()
		rows := []employee.Employee{{ID: id, FullName: "Ani", Email: "ani@example.com", Role: employee.RoleEmployee}}
		expected := []employee.EmployeeResponse{{ID: id.String(), FullName: "Ani", Email: "ani@example.com", Role: employee.RoleEmployee}}
		data, _ := json.Marshal(expected)

		deps.redismock.ExpectGet(employee.DirectoryCacheKey).RedisNil()
		deps.repo.EXPECT().FindAll(ctx).Return(rows, nil)
		deps.redismock.ExpectSet(employee.DirectoryCacheKey, data, time.Hour).SetVal("OK")

		resp, err := deps.service.ListAll(ctx)

		assert.NoError(t, err)
		assert.Equal(t, expected, resp)
		assert.NoError(t, deps.redismock.ExpectationsWereMet())
	})

	t.Run("repository error", func(t *testing.T) {
		deps := setupServiceTest(t)

		deps.redismock.ExpectGet(employee.DirectoryCacheKey).RedisNil()
		deps.repo.EXPECT().FindAll(ctx).Return(nil, errors.New("db down"))

		resp, err := deps.service.ListAll(ctx)

		assert.Error(t, err)
		assert.Nil(t, resp)
	})
}

func TestEmployeeService_Missing(t *testing.T) {
	ctx := context.Background()
	deps := setupServiceTest(t)

	known := uuid.New()
	unknown := uuid.NewString()

	deps.repo.EXPECT().
		FindExistingIDs(ctx, gomock.Any()).
		Return([]uuid.UUID{known}, nil)

	missing, err := deps.service.Missing(ctx, []string{known.String(), unknown, "bogus", known.String()})

	assert.NoError(t, err)
	assert.Equal(t, []string{unknown, "bogus"}, missing)
}

func TestEmployeeService_ListAdmins(t *testing.T) {
	ctx := context.Background()
	deps := setupServiceTest(t)

	deps.repo.EXPECT().FindByRole(ctx, employee.RoleAdmin).Return([]employee.Employee{
		{ID: uuid.New(), FullName: "Admin", Role: employee.RoleAdmin},
	}, nil)

	admins, err := deps.service.ListAdmins(ctx)

	assert.NoError(t, err)
	assert.Len(t, admins, 1)
	assert.Equal(t, "Admin", admins[0].FullName)
}
