package apperror_test

import (
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strings"
	"testing"

	"go-leave/internal/shared/apperror"

	"github.com/go-playground/validator/v10"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestToHTTP(t *testing.T) {
	t.Run("app error keeps code and details", func(t *testing.T) {
		base := apperror.New(apperror.CodeInvalidInput, "bad dates", http.StatusBadRequest)
		err := fmt.Errorf("submit: %w", base.WithDetails([]string{"2026-12-25"}))

		got := apperror.ToHTTP(err)

		assert.Equal(t, http.StatusBadRequest, got.Status)
		assert.Equal(t, apperror.CodeInvalidInput, got.Code)
		assert.Equal(t, "bad dates", got.Message)
		assert.Equal(t, []string{"2026-12-25"}, got.Details)
		assert.Nil(t, base.Details)
	})

	t.Run("plain error is hidden", func(t *testing.T) {
		got := apperror.ToHTTP(errors.New("pq: connection refused"))

		assert.Equal(t, http.StatusInternalServerError, got.Status)
		assert.Equal(t, apperror.CodeInternalError, got.Code)
		assert.Equal(t, "Internal server error", got.Message)
	})
}

func TestClassifiers(t *testing.T) {
	validation := apperror.New(apperror.CodeInvalidInput, "x", http.StatusBadRequest)
	notFound := apperror.New(apperror.CodeNotFound, "x", http.StatusNotFound)
	blocked := apperror.New(apperror.CodeBlocked, "x", http.StatusUnprocessableEntity)

	assert.True(t, apperror.IsValidation(validation))
	assert.False(t, apperror.IsValidation(notFound))
	assert.True(t, apperror.IsNotFound(fmt.Errorf("wrap: %w", notFound)))
	assert.True(t, apperror.IsBlocked(blocked))
	assert.False(t, apperror.IsBlocked(errors.New("blocked")))
}

func TestPgViolations(t *testing.T) {
	unique := &pgconn.PgError{Code: "23505", ConstraintName: "uq_attendance_employee_date"}
	check := &pgconn.PgError{Code: "23514", ConstraintName: "chk_leave_balances_remaining"}

	assert.True(t, apperror.IsUniqueViolation(unique, "uq_attendance_employee_date"))
	assert.True(t, apperror.IsUniqueViolation(unique, ""))
	assert.False(t, apperror.IsUniqueViolation(unique, "uq_holidays_date"))
	assert.True(t, apperror.IsCheckViolation(fmt.Errorf("update: %w", check), "chk_leave_balances_remaining"))
	assert.True(t, apperror.IsUniqueViolation(errors.New(`ERROR: duplicate key value violates unique constraint "uq_holidays_date"`), "uq_holidays_date"))
	assert.False(t, apperror.IsCheckViolation(nil, ""))
}

func TestMapValidationError(t *testing.T) {
	type payload struct {
		LeaveTypeID string `json:"leave_type_id" validate:"required"`
		Status      string `json:"status" validate:"oneof=PENDING APPROVED"`
	}
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		return strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
	})

	err := apperror.MapValidationError(v.Struct(payload{Status: "PENDING"}))
	assert.Equal(t, "Leave Type Id is required", err.Error())

	err = apperror.MapValidationError(v.Struct(payload{LeaveTypeID: "x", Status: "NOPE"}))
	assert.Equal(t, "Status must be one of: PENDING APPROVED", err.Error())

	err = apperror.MapValidationError(errors.New("EOF"))
	assert.True(t, apperror.IsValidation(err))
}
