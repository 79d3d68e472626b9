package attendanceerrors

import (
	"net/http"

	"go-leave/internal/shared/apperror"
)

var (
	ErrHolidayBlocked = apperror.New(
		apperror.CodeBlocked,
		"attendance cannot be marked on a holiday",
		http.StatusUnprocessableEntity,
	)
	ErrInvalidDate = apperror.New(
		apperror.CodeInvalidInput,
		"invalid date format, expected YYYY-MM-DD",
		http.StatusBadRequest,
	)
	ErrInvalidEmployeeID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid employee id",
		http.StatusBadRequest,
	)
	ErrEmptyEmployeeList = apperror.New(
		apperror.CodeInvalidInput,
		"employee_ids must not be empty",
		http.StatusBadRequest,
	)
	ErrUnknownEmployees = apperror.New(
		apperror.CodeInvalidInput,
		"some employees do not exist",
		http.StatusBadRequest,
	)
	ErrInvalidStatus = apperror.New(
		apperror.CodeInvalidInput,
		"status must be one of: PRESENT ABSENT",
		http.StatusBadRequest,
	)
)
