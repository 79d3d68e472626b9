package leaveerrors

import (
	"fmt"
	"net/http"
	"strings"

	"go-leave/internal/shared/apperror"
)

var (
	ErrInvalidActorID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid actor id",
		http.StatusBadRequest,
	)
	ErrInvalidEmployeeID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid employee id",
		http.StatusBadRequest,
	)
	ErrInvalidDateFormat = apperror.New(
		apperror.CodeInvalidInput,
		"invalid date format, expected YYYY-MM-DD",
		http.StatusBadRequest,
	)
	ErrStartDateInPast = apperror.New(
		apperror.CodeInvalidInput,
		"start_date cannot be earlier than today",
		http.StatusBadRequest,
	)
	ErrInvalidDateRange = apperror.New(
		apperror.CodeInvalidInput,
		"end_date cannot be earlier than start_date",
		http.StatusBadRequest,
	)
	ErrHolidayConflict = apperror.New(
		apperror.CodeInvalidInput,
		"leave period includes holidays",
		http.StatusBadRequest,
	)
	ErrLeaveTypeNotFound = apperror.New(
		apperror.CodeInvalidInput,
		"leave type does not exist",
		http.StatusBadRequest,
	)
	ErrInvalidStatus = apperror.New(
		apperror.CodeInvalidInput,
		"status must be one of: PENDING APPROVED REJECTED",
		http.StatusBadRequest,
	)
	ErrInsufficientBalance = apperror.New(
		apperror.CodeInvalidInput,
		"insufficient leave balance",
		http.StatusBadRequest,
	)
	ErrLeaveNotFound = apperror.New(
		apperror.CodeNotFound,
		"leave not found",
		http.StatusNotFound,
	)
	ErrLeaveNotOwned = apperror.New(
		apperror.CodeForbidden,
		"leave belongs to another employee",
		http.StatusForbidden,
	)
	ErrLeaveNotPending = apperror.New(
		apperror.CodeConflict,
		"only pending leave can be edited",
		http.StatusConflict,
	)
	ErrLeaveTypeAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"leave type with the same name already exists",
		http.StatusConflict,
	)
	ErrLeaveTypeMissing = apperror.New(
		apperror.CodeNotFound,
		"leave type not found",
		http.StatusNotFound,
	)
)

// HolidayConflict names every holiday inside the requested period.
func HolidayConflict(dates, names []string) *apperror.AppError {
	labels := make([]string, len(dates))
	for i, d := range dates {
		labels[i] = d
		if i < len(names) && names[i] != "" {
			labels[i] = fmt.Sprintf("%s (%s)", d, names[i])
		}
	}
	err := ErrHolidayConflict.WithDetails(map[string]any{"dates": dates})
	err.Message = ErrHolidayConflict.Message + ": " + strings.Join(labels, ", ")
	return err
}
