package apperror

import (
	"errors"
	"net/http"
)

type HTTPError struct {
	Status  int
	Code    string
	Message string
	Details any
}

// ToHTTP flattens any error into the response envelope fields. Errors that are
// not *AppError never leak their text to clients.
func ToHTTP(err error) HTTPError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		status := appErr.HTTPStatus
		if status == 0 {
			status = http.StatusInternalServerError
		}
		return HTTPError{
			Status:  status,
			Code:    appErr.Code,
			Message: appErr.Message,
			Details: appErr.Details,
		}
	}
	return HTTPError{
		Status:  ErrInternal.HTTPStatus,
		Code:    ErrInternal.Code,
		Message: ErrInternal.Message,
	}
}

func hasCode(err error, code string) bool {
	var appErr *AppError
	return errors.As(err, &appErr) && appErr.Code == code
}

// IsValidation reports bad caller input (past date, inverted range, holiday conflict, unknown type).
func IsValidation(err error) bool { return hasCode(err, CodeInvalidInput) }

func IsNotFound(err error) bool { return hasCode(err, CodeNotFound) }

// IsBlocked reports an operation refused by a business rule, e.g. attendance on a holiday.
func IsBlocked(err error) bool { return hasCode(err, CodeBlocked) }
