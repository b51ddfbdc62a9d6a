package domain

import (
	"errors"
	"fmt"

	"deal_browser/pkg/errcodes"
)

// AppError is a domain error carrying a stable code.
type AppError struct {
	Code    errcodes.ErrorCode
	Message string
	cause   error
}

func (e *AppError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.cause)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.cause
}

func NewError(code errcodes.ErrorCode, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
	}
}

func WrapError(err error, code errcodes.ErrorCode, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		cause:   err,
	}
}

func IsAppError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr)
}

func GetCode(err error) (errcodes.ErrorCode, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code, true
	}
	return "", false
}

// IsFetchFailure reports whether err is one of the upstream fetch failures:
// network, non-2xx status or unparseable payload.
func IsFetchFailure(err error) bool {
	code, ok := GetCode(err)
	if !ok {
		return false
	}

	switch code {
	case errcodes.NetworkError, errcodes.HTTPError, errcodes.ParseError:
		return true
	default:
		return false
	}
}
