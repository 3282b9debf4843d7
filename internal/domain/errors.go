package domain

import (
	"errors"
	"fmt"

	"git.appkode.ru/pub/go/failure"

	"seatplan/pkg/errcodes"
)

// AppError is a planner error that carries an error code for the API.
type AppError struct {
	Code    failure.ErrorCode
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

func (e *AppError) ErrorCode() failure.ErrorCode {
	return e.Code
}

// Description is the client facing message, without the cause.
func (e *AppError) Description() string {
	return e.Message
}

func NewError(code failure.ErrorCode, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
	}
}

func WrapError(err error, code failure.ErrorCode, message string) *AppError {
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

// GetCode returns the code of the first AppError in the chain.
func GetCode(err error) (failure.ErrorCode, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code, true
	}
	return "", false
}

// Sentinel errors returned by repositories.
var (
	ErrCohortNotFound      = NewError(errcodes.CohortNotFound, "cohort has no roster")
	ErrArrangementNotFound = NewError(errcodes.ArrangementNotFound, "no saved arrangement")
	ErrBallotAlreadyCast   = NewError(errcodes.BallotAlreadyCast, "ballot already cast")
)
