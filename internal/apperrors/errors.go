package apperrors

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrInsufficientStock indicates that a stock decrement would drive an item below zero.
var ErrInsufficientStock = errors.New("insufficient stock")

// ErrInternal indicates an unexpected failure in the storage layer or elsewhere.
var ErrInternal = errors.New("internal error")

// AppError carries an error kind, a human-readable detail string and the
// underlying cause. Repositories wrap storage failures in it so callers can
// match the sentinel via errors.Is while handlers get a stable message.
type AppError struct {
	Code    int
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError creates an AppError wrapping an underlying cause.
// A nil cause defaults to ErrInternal so errors.Is(err, ErrInternal) holds.
func NewAppError(code int, message string, err error) *AppError {
	if err == nil {
		err = ErrInternal
	}
	return &AppError{Code: code, Message: message, Err: err}
}

// NewNotFoundError creates an AppError that matches ErrNotFound.
func NewNotFoundError(message string) *AppError {
	return &AppError{Code: 404, Message: message, Err: ErrNotFound}
}

// NewInsufficientStockError creates an AppError that matches
// ErrInsufficientStock. The available quantity is part of the message so the
// display layer can show it to the user.
func NewInsufficientStockError(available int64) *AppError {
	return &AppError{
		Code:    409,
		Message: fmt.Sprintf("insufficient stock (available: %d)", available),
		Err:     ErrInsufficientStock,
	}
}
