// file: internals/helpers/apperr/apperr.go
package apperr

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
)

// Kind membedakan kelas error workflow review.
type Kind int

const (
	KindValidation Kind = iota + 1
	KindConflict
	KindAuthorization
	KindNotFound
)

// AppError adalah error bertipe yang dikembalikan service layer.
// Controller memetakan ke HTTP via helper.FromAppError.
type AppError struct {
	Kind    Kind
	Message string
}

func (e *AppError) Error() string { return e.Message }

func (e *AppError) HTTPStatus() int {
	switch e.Kind {
	case KindValidation:
		return fiber.StatusUnprocessableEntity
	case KindConflict:
		return fiber.StatusConflict
	case KindAuthorization:
		return fiber.StatusForbidden
	case KindNotFound:
		return fiber.StatusNotFound
	default:
		return fiber.StatusInternalServerError
	}
}

func Validation(format string, args ...interface{}) *AppError {
	return &AppError{Kind: KindValidation, Message: fmt.Sprintf(format, args...)}
}

func Conflict(format string, args ...interface{}) *AppError {
	return &AppError{Kind: KindConflict, Message: fmt.Sprintf(format, args...)}
}

func Authorization(format string, args ...interface{}) *AppError {
	return &AppError{Kind: KindAuthorization, Message: fmt.Sprintf(format, args...)}
}

func NotFound(format string, args ...interface{}) *AppError {
	return &AppError{Kind: KindNotFound, Message: fmt.Sprintf(format, args...)}
}

// As membongkar AppError dari error chain (termasuk hasil Tx rollback).
func As(err error) (*AppError, bool) {
	var ae *AppError
	if errors.As(err, &ae) {
		return ae, true
	}
	return nil, false
}

func IsKind(err error, k Kind) bool {
	if ae, ok := As(err); ok {
		return ae.Kind == k
	}
	return false
}
