package apperrors

import (
	"github.com/pkg/errors"
)

type Kind int

const (
	KindInternal Kind = iota
	KindNotFound
	KindValidation
	KindConflict
)

// Error ошибка с видом, по которому контроллер выбирает http статус
type Error struct {
	kind    Kind
	message string
}

func (e *Error) Error() string {
	return e.message
}

func (e *Error) Kind() Kind {
	return e.kind
}

func NotFound(message string) error {
	return &Error{kind: KindNotFound, message: message}
}

func Validation(message string) error {
	return &Error{kind: KindValidation, message: message}
}

func Conflict(message string) error {
	return &Error{kind: KindConflict, message: message}
}

func KindOf(err error) Kind {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.kind
	}
	return KindInternal
}

func IsNotFound(err error) bool {
	return KindOf(err) == KindNotFound
}

func IsValidation(err error) bool {
	return KindOf(err) == KindValidation
}
