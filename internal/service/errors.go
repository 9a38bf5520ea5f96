package service

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

var (
	ErrNotFound     = errors.New("not found")
	ErrForbidden    = errors.New("forbidden")
	ErrInvalidInput = errors.New("invalid input")
	ErrListNotFound = errors.New("list not found")
	ErrChatBusy     = errors.New("a chat message is already being processed")
)

// validate is shared by all services; it reads the same `validate` tags the
// models carry.
var validate = validator.New(validator.WithRequiredStructEnabled())

func validateStruct(v any) error {
	if err := validate.Struct(v); err != nil {
		return invalid(err)
	}
	return nil
}

func invalid(err error) error {
	return fmt.Errorf("%w: %v", ErrInvalidInput, err)
}

func invalidf(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrInvalidInput}, args...)...)
}

// notFound maps gorm's not-found onto ErrNotFound and leaves other errors
// alone.
func notFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}
