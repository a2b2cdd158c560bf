package entity

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidArgument   = errors.New("invalid argument")
	ErrUnknownCode       = errors.New("unknown code")
	ErrInsufficientStock = errors.New("insufficient stock")
	ErrUnknownCommand    = errors.New("unknown command")

	ErrEmptyCode           = fmt.Errorf("%w: code is empty", ErrInvalidArgument)
	ErrNonPositiveQuantity = fmt.Errorf("%w: quantity <= 0", ErrInvalidArgument)
	ErrQuantityNotNumber   = fmt.Errorf("%w: quantity is not a number", ErrInvalidArgument)
	ErrQuantityOverflow    = fmt.Errorf("%w: quantity overflows stock", ErrInvalidArgument)
)

// InsufficientStockError reports a movement asking for more than a holding has
type InsufficientStockError struct {
	Code      string
	Remaining int
	Requested int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("not enough: code %s remaining %d requested %d", e.Code, e.Remaining, e.Requested)
}

// Is lets errors.Is match ErrInsufficientStock
func (e *InsufficientStockError) Is(target error) bool {
	return target == ErrInsufficientStock
}

// UnknownCode wraps ErrUnknownCode with the offending code
func UnknownCode(code string) error {
	return fmt.Errorf("%w: %s", ErrUnknownCode, code)
}

// UnknownCommand wraps ErrUnknownCommand with the offending command
func UnknownCommand(command string) error {
	return fmt.Errorf("%w: %s", ErrUnknownCommand, command)
}
