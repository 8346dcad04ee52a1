package contracts

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidDataset is returned when a required collection is missing or empty
	ErrInvalidDataset = errors.New("invalid dataset")

	// ErrInvalidStrategy is returned when a calculation strategy is not supplied
	ErrInvalidStrategy = errors.New("invalid strategy")
)

// ValidationError describes which input failed the pre-aggregation gate.
// errors.Is matches it against ErrInvalidDataset or ErrInvalidStrategy.
type ValidationError struct {
	Kind    error
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%v: %s: %s", e.Kind, e.Field, e.Message)
}

func (e *ValidationError) Unwrap() error {
	return e.Kind
}
