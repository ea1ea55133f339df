package engine

import (
	"errors"
	"fmt"
)

// ErrContentNotFound signals an unknown lesson slug. The dispatcher treats
// it as a request to fall back to dynamic mode, not a hard failure.
var ErrContentNotFound = errors.New("engine: content not found")

// ValidationError marks malformed learner input. It surfaces as a
// correction prompt; state is never mutated.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid input: %s", e.Msg)
}

// persistErr wraps a durable-store failure. Persistence errors are never
// absorbed; they abort the current turn visibly.
func persistErr(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
