package swipecell

import (
	"errors"
	"fmt"
)

// Sentinel errors for common conditions.
var (
	// ErrInvalidSettings indicates a settings value outside its allowed range.
	ErrInvalidSettings = errors.New("invalid swipe settings")

	// ErrNoSurface indicates an operation named a side without an action surface.
	ErrNoSurface = errors.New("no action surface on side")
)

// InfrastructureError represents a failure outside the interaction core:
// reading a settings file, talking to SDL or an input device, decoding an icon.
// Interaction edge cases never produce one.
type InfrastructureError struct {
	Op  string // Operation that failed (e.g., "load_settings", "open_device")
	Err error  // Underlying error
}

func (e *InfrastructureError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("swipecell: %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("swipecell: %s", e.Op)
}

func (e *InfrastructureError) Unwrap() error {
	return e.Err
}

// NewInfrastructureError creates a new infrastructure error.
func NewInfrastructureError(op string, err error) *InfrastructureError {
	return &InfrastructureError{Op: op, Err: err}
}

// IsInfrastructureError checks if an error is an infrastructure error.
func IsInfrastructureError(err error) bool {
	var infraErr *InfrastructureError
	return errors.As(err, &infraErr)
}
