package booking

import "fmt"

// CapacityError signals that a booking asked for more seats than remain.
type CapacityError struct {
	Available int
	Requested int
}

func (e *CapacityError) Error() string {
	return fmt.Sprintf("Only %d seats remaining, cannot book %d seats.", e.Available, e.Requested)
}

// ValidationError signals malformed booking input.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func NewValidationError(msg string) error {
	return &ValidationError{Message: msg}
}
