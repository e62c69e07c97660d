package registration

import "fmt"

type ErrorReason string

const (
	REASON_FIELDS_REQUIRED  ErrorReason = "FIELDS_REQUIRED"
	REASON_INVALID_SERIAL   ErrorReason = "INVALID_SERIAL"
	REASON_INVALID_DURATION ErrorReason = "INVALID_DURATION"
)

// ValidationError описывает отказ в регистрации. Message показывается пользователю как есть.
type ValidationError struct {
	Reason  ErrorReason
	Message string
	Cause   error
}

func (e *ValidationError) Error() string {
	if e.Cause == nil {
		return fmt.Sprintf("%s: %s", e.Reason, e.Message)
	}
	return fmt.Sprintf("%s: %s. Cause: %s", e.Reason, e.Message, e.Cause)
}

func (e *ValidationError) Unwrap() error {
	return e.Cause
}

// Is сравнивает ошибки по причине, чтобы errors.Is работал с ErrFieldsRequired и т.п.
func (e *ValidationError) Is(target error) bool {
	t, ok := target.(*ValidationError)
	if !ok {
		return false
	}
	return e.Reason == t.Reason
}

var (
	ErrFieldsRequired = &ValidationError{
		Reason:  REASON_FIELDS_REQUIRED,
		Message: "All fields are required. Please go back and fill out all fields.",
	}
	ErrInvalidSerial = &ValidationError{
		Reason:  REASON_INVALID_SERIAL,
		Message: "Invalid serial. Please provide a valid serial number.",
	}
	ErrInvalidDuration = &ValidationError{
		Reason:  REASON_INVALID_DURATION,
		Message: "DCA length must be a positive number of minutes.",
	}
)

func newValidationError(base *ValidationError, cause error) *ValidationError {
	return &ValidationError{
		Reason:  base.Reason,
		Message: base.Message,
		Cause:   cause,
	}
}
