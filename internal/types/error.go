package types

import "fmt"

// Severity grades an error for reporting purposes.
type Severity string

const (
	SeverityWarning Severity = "warning"
	SeverityError   Severity = "error"
)

// CustomError is the single error-reporting contract every data operation
// routes through: an HTTP code, a user-facing message, a machine-readable
// type tag and a severity.
type CustomError struct {
	Code     int      `json:"code"`
	Message  string   `json:"message"`
	Type     string   `json:"type"`
	Severity Severity `json:"severity"`
}

func (e *CustomError) Error() string {
	return fmt.Sprintf("%d: %s [type: %s]", e.Code, e.Message, e.Type)
}

// NewError builds an error-severity CustomError.
func NewError(code int, message, errType string) *CustomError {
	return &CustomError{Code: code, Message: message, Type: errType, Severity: SeverityError}
}
