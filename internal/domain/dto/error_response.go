package dto

import "time"

// ErrorResponse is the JSON error body returned by every endpoint.
//
// Fields:
//   - Message: human-readable summary of what went wrong.
//   - ErrorDetails: underlying error text, when one exists.
//   - Timestamp: when the error response was produced.
type ErrorResponse struct {
	Message      string    `json:"message" example:"invalid window"`
	ErrorDetails string    `json:"error,omitempty" example:"from is after to"`
	Timestamp    time.Time `json:"timestamp"`
}

// Error implements the error interface so an ErrorResponse can travel
// through error-typed plumbing when needed.
func (e ErrorResponse) Error() string {
	if e.ErrorDetails == "" {
		return e.Message
	}
	return e.Message + ": " + e.ErrorDetails
}

// NewErrorResponse builds an ErrorResponse from a message and an
// optional inner error.
func NewErrorResponse(message string, err error) ErrorResponse {
	details := ""
	if err != nil {
		details = err.Error()
	}
	return ErrorResponse{
		Message:      message,
		ErrorDetails: details,
		Timestamp:    time.Now(),
	}
}
