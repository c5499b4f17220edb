package errors

// ErrorCode represents a machine-readable error code.
type ErrorCode string

// Input errors
const (
	// ErrCodeInvalidInput indicates the input is not an ordered sequence of integers.
	ErrCodeInvalidInput ErrorCode = "INVALID_INPUT"
	// ErrCodeValidation indicates a struct, usually configuration, failed validation.
	ErrCodeValidation ErrorCode = "VALIDATION_ERROR"
)

// Internal errors
const (
	// ErrCodeInternal indicates a failure not caused by the caller, such as a
	// closed output stream.
	ErrCodeInternal ErrorCode = "INTERNAL_ERROR"
	// ErrCodeTelemetry indicates an OpenTelemetry provider failed to start or stop.
	ErrCodeTelemetry ErrorCode = "TELEMETRY_ERROR"
)
