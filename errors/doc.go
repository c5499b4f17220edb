// Package errors provides the structured error type used across seqtrace.
//
// Every failure that crosses a package boundary is an *AppError carrying a
// machine-readable ErrorCode, a human-readable message, optional details, and
// the underlying cause. AppError implements Unwrap, so the standard errors.Is
// and errors.As work through it.
package errors
