// Package errors provides structured error types shared by the katas.
//
// Every kata reports failures with a StructuredError so callers (and the CLI)
// can branch on the error code instead of matching message text.
//
// Example usage:
//
//	err := errors.NewWithContext(
//	    errors.ErrCodeNotFound,
//	    "unknown drink type",
//	    map[string]any{
//	        "drink": drink,
//	    },
//	)
package errors
