// Package errors provides structured error types for the bincodec library.
//
// Errors are categorized by Phase (where the error occurred) and Kind (error category).
// The Error type includes rich context: field path, detail message, and cause chain.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseDecode, errors.KindBufferTooSmall).
//		Path("header", "payload").
//		Detail("need %d byte(s), have %d", 16, 3).
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.BufferTooSmall(errors.PhaseDecode, 16, 3)
//	err := errors.LengthMismatch(errors.PhaseEncode, 4, 7)
//
// All errors implement the standard error interface and support errors.Is/As.
// Two codec errors match under errors.Is when their Phase and Kind agree;
// IsKind matches on Kind alone, which is how the buffer-growth helper
// distinguishes retryable too-small failures from everything else.
package errors
