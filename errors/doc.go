// Package errors provides structured error types for the tooling around the
// no-sandbox primitives.
//
// The primitives themselves never return errors. This package covers the
// checked layers: mapping wazero memory to host addresses, generating and
// instantiating reference modules, and evaluating intrinsics.
//
// Errors are categorized by Phase (where the error occurred) and Kind (error
// category). Use the Builder for structured construction:
//
//	err := errors.New(errors.PhaseEvaluate, errors.KindUndefined).
//		Intrinsic("i32.div_s").
//		Value(args).
//		Detail("zero divisor").
//		Build()
//
// Or the convenience constructors for common patterns:
//
//	err := errors.OutOfBounds(errors.PhaseMap, offset, 4, size)
//	err := errors.NotFound(errors.PhaseEvaluate, "intrinsic", name)
//
// All errors implement the standard error interface and support errors.Is/As.
package errors
