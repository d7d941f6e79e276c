// Package errors provides structured error types for the coqgen library.
//
// Errors are categorized by Phase (where in the pipeline the error occurred)
// and Kind (error category). The Error type includes rich context: the
// offending feature, declaration name, or rendered type expression, and a
// cause chain.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseTranslate, errors.KindUnsupportedType).
//		Decl("connect").
//		TypeExpr("(int -> int) list").
//		Detail("function type nested in data argument").
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.UnresolvedName("handle", "socket")
//	err := errors.FreeSpecWithoutInterface()
//
// All errors implement the standard error interface and support errors.Is/As.
package errors
