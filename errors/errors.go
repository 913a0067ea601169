package errors

import (
	"fmt"
	"strings"
)

// Phase indicates where the error occurred
type Phase string

const (
	PhaseMap         Phase = "map"         // linear memory to host address
	PhaseGenerate    Phase = "generate"    // reference module encoding
	PhaseCompile     Phase = "compile"     // wazero compilation
	PhaseInstantiate Phase = "instantiate" // wazero instantiation
	PhaseEvaluate    Phase = "evaluate"    // running an intrinsic
	PhaseConfig      Phase = "config"      // option validation
)

// Kind categorizes the error
type Kind string

const (
	KindOutOfBounds   Kind = "out_of_bounds"
	KindNilPointer    Kind = "nil_pointer"
	KindNotFound      Kind = "not_found"
	KindInvalidInput  Kind = "invalid_input"
	KindUndefined     Kind = "undefined_behavior"
	KindStale         Kind = "stale"
	KindCompile       Kind = "compile"
	KindInstantiation Kind = "instantiation"
	KindExecution     Kind = "execution"
)

// Error is the structured error type used throughout the module
type Error struct {
	Value     any
	Cause     error
	Phase     Phase
	Kind      Kind
	Intrinsic string
	ValType   string
	Detail    string
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if e.Intrinsic != "" {
		b.WriteString(" in ")
		b.WriteString(e.Intrinsic)
	}

	if e.ValType != "" {
		b.WriteString(" (")
		b.WriteString(e.ValType)
		b.WriteByte(')')
	}

	if e.Detail != "" {
		b.WriteString(": ")
		b.WriteString(e.Detail)
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Phase == t.Phase && e.Kind == t.Kind
	}
	return false
}

// Builder provides structured error construction
type Builder struct {
	err Error
}

// New creates a new error builder
func New(phase Phase, kind Kind) *Builder {
	return &Builder{
		err: Error{
			Phase: phase,
			Kind:  kind,
		},
	}
}

// Intrinsic sets the wasm mnemonic involved
func (b *Builder) Intrinsic(name string) *Builder {
	b.err.Intrinsic = name
	return b
}

// ValType sets the wasm value type involved
func (b *Builder) ValType(t string) *Builder {
	b.err.ValType = t
	return b
}

// Value sets the offending value
func (b *Builder) Value(v any) *Builder {
	b.err.Value = v
	return b
}

// Cause sets the underlying error
func (b *Builder) Cause(err error) *Builder {
	b.err.Cause = err
	return b
}

// Detail sets the human-readable detail message
func (b *Builder) Detail(msg string, args ...any) *Builder {
	if len(args) > 0 {
		b.err.Detail = fmt.Sprintf(msg, args...)
	} else {
		b.err.Detail = msg
	}
	return b
}

// Build returns the constructed error
func (b *Builder) Build() *Error {
	return &b.err
}

// Convenience constructors for common error patterns

// OutOfBounds reports an access of width bytes at offset past size
func OutOfBounds(phase Phase, offset, width, size uint64) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindOutOfBounds,
		Detail: fmt.Sprintf("access of %d bytes at offset %d out of bounds (size %d)", width, offset, size),
		Value:  offset,
	}
}

// NilPointer creates a nil pointer error
func NilPointer(phase Phase, what string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindNilPointer,
		Detail: "nil " + what,
	}
}

// NotFound creates a not found error
func NotFound(phase Phase, what, name string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindNotFound,
		Detail: fmt.Sprintf("%s %q not found", what, name),
		Value:  name,
	}
}

// InvalidInput creates an invalid input error
func InvalidInput(phase Phase, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidInput,
		Detail: detail,
	}
}

// Undefined reports operands outside an intrinsic's defined domain
func Undefined(phase Phase, intrinsic string, args []uint64) *Error {
	return &Error{
		Phase:     phase,
		Kind:      KindUndefined,
		Intrinsic: intrinsic,
		Detail:    fmt.Sprintf("operands %#x are undefined without a sandbox", args),
		Value:     args,
	}
}

// Wrap wraps an existing error with additional context
func Wrap(phase Phase, kind Kind, cause error, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   kind,
		Detail: detail,
		Cause:  cause,
	}
}

// Execution wraps a failed call into the reference engine
func Execution(intrinsic, valType string, cause error) *Error {
	return New(PhaseEvaluate, KindExecution).
		Intrinsic(intrinsic).
		ValType(valType).
		Detail("reference call failed").
		Cause(cause).
		Build()
}
