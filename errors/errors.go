package errors

import (
	"fmt"
	"strings"
)

// Phase indicates where in the pipeline the error occurred
type Phase string

const (
	PhaseConfig    Phase = "config"    // feature set validation
	PhaseNormalize Phase = "normalize" // raw signature to declarations
	PhaseTranslate Phase = "translate" // source type to Coq type
	PhaseGenerate  Phase = "generate"  // vernacular generation
	PhaseLoad      Phase = "load"      // signature loading
	PhaseRender    Phase = "render"    // sentence serialization
)

// Kind categorizes the error
type Kind string

const (
	KindFreeSpecWithoutInterface Kind = "freespec_without_interface"
	KindUnknownFeature           Kind = "unknown_feature"
	KindDuplicateFeature         Kind = "duplicate_feature"
	KindUnsupportedItem          Kind = "unsupported_item"
	KindUnsupportedType          Kind = "unsupported_type"
	KindUnresolvedName           Kind = "unresolved_name"
	KindInvalidInput             Kind = "invalid_input"
	KindInvalidData              Kind = "invalid_data"
	KindNotFound                 Kind = "not_found"
)

// Error is the structured error type used throughout the generator
type Error struct {
	Cause    error
	Phase    Phase
	Kind     Kind
	Feature  string
	Decl     string
	TypeExpr string
	Detail   string
	Path     []string
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if len(e.Path) > 0 {
		b.WriteString(" at ")
		b.WriteString(strings.Join(e.Path, "."))
	}

	switch {
	case e.Feature != "":
		b.WriteString(": feature ")
		b.WriteString(e.Feature)
	case e.Decl != "" && e.TypeExpr != "":
		b.WriteString(": declaration ")
		b.WriteString(e.Decl)
		b.WriteString(", type ")
		b.WriteString(e.TypeExpr)
	case e.Decl != "":
		b.WriteString(": declaration ")
		b.WriteString(e.Decl)
	case e.TypeExpr != "":
		b.WriteString(": type ")
		b.WriteString(e.TypeExpr)
	}

	if e.Detail != "" {
		if e.Feature != "" || e.Decl != "" || e.TypeExpr != "" {
			b.WriteString(" - ")
		} else {
			b.WriteString(": ")
		}
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

// Path sets the location path within the signature
func (b *Builder) Path(path ...string) *Builder {
	b.err.Path = path
	return b
}

// Feature sets the offending feature name
func (b *Builder) Feature(name string) *Builder {
	b.err.Feature = name
	return b
}

// Decl sets the offending declaration name
func (b *Builder) Decl(name string) *Builder {
	b.err.Decl = name
	return b
}

// TypeExpr sets the rendered offending type expression
func (b *Builder) TypeExpr(expr string) *Builder {
	b.err.TypeExpr = expr
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

// FreeSpecWithoutInterface reports the one inconsistent feature combination.
func FreeSpecWithoutInterface() *Error {
	return &Error{
		Phase:   PhaseConfig,
		Kind:    KindFreeSpecWithoutInterface,
		Feature: "freespec",
		Detail:  "freespec requires interface",
	}
}

// UnknownFeature reports an unrecognized feature setting name
func UnknownFeature(name string) *Error {
	return &Error{
		Phase:   PhaseConfig,
		Kind:    KindUnknownFeature,
		Feature: name,
		Detail:  "unrecognized feature name",
	}
}

// UnsupportedItem reports a signature item outside type/value/exception
func UnsupportedItem(decl, kind string) *Error {
	return &Error{
		Phase:  PhaseNormalize,
		Kind:   KindUnsupportedItem,
		Decl:   decl,
		Detail: fmt.Sprintf("signature item kind %q is not supported", kind),
	}
}

// UnsupportedType reports a type expression outside the supported grammar
func UnsupportedType(decl, expr, detail string) *Error {
	return &Error{
		Phase:    PhaseTranslate,
		Kind:     KindUnsupportedType,
		Decl:     decl,
		TypeExpr: expr,
		Detail:   detail,
	}
}

// UnresolvedName reports a named type with no built-in, local, or alias target
func UnresolvedName(decl, name string) *Error {
	return &Error{
		Phase:    PhaseTranslate,
		Kind:     KindUnresolvedName,
		Decl:     decl,
		TypeExpr: name,
		Detail:   "name resolves to no built-in, earlier declaration, or alias",
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

// NotFound creates a not-found error
func NotFound(phase Phase, what, name string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindNotFound,
		Detail: fmt.Sprintf("%s %q not found", what, name),
	}
}

// Load wraps a loader failure
func Load(detail string, cause error) *Error {
	return &Error{
		Phase:  PhaseLoad,
		Kind:   KindInvalidData,
		Detail: detail,
		Cause:  cause,
	}
}

// Unsupported creates an unsupported construct error for loaders
func Unsupported(phase Phase, what string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindUnsupportedType,
		Detail: what,
	}
}
