package signature

import "strings"

// Source type expressions. The grammar is deliberately small: type
// variables, named applications (built-ins included), tuples, and arrows.
// Arrows are legal only along the spine of a value's type; the translator
// rejects them anywhere else.

// TypeExpr represents a source type expression
type TypeExpr interface {
	isTypeExpr()
}

// TypeVar is a type variable such as 'a
type TypeVar struct {
	Name string
}

func (TypeVar) isTypeExpr() {}

// TypeApp is a named type application; Args is empty for plain names.
// Built-in type names are recognized by IsBuiltin.
type TypeApp struct {
	Name string
	Args []TypeExpr
}

func (TypeApp) isTypeExpr() {}

// Tuple is a product of two or more components
type Tuple struct {
	Items []TypeExpr
}

func (Tuple) isTypeExpr() {}

// Arrow is a function type from Dom to Cod
type Arrow struct {
	Dom TypeExpr
	Cod TypeExpr
}

func (Arrow) isTypeExpr() {}

// Built-in type names of the source language
const (
	BuiltinBool   = "bool"
	BuiltinChar   = "char"
	BuiltinInt    = "int"
	BuiltinList   = "list"
	BuiltinSeq    = "seq"
	BuiltinOption = "option"
	BuiltinResult = "result"
	BuiltinString = "string"
	BuiltinUnit   = "unit"
	BuiltinExn    = "exn"
)

// IsBuiltin reports whether name is a fixed built-in type
func IsBuiltin(name string) bool {
	switch name {
	case BuiltinBool, BuiltinChar, BuiltinInt, BuiltinList, BuiltinSeq,
		BuiltinOption, BuiltinResult, BuiltinString, BuiltinUnit, BuiltinExn:
		return true
	}
	return false
}

// String renders the expression in source syntax, for diagnostics
func String(e TypeExpr) string {
	switch t := e.(type) {
	case TypeVar:
		return "'" + t.Name
	case TypeApp:
		switch len(t.Args) {
		case 0:
			return t.Name
		case 1:
			return atom(t.Args[0]) + " " + t.Name
		default:
			parts := make([]string, len(t.Args))
			for i, a := range t.Args {
				parts[i] = String(a)
			}
			return "(" + strings.Join(parts, ", ") + ") " + t.Name
		}
	case Tuple:
		parts := make([]string, len(t.Items))
		for i, it := range t.Items {
			parts[i] = atom(it)
		}
		return strings.Join(parts, " * ")
	case Arrow:
		return atom(t.Dom) + " -> " + String(t.Cod)
	}
	return "?"
}

// atom parenthesizes compound expressions in argument position
func atom(e TypeExpr) string {
	switch e.(type) {
	case Tuple, Arrow:
		return "(" + String(e) + ")"
	}
	return String(e)
}
