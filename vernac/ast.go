package vernac

// Coq vernacular AST. Sentences are the unit of output: the generator
// produces an ordered sentence sequence and the renderer serializes it
// deterministically. No semantic decisions live here.

// Sentence is one Coq vernacular sentence
type Sentence interface {
	isSentence()
}

// Require is a Require Import/Export directive, optionally From-qualified
type Require struct {
	From   string
	Module string
	Export bool
}

func (Require) isSentence() {}

// Axiom declares a name with a type and no body
type Axiom struct {
	Name string
	Type Type
}

func (Axiom) isSentence() {}

// Definition declares a name with binders, a result type, and a body term.
// Type may be nil when the body determines it.
type Definition struct {
	Name    string
	Binders []Binder
	Type    Type
	Body    Term
}

func (Definition) isSentence() {}

// Inductive declares an inductive type with its constructors
type Inductive struct {
	Name         string
	Binders      []Binder
	Arity        Type
	Constructors []InductiveCase
}

func (Inductive) isSentence() {}

// InductiveCase is one constructor; Type is the full constructor type,
// result included.
type InductiveCase struct {
	Name string
	Type Type
}

// RecordDef declares a record type with named fields
type RecordDef struct {
	Name    string
	Binders []Binder
	Fields  []FieldDef
}

func (RecordDef) isSentence() {}

// FieldDef is one record field
type FieldDef struct {
	Name string
	Type Type
}

// Comment is an output comment sentence
type Comment struct {
	Text string
}

func (Comment) isSentence() {}

// Binder is one parenthesized binder group, (x y : T)
type Binder struct {
	Names []string
	Type  Type
}

// Type is a Coq type expression
type Type interface {
	isCoqType()
}

// Ref is a possibly qualified name reference
type Ref struct {
	Name string
}

func (Ref) isCoqType() {}
func (Ref) isTerm()    {}

// App applies a head type to arguments
type App struct {
	Head Type
	Args []Type
}

func (App) isCoqType() {}

// Arrow is a function type, right-associative
type Arrow struct {
	Dom Type
	Cod Type
}

func (Arrow) isCoqType() {}

// Prod is a product type, a * b
type Prod struct {
	Items []Type
}

func (Prod) isCoqType() {}

// Term is a Coq term expression
type Term interface {
	isTerm()
}

// TermApp applies a head term to arguments
type TermApp struct {
	Head Term
	Args []Term
}

func (TermApp) isTerm() {}

// Fun is an anonymous function, fun x y => body
type Fun struct {
	Params []string
	Body   Term
}

func (Fun) isTerm() {}

// TypeTerm lifts a type expression into term position, as in the body of a
// type-alias definition.
type TypeTerm struct {
	Type Type
}

func (TypeTerm) isTerm() {}

// Match is a case split over constructors
type Match struct {
	Scrutinee Term
	Arms      []Arm
}

func (Match) isTerm() {}

// Arm is one match arm: a constructor pattern and its body
type Arm struct {
	Constructor string
	Vars        []string
	Body        Term
}

// Helpers for the common shapes

// TypeRef builds a plain type reference
func TypeRef(name string) Type { return Ref{Name: name} }

// TermRef builds a plain term reference
func TermRef(name string) Term { return Ref{Name: name} }

// Arrows folds types into a right-nested arrow chain ending in result
func Arrows(result Type, args ...Type) Type {
	t := result
	for i := len(args) - 1; i >= 0; i-- {
		t = Arrow{Dom: args[i], Cod: t}
	}
	return t
}

// Apply builds an application, collapsing the zero-argument case
func Apply(head Type, args ...Type) Type {
	if len(args) == 0 {
		return head
	}
	return App{Head: head, Args: args}
}
