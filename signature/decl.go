package signature

// Normalized declarations. Order is meaningful: later declarations may
// reference earlier ones and the generated output must stay
// dependency-ordered.

// Declaration is one normalized signature entry
type Declaration interface {
	isDeclaration()
	DeclName() string
}

// TypeDecl declares a type with optional parameters and a body
type TypeDecl struct {
	Name   string
	Params []string
	Body   TypeBody
}

func (TypeDecl) isDeclaration() {}
func (d TypeDecl) DeclName() string { return d.Name }

// TypeBody is the shape of a type declaration
type TypeBody interface {
	isTypeBody()
}

// Abstract is a type with hidden representation
type Abstract struct{}

func (Abstract) isTypeBody() {}

// Alias is a type equal to another type expression
type Alias struct {
	Expr TypeExpr
}

func (Alias) isTypeBody() {}

// Record is a type with named fields
type Record struct {
	Fields []Field
}

func (Record) isTypeBody() {}

// Field is one record field
type Field struct {
	Name string
	Type TypeExpr
}

// Variant is a sum type with constructors
type Variant struct {
	Constructors []Constructor
}

func (Variant) isTypeBody() {}

// Constructor is one variant constructor; Args may be empty
type Constructor struct {
	Name string
	Args []TypeExpr
}

// ValueDecl declares a value with its type and purity.
// Pure values translate unchanged; impure values get an effect encoding.
type ValueDecl struct {
	Name string
	Type TypeExpr
	Pure bool
}

func (ValueDecl) isDeclaration() {}
func (d ValueDecl) DeclName() string { return d.Name }

// ExceptionDecl declares a member of the open exception family.
// Payload is nil for nullary exceptions.
type ExceptionDecl struct {
	Name    string
	Payload TypeExpr
}

func (ExceptionDecl) isDeclaration() {}
func (d ExceptionDecl) DeclName() string { return d.Name }

// Module is a normalized signature: ordered declarations plus the alias
// hints gathered from model attributes.
type Module struct {
	Name  string
	Decls []Declaration
	Hints []Hint
}

// Hint binds a source name to a pre-existing Coq term, suppressing fresh
// axiom or definition generation for that name.
type Hint struct {
	Source string
	Target string
}
