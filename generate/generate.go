// Package generate turns a normalized module into an ordered Coq sentence
// sequence: type declarations, effect-encoded value declarations, the
// per-module interface inductive with its semantics, and exception proxies.
//
// Generation is a single ordered fold over the declarations. All decisions
// are pure functions of the declaration, the feature set, and the
// translator/alias state at that point; the only accumulator state is the
// sentence list, the once-per-module emission markers, and the pending
// interface constructors. A fatal error aborts the run wholesale; partial
// output is never surfaced.
package generate

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"go.uber.org/zap"

	"github.com/verigate/coqgen/alias"
	"github.com/verigate/coqgen/features"
	"github.com/verigate/coqgen/signature"
	"github.com/verigate/coqgen/translate"
	"github.com/verigate/coqgen/vernac"
)

// ctor is one pending constructor of the per-module interface inductive
type ctor struct {
	name   string // constructor name, e.g. GetValue
	smart  string // injector name preserving the original value name
	args   []vernac.Type
	result vernac.Type
}

type generator struct {
	cfg       features.Config
	tr        *translate.Translator
	out       []vernac.Sentence
	ctors     []ctor
	modIdent  string
	ioPrelude bool
	ifPrelude bool
}

// Generate translates a normalized module under the given feature set and
// ordered required target modules. Declarations are processed strictly in
// order; derived artifacts that must see every impure value (the interface
// inductive, its injectors, and the semantics) are emitted after the final
// declaration, which keeps everything they reference earlier in the output.
func Generate(mod signature.Module, cfg features.Config, requires []string) ([]vernac.Sentence, error) {
	reg := translate.NewRegistry()
	resolver := alias.NewResolver(requires, mod.Hints)

	g := &generator{
		cfg:      cfg,
		tr:       translate.New(cfg, reg, resolver),
		modIdent: moduleIdent(mod.Name),
	}

	for _, d := range mod.Decls {
		var err error
		switch d := d.(type) {
		case signature.TypeDecl:
			err = g.typeDecl(d)
		case signature.ValueDecl:
			err = g.valueDecl(d)
		case signature.ExceptionDecl:
			err = g.exceptionDecl(d)
		}
		if err != nil {
			return nil, err
		}
	}

	if err := g.finishInterface(); err != nil {
		return nil, err
	}

	Logger().Debug("generation complete",
		zap.String("module", mod.Name),
		zap.Int("sentences", len(g.out)))
	return g.out, nil
}

// emit appends sentences, draining alias requires triggered by the
// translations that produced them so each require precedes its first use.
func (g *generator) emit(ss ...vernac.Sentence) {
	g.out = append(g.out, g.tr.PendingRequires()...)
	g.out = append(g.out, ss...)
}

func (g *generator) typeDecl(d signature.TypeDecl) error {
	ss, err := g.tr.Decl(d)
	if err != nil {
		return err
	}
	g.emit(ss...)
	return nil
}

func (g *generator) valueDecl(d signature.ValueDecl) error {
	args, result, err := g.tr.Spine(d.Name, d.Type)
	if err != nil {
		return err
	}
	name := vernac.Ident(d.Name)

	// A modeled value generates no fresh axiom: it becomes a definition
	// referencing the existing term, with the owning module required first.
	if ref, ok := g.tr.Use(d.Name); ok {
		g.emit(vernac.Definition{
			Name: name,
			Type: vernac.Arrows(result, args...),
			Body: vernac.TermRef(ref.Term),
		})
		return nil
	}

	switch {
	case d.Pure:
		g.emit(vernac.Axiom{Name: name, Type: vernac.Arrows(result, args...)})

	case g.cfg.Interface:
		// Deferred: the value becomes one constructor of the per-module
		// interface inductive, emitted after the last declaration. Any
		// requires its types triggered still land here, before the use.
		g.emit()
		g.ctors = append(g.ctors, ctor{
			name:   constructorName(d.Name),
			smart:  name,
			args:   args,
			result: result,
		})

	case g.cfg.SimpleIO:
		g.ioHelpers()
		g.emit(vernac.Axiom{
			Name: name,
			Type: vernac.Arrows(vernac.Apply(vernac.TypeRef("IO"), result), args...),
		})

	default:
		// No effect encoding enabled: declared as-is, like a pure value.
		g.emit(vernac.Axiom{Name: name, Type: vernac.Arrows(result, args...)})
	}
	return nil
}

// ioHelpers emits the IO monad prelude once per module, before the first
// IO-wrapped axiom.
func (g *generator) ioHelpers() {
	if g.ioPrelude {
		return
	}
	g.ioPrelude = true
	g.emit(
		vernac.Require{From: "SimpleIO", Module: "SimpleIO"},
		vernac.Require{From: "SimpleIO", Module: "IO_Monad"},
	)
}

func (g *generator) exceptionDecl(d signature.ExceptionDecl) error {
	proxy := vernac.Ident(d.Name) + "Exn"
	mk := "Make" + proxy

	consType := vernac.Type(vernac.TypeRef(proxy))
	if d.Payload != nil {
		payload, err := g.tr.Type(d.Name, d.Payload)
		if err != nil {
			return err
		}
		consType = vernac.Arrow{Dom: payload, Cod: vernac.TypeRef(proxy)}
	}

	g.emit(
		vernac.Inductive{
			Name:         proxy,
			Arity:        vernac.TypeRef("Type"),
			Constructors: []vernac.InductiveCase{{Name: mk, Type: consType}},
		},
		vernac.Axiom{
			Name: "inject_" + proxy,
			Type: vernac.Arrow{Dom: vernac.TypeRef(proxy), Cod: vernac.TypeRef("exn")},
		},
		vernac.Axiom{
			Name: "project_" + proxy,
			Type: vernac.Arrow{
				Dom: vernac.TypeRef("exn"),
				Cod: vernac.Apply(vernac.TypeRef("option"), vernac.TypeRef(proxy)),
			},
		},
	)
	return nil
}

// finishInterface emits the per-module interface inductive, the smart
// constructors preserving original names and arities, and, under freespec,
// the unsafe primitives plus the single case-split semantics.
func (g *generator) finishInterface() error {
	if !g.cfg.Interface || len(g.ctors) == 0 {
		return nil
	}

	iface := g.modIdent + "_interface"
	ifaceRef := vernac.TypeRef(iface)

	g.interfacePrelude()

	cases := make([]vernac.InductiveCase, len(g.ctors))
	for i, c := range g.ctors {
		cases[i] = vernac.InductiveCase{
			Name: c.name,
			Type: vernac.Arrows(vernac.Apply(ifaceRef, c.result), c.args...),
		}
	}
	g.emit(vernac.Inductive{
		Name:         iface,
		Arity:        vernac.Arrow{Dom: vernac.TypeRef("Type"), Cod: vernac.TypeRef("Type")},
		Constructors: cases,
	})

	for _, c := range g.ctors {
		binders := make([]vernac.Binder, len(c.args))
		ctorArgs := make([]vernac.Term, len(c.args))
		for i, a := range c.args {
			v := fmt.Sprintf("x%d", i)
			binders[i] = vernac.Binder{Names: []string{v}, Type: a}
			ctorArgs[i] = vernac.TermRef(v)
		}
		body := vernac.Term(vernac.TermRef(c.name))
		if len(ctorArgs) > 0 {
			body = vernac.TermApp{Head: vernac.TermRef(c.name), Args: ctorArgs}
		}
		g.emit(vernac.Definition{
			Name:    c.smart,
			Binders: binders,
			Type:    vernac.Apply(ifaceRef, c.result),
			Body:    body,
		})
	}

	if g.cfg.FreeSpec {
		g.freeSpecSemantics(iface)
	}
	return nil
}

// interfacePrelude requires the interface support library once per module
func (g *generator) interfacePrelude() {
	if g.ifPrelude {
		return
	}
	g.ifPrelude = true
	g.emit(vernac.Require{From: "CoqFFI", Module: "Interface"})
	if g.cfg.FreeSpec {
		g.emit(vernac.Require{From: "FreeSpec.Core", Module: "Core"})
	}
}

// freeSpecSemantics interprets each constructor against an axiomatized
// impure primitive, collected into one semantics value: a single case-split
// dispatching every constructor to its IO-typed counterpart.
func (g *generator) freeSpecSemantics(iface string) {
	g.ioHelpers()

	arms := make([]vernac.Arm, len(g.ctors))
	for i, c := range g.ctors {
		unsafe := "unsafe_" + c.smart
		g.emit(vernac.Axiom{
			Name: unsafe,
			Type: vernac.Arrows(vernac.Apply(vernac.TypeRef("IO"), c.result), c.args...),
		})

		vars := make([]string, len(c.args))
		terms := make([]vernac.Term, len(c.args))
		for j := range c.args {
			vars[j] = fmt.Sprintf("x%d", j)
			terms[j] = vernac.TermRef(vars[j])
		}
		body := vernac.Term(vernac.TermRef(unsafe))
		if len(terms) > 0 {
			body = vernac.TermApp{Head: vernac.TermRef(unsafe), Args: terms}
		}
		arms[i] = vernac.Arm{Constructor: c.name, Vars: vars, Body: body}
	}

	g.emit(vernac.Definition{
		Name: g.modIdent + "_semantics",
		Type: vernac.Apply(vernac.TypeRef("semantics"), vernac.TypeRef(iface)),
		Body: vernac.TermApp{
			Head: vernac.TermRef("bootstrap"),
			Args: []vernac.Term{vernac.Fun{
				Params: []string{"a", "e"},
				Body:   vernac.Match{Scrutinee: vernac.TermRef("e"), Arms: arms},
			}},
		},
	})
}

// constructorName maps a value name to its interface constructor name:
// snake_case and kebab-case become CamelCase.
func constructorName(name string) string {
	parts := strings.FieldsFunc(name, func(r rune) bool {
		return r == '_' || r == '-'
	})
	var b strings.Builder
	for _, p := range parts {
		r, size := utf8.DecodeRuneInString(p)
		b.WriteRune(unicode.ToUpper(r))
		b.WriteString(p[size:])
	}
	if b.Len() == 0 {
		return "Op"
	}
	return vernac.Ident(b.String())
}

// moduleIdent names the module-scoped artifacts; unnamed modules get M
func moduleIdent(name string) string {
	if name == "" {
		return "M"
	}
	return vernac.Ident(name)
}
