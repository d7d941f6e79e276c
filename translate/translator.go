// Package translate converts source type expressions into Coq type
// expressions, directed by the feature set and the alias table.
//
// Translation is pure given unchanged registry state: the registry memoizes
// each named type the first time it is translated, so multi-use types render
// consistently and are emitted exactly once. Unsupported constructs fail
// fatally; no fallback translation is guessed.
package translate

import (
	"fmt"
	"sort"

	"github.com/verigate/coqgen/alias"
	"github.com/verigate/coqgen/errors"
	"github.com/verigate/coqgen/features"
	"github.com/verigate/coqgen/signature"
	"github.com/verigate/coqgen/vernac"
)

// Fixed Coq counterparts of the source built-ins. The sequence type is the
// lazy restartable sequence abstraction from the FFI prelude.
var builtins = map[string]struct {
	name  string
	arity int
}{
	signature.BuiltinBool:   {"bool", 0},
	signature.BuiltinChar:   {"ascii", 0},
	signature.BuiltinInt:    {"i63", 0},
	signature.BuiltinList:   {"list", 1},
	signature.BuiltinSeq:    {"sequence", 1},
	signature.BuiltinOption: {"option", 1},
	signature.BuiltinResult: {"sum", 2},
	signature.BuiltinString: {"string", 0},
	signature.BuiltinUnit:   {"unit", 0},
	signature.BuiltinExn:    {"exn", 0},
}

// Translator converts source types to Coq types
type Translator struct {
	cfg     features.Config
	reg     *Registry
	aliases *alias.Resolver
	pending []vernac.Sentence
}

// New creates a translator over a registry and alias resolver.
// All three collaborators are per-run state.
func New(cfg features.Config, reg *Registry, aliases *alias.Resolver) *Translator {
	return &Translator{cfg: cfg, reg: reg, aliases: aliases}
}

// PendingRequires drains the Require directives triggered by alias use
// since the last drain. The caller must emit them before the sentence whose
// translation triggered them. When one sentence first-uses aliases from
// several required modules, the batch keeps the required-module ordering.
func (tr *Translator) PendingRequires() []vernac.Sentence {
	p := tr.pending
	tr.pending = nil
	sort.SliceStable(p, func(i, j int) bool {
		ri, _ := p[i].(vernac.Require)
		rj, _ := p[j].(vernac.Require)
		return tr.aliases.Position(ri.Module) < tr.aliases.Position(rj.Module)
	})
	return p
}

// Use resolves a value-level alias through the shared resolver. On a hit the
// owning module's Require directive, if not yet handed out, joins the pending
// buffer with the requires triggered by type translation.
func (tr *Translator) Use(name string) (alias.Ref, bool) {
	ref, require, ok := tr.aliases.Use(name)
	if !ok {
		return alias.Ref{}, false
	}
	if require != "" {
		tr.pending = append(tr.pending, vernac.Require{Module: require})
	}
	return ref, true
}

// Type translates a type expression in data position: arrows are not legal
// here and fail with unsupported_type. decl names the declaration being
// translated, for error context.
func (tr *Translator) Type(decl string, expr signature.TypeExpr) (vernac.Type, error) {
	switch t := expr.(type) {
	case signature.TypeVar:
		return vernac.TypeRef(vernac.Ident(t.Name)), nil

	case signature.Tuple:
		items := make([]vernac.Type, len(t.Items))
		for i, it := range t.Items {
			ct, err := tr.Type(decl, it)
			if err != nil {
				return nil, err
			}
			items[i] = ct
		}
		return vernac.Prod{Items: items}, nil

	case signature.Arrow:
		return nil, errors.UnsupportedType(decl, signature.String(expr),
			"function type nested in data argument")

	case signature.TypeApp:
		return tr.app(decl, t)
	}

	return nil, errors.UnsupportedType(decl, signature.String(expr),
		"construct outside the supported type grammar")
}

// Spine translates a value's type along its arrow spine, returning the
// translated argument types and the final result type. Arrows are legal
// only on the spine itself.
func (tr *Translator) Spine(decl string, expr signature.TypeExpr) (args []vernac.Type, result vernac.Type, err error) {
	for {
		arrow, ok := expr.(signature.Arrow)
		if !ok {
			break
		}
		dom, err := tr.Type(decl, arrow.Dom)
		if err != nil {
			return nil, nil, err
		}
		args = append(args, dom)
		expr = arrow.Cod
	}
	result, err = tr.Type(decl, expr)
	if err != nil {
		return nil, nil, err
	}
	return args, result, nil
}

// app translates a named type application
func (tr *Translator) app(decl string, t signature.TypeApp) (vernac.Type, error) {
	if b, ok := builtins[t.Name]; ok {
		if len(t.Args) != b.arity {
			return nil, errors.UnsupportedType(decl, signature.String(t),
				fmt.Sprintf("built-in %s expects %d type argument(s), got %d",
					t.Name, b.arity, len(t.Args)))
		}
		args, err := tr.args(decl, t.Args)
		if err != nil {
			return nil, err
		}
		return vernac.Apply(vernac.TypeRef(b.name), args...), nil
	}

	head, err := tr.named(decl, t.Name)
	if err != nil {
		return nil, err
	}
	args, err := tr.args(decl, t.Args)
	if err != nil {
		return nil, err
	}
	return vernac.Apply(head, args...), nil
}

func (tr *Translator) args(decl string, exprs []signature.TypeExpr) ([]vernac.Type, error) {
	if len(exprs) == 0 {
		return nil, nil
	}
	out := make([]vernac.Type, len(exprs))
	for i, e := range exprs {
		t, err := tr.Type(decl, e)
		if err != nil {
			return nil, err
		}
		out[i] = t
	}
	return out, nil
}

// named resolves a non-built-in type name through the registry, falling
// back to the alias table for names modeled but not yet referenced.
func (tr *Translator) named(decl, name string) (vernac.Type, error) {
	if e, ok := tr.reg.Lookup(name); ok {
		switch e := e.(type) {
		case Opaque:
			return vernac.TypeRef(e.Axiom), nil
		case Transparent:
			return vernac.TypeRef(e.Def), nil
		case Aliased:
			tr.use(name)
			return vernac.TypeRef(e.Ref.Term), nil
		}
	}

	if ref, require, ok := tr.aliases.Use(name); ok {
		tr.reg.record(name, Aliased{Ref: ref})
		if require != "" {
			tr.pending = append(tr.pending, vernac.Require{Module: require})
		}
		return vernac.TypeRef(ref.Term), nil
	}

	return nil, errors.UnresolvedName(decl, name)
}

// use re-runs alias bookkeeping for an already-recorded alias, catching the
// case where the recording declaration never actually referenced the module.
func (tr *Translator) use(name string) {
	if _, require, ok := tr.aliases.Use(name); ok && require != "" {
		tr.pending = append(tr.pending, vernac.Require{Module: require})
	}
}
