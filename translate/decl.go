package translate

import (
	"go.uber.org/zap"

	"github.com/verigate/coqgen/signature"
	"github.com/verigate/coqgen/vernac"
)

// Decl translates a type declaration into its Coq sentences and memoizes
// the outcome. A name already in the registry emits nothing, so multi-use
// types are declared exactly once. Require directives triggered by alias
// resolution accumulate in the pending buffer, not the return value.
func (tr *Translator) Decl(d signature.TypeDecl) ([]vernac.Sentence, error) {
	if _, ok := tr.reg.Lookup(d.Name); ok {
		return nil, nil
	}

	// A model hint bypasses both the opaque and transparent paths.
	if ref, require, ok := tr.aliases.Use(d.Name); ok {
		Logger().Debug("alias short-circuit",
			zap.String("type", d.Name),
			zap.String("target", ref.Term))
		tr.reg.record(d.Name, Aliased{Ref: ref})
		if require != "" {
			tr.pending = append(tr.pending, vernac.Require{Module: require})
		}
		return nil, nil
	}

	name := vernac.Ident(d.Name)
	binders := paramBinders(d.Params)

	if !tr.cfg.TransparentTypes {
		return tr.opaque(d.Name, name, len(d.Params)), nil
	}

	switch body := d.Body.(type) {
	case signature.Abstract:
		return tr.opaque(d.Name, name, len(d.Params)), nil

	case signature.Alias:
		// Entry recorded before the body translates so self-references
		// resolve; a fatal error discards the registry with the run.
		tr.reg.record(d.Name, Transparent{Def: name})
		t, err := tr.Type(d.Name, body.Expr)
		if err != nil {
			return nil, err
		}
		return []vernac.Sentence{vernac.Definition{
			Name:    name,
			Binders: binders,
			Type:    vernac.TypeRef("Type"),
			Body:    vernac.TypeTerm{Type: t},
		}}, nil

	case signature.Record:
		tr.reg.record(d.Name, Transparent{Def: name})
		fields := make([]vernac.FieldDef, len(body.Fields))
		for i, f := range body.Fields {
			t, err := tr.Type(d.Name, f.Type)
			if err != nil {
				return nil, err
			}
			fields[i] = vernac.FieldDef{Name: vernac.Ident(f.Name), Type: t}
		}
		return []vernac.Sentence{vernac.RecordDef{
			Name:    name,
			Binders: binders,
			Fields:  fields,
		}}, nil

	case signature.Variant:
		tr.reg.record(d.Name, Transparent{Def: name})
		result := vernac.Apply(vernac.TypeRef(name), paramRefs(d.Params)...)
		cases := make([]vernac.InductiveCase, len(body.Constructors))
		for i, c := range body.Constructors {
			args, err := tr.args(d.Name, c.Args)
			if err != nil {
				return nil, err
			}
			cases[i] = vernac.InductiveCase{
				Name: vernac.Ident(c.Name),
				Type: vernac.Arrows(result, args...),
			}
		}
		return []vernac.Sentence{vernac.Inductive{
			Name:         name,
			Binders:      binders,
			Arity:        vernac.TypeRef("Type"),
			Constructors: cases,
		}}, nil
	}

	return tr.opaque(d.Name, name, len(d.Params)), nil
}

// opaque emits the single axiomatized form, arity folded into the sort
func (tr *Translator) opaque(source, name string, arity int) []vernac.Sentence {
	tr.reg.record(source, Opaque{Axiom: name})
	sort := vernac.Type(vernac.TypeRef("Type"))
	for i := 0; i < arity; i++ {
		sort = vernac.Arrow{Dom: vernac.TypeRef("Type"), Cod: sort}
	}
	return []vernac.Sentence{vernac.Axiom{Name: name, Type: sort}}
}

func paramBinders(params []string) []vernac.Binder {
	if len(params) == 0 {
		return nil
	}
	names := make([]string, len(params))
	for i, p := range params {
		names[i] = vernac.Ident(p)
	}
	return []vernac.Binder{{Names: names, Type: vernac.TypeRef("Type")}}
}

func paramRefs(params []string) []vernac.Type {
	if len(params) == 0 {
		return nil
	}
	refs := make([]vernac.Type, len(params))
	for i, p := range params {
		refs[i] = vernac.TypeRef(vernac.Ident(p))
	}
	return refs
}
