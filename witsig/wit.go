package witsig

import (
	"go.bytecodealliance.org/wit"

	"github.com/verigate/coqgen/errors"
	"github.com/verigate/coqgen/signature"
)

// WITFunc is one exported function of a resolved WIT interface.
// Result is nil for functions returning nothing.
type WITFunc struct {
	Name   string
	Params []wit.Type
	Result wit.Type
}

// FromWIT converts a WIT interface into a raw signature. Named records,
// variants, and enums referenced by the functions become type items,
// emitted before their first use; the functions themselves become impure
// value items (WIT carries no purity metadata).
//
// Constructs the source grammar cannot express — flags, resources, floats,
// anonymous records — fail with a load error rather than being approximated.
func FromWIT(module string, funcs []WITFunc) (signature.Raw, error) {
	c := &witConverter{seen: make(map[*wit.TypeDef]string)}

	for _, f := range funcs {
		// Parameters convert left to right so named typedefs are emitted in
		// first-reference order; the arrow chain folds afterwards.
		doms := make([]signature.TypeExpr, len(f.Params))
		for i, p := range f.Params {
			dom, err := c.convert(f.Name, p)
			if err != nil {
				return signature.Raw{}, err
			}
			doms[i] = dom
		}
		var expr signature.TypeExpr = signature.TypeApp{Name: signature.BuiltinUnit}
		if f.Result != nil {
			t, err := c.convert(f.Name, f.Result)
			if err != nil {
				return signature.Raw{}, err
			}
			expr = t
		}
		for i := len(doms) - 1; i >= 0; i-- {
			expr = signature.Arrow{Dom: doms[i], Cod: expr}
		}
		if len(f.Params) == 0 {
			// Nullary WIT functions still take unit, keeping every value a
			// function of at least one argument.
			expr = signature.Arrow{Dom: signature.TypeApp{Name: signature.BuiltinUnit}, Cod: expr}
		}
		c.items = append(c.items, signature.RawItem{
			Kind: signature.ItemValue,
			Name: f.Name,
			Type: expr,
		})
	}

	return signature.Raw{Name: module, Items: c.items}, nil
}

type witConverter struct {
	items []signature.RawItem
	seen  map[*wit.TypeDef]string
}

func (c *witConverter) convert(decl string, t wit.Type) (signature.TypeExpr, error) {
	switch t := t.(type) {
	case wit.Bool:
		return signature.TypeApp{Name: signature.BuiltinBool}, nil
	case wit.U8, wit.S8, wit.U16, wit.S16, wit.U32, wit.S32, wit.U64, wit.S64:
		return signature.TypeApp{Name: signature.BuiltinInt}, nil
	case wit.Char:
		return signature.TypeApp{Name: signature.BuiltinChar}, nil
	case wit.String:
		return signature.TypeApp{Name: signature.BuiltinString}, nil
	case wit.F32, wit.F64:
		return nil, errors.New(errors.PhaseLoad, errors.KindUnsupportedType).
			Decl(decl).
			Detail("floating-point WIT types have no source counterpart").
			Build()
	case *wit.TypeDef:
		return c.convertTypeDef(decl, t)
	}
	return nil, errors.New(errors.PhaseLoad, errors.KindUnsupportedType).
		Decl(decl).
		Detail("unsupported WIT type: %T", t).
		Build()
}

func (c *witConverter) convertTypeDef(decl string, td *wit.TypeDef) (signature.TypeExpr, error) {
	switch kind := td.Kind.(type) {
	case *wit.List:
		elem, err := c.convert(decl, kind.Type)
		if err != nil {
			return nil, err
		}
		return signature.TypeApp{Name: signature.BuiltinList, Args: []signature.TypeExpr{elem}}, nil

	case *wit.Option:
		elem, err := c.convert(decl, kind.Type)
		if err != nil {
			return nil, err
		}
		return signature.TypeApp{Name: signature.BuiltinOption, Args: []signature.TypeExpr{elem}}, nil

	case *wit.Result:
		ok, err := c.optional(decl, kind.OK)
		if err != nil {
			return nil, err
		}
		errT, err := c.optional(decl, kind.Err)
		if err != nil {
			return nil, err
		}
		return signature.TypeApp{Name: signature.BuiltinResult, Args: []signature.TypeExpr{ok, errT}}, nil

	case *wit.Tuple:
		items := make([]signature.TypeExpr, len(kind.Types))
		for i, it := range kind.Types {
			e, err := c.convert(decl, it)
			if err != nil {
				return nil, err
			}
			items[i] = e
		}
		return signature.Tuple{Items: items}, nil

	case *wit.Record:
		return c.named(decl, td, func(name string) (signature.RawItem, error) {
			fields := make([]signature.Field, len(kind.Fields))
			for i, f := range kind.Fields {
				ft, err := c.convert(name, f.Type)
				if err != nil {
					return signature.RawItem{}, err
				}
				fields[i] = signature.Field{Name: f.Name, Type: ft}
			}
			return signature.RawItem{
				Kind: signature.ItemType,
				Name: name,
				Body: signature.Record{Fields: fields},
			}, nil
		})

	case *wit.Variant:
		return c.named(decl, td, func(name string) (signature.RawItem, error) {
			ctors := make([]signature.Constructor, len(kind.Cases))
			for i, cs := range kind.Cases {
				ctor := signature.Constructor{Name: cs.Name}
				if cs.Type != nil {
					at, err := c.convert(name, cs.Type)
					if err != nil {
						return signature.RawItem{}, err
					}
					ctor.Args = []signature.TypeExpr{at}
				}
				ctors[i] = ctor
			}
			return signature.RawItem{
				Kind: signature.ItemType,
				Name: name,
				Body: signature.Variant{Constructors: ctors},
			}, nil
		})

	case *wit.Enum:
		return c.named(decl, td, func(name string) (signature.RawItem, error) {
			ctors := make([]signature.Constructor, len(kind.Cases))
			for i, cs := range kind.Cases {
				ctors[i] = signature.Constructor{Name: cs.Name}
			}
			return signature.RawItem{
				Kind: signature.ItemType,
				Name: name,
				Body: signature.Variant{Constructors: ctors},
			}, nil
		})

	case wit.Type:
		// Transparent type alias in the WIT sense: follow the target.
		return c.convert(decl, kind)

	default:
		return nil, errors.New(errors.PhaseLoad, errors.KindUnsupportedType).
			Decl(decl).
			Detail("unsupported WIT TypeDef kind: %T", kind).
			Build()
	}
}

// optional maps a missing result side to unit
func (c *witConverter) optional(decl string, t wit.Type) (signature.TypeExpr, error) {
	if t == nil {
		return signature.TypeApp{Name: signature.BuiltinUnit}, nil
	}
	return c.convert(decl, t)
}

// named emits the type item for a named typedef on first reference and
// returns a reference expression. Anonymous definitions are a load error:
// the source grammar has no spelling for them.
func (c *witConverter) named(decl string, td *wit.TypeDef, build func(string) (signature.RawItem, error)) (signature.TypeExpr, error) {
	if name, ok := c.seen[td]; ok {
		return signature.TypeApp{Name: name}, nil
	}
	if td.Name == nil {
		return nil, errors.New(errors.PhaseLoad, errors.KindUnsupportedType).
			Decl(decl).
			Detail("anonymous WIT type definition").
			Build()
	}
	name := *td.Name
	c.seen[td] = name

	item, err := build(name)
	if err != nil {
		return nil, err
	}
	c.items = append(c.items, item)
	return signature.TypeApp{Name: name}, nil
}
