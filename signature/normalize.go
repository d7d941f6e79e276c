package signature

import (
	"github.com/verigate/coqgen/errors"
	"github.com/verigate/coqgen/features"
)

// Normalize walks a raw signature into an ordered Module. Each raw item
// becomes exactly one Declaration, order preserved.
//
// Purity: a "pure" attribute on a value forces purity regardless of the
// pure-module feature; absent the attribute, purity defaults to the
// feature's value. A "model" attribute on a type or value is recorded as an
// alias hint for the resolver.
//
// Items outside {type, value, exception} fail with unsupported_item. Nested
// sub-module signatures are rejected rather than flattened.
func Normalize(raw Raw, cfg features.Config) (Module, error) {
	mod := Module{
		Name:  raw.Name,
		Decls: make([]Declaration, 0, len(raw.Items)),
	}

	for _, item := range raw.Items {
		if a, ok := item.Attr(AttrModel); ok {
			mod.Hints = append(mod.Hints, Hint{Source: item.Name, Target: a.Value})
		}

		switch item.Kind {
		case ItemType:
			body := item.Body
			if body == nil {
				body = Abstract{}
			}
			mod.Decls = append(mod.Decls, TypeDecl{
				Name:   item.Name,
				Params: item.Params,
				Body:   body,
			})

		case ItemValue:
			if item.Type == nil {
				return Module{}, errors.New(errors.PhaseNormalize, errors.KindInvalidInput).
					Decl(item.Name).
					Detail("value item without a type").
					Build()
			}
			_, pure := item.Attr(AttrPure)
			mod.Decls = append(mod.Decls, ValueDecl{
				Name: item.Name,
				Type: item.Type,
				Pure: pure || cfg.PureModule,
			})

		case ItemException:
			mod.Decls = append(mod.Decls, ExceptionDecl{
				Name:    item.Name,
				Payload: item.Payload,
			})

		default:
			return Module{}, errors.UnsupportedItem(item.Name, string(item.Kind))
		}
	}

	return mod, nil
}
