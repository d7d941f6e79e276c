package witsig

import (
	"encoding/json"
	"io"

	"github.com/verigate/coqgen/errors"
	"github.com/verigate/coqgen/signature"
)

// JSON signature interchange format. Type expressions are structured
// objects with exactly one populated field:
//
//	{"var": "a"}
//	{"name": "list", "args": [{"name": "int"}]}
//	{"tuple": [...]}
//	{"arrow": {"dom": ..., "cod": ...}}

type jsonSignature struct {
	Module string     `json:"module"`
	Items  []jsonItem `json:"items"`
}

type jsonItem struct {
	Kind    string     `json:"kind"`
	Name    string     `json:"name"`
	Params  []string   `json:"params,omitempty"`
	Body    *jsonBody  `json:"body,omitempty"`
	Type    *jsonType  `json:"type,omitempty"`
	Payload *jsonType  `json:"payload,omitempty"`
	Attrs   []jsonAttr `json:"attrs,omitempty"`
}

type jsonAttr struct {
	Name  string `json:"name"`
	Value string `json:"value,omitempty"`
}

type jsonBody struct {
	Alias   *jsonType   `json:"alias,omitempty"`
	Record  []jsonField `json:"record,omitempty"`
	Variant []jsonCtor  `json:"variant,omitempty"`
}

type jsonField struct {
	Name string   `json:"name"`
	Type jsonType `json:"type"`
}

type jsonCtor struct {
	Name string     `json:"name"`
	Args []jsonType `json:"args,omitempty"`
}

type jsonType struct {
	Var   string     `json:"var,omitempty"`
	Name  string     `json:"name,omitempty"`
	Args  []jsonType `json:"args,omitempty"`
	Tuple []jsonType `json:"tuple,omitempty"`
	Arrow *jsonArrow `json:"arrow,omitempty"`
}

type jsonArrow struct {
	Dom jsonType `json:"dom"`
	Cod jsonType `json:"cod"`
}

// FromJSON decodes a pre-parsed signature dump into a raw signature tree
func FromJSON(r io.Reader) (signature.Raw, error) {
	var js jsonSignature
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&js); err != nil {
		return signature.Raw{}, errors.Load("decode json signature", err)
	}

	raw := signature.Raw{
		Name:  js.Module,
		Items: make([]signature.RawItem, 0, len(js.Items)),
	}
	for _, it := range js.Items {
		item, err := decodeItem(it)
		if err != nil {
			return signature.Raw{}, err
		}
		raw.Items = append(raw.Items, item)
	}
	return raw, nil
}

func decodeItem(it jsonItem) (signature.RawItem, error) {
	item := signature.RawItem{
		// Unknown kinds pass through; the normalizer rejects them with
		// proper context.
		Kind:   signature.ItemKind(it.Kind),
		Name:   it.Name,
		Params: it.Params,
	}
	for _, a := range it.Attrs {
		item.Attrs = append(item.Attrs, signature.Attr{Name: a.Name, Value: a.Value})
	}

	if it.Body != nil {
		body, err := decodeBody(it.Name, *it.Body)
		if err != nil {
			return signature.RawItem{}, err
		}
		item.Body = body
	}
	if it.Type != nil {
		t, err := decodeType(it.Name, *it.Type)
		if err != nil {
			return signature.RawItem{}, err
		}
		item.Type = t
	}
	if it.Payload != nil {
		t, err := decodeType(it.Name, *it.Payload)
		if err != nil {
			return signature.RawItem{}, err
		}
		item.Payload = t
	}
	return item, nil
}

func decodeBody(decl string, b jsonBody) (signature.TypeBody, error) {
	switch {
	case b.Alias != nil:
		expr, err := decodeType(decl, *b.Alias)
		if err != nil {
			return nil, err
		}
		return signature.Alias{Expr: expr}, nil

	case len(b.Record) > 0:
		fields := make([]signature.Field, len(b.Record))
		for i, f := range b.Record {
			t, err := decodeType(decl, f.Type)
			if err != nil {
				return nil, err
			}
			fields[i] = signature.Field{Name: f.Name, Type: t}
		}
		return signature.Record{Fields: fields}, nil

	case len(b.Variant) > 0:
		ctors := make([]signature.Constructor, len(b.Variant))
		for i, c := range b.Variant {
			args := make([]signature.TypeExpr, len(c.Args))
			for j, a := range c.Args {
				t, err := decodeType(decl, a)
				if err != nil {
					return nil, err
				}
				args[j] = t
			}
			ctors[i] = signature.Constructor{Name: c.Name, Args: args}
		}
		return signature.Variant{Constructors: ctors}, nil
	}
	return signature.Abstract{}, nil
}

func decodeType(decl string, t jsonType) (signature.TypeExpr, error) {
	populated := 0
	if t.Var != "" {
		populated++
	}
	if t.Name != "" {
		populated++
	}
	if len(t.Tuple) > 0 {
		populated++
	}
	if t.Arrow != nil {
		populated++
	}
	if populated != 1 {
		return nil, errors.New(errors.PhaseLoad, errors.KindInvalidData).
			Decl(decl).
			Detail("type object must populate exactly one of var/name/tuple/arrow").
			Build()
	}

	switch {
	case t.Var != "":
		return signature.TypeVar{Name: t.Var}, nil

	case t.Name != "":
		args := make([]signature.TypeExpr, len(t.Args))
		for i, a := range t.Args {
			at, err := decodeType(decl, a)
			if err != nil {
				return nil, err
			}
			args[i] = at
		}
		return signature.TypeApp{Name: t.Name, Args: args}, nil

	case len(t.Tuple) > 0:
		items := make([]signature.TypeExpr, len(t.Tuple))
		for i, it := range t.Tuple {
			et, err := decodeType(decl, it)
			if err != nil {
				return nil, err
			}
			items[i] = et
		}
		return signature.Tuple{Items: items}, nil

	default:
		dom, err := decodeType(decl, t.Arrow.Dom)
		if err != nil {
			return nil, err
		}
		cod, err := decodeType(decl, t.Arrow.Cod)
		if err != nil {
			return nil, err
		}
		return signature.Arrow{Dom: dom, Cod: cod}, nil
	}
}
