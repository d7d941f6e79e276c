package signature

// Raw signature tree, as handed over by an external interface loader.
// Parsing the binary compiled-interface format is the loader's concern;
// this package only normalizes the pre-parsed tree.

// ItemKind tags one raw signature item
type ItemKind string

const (
	ItemType      ItemKind = "type"
	ItemValue     ItemKind = "value"
	ItemException ItemKind = "exception"
	ItemModule    ItemKind = "module" // nested sub-module, unsupported
	ItemOther     ItemKind = "other"  // anything else the loader saw
)

// Attribute names recognized by the normalizer
const (
	AttrPure  = "pure"
	AttrModel = "model"
)

// Attr is one attribute attached to a raw item
type Attr struct {
	Name  string
	Value string
}

// RawItem is one pre-parsed signature entry. The populated fields depend on
// Kind: types carry Params and Body, values carry Type, exceptions carry
// Payload.
type RawItem struct {
	Kind    ItemKind
	Name    string
	Params  []string
	Body    TypeBody
	Type    TypeExpr
	Payload TypeExpr
	Attrs   []Attr
}

// Attr returns the named attribute, if present
func (it RawItem) Attr(name string) (Attr, bool) {
	for _, a := range it.Attrs {
		if a.Name == name {
			return a, true
		}
	}
	return Attr{}, false
}

// Raw is a pre-parsed module signature: the module name and its ordered items
type Raw struct {
	Name  string
	Items []RawItem
}
