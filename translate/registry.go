package translate

import "github.com/verigate/coqgen/alias"

// Registry memoizes how each source type name was translated. It prevents
// duplicate emission for multi-use types and governs how later references
// render. State is confined to one run.

// Entry records the translation outcome for one source type name
type Entry interface {
	isEntry()
}

// Opaque marks a type emitted as a single axiomatized name
type Opaque struct {
	Axiom string
}

func (Opaque) isEntry() {}

// Transparent marks a type emitted with its structure mirrored
type Transparent struct {
	Def string
}

func (Transparent) isEntry() {}

// Aliased marks a type short-circuited to a pre-existing Coq term
type Aliased struct {
	Ref alias.Ref
}

func (Aliased) isEntry() {}

// Registry maps source type names to their translation entries
type Registry struct {
	entries map[string]Entry
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{entries: make(map[string]Entry)}
}

// Lookup returns the entry for a source type name, if translated already
func (r *Registry) Lookup(name string) (Entry, bool) {
	e, ok := r.entries[name]
	return e, ok
}

func (r *Registry) record(name string, e Entry) {
	r.entries[name] = e
}
