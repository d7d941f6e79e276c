// Package alias maps fully-qualified source names to pre-existing Coq
// terms, suppressing fresh axiom generation for those names.
//
// A resolver is built once per run from the ordered required target-module
// names plus the per-declaration model hints gathered by the normalizer. The
// table is immutable after construction; the only per-run state is the set
// of modules whose Require directive has already been handed out.
package alias

import (
	"strings"

	"github.com/verigate/coqgen/signature"
)

// Ref is a reference to an existing Coq term. Module is the owning required
// module, empty when the target carries no known module prefix.
type Ref struct {
	Term   string
	Module string
}

// Resolver resolves source names against the alias table
type Resolver struct {
	requires []string
	table    map[string]Ref
	emitted  map[string]bool
}

// NewResolver builds a resolver from ordered required module names and
// model hints. A hint target qualified with a required module's name binds
// that module as the owner, so its Require directive can be emitted on
// first use.
func NewResolver(requires []string, hints []signature.Hint) *Resolver {
	r := &Resolver{
		requires: requires,
		table:    make(map[string]Ref, len(hints)),
		emitted:  make(map[string]bool, len(requires)),
	}
	for _, h := range hints {
		r.table[h.Source] = Ref{
			Term:   h.Target,
			Module: r.owner(h.Target),
		}
	}
	return r
}

// owner returns the required module owning a qualified target term.
// Required-module ordering breaks ties in favor of the earliest entry.
func (r *Resolver) owner(target string) string {
	for _, m := range r.requires {
		if strings.HasPrefix(target, m+".") {
			return m
		}
	}
	return ""
}

// Position reports a module's index in the required-module ordering, for
// callers emitting a batch of Require directives that must keep that
// ordering. Unknown modules sort last.
func (r *Resolver) Position(module string) int {
	for i, m := range r.requires {
		if m == module {
			return i
		}
	}
	return len(r.requires)
}

// Lookup returns the alias target for a source name, if any. Read-only.
func (r *Resolver) Lookup(name string) (Ref, bool) {
	ref, ok := r.table[name]
	return ref, ok
}

// Use resolves a source name and additionally reports the owning module
// whose Require directive must be emitted before the referencing sentence.
// Each module is reported exactly once per run, on the first use of any of
// its aliases; later uses return an empty module name.
func (r *Resolver) Use(name string) (ref Ref, require string, ok bool) {
	ref, ok = r.table[name]
	if !ok {
		return Ref{}, "", false
	}
	if ref.Module != "" && !r.emitted[ref.Module] {
		r.emitted[ref.Module] = true
		require = ref.Module
	}
	return ref, require, true
}
