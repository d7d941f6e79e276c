// Package witsig loads raw module signatures from the formats a compiled
// foreign interface actually ships in: a JSON signature dump, a resolved
// WIT interface, or a core WebAssembly module's export section.
//
// Loaders are external collaborators of the translation core: they produce
// a signature.Raw tree and make no generation decisions. Constructs the
// source type grammar cannot express (flags, resources, floats) fail at
// load time rather than being approximated.
package witsig
