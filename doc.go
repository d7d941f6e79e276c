// Package coqgen translates the compiled interface of a foreign native
// module into Coq vernacular declarations, so the module's types, values,
// and exceptions can be referenced from proofs without hand-written
// bindings.
//
// # Architecture Overview
//
// The library is organized into several packages with distinct
// responsibilities:
//
//	coqgen/              Root package documentation
//	├── features/        Generation feature set validation and normalization
//	├── signature/       Raw module signatures and the normalizer
//	├── alias/           Alias resolution against existing Coq definitions
//	├── translate/       Source-to-Coq type translation with memoization
//	├── generate/        Vernacular generation (effect encodings, proxies)
//	├── vernac/          Coq sentence AST and deterministic renderer
//	├── witsig/          Signature loaders: JSON, WIT interfaces, wasm modules
//	└── errors/          Structured error types for diagnostics
//
// # Quick Start
//
// Generate vernacular for a pre-parsed signature:
//
//	cfg, dups, err := features.New(settings)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	mod, err := signature.Normalize(raw, cfg)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	sentences, err := generate.Generate(mod, cfg, requires)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Print(vernac.Render(sentences))
//
// # Feature Set
//
// Five independent booleans gate the output shape: transparent-types,
// pure-module, interface, simple-io, and freespec. The only cross-feature
// constraint is that freespec requires interface. Duplicate settings are
// non-fatal: the first occurrence wins and the rest are reported as
// diagnostics.
//
// # Determinism
//
// A run is a single ordered traversal of the declarations. All per-run state
// (translation registry, once-per-module emission markers) is confined to
// the run, so repeated invocations in one process never share mutable state.
// A run either produces the complete sentence sequence or fails with a
// structured error; partial output is never surfaced.
package coqgen
