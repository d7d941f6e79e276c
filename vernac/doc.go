// Package vernac models Coq vernacular sentences and renders them to text.
//
// The generator hands the renderer an ordered sentence sequence; rendering
// is a pure serialization step with no semantic decisions. Equal sequences
// always produce byte-identical output, which keeps golden tests and
// downstream diffing honest.
package vernac
