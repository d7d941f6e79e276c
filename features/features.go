// Package features validates and normalizes the generation feature set.
//
// Five independent booleans gate the output shape. Settings arrive ordered;
// the first occurrence of a feature is authoritative and later occurrences
// are reported as non-fatal duplicates. The only cross-feature constraint is
// that freespec requires interface.
package features

import (
	"strings"

	"github.com/verigate/coqgen/errors"
)

// Feature identifies one generation feature
type Feature string

const (
	TransparentTypes Feature = "transparent-types"
	PureModule       Feature = "pure-module"
	Interface        Feature = "interface"
	SimpleIO         Feature = "simple-io"
	FreeSpec         Feature = "freespec"
)

// All lists every feature in canonical order
func All() []Feature {
	return []Feature{TransparentTypes, PureModule, Interface, SimpleIO, FreeSpec}
}

// Setting is one ordered (feature, enabled) pair
type Setting struct {
	Feature Feature
	Enabled bool
}

// ParseSetting maps a flag name, including the "no-" negated form, to a
// Setting. Unknown names fail with an unknown_feature config error.
func ParseSetting(name string) (Setting, error) {
	enabled := true
	base := name
	if rest, ok := strings.CutPrefix(name, "no-"); ok {
		enabled = false
		base = rest
	}
	for _, f := range All() {
		if base == string(f) {
			return Setting{Feature: f, Enabled: enabled}, nil
		}
	}
	return Setting{}, errors.UnknownFeature(name)
}

// Duplicate records a setting that arrived after its feature was already set.
// Diagnostic only; generation proceeds on the first occurrence.
type Duplicate struct {
	Setting  Setting
	Previous bool // the authoritative value
}

// Config is the immutable resolved feature set, passed by value through
// every component.
type Config struct {
	TransparentTypes bool
	PureModule       bool
	Interface        bool
	SimpleIO         bool
	FreeSpec         bool
}

// New folds ordered settings into a Config. First occurrence wins per
// feature; later occurrences are collected, in arrival order, as Duplicates.
// The resulting Config is checked for consistency: freespec enabled with
// interface disabled is fatal.
func New(settings []Setting) (Config, []Duplicate, error) {
	var cfg Config
	var dups []Duplicate
	seen := make(map[Feature]bool, 5)

	for _, s := range settings {
		if seen[s.Feature] {
			dups = append(dups, Duplicate{Setting: s, Previous: cfg.Enabled(s.Feature)})
			continue
		}
		seen[s.Feature] = true
		switch s.Feature {
		case TransparentTypes:
			cfg.TransparentTypes = s.Enabled
		case PureModule:
			cfg.PureModule = s.Enabled
		case Interface:
			cfg.Interface = s.Enabled
		case SimpleIO:
			cfg.SimpleIO = s.Enabled
		case FreeSpec:
			cfg.FreeSpec = s.Enabled
		}
	}

	if cfg.FreeSpec && !cfg.Interface {
		return Config{}, nil, errors.FreeSpecWithoutInterface()
	}
	return cfg, dups, nil
}

// Enabled reports the resolved value of one feature
func (c Config) Enabled(f Feature) bool {
	switch f {
	case TransparentTypes:
		return c.TransparentTypes
	case PureModule:
		return c.PureModule
	case Interface:
		return c.Interface
	case SimpleIO:
		return c.SimpleIO
	case FreeSpec:
		return c.FreeSpec
	}
	return false
}
