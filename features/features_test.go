package features

import (
	"errors"
	"testing"

	cerrors "github.com/verigate/coqgen/errors"
)

func TestParseSetting(t *testing.T) {
	tests := []struct {
		name    string
		want    Setting
		wantErr bool
	}{
		{"transparent-types", Setting{TransparentTypes, true}, false},
		{"no-transparent-types", Setting{TransparentTypes, false}, false},
		{"pure-module", Setting{PureModule, true}, false},
		{"interface", Setting{Interface, true}, false},
		{"no-interface", Setting{Interface, false}, false},
		{"simple-io", Setting{SimpleIO, true}, false},
		{"freespec", Setting{FreeSpec, true}, false},
		{"no-freespec", Setting{FreeSpec, false}, false},
		{"bogus", Setting{}, true},
		{"no-bogus", Setting{}, true},
		{"", Setting{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseSetting(tt.name)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				if !errors.Is(err, &cerrors.Error{Phase: cerrors.PhaseConfig, Kind: cerrors.KindUnknownFeature}) {
					t.Errorf("wrong error: %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseSetting failed: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestNew(t *testing.T) {
	t.Run("defaults_off", func(t *testing.T) {
		cfg, dups, err := New(nil)
		if err != nil {
			t.Fatalf("New failed: %v", err)
		}
		if len(dups) != 0 {
			t.Errorf("unexpected duplicates: %v", dups)
		}
		for _, f := range All() {
			if cfg.Enabled(f) {
				t.Errorf("feature %s enabled by default", f)
			}
		}
	})

	t.Run("first_occurrence_wins", func(t *testing.T) {
		cfg, dups, err := New([]Setting{
			{Interface, true},
			{Interface, false},
		})
		if err != nil {
			t.Fatalf("New failed: %v", err)
		}
		if !cfg.Interface {
			t.Error("expected interface=true (first occurrence)")
		}
		if len(dups) != 1 {
			t.Fatalf("expected exactly one duplicate, got %d", len(dups))
		}
		if dups[0].Setting != (Setting{Interface, false}) {
			t.Errorf("wrong duplicate recorded: %+v", dups[0])
		}
		if dups[0].Previous != true {
			t.Errorf("duplicate should carry authoritative value true")
		}
	})

	t.Run("duplicates_in_arrival_order", func(t *testing.T) {
		_, dups, err := New([]Setting{
			{SimpleIO, true},
			{PureModule, true},
			{PureModule, false},
			{SimpleIO, false},
			{SimpleIO, true},
		})
		if err != nil {
			t.Fatalf("New failed: %v", err)
		}
		want := []Setting{{PureModule, false}, {SimpleIO, false}, {SimpleIO, true}}
		if len(dups) != len(want) {
			t.Fatalf("expected %d duplicates, got %d", len(want), len(dups))
		}
		for i, w := range want {
			if dups[i].Setting != w {
				t.Errorf("duplicate %d: got %+v, want %+v", i, dups[i].Setting, w)
			}
		}
	})

	t.Run("freespec_without_interface", func(t *testing.T) {
		_, _, err := New([]Setting{{FreeSpec, true}})
		if err == nil {
			t.Fatal("expected error")
		}
		if !errors.Is(err, &cerrors.Error{Phase: cerrors.PhaseConfig, Kind: cerrors.KindFreeSpecWithoutInterface}) {
			t.Errorf("wrong error: %v", err)
		}
	})

	t.Run("freespec_with_interface", func(t *testing.T) {
		cfg, _, err := New([]Setting{{FreeSpec, true}, {Interface, true}})
		if err != nil {
			t.Fatalf("New failed: %v", err)
		}
		if !cfg.FreeSpec || !cfg.Interface {
			t.Error("expected both freespec and interface enabled")
		}
	})

	t.Run("freespec_duplicate_does_not_rescue", func(t *testing.T) {
		// interface=false is authoritative; the later interface=true is a
		// duplicate and must not satisfy the consistency check.
		_, _, err := New([]Setting{
			{Interface, false},
			{FreeSpec, true},
			{Interface, true},
		})
		if err == nil {
			t.Fatal("expected freespec_without_interface")
		}
	})
}
