package errors

import (
	"errors"
	"strings"
	"testing"
)

func TestError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *Error
		contains []string
	}{
		{
			name: "full error",
			err: &Error{
				Phase:    PhaseTranslate,
				Kind:     KindUnsupportedType,
				Path:     []string{"handle", "0"},
				Decl:     "handle",
				TypeExpr: "(int -> int) list",
				Detail:   "function type nested in data argument",
			},
			contains: []string{"[translate]", "unsupported_type", "handle.0", "(int -> int) list", "function type nested"},
		},
		{
			name: "minimal error",
			err: &Error{
				Phase: PhaseNormalize,
				Kind:  KindUnsupportedItem,
			},
			contains: []string{"[normalize]", "unsupported_item"},
		},
		{
			name: "feature error",
			err: &Error{
				Phase:   PhaseConfig,
				Kind:    KindFreeSpecWithoutInterface,
				Feature: "freespec",
				Detail:  "freespec requires interface",
			},
			contains: []string{"[config]", "freespec_without_interface", "feature freespec", "requires interface"},
		},
		{
			name: "error with cause",
			err: &Error{
				Phase:  PhaseLoad,
				Kind:   KindInvalidData,
				Detail: "decode wasm module",
				Cause:  errors.New("truncated section"),
			},
			contains: []string{"[load]", "invalid_data", "decode wasm module", "caused by", "truncated section"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := tt.err.Error()
			for _, s := range tt.contains {
				if !strings.Contains(msg, s) {
					t.Errorf("error %q missing %q", msg, s)
				}
			}
		})
	}
}

func TestError_Is(t *testing.T) {
	err := UnresolvedName("f", "socket")

	if !errors.Is(err, &Error{Phase: PhaseTranslate, Kind: KindUnresolvedName}) {
		t.Error("expected Is match on phase+kind")
	}
	if errors.Is(err, &Error{Phase: PhaseTranslate, Kind: KindUnsupportedType}) {
		t.Error("unexpected Is match on different kind")
	}
}

func TestError_Unwrap(t *testing.T) {
	cause := errors.New("root cause")
	err := Load("read signature", cause)

	if !errors.Is(err, cause) {
		t.Error("expected unwrap to reach cause")
	}
}

func TestBuilder(t *testing.T) {
	err := New(PhaseGenerate, KindInvalidInput).
		Decl("connect").
		Detail("impure value with %d results", 2).
		Build()

	if err.Phase != PhaseGenerate || err.Kind != KindInvalidInput {
		t.Fatalf("wrong phase/kind: %v %v", err.Phase, err.Kind)
	}
	if err.Decl != "connect" {
		t.Errorf("wrong decl: %q", err.Decl)
	}
	if err.Detail != "impure value with 2 results" {
		t.Errorf("wrong detail: %q", err.Detail)
	}
}

func TestConvenienceConstructors(t *testing.T) {
	t.Run("freespec_without_interface", func(t *testing.T) {
		err := FreeSpecWithoutInterface()
		if err.Phase != PhaseConfig || err.Kind != KindFreeSpecWithoutInterface {
			t.Errorf("wrong phase/kind: %v %v", err.Phase, err.Kind)
		}
	})

	t.Run("unsupported_item", func(t *testing.T) {
		err := UnsupportedItem("Sub", "module")
		if err.Decl != "Sub" {
			t.Errorf("wrong decl: %q", err.Decl)
		}
		if !strings.Contains(err.Error(), "module") {
			t.Errorf("item kind missing from %q", err.Error())
		}
	})

	t.Run("unsupported_type", func(t *testing.T) {
		err := UnsupportedType("f", "poly variant", "polymorphic variants are not supported")
		if err.TypeExpr != "poly variant" {
			t.Errorf("wrong type expr: %q", err.TypeExpr)
		}
	})
}
