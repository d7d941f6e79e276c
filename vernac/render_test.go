package vernac

import (
	"strings"
	"testing"
)

func TestRenderType(t *testing.T) {
	i63 := TypeRef("i63")
	str := TypeRef("string")

	tests := []struct {
		name string
		typ  Type
		want string
	}{
		{"ref", i63, "i63"},
		{"app", Apply(TypeRef("list"), i63), "list i63"},
		{"nested_app", Apply(TypeRef("option"), Apply(TypeRef("list"), i63)), "option (list i63)"},
		{"arrow", Arrow{Dom: i63, Cod: str}, "i63 -> string"},
		{"arrow_right_assoc", Arrows(str, i63, i63), "i63 -> i63 -> string"},
		{"arrow_left_nested", Arrow{Dom: Arrow{Dom: i63, Cod: i63}, Cod: str}, "(i63 -> i63) -> string"},
		{"prod", Prod{Items: []Type{i63, str}}, "i63 * string"},
		{"prod_in_app", Apply(TypeRef("list"), Prod{Items: []Type{i63, str}}), "list (i63 * string)"},
		{"arrow_in_prod", Prod{Items: []Type{Arrow{Dom: i63, Cod: i63}, str}}, "(i63 -> i63) * string"},
		{"sum", Apply(TypeRef("sum"), i63, str), "sum i63 string"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RenderType(tt.typ); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRenderSentences(t *testing.T) {
	i63 := TypeRef("i63")
	str := TypeRef("string")

	tests := []struct {
		name     string
		sentence Sentence
		want     string
	}{
		{
			"require_import",
			Require{Module: "CoqFFI.Data.Seq"},
			"Require Import CoqFFI.Data.Seq.",
		},
		{
			"require_from_export",
			Require{From: "SimpleIO", Module: "SimpleIO", Export: true},
			"From SimpleIO Require Export SimpleIO.",
		},
		{
			"axiom",
			Axiom{Name: "f", Type: Arrows(str, i63)},
			"Axiom f : i63 -> string.",
		},
		{
			"definition",
			Definition{
				Name:    "get_value",
				Binders: []Binder{{Names: []string{"x0"}, Type: i63}},
				Type:    Apply(TypeRef("Store_interface"), str),
				Body:    TermApp{Head: TermRef("GetValue"), Args: []Term{TermRef("x0")}},
			},
			"Definition get_value (x0 : i63) : Store_interface string :=\n  GetValue x0.",
		},
		{
			"inductive",
			Inductive{
				Name:  "t",
				Arity: TypeRef("Type"),
				Constructors: []InductiveCase{
					{Name: "Foo", Type: Arrow{Dom: i63, Cod: TypeRef("t")}},
					{Name: "Bar", Type: TypeRef("t")},
				},
			},
			"Inductive t : Type :=\n| Foo : i63 -> t\n| Bar : t.",
		},
		{
			"inductive_indexed",
			Inductive{
				Name:  "Store_interface",
				Arity: Arrow{Dom: TypeRef("Type"), Cod: TypeRef("Type")},
				Constructors: []InductiveCase{
					{Name: "GetValue", Type: Arrow{Dom: i63, Cod: Apply(TypeRef("Store_interface"), str)}},
				},
			},
			"Inductive Store_interface : Type -> Type :=\n| GetValue : i63 -> Store_interface string.",
		},
		{
			"record",
			RecordDef{
				Name: "config",
				Fields: []FieldDef{
					{Name: "host", Type: str},
					{Name: "port", Type: i63},
				},
			},
			"Record config : Type := {\n  host : string;\n  port : i63\n}.",
		},
		{
			"parameterized_inductive",
			Inductive{
				Name:    "pair",
				Binders: []Binder{{Names: []string{"a", "b"}, Type: TypeRef("Type")}},
				Arity:   TypeRef("Type"),
				Constructors: []InductiveCase{
					{Name: "Pair", Type: Arrows(Apply(TypeRef("pair"), TypeRef("a"), TypeRef("b")), TypeRef("a"), TypeRef("b"))},
				},
			},
			"Inductive pair (a b : Type) : Type :=\n| Pair : a -> b -> pair a b.",
		},
		{
			"comment",
			Comment{Text: "generated by coqgen"},
			"(* generated by coqgen *)",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Render([]Sentence{tt.sentence})
			want := tt.want + "\n"
			if got != want {
				t.Errorf("got:\n%s\nwant:\n%s", got, want)
			}
		})
	}
}

func TestRenderMatch(t *testing.T) {
	sem := Definition{
		Name: "Store_semantics",
		Type: Apply(TypeRef("semantics"), TypeRef("Store_interface")),
		Body: TermApp{
			Head: TermRef("bootstrap"),
			Args: []Term{Fun{
				Params: []string{"a", "e"},
				Body: Match{
					Scrutinee: TermRef("e"),
					Arms: []Arm{
						{Constructor: "GetValue", Vars: []string{"x0"}, Body: TermApp{Head: TermRef("unsafe_get_value"), Args: []Term{TermRef("x0")}}},
						{Constructor: "Flush", Body: TermRef("unsafe_flush")},
					},
				},
			}},
		},
	}

	got := Render([]Sentence{sem})
	want := strings.Join([]string{
		"Definition Store_semantics : semantics Store_interface :=",
		"  bootstrap (fun a e =>",
		"    match e with",
		"    | GetValue x0 => unsafe_get_value x0",
		"    | Flush => unsafe_flush",
		"    end).",
		"",
	}, "\n")
	if got != want {
		t.Errorf("got:\n%s\nwant:\n%s", got, want)
	}
}

func TestRenderSeparatesSentences(t *testing.T) {
	got := Render([]Sentence{
		Require{Module: "CoqFFI"},
		Axiom{Name: "t", Type: TypeRef("Type")},
	})
	want := "Require Import CoqFFI.\n\nAxiom t : Type.\n"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestRenderDeterministic(t *testing.T) {
	ss := []Sentence{
		Require{Module: "CoqFFI"},
		Inductive{Name: "t", Arity: TypeRef("Type"), Constructors: []InductiveCase{{Name: "Mk", Type: TypeRef("t")}}},
	}
	first := Render(ss)
	for i := 0; i < 10; i++ {
		if Render(ss) != first {
			t.Fatal("render output varies across calls")
		}
	}
}

func TestIdent(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"get_value", "get_value"},
		{"get-value", "get_value"},
		{"match", "match_"},
		{"Type", "Type_"},
		{"2fast", "_2fast"},
		{"", "_"},
		{"a'", "a'"},
		{"wasi:io/poll", "wasi_io_poll"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := Ident(tt.in); got != tt.want {
				t.Errorf("Ident(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
