package witsig

import (
	"errors"
	"strings"
	"testing"

	cerrors "github.com/verigate/coqgen/errors"
	"github.com/verigate/coqgen/signature"
)

func TestFromJSON(t *testing.T) {
	src := `{
		"module": "Store",
		"items": [
			{"kind": "type", "name": "t"},
			{"kind": "type", "name": "entry", "body": {"record": [
				{"name": "key", "type": {"name": "string"}},
				{"name": "count", "type": {"name": "int"}}
			]}},
			{"kind": "type", "name": "ids", "body": {"alias": {"name": "list", "args": [{"name": "int"}]}}},
			{"kind": "type", "name": "shape", "body": {"variant": [
				{"name": "Dot"},
				{"name": "Box", "args": [{"tuple": [{"name": "int"}, {"name": "int"}]}]}
			]}},
			{"kind": "value", "name": "find",
				"type": {"arrow": {"dom": {"name": "t"}, "cod": {"name": "option", "args": [{"name": "entry"}]}}},
				"attrs": [{"name": "pure"}]},
			{"kind": "exception", "name": "Full", "payload": {"name": "int"}}
		]
	}`

	raw, err := FromJSON(strings.NewReader(src))
	if err != nil {
		t.Fatalf("FromJSON failed: %v", err)
	}
	if raw.Name != "Store" {
		t.Errorf("module name %q", raw.Name)
	}
	if len(raw.Items) != 6 {
		t.Fatalf("expected 6 items, got %d", len(raw.Items))
	}

	if raw.Items[0].Body != nil {
		t.Error("abstract type should carry nil body from the loader")
	}
	if _, ok := raw.Items[1].Body.(signature.Record); !ok {
		t.Errorf("entry body is %T, want Record", raw.Items[1].Body)
	}
	if _, ok := raw.Items[2].Body.(signature.Alias); !ok {
		t.Errorf("ids body is %T, want Alias", raw.Items[2].Body)
	}
	v, ok := raw.Items[3].Body.(signature.Variant)
	if !ok {
		t.Fatalf("shape body is %T, want Variant", raw.Items[3].Body)
	}
	if len(v.Constructors) != 2 || len(v.Constructors[1].Args) != 1 {
		t.Errorf("wrong variant shape: %+v", v)
	}

	val := raw.Items[4]
	if val.Kind != signature.ItemValue {
		t.Errorf("wrong kind: %v", val.Kind)
	}
	if _, ok := val.Attr(signature.AttrPure); !ok {
		t.Error("pure attribute lost")
	}
	if signature.String(val.Type) != "t -> entry option" {
		t.Errorf("wrong value type: %s", signature.String(val.Type))
	}

	exc := raw.Items[5]
	if exc.Kind != signature.ItemException || signature.String(exc.Payload) != "int" {
		t.Errorf("wrong exception item: %+v", exc)
	}
}

func TestFromJSONErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{"malformed", `{"module": `},
		{"unknown_field", `{"module": "M", "extra": 1}`},
		{"ambiguous_type", `{"module": "M", "items": [{"kind": "value", "name": "f", "type": {"var": "a", "name": "int"}}]}`},
		{"empty_type", `{"module": "M", "items": [{"kind": "value", "name": "f", "type": {}}]}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := FromJSON(strings.NewReader(tt.src))
			if err == nil {
				t.Fatal("expected error")
			}
			if !errors.Is(err, &cerrors.Error{Phase: cerrors.PhaseLoad, Kind: cerrors.KindInvalidData}) {
				t.Errorf("wrong error: %v", err)
			}
		})
	}
}

func TestFromJSONUnknownKindPassesThrough(t *testing.T) {
	// The normalizer owns the unsupported-item policy; the loader must not
	// pre-judge.
	raw, err := FromJSON(strings.NewReader(`{"module": "M", "items": [{"kind": "module", "name": "Sub"}]}`))
	if err != nil {
		t.Fatalf("FromJSON failed: %v", err)
	}
	if raw.Items[0].Kind != signature.ItemModule {
		t.Errorf("wrong kind: %v", raw.Items[0].Kind)
	}
}
