package witsig

import (
	"context"
	"sort"

	"github.com/tetratelabs/wazero"
	"github.com/tetratelabs/wazero/api"

	"github.com/verigate/coqgen/errors"
	"github.com/verigate/coqgen/signature"
)

// FromWasm compiles a core WebAssembly module and derives a raw signature
// from its exported functions. Core wasm carries integer types only, so
// every parameter and result maps to int; float and reference types fail
// with a load error. All exports are impure values.
//
// Export iteration order is not defined by wazero, so exports are sorted
// by name to keep the signature deterministic.
func FromWasm(ctx context.Context, name string, bin []byte) (signature.Raw, error) {
	rt := wazero.NewRuntimeWithConfig(ctx, wazero.NewRuntimeConfigInterpreter())
	defer rt.Close(ctx)

	compiled, err := rt.CompileModule(ctx, bin)
	if err != nil {
		return signature.Raw{}, errors.Load("compile wasm module", err)
	}
	defer compiled.Close(ctx)

	exports := compiled.ExportedFunctions()
	names := make([]string, 0, len(exports))
	for n := range exports {
		names = append(names, n)
	}
	sort.Strings(names)

	raw := signature.Raw{Name: name, Items: make([]signature.RawItem, 0, len(names))}
	for _, n := range names {
		item, err := exportItem(n, exports[n])
		if err != nil {
			return signature.Raw{}, err
		}
		raw.Items = append(raw.Items, item)
	}
	return raw, nil
}

func exportItem(name string, def api.FunctionDefinition) (signature.RawItem, error) {
	results := def.ResultTypes()
	if len(results) > 1 {
		return signature.RawItem{}, errors.New(errors.PhaseLoad, errors.KindUnsupportedType).
			Decl(name).
			Detail("multi-value results are not supported").
			Build()
	}

	var expr signature.TypeExpr = signature.TypeApp{Name: signature.BuiltinUnit}
	if len(results) == 1 {
		t, err := valueType(name, results[0])
		if err != nil {
			return signature.RawItem{}, err
		}
		expr = t
	}

	params := def.ParamTypes()
	for i := len(params) - 1; i >= 0; i-- {
		dom, err := valueType(name, params[i])
		if err != nil {
			return signature.RawItem{}, err
		}
		expr = signature.Arrow{Dom: dom, Cod: expr}
	}
	if len(params) == 0 {
		expr = signature.Arrow{Dom: signature.TypeApp{Name: signature.BuiltinUnit}, Cod: expr}
	}

	return signature.RawItem{Kind: signature.ItemValue, Name: name, Type: expr}, nil
}

func valueType(decl string, vt api.ValueType) (signature.TypeExpr, error) {
	switch vt {
	case api.ValueTypeI32, api.ValueTypeI64:
		return signature.TypeApp{Name: signature.BuiltinInt}, nil
	}
	return nil, errors.New(errors.PhaseLoad, errors.KindUnsupportedType).
		Decl(decl).
		Detail("wasm value type %s has no source counterpart", api.ValueTypeName(vt)).
		Build()
}
