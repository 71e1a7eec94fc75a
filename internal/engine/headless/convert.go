package headless

import (
	"github.com/grafana/sobek"

	"github.com/offview/offview/pkg/jsvalue"
)

// fromSobek converts a runtime value into the shared representation.
// Functions and other non-plain exports collapse to undefined.
func fromSobek(v sobek.Value) jsvalue.Value {
	if v == nil || sobek.IsUndefined(v) {
		return jsvalue.Undefined()
	}
	if sobek.IsNull(v) {
		return jsvalue.Null()
	}
	if _, isFn := sobek.AssertFunction(v); isFn {
		return jsvalue.Undefined()
	}
	return jsvalue.From(v.Export())
}

// toSobek converts a shared value into a runtime value.
func toSobek(rt *sobek.Runtime, v jsvalue.Value) sobek.Value {
	switch v.Kind() {
	case jsvalue.KindUndefined:
		return sobek.Undefined()
	case jsvalue.KindNull:
		return sobek.Null()
	case jsvalue.KindBoolean:
		return rt.ToValue(v.Bool())
	case jsvalue.KindNumber:
		return rt.ToValue(v.Number())
	case jsvalue.KindString:
		return rt.ToValue(v.Str())
	case jsvalue.KindArray:
		elems := v.Elems()
		arr := make([]interface{}, len(elems))
		for i := range elems {
			arr[i] = toSobek(rt, elems[i])
		}
		return rt.ToValue(arr)
	case jsvalue.KindObject:
		obj := rt.NewObject()
		for name, prop := range v.Props() {
			_ = obj.Set(name, toSobek(rt, prop))
		}
		return obj
	default:
		return sobek.Undefined()
	}
}
