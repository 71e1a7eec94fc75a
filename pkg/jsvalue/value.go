// Package jsvalue provides the shared value representation exchanged between
// host code and page script. Values round-trip losslessly across the JS value
// kinds (undefined, null, boolean, number, string, array, object).
package jsvalue

import (
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Kind identifies which JS value kind a Value holds.
type Kind int

const (
	KindUndefined Kind = iota
	KindNull
	KindBoolean
	KindNumber
	KindString
	KindArray
	KindObject
)

// String returns a human-readable representation of the kind.
func (k Kind) String() string {
	switch k {
	case KindUndefined:
		return "undefined"
	case KindNull:
		return "null"
	case KindBoolean:
		return "boolean"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	default:
		return "unknown"
	}
}

// Value is an immutable tagged union over the JS value kinds.
// The zero Value is undefined.
type Value struct {
	kind Kind
	b    bool
	n    float64
	s    string
	arr  []Value
	obj  map[string]Value
}

// Undefined returns the undefined value.
func Undefined() Value { return Value{} }

// Null returns the null value.
func Null() Value { return Value{kind: KindNull} }

// Bool returns a boolean value.
func Bool(b bool) Value { return Value{kind: KindBoolean, b: b} }

// Number returns a number value.
func Number(n float64) Value { return Value{kind: KindNumber, n: n} }

// String returns a string value.
func String(s string) Value { return Value{kind: KindString, s: s} }

// Array returns an array value holding copies of the given elements.
func Array(elems ...Value) Value {
	out := make([]Value, len(elems))
	copy(out, elems)
	return Value{kind: KindArray, arr: out}
}

// Object returns an object value holding a copy of the given properties.
func Object(props map[string]Value) Value {
	out := make(map[string]Value, len(props))
	for k, v := range props {
		out[k] = v
	}
	return Value{kind: KindObject, obj: out}
}

// From converts a plain Go value into a Value. Supported inputs are nil,
// bool, all integer and float types, string, []any and map[string]any
// (as produced by encoding/json); anything else becomes undefined.
func From(v any) Value {
	switch x := v.(type) {
	case nil:
		return Null()
	case bool:
		return Bool(x)
	case int:
		return Number(float64(x))
	case int32:
		return Number(float64(x))
	case int64:
		return Number(float64(x))
	case uint:
		return Number(float64(x))
	case uint32:
		return Number(float64(x))
	case uint64:
		return Number(float64(x))
	case float32:
		return Number(float64(x))
	case float64:
		return Number(x)
	case string:
		return String(x)
	case []any:
		elems := make([]Value, len(x))
		for i := range x {
			elems[i] = From(x[i])
		}
		return Value{kind: KindArray, arr: elems}
	case map[string]any:
		props := make(map[string]Value, len(x))
		for k, e := range x {
			props[k] = From(e)
		}
		return Value{kind: KindObject, obj: props}
	case Value:
		return x
	default:
		return Undefined()
	}
}

// Kind returns the value kind.
func (v Value) Kind() Kind { return v.kind }

// IsUndefined reports whether the value is undefined.
func (v Value) IsUndefined() bool { return v.kind == KindUndefined }

// IsNull reports whether the value is null.
func (v Value) IsNull() bool { return v.kind == KindNull }

// Bool returns the boolean payload, or false for any other kind.
func (v Value) Bool() bool { return v.kind == KindBoolean && v.b }

// Number returns the number payload, or 0 for any other kind.
func (v Value) Number() float64 {
	if v.kind != KindNumber {
		return 0
	}
	return v.n
}

// Int returns the number payload truncated to an int.
func (v Value) Int() int { return int(v.Number()) }

// Str returns the string payload, or "" for any other kind.
func (v Value) Str() string {
	if v.kind != KindString {
		return ""
	}
	return v.s
}

// Elems returns the array elements, or nil for any other kind.
// The returned slice must not be mutated.
func (v Value) Elems() []Value {
	if v.kind != KindArray {
		return nil
	}
	return v.arr
}

// Props returns the object properties, or nil for any other kind.
// The returned map must not be mutated.
func (v Value) Props() map[string]Value {
	if v.kind != KindObject {
		return nil
	}
	return v.obj
}

// Prop returns the named object property, or undefined when absent.
func (v Value) Prop(name string) Value {
	if v.kind != KindObject {
		return Undefined()
	}
	return v.obj[name]
}

// String renders the value the way a page script would stringify it.
func (v Value) String() string {
	switch v.kind {
	case KindUndefined:
		return "undefined"
	case KindNull:
		return "null"
	case KindBoolean:
		return strconv.FormatBool(v.b)
	case KindNumber:
		return strconv.FormatFloat(v.n, 'f', -1, 64)
	case KindString:
		return v.s
	case KindArray:
		parts := make([]string, len(v.arr))
		for i := range v.arr {
			parts[i] = v.arr[i].String()
		}
		return "[" + strings.Join(parts, ", ") + "]"
	case KindObject:
		keys := make([]string, 0, len(v.obj))
		for k := range v.obj {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		parts := make([]string, len(keys))
		for i, k := range keys {
			parts[i] = k + ": " + v.obj[k].String()
		}
		return "{" + strings.Join(parts, ", ") + "}"
	default:
		return "unknown"
	}
}

// jsonValue is the tagged wire form. A plain JSON encoding cannot tell
// undefined from null, so the kind travels alongside the payload.
type jsonValue struct {
	Kind  string          `json:"kind"`
	Value json.RawMessage `json:"value,omitempty"`
}

// MarshalJSON encodes the value in tagged form, preserving the kind.
func (v Value) MarshalJSON() ([]byte, error) {
	var payload any
	switch v.kind {
	case KindUndefined, KindNull:
		return json.Marshal(jsonValue{Kind: v.kind.String()})
	case KindBoolean:
		payload = v.b
	case KindNumber:
		payload = v.n
	case KindString:
		payload = v.s
	case KindArray:
		payload = v.arr
	case KindObject:
		payload = v.obj
	}
	raw, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return json.Marshal(jsonValue{Kind: v.kind.String(), Value: raw})
}

// UnmarshalJSON decodes the tagged form produced by MarshalJSON.
func (v *Value) UnmarshalJSON(data []byte) error {
	var jv jsonValue
	if err := json.Unmarshal(data, &jv); err != nil {
		return err
	}
	switch jv.Kind {
	case "undefined":
		*v = Undefined()
	case "null":
		*v = Null()
	case "boolean":
		var b bool
		if err := json.Unmarshal(jv.Value, &b); err != nil {
			return err
		}
		*v = Bool(b)
	case "number":
		var n float64
		if err := json.Unmarshal(jv.Value, &n); err != nil {
			return err
		}
		*v = Number(n)
	case "string":
		var s string
		if err := json.Unmarshal(jv.Value, &s); err != nil {
			return err
		}
		*v = String(s)
	case "array":
		var elems []Value
		if err := json.Unmarshal(jv.Value, &elems); err != nil {
			return err
		}
		*v = Value{kind: KindArray, arr: elems}
	case "object":
		var props map[string]Value
		if err := json.Unmarshal(jv.Value, &props); err != nil {
			return err
		}
		*v = Value{kind: KindObject, obj: props}
	default:
		return fmt.Errorf("jsvalue: unknown kind %q", jv.Kind)
	}
	return nil
}
