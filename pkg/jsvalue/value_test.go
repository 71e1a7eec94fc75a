package jsvalue

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValue_ZeroValueIsUndefined(t *testing.T) {
	var v Value
	assert.Equal(t, KindUndefined, v.Kind())
	assert.True(t, v.IsUndefined())
	assert.False(t, v.IsNull())
}

func TestValue_UndefinedAndNullAreDistinct(t *testing.T) {
	assert.NotEqual(t, Undefined(), Null())
	assert.True(t, Null().IsNull())
	assert.False(t, Null().IsUndefined())
}

func TestValue_AccessorsIgnoreWrongKind(t *testing.T) {
	assert.False(t, Number(1).Bool())
	assert.Equal(t, float64(0), String("3").Number())
	assert.Equal(t, "", Number(3).Str())
	assert.Nil(t, String("x").Elems())
	assert.Nil(t, String("x").Props())
	assert.True(t, String("x").Prop("a").IsUndefined())
}

func TestValue_From(t *testing.T) {
	v := From(map[string]any{
		"n":    int64(7),
		"s":    "txt",
		"b":    true,
		"null": nil,
		"arr":  []any{1.5, "two"},
	})
	require.Equal(t, KindObject, v.Kind())
	assert.Equal(t, float64(7), v.Prop("n").Number())
	assert.Equal(t, "txt", v.Prop("s").Str())
	assert.True(t, v.Prop("b").Bool())
	assert.True(t, v.Prop("null").IsNull())
	elems := v.Prop("arr").Elems()
	require.Len(t, elems, 2)
	assert.Equal(t, 1.5, elems[0].Number())
	assert.Equal(t, "two", elems[1].Str())
	assert.True(t, v.Prop("missing").IsUndefined())
}

func TestValue_Stringification(t *testing.T) {
	assert.Equal(t, "undefined", Undefined().String())
	assert.Equal(t, "null", Null().String())
	assert.Equal(t, "true", Bool(true).String())
	assert.Equal(t, "1.5", Number(1.5).String())
	assert.Equal(t, "hi", String("hi").String())
	assert.Equal(t, "[1, x]", Array(Number(1), String("x")).String())
	assert.Equal(t, "{a: 1, b: two}",
		Object(map[string]Value{"b": String("two"), "a": Number(1)}).String())
}

func TestValue_JSONRoundTripPreservesUndefinedVersusNull(t *testing.T) {
	cases := []Value{
		Undefined(),
		Null(),
		Bool(false),
		Number(-2.25),
		String(""),
		Array(Null(), Undefined(), Number(1)),
		Object(map[string]Value{"k": Array(Bool(true))}),
	}
	for _, want := range cases {
		data, err := json.Marshal(want)
		require.NoError(t, err)
		var got Value
		require.NoError(t, json.Unmarshal(data, &got))
		assert.Equal(t, want, got, string(data))
	}
}

func TestValue_UnmarshalRejectsUnknownKind(t *testing.T) {
	var v Value
	assert.Error(t, json.Unmarshal([]byte(`{"kind":"symbol"}`), &v))
}
