package value

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAsFloatWidensInt(t *testing.T) {
	f, err := Int(3).AsFloat()
	require.NoError(t, err)
	assert.Equal(t, 3.0, f)
}

func TestAsIntRejectsFloat(t *testing.T) {
	_, err := Float(3.5).AsInt()
	assert.Error(t, err)
}

func TestTupleFlattensNestedTuples(t *testing.T) {
	tup := Tuple(Int(1), Tuple(Int(2), Int(3)))
	elements, err := tup.AsTuple()
	require.NoError(t, err)
	// cmp.Diff exercises Value's Equal method (cmp's auto-detected
	// equality hook) instead of testify's field-by-field reflection,
	// which would otherwise peek at Value's unexported payload fields.
	if diff := cmp.Diff([]Value{Int(1), Int(2), Int(3)}, elements); diff != "" {
		t.Errorf("flattened tuple mismatch (-want +got):\n%s", diff)
	}
}

func TestAsSliceUnwrapsTupleOrSingleton(t *testing.T) {
	assert.Equal(t, []Value{Int(1), Int(2)}, Tuple(Int(1), Int(2)).AsSlice())
	assert.Equal(t, []Value{Int(5)}, Int(5).AsSlice())
}

func TestEqualWidensNumerics(t *testing.T) {
	assert.True(t, Int(2).Equal(Float(2.0)))
	assert.False(t, Int(2).Equal(Float(2.5)))
}

func TestEqualMismatchedNonNumericIsFalse(t *testing.T) {
	assert.False(t, Bool(true).Equal(String("true")))
}

func TestStringRendersEachVariant(t *testing.T) {
	cases := []struct {
		name string
		v    Value
		want string
	}{
		{"bool", Bool(true), "true"},
		{"int", Int(-4), "-4"},
		{"float", Float(1.5), "1.5"},
		{"string", String("hi"), "hi"},
		{"tuple", Tuple(Int(1), Int(2)), "(1, 2)"},
		{"empty tuple", EmptyTuple(), "()"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.v.String())
		})
	}
}
