package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/myfstd/evalexpr/environment"
	"github.com/myfstd/evalexpr/value"
)

func TestInferLiteralOrdersIntBeforeFloatBeforeBool(t *testing.T) {
	assert.True(t, value.Int(42).Equal(inferLiteral("42")))
	assert.True(t, value.Float(3.5).Equal(inferLiteral("3.5")))
	assert.True(t, value.Bool(true).Equal(inferLiteral("true")))
	assert.True(t, value.String("hello").Equal(inferLiteral("hello")))
}

func TestInferLiteralRejectsFloatAsInt(t *testing.T) {
	got := inferLiteral("3.0")
	assert.Equal(t, value.KindFloat, got.Kind())
}

func TestFromYAMLMapsScalarKinds(t *testing.T) {
	cases := []struct {
		name string
		raw  interface{}
		want value.Value
	}{
		{"int", 7, value.Int(7)},
		{"int64", int64(7), value.Int(7)},
		{"float64", 1.5, value.Float(1.5)},
		{"bool", true, value.Bool(true)},
		{"string", "hi", value.String("hi")},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := fromYAML(tc.raw)
			require.NoError(t, err)
			assert.True(t, tc.want.Equal(got))
		})
	}
}

func TestFromYAMLRejectsUnsupportedShape(t *testing.T) {
	_, err := fromYAML([]interface{}{1, 2})
	assert.Error(t, err)
}

func TestApplyVarsFlagBindsInferredLiterals(t *testing.T) {
	env := environment.NewMapEnvironment()
	require.NoError(t, applyVarsFlag(env, []string{"a=1", "b=2.5", "c=true"}))

	a, ok := env.GetValue("a")
	require.True(t, ok)
	assert.True(t, value.Int(1).Equal(a))

	b, ok := env.GetValue("b")
	require.True(t, ok)
	assert.True(t, value.Float(2.5).Equal(b))

	c, ok := env.GetValue("c")
	require.True(t, ok)
	assert.True(t, value.Bool(true).Equal(c))
}

func TestApplyVarsFlagRejectsMissingEquals(t *testing.T) {
	env := environment.NewMapEnvironment()
	err := applyVarsFlag(env, []string{"noequals"})
	assert.Error(t, err)
}

func TestLoadVarsFileBindsEachMapping(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vars.yaml")
	require.NoError(t, os.WriteFile(path, []byte("a: 1\nb: 2.5\nc: true\nd: hi\n"), 0o644))

	env := environment.NewMapEnvironment()
	require.NoError(t, loadVarsFile(env, path))

	a, ok := env.GetValue("a")
	require.True(t, ok)
	assert.True(t, value.Int(1).Equal(a))

	d, ok := env.GetValue("d")
	require.True(t, ok)
	assert.True(t, value.String("hi").Equal(d))
}

func TestLoadVarsFileMissingFile(t *testing.T) {
	env := environment.NewMapEnvironment()
	err := loadVarsFile(env, filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
