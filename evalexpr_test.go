package evalexpr

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/myfstd/evalexpr/environment"
	"github.com/myfstd/evalexpr/errs"
	"github.com/myfstd/evalexpr/value"
)

func TestEvalAgainstEmptyEnvironment(t *testing.T) {
	got, err := Eval("1 + 2 * 3")
	require.NoError(t, err)
	assert.True(t, value.Int(7).Equal(got))
}

func TestEvalWithBoundVariables(t *testing.T) {
	env := environment.NewMapEnvironment()
	env.SetValue("a", value.Int(6))
	env.SetValue("b", value.Int(2))
	env.SetValue("c", value.Int(3))

	got, err := EvalWith("a * b - c > 5", env)
	require.NoError(t, err)
	assert.True(t, value.Bool(true).Equal(got))
}

func TestBuildTreeIsReusableAcrossEnvironments(t *testing.T) {
	node, err := BuildTree("a + 1")
	require.NoError(t, err)

	first := environment.NewMapEnvironment()
	first.SetValue("a", value.Int(1))
	got, err := node.Evaluate(first)
	require.NoError(t, err)
	assert.True(t, value.Int(2).Equal(got))

	second := environment.NewMapEnvironment()
	second.SetValue("a", value.Int(41))
	got, err = node.Evaluate(second)
	require.NoError(t, err)
	assert.True(t, value.Int(42).Equal(got))
}

func TestBuildTreeEqualsEvalWithIdempotence(t *testing.T) {
	env := environment.NewMapEnvironment()
	env.SetValue("x", value.Float(2.5))

	node, err := BuildTree("x * 2")
	require.NoError(t, err)
	viaBuild, err := node.Evaluate(env)
	require.NoError(t, err)

	viaEvalWith, err := EvalWith("x * 2", env)
	require.NoError(t, err)

	assert.True(t, viaBuild.Equal(viaEvalWith))
}

func TestEvalErrorIsWrappedButInspectable(t *testing.T) {
	_, err := Eval("blub")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "blub")
	var typed *errs.Error
	require.ErrorAs(t, err, &typed)
	assert.Equal(t, errs.VariableIdentifierNotFound, typed.Kind)
}
