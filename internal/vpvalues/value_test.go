package vpvalues

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnumValueStringRendering(t *testing.T) {
	bare := EnumValue{Type: "Color", Tag: "Red"}
	assert.Equal(t, "Color::Red", bare.String())

	withFields := EnumValue{Type: "Option", Tag: "Some", Vals: []Value{AExprValue{Expr: ALit{N: 1}}}}
	assert.Equal(t, "Option::Some(1)", withFields.String())
}

func TestVarValueTryReplace(t *testing.T) {
	v := VarValue{Name: "x"}
	replaced, ok := v.TryReplace("x", AExprValue{Expr: ALit{N: 5}})
	require.True(t, ok)
	assert.Equal(t, "5", replaced.String())

	unaffected, ok := v.TryReplace("y", AExprValue{Expr: ALit{N: 5}})
	require.True(t, ok)
	assert.Equal(t, "x", unaffected.String())
}

func TestEnumValueTryReplacePropagatesToFields(t *testing.T) {
	v := EnumValue{Type: "Option", Tag: "Some", Vals: []Value{VarValue{Name: "x"}}}
	replaced, ok := v.TryReplace("x", AExprValue{Expr: ALit{N: 9}})
	require.True(t, ok)
	assert.Equal(t, "Option::Some(9)", replaced.String())
}

func TestAExprValueEvalReducesToLiteral(t *testing.T) {
	v := AExprValue{Expr: AAdd{L: ALit{N: 1}, R: ALit{N: 2}}}
	reduced, err := v.Eval(fixedBounds{0, 10})
	require.NoError(t, err)
	assert.Equal(t, "3", reduced.String())
}

func TestMangleIncludesPrefix(t *testing.T) {
	v := AExprValue{Expr: ALit{N: 3}}
	assert.Equal(t, "chan#3", v.Mangle("chan"))

	ev := EnumValue{Type: "Color", Tag: "Red"}
	assert.Equal(t, "chan#Color::Red", ev.Mangle("chan"))
}
