package vpvalues

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBooleanLogicEval(t *testing.T) {
	bounds := fixedBounds{0, 10}

	v, err := BAnd{L: BLit{V: true}, R: BLit{V: false}}.Eval(bounds)
	require.NoError(t, err)
	assert.False(t, v)

	v, err = BOr{L: BLit{V: true}, R: BLit{V: false}}.Eval(bounds)
	require.NoError(t, err)
	assert.True(t, v)

	v, err = BNot{E: BLit{V: false}}.Eval(bounds)
	require.NoError(t, err)
	assert.True(t, v)
}

func TestNumericComparisons(t *testing.T) {
	bounds := fixedBounds{0, 10}
	cases := []struct {
		name string
		expr BExpr
		want bool
	}{
		{"eq-true", BNumEq{L: ALit{N: 2}, R: ALit{N: 2}}, true},
		{"eq-false", BNumEq{L: ALit{N: 2}, R: ALit{N: 3}}, false},
		{"neq", BNumNotEq{L: ALit{N: 2}, R: ALit{N: 3}}, true},
		{"lt", BNumLt{L: ALit{N: 2}, R: ALit{N: 3}}, true},
		{"gt", BNumGt{L: ALit{N: 3}, R: ALit{N: 2}}, true},
		{"lte-equal", BNumLtEq{L: ALit{N: 2}, R: ALit{N: 2}}, true},
		{"gte-equal", BNumGtEq{L: ALit{N: 2}, R: ALit{N: 2}}, true},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := c.expr.Eval(bounds)
			require.NoError(t, err)
			assert.Equal(t, c.want, got)
		})
	}
}

func TestBVarTryReplace(t *testing.T) {
	v := BVar{Name: "flag"}
	replaced, ok := v.TryReplace("flag", BExprValue{Expr: BLit{V: true}})
	require.True(t, ok)
	assert.Equal(t, "true", replaced.String())

	_, ok = v.TryReplace("flag", AExprValue{Expr: ALit{N: 1}})
	assert.False(t, ok)
}

func TestBExprTryReplacePropagatesFailure(t *testing.T) {
	e := BAnd{L: BVar{Name: "x"}, R: BLit{V: true}}
	_, ok := e.TryReplace("x", AExprValue{Expr: ALit{N: 1}})
	assert.False(t, ok)
}

func TestBExprStringRendering(t *testing.T) {
	e := BNot{E: BAnd{L: BLit{V: true}, R: BLit{V: false}}}
	assert.Equal(t, "!(true && false)", e.String())
}

func TestBEnumIsTryReplaceMatchesTagAndType(t *testing.T) {
	e := BEnumIs{Var: "c", Type: "Color", Tag: "Red"}

	matched, ok := e.TryReplace("c", EnumValue{Type: "Color", Tag: "Red"})
	require.True(t, ok)
	assert.Equal(t, "true", matched.String())

	unmatched, ok := e.TryReplace("c", EnumValue{Type: "Color", Tag: "Blue"})
	require.True(t, ok)
	assert.Equal(t, "false", unmatched.String())
}

func TestBEnumIsTryReplaceRejectsNonEnumValue(t *testing.T) {
	e := BEnumIs{Var: "c", Type: "Color", Tag: "Red"}
	_, ok := e.TryReplace("c", AExprValue{Expr: ALit{N: 1}})
	assert.False(t, ok)
}

func TestBEnumIsTryReplaceIgnoresOtherNames(t *testing.T) {
	e := BEnumIs{Var: "c", Type: "Color", Tag: "Red"}
	same, ok := e.TryReplace("other", EnumValue{Type: "Color", Tag: "Blue"})
	require.True(t, ok)
	assert.Equal(t, e, same)
}

func TestBEnumIsEvalUnboundIsFatal(t *testing.T) {
	e := BEnumIs{Var: "c", Type: "Color", Tag: "Red"}
	_, err := e.Eval(fixedBounds{0, 10})
	assert.Error(t, err)
}
