package vpvalues

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixedBounds struct{ min, max int }

func (b fixedBounds) Bounds() (int, int) { return b.min, b.max }

func TestALitEvalWithinBounds(t *testing.T) {
	bounds := fixedBounds{0, 5}
	n, err := ALit{N: 3}.Eval(bounds)
	require.NoError(t, err)
	assert.Equal(t, 3, n)
}

func TestALitEvalBoundsAreHalfOpen(t *testing.T) {
	bounds := fixedBounds{0, 5}
	_, err := ALit{N: 5}.Eval(bounds)
	assert.Error(t, err, "max itself must be excluded from [min, max)")

	_, err = ALit{N: 4}.Eval(bounds)
	assert.NoError(t, err)

	_, err = ALit{N: -1}.Eval(bounds)
	assert.Error(t, err)
}

func TestArithmeticEval(t *testing.T) {
	bounds := fixedBounds{-10, 10}
	sum := AAdd{L: ALit{N: 2}, R: ALit{N: 3}}
	n, err := sum.Eval(bounds)
	require.NoError(t, err)
	assert.Equal(t, 5, n)

	diff := ASub{L: ALit{N: 2}, R: ALit{N: 5}}
	n, err = diff.Eval(bounds)
	require.NoError(t, err)
	assert.Equal(t, -3, n)

	prod := AMul{L: ALit{N: 3}, R: ALit{N: 3}}
	n, err = prod.Eval(bounds)
	require.NoError(t, err)
	assert.Equal(t, 9, n)
}

func TestDivisionByZero(t *testing.T) {
	bounds := fixedBounds{-10, 10}
	_, err := ADiv{L: ALit{N: 4}, R: ALit{N: 0}}.Eval(bounds)
	assert.Error(t, err)
}

func TestAVarEvalIsUnbound(t *testing.T) {
	_, err := AVar{Name: "x"}.Eval(fixedBounds{0, 1})
	assert.Error(t, err)
}

func TestAVarTryReplace(t *testing.T) {
	v := AVar{Name: "x"}
	replaced, ok := v.TryReplace("x", AExprValue{Expr: ALit{N: 7}})
	require.True(t, ok)
	assert.Equal(t, "7", replaced.String())

	unaffected, ok := v.TryReplace("y", AExprValue{Expr: ALit{N: 7}})
	require.True(t, ok)
	assert.Equal(t, "x", unaffected.String())

	_, ok = v.TryReplace("x", BExprValue{Expr: BLit{V: true}})
	assert.False(t, ok)
}

func TestAExprStringRendering(t *testing.T) {
	e := AAdd{L: ALit{N: 1}, R: AMul{L: ALit{N: 2}, R: ALit{N: 3}}}
	assert.Equal(t, "(1 + (2 * 3))", e.String())
}
