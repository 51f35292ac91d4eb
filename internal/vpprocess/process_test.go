package vpprocess

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ccs/internal/vpvalues"
)

func TestActionTryReplaceSkipsShadowedBinder(t *testing.T) {
	// x?(v); v!() — a Recv binder named v shadows any outer substitution
	// of v, so TryReplace must leave the body untouched.
	inner := NewAction(NewSend("v", nil), Nil())
	a := NewAction(NewRecv("x", "v"), inner)

	replaced, ok := a.TryReplace("v", vpvalues.AExprValue{Expr: vpvalues.ALit{N: 1}})
	require.True(t, ok)
	assert.Same(t, a, replaced.(*Action))
}

func TestActionTryReplaceSubstitutesSendPayload(t *testing.T) {
	a := NewAction(NewSend("x", vpvalues.VarValue{Name: "v"}), Nil())
	replaced, ok := a.TryReplace("v", vpvalues.AExprValue{Expr: vpvalues.ALit{N: 4}})
	require.True(t, ok)
	assert.Equal(t, "x!(4); NIL", replaced.String())
}

func TestIfThenStringAndReplace(t *testing.T) {
	guard := vpvalues.BVar{Name: "b"}
	i := NewIfThen(guard, Nil())
	replaced, ok := i.TryReplace("b", vpvalues.BExprValue{Expr: vpvalues.BLit{V: true}})
	require.True(t, ok)
	assert.Equal(t, "if true then { NIL }", replaced.String())
}

func TestSumTryReplacePropagatesToEveryChild(t *testing.T) {
	s := NewSum([]Process{
		NewAction(NewSend("x", vpvalues.VarValue{Name: "v"}), Nil()),
		NewAction(NewSend("y", vpvalues.VarValue{Name: "v"}), Nil()),
	})
	replaced, ok := s.TryReplace("v", vpvalues.AExprValue{Expr: vpvalues.ALit{N: 2}})
	require.True(t, ok)
	assert.Equal(t, "(x!(2); NIL + y!(2); NIL)", replaced.String())
}

func TestConstantStringRendersArgs(t *testing.T) {
	c := NewConstant("P", []vpvalues.Value{vpvalues.AExprValue{Expr: vpvalues.ALit{N: 1}}, vpvalues.VarValue{Name: "y"}})
	assert.Equal(t, "P(1,y)", c.String())
}
