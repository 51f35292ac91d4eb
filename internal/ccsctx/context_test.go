package ccsctx

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ccs/internal/process"
)

func TestNewDefaultsMainName(t *testing.T) {
	ctx := New()
	assert.Equal(t, "main", ctx.MainName())
}

func TestSetMainOverridesEntryPoint(t *testing.T) {
	ctx := New()
	ctx.SetMain("start")
	assert.Equal(t, "start", ctx.MainName())
}

func TestBindAndGetProcess(t *testing.T) {
	ctx := New()
	body := process.NewAction(process.NewSend("a"), process.Nil())
	ctx.BindProcess("P", body)

	got, ok := ctx.GetProcess("P")
	require.True(t, ok)
	assert.Equal(t, body.String(), got.String())

	_, ok = ctx.GetProcess("Missing")
	assert.False(t, ok)
}

func TestNameOfFindsStructurallyEqualBinding(t *testing.T) {
	ctx := New()
	body := process.NewAction(process.NewSend("a"), process.Nil())
	ctx.BindProcess("P", body)

	name, ok := ctx.NameOf(process.NewAction(process.NewSend("a"), process.Nil()))
	require.True(t, ok)
	assert.Equal(t, "P", name)

	_, ok = ctx.NameOf(process.NewAction(process.NewSend("b"), process.Nil()))
	assert.False(t, ok)
}

func TestToLTSRaisesMainMissing(t *testing.T) {
	ctx := New()
	_, err := ctx.ToLTS()
	assert.Error(t, err)
}

func TestToLTSDerivesFromMain(t *testing.T) {
	ctx := New()
	ctx.BindProcess("main", process.NewAction(process.NewSend("a"), process.Nil()))

	l, err := ctx.ToLTS()
	require.NoError(t, err)
	assert.Equal(t, 1, l.Len())
}
