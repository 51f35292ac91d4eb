package vpctx

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ccs/internal/vpprocess"
)

func TestDefaultBoundsAreHalfOpenZeroOne(t *testing.T) {
	ctx := New()
	vals, err := ctx.ValuesOf("int")
	require.NoError(t, err)
	require.Len(t, vals, 1)
	assert.Equal(t, "0", vals[0].String())
}

func TestSetBoundsChangesIntDomainCardinality(t *testing.T) {
	ctx := New()
	ctx.SetBounds(2, 5)
	vals, err := ctx.ValuesOf("int")
	require.NoError(t, err)
	// |values_of(int)| = max - min
	assert.Len(t, vals, 3)
	assert.Equal(t, "2", vals[0].String())
	assert.Equal(t, "4", vals[2].String())
}

func TestBoolValuesOf(t *testing.T) {
	ctx := New()
	vals, err := ctx.ValuesOf("bool")
	require.NoError(t, err)
	assert.Len(t, vals, 2)
}

func TestEnumValuesOfEnumeratesTagsAndFields(t *testing.T) {
	ctx := New()
	ctx.BindEnum("Option", []EnumTag{
		{Tag: "None"},
		{Tag: "Some", Fields: []string{"bool"}},
	})
	vals, err := ctx.ValuesOf("Option")
	require.NoError(t, err)
	// None (1) + Some(true)/Some(false) (2) = 3
	assert.Len(t, vals, 3)
}

func TestAliasResolvesToUnderlyingType(t *testing.T) {
	ctx := New()
	ctx.BindAlias("Flag", "bool")
	vals, err := ctx.ValuesOf("Flag")
	require.NoError(t, err)
	assert.Len(t, vals, 2)
}

func TestValuesOfUnknownTypeErrors(t *testing.T) {
	ctx := New()
	_, err := ctx.ValuesOf("Nonexistent")
	assert.Error(t, err)
}

func TestToCCSRaisesMainMissing(t *testing.T) {
	ctx := New()
	_, err := ctx.ToCCS()
	assert.Error(t, err)
}

func TestToCCSElaboratesEntryPoint(t *testing.T) {
	ctx := New()
	ctx.BindProcess("main", nil, vpprocess.NewAction(vpprocess.NewTau(), vpprocess.Nil()))

	ccs, err := ctx.ToCCS()
	require.NoError(t, err)
	body, ok := ccs.GetProcess("main")
	require.True(t, ok)
	assert.Equal(t, "Tau.NIL", body.String())
}

func TestValuesOfIsMemoised(t *testing.T) {
	ctx := New()
	ctx.SetBounds(0, 3)
	first, err := ctx.ValuesOf("int")
	require.NoError(t, err)
	second, err := ctx.ValuesOf("int")
	require.NoError(t, err)
	assert.Equal(t, len(first), len(second))
}
