package process

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func transKeys(ts []Transition) []string {
	out := make([]string, len(ts))
	for i, t := range ts {
		out[i] = t.Source.Key() + "--" + t.Channel.String() + "-->" + t.Target.Key()
	}
	return out
}

func TestStepAction(t *testing.T) {
	p := NewAction(NewSend("a"), Nil())
	ts := Step(p)
	require.Len(t, ts, 1)
	assert.Equal(t, "a!", ts[0].Channel.String())
	assert.True(t, IsNil(ts[0].Target))
}

func TestStepSumUnionsChildren(t *testing.T) {
	p := NewSum([]Process{
		NewAction(NewSend("a"), Nil()),
		NewAction(NewSend("b"), Nil()),
	})
	ts := Step(p)
	assert.Len(t, ts, 2)
}

func TestStepRestrictionHidesName(t *testing.T) {
	p := NewRestriction(NewAction(NewSend("a"), Nil()), []string{"a"})
	assert.Empty(t, Step(p))

	q := NewRestriction(NewAction(NewSend("b"), Nil()), []string{"a"})
	ts := Step(q)
	require.Len(t, ts, 1)
	assert.Equal(t, "b!", ts[0].Channel.String())
}

func TestStepSubstitutionRenamesLabel(t *testing.T) {
	subst, err := NewSubstitution([]SubstPair{{New: "b", Old: "a"}})
	require.NoError(t, err)
	p := NewSubstitutionTerm(NewAction(NewSend("a"), Nil()), subst)
	ts := Step(p)
	require.Len(t, ts, 1)
	assert.Equal(t, "b!", ts[0].Channel.String())
}

func TestStepParInterleavesWithoutSync(t *testing.T) {
	p := NewPar(NewAction(NewSend("a"), Nil()), NewAction(NewSend("b"), Nil()))
	ts := Step(p)
	assert.Len(t, ts, 2)
	for _, tr := range ts {
		assert.False(t, tr.Channel.IsTau())
	}
}

func TestStepParSynchronises(t *testing.T) {
	p := NewPar(NewAction(NewSend("a"), Nil()), NewAction(NewRecv("a"), Nil()))
	ts := Step(p)
	require.Len(t, ts, 1)
	assert.True(t, ts[0].Channel.IsTau())
	target := ts[0].Target.(*Par)
	assert.True(t, IsNil(target.Left))
	assert.True(t, IsNil(target.Right))
}

func TestStepParSyncConsumesBothSidesNotInterleaving(t *testing.T) {
	// Only one possible sync exists (a!/a?); the matched transitions must not
	// also surface as separate interleaved a!/a? transitions.
	p := NewPar(NewAction(NewSend("a"), Nil()), NewAction(NewRecv("a"), Nil()))
	ts := Step(p)
	for _, tr := range ts {
		assert.NotEqual(t, "a!", tr.Channel.String())
		assert.NotEqual(t, "a?", tr.Channel.String())
	}
}

func TestStepConstantHasNoTransitions(t *testing.T) {
	assert.Empty(t, Step(NewConstant("X")))
}

func TestStepParOneSendMatchesEveryComplementaryReceive(t *testing.T) {
	// a!.NIL | (a?.Q1 + a?.Q2) must synchronise with both receive branches,
	// yielding two taus and no leftover interleaving.
	p := NewPar(
		NewAction(NewSend("a"), Nil()),
		NewSum([]Process{
			NewAction(NewRecv("a"), NewConstant("Q1")),
			NewAction(NewRecv("a"), NewConstant("Q2")),
		}),
	)
	ts := Step(p)
	require.Len(t, ts, 2)
	for _, tr := range ts {
		assert.True(t, tr.Channel.IsTau())
	}

	targets := map[string]bool{}
	for _, tr := range ts {
		targets[tr.Target.Key()] = true
	}
	assert.Len(t, targets, 2)
}
