package bisim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ccs/internal/lts"
	"ccs/internal/process"
)

func singleActionLts(name, ch string) *lts.Lts {
	return lts.New([]process.Transition{
		{Source: process.NewConstant(name), Channel: process.NewSend(ch), Target: process.Nil()},
	})
}

func TestBisimilarReflexive(t *testing.T) {
	l := singleActionLts("main", "a")
	rel, ok := Bisimilar(l, l)
	require.True(t, ok)

	foundSelf := false
	for _, p := range rel.Pairs() {
		if p.Left.Key() == p.Right.Key() {
			foundSelf = true
		}
	}
	assert.True(t, foundSelf)
}

func TestBisimilarAcrossIsomorphicLts(t *testing.T) {
	l1 := singleActionLts("A", "a")
	l2 := singleActionLts("B", "a")
	_, ok := Bisimilar(l1, l2)
	assert.True(t, ok)
}

func TestBisimilarRejectsMismatchedLabel(t *testing.T) {
	l1 := singleActionLts("A", "a")
	l2 := singleActionLts("B", "b")
	_, ok := Bisimilar(l1, l2)
	assert.False(t, ok)
}

func TestBisimilarIsSymmetric(t *testing.T) {
	l1 := singleActionLts("A", "a")
	l2 := singleActionLts("B", "a")
	_, ok := Bisimilar(l2, l1)
	assert.True(t, ok)
}

func TestBisimilarEmptyLtsSelf(t *testing.T) {
	empty := lts.New(nil)
	rel, ok := Bisimilar(empty, empty)
	assert.True(t, ok)
	assert.Empty(t, rel.Pairs())
}
