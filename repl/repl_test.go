package repl

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ccs/grammar"
)

func TestEvalLineCCSRendersTransitions(t *testing.T) {
	var out bytes.Buffer
	err := evalLine(&out, grammar.CCS, "a!.NIL")
	require.NoError(t, err)
	assert.Contains(t, out.String(), "a!")
}

func TestEvalLineVPMangleSendValue(t *testing.T) {
	var out bytes.Buffer
	err := evalLine(&out, grammar.VP, "a!(0); NIL")
	require.NoError(t, err)
	assert.Contains(t, out.String(), "a#0!")
}

func TestEvalLinePropagatesParseError(t *testing.T) {
	var out bytes.Buffer
	err := evalLine(&out, grammar.CCS, "???")
	assert.Error(t, err)
}
