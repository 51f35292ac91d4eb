package errors

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alecthomas/participle/v2"
)

func TestFatalErrorFormatsWithoutPosition(t *testing.T) {
	e := New(UnknownConstant, "constant %q is not bound", "P")
	assert.Equal(t, `UnknownConstant: constant "P" is not bound`, e.Error())
}

func TestFatalErrorFormatsWithPosition(t *testing.T) {
	e := NewAt(Parse, Position{Filename: "t.ccs", Line: 2, Column: 3}, "unexpected token")
	assert.Equal(t, "ParseError: unexpected token (t.ccs:2:3)", e.Error())
}

func TestReporterFormatRendersCaretUnderColumn(t *testing.T) {
	source := "fn main {\n\t???\n}\n"
	e := NewAt(Parse, Position{Filename: "t.ccs", Line: 2, Column: 2}, "unexpected token")
	out := NewReporter("t.ccs", source).Format(e)
	assert.Contains(t, out, "ParseError")
	assert.Contains(t, out, "t.ccs:2:2")
	assert.Contains(t, out, "???")
	assert.Contains(t, out, "^")
}

func TestReporterFormatWithoutPositionOmitsSnippet(t *testing.T) {
	e := New(MainMissing, "no definition named %q", "main")
	out := NewReporter("t.ccs", "fn main {\n\tNIL\n}\n").Format(e)
	assert.Contains(t, out, "MainMissing")
	assert.NotContains(t, out, "-->")
}

type fakeParticipleErr struct{ pos participle.Position }

func (f fakeParticipleErr) Error() string                 { return "unexpected token" }
func (f fakeParticipleErr) Message() string               { return "unexpected token" }
func (f fakeParticipleErr) Position() participle.Position { return f.pos }

func TestFromParticipleConvertsPosition(t *testing.T) {
	var err error = fakeParticipleErr{pos: participle.Position{Filename: "t.ccs", Line: 3, Column: 5}}
	fatal := FromParticiple("t.ccs", err)
	require.Equal(t, Parse, fatal.Kind)
	assert.Equal(t, 3, fatal.Pos.Line)
	assert.Equal(t, 5, fatal.Pos.Column)
}

func TestFromParticipleFallsBackOnNonParticipleError(t *testing.T) {
	fatal := FromParticiple("t.ccs", assertErr{"boom"})
	assert.Equal(t, Parse, fatal.Kind)
	assert.Contains(t, fatal.Message, "boom")
}

type assertErr struct{ msg string }

func (e assertErr) Error() string { return e.msg }
