package lsp

import (
	"testing"

	protocol "github.com/tliron/glsp/protocol_3_16"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiagnoseCleanSourceReportsStats(t *testing.T) {
	diags := Diagnose("t.ccs", "fn main {\n\ta!.NIL\n}\n")
	require.Len(t, diags, 1)
	assert.Equal(t, protocol.DiagnosticSeverityInformation, *diags[0].Severity)
	assert.Contains(t, diags[0].Message, "states:")
}

func TestDiagnoseParseErrorReportsErrorSeverityAtPosition(t *testing.T) {
	diags := Diagnose("t.ccs", "fn main {\n\t???\n}\n")
	require.Len(t, diags, 1)
	assert.Equal(t, protocol.DiagnosticSeverityError, *diags[0].Severity)
	assert.Contains(t, diags[0].Message, "ParseError")
	assert.Equal(t, uint32(1), diags[0].Range.Start.Line)
}

func TestDiagnoseMainMissingReportsZeroRange(t *testing.T) {
	diags := Diagnose("t.ccs", "fn other {\n\tNIL\n}\n")
	require.Len(t, diags, 1)
	assert.Contains(t, diags[0].Message, "MainMissing")
	assert.Equal(t, uint32(0), diags[0].Range.Start.Line)
}

func TestUriToPathHandlesPlainUnixPath(t *testing.T) {
	path, err := uriToPath("file:///home/user/main.ccs")
	require.NoError(t, err)
	assert.Equal(t, "/home/user/main.ccs", path)
}

func TestUriToPathRejectsMalformedURI(t *testing.T) {
	_, err := uriToPath("://not a uri")
	assert.Error(t, err)
}
