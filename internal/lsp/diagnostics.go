package lsp

import (
	"strconv"

	protocol "github.com/tliron/glsp/protocol_3_16"

	cerr "ccs/internal/errors"
	"ccs/internal/lower"
)

// Diagnose runs the full pipeline (parse, elaborate, derive, check
// bisimilarity) over source and converts whatever fatal error it hits into
// a single LSP diagnostic. A clean run reports an informational diagnostic
// summarising the derived LTS (the supplemented stats feature, surfaced
// here instead of only on the CLI's --stats flag).
func Diagnose(path, source string) []protocol.Diagnostic {
	res, err := lower.PipelineSource(path, source)
	if err != nil {
		return []protocol.Diagnostic{fatalToDiagnostic(err)}
	}

	stats := lower.Summarize(res.Lts)
	return []protocol.Diagnostic{{
		Range:    zeroRange(),
		Severity: ptrSeverity(protocol.DiagnosticSeverityInformation),
		Source:   ptrString("ccs"),
		Message:  "states: " + strconv.Itoa(stats.States) + ", transitions: " + strconv.Itoa(stats.Transitions),
	}}
}

func fatalToDiagnostic(err error) protocol.Diagnostic {
	fatal, ok := err.(*cerr.Fatal)
	if !ok {
		return protocol.Diagnostic{
			Range:    zeroRange(),
			Severity: ptrSeverity(protocol.DiagnosticSeverityError),
			Source:   ptrString("ccs"),
			Message:  err.Error(),
		}
	}
	line, col := fatal.Pos.Line, fatal.Pos.Column
	if line <= 0 {
		line, col = 1, 1
	}
	return protocol.Diagnostic{
		Range: protocol.Range{
			Start: protocol.Position{Line: uint32(line - 1), Character: uint32(col - 1)},
			End:   protocol.Position{Line: uint32(line - 1), Character: uint32(col + 4)},
		},
		Severity: ptrSeverity(protocol.DiagnosticSeverityError),
		Source:   ptrString("ccs"),
		Message:  string(fatal.Kind) + ": " + fatal.Message,
	}
}

func zeroRange() protocol.Range {
	return protocol.Range{
		Start: protocol.Position{Line: 0, Character: 0},
		End:   protocol.Position{Line: 0, Character: 1},
	}
}

func ptrSeverity(s protocol.DiagnosticSeverity) *protocol.DiagnosticSeverity { return &s }

func ptrString(s string) *string { return &s }
