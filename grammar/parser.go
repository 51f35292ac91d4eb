// Package grammar parses CCS and CCS-VP source text into participle parse
// trees; package lower turns those trees into term-algebra values.
package grammar

import (
	"path/filepath"

	cerr "ccs/internal/errors"
)

const (
	CCSExt = ".ccs"
	VPExt  = ".ccsvp"
)

// Dialect identifies which process algebra a source file is written in.
type Dialect int

const (
	CCS Dialect = iota
	VP
)

// DialectOf maps a file extension to a Dialect, raising ExtensionMismatch
// for anything else.
func DialectOf(path string) (Dialect, error) {
	switch filepath.Ext(path) {
	case CCSExt:
		return CCS, nil
	case VPExt:
		return VP, nil
	default:
		return 0, cerr.New(cerr.ExtensionMismatch, "unrecognised source extension %q; expected %q or %q", filepath.Ext(path), CCSExt, VPExt)
	}
}

// ParseFile dispatches to ParseCCSFile or ParseVPFile by path extension.
// On success exactly one of the two programs is non-nil; on error both are.
func ParseFile(path string) (*CCSProgram, *VPProgram, error) {
	dialect, err := DialectOf(path)
	if err != nil {
		return nil, nil, err
	}
	switch dialect {
	case CCS:
		p, err := ParseCCSFile(path)
		return p, nil, err
	default:
		p, err := ParseVPFile(path)
		return nil, p, err
	}
}
