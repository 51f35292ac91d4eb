// Package errors defines the fatal-error taxonomy of the CCS/CCS-VP
// toolchain and a reporter for rendering one to the terminal with a
// source snippet and caret.
//
// Every kind here is fatal: nothing in this system retries or produces a
// partial result once one of these is raised.
package errors

// Kind identifies one of the fatal-error triggers this toolchain raises.
type Kind string

const (
	// Parse: source text does not match the grammar.
	Parse Kind = "ParseError"
	// MainMissing: the context lacks the entry constant named by set_main
	// (or "main" by default).
	MainMissing Kind = "MainMissing"
	// UnknownConstant: a process references a name not bound in the context.
	UnknownConstant Kind = "UnknownConstant"
	// TypeMismatch: a variable was substituted with a value of the wrong
	// semantic type (integer vs boolean vs enum).
	TypeMismatch Kind = "TypeMismatch"
	// UnboundVariable: expression evaluation hit a free variable.
	UnboundVariable Kind = "UnboundVariable"
	// IntegerOutOfBounds: an evaluated integer fell outside [min, max).
	IntegerOutOfBounds Kind = "IntegerOutOfBounds"
	// InvalidType: values_of was requested for an unknown type.
	InvalidType Kind = "InvalidType"
	// ReservedName: a substitution pair mentioned "tau".
	ReservedName Kind = "ReservedName"
	// ExtensionMismatch: the CLI was given a source file with an
	// unrecognised extension.
	ExtensionMismatch Kind = "ExtensionMismatch"
)
