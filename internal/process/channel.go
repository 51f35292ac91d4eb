// Package process implements the CCS term algebra: channels, process terms,
// channel substitutions, and the structural operational semantics that turns
// a term into its one-step transitions.
package process

import "fmt"

// Kind tags the shape of a Channel: an output, an input, or the internal
// synchronisation action.
type Kind int

const (
	Send Kind = iota
	Recv
	Tau
)

// TauName is the reserved port name; it must never be used as a user port
// name or as a substitution image; see ReservedName.
const TauName = "tau"

// Channel is an immutable, comparable communication endpoint. Two channels
// are equal iff their Kind and Name agree, so Channel is safe to use
// directly as a map key.
type Channel struct {
	kind Kind
	name string
}

func NewSend(name string) Channel { return Channel{kind: Send, name: name} }
func NewRecv(name string) Channel { return Channel{kind: Recv, name: name} }
func NewTau() Channel             { return Channel{kind: Tau} }

func (c Channel) Kind() Kind { return c.kind }

// Name returns the port name, or "tau" for the internal action.
func (c Channel) Name() string {
	if c.kind == Tau {
		return TauName
	}
	return c.name
}

func (c Channel) IsTau() bool { return c.kind == Tau }

// SynchedWith reports whether c and other form a complementary send/receive
// pair on the same port, or are both Tau.
func (c Channel) SynchedWith(other Channel) bool {
	switch {
	case c.kind == Send && other.kind == Recv:
		return c.name == other.name
	case c.kind == Recv && other.kind == Send:
		return c.name == other.name
	case c.kind == Tau && other.kind == Tau:
		return true
	default:
		return false
	}
}

// Renamed returns c with its port name replaced by name; Tau is unaffected.
func (c Channel) Renamed(name string) Channel {
	if c.kind == Tau {
		return c
	}
	return Channel{kind: c.kind, name: name}
}

func (c Channel) String() string {
	switch c.kind {
	case Send:
		return fmt.Sprintf("%s!", c.name)
	case Recv:
		return fmt.Sprintf("%s?", c.name)
	default:
		return "Tau"
	}
}
