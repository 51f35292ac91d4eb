// Package vpprocess implements the CCS-VP term algebra: the value-passing
// extension of package process, whose ToCCS elaboration lowers every term
// down to a plain process.Process by enumerating finite value domains and
// mangling them into channel and constant names.
package vpprocess

import (
	"fmt"

	"ccs/internal/vpvalues"
)

// Kind tags the shape of a Channel.
type Kind int

const (
	Send Kind = iota
	Recv
	Tau
)

// Channel is a value-passing port: a Send optionally carries an evaluated
// AExpr/BExpr payload, a Recv optionally binds a fresh variable name that
// scopes over the rest of the prefixed process.
type Channel struct {
	kind  Kind
	name  string
	value vpvalues.Value // Send payload, or nil for a bare send
	bind  string         // Recv binder, or "" for a bare receive
}

func NewSend(name string, value vpvalues.Value) Channel {
	return Channel{kind: Send, name: name, value: value}
}
func NewRecv(name string, bind string) Channel { return Channel{kind: Recv, name: name, bind: bind} }
func NewTau() Channel                          { return Channel{kind: Tau} }

func (c Channel) Kind() Kind             { return c.kind }
func (c Channel) Name() string           { return c.name }
func (c Channel) Value() vpvalues.Value  { return c.value }
func (c Channel) Bind() string           { return c.bind }
func (c Channel) HasValue() bool         { return c.value != nil }
func (c Channel) HasBind() bool          { return c.bind != "" }

func (c Channel) String() string {
	switch c.kind {
	case Send:
		if c.value != nil {
			return fmt.Sprintf("%s!(%s)", c.name, c.value)
		}
		return c.name + "!"
	case Recv:
		if c.bind != "" {
			return fmt.Sprintf("%s?(%s)", c.name, c.bind)
		}
		return c.name + "?"
	default:
		return "Tau"
	}
}
