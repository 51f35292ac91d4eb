package process

import (
	"fmt"
	"strings"
)

// SubstPair is a single new-for-old renaming entry.
type SubstPair struct {
	New string
	Old string
}

// Substitution is an ordered list of (new, old) renaming pairs, applied
// lazily to every outgoing transition label of the process it wraps.
// Lookup returns the first matching Old, or the input name unchanged.
type Substitution struct {
	pairs []SubstPair
}

// NewSubstitution builds a Substitution, rejecting any pair that mentions
// the reserved "tau" name on either side.
func NewSubstitution(pairs []SubstPair) (Substitution, error) {
	for _, p := range pairs {
		if p.New == TauName || p.Old == TauName {
			return Substitution{}, fmt.Errorf("reserved name %q cannot appear in a substitution pair", TauName)
		}
	}
	cp := make([]SubstPair, len(pairs))
	copy(cp, pairs)
	return Substitution{pairs: cp}, nil
}

func (s Substitution) Pairs() []SubstPair { return s.pairs }

func (s Substitution) replaceName(name string) string {
	for _, p := range s.pairs {
		if p.Old == name {
			return p.New
		}
	}
	return name
}

// ReplaceChannel renames the port of ch according to the substitution;
// Tau passes through unchanged.
func (s Substitution) ReplaceChannel(ch Channel) Channel {
	if ch.IsTau() {
		return ch
	}
	return ch.Renamed(s.replaceName(ch.name))
}

func (s Substitution) String() string {
	parts := make([]string, len(s.pairs))
	for i, p := range s.pairs {
		parts[i] = fmt.Sprintf("%s/%s", p.New, p.Old)
	}
	return strings.Join(parts, ", ")
}
