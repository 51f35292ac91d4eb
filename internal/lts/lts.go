// Package lts builds the Labelled Transition System reachable from a
// process term: saturating the one-step SOS relation to a fixpoint,
// weakening it to erase silent (tau) moves, and indexing transitions by
// endpoint for the bisimilarity solver in package bisim.
package lts

import "ccs/internal/process"

// Lts is a saturated, flattened set of transitions, keyed by the same
// Source/Channel/Target Key concatenation package process uses internally,
// so structurally equal transitions collapse into one entry.
type Lts struct {
	transitions map[string]process.Transition
}

func key(t process.Transition) string {
	return t.Source.Key() + "\x00" + t.Channel.String() + "\x00" + t.Target.Key()
}

// New builds an Lts from an explicit transition set, deduplicating by Key.
func New(ts []process.Transition) *Lts {
	l := &Lts{transitions: make(map[string]process.Transition, len(ts))}
	for _, t := range ts {
		l.transitions[key(t)] = t
	}
	return l
}

func empty() *Lts { return &Lts{transitions: map[string]process.Transition{}} }

func (l *Lts) add(t process.Transition) { l.transitions[key(t)] = t }

// Derive unfolds seed against ctx, then computes its one-step transitions
// and saturates by repeatedly stepping every reachable target until no new
// transition appears. Every transition target is unfolded against ctx
// before it is recorded, so a recursive reference closes into a loop. The
// result is flattened before being returned.
func Derive(seed process.Process, ctx process.ConstantLookup) (*Lts, error) {
	unfolded, err := process.Unfold(seed, ctx)
	if err != nil {
		return nil, err
	}

	l := empty()
	frontier := process.Step(unfolded)
	for {
		before := len(l.transitions)
		for _, t := range frontier {
			target, err := process.Unfold(t.Target, ctx)
			if err != nil {
				return nil, err
			}
			l.add(process.Transition{Source: t.Source, Channel: t.Channel, Target: target})
		}
		if len(l.transitions) == before {
			break
		}
		frontier = nil
		for _, t := range l.snapshot() {
			frontier = append(frontier, process.Step(t.Target)...)
		}
	}
	return l.Flatten(), nil
}

func (l *Lts) snapshot() []process.Transition {
	out := make([]process.Transition, 0, len(l.transitions))
	for _, t := range l.transitions {
		out = append(out, t)
	}
	return out
}

// Flatten returns a copy of l with every endpoint structurally flattened.
func (l *Lts) Flatten() *Lts {
	out := empty()
	for _, t := range l.transitions {
		out.add(process.Transition{
			Source:  process.Flatten(t.Source),
			Channel: t.Channel,
			Target:  process.Flatten(t.Target),
		})
	}
	return out
}

// Weaken closes l under silent moves: every node gets a Tau self-loop, and
// every a-labelled edge that can be preceded or followed by a Tau move
// gets a direct a-labelled shortcut, giving the weak-transition relation.
func (l *Lts) Weaken() *Lts {
	out := New(l.snapshot())
	for _, n := range l.Nodes() {
		out.add(process.Transition{Source: n, Channel: process.NewTau(), Target: n})
	}
	for _, t := range l.snapshot() {
		if !t.Channel.IsTau() {
			continue
		}
		for _, before := range l.TransitionsTo(t.Source) {
			out.add(process.Transition{Source: before.Source, Channel: before.Channel, Target: t.Target})
		}
		for _, after := range l.TransitionsFrom(t.Target) {
			out.add(process.Transition{Source: t.Source, Channel: after.Channel, Target: after.Target})
		}
	}
	return out
}

// Nodes returns the distinct processes appearing as a source or target,
// deduplicated by Key.
func (l *Lts) Nodes() []process.Process {
	seen := map[string]process.Process{}
	for _, t := range l.transitions {
		seen[t.Source.Key()] = t.Source
		seen[t.Target.Key()] = t.Target
	}
	out := make([]process.Process, 0, len(seen))
	for _, p := range seen {
		out = append(out, p)
	}
	return out
}

// Edges returns the distinct channel labels appearing in l.
func (l *Lts) Edges() []process.Channel {
	seen := map[string]process.Channel{}
	for _, t := range l.transitions {
		seen[t.Channel.String()] = t.Channel
	}
	out := make([]process.Channel, 0, len(seen))
	for _, c := range seen {
		out = append(out, c)
	}
	return out
}

// Transitions returns every transition in l.
func (l *Lts) Transitions() []process.Transition { return l.snapshot() }

// TransitionsFrom returns every transition whose Source equals p.
func (l *Lts) TransitionsFrom(p process.Process) []process.Transition {
	var out []process.Transition
	for _, t := range l.transitions {
		if t.Source.Key() == p.Key() {
			out = append(out, t)
		}
	}
	return out
}

// TransitionsTo returns every transition whose Target equals p.
func (l *Lts) TransitionsTo(p process.Process) []process.Transition {
	var out []process.Transition
	for _, t := range l.transitions {
		if t.Target.Key() == p.Key() {
			out = append(out, t)
		}
	}
	return out
}

// Len reports the number of distinct transitions in l.
func (l *Lts) Len() int { return len(l.transitions) }
