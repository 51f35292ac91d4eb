package process

// Transition is a single labelled edge Source --Channel--> Target.
type Transition struct {
	Source  Process
	Channel Channel
	Target  Process
}

// transSet is a Transition set keyed by the concatenation of its three
// canonical Keys.
type transSet map[string]Transition

func (s transSet) key(t Transition) string {
	return t.Source.Key() + "\x00" + t.Channel.String() + "\x00" + t.Target.Key()
}

func (s transSet) add(t Transition) { s[s.key(t)] = t }

func (s transSet) remove(t Transition) { delete(s, s.key(t)) }

func (s transSet) slice() []Transition {
	out := make([]Transition, 0, len(s))
	for _, t := range s {
		out = append(out, t)
	}
	return out
}

// Step computes the one-step SOS transitions of p. It does not
// recurse into p's Constants: callers derive against an already-unfolded
// term.
func Step(p Process) []Transition {
	return step(p).slice()
}

func step(p Process) transSet {
	switch n := p.(type) {
	case *Constant:
		return transSet{}

	case *Action:
		s := transSet{}
		s.add(Transition{Source: p, Channel: n.Channel, Target: n.Body})
		return s

	case *Restriction:
		s := transSet{}
		for _, t := range step(n.Body) {
			if n.restricts(t.Channel.Name()) {
				continue
			}
			s.add(Transition{Source: p, Channel: t.Channel, Target: NewRestriction(t.Target, n.Names)})
		}
		return s

	case *SubstitutionTerm:
		s := transSet{}
		for _, t := range step(n.Body) {
			s.add(Transition{
				Source:  p,
				Channel: n.Subst.ReplaceChannel(t.Channel),
				Target:  NewSubstitutionTerm(t.Target, n.Subst),
			})
		}
		return s

	case *Sum:
		s := transSet{}
		for _, child := range n.Children {
			for _, t := range step(child) {
				s.add(Transition{Source: p, Channel: t.Channel, Target: t.Target})
			}
		}
		return s

	case *Par:
		return stepPar(p, n)

	default:
		return transSet{}
	}
}

// stepPar emits a tau for every complementary pair of one-step derivatives
// on the two sides, once per pair, and an interleaving transition for every
// derivative that took part in no synchronisation at all.
func stepPar(p Process, n *Par) transSet {
	ptrans := step(n.Left)
	qtrans := step(n.Right)
	out := transSet{}

	matchedP := map[string]bool{}
	matchedQ := map[string]bool{}

	for _, pt := range ptrans.slice() {
		for _, qt := range qtrans.slice() {
			if pt.Channel.SynchedWith(qt.Channel) {
				out.add(Transition{
					Source:  p,
					Channel: NewTau(),
					Target:  NewPar(pt.Target, qt.Target),
				})
				matchedP[ptrans.key(pt)] = true
				matchedQ[qtrans.key(qt)] = true
			}
		}
	}

	for _, t := range ptrans.slice() {
		if matchedP[ptrans.key(t)] {
			continue
		}
		out.add(Transition{Source: p, Channel: t.Channel, Target: NewPar(t.Target, n.Right)})
	}
	for _, t := range qtrans.slice() {
		if matchedQ[qtrans.key(t)] {
			continue
		}
		out.add(Transition{Source: p, Channel: t.Channel, Target: NewPar(n.Left, t.Target)})
	}
	return out
}
