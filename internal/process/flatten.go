package process

// Flatten applies structural normalisation bottom-up. It
// never changes the set of reachable behaviours, only the term's shape:
// NIL children drop out of Sum, singleton Sums collapse, and Par absorbs
// NIL on either side.
func Flatten(p Process) Process {
	switch n := p.(type) {
	case *Constant:
		return n

	case *Action:
		return NewAction(n.Channel, Flatten(n.Body))

	case *Sum:
		kept := make([]Process, 0, len(n.Children))
		for _, c := range n.Children {
			fc := Flatten(c)
			if !IsNil(fc) {
				kept = append(kept, fc)
			}
		}
		if len(kept) == 1 {
			return kept[0]
		}
		return NewSum(kept)

	case *Par:
		l := Flatten(n.Left)
		r := Flatten(n.Right)
		switch {
		case IsNil(l) && IsNil(r):
			return Nil()
		case IsNil(l):
			return r
		case IsNil(r):
			return l
		default:
			return NewPar(l, r)
		}

	case *SubstitutionTerm:
		return NewSubstitutionTerm(Flatten(n.Body), n.Subst)

	case *Restriction:
		return NewRestriction(Flatten(n.Body), n.Names)

	default:
		return p
	}
}
