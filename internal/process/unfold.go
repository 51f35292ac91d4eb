package process

import cerr "ccs/internal/errors"

// ConstantLookup resolves a Constant's bound body and, in the other
// direction, the name a body is bound under. It exists so this package
// does not need to import the context package that owns the name table
// (which in turn must import Process), breaking what would otherwise be
// an import cycle.
type ConstantLookup interface {
	GetProcess(name string) (Process, bool)
	NameOf(p Process) (string, bool)
}

// Unfold expands every Constant reachable from p against ctx, guarded by a
// seen-set of names currently being expanded along the current spine: a
// Constant whose name is already in the seen-set is left intact rather
// than expanded again, which is what keeps recursive definitions from
// looping forever. If p is itself an alias for a bound constant, that name
// seeds the seen-set up front, so the very first expansion step is
// suppressed.
func Unfold(p Process, ctx ConstantLookup) (Process, error) {
	seen := map[string]bool{}
	if name, ok := ctx.NameOf(p); ok {
		seen[name] = true
	}
	return unfoldRec(p, ctx, seen)
}

func unfoldRec(p Process, ctx ConstantLookup, seen map[string]bool) (Process, error) {
	switch n := p.(type) {
	case *Constant:
		if seen[n.Name] {
			return n, nil
		}
		body, ok := ctx.GetProcess(n.Name)
		if !ok {
			return nil, cerr.New(cerr.UnknownConstant, "constant %q is not bound in this context", n.Name)
		}
		seen[n.Name] = true
		result, err := unfoldRec(body, ctx, seen)
		delete(seen, n.Name)
		return result, err

	case *Action:
		body, err := unfoldRec(n.Body, ctx, seen)
		if err != nil {
			return nil, err
		}
		return NewAction(n.Channel, body), nil

	case *Sum:
		children := make([]Process, len(n.Children))
		for i, c := range n.Children {
			uc, err := unfoldRec(c, ctx, seen)
			if err != nil {
				return nil, err
			}
			children[i] = uc
		}
		return NewSum(children), nil

	case *Par:
		l, err := unfoldRec(n.Left, ctx, seen)
		if err != nil {
			return nil, err
		}
		r, err := unfoldRec(n.Right, ctx, seen)
		if err != nil {
			return nil, err
		}
		return NewPar(l, r), nil

	case *Restriction:
		body, err := unfoldRec(n.Body, ctx, seen)
		if err != nil {
			return nil, err
		}
		return NewRestriction(body, n.Names), nil

	case *SubstitutionTerm:
		body, err := unfoldRec(n.Body, ctx, seen)
		if err != nil {
			return nil, err
		}
		return NewSubstitutionTerm(body, n.Subst), nil

	default:
		return p, nil
	}
}
