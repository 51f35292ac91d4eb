package vpprocess

import (
	"strings"

	"ccs/internal/process"
	"ccs/internal/vpvalues"
)

// Process is a CCS-VP term. Concrete variants are *Constant, *Action, *Sum,
// *Par, *Restriction, *SubstitutionTerm, *IfThen.
type Process interface {
	String() string
	// TryReplace substitutes every free occurrence of varName with val
	// throughout the term, stopping at a Recv binder that shadows varName.
	// It reports false on a type mismatch anywhere in the term.
	TryReplace(varName string, val vpvalues.Value) (Process, bool)
}

// Constant is a parameterised reference to a `fn NAME(v1, ..., vn) { ... }`
// definition.
type Constant struct {
	Name string
	Args []vpvalues.Value
}

func NewConstant(name string, args []vpvalues.Value) *Constant { return &Constant{Name: name, Args: args} }

func (c *Constant) String() string {
	parts := make([]string, len(c.Args))
	for i, a := range c.Args {
		parts[i] = a.String()
	}
	return c.Name + "(" + strings.Join(parts, ",") + ")"
}

func (c *Constant) TryReplace(varName string, val vpvalues.Value) (Process, bool) {
	args := make([]vpvalues.Value, len(c.Args))
	for i, a := range c.Args {
		na, ok := a.TryReplace(varName, val)
		if !ok {
			return nil, false
		}
		args[i] = na
	}
	return &Constant{Name: c.Name, Args: args}, true
}

// Action is a value-passing prefix.
type Action struct {
	Channel Channel
	Body    Process
}

func NewAction(ch Channel, body Process) *Action { return &Action{Channel: ch, Body: body} }

func (a *Action) String() string { return a.Channel.String() + "; " + a.Body.String() }

func (a *Action) TryReplace(varName string, val vpvalues.Value) (Process, bool) {
	if a.Channel.Kind() == Recv && a.Channel.Bind() == varName {
		return a, true
	}
	ch := a.Channel
	if ch.Kind() == Send && ch.HasValue() {
		nv, ok := ch.Value().TryReplace(varName, val)
		if !ok {
			return nil, false
		}
		ch = NewSend(ch.Name(), nv)
	}
	body, ok := a.Body.TryReplace(varName, val)
	if !ok {
		return nil, false
	}
	return NewAction(ch, body), true
}

// Sum is nondeterministic choice.
type Sum struct{ Children []Process }

func NewSum(children []Process) *Sum { return &Sum{Children: children} }
func Nil() *Sum                      { return &Sum{} }

func (s *Sum) String() string {
	if len(s.Children) == 0 {
		return "NIL"
	}
	parts := make([]string, len(s.Children))
	for i, c := range s.Children {
		parts[i] = c.String()
	}
	return "(" + strings.Join(parts, " + ") + ")"
}

func (s *Sum) TryReplace(varName string, val vpvalues.Value) (Process, bool) {
	children := make([]Process, len(s.Children))
	for i, c := range s.Children {
		nc, ok := c.TryReplace(varName, val)
		if !ok {
			return nil, false
		}
		children[i] = nc
	}
	return NewSum(children), true
}

// Par is parallel composition.
type Par struct{ Left, Right Process }

func NewPar(left, right Process) *Par { return &Par{Left: left, Right: right} }

func (p *Par) String() string { return "(" + p.Left.String() + " | " + p.Right.String() + ")" }

func (p *Par) TryReplace(varName string, val vpvalues.Value) (Process, bool) {
	l, ok := p.Left.TryReplace(varName, val)
	if !ok {
		return nil, false
	}
	r, ok := p.Right.TryReplace(varName, val)
	if !ok {
		return nil, false
	}
	return NewPar(l, r), true
}

// Restriction hides a set of port names across every value they carry.
type Restriction struct {
	Body  Process
	Names []string
}

func NewRestriction(body Process, names []string) *Restriction {
	return &Restriction{Body: body, Names: names}
}

func (r *Restriction) String() string {
	return "(" + r.Body.String() + " \\ [" + strings.Join(r.Names, ", ") + "])"
}

func (r *Restriction) TryReplace(varName string, val vpvalues.Value) (Process, bool) {
	body, ok := r.Body.TryReplace(varName, val)
	if !ok {
		return nil, false
	}
	return NewRestriction(body, r.Names), true
}

// SubstitutionTerm renames ports, expanded per-value at elaboration time.
type SubstitutionTerm struct {
	Body  Process
	Pairs []process.SubstPair
}

func NewSubstitutionTerm(body Process, pairs []process.SubstPair) *SubstitutionTerm {
	return &SubstitutionTerm{Body: body, Pairs: pairs}
}

func (s *SubstitutionTerm) String() string {
	parts := make([]string, len(s.Pairs))
	for i, p := range s.Pairs {
		parts[i] = p.New + "/" + p.Old
	}
	return "(" + s.Body.String() + " [" + strings.Join(parts, ", ") + "])"
}

func (s *SubstitutionTerm) TryReplace(varName string, val vpvalues.Value) (Process, bool) {
	body, ok := s.Body.TryReplace(varName, val)
	if !ok {
		return nil, false
	}
	return NewSubstitutionTerm(body, s.Pairs), true
}

// IfThen guards Body on a boolean expression; a false guard elaborates to
// NIL, and the `if B then P else Q` surface form desugars to
// Sum{IfThen(B, P), IfThen(Not(B), Q)}.
type IfThen struct {
	Guard vpvalues.BExpr
	Body  Process
}

func NewIfThen(guard vpvalues.BExpr, body Process) *IfThen { return &IfThen{Guard: guard, Body: body} }

func (i *IfThen) String() string { return "if " + i.Guard.String() + " then { " + i.Body.String() + " }" }

func (i *IfThen) TryReplace(varName string, val vpvalues.Value) (Process, bool) {
	guard, ok := i.Guard.TryReplace(varName, val)
	if !ok {
		return nil, false
	}
	body, ok := i.Body.TryReplace(varName, val)
	if !ok {
		return nil, false
	}
	return NewIfThen(guard, body), true
}
