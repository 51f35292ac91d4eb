package process

import "strings"

// ProcKind tags the six term-algebra shapes; the terminated process has no
// kind of its own and is represented as the empty Sum.
type ProcKind int

const (
	KindConstant ProcKind = iota
	KindAction
	KindSum
	KindPar
	KindRestriction
	KindSubstitution
)

// Process is a tagged, immutable recursive term. Concrete variants are
// *Constant, *Action, *Sum, *Par, *Restriction, *SubstitutionTerm.
//
// Process values are compared and hashed structurally. Go has no derived
// structural Hash/Eq for recursive sum types, so instead of making Process
// a map key directly (which would panic: some variants hold slices, which
// aren't comparable) every Process exposes a canonical
// Key, which is exactly its surface rendering — the grammar guarantees two
// distinct terms never render identically, since every composite form is
// fully parenthesised. Sets of processes are therefore plain
// map[string]Process keyed by Key().
type Process interface {
	Kind() ProcKind
	String() string
	Key() string
}

// Constant is a reference to a named definition, resolved via a Context.
type Constant struct {
	Name string
}

func NewConstant(name string) *Constant { return &Constant{Name: name} }

func (c *Constant) Kind() ProcKind { return KindConstant }
func (c *Constant) String() string { return c.Name + "()" }
func (c *Constant) Key() string    { return c.String() }

// Action is a prefix: perform Channel, then continue as Body.
type Action struct {
	Channel Channel
	Body    Process
}

func NewAction(ch Channel, body Process) *Action { return &Action{Channel: ch, Body: body} }

func (a *Action) Kind() ProcKind { return KindAction }
func (a *Action) String() string { return a.Channel.String() + "." + a.Body.String() }
func (a *Action) Key() string    { return a.String() }

// Sum is nondeterministic choice over an ordered multiset of alternatives.
// The empty Sum is NIL.
type Sum struct {
	Children []Process
}

func NewSum(children []Process) *Sum { return &Sum{Children: children} }

// Nil is the terminated process: the empty Sum.
func Nil() *Sum { return &Sum{} }

// IsNil reports whether p is the terminated process.
func IsNil(p Process) bool {
	s, ok := p.(*Sum)
	return ok && len(s.Children) == 0
}

func (s *Sum) Kind() ProcKind { return KindSum }
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
func (s *Sum) Key() string { return s.String() }

// Par is parallel composition with CCS handshake semantics.
type Par struct {
	Left, Right Process
}

func NewPar(left, right Process) *Par { return &Par{Left: left, Right: right} }

func (p *Par) Kind() ProcKind { return KindPar }
func (p *Par) String() string { return "(" + p.Left.String() + " | " + p.Right.String() + ")" }
func (p *Par) Key() string    { return p.String() }

// Restriction hides the given port names: no transition on a restricted
// name escapes its scope.
type Restriction struct {
	Body  Process
	Names []string
}

func NewRestriction(body Process, names []string) *Restriction {
	return &Restriction{Body: body, Names: names}
}

func (r *Restriction) Kind() ProcKind { return KindRestriction }
func (r *Restriction) String() string {
	return "(" + r.Body.String() + " \\ { " + strings.Join(r.Names, ", ") + " })"
}
func (r *Restriction) Key() string { return r.String() }

func (r *Restriction) restricts(name string) bool {
	for _, n := range r.Names {
		if n == name {
			return true
		}
	}
	return false
}

// SubstitutionTerm renames ports of Body according to Subst, applied lazily
// to every outgoing transition label.
type SubstitutionTerm struct {
	Body  Process
	Subst Substitution
}

func NewSubstitutionTerm(body Process, subst Substitution) *SubstitutionTerm {
	return &SubstitutionTerm{Body: body, Subst: subst}
}

func (s *SubstitutionTerm) Kind() ProcKind { return KindSubstitution }
func (s *SubstitutionTerm) String() string {
	return "(" + s.Body.String() + "[" + s.Subst.String() + "])"
}
func (s *SubstitutionTerm) Key() string { return s.String() }

// Equal reports structural equality via the canonical Key.
func Equal(p, q Process) bool { return p.Key() == q.Key() }
