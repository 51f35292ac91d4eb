package lower

import (
	"strconv"

	"ccs/grammar"
	cerr "ccs/internal/errors"
	"ccs/internal/vpvalues"
)

// isBooleanShaped reports whether e uses any boolean-only operator (||,
// &&, !, or a comparison), which forces the whole expression to be a
// BExpr rather than a bare value or an AExpr.
func isBooleanShaped(e *grammar.VPOrExpr) bool {
	if len(e.Rest) > 0 {
		return true
	}
	and := e.Left
	if len(and.Rest) > 0 {
		return true
	}
	not := and.Left
	if not.Not {
		return true
	}
	cmp := not.Operand
	return cmp.Op != nil || cmp.Is != nil
}

// trivialAtom returns the leaf VPAtom if e carries no arithmetic or
// boolean operator anywhere along its spine.
func trivialAtom(e *grammar.VPOrExpr) (*grammar.VPAtom, bool) {
	if isBooleanShaped(e) {
		return nil, false
	}
	add := e.Left.Left.Operand.Left
	if len(add.Rest) > 0 {
		return nil, false
	}
	mul := add.Left
	if len(mul.Rest) > 0 {
		return nil, false
	}
	return mul.Left, true
}

// Value lowers e into a vpvalues.Value: a literal, an enum constructor, a
// free variable reference, or a reduced AExpr/BExpr tree.
func Value(e *grammar.VPOrExpr) (vpvalues.Value, error) {
	if atom, ok := trivialAtom(e); ok {
		switch {
		case atom.True:
			return vpvalues.BExprValue{Expr: vpvalues.BLit{V: true}}, nil
		case atom.False:
			return vpvalues.BExprValue{Expr: vpvalues.BLit{V: false}}, nil
		case atom.Int != nil:
			n, err := strconv.Atoi(*atom.Int)
			if err != nil {
				return nil, cerr.New(cerr.IntegerOutOfBounds, "malformed integer literal %q", *atom.Int)
			}
			return vpvalues.AExprValue{Expr: vpvalues.ALit{N: n}}, nil
		case atom.EnumCtor != nil:
			return enumCtor(atom.EnumCtor)
		case atom.Ident != nil:
			return vpvalues.VarValue{Name: *atom.Ident}, nil
		case atom.Paren != nil:
			return Value(atom.Paren)
		}
	}
	if isBooleanShaped(e) {
		b, err := BExpr(e)
		if err != nil {
			return nil, err
		}
		return vpvalues.BExprValue{Expr: b}, nil
	}
	a, err := AExpr(e)
	if err != nil {
		return nil, err
	}
	return vpvalues.AExprValue{Expr: a}, nil
}

func enumCtor(n *grammar.VPEnumCtorNode) (vpvalues.Value, error) {
	vals := make([]vpvalues.Value, len(n.Args))
	for i, a := range n.Args {
		v, err := Value(a)
		if err != nil {
			return nil, err
		}
		vals[i] = v
	}
	return vpvalues.EnumValue{Type: n.Type, Tag: n.Tag, Vals: vals}, nil
}

// AExpr lowers e as a pure arithmetic expression, raising TypeMismatch if e
// contains any boolean-only construct.
func AExpr(e *grammar.VPOrExpr) (vpvalues.AExpr, error) {
	if isBooleanShaped(e) {
		return nil, cerr.New(cerr.TypeMismatch, "expected a numeric expression, found a boolean one")
	}
	return aExprAdd(e.Left.Left.Operand.Left)
}

func aExprAdd(n *grammar.VPAddExpr) (vpvalues.AExpr, error) {
	left, err := aExprMul(n.Left)
	if err != nil {
		return nil, err
	}
	for _, op := range n.Rest {
		right, err := aExprMul(op.Right)
		if err != nil {
			return nil, err
		}
		switch op.Operator {
		case "+":
			left = vpvalues.AAdd{L: left, R: right}
		default:
			left = vpvalues.ASub{L: left, R: right}
		}
	}
	return left, nil
}

func aExprMul(n *grammar.VPMulExpr) (vpvalues.AExpr, error) {
	left, err := aExprAtom(n.Left)
	if err != nil {
		return nil, err
	}
	for _, op := range n.Rest {
		right, err := aExprAtom(op.Right)
		if err != nil {
			return nil, err
		}
		switch op.Operator {
		case "*":
			left = vpvalues.AMul{L: left, R: right}
		default:
			left = vpvalues.ADiv{L: left, R: right}
		}
	}
	return left, nil
}

func aExprAtom(a *grammar.VPAtom) (vpvalues.AExpr, error) {
	switch {
	case a.Int != nil:
		n, err := strconv.Atoi(*a.Int)
		if err != nil {
			return nil, cerr.New(cerr.IntegerOutOfBounds, "malformed integer literal %q", *a.Int)
		}
		return vpvalues.ALit{N: n}, nil
	case a.Ident != nil:
		return vpvalues.AVar{Name: *a.Ident}, nil
	case a.Paren != nil:
		return AExpr(a.Paren)
	}
	return nil, cerr.New(cerr.TypeMismatch, "expected a numeric expression")
}

// BExpr lowers e as a boolean expression.
func BExpr(e *grammar.VPOrExpr) (vpvalues.BExpr, error) {
	left, err := bExprAnd(e.Left)
	if err != nil {
		return nil, err
	}
	for _, r := range e.Rest {
		rb, err := bExprAnd(r)
		if err != nil {
			return nil, err
		}
		left = vpvalues.BOr{L: left, R: rb}
	}
	return left, nil
}

func bExprAnd(n *grammar.VPAndExpr) (vpvalues.BExpr, error) {
	left, err := bExprNot(n.Left)
	if err != nil {
		return nil, err
	}
	for _, r := range n.Rest {
		rb, err := bExprNot(r)
		if err != nil {
			return nil, err
		}
		left = vpvalues.BAnd{L: left, R: rb}
	}
	return left, nil
}

func bExprNot(n *grammar.VPNotExpr) (vpvalues.BExpr, error) {
	b, err := bExprCmp(n.Operand)
	if err != nil {
		return nil, err
	}
	if n.Not {
		return vpvalues.BNot{E: b}, nil
	}
	return b, nil
}

func bExprCmp(n *grammar.VPCmpExpr) (vpvalues.BExpr, error) {
	if n.Is != nil {
		name, ok := varName(n.Left)
		if !ok {
			return nil, cerr.New(cerr.TypeMismatch, "left side of 'is' must be a variable")
		}
		return vpvalues.BEnumIs{Var: name, Type: n.Is.Type, Tag: n.Is.Tag}, nil
	}
	if n.Op == nil {
		return bExprAtom(n.Left)
	}
	l, err := aExprAdd(n.Left)
	if err != nil {
		return nil, err
	}
	r, err := aExprAdd(n.Right)
	if err != nil {
		return nil, err
	}
	switch *n.Op {
	case "==":
		return vpvalues.BNumEq{L: l, R: r}, nil
	case "!=":
		return vpvalues.BNumNotEq{L: l, R: r}, nil
	case "<=":
		return vpvalues.BNumLtEq{L: l, R: r}, nil
	case ">=":
		return vpvalues.BNumGtEq{L: l, R: r}, nil
	case "<":
		return vpvalues.BNumLt{L: l, R: r}, nil
	default:
		return vpvalues.BNumGt{L: l, R: r}, nil
	}
}

// varName reports the bare identifier n reduces to, if it carries no
// arithmetic operator anywhere along its spine.
func varName(n *grammar.VPAddExpr) (string, bool) {
	if len(n.Rest) > 0 || len(n.Left.Rest) > 0 {
		return "", false
	}
	atom := n.Left.Left
	if atom.Ident == nil {
		return "", false
	}
	return *atom.Ident, true
}

// bExprAtom handles a comparison-free VPAddExpr used in boolean position:
// it must reduce to true/false, a variable, or a parenthesised BExpr.
func bExprAtom(n *grammar.VPAddExpr) (vpvalues.BExpr, error) {
	if len(n.Rest) > 0 || len(n.Left.Rest) > 0 {
		return nil, cerr.New(cerr.TypeMismatch, "expected a boolean expression, found an arithmetic one")
	}
	atom := n.Left.Left
	switch {
	case atom.True:
		return vpvalues.BLit{V: true}, nil
	case atom.False:
		return vpvalues.BLit{V: false}, nil
	case atom.Ident != nil:
		return vpvalues.BVar{Name: *atom.Ident}, nil
	case atom.Paren != nil:
		return BExpr(atom.Paren)
	}
	return nil, cerr.New(cerr.TypeMismatch, "expected a boolean expression")
}
