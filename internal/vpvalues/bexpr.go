package vpvalues

import (
	"fmt"

	cerr "ccs/internal/errors"
)

// BExpr is a boolean expression, possibly comparing two AExprs.
type BExpr interface {
	String() string
	Eval(ctx NumBounds) (bool, error)
	TryReplace(varName string, val Value) (BExpr, bool)
}

type BLit struct{ V bool }
type BVar struct{ Name string }
type BNot struct{ E BExpr }
type BAnd struct{ L, R BExpr }
type BOr struct{ L, R BExpr }
type BNumEq struct{ L, R AExpr }
type BNumNotEq struct{ L, R AExpr }
type BNumLt struct{ L, R AExpr }
type BNumGt struct{ L, R AExpr }
type BNumLtEq struct{ L, R AExpr }
type BNumGtEq struct{ L, R AExpr }

// BEnumIs is the enum equality comparator `var is Type::Tag`: true once Var
// is substituted with an EnumValue whose Type and Tag match.
type BEnumIs struct {
	Var  string
	Type string
	Tag  string
}

func (b BLit) String() string      { return fmt.Sprintf("%t", b.V) }
func (b BVar) String() string      { return b.Name }
func (b BNot) String() string      { return "!" + b.E.String() }
func (b BAnd) String() string      { return fmt.Sprintf("(%s && %s)", b.L, b.R) }
func (b BOr) String() string       { return fmt.Sprintf("(%s || %s)", b.L, b.R) }
func (b BNumEq) String() string    { return fmt.Sprintf("(%s == %s)", b.L, b.R) }
func (b BNumNotEq) String() string { return fmt.Sprintf("(%s != %s)", b.L, b.R) }
func (b BNumLt) String() string    { return fmt.Sprintf("(%s < %s)", b.L, b.R) }
func (b BNumGt) String() string    { return fmt.Sprintf("(%s > %s)", b.L, b.R) }
func (b BNumLtEq) String() string  { return fmt.Sprintf("(%s <= %s)", b.L, b.R) }
func (b BNumGtEq) String() string  { return fmt.Sprintf("(%s >= %s)", b.L, b.R) }
func (b BEnumIs) String() string   { return fmt.Sprintf("(%s is %s::%s)", b.Var, b.Type, b.Tag) }

func (b BLit) Eval(ctx NumBounds) (bool, error) { return b.V, nil }
func (b BVar) Eval(ctx NumBounds) (bool, error) {
	return false, cerr.New(cerr.UnboundVariable, "free variable %q found in expression", b.Name)
}
func (b BNot) Eval(ctx NumBounds) (bool, error) {
	v, err := b.E.Eval(ctx)
	return !v, err
}
func (b BAnd) Eval(ctx NumBounds) (bool, error) {
	l, err := b.L.Eval(ctx)
	if err != nil {
		return false, err
	}
	r, err := b.R.Eval(ctx)
	return l && r, err
}
func (b BOr) Eval(ctx NumBounds) (bool, error) {
	l, err := b.L.Eval(ctx)
	if err != nil {
		return false, err
	}
	r, err := b.R.Eval(ctx)
	return l || r, err
}

func evalCmp(ctx NumBounds, l, r AExpr, cmp func(a, b int) bool) (bool, error) {
	lv, err := l.Eval(ctx)
	if err != nil {
		return false, err
	}
	rv, err := r.Eval(ctx)
	if err != nil {
		return false, err
	}
	return cmp(lv, rv), nil
}

func (b BNumEq) Eval(ctx NumBounds) (bool, error) {
	return evalCmp(ctx, b.L, b.R, func(a, c int) bool { return a == c })
}
func (b BNumNotEq) Eval(ctx NumBounds) (bool, error) {
	return evalCmp(ctx, b.L, b.R, func(a, c int) bool { return a != c })
}
func (b BNumLt) Eval(ctx NumBounds) (bool, error) {
	return evalCmp(ctx, b.L, b.R, func(a, c int) bool { return a < c })
}
func (b BNumGt) Eval(ctx NumBounds) (bool, error) {
	return evalCmp(ctx, b.L, b.R, func(a, c int) bool { return a > c })
}
func (b BNumLtEq) Eval(ctx NumBounds) (bool, error) {
	return evalCmp(ctx, b.L, b.R, func(a, c int) bool { return a <= c })
}
func (b BNumGtEq) Eval(ctx NumBounds) (bool, error) {
	return evalCmp(ctx, b.L, b.R, func(a, c int) bool { return a >= c })
}
func (b BEnumIs) Eval(ctx NumBounds) (bool, error) {
	return false, cerr.New(cerr.UnboundVariable, "free variable %q found in expression", b.Var)
}

func (b BLit) TryReplace(varName string, val Value) (BExpr, bool) { return b, true }
func (b BVar) TryReplace(varName string, val Value) (BExpr, bool) {
	if varName != b.Name {
		return b, true
	}
	bv, ok := val.(BExprValue)
	if !ok {
		return b, false
	}
	return bv.Expr, true
}
func (b BNot) TryReplace(varName string, val Value) (BExpr, bool) {
	e, ok := b.E.TryReplace(varName, val)
	if !ok {
		return nil, false
	}
	return BNot{e}, true
}

func replaceBoolBinary(varName string, val Value, l, r BExpr, rebuild func(l, r BExpr) BExpr) (BExpr, bool) {
	nl, okl := l.TryReplace(varName, val)
	if !okl {
		return nil, false
	}
	nr, okr := r.TryReplace(varName, val)
	if !okr {
		return nil, false
	}
	return rebuild(nl, nr), true
}

func (b BAnd) TryReplace(varName string, val Value) (BExpr, bool) {
	return replaceBoolBinary(varName, val, b.L, b.R, func(l, r BExpr) BExpr { return BAnd{l, r} })
}
func (b BOr) TryReplace(varName string, val Value) (BExpr, bool) {
	return replaceBoolBinary(varName, val, b.L, b.R, func(l, r BExpr) BExpr { return BOr{l, r} })
}

func replaceNumCmp(varName string, val Value, l, r AExpr, rebuild func(l, r AExpr) BExpr) (BExpr, bool) {
	nl, okl := l.TryReplace(varName, val)
	if !okl {
		return nil, false
	}
	nr, okr := r.TryReplace(varName, val)
	if !okr {
		return nil, false
	}
	return rebuild(nl, nr), true
}

func (b BNumEq) TryReplace(varName string, val Value) (BExpr, bool) {
	return replaceNumCmp(varName, val, b.L, b.R, func(l, r AExpr) BExpr { return BNumEq{l, r} })
}
func (b BNumNotEq) TryReplace(varName string, val Value) (BExpr, bool) {
	return replaceNumCmp(varName, val, b.L, b.R, func(l, r AExpr) BExpr { return BNumNotEq{l, r} })
}
func (b BNumLt) TryReplace(varName string, val Value) (BExpr, bool) {
	return replaceNumCmp(varName, val, b.L, b.R, func(l, r AExpr) BExpr { return BNumLt{l, r} })
}
func (b BNumGt) TryReplace(varName string, val Value) (BExpr, bool) {
	return replaceNumCmp(varName, val, b.L, b.R, func(l, r AExpr) BExpr { return BNumGt{l, r} })
}
func (b BNumLtEq) TryReplace(varName string, val Value) (BExpr, bool) {
	return replaceNumCmp(varName, val, b.L, b.R, func(l, r AExpr) BExpr { return BNumLtEq{l, r} })
}
func (b BNumGtEq) TryReplace(varName string, val Value) (BExpr, bool) {
	return replaceNumCmp(varName, val, b.L, b.R, func(l, r AExpr) BExpr { return BNumGtEq{l, r} })
}
func (b BEnumIs) TryReplace(varName string, val Value) (BExpr, bool) {
	if varName != b.Var {
		return b, true
	}
	ev, ok := val.(EnumValue)
	if !ok {
		return b, false
	}
	return BLit{V: ev.Type == b.Type && ev.Tag == b.Tag}, true
}
