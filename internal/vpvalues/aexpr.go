package vpvalues

import (
	"fmt"

	cerr "ccs/internal/errors"
)

// NumBounds supplies the half-open integer range [min, max) every evaluated
// AExpr must fall within (the `#![set_bounds(min, max)]` pragma).
type NumBounds interface {
	Bounds() (min, max int)
}

// AExpr is an arithmetic expression over bounded integers.
type AExpr interface {
	String() string
	// Eval reduces the expression to a literal, raising UnboundVariable if
	// a free Var remains and IntegerOutOfBounds if the result falls
	// outside ctx's bounds.
	Eval(ctx NumBounds) (int, error)
	// TryReplace substitutes every free occurrence of var with val in
	// place where val itself is an AExpr, reporting false on a type
	// mismatch (val is not numeric).
	TryReplace(varName string, val Value) (AExpr, bool)
}

type AVar struct{ Name string }
type ALit struct{ N int }
type AAdd struct{ L, R AExpr }
type ASub struct{ L, R AExpr }
type AMul struct{ L, R AExpr }
type ADiv struct{ L, R AExpr }

func (a AVar) String() string { return a.Name }
func (a ALit) String() string { return fmt.Sprintf("%d", a.N) }
func (a AAdd) String() string { return fmt.Sprintf("(%s + %s)", a.L, a.R) }
func (a ASub) String() string { return fmt.Sprintf("(%s - %s)", a.L, a.R) }
func (a AMul) String() string { return fmt.Sprintf("(%s * %s)", a.L, a.R) }
func (a ADiv) String() string { return fmt.Sprintf("(%s / %s)", a.L, a.R) }

func (a AVar) Eval(ctx NumBounds) (int, error) {
	return 0, cerr.New(cerr.UnboundVariable, "free variable %q found in expression", a.Name)
}
func (a ALit) Eval(ctx NumBounds) (int, error) { return checkBounds(ctx, a.N) }

func evalBinary(ctx NumBounds, l, r AExpr, op func(a, b int) int) (int, error) {
	lv, err := l.Eval(ctx)
	if err != nil {
		return 0, err
	}
	rv, err := r.Eval(ctx)
	if err != nil {
		return 0, err
	}
	return checkBounds(ctx, op(lv, rv))
}

func (a AAdd) Eval(ctx NumBounds) (int, error) {
	return evalBinary(ctx, a.L, a.R, func(x, y int) int { return x + y })
}
func (a ASub) Eval(ctx NumBounds) (int, error) {
	return evalBinary(ctx, a.L, a.R, func(x, y int) int { return x - y })
}
func (a AMul) Eval(ctx NumBounds) (int, error) {
	return evalBinary(ctx, a.L, a.R, func(x, y int) int { return x * y })
}
func (a ADiv) Eval(ctx NumBounds) (int, error) {
	lv, err := a.L.Eval(ctx)
	if err != nil {
		return 0, err
	}
	rv, err := a.R.Eval(ctx)
	if err != nil {
		return 0, err
	}
	if rv == 0 {
		return 0, cerr.New(cerr.IntegerOutOfBounds, "division by zero in expression %s", a)
	}
	return checkBounds(ctx, lv/rv)
}

func checkBounds(ctx NumBounds, n int) (int, error) {
	min, max := ctx.Bounds()
	if n < min || n >= max {
		return 0, cerr.New(cerr.IntegerOutOfBounds, "value %d outside bounds [%d, %d)", n, min, max)
	}
	return n, nil
}

func (a AVar) TryReplace(varName string, val Value) (AExpr, bool) {
	if varName != a.Name {
		return a, true
	}
	av, ok := val.(AExprValue)
	if !ok {
		return a, false
	}
	return av.Expr, true
}
func (a ALit) TryReplace(varName string, val Value) (AExpr, bool) { return a, true }

func replaceBinary(varName string, val Value, l, r AExpr, rebuild func(l, r AExpr) AExpr) (AExpr, bool) {
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

func (a AAdd) TryReplace(varName string, val Value) (AExpr, bool) {
	return replaceBinary(varName, val, a.L, a.R, func(l, r AExpr) AExpr { return AAdd{l, r} })
}
func (a ASub) TryReplace(varName string, val Value) (AExpr, bool) {
	return replaceBinary(varName, val, a.L, a.R, func(l, r AExpr) AExpr { return ASub{l, r} })
}
func (a AMul) TryReplace(varName string, val Value) (AExpr, bool) {
	return replaceBinary(varName, val, a.L, a.R, func(l, r AExpr) AExpr { return AMul{l, r} })
}
func (a ADiv) TryReplace(varName string, val Value) (AExpr, bool) {
	return replaceBinary(varName, val, a.L, a.R, func(l, r AExpr) AExpr { return ADiv{l, r} })
}
