package vpvalues

import "strings"

// Value is anything that can flow over a value-carrying channel: a number,
// a boolean, a tagged enum inhabitant, or an unresolved variable reference
// awaiting substitution.
type Value interface {
	String() string
	// Eval reduces AExpr/BExpr payloads to literals; Enum and Var values
	// are returned unchanged (they have no further reduction).
	Eval(ctx NumBounds) (Value, error)
	// TryReplace substitutes every free occurrence of varName with val,
	// reporting false on a type mismatch.
	TryReplace(varName string, val Value) (Value, bool)
	// Mangle appends this value's canonical textual form to prefix,
	// separated by "#", producing the elaborated constant/channel name
	// CCS-VP lowers into plain CCS.
	Mangle(prefix string) string
}

type AExprValue struct{ Expr AExpr }
type BExprValue struct{ Expr BExpr }
type EnumValue struct {
	Type string
	Tag  string
	Vals []Value
}
type VarValue struct{ Name string }

func (v AExprValue) String() string { return v.Expr.String() }
func (v BExprValue) String() string { return v.Expr.String() }
func (v VarValue) String() string   { return v.Name }
func (v EnumValue) String() string {
	if len(v.Vals) == 0 {
		return v.Type + "::" + v.Tag
	}
	parts := make([]string, len(v.Vals))
	for i, inner := range v.Vals {
		parts[i] = inner.String()
	}
	return v.Type + "::" + v.Tag + "(" + strings.Join(parts, ",") + ")"
}

func (v AExprValue) Eval(ctx NumBounds) (Value, error) {
	n, err := v.Expr.Eval(ctx)
	if err != nil {
		return nil, err
	}
	return AExprValue{Expr: ALit{N: n}}, nil
}
func (v BExprValue) Eval(ctx NumBounds) (Value, error) {
	b, err := v.Expr.Eval(ctx)
	if err != nil {
		return nil, err
	}
	return BExprValue{Expr: BLit{V: b}}, nil
}
func (v EnumValue) Eval(ctx NumBounds) (Value, error) { return v, nil }
func (v VarValue) Eval(ctx NumBounds) (Value, error)  { return v, nil }

func (v AExprValue) TryReplace(varName string, val Value) (Value, bool) {
	e, ok := v.Expr.TryReplace(varName, val)
	if !ok {
		return nil, false
	}
	return AExprValue{Expr: e}, true
}
func (v BExprValue) TryReplace(varName string, val Value) (Value, bool) {
	e, ok := v.Expr.TryReplace(varName, val)
	if !ok {
		return nil, false
	}
	return BExprValue{Expr: e}, true
}
func (v EnumValue) TryReplace(varName string, val Value) (Value, bool) {
	vals := make([]Value, len(v.Vals))
	for i, inner := range v.Vals {
		nv, ok := inner.TryReplace(varName, val)
		if !ok {
			return nil, false
		}
		vals[i] = nv
	}
	return EnumValue{Type: v.Type, Tag: v.Tag, Vals: vals}, true
}
func (v VarValue) TryReplace(varName string, val Value) (Value, bool) {
	if varName == v.Name {
		return val, true
	}
	return v, true
}

func (v AExprValue) Mangle(prefix string) string { return prefix + "#" + v.Expr.String() }
func (v BExprValue) Mangle(prefix string) string { return prefix + "#" + v.Expr.String() }
func (v VarValue) Mangle(prefix string) string   { return prefix + "#" + v.Name }
func (v EnumValue) Mangle(prefix string) string  { return prefix + "#" + v.String() }
