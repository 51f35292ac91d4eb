package vpprocess

import (
	"strings"

	"ccs/internal/ccsctx"
	cerr "ccs/internal/errors"
	"ccs/internal/process"
	"ccs/internal/vpvalues"
)

// ElabContext supplies everything ToCCS/GenConstants need from a CCS-VP
// name table: parameterised constant bodies, the finite value universe for
// Recv-binder enumeration, and the integer bounds AExpr evaluation checks
// against. Implemented by vpctx.Context; declared here so this package
// never imports its own context package (which must import this one).
type ElabContext interface {
	GetProcess(name string) ([]string, Process, bool)
	Values() []vpvalues.Value
	ValuesOf(ty string) ([]vpvalues.Value, error)
	vpvalues.NumBounds
}

func mangleName(name string, vals []vpvalues.Value) string {
	parts := make([]string, len(vals))
	for i, v := range vals {
		parts[i] = v.String()
	}
	if len(parts) == 0 {
		return name
	}
	return name + "#" + strings.Join(parts, "#")
}

// GenConstants walks p, elaborating every reachable parameterised Constant
// into a flat CCS binding in ccs keyed by its mangled name, recursing into
// freshly discovered bodies exactly once.
func GenConstants(p Process, ctx ElabContext, ccs *ccsctx.Context) error {
	switch n := p.(type) {
	case *Constant:
		vals := make([]vpvalues.Value, len(n.Args))
		for i, a := range n.Args {
			ev, err := a.Eval(ctx)
			if err != nil {
				return err
			}
			vals[i] = ev
		}
		params, body, ok := ctx.GetProcess(n.Name)
		if !ok {
			return cerr.New(cerr.UnknownConstant, "constant %q is not bound in this context", n.Name)
		}
		if len(params) != len(vals) {
			return cerr.New(cerr.TypeMismatch, "constant %q expects %d argument(s), got %d", n.Name, len(params), len(vals))
		}
		for i, param := range params {
			replaced, ok := body.TryReplace(param, vals[i])
			if !ok {
				return cerr.New(cerr.TypeMismatch, "argument %d to %q has the wrong type for parameter %q", i, n.Name, param)
			}
			body = replaced
		}

		mangled := mangleName(n.Name, vals)
		if _, already := ccs.GetProcess(mangled); already {
			return nil
		}
		ccsBody, err := ToCCS(body, ctx)
		if err != nil {
			return err
		}
		ccs.BindProcess(mangled, ccsBody)
		return GenConstants(body, ctx, ccs)

	case *Action:
		if n.Channel.Kind() == Recv && n.Channel.HasBind() {
			for _, val := range ctx.Values() {
				candidate, ok := n.Body.TryReplace(n.Channel.Bind(), val)
				if !ok {
					continue
				}
				if err := GenConstants(candidate, ctx, ccs); err != nil {
					return err
				}
			}
			return nil
		}
		return GenConstants(n.Body, ctx, ccs)

	case *Sum:
		for _, c := range n.Children {
			if err := GenConstants(c, ctx, ccs); err != nil {
				return err
			}
		}
		return nil

	case *Par:
		if err := GenConstants(n.Left, ctx, ccs); err != nil {
			return err
		}
		return GenConstants(n.Right, ctx, ccs)

	case *IfThen:
		ok, err := n.Guard.Eval(ctx)
		if err != nil {
			return err
		}
		if ok {
			return GenConstants(n.Body, ctx, ccs)
		}
		return nil

	case *Restriction:
		return GenConstants(n.Body, ctx, ccs)

	case *SubstitutionTerm:
		return GenConstants(n.Body, ctx, ccs)

	default:
		return nil
	}
}

// ToCCS lowers a CCS-VP term into a plain CCS term against ctx, enumerating
// the finite value universe at every value-binding Recv and at every
// restricted/substituted port name, exactly as GenConstants does for
// reachable constants.
func ToCCS(p Process, ctx ElabContext) (process.Process, error) {
	switch n := p.(type) {
	case *Constant:
		vals := make([]vpvalues.Value, len(n.Args))
		for i, a := range n.Args {
			ev, err := a.Eval(ctx)
			if err != nil {
				return nil, err
			}
			vals[i] = ev
		}
		return process.NewConstant(mangleName(n.Name, vals)), nil

	case *Action:
		body, err := ToCCS(n.Body, ctx)
		if err != nil {
			return nil, err
		}
		switch n.Channel.Kind() {
		case Tau:
			return process.NewAction(process.NewTau(), body), nil

		case Send:
			if !n.Channel.HasValue() {
				return process.NewAction(process.NewSend(n.Channel.Name()), body), nil
			}
			ev, err := n.Channel.Value().Eval(ctx)
			if err != nil {
				return nil, err
			}
			return process.NewAction(process.NewSend(ev.Mangle(n.Channel.Name())), body), nil

		case Recv:
			if !n.Channel.HasBind() {
				return process.NewAction(process.NewRecv(n.Channel.Name()), body), nil
			}
			var branches []process.Process
			for _, val := range ctx.Values() {
				candidate, ok := n.Body.TryReplace(n.Channel.Bind(), val)
				if !ok {
					continue
				}
				cbody, err := ToCCS(candidate, ctx)
				if err != nil {
					return nil, err
				}
				branches = append(branches, process.NewAction(process.NewRecv(val.Mangle(n.Channel.Name())), cbody))
			}
			return process.NewSum(branches), nil
		}
		return nil, cerr.New(cerr.InvalidType, "unreachable channel kind")

	case *Sum:
		var kept []process.Process
		for _, c := range n.Children {
			cp, err := ToCCS(c, ctx)
			if err != nil {
				return nil, err
			}
			if process.IsNil(cp) {
				continue
			}
			kept = append(kept, cp)
		}
		return process.NewSum(kept), nil

	case *Par:
		l, err := ToCCS(n.Left, ctx)
		if err != nil {
			return nil, err
		}
		r, err := ToCCS(n.Right, ctx)
		if err != nil {
			return nil, err
		}
		return process.NewPar(l, r), nil

	case *IfThen:
		ok, err := n.Guard.Eval(ctx)
		if err != nil {
			return nil, err
		}
		if !ok {
			return process.Nil(), nil
		}
		return ToCCS(n.Body, ctx)

	case *Restriction:
		body, err := ToCCS(n.Body, ctx)
		if err != nil {
			return nil, err
		}
		names, err := expandNames(ctx, n.Names)
		if err != nil {
			return nil, err
		}
		return process.NewRestriction(body, names), nil

	case *SubstitutionTerm:
		body, err := ToCCS(n.Body, ctx)
		if err != nil {
			return nil, err
		}
		var pairs []process.SubstPair
		for _, pair := range n.Pairs {
			news, err := expandNames(ctx, []string{pair.New})
			if err != nil {
				return nil, err
			}
			olds, err := expandNames(ctx, []string{pair.Old})
			if err != nil {
				return nil, err
			}
			for i := range news {
				pairs = append(pairs, process.SubstPair{New: news[i], Old: olds[i]})
			}
		}
		subst, err := process.NewSubstitution(pairs)
		if err != nil {
			return nil, cerr.New(cerr.ReservedName, "%s", err)
		}
		return process.NewSubstitutionTerm(body, subst), nil
	}
	return nil, cerr.New(cerr.InvalidType, "unreachable process variant")
}

// expandNames mangles every port name in names against every value in
// ctx's universe, producing the set of plain CCS port names that name
// denotes once values are erased.
func expandNames(ctx ElabContext, names []string) ([]string, error) {
	var out []string
	for _, name := range names {
		for _, v := range ctx.Values() {
			out = append(out, v.Mangle(name))
		}
	}
	return out, nil
}
