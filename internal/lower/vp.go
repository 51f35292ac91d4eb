package lower

import (
	"strconv"

	"ccs/grammar"
	cerr "ccs/internal/errors"
	"ccs/internal/process"
	"ccs/internal/vpctx"
	"ccs/internal/vpprocess"
	"ccs/internal/vpvalues"
)

// VP lowers a parsed CCS-VP program into a Context ready for ToCCS.
func VP(prog *grammar.VPProgram) (*vpctx.Context, error) {
	ctx := vpctx.New()
	for _, item := range prog.Items {
		switch {
		case item.Pragma != nil:
			if err := applyPragma(ctx, item.Pragma); err != nil {
				return nil, err
			}
		case item.Enum != nil:
			ctx.BindEnum(item.Enum.Name, enumTags(item.Enum.Tags))
		case item.Alias != nil:
			ctx.BindAlias(item.Alias.Alias, item.Alias.Type)
		case item.Const != nil:
			body, err := vpProcess(item.Const.Body)
			if err != nil {
				return nil, err
			}
			ctx.BindProcess(item.Const.Name, item.Const.Params, body)
		}
	}
	return ctx, nil
}

func enumTags(in []*grammar.VPEnumTag) []vpctx.EnumTag {
	out := make([]vpctx.EnumTag, len(in))
	for i, t := range in {
		out[i] = vpctx.EnumTag{Tag: t.Name, Fields: t.Fields}
	}
	return out
}

func applyPragma(ctx *vpctx.Context, p *grammar.VPPragma) error {
	switch p.Name {
	case "set_main":
		if len(p.Args) != 1 || p.Args[0].Ident == nil {
			return cerr.New(cerr.Parse, "set_main expects a single identifier argument")
		}
		ctx.SetMain(*p.Args[0].Ident)
		return nil
	case "set_bounds":
		if len(p.Args) != 2 || p.Args[0].Int == nil || p.Args[1].Int == nil {
			return cerr.New(cerr.Parse, "set_bounds expects two integer arguments")
		}
		min, err := strconv.Atoi(*p.Args[0].Int)
		if err != nil {
			return cerr.New(cerr.IntegerOutOfBounds, "malformed bound %q", *p.Args[0].Int)
		}
		max, err := strconv.Atoi(*p.Args[1].Int)
		if err != nil {
			return cerr.New(cerr.IntegerOutOfBounds, "malformed bound %q", *p.Args[1].Int)
		}
		ctx.SetBounds(min, max)
		return nil
	default:
		return cerr.New(cerr.Parse, "unknown pragma %q", p.Name)
	}
}

func vpChannel(n *grammar.VPChannelNode) (vpprocess.Channel, error) {
	switch {
	case n.Tau:
		return vpprocess.NewTau(), nil
	case n.SendName != "":
		if n.SendVal == nil {
			return vpprocess.NewSend(n.SendName, nil), nil
		}
		v, err := Value(n.SendVal)
		if err != nil {
			return vpprocess.Channel{}, err
		}
		return vpprocess.NewSend(n.SendName, v), nil
	default:
		bind := ""
		if n.RecvVar != nil {
			bind = *n.RecvVar
		}
		return vpprocess.NewRecv(n.RecvName, bind), nil
	}
}

func vpProcess(n *grammar.VPProcessNode) (vpprocess.Process, error) {
	switch {
	case n.NilKw:
		return vpprocess.Nil(), nil

	case n.IfThen != nil:
		guard, err := BExpr(n.IfThen.Guard)
		if err != nil {
			return nil, err
		}
		then, err := vpProcess(n.IfThen.Then)
		if err != nil {
			return nil, err
		}
		if n.IfThen.Else == nil {
			return vpprocess.NewIfThen(guard, then), nil
		}
		els, err := vpProcess(n.IfThen.Else)
		if err != nil {
			return nil, err
		}
		return vpprocess.NewSum([]vpprocess.Process{
			vpprocess.NewIfThen(guard, then),
			vpprocess.NewIfThen(vpvalues.BNot{E: guard}, els),
		}), nil

	case n.Action != nil:
		ch, err := vpChannel(n.Action.Channel)
		if err != nil {
			return nil, err
		}
		body, err := vpProcess(n.Action.Body)
		if err != nil {
			return nil, err
		}
		return vpprocess.NewAction(ch, body), nil

	case n.Paren != nil:
		return vpParenBody(n.Paren)

	case n.Const != nil:
		return vpConstRef(n.Const)
	}
	return vpprocess.Nil(), nil
}

func vpConstRef(n *grammar.VPConstRefNode) (vpprocess.Process, error) {
	vals := make([]vpvalues.Value, len(n.Args))
	for i, a := range n.Args {
		v, err := Value(a)
		if err != nil {
			return nil, err
		}
		vals[i] = v
	}
	return vpprocess.NewConstant(n.Name, vals), nil
}

func vpParenBody(n *grammar.VPParenBody) (vpprocess.Process, error) {
	switch {
	case len(n.Plus) > 0:
		children := make([]vpprocess.Process, 0, len(n.Plus)+1)
		left, err := vpProcess(n.Left)
		if err != nil {
			return nil, err
		}
		children = append(children, left)
		for _, p := range n.Plus {
			c, err := vpProcess(p)
			if err != nil {
				return nil, err
			}
			children = append(children, c)
		}
		return vpprocess.NewSum(children), nil

	case n.Pipe != nil:
		left, err := vpProcess(n.Left)
		if err != nil {
			return nil, err
		}
		right, err := vpProcess(n.Pipe)
		if err != nil {
			return nil, err
		}
		return vpprocess.NewPar(left, right), nil

	case n.Restrict != nil:
		body, err := vpProcess(n.Left)
		if err != nil {
			return nil, err
		}
		return vpprocess.NewRestriction(body, n.Restrict), nil

	case n.Subst != nil:
		body, err := vpProcess(n.Left)
		if err != nil {
			return nil, err
		}
		pairs := make([]process.SubstPair, len(n.Subst))
		for i, p := range n.Subst {
			pairs[i] = process.SubstPair{New: p.New, Old: p.Old}
		}
		return vpprocess.NewSubstitutionTerm(body, pairs), nil

	case n.Left != nil:
		return vpProcess(n.Left)

	default:
		return vpprocess.Nil(), nil
	}
}
