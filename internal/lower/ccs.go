// Package lower turns grammar parse trees into term-algebra values: plain
// CCS trees into process.Process/ccsctx.Context, and CCS-VP trees into
// vpprocess.Process/vpctx.Context.
package lower

import (
	"ccs/grammar"
	"ccs/internal/ccsctx"
	cerr "ccs/internal/errors"
	"ccs/internal/process"
)

// CCS lowers a parsed plain-CCS program into a Context ready for
// ToLTS.
func CCS(prog *grammar.CCSProgram) (*ccsctx.Context, error) {
	ctx := ccsctx.New()
	for _, def := range prog.Defs {
		body, err := ccsProcess(def.Body)
		if err != nil {
			return nil, err
		}
		ctx.BindProcess(def.Name, body)
	}
	return ctx, nil
}

func ccsChannel(n *grammar.CCSChannelNode) process.Channel {
	switch {
	case n.Tau:
		return process.NewTau()
	case n.Send != "":
		return process.NewSend(n.Send)
	default:
		return process.NewRecv(n.Recv)
	}
}

func ccsProcess(n *grammar.CCSProcessNode) (process.Process, error) {
	switch {
	case n.NilKw:
		return process.Nil(), nil
	case n.Action != nil:
		body, err := ccsProcess(n.Action.Body)
		if err != nil {
			return nil, err
		}
		return process.NewAction(ccsChannel(n.Action.Channel), body), nil
	case n.Const != nil:
		return process.NewConstant(n.Const.Name), nil
	case n.Paren != nil:
		return ccsParenBody(n.Paren)
	}
	return process.Nil(), nil
}

func ccsParenBody(n *grammar.CCSParenBody) (process.Process, error) {
	switch {
	case len(n.Plus) > 0:
		children := make([]process.Process, 0, len(n.Plus)+1)
		left, err := ccsProcess(n.Left)
		if err != nil {
			return nil, err
		}
		children = append(children, left)
		for _, p := range n.Plus {
			c, err := ccsProcess(p)
			if err != nil {
				return nil, err
			}
			children = append(children, c)
		}
		return process.NewSum(children), nil

	case n.Pipe != nil:
		left, err := ccsProcess(n.Left)
		if err != nil {
			return nil, err
		}
		right, err := ccsProcess(n.Pipe)
		if err != nil {
			return nil, err
		}
		return process.NewPar(left, right), nil

	case n.Restrict != nil:
		body, err := ccsProcess(n.Left)
		if err != nil {
			return nil, err
		}
		return process.NewRestriction(body, n.Restrict), nil

	case n.Subst != nil:
		body, err := ccsProcess(n.Left)
		if err != nil {
			return nil, err
		}
		pairs := make([]process.SubstPair, len(n.Subst))
		for i, p := range n.Subst {
			pairs[i] = process.SubstPair{New: p.New, Old: p.Old}
		}
		subst, err := process.NewSubstitution(pairs)
		if err != nil {
			return nil, cerr.New(cerr.ReservedName, "%s", err)
		}
		return process.NewSubstitutionTerm(body, subst), nil

	case n.Left != nil:
		return ccsProcess(n.Left)

	default:
		return process.Nil(), nil
	}
}
