// Package repl is a line-at-a-time interpreter over CCS and CCS-VP process
// terms: each line is wrapped as the body of `fn main { ... }` and run
// through the same parse → elaborate → derive pipeline as the CLI.
package repl

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"ccs/grammar"
	"ccs/internal/ccsctx"
	"ccs/internal/lower"
)

const prompt = ">> "

// Start runs the REPL loop over in, writing prompts and output to out.
// ":ccs" and ":vp" switch dialect (default ccs); ":quit" or an EOF ends the
// loop.
func Start(in io.Reader, out io.Writer) {
	scanner := bufio.NewScanner(in)
	dialect := grammar.CCS

	for {
		fmt.Fprint(out, prompt)
		if !scanner.Scan() {
			return
		}
		line := strings.TrimSpace(scanner.Text())
		switch line {
		case "":
			continue
		case ":quit", ":q":
			return
		case ":ccs":
			dialect = grammar.CCS
			continue
		case ":vp":
			dialect = grammar.VP
			continue
		}

		if err := evalLine(out, dialect, line); err != nil {
			fmt.Fprintln(out, err)
		}
	}
}

func evalLine(out io.Writer, dialect grammar.Dialect, line string) error {
	source := "fn main { " + line + " }"

	var ctx *ccsctx.Context
	switch dialect {
	case grammar.CCS:
		prog, err := grammar.ParseCCSString("<repl>", source)
		if err != nil {
			return err
		}
		ctx, err = lower.CCS(prog)
		if err != nil {
			return err
		}
	default:
		prog, err := grammar.ParseVPString("<repl>", source)
		if err != nil {
			return err
		}
		vctx, err := lower.VP(prog)
		if err != nil {
			return err
		}
		ctx, err = vctx.ToCCS()
		if err != nil {
			return err
		}
	}

	res, err := lower.FromContext(ctx)
	if err != nil {
		return err
	}
	fmt.Fprint(out, lower.RenderTransitions(res.Lts))
	return nil
}
