package lower

import (
	"fmt"
	"sort"
	"strings"

	"ccs/grammar"
	"ccs/internal/bisim"
	"ccs/internal/ccsctx"
	"ccs/internal/lts"
	"ccs/internal/vpctx"
	"ccs/internal/vpvalues"
)

// Result is the output of running the full ingestion → elaboration → LTS →
// bisimilarity pipeline over one source file, the shape cmd/ccs-cli and
// internal/lsp both render from.
type Result struct {
	Path    string
	Dialect grammar.Dialect
	CCS     *ccsctx.Context
	Values  *vpctx.Context // non-nil only when Dialect == grammar.VP
	Lts     *lts.Lts
	Bisim   *bisim.Relation
	BisimOK bool
}

// Pipeline parses path, elaborates it down to plain CCS, derives its LTS,
// and checks the LTS for self-bisimilarity (the all-nodes-covered sense
// Bisimilar reports, used by the CLI's default bisimilarity report).
func Pipeline(path string) (*Result, error) {
	ccsProg, vpProg, err := grammar.ParseFile(path)
	if err != nil {
		return nil, err
	}
	return pipelineFrom(path, ccsProg, vpProg)
}

// PipelineSource runs the same pipeline as Pipeline over in-memory source
// text rather than a file on disk, dispatching by path's extension. This is
// what internal/lsp runs over the document text it has read from disk.
func PipelineSource(path, source string) (*Result, error) {
	dialect, err := grammar.DialectOf(path)
	if err != nil {
		return nil, err
	}
	var ccsProg *grammar.CCSProgram
	var vpProg *grammar.VPProgram
	switch dialect {
	case grammar.CCS:
		ccsProg, err = grammar.ParseCCSString(path, source)
	default:
		vpProg, err = grammar.ParseVPString(path, source)
	}
	if err != nil {
		return nil, err
	}
	return pipelineFrom(path, ccsProg, vpProg)
}

func pipelineFrom(path string, ccsProg *grammar.CCSProgram, vpProg *grammar.VPProgram) (*Result, error) {
	res := &Result{Path: path}
	switch {
	case ccsProg != nil:
		res.Dialect = grammar.CCS
		ctx, err := CCS(ccsProg)
		if err != nil {
			return nil, err
		}
		res.CCS = ctx

	default:
		res.Dialect = grammar.VP
		vctx, err := VP(vpProg)
		if err != nil {
			return nil, err
		}
		ctx, err := vctx.ToCCS()
		if err != nil {
			return nil, err
		}
		res.Values = vctx
		res.CCS = ctx
	}

	return finish(res)
}

// FromContext drives the LTS-derivation and bisimilarity-check stages of
// the pipeline over an already-elaborated CCS context, for callers (the
// REPL) that build one line at a time rather than from a source file.
func FromContext(ctx *ccsctx.Context) (*Result, error) {
	return finish(&Result{Dialect: grammar.CCS, CCS: ctx})
}

func finish(res *Result) (*Result, error) {
	l, err := res.CCS.ToLTS()
	if err != nil {
		return nil, err
	}
	res.Lts = l
	res.Bisim, res.BisimOK = bisim.Bisimilar(l, l)
	return res, nil
}

// Stats is the state/action/transition summary of a derived Lts.
type Stats struct {
	States      int
	Actions     int
	Transitions int
}

// Summarize counts l's distinct nodes, distinct channel labels, and
// transitions.
func Summarize(l *lts.Lts) Stats {
	return Stats{
		States:      len(l.Nodes()),
		Actions:     len(l.Edges()),
		Transitions: l.Len(),
	}
}

// RenderProgram renders every binding in ctx as `fn NAME { BODY }`, one per
// line, sorted by name for reproducible output.
func RenderProgram(ctx *ccsctx.Context) string {
	names := make([]string, 0, len(ctx.Constants()))
	for name := range ctx.Constants() {
		names = append(names, name)
	}
	sort.Strings(names)
	var b strings.Builder
	for _, name := range names {
		fmt.Fprintf(&b, "fn %s { %s }\n", name, ctx.Constants()[name].String())
	}
	return b.String()
}

// RenderTransitions renders every transition in l as a (source, channel,
// target) row.
func RenderTransitions(l *lts.Lts) string {
	var b strings.Builder
	for _, t := range l.Transitions() {
		fmt.Fprintf(&b, "(%s, %s, %s)\n", t.Source, t.Channel, t.Target)
	}
	return b.String()
}

// RenderBisimulation renders every pair in r as `(p, "~"|"=", q)`, using
// "=" for structurally identical endpoints.
func RenderBisimulation(r *bisim.Relation) string {
	var b strings.Builder
	for _, pair := range r.Pairs() {
		op := "~"
		if pair.Left.Key() == pair.Right.Key() {
			op = "="
		}
		fmt.Fprintf(&b, "(%s, %s, %s)\n", pair.Left, op, pair.Right)
	}
	return b.String()
}

// RenderValues renders every type's inhabitants in ctx, one section per
// type, for the --values introspection flag.
func RenderValues(ctx *vpctx.Context) string {
	var b strings.Builder
	for _, ty := range ctx.Types() {
		fmt.Fprintf(&b, "-------- %s:\n", ty)
		vals, err := ctx.ValuesOf(ty)
		if err != nil {
			continue
		}
		for _, v := range vals {
			fmt.Fprintln(&b, renderValue(v))
		}
	}
	return b.String()
}

func renderValue(v vpvalues.Value) string { return v.String() }
