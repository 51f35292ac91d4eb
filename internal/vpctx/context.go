// Package vpctx binds CCS-VP's richer name table: parameterised constant
// definitions, enum and alias type declarations, integer bounds, and the
// per-type value universe those declarations induce. Context.ToCCS drives
// elaboration down to a plain ccsctx.Context.
package vpctx

import (
	"sort"

	"ccs/internal/ccsctx"
	cerr "ccs/internal/errors"
	"ccs/internal/vpprocess"
	"ccs/internal/vpvalues"
)

const (
	intType  = "int"
	boolType = "bool"
)

const defaultMain = "main"
const defaultBoundsMin, defaultBoundsMax = 0, 1

// EnumTag is one inhabitant shape of an enum type: a tag name plus the
// ordered list of field types it carries.
type EnumTag struct {
	Tag    string
	Fields []string
}

type constDef struct {
	Params []string
	Body   vpprocess.Process
}

// Context is the CCS-VP name table built while walking a parsed program's
// top-level statements.
type Context struct {
	mainName  string
	constants map[string]constDef
	enums     map[string][]EnumTag
	aliases   map[string]string
	boundsMin int
	boundsMax int
	cache     map[string][]vpvalues.Value
}

// New returns an empty Context with default bounds [0, 1) and main "main".
func New() *Context {
	return &Context{
		mainName:  defaultMain,
		constants: map[string]constDef{},
		enums:     map[string][]EnumTag{},
		aliases:   map[string]string{},
		boundsMin: defaultBoundsMin,
		boundsMax: defaultBoundsMax,
	}
}

func (c *Context) BindProcess(name string, params []string, body vpprocess.Process) {
	c.constants[name] = constDef{Params: params, Body: body}
	c.cache = nil
}

func (c *Context) BindEnum(ty string, tags []EnumTag) {
	c.enums[ty] = tags
	c.cache = nil
}

func (c *Context) BindAlias(alias, ty string) {
	c.aliases[alias] = ty
	c.cache = nil
}

// SetBounds sets the half-open integer domain [min, max) used by
// "int"-typed values and expressions (the `#![set_bounds(min, max)]`
// pragma).
func (c *Context) SetBounds(min, max int) {
	c.boundsMin, c.boundsMax = min, max
	c.cache = nil
}

func (c *Context) SetMain(name string) { c.mainName = name }
func (c *Context) MainName() string    { return c.mainName }

// Bounds implements vpvalues.NumBounds.
func (c *Context) Bounds() (int, int) { return c.boundsMin, c.boundsMax }

// GetProcess implements vpprocess.ElabContext.
func (c *Context) GetProcess(name string) ([]string, vpprocess.Process, bool) {
	d, ok := c.constants[name]
	if !ok {
		return nil, nil, false
	}
	return d.Params, d.Body, true
}

// Types lists every type name with a value universe: the two builtins plus
// every declared enum and alias.
func (c *Context) Types() []string {
	out := []string{intType, boolType}
	for ty := range c.enums {
		out = append(out, ty)
	}
	for alias := range c.aliases {
		out = append(out, alias)
	}
	sort.Strings(out)
	return out
}

// ValuesOf implements vpprocess.ElabContext: the finite set of inhabitants
// of ty, computed on demand and memoised. Raises InvalidType if ty names
// neither a builtin, an alias, nor a declared enum.
func (c *Context) ValuesOf(ty string) ([]vpvalues.Value, error) {
	if c.cache == nil {
		c.cache = map[string][]vpvalues.Value{}
	}
	if cached, ok := c.cache[ty]; ok {
		return cached, nil
	}
	vals, err := c.valuesOfUncached(ty)
	if err != nil {
		return nil, err
	}
	c.cache[ty] = vals
	return vals, nil
}

func (c *Context) valuesOfUncached(ty string) ([]vpvalues.Value, error) {
	if aliased, ok := c.aliases[ty]; ok {
		return c.ValuesOf(aliased)
	}
	switch ty {
	case boolType:
		return []vpvalues.Value{
			vpvalues.BExprValue{Expr: vpvalues.BLit{V: true}},
			vpvalues.BExprValue{Expr: vpvalues.BLit{V: false}},
		}, nil
	case intType:
		out := make([]vpvalues.Value, 0, c.boundsMax-c.boundsMin)
		for n := c.boundsMin; n < c.boundsMax; n++ {
			out = append(out, vpvalues.AExprValue{Expr: vpvalues.ALit{N: n}})
		}
		return out, nil
	}
	tags, ok := c.enums[ty]
	if !ok {
		return nil, cerr.New(cerr.InvalidType, "%q is not a valid type", ty)
	}
	var out []vpvalues.Value
	for _, tag := range tags {
		if len(tag.Fields) == 0 {
			out = append(out, vpvalues.EnumValue{Type: ty, Tag: tag.Tag})
			continue
		}
		fieldVals := make([][]vpvalues.Value, len(tag.Fields))
		for i, f := range tag.Fields {
			fv, err := c.ValuesOf(f)
			if err != nil {
				return nil, err
			}
			fieldVals[i] = fv
		}
		for _, perm := range permute(fieldVals) {
			out = append(out, vpvalues.EnumValue{Type: ty, Tag: tag.Tag, Vals: perm})
		}
	}
	return out, nil
}

// Values implements vpprocess.ElabContext: the union of every type's value
// universe, used to enumerate Recv binders and restricted/substituted
// port names.
func (c *Context) Values() []vpvalues.Value {
	var out []vpvalues.Value
	for _, ty := range c.Types() {
		vals, err := c.ValuesOf(ty)
		if err != nil {
			continue
		}
		out = append(out, vals...)
	}
	return out
}

// ToCCS elaborates the entry constant and every constant it transitively
// references into a plain ccsctx.Context, raising MainMissing if the entry
// point is unbound.
func (c *Context) ToCCS() (*ccsctx.Context, error) {
	if _, ok := c.constants[c.mainName]; !ok {
		return nil, cerr.New(cerr.MainMissing, "no definition named %q; bind one or set #![set_main(...)]", c.mainName)
	}
	ccs := ccsctx.New()
	ccs.SetMain(c.mainName)
	root := vpprocess.NewConstant(c.mainName, nil)
	if err := vpprocess.GenConstants(root, c, ccs); err != nil {
		return nil, err
	}
	return ccs, nil
}

// permute returns the Cartesian product of vals, preserving each inner
// slice's element order.
func permute(vals [][]vpvalues.Value) [][]vpvalues.Value {
	if len(vals) == 0 {
		return [][]vpvalues.Value{{}}
	}
	var out [][]vpvalues.Value
	rest := permute(vals[1:])
	for _, v := range vals[0] {
		for _, r := range rest {
			combo := append([]vpvalues.Value{v}, r...)
			out = append(out, combo)
		}
	}
	return out
}
