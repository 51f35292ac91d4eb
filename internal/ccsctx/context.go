// Package ccsctx binds constant names to CCS process terms and drives LTS
// derivation from the designated entry constant.
package ccsctx

import (
	cerr "ccs/internal/errors"
	"ccs/internal/lts"
	"ccs/internal/process"
)

const defaultMain = "main"

// Context is a flat name table: every top-level `fn NAME { ... }`
// definition becomes one entry. It implements process.ConstantLookup so
// the process package can unfold Constants without importing this package.
type Context struct {
	constants map[string]process.Process
	mainName  string
}

// New returns an empty Context whose entry point is named "main" unless
// overridden by SetMain.
func New() *Context {
	return &Context{constants: map[string]process.Process{}, mainName: defaultMain}
}

// BindProcess records name as a definition for p, overwriting any prior
// binding of the same name.
func (c *Context) BindProcess(name string, p process.Process) {
	c.constants[name] = p
}

// SetMain overrides the entry constant's name (the `#![set_main(name)]`
// pragma); the default is "main".
func (c *Context) SetMain(name string) { c.mainName = name }

// MainName returns the current entry constant name.
func (c *Context) MainName() string { return c.mainName }

// GetProcess implements process.ConstantLookup.
func (c *Context) GetProcess(name string) (process.Process, bool) {
	p, ok := c.constants[name]
	return p, ok
}

// NameOf implements process.ConstantLookup: the first bound name whose
// process is structurally equal to p, if any. Structurally equal
// definitions are possible but rare; ties are broken arbitrarily by Go's
// unordered map iteration.
func (c *Context) NameOf(p process.Process) (string, bool) {
	for name, bound := range c.constants {
		if process.Equal(bound, p) {
			return name, true
		}
	}
	return "", false
}

// Constants returns the full name table.
func (c *Context) Constants() map[string]process.Process { return c.constants }

// ToLTS derives the LTS rooted at the entry constant, raising MainMissing
// if it is not bound.
func (c *Context) ToLTS() (*lts.Lts, error) {
	main, ok := c.GetProcess(c.mainName)
	if !ok {
		return nil, cerr.New(cerr.MainMissing, "no definition named %q; bind one or set #![set_main(...)]", c.mainName)
	}
	return lts.Derive(main, c)
}
