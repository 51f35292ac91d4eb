package grammar

import (
	"fmt"
	"os"

	"github.com/alecthomas/participle/v2"

	cerr "ccs/internal/errors"
)

// VPProgram is a parsed CCS-VP source file: pragmas, enum and alias
// declarations, and parameterised constant definitions, in source order.
type VPProgram struct {
	Items []*VPItem `@@*`
}

type VPItem struct {
	Pragma *VPPragma   `  @@`
	Enum   *VPEnumDef  `| @@`
	Alias  *VPAliasDef `| @@`
	Const  *VPConstDef `| @@`
}

// VPPragma is a `#![name(args, ...)]` directive, e.g. set_main/set_bounds.
type VPPragma struct {
	Name string         `"#" "!" "[" @Ident "("`
	Args []*VPPragmaArg `[ @@ { "," @@ } ] ")" "]"`
}

type VPPragmaArg struct {
	Ident *string `  @Ident`
	Int   *string `| @Integer`
}

type VPEnumDef struct {
	Name string       `"enum" @Ident "{"`
	Tags []*VPEnumTag `@@ { "," @@ } "}"`
}

type VPEnumTag struct {
	Name   string   `@Ident`
	Fields []string `[ "(" @Ident { "," @Ident } ")" ]`
}

type VPAliasDef struct {
	Alias string `"type" @Ident "="`
	Type  string `@Ident ";"`
}

type VPConstDef struct {
	Name   string          `"fn" @Ident`
	Params []string        `[ "(" [ @Ident { "," @Ident } ] ")" ]`
	Body   *VPProcessNode  `"{" @@ "}"`
}

// VPProcessNode is one parsed CCS-VP process term.
type VPProcessNode struct {
	NilKw  bool             `  @"NIL"`
	IfThen *VPIfThenNode    `| @@`
	Action *VPActionNode    `| @@`
	Paren  *VPParenBody     `| "(" @@ ")"`
	Const  *VPConstRefNode  `| @@`
}

type VPIfThenNode struct {
	Guard *VPOrExpr      `"if" @@ "then" "{"`
	Then  *VPProcessNode `@@ "}"`
	Else  *VPProcessNode `[ "else" "{" @@ "}" ]`
}

type VPConstRefNode struct {
	Name string      `@Ident`
	Args []*VPOrExpr `[ "(" [ @@ { "," @@ } ] ")" ]`
}

// VPChannelNode is a value-passing port: a bare/valued send, a
// bare/binding receive, or tau.
type VPChannelNode struct {
	Tau      bool        `  @"tau"`
	SendName string      `| @Ident "!"`
	SendVal  *VPOrExpr   `  [ "(" @@ ")" ]`
	RecvName string      `| @Ident "?"`
	RecvVar  *string     `  [ "(" @Ident ")" ]`
}

type VPActionNode struct {
	Channel *VPChannelNode `@@ ";"`
	Body    *VPProcessNode `@@`
}

// VPParenBody mirrors CCSParenBody for the value-passing process algebra.
type VPParenBody struct {
	Left     *VPProcessNode   `@@?`
	Plus     []*VPProcessNode `{ "+" @@ }`
	Pipe     *VPProcessNode   `[ "|" @@ ]`
	Restrict []string         `[ "\\" "{" @Ident { "," @Ident } "}" ]`
	Subst    []*VPSubstPair   `[ "[" @@ { "," @@ } "]" ]`
}

type VPSubstPair struct {
	New string `@Ident "/"`
	Old string `@Ident`
}

// Expression grammar, standard precedence climbing: Or > And > Not > Cmp
// (==, !=, <, >, <=, >=, or the enum-equality "is") > Add/Sub > Mul/Div >
// Atom. A value argument or send payload may land at any level; package
// lower decides whether the resulting tree denotes an AExpr, a BExpr, or a
// bare value by its shape.

type VPOrExpr struct {
	Left *VPAndExpr   `@@`
	Rest []*VPAndExpr `{ "||" @@ }`
}

type VPAndExpr struct {
	Left *VPNotExpr   `@@`
	Rest []*VPNotExpr `{ "&&" @@ }`
}

type VPNotExpr struct {
	Not     bool       `[ @"!" ]`
	Operand *VPCmpExpr `@@`
}

type VPCmpExpr struct {
	Left  *VPAddExpr    `@@`
	Op    *string       `[ ( @("==" | "!=" | "<=" | ">=" | "<" | ">") `
	Right *VPAddExpr    `    @@ )`
	Is    *VPEnumTagRef `  | "is" @@ ]`
}

// VPEnumTagRef names a bare enum tag on the right of "is", e.g. Color::Red.
type VPEnumTagRef struct {
	Type string `@Ident "::"`
	Tag  string `@Ident`
}

type VPAddExpr struct {
	Left *VPMulExpr  `@@`
	Rest []*VPAddOp  `{ @@ }`
}

type VPAddOp struct {
	Operator string      `@("+" | "-")`
	Right    *VPMulExpr  `@@`
}

type VPMulExpr struct {
	Left *VPAtom    `@@`
	Rest []*VPMulOp `{ @@ }`
}

type VPMulOp struct {
	Operator string   `@("*" | "/")`
	Right    *VPAtom  `@@`
}

type VPAtom struct {
	True     bool            `(  @"true"`
	False    bool            ` | @"false" )`
	Int      *string         `| @Integer`
	EnumCtor *VPEnumCtorNode `| @@`
	Ident    *string         `| @Ident`
	Paren    *VPOrExpr       `| "(" @@ ")"`
}

type VPEnumCtorNode struct {
	Type string      `@Ident "::"`
	Tag  string      `@Ident`
	Args []*VPOrExpr `[ "(" @@ { "," @@ } ")" ]`
}

func buildVPParser() (*participle.Parser[VPProgram], error) {
	return participle.Build[VPProgram](
		participle.Lexer(VPLexer),
		participle.Elide("Whitespace", "Comment"),
		participle.UseLookahead(6),
	)
}

// ParseVPString parses CCS-VP source held in memory.
func ParseVPString(sourceName, source string) (*VPProgram, error) {
	parser, err := buildVPParser()
	if err != nil {
		return nil, fmt.Errorf("building CCS-VP parser: %w", err)
	}
	prog, err := parser.ParseString(sourceName, source)
	if err != nil {
		return nil, cerr.FromParticiple(sourceName, err)
	}
	return prog, nil
}

// ParseVPFile reads and parses a .ccsvp source file.
func ParseVPFile(path string) (*VPProgram, error) {
	source, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return ParseVPString(path, string(source))
}
