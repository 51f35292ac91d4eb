package grammar

import (
	"fmt"
	"os"

	"github.com/alecthomas/participle/v2"

	cerr "ccs/internal/errors"
)

// CCSProgram is a parsed plain-CCS source file: an ordered list of
// `fn NAME { ... }` constant definitions.
type CCSProgram struct {
	Defs []*CCSDef `@@*`
}

type CCSDef struct {
	Name string          `"fn" @Ident "{"`
	Body *CCSProcessNode `@@ "}"`
}

// CCSProcessNode is one parsed CCS process term.
type CCSProcessNode struct {
	NilKw  bool            `  @"NIL"`
	Action *CCSActionNode  `| @@`
	Paren  *CCSParenBody   `| "(" @@ ")"`
	Const  *CCSConstRefNode `| @@`
}

type CCSConstRefNode struct {
	Name string `@Ident`
}

type CCSChannelNode struct {
	Tau  bool   `  @"tau"`
	Send string `| @Ident "!"`
	Recv string `| @Ident "?"`
}

type CCSActionNode struct {
	Channel *CCSChannelNode `@@ "."`
	Body    *CCSProcessNode `@@`
}

// CCSParenBody is the content between a top-level "(" and ")": a bare
// grouped term, a sum, a parallel composition, a restriction, or a
// channel substitution. Exactly one of Plus/Pipe/Restrict/Subst is
// populated in well-formed source; Left nil with nothing else set is NIL
// written as "()".
type CCSParenBody struct {
	Left     *CCSProcessNode   `@@?`
	Plus     []*CCSProcessNode `{ "+" @@ }`
	Pipe     *CCSProcessNode   `[ "|" @@ ]`
	Restrict []string          `[ "\\" "{" @Ident { "," @Ident } "}" ]`
	Subst    []*CCSSubstPair   `[ "[" @@ { "," @@ } "]" ]`
}

type CCSSubstPair struct {
	New string `@Ident "/"`
	Old string `@Ident`
}

func buildCCSParser() (*participle.Parser[CCSProgram], error) {
	return participle.Build[CCSProgram](
		participle.Lexer(CCSLexer),
		participle.Elide("Whitespace", "Comment"),
		participle.UseLookahead(4),
	)
}

// ParseCCSString parses CCS source held in memory, sourceName is used only
// for error reporting.
func ParseCCSString(sourceName, source string) (*CCSProgram, error) {
	parser, err := buildCCSParser()
	if err != nil {
		return nil, fmt.Errorf("building CCS parser: %w", err)
	}
	prog, err := parser.ParseString(sourceName, source)
	if err != nil {
		return nil, cerr.FromParticiple(sourceName, err)
	}
	return prog, nil
}

// ParseCCSFile reads and parses a .ccs source file.
func ParseCCSFile(path string) (*CCSProgram, error) {
	source, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return ParseCCSString(path, string(source))
}
