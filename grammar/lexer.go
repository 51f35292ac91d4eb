package grammar

import (
	"github.com/alecthomas/participle/v2/lexer"
)

// CCSLexer tokenises plain CCS source: prefixes, sums, parallel
// composition, restriction and substitution, with no value payloads.
var CCSLexer = lexer.MustStateful(lexer.Rules{
	"Root": {
		{"Comment", `//[^\n]*`, nil},
		{"Ident", `[a-zA-Z_][a-zA-Z0-9_]*`, nil},
		{"Punctuation", `[{}()\[\],.!?+|\\/]`, nil},
		{"Whitespace", `[ \t\r\n]+`, nil},
	},
})

// VPLexer tokenises CCS-VP source: everything CCSLexer does, plus
// integers, pragmas, enum/alias declarations and arithmetic/boolean
// expressions.
var VPLexer = lexer.MustStateful(lexer.Rules{
	"Root": {
		{"Comment", `//[^\n]*`, nil},
		{"Ident", `[a-zA-Z_][a-zA-Z0-9_]*`, nil},
		{"Integer", `[0-9]+`, nil},
		{"Operator", `(&&|\|\||==|!=|<=|>=|::)`, nil},
		{"Punctuation", `[{}()\[\],.!?+|\\;:=<>*/#-]`, nil},
		{"Whitespace", `[ \t\r\n]+`, nil},
	},
})
