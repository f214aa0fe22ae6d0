// Package lexer turns VibeLang source text into a stream of tokens,
// tracking significant two-space indentation the way Python-family lexers
// do.
package lexer

import "github.com/ycharfi09/VibeLang/internal/cerrors"

// TokenType identifies the lexical category of a Token.
type TokenType int

const (
	ILLEGAL TokenType = iota
	EOF

	// Layout
	INDENT
	DEDENT
	NEWLINE

	// Identifiers and literals
	IDENT
	INT
	FLOAT
	STRING

	// Keywords
	DEFINE
	TYPE
	EXPECT
	ENSURE
	INVARIANT
	GIVEN
	WHEN
	OTHERWISE
	IMPORT
	EXPORT
	TRUE
	FALSE
	SELF
	OLD

	// Primitive-type keywords
	INT_TYPE
	FLOAT_TYPE
	BOOL_TYPE
	STRING_TYPE
	BYTE_TYPE
	UNIT_TYPE
	ARRAY_TYPE
	RESULT_TYPE

	// Operators
	PLUS
	MINUS
	STAR
	SLASH
	PERCENT
	EQ
	NEQ
	LT
	GT
	LE
	GE
	AND
	OR
	NOT
	ARROW
	PIPE
	AMP
	QUESTION
	ELLIPSIS

	// Punctuation
	LPAREN
	RPAREN
	LBRACKET
	RBRACKET
	LBRACE
	RBRACE
	COMMA
	COLON
	DOT
	ASSIGN
)

var tokenNames = map[TokenType]string{
	ILLEGAL: "ILLEGAL", EOF: "EOF",
	INDENT: "INDENT", DEDENT: "DEDENT", NEWLINE: "NEWLINE",
	IDENT: "IDENT", INT: "INT", FLOAT: "FLOAT", STRING: "STRING",
	DEFINE: "define", TYPE: "type", EXPECT: "expect", ENSURE: "ensure",
	INVARIANT: "invariant", GIVEN: "given", WHEN: "when", OTHERWISE: "otherwise",
	IMPORT: "import", EXPORT: "export", TRUE: "true", FALSE: "false",
	SELF: "self", OLD: "old",
	INT_TYPE: "Int", FLOAT_TYPE: "Float", BOOL_TYPE: "Bool", STRING_TYPE: "String",
	BYTE_TYPE: "Byte", UNIT_TYPE: "Unit", ARRAY_TYPE: "Array", RESULT_TYPE: "Result",
	PLUS: "+", MINUS: "-", STAR: "*", SLASH: "/", PERCENT: "%",
	EQ: "==", NEQ: "!=", LT: "<", GT: ">", LE: "<=", GE: ">=",
	AND: "&&", OR: "||", NOT: "!", ARROW: "->", PIPE: "|", AMP: "&",
	QUESTION: "?", ELLIPSIS: "...",
	LPAREN: "(", RPAREN: ")", LBRACKET: "[", RBRACKET: "]",
	LBRACE: "{", RBRACE: "}", COMMA: ",", COLON: ":", DOT: ".", ASSIGN: "=",
}

// String returns the token type's canonical name, used by the lex CLI
// subcommand and in parser error messages.
func (t TokenType) String() string {
	if name, ok := tokenNames[t]; ok {
		return name
	}
	return "UNKNOWN"
}

var keywords = map[string]TokenType{
	"define": DEFINE, "type": TYPE, "expect": EXPECT, "ensure": ENSURE,
	"invariant": INVARIANT, "given": GIVEN, "when": WHEN, "otherwise": OTHERWISE,
	"import": IMPORT, "export": EXPORT, "true": TRUE, "false": FALSE,
	"self": SELF, "old": OLD,
	"Int": INT_TYPE, "Float": FLOAT_TYPE, "Bool": BOOL_TYPE, "String": STRING_TYPE,
	"Byte": BYTE_TYPE, "Unit": UNIT_TYPE, "Array": ARRAY_TYPE, "Result": RESULT_TYPE,
}

// LookupIdent resolves an identifier's text to a keyword TokenType, or
// IDENT if it is not a keyword.
func LookupIdent(text string) TokenType {
	if tt, ok := keywords[text]; ok {
		return tt
	}
	return IDENT
}

// Token is a single lexical token with its source position.
type Token struct {
	Type    TokenType
	Literal string
	Pos     cerrors.Position
}
