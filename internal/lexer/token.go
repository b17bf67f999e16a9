package lexer

import "fmt"

type TokenType int

const (
	// Special
	EOF TokenType = iota
	ILLEGAL

	// Identifiers + literals
	IDENT
	INT
	FLOAT
	CHAR
	STRING

	// Keywords
	KW_VAR
	KW_CONST
	KW_FUNC
	KW_STRUCT
	KW_UNION
	KW_ENUM
	KW_TYPEDEF
	KW_SIZEOF
	KW_CAST
	KW_RETURN
	KW_BREAK
	KW_CONTINUE
	KW_IF
	KW_ELSE
	KW_WHILE
	KW_DO
	KW_FOR
	KW_SWITCH
	KW_CASE
	KW_DEFAULT

	// Symbols
	LPAREN   // (
	RPAREN   // )
	LBRACE   // {
	RBRACE   // }
	LBRACK   // [
	RBRACK   // ]
	SEMI     // ;
	COMMA    // ,
	COLON    // :
	DOT      // .
	QUESTION // ?

	// Arithmetic
	PLUS    // +
	MINUS   // -
	STAR    // *
	SLASH   // /
	PERCENT // %

	// Shifts
	SHL // <<
	SHR // >>

	// Bitwise/logical
	AMP    // &
	ANDAND // &&
	OROR   // ||
	PIPE   // |
	CARET  // ^
	TILDE  // ~
	BANG   // !

	// Comparison
	EQEQ // ==
	NEQ  // !=
	LT   // <
	LE   // <=
	GT   // >
	GE   // >=

	// Assignment
	ASSIGN     // =
	COLON_ASSN // :=
	ADD_ASSN   // +=
	SUB_ASSN   // -=
	MUL_ASSN   // *=
	DIV_ASSN   // /=
	MOD_ASSN   // %=
	AND_ASSN   // &=
	OR_ASSN    // |=
	XOR_ASSN   // ^=
	SHL_ASSN   // <<=
	SHR_ASSN   // >>=
	INC        // ++
	DEC        // --

	numTokenTypes
)

var tokenNames = [...]string{
	EOF:     "EOF",
	ILLEGAL: "ILLEGAL",

	IDENT:  "IDENT",
	INT:    "INT",
	FLOAT:  "FLOAT",
	CHAR:   "CHAR",
	STRING: "STRING",

	KW_VAR:      "var",
	KW_CONST:    "const",
	KW_FUNC:     "func",
	KW_STRUCT:   "struct",
	KW_UNION:    "union",
	KW_ENUM:     "enum",
	KW_TYPEDEF:  "typedef",
	KW_SIZEOF:   "sizeof",
	KW_CAST:     "cast",
	KW_RETURN:   "return",
	KW_BREAK:    "break",
	KW_CONTINUE: "continue",
	KW_IF:       "if",
	KW_ELSE:     "else",
	KW_WHILE:    "while",
	KW_DO:       "do",
	KW_FOR:      "for",
	KW_SWITCH:   "switch",
	KW_CASE:     "case",
	KW_DEFAULT:  "default",

	LPAREN:   "(",
	RPAREN:   ")",
	LBRACE:   "{",
	RBRACE:   "}",
	LBRACK:   "[",
	RBRACK:   "]",
	SEMI:     ";",
	COMMA:    ",",
	COLON:    ":",
	DOT:      ".",
	QUESTION: "?",

	PLUS:    "+",
	MINUS:   "-",
	STAR:    "*",
	SLASH:   "/",
	PERCENT: "%",

	SHL: "<<",
	SHR: ">>",

	AMP:    "&",
	ANDAND: "&&",
	OROR:   "||",
	PIPE:   "|",
	CARET:  "^",
	TILDE:  "~",
	BANG:   "!",

	EQEQ: "==",
	NEQ:  "!=",
	LT:   "<",
	LE:   "<=",
	GT:   ">",
	GE:   ">=",

	ASSIGN:     "=",
	COLON_ASSN: ":=",
	ADD_ASSN:   "+=",
	SUB_ASSN:   "-=",
	MUL_ASSN:   "*=",
	DIV_ASSN:   "/=",
	MOD_ASSN:   "%=",
	AND_ASSN:   "&=",
	OR_ASSN:    "|=",
	XOR_ASSN:   "^=",
	SHL_ASSN:   "<<=",
	SHR_ASSN:   ">>=",
	INC:        "++",
	DEC:        "--",
}

func (t TokenType) String() string {
	if t >= 0 && t < numTokenTypes {
		return tokenNames[t]
	}
	return fmt.Sprintf("TokenType(%d)", int(t))
}

// IsAssign reports whether t is one of the assignment operators accepted by
// an assignment statement (plain or compound, not := and not ++/--).
func (t TokenType) IsAssign() bool {
	return t == ASSIGN || (t >= ADD_ASSN && t <= SHR_ASSN)
}

var keywords = map[string]TokenType{
	"var":      KW_VAR,
	"const":    KW_CONST,
	"func":     KW_FUNC,
	"struct":   KW_STRUCT,
	"union":    KW_UNION,
	"enum":     KW_ENUM,
	"typedef":  KW_TYPEDEF,
	"sizeof":   KW_SIZEOF,
	"cast":     KW_CAST,
	"return":   KW_RETURN,
	"break":    KW_BREAK,
	"continue": KW_CONTINUE,
	"if":       KW_IF,
	"else":     KW_ELSE,
	"while":    KW_WHILE,
	"do":       KW_DO,
	"for":      KW_FOR,
	"switch":   KW_SWITCH,
	"case":     KW_CASE,
	"default":  KW_DEFAULT,
}

// Lookup maps an identifier to its keyword type, or IDENT.
func Lookup(ident string) TokenType {
	if tt, ok := keywords[ident]; ok {
		return tt
	}
	return IDENT
}

type Token struct {
	Type  TokenType
	Lex   string
	Int   int64   // INT value, or the code point of a CHAR
	Float float64 // FLOAT value
	Line  int
	Col   int
}

func (t Token) Is(op TokenType) bool { return t.Type == op }

func (t Token) String() string {
	switch t.Type {
	case IDENT, INT, FLOAT, CHAR, STRING, ILLEGAL:
		return fmt.Sprintf("%v %q", t.Type, t.Lex)
	default:
		return t.Type.String()
	}
}
