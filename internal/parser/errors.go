package parser

import (
	"fmt"

	"github.com/tinyrange/ion/internal/lexer"
)

type Pos struct {
	File string
	Line int
	Col  int
}

func (p Pos) String() string {
	if p.File == "" {
		return fmt.Sprintf("%d:%d", p.Line, p.Col)
	}
	return fmt.Sprintf("%s:%d:%d", p.File, p.Line, p.Col)
}

// Error is a syntax error at a source position.
type Error struct {
	Pos Pos
	Msg string
}

func (e *Error) Error() string { return e.Pos.String() + ": " + e.Msg }

func (p *Parser) errorf(tok lexer.Token, format string, args ...any) error {
	return &Error{
		Pos: Pos{File: p.filename, Line: tok.Line, Col: tok.Col},
		Msg: fmt.Sprintf(format, args...),
	}
}

// describe renders a token for an error message.
func describe(tok lexer.Token) string {
	switch tok.Type {
	case lexer.EOF:
		return "end of file"
	case lexer.IDENT:
		return fmt.Sprintf("name %q", tok.Lex)
	case lexer.INT, lexer.FLOAT:
		return fmt.Sprintf("number %s", tok.Lex)
	case lexer.CHAR:
		return fmt.Sprintf("char %q", tok.Lex)
	case lexer.STRING:
		return fmt.Sprintf("string %q", tok.Lex)
	case lexer.ILLEGAL:
		return fmt.Sprintf("illegal token %q", tok.Lex)
	default:
		return fmt.Sprintf("%q", tok.Type.String())
	}
}
