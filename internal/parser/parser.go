package parser

import (
	"github.com/tinyrange/ion/internal/ast"
	"github.com/tinyrange/ion/internal/lexer"
)

// scratch is a reusable stack of list buffers. A list being collected sits
// on top of the stack until the arena has copied it, then it is popped.
// Nested lists push above their parent's region and pop back to it.
type scratch[T any] struct {
	buf []T
}

func (s *scratch[T]) mark() int       { return len(s.buf) }
func (s *scratch[T]) push(v T)        { s.buf = append(s.buf, v) }
func (s *scratch[T]) since(m int) []T { return s.buf[m:] }

func (s *scratch[T]) release(m int) {
	clear(s.buf[m:])
	s.buf = s.buf[:m]
}

type Parser struct {
	lx       *lexer.Lexer
	tok      lexer.Token
	peek     lexer.Token
	filename string
	arena    *ast.Arena

	decls   scratch[*ast.Decl]
	stmts   scratch[*ast.Stmt]
	exprs   scratch[*ast.Expr]
	types   scratch[*ast.TypeSpec]
	names   scratch[string]
	params  scratch[ast.FuncParam]
	enums   scratch[ast.EnumItem]
	items   scratch[ast.AggregateItem]
	elseIfs scratch[ast.ElseIf]
	cases   scratch[ast.SwitchCase]
}

// New returns a parser that builds its nodes in arena.
func New(filename, src string, arena *ast.Arena) *Parser {
	p := &Parser{lx: lexer.New(src), filename: filename, arena: arena}
	p.peek = p.lx.Next()
	p.next()
	return p
}

// ParseFile parses a whole source file into a fresh arena.
func ParseFile(filename, src string) (*ast.File, error) {
	p := New(filename, src, ast.NewArena())
	return p.ParseFile()
}

// ParseExpr parses a single expression into arena.
func ParseExpr(arena *ast.Arena, src string) (*ast.Expr, error) {
	p := New("", src, arena)
	e, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if p.tok.Type != lexer.EOF {
		return nil, p.errorf(p.tok, "unexpected %s after expression", describe(p.tok))
	}
	return e, nil
}

// ParseDecl parses a single declaration into arena.
func ParseDecl(arena *ast.Arena, src string) (*ast.Decl, error) {
	p := New("", src, arena)
	d, err := p.parseDecl()
	if err != nil {
		return nil, err
	}
	if p.tok.Type != lexer.EOF {
		return nil, p.errorf(p.tok, "unexpected %s after declaration", describe(p.tok))
	}
	return d, nil
}

func (p *Parser) ParseFile() (*ast.File, error) {
	m := p.decls.mark()
	defer p.decls.release(m)
	for p.tok.Type != lexer.EOF {
		d, err := p.parseDecl()
		if err != nil {
			return nil, err
		}
		p.decls.push(d)
	}
	return p.arena.File(p.filename, p.decls.since(m)), nil
}

func (p *Parser) next() {
	p.tok = p.peek
	p.peek = p.lx.Next()
}

func (p *Parser) expect(tt lexer.TokenType) (lexer.Token, error) {
	if p.tok.Type != tt {
		return lexer.Token{}, p.errorf(p.tok, "expected %q, got %s", tt.String(), describe(p.tok))
	}
	t := p.tok
	p.next()
	return t, nil
}

func (p *Parser) expectName() (string, error) {
	if p.tok.Type != lexer.IDENT {
		return "", p.errorf(p.tok, "expected name, got %s", describe(p.tok))
	}
	name := p.tok.Lex
	p.next()
	return name, nil
}

// accept consumes the current token if it has type tt.
func (p *Parser) accept(tt lexer.TokenType) bool {
	if p.tok.Type == tt {
		p.next()
		return true
	}
	return false
}

func isDeclStart(tt lexer.TokenType) bool {
	switch tt {
	case lexer.KW_ENUM, lexer.KW_STRUCT, lexer.KW_UNION, lexer.KW_VAR,
		lexer.KW_CONST, lexer.KW_TYPEDEF, lexer.KW_FUNC:
		return true
	}
	return false
}

func (p *Parser) parseDecl() (*ast.Decl, error) {
	switch p.tok.Type {
	case lexer.KW_ENUM:
		return p.parseEnum()
	case lexer.KW_STRUCT:
		return p.parseAggregate(ast.DeclStruct)
	case lexer.KW_UNION:
		return p.parseAggregate(ast.DeclUnion)
	case lexer.KW_VAR:
		return p.parseVar()
	case lexer.KW_CONST:
		return p.parseConst()
	case lexer.KW_TYPEDEF:
		return p.parseTypedef()
	case lexer.KW_FUNC:
		return p.parseFunc()
	default:
		return nil, p.errorf(p.tok, "expected declaration, got %s", describe(p.tok))
	}
}

// enum NAME { A, B, C }
func (p *Parser) parseEnum() (*ast.Decl, error) {
	p.next()
	name, err := p.expectName()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.LBRACE); err != nil {
		return nil, err
	}
	m := p.enums.mark()
	defer p.enums.release(m)
	for p.tok.Type != lexer.RBRACE {
		item, err := p.expectName()
		if err != nil {
			return nil, err
		}
		p.enums.push(ast.EnumItem{Name: item})
		if !p.accept(lexer.COMMA) {
			break
		}
	}
	if _, err := p.expect(lexer.RBRACE); err != nil {
		return nil, err
	}
	return p.arena.Enum(name, p.enums.since(m)), nil
}

// struct NAME { a, b: T; c: U; }
func (p *Parser) parseAggregate(kind ast.DeclKind) (*ast.Decl, error) {
	p.next()
	name, err := p.expectName()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.LBRACE); err != nil {
		return nil, err
	}
	// field names of every item stay on the names stack until the
	// aggregate has been copied
	nm := p.names.mark()
	defer p.names.release(nm)
	im := p.items.mark()
	defer p.items.release(im)
	for p.tok.Type != lexer.RBRACE {
		start := p.names.mark()
		for {
			field, err := p.expectName()
			if err != nil {
				return nil, err
			}
			p.names.push(field)
			if !p.accept(lexer.COMMA) {
				break
			}
		}
		if _, err := p.expect(lexer.COLON); err != nil {
			return nil, err
		}
		typ, err := p.parseType()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(lexer.SEMI); err != nil {
			return nil, err
		}
		p.items.push(ast.AggregateItem{Names: p.names.since(start), Type: typ})
	}
	p.next()
	return p.arena.Aggregate(kind, name, p.items.since(im)), nil
}

// var NAME [: T] [= expr];
func (p *Parser) parseVar() (*ast.Decl, error) {
	varTok := p.tok
	p.next()
	name, err := p.expectName()
	if err != nil {
		return nil, err
	}
	var typ *ast.TypeSpec
	var init *ast.Expr
	if p.accept(lexer.COLON) {
		if typ, err = p.parseType(); err != nil {
			return nil, err
		}
	}
	if p.accept(lexer.ASSIGN) {
		if init, err = p.parseExpr(); err != nil {
			return nil, err
		}
	}
	if typ == nil && init == nil {
		return nil, p.errorf(varTok, "var %s needs a type or an initializer", name)
	}
	if _, err := p.expect(lexer.SEMI); err != nil {
		return nil, err
	}
	return p.arena.Var(name, typ, init), nil
}

// const NAME = expr;
func (p *Parser) parseConst() (*ast.Decl, error) {
	p.next()
	name, err := p.expectName()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.ASSIGN); err != nil {
		return nil, err
	}
	x, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.SEMI); err != nil {
		return nil, err
	}
	return p.arena.Const(name, x), nil
}

// typedef NAME = T;
func (p *Parser) parseTypedef() (*ast.Decl, error) {
	p.next()
	name, err := p.expectName()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.ASSIGN); err != nil {
		return nil, err
	}
	typ, err := p.parseType()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.SEMI); err != nil {
		return nil, err
	}
	return p.arena.Typedef(name, typ), nil
}

// func NAME(a: T, b: U): R { ... }
func (p *Parser) parseFunc() (*ast.Decl, error) {
	p.next()
	name, err := p.expectName()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.LPAREN); err != nil {
		return nil, err
	}
	m := p.params.mark()
	defer p.params.release(m)
	for p.tok.Type != lexer.RPAREN {
		pname, err := p.expectName()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(lexer.COLON); err != nil {
			return nil, err
		}
		typ, err := p.parseType()
		if err != nil {
			return nil, err
		}
		p.params.push(ast.FuncParam{Name: pname, Type: typ})
		if !p.accept(lexer.COMMA) {
			break
		}
	}
	if _, err := p.expect(lexer.RPAREN); err != nil {
		return nil, err
	}
	var ret *ast.TypeSpec
	if p.accept(lexer.COLON) {
		if ret, err = p.parseType(); err != nil {
			return nil, err
		}
	}
	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	return p.arena.Func(name, p.params.since(m), ret, body), nil
}

// type = base {'*' | '[' [expr] ']'}
func (p *Parser) parseType() (*ast.TypeSpec, error) {
	typ, err := p.parseBaseType()
	if err != nil {
		return nil, err
	}
	for {
		switch p.tok.Type {
		case lexer.STAR:
			p.next()
			typ = p.arena.TypePtr(typ)
		case lexer.LBRACK:
			p.next()
			var size *ast.Expr
			if p.tok.Type != lexer.RBRACK {
				if size, err = p.parseExpr(); err != nil {
					return nil, err
				}
			}
			if _, err := p.expect(lexer.RBRACK); err != nil {
				return nil, err
			}
			typ = p.arena.TypeArray(typ, size)
		default:
			return typ, nil
		}
	}
}

func (p *Parser) parseBaseType() (*ast.TypeSpec, error) {
	switch p.tok.Type {
	case lexer.IDENT:
		name := p.tok.Lex
		p.next()
		return p.arena.TypeName(name), nil
	case lexer.KW_FUNC:
		p.next()
		if _, err := p.expect(lexer.LPAREN); err != nil {
			return nil, err
		}
		m := p.types.mark()
		defer p.types.release(m)
		for p.tok.Type != lexer.RPAREN {
			typ, err := p.parseType()
			if err != nil {
				return nil, err
			}
			p.types.push(typ)
			if !p.accept(lexer.COMMA) {
				break
			}
		}
		if _, err := p.expect(lexer.RPAREN); err != nil {
			return nil, err
		}
		var ret *ast.TypeSpec
		if p.accept(lexer.COLON) {
			var err error
			if ret, err = p.parseType(); err != nil {
				return nil, err
			}
		}
		return p.arena.TypeFunc(p.types.since(m), ret), nil
	case lexer.LPAREN:
		p.next()
		typ, err := p.parseType()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(lexer.RPAREN); err != nil {
			return nil, err
		}
		return typ, nil
	default:
		return nil, p.errorf(p.tok, "expected type, got %s", describe(p.tok))
	}
}
