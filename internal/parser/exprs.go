package parser

import (
	"github.com/tinyrange/ion/internal/ast"
	"github.com/tinyrange/ion/internal/lexer"
)

// Expr grammar, loosest first:
// expr    = or ['?' expr ':' expr]
// or      = and {'||' and}
// and     = cmp {'&&' cmp}
// cmp     = add {('=='|'!='|'<'|'<='|'>'|'>=') add}
// add     = mul {('+'|'-'|'|'|'^') mul}
// mul     = unary {('*'|'/'|'%'|'&'|'<<'|'>>') unary}
// unary   = ('+'|'-'|'!'|'~'|'*'|'&') unary | postfix
// postfix = operand {'(' args ')' | '[' expr ']' | '.' NAME}
func (p *Parser) parseExpr() (*ast.Expr, error) {
	cond, err := p.parseBinary(precOr)
	if err != nil {
		return nil, err
	}
	if !p.accept(lexer.QUESTION) {
		return cond, nil
	}
	then, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.COLON); err != nil {
		return nil, err
	}
	els, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	return p.arena.Ternary(cond, then, els), nil
}

const (
	precOr = iota + 1
	precAnd
	precCmp
	precAdd
	precMul
)

func binaryPrec(tt lexer.TokenType) int {
	switch tt {
	case lexer.OROR:
		return precOr
	case lexer.ANDAND:
		return precAnd
	case lexer.EQEQ, lexer.NEQ, lexer.LT, lexer.LE, lexer.GT, lexer.GE:
		return precCmp
	case lexer.PLUS, lexer.MINUS, lexer.PIPE, lexer.CARET:
		return precAdd
	case lexer.STAR, lexer.SLASH, lexer.PERCENT, lexer.AMP, lexer.SHL, lexer.SHR:
		return precMul
	default:
		return 0
	}
}

// parseBinary parses a left-associative chain of operators binding at least
// as tightly as prec.
func (p *Parser) parseBinary(prec int) (*ast.Expr, error) {
	if prec > precMul {
		return p.parseUnary()
	}
	left, err := p.parseBinary(prec + 1)
	if err != nil {
		return nil, err
	}
	for binaryPrec(p.tok.Type) == prec {
		op := p.tok.Type
		p.next()
		right, err := p.parseBinary(prec + 1)
		if err != nil {
			return nil, err
		}
		left = p.arena.Binary(op, left, right)
	}
	return left, nil
}

func (p *Parser) parseUnary() (*ast.Expr, error) {
	switch op := p.tok.Type; op {
	case lexer.PLUS, lexer.MINUS, lexer.BANG, lexer.TILDE, lexer.STAR, lexer.AMP:
		p.next()
		x, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return p.arena.Unary(op, x), nil
	default:
		return p.parsePostfix()
	}
}

func (p *Parser) parsePostfix() (*ast.Expr, error) {
	x, err := p.parseOperand()
	if err != nil {
		return nil, err
	}
	for {
		switch p.tok.Type {
		case lexer.LPAREN:
			p.next()
			m, err := p.parseExprList(lexer.RPAREN)
			if err != nil {
				return nil, err
			}
			x = p.arena.Call(x, p.exprs.since(m))
			p.exprs.release(m)
		case lexer.LBRACK:
			p.next()
			index, err := p.parseExpr()
			if err != nil {
				return nil, err
			}
			if _, err := p.expect(lexer.RBRACK); err != nil {
				return nil, err
			}
			x = p.arena.Index(x, index)
		case lexer.DOT:
			p.next()
			name, err := p.expectName()
			if err != nil {
				return nil, err
			}
			x = p.arena.Field(x, name)
		default:
			return x, nil
		}
	}
}

// parseExprList parses comma separated expressions up to and including the
// closing token; a trailing comma is allowed. On success the list is left on
// the exprs stack above the returned mark and the caller must release it.
func (p *Parser) parseExprList(closing lexer.TokenType) (int, error) {
	m := p.exprs.mark()
	for p.tok.Type != closing {
		x, err := p.parseExpr()
		if err != nil {
			p.exprs.release(m)
			return 0, err
		}
		p.exprs.push(x)
		if !p.accept(lexer.COMMA) {
			break
		}
	}
	if _, err := p.expect(closing); err != nil {
		p.exprs.release(m)
		return 0, err
	}
	return m, nil
}

func (p *Parser) parseOperand() (*ast.Expr, error) {
	tok := p.tok
	switch tok.Type {
	case lexer.INT, lexer.CHAR:
		p.next()
		return p.arena.Int(tok.Int), nil
	case lexer.FLOAT:
		p.next()
		return p.arena.Float(tok.Float), nil
	case lexer.STRING:
		p.next()
		return p.arena.Str(tok.Lex), nil
	case lexer.IDENT:
		p.next()
		if p.tok.Type == lexer.LBRACE {
			return p.parseCompound(p.arena.TypeName(tok.Lex))
		}
		return p.arena.Name(tok.Lex), nil
	case lexer.LBRACE:
		return p.parseCompound(nil)
	case lexer.LPAREN:
		return p.parseParenExpr()
	case lexer.KW_CAST:
		p.next()
		if _, err := p.expect(lexer.LPAREN); err != nil {
			return nil, err
		}
		typ, err := p.parseType()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(lexer.COMMA); err != nil {
			return nil, err
		}
		x, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(lexer.RPAREN); err != nil {
			return nil, err
		}
		return p.arena.Cast(typ, x), nil
	case lexer.KW_SIZEOF:
		p.next()
		if _, err := p.expect(lexer.LPAREN); err != nil {
			return nil, err
		}
		var x *ast.Expr
		if p.accept(lexer.COLON) {
			typ, err := p.parseType()
			if err != nil {
				return nil, err
			}
			x = p.arena.SizeofType(typ)
		} else {
			inner, err := p.parseExpr()
			if err != nil {
				return nil, err
			}
			x = p.arena.SizeofExpr(inner)
		}
		if _, err := p.expect(lexer.RPAREN); err != nil {
			return nil, err
		}
		return x, nil
	default:
		return nil, p.errorf(tok, "unexpected %s in expression", describe(tok))
	}
}

// parseCompound parses `{a, b, ...}`; typ is nil when no type was written.
func (p *Parser) parseCompound(typ *ast.TypeSpec) (*ast.Expr, error) {
	if _, err := p.expect(lexer.LBRACE); err != nil {
		return nil, err
	}
	m, err := p.parseExprList(lexer.RBRACE)
	if err != nil {
		return nil, err
	}
	defer p.exprs.release(m)
	return p.arena.Compound(typ, p.exprs.since(m)), nil
}
