package parser

import (
	"github.com/tinyrange/ion/internal/ast"
	"github.com/tinyrange/ion/internal/lexer"
)

func (p *Parser) parseBlock() (ast.StmtBlock, error) {
	if _, err := p.expect(lexer.LBRACE); err != nil {
		return ast.StmtBlock{}, err
	}
	m := p.stmts.mark()
	defer p.stmts.release(m)
	for p.tok.Type != lexer.RBRACE && p.tok.Type != lexer.EOF {
		s, err := p.parseStmt()
		if err != nil {
			return ast.StmtBlock{}, err
		}
		p.stmts.push(s)
	}
	if _, err := p.expect(lexer.RBRACE); err != nil {
		return ast.StmtBlock{}, err
	}
	return p.arena.Block(p.stmts.since(m)), nil
}

func (p *Parser) parseStmt() (*ast.Stmt, error) {
	if isDeclStart(p.tok.Type) {
		d, err := p.parseDecl()
		if err != nil {
			return nil, err
		}
		return p.arena.DeclStmt(d), nil
	}

	switch p.tok.Type {
	case lexer.LBRACE:
		block, err := p.parseBlock()
		if err != nil {
			return nil, err
		}
		return p.arena.BlockStmt(block), nil
	case lexer.KW_RETURN:
		p.next()
		var x *ast.Expr
		if p.tok.Type != lexer.SEMI {
			var err error
			if x, err = p.parseExpr(); err != nil {
				return nil, err
			}
		}
		if _, err := p.expect(lexer.SEMI); err != nil {
			return nil, err
		}
		return p.arena.Return(x), nil
	case lexer.KW_BREAK:
		p.next()
		if _, err := p.expect(lexer.SEMI); err != nil {
			return nil, err
		}
		return p.arena.Break(), nil
	case lexer.KW_CONTINUE:
		p.next()
		if _, err := p.expect(lexer.SEMI); err != nil {
			return nil, err
		}
		return p.arena.Continue(), nil
	case lexer.KW_IF:
		return p.parseIf()
	case lexer.KW_WHILE:
		p.next()
		cond, err := p.parseParenExpr()
		if err != nil {
			return nil, err
		}
		block, err := p.parseBlock()
		if err != nil {
			return nil, err
		}
		return p.arena.While(cond, block), nil
	case lexer.KW_DO:
		p.next()
		block, err := p.parseBlock()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(lexer.KW_WHILE); err != nil {
			return nil, err
		}
		cond, err := p.parseParenExpr()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(lexer.SEMI); err != nil {
			return nil, err
		}
		return p.arena.DoWhile(cond, block), nil
	case lexer.KW_FOR:
		return p.parseFor()
	case lexer.KW_SWITCH:
		return p.parseSwitch()
	default:
		s, err := p.parseSimpleStmt()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(lexer.SEMI); err != nil {
			return nil, err
		}
		return s, nil
	}
}

func (p *Parser) parseParenExpr() (*ast.Expr, error) {
	if _, err := p.expect(lexer.LPAREN); err != nil {
		return nil, err
	}
	x, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.RPAREN); err != nil {
		return nil, err
	}
	return x, nil
}

// parseSimpleStmt parses `name := expr`, an assignment, `x++`, `x--` or a
// bare expression. The terminator is left to the caller.
func (p *Parser) parseSimpleStmt() (*ast.Stmt, error) {
	if p.tok.Type == lexer.IDENT && p.peek.Type == lexer.COLON_ASSN {
		name := p.tok.Lex
		p.next()
		p.next()
		x, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		return p.arena.Init(name, x), nil
	}

	left, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	switch op := p.tok.Type; {
	case op.IsAssign():
		p.next()
		right, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		return p.arena.Assign(op, left, right), nil
	case op == lexer.INC:
		p.next()
		return p.arena.Assign(lexer.ADD_ASSN, left, p.arena.Int(1)), nil
	case op == lexer.DEC:
		p.next()
		return p.arena.Assign(lexer.SUB_ASSN, left, p.arena.Int(1)), nil
	default:
		return p.arena.ExprStmt(left), nil
	}
}

// if (c) {...} else if (c) {...} else {...}
func (p *Parser) parseIf() (*ast.Stmt, error) {
	p.next()
	cond, err := p.parseParenExpr()
	if err != nil {
		return nil, err
	}
	then, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	m := p.elseIfs.mark()
	defer p.elseIfs.release(m)
	var els ast.StmtBlock
	for p.accept(lexer.KW_ELSE) {
		if !p.accept(lexer.KW_IF) {
			if els, err = p.parseBlock(); err != nil {
				return nil, err
			}
			break
		}
		elseCond, err := p.parseParenExpr()
		if err != nil {
			return nil, err
		}
		block, err := p.parseBlock()
		if err != nil {
			return nil, err
		}
		p.elseIfs.push(ast.ElseIf{Cond: elseCond, Block: block})
	}
	return p.arena.If(cond, then, p.elseIfs.since(m), els), nil
}

// for (init; cond; next) {...}; every clause is optional.
func (p *Parser) parseFor() (*ast.Stmt, error) {
	p.next()
	if _, err := p.expect(lexer.LPAREN); err != nil {
		return nil, err
	}
	var (
		init, next *ast.Stmt
		cond       *ast.Expr
		err        error
	)
	if p.tok.Type != lexer.SEMI {
		if init, err = p.parseSimpleStmt(); err != nil {
			return nil, err
		}
	}
	if _, err := p.expect(lexer.SEMI); err != nil {
		return nil, err
	}
	if p.tok.Type != lexer.SEMI {
		if cond, err = p.parseExpr(); err != nil {
			return nil, err
		}
	}
	if _, err := p.expect(lexer.SEMI); err != nil {
		return nil, err
	}
	if p.tok.Type != lexer.RPAREN {
		if next, err = p.parseSimpleStmt(); err != nil {
			return nil, err
		}
	}
	if _, err := p.expect(lexer.RPAREN); err != nil {
		return nil, err
	}
	block, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	return p.arena.For(init, cond, next, block), nil
}

// switch (x) { case 1, 2: ... default: ... }
func (p *Parser) parseSwitch() (*ast.Stmt, error) {
	p.next()
	x, err := p.parseParenExpr()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(lexer.LBRACE); err != nil {
		return nil, err
	}
	// case labels stay on the exprs stack until the switch has been copied
	em := p.exprs.mark()
	defer p.exprs.release(em)
	cm := p.cases.mark()
	defer p.cases.release(cm)
	sawDefault := false
	for p.tok.Type != lexer.RBRACE {
		var c ast.SwitchCase
		switch p.tok.Type {
		case lexer.KW_CASE:
			p.next()
			start := p.exprs.mark()
			for {
				label, err := p.parseExpr()
				if err != nil {
					return nil, err
				}
				p.exprs.push(label)
				if !p.accept(lexer.COMMA) {
					break
				}
			}
			c.Exprs = p.exprs.since(start)
		case lexer.KW_DEFAULT:
			if sawDefault {
				return nil, p.errorf(p.tok, "multiple defaults in switch")
			}
			sawDefault = true
			p.next()
			c.IsDefault = true
		default:
			return nil, p.errorf(p.tok, "expected case or default, got %s", describe(p.tok))
		}
		if _, err := p.expect(lexer.COLON); err != nil {
			return nil, err
		}
		c.Block, err = p.parseCaseBody()
		if err != nil {
			return nil, err
		}
		p.cases.push(c)
	}
	p.next()
	return p.arena.Switch(x, p.cases.since(cm)), nil
}

func (p *Parser) parseCaseBody() (ast.StmtBlock, error) {
	m := p.stmts.mark()
	defer p.stmts.release(m)
	for {
		switch p.tok.Type {
		case lexer.KW_CASE, lexer.KW_DEFAULT, lexer.RBRACE, lexer.EOF:
			return p.arena.Block(p.stmts.since(m)), nil
		}
		s, err := p.parseStmt()
		if err != nil {
			return ast.StmtBlock{}, err
		}
		p.stmts.push(s)
	}
}
