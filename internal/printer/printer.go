// Package printer renders syntax trees as S-expressions.
//
// Blocks open a new line per statement, indented two spaces per level:
//
//	(func add ((a int) (b int)) int
//	  (block
//	    (return (+ a b))))
//
// Absent optional children print as nil. The printer only reads the tree.
package printer

import (
	"bytes"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/tinyrange/ion/internal/ast"
)

type printer struct {
	buf    bytes.Buffer
	indent int
}

// Fprint writes node to w. node is a *ast.File, *ast.Decl, *ast.Stmt,
// ast.StmtBlock, *ast.Expr or *ast.TypeSpec.
func Fprint(w io.Writer, node any) error {
	var p printer
	p.node(node)
	_, err := w.Write(p.buf.Bytes())
	return err
}

func Sprint(node any) string {
	var p printer
	p.node(node)
	return p.buf.String()
}

func (p *printer) node(node any) {
	switch n := node.(type) {
	case *ast.File:
		for i, d := range n.Decls {
			if i > 0 {
				p.buf.WriteByte('\n')
			}
			p.decl(d)
		}
	case *ast.Decl:
		p.decl(n)
	case *ast.Stmt:
		p.stmt(n)
	case ast.StmtBlock:
		p.block(n)
	case *ast.Expr:
		p.expr(n)
	case *ast.TypeSpec:
		p.typespec(n)
	default:
		panic(fmt.Sprintf("printer: cannot print %T", node))
	}
}

func (p *printer) printf(format string, args ...any) {
	fmt.Fprintf(&p.buf, format, args...)
}

func (p *printer) newline() {
	p.buf.WriteByte('\n')
	p.buf.WriteString(strings.Repeat("  ", p.indent))
}

func (p *printer) typespec(t *ast.TypeSpec) {
	if t == nil {
		p.buf.WriteString("nil")
		return
	}
	switch t.Kind() {
	case ast.TypeSpecName:
		p.buf.WriteString(t.Name())
	case ast.TypeSpecPtr:
		p.buf.WriteString("(ptr ")
		p.typespec(t.Ptr().Elem)
		p.buf.WriteByte(')')
	case ast.TypeSpecArray:
		arr := t.Array()
		p.buf.WriteString("(array ")
		p.typespec(arr.Elem)
		p.buf.WriteByte(' ')
		p.expr(arr.Size)
		p.buf.WriteByte(')')
	case ast.TypeSpecFunc:
		fn := t.Func()
		p.buf.WriteString("(func (")
		for i, param := range fn.Params {
			if i > 0 {
				p.buf.WriteByte(' ')
			}
			p.typespec(param)
		}
		p.buf.WriteString(") ")
		p.typespec(fn.Ret)
		p.buf.WriteByte(')')
	default:
		panic(ast.BadKind("typespec", t.Kind()))
	}
}

func formatFloat(v float64) string {
	s := strconv.FormatFloat(v, 'g', -1, 64)
	if !strings.ContainsAny(s, ".eIN") {
		s += ".0"
	}
	return s
}

func (p *printer) exprList(xs []*ast.Expr) {
	for _, x := range xs {
		p.buf.WriteByte(' ')
		p.expr(x)
	}
}

func (p *printer) expr(e *ast.Expr) {
	if e == nil {
		p.buf.WriteString("nil")
		return
	}
	switch e.Kind() {
	case ast.ExprInt:
		p.buf.WriteString(strconv.FormatInt(e.Int(), 10))
	case ast.ExprFloat:
		p.buf.WriteString(formatFloat(e.Float()))
	case ast.ExprStr:
		p.buf.WriteString(strconv.Quote(e.Str()))
	case ast.ExprName:
		p.buf.WriteString(e.Name())
	case ast.ExprCall:
		call := e.Call()
		p.buf.WriteString("(call ")
		p.expr(call.Expr)
		p.exprList(call.Args)
		p.buf.WriteByte(')')
	case ast.ExprIndex:
		index := e.Index()
		p.buf.WriteString("(index ")
		p.expr(index.Expr)
		p.buf.WriteByte(' ')
		p.expr(index.Index)
		p.buf.WriteByte(')')
	case ast.ExprField:
		field := e.Field()
		p.buf.WriteString("(field ")
		p.expr(field.Expr)
		p.printf(" %s)", field.Name)
	case ast.ExprCast:
		cast := e.Cast()
		p.buf.WriteString("(cast ")
		p.typespec(cast.Type)
		p.buf.WriteByte(' ')
		p.expr(cast.Expr)
		p.buf.WriteByte(')')
	case ast.ExprCompound:
		compound := e.Compound()
		p.buf.WriteString("(compound ")
		p.typespec(compound.Type)
		p.exprList(compound.Args)
		p.buf.WriteByte(')')
	case ast.ExprUnary:
		unary := e.Unary()
		p.printf("(%v ", unary.Op)
		p.expr(unary.Expr)
		p.buf.WriteByte(')')
	case ast.ExprBinary:
		binary := e.Binary()
		p.printf("(%v ", binary.Op)
		p.expr(binary.Left)
		p.buf.WriteByte(' ')
		p.expr(binary.Right)
		p.buf.WriteByte(')')
	case ast.ExprTernary:
		ternary := e.Ternary()
		p.buf.WriteString("(? ")
		p.expr(ternary.Cond)
		p.buf.WriteByte(' ')
		p.expr(ternary.Then)
		p.buf.WriteByte(' ')
		p.expr(ternary.Else)
		p.buf.WriteByte(')')
	case ast.ExprSizeofExpr:
		p.buf.WriteString("(sizeof-expr ")
		p.expr(e.SizeofExpr())
		p.buf.WriteByte(')')
	case ast.ExprSizeofType:
		p.buf.WriteString("(sizeof-type ")
		p.typespec(e.SizeofType())
		p.buf.WriteByte(')')
	default:
		panic(ast.BadKind("expr", e.Kind()))
	}
}

func (p *printer) block(b ast.StmtBlock) {
	p.buf.WriteString("(block")
	p.indent++
	for _, s := range b.Stmts() {
		p.newline()
		p.stmt(s)
	}
	p.indent--
	p.buf.WriteByte(')')
}

// nestedBlock prints b on its own line one level deeper.
func (p *printer) nestedBlock(b ast.StmtBlock) {
	p.indent++
	p.newline()
	p.block(b)
	p.indent--
}

func (p *printer) stmt(s *ast.Stmt) {
	if s == nil {
		p.buf.WriteString("nil")
		return
	}
	switch s.Kind() {
	case ast.StmtDecl:
		p.decl(s.Decl())
	case ast.StmtReturn:
		p.buf.WriteString("(return")
		if x := s.Return().Expr; x != nil {
			p.buf.WriteByte(' ')
			p.expr(x)
		}
		p.buf.WriteByte(')')
	case ast.StmtBreak:
		p.buf.WriteString("(break)")
	case ast.StmtContinue:
		p.buf.WriteString("(continue)")
	case ast.StmtCompound:
		p.block(s.Block())
	case ast.StmtIf:
		ifStmt := s.If()
		p.buf.WriteString("(if ")
		p.expr(ifStmt.Cond)
		p.nestedBlock(ifStmt.Then)
		p.indent++
		for _, elseIf := range ifStmt.ElseIfs {
			p.newline()
			p.buf.WriteString("(elseif ")
			p.expr(elseIf.Cond)
			p.nestedBlock(elseIf.Block)
			p.buf.WriteByte(')')
		}
		if !ifStmt.Else.IsEmpty() {
			p.newline()
			p.buf.WriteString("(else")
			p.nestedBlock(ifStmt.Else)
			p.buf.WriteByte(')')
		}
		p.indent--
		p.buf.WriteByte(')')
	case ast.StmtWhile, ast.StmtDoWhile:
		while := s.While()
		p.printf("(%v ", s.Kind())
		p.expr(while.Cond)
		p.nestedBlock(while.Block)
		p.buf.WriteByte(')')
	case ast.StmtFor:
		forStmt := s.For()
		p.buf.WriteString("(for ")
		p.stmt(forStmt.Init)
		p.buf.WriteByte(' ')
		p.expr(forStmt.Cond)
		p.buf.WriteByte(' ')
		p.stmt(forStmt.Next)
		p.nestedBlock(forStmt.Block)
		p.buf.WriteByte(')')
	case ast.StmtSwitch:
		switchStmt := s.Switch()
		p.buf.WriteString("(switch ")
		p.expr(switchStmt.Expr)
		p.indent++
		for _, c := range switchStmt.Cases {
			p.newline()
			if c.IsDefault {
				p.buf.WriteString("(default")
			} else {
				p.buf.WriteString("(case (")
				for i, x := range c.Exprs {
					if i > 0 {
						p.buf.WriteByte(' ')
					}
					p.expr(x)
				}
				p.buf.WriteByte(')')
			}
			p.nestedBlock(c.Block)
			p.buf.WriteByte(')')
		}
		p.indent--
		p.buf.WriteByte(')')
	case ast.StmtAssign:
		assign := s.Assign()
		p.printf("(%v ", assign.Op)
		p.expr(assign.Left)
		p.buf.WriteByte(' ')
		p.expr(assign.Right)
		p.buf.WriteByte(')')
	case ast.StmtInit:
		init := s.Init()
		p.printf("(:= %s ", init.Name)
		p.expr(init.Expr)
		p.buf.WriteByte(')')
	case ast.StmtExpr:
		p.expr(s.Expr())
	default:
		panic(ast.BadKind("stmt", s.Kind()))
	}
}

func (p *printer) decl(d *ast.Decl) {
	if d == nil {
		p.buf.WriteString("nil")
		return
	}
	switch d.Kind() {
	case ast.DeclEnum:
		p.printf("(enum %s", d.Name())
		p.indent++
		for _, item := range d.Enum().Items {
			p.newline()
			p.buf.WriteString(item.Name)
		}
		p.indent--
		p.buf.WriteByte(')')
	case ast.DeclStruct, ast.DeclUnion:
		p.printf("(%v %s", d.Kind(), d.Name())
		p.indent++
		for _, item := range d.Aggregate().Items {
			p.newline()
			p.buf.WriteByte('(')
			p.typespec(item.Type)
			for _, name := range item.Names {
				p.printf(" %s", name)
			}
			p.buf.WriteByte(')')
		}
		p.indent--
		p.buf.WriteByte(')')
	case ast.DeclVar:
		v := d.Var()
		p.printf("(var %s ", d.Name())
		p.typespec(v.Type)
		p.buf.WriteByte(' ')
		p.expr(v.Expr)
		p.buf.WriteByte(')')
	case ast.DeclFunc:
		fn := d.Func()
		p.printf("(func %s (", d.Name())
		for i, param := range fn.Params {
			if i > 0 {
				p.buf.WriteByte(' ')
			}
			p.printf("(%s ", param.Name)
			p.typespec(param.Type)
			p.buf.WriteByte(')')
		}
		p.buf.WriteString(") ")
		p.typespec(fn.Ret)
		p.nestedBlock(fn.Block)
		p.buf.WriteByte(')')
	case ast.DeclConst:
		p.printf("(const %s ", d.Name())
		p.expr(d.Const().Expr)
		p.buf.WriteByte(')')
	case ast.DeclTypedef:
		p.printf("(typedef %s ", d.Name())
		p.typespec(d.Typedef().Type)
		p.buf.WriteByte(')')
	default:
		panic(ast.BadKind("decl", d.Kind()))
	}
}
