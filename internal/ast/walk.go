package ast

// Walk traverses the tree rooted at node depth-first in source order, calling
// fn for each node. If fn returns false, Walk does not descend into that
// node's children. Nil children are skipped. A node with a kind outside its
// family's enumeration panics.
func Walk(node Node, fn func(Node) bool) {
	if isNil(node) || !fn(node) {
		return
	}

	switch n := node.(type) {
	case *TypeSpec:
		walkTypeSpec(n, fn)
	case *Expr:
		walkExpr(n, fn)
	case *Stmt:
		walkStmt(n, fn)
	case *Decl:
		walkDecl(n, fn)
	default:
		panic("ast: Walk of unknown node type")
	}
}

// WalkBlock walks every statement of b in order.
func WalkBlock(b StmtBlock, fn func(Node) bool) {
	for _, s := range b.stmts {
		Walk(s, fn)
	}
}

func isNil(node Node) bool {
	switch n := node.(type) {
	case *TypeSpec:
		return n == nil
	case *Expr:
		return n == nil
	case *Stmt:
		return n == nil
	case *Decl:
		return n == nil
	}
	return node == nil
}

func walkTypeSpec(t *TypeSpec, fn func(Node) bool) {
	switch t.kind {
	case TypeSpecName:
	case TypeSpecPtr:
		Walk(t.ptr.Elem, fn)
	case TypeSpecArray:
		Walk(t.array.Elem, fn)
		Walk(t.array.Size, fn)
	case TypeSpecFunc:
		for _, p := range t.fn.Params {
			Walk(p, fn)
		}
		Walk(t.fn.Ret, fn)
	default:
		panic(BadKind("typespec", t.kind))
	}
}

func walkExpr(e *Expr, fn func(Node) bool) {
	switch e.kind {
	case ExprInt, ExprFloat, ExprStr, ExprName:
	case ExprCall:
		Walk(e.call.Expr, fn)
		for _, arg := range e.call.Args {
			Walk(arg, fn)
		}
	case ExprIndex:
		Walk(e.index.Expr, fn)
		Walk(e.index.Index, fn)
	case ExprField:
		Walk(e.field.Expr, fn)
	case ExprCast:
		Walk(e.cast.Type, fn)
		Walk(e.cast.Expr, fn)
	case ExprCompound:
		Walk(e.compound.Type, fn)
		for _, arg := range e.compound.Args {
			Walk(arg, fn)
		}
	case ExprUnary:
		Walk(e.unary.Expr, fn)
	case ExprBinary:
		Walk(e.binary.Left, fn)
		Walk(e.binary.Right, fn)
	case ExprTernary:
		Walk(e.ternary.Cond, fn)
		Walk(e.ternary.Then, fn)
		Walk(e.ternary.Else, fn)
	case ExprSizeofExpr:
		Walk(e.sizeofExpr, fn)
	case ExprSizeofType:
		Walk(e.sizeofType, fn)
	default:
		panic(BadKind("expr", e.kind))
	}
}

func walkStmt(s *Stmt, fn func(Node) bool) {
	switch s.kind {
	case StmtDecl:
		Walk(s.decl, fn)
	case StmtReturn:
		Walk(s.ret.Expr, fn)
	case StmtBreak, StmtContinue:
	case StmtCompound:
		WalkBlock(s.block, fn)
	case StmtIf:
		Walk(s.ifStmt.Cond, fn)
		WalkBlock(s.ifStmt.Then, fn)
		for _, elseIf := range s.ifStmt.ElseIfs {
			Walk(elseIf.Cond, fn)
			WalkBlock(elseIf.Block, fn)
		}
		WalkBlock(s.ifStmt.Else, fn)
	case StmtWhile:
		Walk(s.whileStmt.Cond, fn)
		WalkBlock(s.whileStmt.Block, fn)
	case StmtDoWhile:
		WalkBlock(s.whileStmt.Block, fn)
		Walk(s.whileStmt.Cond, fn)
	case StmtFor:
		Walk(s.forStmt.Init, fn)
		Walk(s.forStmt.Cond, fn)
		Walk(s.forStmt.Next, fn)
		WalkBlock(s.forStmt.Block, fn)
	case StmtSwitch:
		Walk(s.switchSt.Expr, fn)
		for _, c := range s.switchSt.Cases {
			for _, x := range c.Exprs {
				Walk(x, fn)
			}
			WalkBlock(c.Block, fn)
		}
	case StmtAssign:
		Walk(s.assign.Left, fn)
		Walk(s.assign.Right, fn)
	case StmtInit:
		Walk(s.init.Expr, fn)
	case StmtExpr:
		Walk(s.expr, fn)
	default:
		panic(BadKind("stmt", s.kind))
	}
}

func walkDecl(d *Decl, fn func(Node) bool) {
	switch d.kind {
	case DeclEnum:
	case DeclStruct, DeclUnion:
		for _, item := range d.aggregate.Items {
			Walk(item.Type, fn)
		}
	case DeclVar:
		Walk(d.varDecl.Type, fn)
		Walk(d.varDecl.Expr, fn)
	case DeclFunc:
		for _, p := range d.fn.Params {
			Walk(p.Type, fn)
		}
		Walk(d.fn.Ret, fn)
		WalkBlock(d.fn.Block, fn)
	case DeclConst:
		Walk(d.constDecl.Expr, fn)
	case DeclTypedef:
		Walk(d.typedef.Type, fn)
	default:
		panic(BadKind("decl", d.kind))
	}
}
