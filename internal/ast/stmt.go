package ast

import "github.com/tinyrange/ion/internal/lexer"

// StmtBlock is an ordered statement list. The zero value is the empty block;
// an absent block (such as a missing else) and an empty one are the same.
// A non-empty StmtBlock is made only by Arena.Block.
type StmtBlock struct {
	stmts []*Stmt
}

func (b StmtBlock) Len() int       { return len(b.stmts) }
func (b StmtBlock) At(i int) *Stmt { return b.stmts[i] }
func (b StmtBlock) Stmts() []*Stmt { return b.stmts }
func (b StmtBlock) IsEmpty() bool  { return len(b.stmts) == 0 }

// Block copies stmts into the arena. The caller may reuse stmts as soon as
// Block returns.
func (a *Arena) Block(stmts []*Stmt) StmtBlock {
	return StmtBlock{stmts: a.stmtRefs.dup(stmts)}
}

func (a *Arena) dupBlock(b StmtBlock) StmtBlock {
	return a.Block(b.stmts)
}

type ElseIf struct {
	Cond  *Expr
	Block StmtBlock
}

// SwitchCase is one arm of a switch. Block holds the statements up to the
// next arm.
type SwitchCase struct {
	Exprs     []*Expr
	IsDefault bool
	Block     StmtBlock
}

type Stmt struct {
	kind      StmtKind
	decl      *Decl
	ret       ReturnStmt
	block     StmtBlock
	ifStmt    IfStmt
	whileStmt WhileStmt
	forStmt   ForStmt
	switchSt  SwitchStmt
	assign    AssignStmt
	init      InitStmt
	expr      *Expr
}

type ReturnStmt struct {
	Expr *Expr // nil for a bare return
}

type IfStmt struct {
	Cond    *Expr
	Then    StmtBlock
	ElseIfs []ElseIf
	Else    StmtBlock
}

// WhileStmt is the payload of both StmtWhile and StmtDoWhile.
type WhileStmt struct {
	Cond  *Expr
	Block StmtBlock
}

type ForStmt struct {
	Init  *Stmt // may be nil
	Cond  *Expr // may be nil
	Next  *Stmt // may be nil
	Block StmtBlock
}

type SwitchStmt struct {
	Expr  *Expr
	Cases []SwitchCase
}

type AssignStmt struct {
	Op    lexer.TokenType
	Left  *Expr
	Right *Expr
}

// InitStmt is `name := expr`.
type InitStmt struct {
	Name string
	Expr *Expr
}

func (s *Stmt) Kind() StmtKind     { return s.kind }
func (s *Stmt) Decl() *Decl        { return s.decl }
func (s *Stmt) Return() ReturnStmt { return s.ret }
func (s *Stmt) Block() StmtBlock   { return s.block }
func (s *Stmt) If() IfStmt         { return s.ifStmt }
func (s *Stmt) While() WhileStmt   { return s.whileStmt }
func (s *Stmt) For() ForStmt       { return s.forStmt }
func (s *Stmt) Switch() SwitchStmt { return s.switchSt }
func (s *Stmt) Assign() AssignStmt { return s.assign }
func (s *Stmt) Init() InitStmt     { return s.init }
func (s *Stmt) Expr() *Expr        { return s.expr }

func (a *Arena) newStmt(kind StmtKind) *Stmt {
	s := a.stmts.alloc()
	s.kind = kind
	return s
}

func (a *Arena) DeclStmt(d *Decl) *Stmt {
	s := a.newStmt(StmtDecl)
	s.decl = d
	return s
}

func (a *Arena) Return(x *Expr) *Stmt {
	s := a.newStmt(StmtReturn)
	s.ret.Expr = x
	return s
}

func (a *Arena) Break() *Stmt {
	return a.newStmt(StmtBreak)
}

func (a *Arena) Continue() *Stmt {
	return a.newStmt(StmtContinue)
}

func (a *Arena) BlockStmt(block StmtBlock) *Stmt {
	s := a.newStmt(StmtCompound)
	s.block = a.dupBlock(block)
	return s
}

func (a *Arena) If(cond *Expr, then StmtBlock, elseIfs []ElseIf, els StmtBlock) *Stmt {
	s := a.newStmt(StmtIf)
	s.ifStmt.Cond = cond
	s.ifStmt.Then = a.dupBlock(then)
	s.ifStmt.ElseIfs = a.elseIfs.dup(elseIfs)
	for i := range s.ifStmt.ElseIfs {
		s.ifStmt.ElseIfs[i].Block = a.dupBlock(s.ifStmt.ElseIfs[i].Block)
	}
	s.ifStmt.Else = a.dupBlock(els)
	return s
}

func (a *Arena) While(cond *Expr, block StmtBlock) *Stmt {
	s := a.newStmt(StmtWhile)
	s.whileStmt.Cond = cond
	s.whileStmt.Block = a.dupBlock(block)
	return s
}

func (a *Arena) DoWhile(cond *Expr, block StmtBlock) *Stmt {
	s := a.newStmt(StmtDoWhile)
	s.whileStmt.Cond = cond
	s.whileStmt.Block = a.dupBlock(block)
	return s
}

func (a *Arena) For(init *Stmt, cond *Expr, next *Stmt, block StmtBlock) *Stmt {
	s := a.newStmt(StmtFor)
	s.forStmt.Init = init
	s.forStmt.Cond = cond
	s.forStmt.Next = next
	s.forStmt.Block = a.dupBlock(block)
	return s
}

func (a *Arena) Switch(x *Expr, cases []SwitchCase) *Stmt {
	s := a.newStmt(StmtSwitch)
	s.switchSt.Expr = x
	s.switchSt.Cases = a.cases.dup(cases)
	for i := range s.switchSt.Cases {
		c := &s.switchSt.Cases[i]
		c.Exprs = a.exprRefs.dup(c.Exprs)
		c.Block = a.dupBlock(c.Block)
	}
	return s
}

func (a *Arena) Assign(op lexer.TokenType, left, right *Expr) *Stmt {
	s := a.newStmt(StmtAssign)
	s.assign.Op = op
	s.assign.Left = left
	s.assign.Right = right
	return s
}

func (a *Arena) Init(name string, x *Expr) *Stmt {
	s := a.newStmt(StmtInit)
	s.init.Name = name
	s.init.Expr = x
	return s
}

func (a *Arena) ExprStmt(x *Expr) *Stmt {
	s := a.newStmt(StmtExpr)
	s.expr = x
	return s
}
