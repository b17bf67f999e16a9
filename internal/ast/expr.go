package ast

import "github.com/tinyrange/ion/internal/lexer"

type Expr struct {
	kind       ExprKind
	intVal     int64
	floatVal   float64
	strVal     string
	name       string
	call       CallExpr
	index      IndexExpr
	field      FieldExpr
	cast       CastExpr
	compound   CompoundExpr
	unary      UnaryExpr
	binary     BinaryExpr
	ternary    TernaryExpr
	sizeofExpr *Expr
	sizeofType *TypeSpec
}

type CallExpr struct {
	Expr *Expr
	Args []*Expr
}

type IndexExpr struct {
	Expr  *Expr
	Index *Expr
}

type FieldExpr struct {
	Expr *Expr
	Name string
}

type CastExpr struct {
	Type *TypeSpec
	Expr *Expr
}

// CompoundExpr is a brace initializer. Type is nil when it is inferred from
// the context, as in `var p: Point = {1, 2}`.
type CompoundExpr struct {
	Type *TypeSpec
	Args []*Expr
}

// Op is a lexer token type; it is stored as given and not checked.
type UnaryExpr struct {
	Op   lexer.TokenType
	Expr *Expr
}

type BinaryExpr struct {
	Op    lexer.TokenType
	Left  *Expr
	Right *Expr
}

type TernaryExpr struct {
	Cond *Expr
	Then *Expr
	Else *Expr
}

func (e *Expr) Kind() ExprKind         { return e.kind }
func (e *Expr) Int() int64             { return e.intVal }
func (e *Expr) Float() float64         { return e.floatVal }
func (e *Expr) Str() string            { return e.strVal }
func (e *Expr) Name() string           { return e.name }
func (e *Expr) Call() CallExpr         { return e.call }
func (e *Expr) Index() IndexExpr       { return e.index }
func (e *Expr) Field() FieldExpr       { return e.field }
func (e *Expr) Cast() CastExpr         { return e.cast }
func (e *Expr) Compound() CompoundExpr { return e.compound }
func (e *Expr) Unary() UnaryExpr       { return e.unary }
func (e *Expr) Binary() BinaryExpr     { return e.binary }
func (e *Expr) Ternary() TernaryExpr   { return e.ternary }
func (e *Expr) SizeofExpr() *Expr      { return e.sizeofExpr }
func (e *Expr) SizeofType() *TypeSpec  { return e.sizeofType }

func (a *Arena) newExpr(kind ExprKind) *Expr {
	e := a.exprs.alloc()
	e.kind = kind
	return e
}

func (a *Arena) Int(v int64) *Expr {
	e := a.newExpr(ExprInt)
	e.intVal = v
	return e
}

func (a *Arena) Float(v float64) *Expr {
	e := a.newExpr(ExprFloat)
	e.floatVal = v
	return e
}

func (a *Arena) Str(s string) *Expr {
	e := a.newExpr(ExprStr)
	e.strVal = s
	return e
}

func (a *Arena) Name(name string) *Expr {
	e := a.newExpr(ExprName)
	e.name = name
	return e
}

func (a *Arena) Call(fn *Expr, args []*Expr) *Expr {
	e := a.newExpr(ExprCall)
	e.call.Expr = fn
	e.call.Args = a.exprRefs.dup(args)
	return e
}

func (a *Arena) Index(base, index *Expr) *Expr {
	e := a.newExpr(ExprIndex)
	e.index.Expr = base
	e.index.Index = index
	return e
}

func (a *Arena) Field(base *Expr, name string) *Expr {
	e := a.newExpr(ExprField)
	e.field.Expr = base
	e.field.Name = name
	return e
}

func (a *Arena) Cast(typ *TypeSpec, x *Expr) *Expr {
	e := a.newExpr(ExprCast)
	e.cast.Type = typ
	e.cast.Expr = x
	return e
}

func (a *Arena) Compound(typ *TypeSpec, args []*Expr) *Expr {
	e := a.newExpr(ExprCompound)
	e.compound.Type = typ
	e.compound.Args = a.exprRefs.dup(args)
	return e
}

func (a *Arena) Unary(op lexer.TokenType, x *Expr) *Expr {
	e := a.newExpr(ExprUnary)
	e.unary.Op = op
	e.unary.Expr = x
	return e
}

func (a *Arena) Binary(op lexer.TokenType, left, right *Expr) *Expr {
	e := a.newExpr(ExprBinary)
	e.binary.Op = op
	e.binary.Left = left
	e.binary.Right = right
	return e
}

func (a *Arena) Ternary(cond, then, els *Expr) *Expr {
	e := a.newExpr(ExprTernary)
	e.ternary.Cond = cond
	e.ternary.Then = then
	e.ternary.Else = els
	return e
}

func (a *Arena) SizeofExpr(x *Expr) *Expr {
	e := a.newExpr(ExprSizeofExpr)
	e.sizeofExpr = x
	return e
}

func (a *Arena) SizeofType(typ *TypeSpec) *Expr {
	e := a.newExpr(ExprSizeofType)
	e.sizeofType = typ
	return e
}
