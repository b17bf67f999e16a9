package ast

import "fmt"

type EnumItem struct {
	Name string
}

// AggregateItem is one field line of a struct or union: every name in Names
// shares Type.
type AggregateItem struct {
	Names []string
	Type  *TypeSpec
}

type FuncParam struct {
	Name string
	Type *TypeSpec
}

type Decl struct {
	kind      DeclKind
	name      string
	enum      EnumDecl
	aggregate AggregateDecl
	varDecl   VarDecl
	fn        FuncDecl
	constDecl ConstDecl
	typedef   TypedefDecl
}

type EnumDecl struct {
	Items []EnumItem
}

// AggregateDecl is the payload of both DeclStruct and DeclUnion.
type AggregateDecl struct {
	Items []AggregateItem
}

// VarDecl has at least one of Type and Expr.
type VarDecl struct {
	Type *TypeSpec
	Expr *Expr
}

type FuncDecl struct {
	Params []FuncParam
	Ret    *TypeSpec // nil when the function returns nothing
	Block  StmtBlock
}

type ConstDecl struct {
	Expr *Expr
}

type TypedefDecl struct {
	Type *TypeSpec
}

func (d *Decl) Kind() DeclKind           { return d.kind }
func (d *Decl) Name() string             { return d.name }
func (d *Decl) Enum() EnumDecl           { return d.enum }
func (d *Decl) Aggregate() AggregateDecl { return d.aggregate }
func (d *Decl) Var() VarDecl             { return d.varDecl }
func (d *Decl) Func() FuncDecl           { return d.fn }
func (d *Decl) Const() ConstDecl         { return d.constDecl }
func (d *Decl) Typedef() TypedefDecl     { return d.typedef }

func (a *Arena) newDecl(kind DeclKind, name string) *Decl {
	d := a.decls.alloc()
	d.kind = kind
	d.name = name
	return d
}

func (a *Arena) Enum(name string, items []EnumItem) *Decl {
	d := a.newDecl(DeclEnum, name)
	d.enum.Items = a.enumItems.dup(items)
	return d
}

// Aggregate builds a struct or union declaration. Any other kind panics.
func (a *Arena) Aggregate(kind DeclKind, name string, items []AggregateItem) *Decl {
	if kind != DeclStruct && kind != DeclUnion {
		panic(fmt.Sprintf("ast: aggregate kind must be struct or union, got %v", kind))
	}
	d := a.newDecl(kind, name)
	d.aggregate.Items = a.aggItems.dup(items)
	for i := range d.aggregate.Items {
		d.aggregate.Items[i].Names = a.names.dup(d.aggregate.Items[i].Names)
	}
	return d
}

func (a *Arena) Struct(name string, items []AggregateItem) *Decl {
	return a.Aggregate(DeclStruct, name, items)
}

func (a *Arena) Union(name string, items []AggregateItem) *Decl {
	return a.Aggregate(DeclUnion, name, items)
}

// Var panics when both typ and x are nil.
func (a *Arena) Var(name string, typ *TypeSpec, x *Expr) *Decl {
	if typ == nil && x == nil {
		panic(fmt.Sprintf("ast: var %s needs a type or an initializer", name))
	}
	d := a.newDecl(DeclVar, name)
	d.varDecl.Type = typ
	d.varDecl.Expr = x
	return d
}

func (a *Arena) Func(name string, params []FuncParam, ret *TypeSpec, block StmtBlock) *Decl {
	d := a.newDecl(DeclFunc, name)
	d.fn.Params = a.params.dup(params)
	d.fn.Ret = ret
	d.fn.Block = a.dupBlock(block)
	return d
}

func (a *Arena) Const(name string, x *Expr) *Decl {
	d := a.newDecl(DeclConst, name)
	d.constDecl.Expr = x
	return d
}

func (a *Arena) Typedef(name string, typ *TypeSpec) *Decl {
	d := a.newDecl(DeclTypedef, name)
	d.typedef.Type = typ
	return d
}
