// Package ast holds the syntax tree of an Ion source file.
//
// There are four node families: TypeSpec, Expr, Stmt and Decl. Each node is
// a tagged variant: its Kind selects which payload accessor carries data, and
// every other payload of the node reads as its zero value. Nodes are built
// only through the constructor methods of an Arena, which copy every
// variable-length argument into arena storage. A node is never modified
// after its constructor returns.
//
// Consumers dispatch on Kind exhaustively. A kind outside the enumeration
// means the tree is corrupt and is treated as fatal.
package ast

import "fmt"

// Node is implemented by *TypeSpec, *Expr, *Stmt and *Decl.
type Node interface {
	node()
}

func (*TypeSpec) node() {}
func (*Expr) node()     {}
func (*Stmt) node()     {}
func (*Decl) node()     {}

type TypeSpecKind int

const (
	TypeSpecNone TypeSpecKind = iota
	TypeSpecName
	TypeSpecPtr
	TypeSpecArray
	TypeSpecFunc

	numTypeSpecKinds
)

var typeSpecKindNames = [...]string{
	TypeSpecNone:  "none",
	TypeSpecName:  "name",
	TypeSpecPtr:   "ptr",
	TypeSpecArray: "array",
	TypeSpecFunc:  "func",
}

func (k TypeSpecKind) String() string {
	if k >= 0 && k < numTypeSpecKinds {
		return typeSpecKindNames[k]
	}
	return fmt.Sprintf("TypeSpecKind(%d)", int(k))
}

// Valid reports whether k is a kind a constructor can produce.
func (k TypeSpecKind) Valid() bool { return k > TypeSpecNone && k < numTypeSpecKinds }

type ExprKind int

const (
	ExprNone ExprKind = iota
	ExprInt
	ExprFloat
	ExprStr
	ExprName
	ExprCall
	ExprIndex
	ExprField
	ExprCast
	ExprCompound
	ExprUnary
	ExprBinary
	ExprTernary
	ExprSizeofExpr
	ExprSizeofType

	numExprKinds
)

var exprKindNames = [...]string{
	ExprNone:       "none",
	ExprInt:        "int",
	ExprFloat:      "float",
	ExprStr:        "str",
	ExprName:       "name",
	ExprCall:       "call",
	ExprIndex:      "index",
	ExprField:      "field",
	ExprCast:       "cast",
	ExprCompound:   "compound",
	ExprUnary:      "unary",
	ExprBinary:     "binary",
	ExprTernary:    "ternary",
	ExprSizeofExpr: "sizeof-expr",
	ExprSizeofType: "sizeof-type",
}

func (k ExprKind) String() string {
	if k >= 0 && k < numExprKinds {
		return exprKindNames[k]
	}
	return fmt.Sprintf("ExprKind(%d)", int(k))
}

func (k ExprKind) Valid() bool { return k > ExprNone && k < numExprKinds }

type StmtKind int

const (
	StmtNone StmtKind = iota
	StmtDecl
	StmtReturn
	StmtBreak
	StmtContinue
	StmtCompound
	StmtIf
	StmtWhile
	StmtDoWhile
	StmtFor
	StmtSwitch
	StmtAssign
	StmtInit
	StmtExpr

	numStmtKinds
)

var stmtKindNames = [...]string{
	StmtNone:     "none",
	StmtDecl:     "decl",
	StmtReturn:   "return",
	StmtBreak:    "break",
	StmtContinue: "continue",
	StmtCompound: "block",
	StmtIf:       "if",
	StmtWhile:    "while",
	StmtDoWhile:  "do-while",
	StmtFor:      "for",
	StmtSwitch:   "switch",
	StmtAssign:   "assign",
	StmtInit:     "init",
	StmtExpr:     "expr",
}

func (k StmtKind) String() string {
	if k >= 0 && k < numStmtKinds {
		return stmtKindNames[k]
	}
	return fmt.Sprintf("StmtKind(%d)", int(k))
}

func (k StmtKind) Valid() bool { return k > StmtNone && k < numStmtKinds }

type DeclKind int

const (
	DeclNone DeclKind = iota
	DeclEnum
	DeclStruct
	DeclUnion
	DeclVar
	DeclFunc
	DeclConst
	DeclTypedef

	numDeclKinds
)

var declKindNames = [...]string{
	DeclNone:    "none",
	DeclEnum:    "enum",
	DeclStruct:  "struct",
	DeclUnion:   "union",
	DeclVar:     "var",
	DeclFunc:    "func",
	DeclConst:   "const",
	DeclTypedef: "typedef",
}

func (k DeclKind) String() string {
	if k >= 0 && k < numDeclKinds {
		return declKindNames[k]
	}
	return fmt.Sprintf("DeclKind(%d)", int(k))
}

func (k DeclKind) Valid() bool { return k > DeclNone && k < numDeclKinds }

// AllTypeSpecKinds and friends list every constructible kind of a family in
// declaration order.
func AllTypeSpecKinds() []TypeSpecKind {
	kinds := make([]TypeSpecKind, 0, numTypeSpecKinds-1)
	for k := TypeSpecNone + 1; k < numTypeSpecKinds; k++ {
		kinds = append(kinds, k)
	}
	return kinds
}

func AllExprKinds() []ExprKind {
	kinds := make([]ExprKind, 0, numExprKinds-1)
	for k := ExprNone + 1; k < numExprKinds; k++ {
		kinds = append(kinds, k)
	}
	return kinds
}

func AllStmtKinds() []StmtKind {
	kinds := make([]StmtKind, 0, numStmtKinds-1)
	for k := StmtNone + 1; k < numStmtKinds; k++ {
		kinds = append(kinds, k)
	}
	return kinds
}

func AllDeclKinds() []DeclKind {
	kinds := make([]DeclKind, 0, numDeclKinds-1)
	for k := DeclNone + 1; k < numDeclKinds; k++ {
		kinds = append(kinds, k)
	}
	return kinds
}

// BadKind is the panic message for a kind outside its family's enumeration.
func BadKind(family string, kind fmt.Stringer) string {
	return fmt.Sprintf("ast: unexpected %s kind %v", family, kind)
}
