package printer_test

import (
	"bytes"
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/tinyrange/ion/internal/ast"
	"github.com/tinyrange/ion/internal/lexer"
	"github.com/tinyrange/ion/internal/printer"
)

func TestFuncAdd(t *testing.T) {
	a := ast.NewArena()
	body := a.Block([]*ast.Stmt{
		a.Return(a.Binary(lexer.PLUS, a.Name("a"), a.Name("b"))),
	})
	fn := a.Func("add", []ast.FuncParam{
		{Name: "a", Type: a.TypeName("int")},
		{Name: "b", Type: a.TypeName("int")},
	}, a.TypeName("int"), body)

	want := "(func add ((a int) (b int)) int\n  (block\n    (return (+ a b))))"
	if got := printer.Sprint(fn); got != want {
		t.Errorf("got\n%s\nwant\n%s", got, want)
	}
}

func TestExprs(t *testing.T) {
	a := ast.NewArena()
	tests := []struct {
		name string
		expr *ast.Expr
		want string
	}{
		{"int", a.Int(-7), "-7"},
		{"float", a.Float(1.5), "1.5"},
		{"whole float", a.Float(3), "3.0"},
		{"big float", a.Float(1e21), "1e+21"},
		{"inf", a.Float(math.Inf(1)), "+Inf"},
		{"str", a.Str("a\"b\n"), `"a\"b\n"`},
		{"name", a.Name("x"), "x"},
		{"call", a.Call(a.Name("f"), []*ast.Expr{a.Int(1), a.Name("y")}), "(call f 1 y)"},
		{"call no args", a.Call(a.Name("f"), nil), "(call f)"},
		{"index", a.Index(a.Name("xs"), a.Int(0)), "(index xs 0)"},
		{"field", a.Field(a.Name("p"), "x"), "(field p x)"},
		{"cast", a.Cast(a.TypePtr(a.TypeName("void")), a.Name("p")), "(cast (ptr void) p)"},
		{"compound", a.Compound(a.TypeName("Vec"), []*ast.Expr{a.Int(1), a.Int(2)}), "(compound Vec 1 2)"},
		{"untyped compound", a.Compound(nil, nil), "(compound nil)"},
		{"unary", a.Unary(lexer.BANG, a.Name("ok")), "(! ok)"},
		{"binary", a.Binary(lexer.SHL, a.Int(1), a.Int(4)), "(<< 1 4)"},
		{"ternary", a.Ternary(a.Name("c"), a.Int(1), a.Int(2)), "(? c 1 2)"},
		{"sizeof expr", a.SizeofExpr(a.Name("x")), "(sizeof-expr x)"},
		{"sizeof type", a.SizeofType(a.TypeArray(a.TypeName("int"), a.Int(4))), "(sizeof-type (array int 4))"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := printer.Sprint(tt.expr); got != tt.want {
				t.Errorf("got %s, want %s", got, tt.want)
			}
		})
	}
}

func TestTypeSpecs(t *testing.T) {
	a := ast.NewArena()
	tests := []struct {
		typ  *ast.TypeSpec
		want string
	}{
		{a.TypeName("int"), "int"},
		{a.TypePtr(a.TypePtr(a.TypeName("char"))), "(ptr (ptr char))"},
		{a.TypeArray(a.TypeName("int"), nil), "(array int nil)"},
		{a.TypeFunc([]*ast.TypeSpec{a.TypeName("int"), a.TypeName("float")}, a.TypeName("int")), "(func (int float) int)"},
		{a.TypeFunc(nil, nil), "(func () nil)"},
	}
	for _, tt := range tests {
		if got := printer.Sprint(tt.typ); got != tt.want {
			t.Errorf("got %s, want %s", got, tt.want)
		}
	}
}

func TestStmts(t *testing.T) {
	a := ast.NewArena()
	tick := a.Block([]*ast.Stmt{a.ExprStmt(a.Call(a.Name("tick"), nil))})
	tests := []struct {
		name string
		stmt *ast.Stmt
		want string
	}{
		{"decl", a.DeclStmt(a.Var("i", a.TypeName("int"), a.Int(0))), "(var i int 0)"},
		{"bare return", a.Return(nil), "(return)"},
		{"return", a.Return(a.Int(1)), "(return 1)"},
		{"break", a.Break(), "(break)"},
		{"continue", a.Continue(), "(continue)"},
		{"empty block", a.BlockStmt(ast.StmtBlock{}), "(block)"},
		{"block", a.BlockStmt(tick), "(block\n  (call tick))"},
		{"if", a.If(a.Name("a"), tick, nil, ast.StmtBlock{}), "(if a\n  (block\n    (call tick)))"},
		{
			"if else",
			a.If(a.Name("a"), tick, []ast.ElseIf{{Cond: a.Name("b"), Block: tick}}, a.Block([]*ast.Stmt{a.Break()})),
			"(if a\n  (block\n    (call tick))\n  (elseif b\n    (block\n      (call tick)))\n  (else\n    (block\n      (break))))",
		},
		{"while", a.While(a.Name("ok"), tick), "(while ok\n  (block\n    (call tick)))"},
		{"do while", a.DoWhile(a.Name("ok"), tick), "(do-while ok\n  (block\n    (call tick)))"},
		{
			"for",
			a.For(a.Init("i", a.Int(0)), a.Binary(lexer.LT, a.Name("i"), a.Int(10)),
				a.Assign(lexer.ADD_ASSN, a.Name("i"), a.Int(1)), tick),
			"(for (:= i 0) (< i 10) (+= i 1)\n  (block\n    (call tick)))",
		},
		{"empty for", a.For(nil, nil, nil, ast.StmtBlock{}), "(for nil nil nil\n  (block))"},
		{
			"switch",
			a.Switch(a.Name("x"), []ast.SwitchCase{
				{Exprs: []*ast.Expr{a.Int(1), a.Int(2)}, Block: tick},
				{IsDefault: true},
			}),
			"(switch x\n  (case (1 2)\n    (block\n      (call tick)))\n  (default\n    (block)))",
		},
		{"empty switch", a.Switch(a.Name("x"), nil), "(switch x)"},
		{"assign", a.Assign(lexer.MUL_ASSN, a.Name("x"), a.Int(3)), "(*= x 3)"},
		{"init", a.Init("y", a.Float(2.5)), "(:= y 2.5)"},
		{"expr", a.ExprStmt(a.Name("x")), "x"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := printer.Sprint(tt.stmt); got != tt.want {
				t.Errorf("got\n%s\nwant\n%s", got, tt.want)
			}
		})
	}
}

func TestDecls(t *testing.T) {
	a := ast.NewArena()
	tests := []struct {
		name string
		decl *ast.Decl
		want string
	}{
		{"enum", a.Enum("Color", []ast.EnumItem{{Name: "Red"}, {Name: "Blue"}}), "(enum Color\n  Red\n  Blue)"},
		{
			"struct",
			a.Struct("Point", []ast.AggregateItem{{Names: []string{"x", "y"}, Type: a.TypeName("int")}}),
			"(struct Point\n  (int x y))",
		},
		{
			"union",
			a.Union("U", []ast.AggregateItem{{Names: []string{"f"}, Type: a.TypeName("float")}}),
			"(union U\n  (float f))",
		},
		{"var", a.Var("v", nil, a.Int(1)), "(var v nil 1)"},
		{"func", a.Func("main", nil, nil, ast.StmtBlock{}), "(func main () nil\n  (block))"},
		{"const", a.Const("N", a.Int(8)), "(const N 8)"},
		{"typedef", a.Typedef("Str", a.TypePtr(a.TypeName("char"))), "(typedef Str (ptr char))"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := printer.Sprint(tt.decl); got != tt.want {
				t.Errorf("got\n%s\nwant\n%s", got, tt.want)
			}
		})
	}
}

func TestNilChildren(t *testing.T) {
	var (
		e *ast.Expr
		s *ast.Stmt
		d *ast.Decl
		x *ast.TypeSpec
	)
	for _, n := range []any{e, s, d, x} {
		if got := printer.Sprint(n); got != "nil" {
			t.Errorf("Sprint(%T(nil)) = %q, want nil", n, got)
		}
	}
}

func TestFileSeparatesDecls(t *testing.T) {
	a := ast.NewArena()
	f := a.File("x.ion", []*ast.Decl{a.Const("A", a.Int(1)), a.Const("B", a.Int(2))})
	if got, want := printer.Sprint(f), "(const A 1)\n(const B 2)"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
	var buf bytes.Buffer
	if err := printer.Fprint(&buf, f); err != nil {
		t.Fatal(err)
	}
	if buf.String() != printer.Sprint(f) {
		t.Errorf("Fprint and Sprint disagree: %q", buf.String())
	}
}

type failWriter struct{}

var errWrite = errors.New("disk full")

func (failWriter) Write([]byte) (int, error) { return 0, errWrite }

func TestFprintReportsWriteErrors(t *testing.T) {
	a := ast.NewArena()
	if err := printer.Fprint(failWriter{}, a.Int(1)); !errors.Is(err, errWrite) {
		t.Errorf("err = %v, want %v", err, errWrite)
	}
}

func TestUnknownNodePanics(t *testing.T) {
	defer func() {
		r := recover()
		msg, _ := r.(string)
		if !strings.Contains(msg, "cannot print int") {
			t.Errorf("panic = %v", r)
		}
	}()
	printer.Sprint(42)
}
