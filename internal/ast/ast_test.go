package ast_test

import (
	"reflect"
	"strings"
	"testing"

	"github.com/tinyrange/ion/internal/ast"
	"github.com/tinyrange/ion/internal/lexer"
)

func expectPanic(t *testing.T, want string, fn func()) {
	t.Helper()
	defer func() {
		r := recover()
		if r == nil {
			t.Fatalf("expected panic containing %q", want)
		}
		if msg, ok := r.(string); !ok || !strings.Contains(msg, want) {
			t.Fatalf("panic = %v, want it to contain %q", r, want)
		}
	}()
	fn()
}

// One node of every kind, built the way a parser would.

func sampleTypeSpecs(a *ast.Arena) map[ast.TypeSpecKind]*ast.TypeSpec {
	return map[ast.TypeSpecKind]*ast.TypeSpec{
		ast.TypeSpecName:  a.TypeName("int"),
		ast.TypeSpecPtr:   a.TypePtr(a.TypeName("char")),
		ast.TypeSpecArray: a.TypeArray(a.TypeName("int"), a.Int(16)),
		ast.TypeSpecFunc:  a.TypeFunc([]*ast.TypeSpec{a.TypeName("int"), a.TypeName("float")}, a.TypeName("int")),
	}
}

func sampleExprs(a *ast.Arena) map[ast.ExprKind]*ast.Expr {
	return map[ast.ExprKind]*ast.Expr{
		ast.ExprInt:        a.Int(42),
		ast.ExprFloat:      a.Float(1.5),
		ast.ExprStr:        a.Str("hello"),
		ast.ExprName:       a.Name("x"),
		ast.ExprCall:       a.Call(a.Name("f"), []*ast.Expr{a.Int(1), a.Name("y")}),
		ast.ExprIndex:      a.Index(a.Name("xs"), a.Int(0)),
		ast.ExprField:      a.Field(a.Name("p"), "x"),
		ast.ExprCast:       a.Cast(a.TypePtr(a.TypeName("void")), a.Name("p")),
		ast.ExprCompound:   a.Compound(a.TypeName("Vec"), []*ast.Expr{a.Int(1), a.Int(2)}),
		ast.ExprUnary:      a.Unary(lexer.MINUS, a.Name("x")),
		ast.ExprBinary:     a.Binary(lexer.PLUS, a.Int(1), a.Int(2)),
		ast.ExprTernary:    a.Ternary(a.Name("c"), a.Int(1), a.Int(2)),
		ast.ExprSizeofExpr: a.SizeofExpr(a.Name("x")),
		ast.ExprSizeofType: a.SizeofType(a.TypeName("int")),
	}
}

func sampleStmts(a *ast.Arena) map[ast.StmtKind]*ast.Stmt {
	body := a.Block([]*ast.Stmt{a.ExprStmt(a.Call(a.Name("tick"), nil))})
	return map[ast.StmtKind]*ast.Stmt{
		ast.StmtDecl:     a.DeclStmt(a.Var("i", a.TypeName("int"), nil)),
		ast.StmtReturn:   a.Return(a.Int(0)),
		ast.StmtBreak:    a.Break(),
		ast.StmtContinue: a.Continue(),
		ast.StmtCompound: a.BlockStmt(body),
		ast.StmtIf: a.If(a.Name("a"), body,
			[]ast.ElseIf{{Cond: a.Name("b"), Block: body}},
			a.Block([]*ast.Stmt{a.Break()})),
		ast.StmtWhile:   a.While(a.Name("running"), body),
		ast.StmtDoWhile: a.DoWhile(a.Name("running"), body),
		ast.StmtFor: a.For(a.Init("i", a.Int(0)),
			a.Binary(lexer.LT, a.Name("i"), a.Int(10)),
			a.Assign(lexer.ADD_ASSN, a.Name("i"), a.Int(1)), body),
		ast.StmtSwitch: a.Switch(a.Name("x"), []ast.SwitchCase{
			{Exprs: []*ast.Expr{a.Int(1), a.Int(2)}, Block: body},
			{IsDefault: true, Block: a.Block([]*ast.Stmt{a.Break()})},
		}),
		ast.StmtAssign: a.Assign(lexer.ASSIGN, a.Name("x"), a.Int(3)),
		ast.StmtInit:   a.Init("y", a.Float(2.5)),
		ast.StmtExpr:   a.ExprStmt(a.Call(a.Name("f"), nil)),
	}
}

func sampleDecls(a *ast.Arena) map[ast.DeclKind]*ast.Decl {
	return map[ast.DeclKind]*ast.Decl{
		ast.DeclEnum: a.Enum("Color", []ast.EnumItem{{Name: "RED"}, {Name: "GREEN"}}),
		ast.DeclStruct: a.Struct("Vec", []ast.AggregateItem{
			{Names: []string{"x", "y"}, Type: a.TypeName("float")},
		}),
		ast.DeclUnion: a.Union("Value", []ast.AggregateItem{
			{Names: []string{"i"}, Type: a.TypeName("int")},
			{Names: []string{"f"}, Type: a.TypeName("float")},
		}),
		ast.DeclVar:     a.Var("v", nil, a.Int(1)),
		ast.DeclFunc:    a.Func("main", nil, a.TypeName("int"), a.Block([]*ast.Stmt{a.Return(a.Int(0))})),
		ast.DeclConst:   a.Const("N", a.Int(64)),
		ast.DeclTypedef: a.Typedef("Buf", a.TypeArray(a.TypeName("char"), a.Int(256))),
	}
}

func isZero(v any) bool { return reflect.ValueOf(v).IsZero() }

func TestTypeSpecPayloadsOfOtherKindsAreZero(t *testing.T) {
	payloads := map[ast.TypeSpecKind]func(*ast.TypeSpec) any{
		ast.TypeSpecName:  func(ts *ast.TypeSpec) any { return ts.Name() },
		ast.TypeSpecPtr:   func(ts *ast.TypeSpec) any { return ts.Ptr() },
		ast.TypeSpecArray: func(ts *ast.TypeSpec) any { return ts.Array() },
		ast.TypeSpecFunc:  func(ts *ast.TypeSpec) any { return ts.Func() },
	}
	for kind, node := range sampleTypeSpecs(ast.NewArena()) {
		if node.Kind() != kind {
			t.Fatalf("kind = %v, want %v", node.Kind(), kind)
		}
		for other, get := range payloads {
			if other != kind && !isZero(get(node)) {
				t.Errorf("%v node: %v payload is %+v, want zero", kind, other, get(node))
			}
		}
	}
}

func TestExprPayloadsOfOtherKindsAreZero(t *testing.T) {
	payloads := map[ast.ExprKind]func(*ast.Expr) any{
		ast.ExprInt:        func(e *ast.Expr) any { return e.Int() },
		ast.ExprFloat:      func(e *ast.Expr) any { return e.Float() },
		ast.ExprStr:        func(e *ast.Expr) any { return e.Str() },
		ast.ExprName:       func(e *ast.Expr) any { return e.Name() },
		ast.ExprCall:       func(e *ast.Expr) any { return e.Call() },
		ast.ExprIndex:      func(e *ast.Expr) any { return e.Index() },
		ast.ExprField:      func(e *ast.Expr) any { return e.Field() },
		ast.ExprCast:       func(e *ast.Expr) any { return e.Cast() },
		ast.ExprCompound:   func(e *ast.Expr) any { return e.Compound() },
		ast.ExprUnary:      func(e *ast.Expr) any { return e.Unary() },
		ast.ExprBinary:     func(e *ast.Expr) any { return e.Binary() },
		ast.ExprTernary:    func(e *ast.Expr) any { return e.Ternary() },
		ast.ExprSizeofExpr: func(e *ast.Expr) any { return e.SizeofExpr() },
		ast.ExprSizeofType: func(e *ast.Expr) any { return e.SizeofType() },
	}
	if len(payloads) != len(ast.AllExprKinds()) {
		t.Fatalf("payload table covers %d kinds, want %d", len(payloads), len(ast.AllExprKinds()))
	}
	for kind, node := range sampleExprs(ast.NewArena()) {
		if node.Kind() != kind {
			t.Fatalf("kind = %v, want %v", node.Kind(), kind)
		}
		for other, get := range payloads {
			if other != kind && !isZero(get(node)) {
				t.Errorf("%v node: %v payload is %+v, want zero", kind, other, get(node))
			}
		}
	}
}

func TestStmtPayloadsOfOtherKindsAreZero(t *testing.T) {
	// while and do-while share one payload; break and continue have none
	payloads := map[string]func(*ast.Stmt) any{
		"decl":   func(s *ast.Stmt) any { return s.Decl() },
		"return": func(s *ast.Stmt) any { return s.Return() },
		"block":  func(s *ast.Stmt) any { return s.Block() },
		"if":     func(s *ast.Stmt) any { return s.If() },
		"while":  func(s *ast.Stmt) any { return s.While() },
		"for":    func(s *ast.Stmt) any { return s.For() },
		"switch": func(s *ast.Stmt) any { return s.Switch() },
		"assign": func(s *ast.Stmt) any { return s.Assign() },
		"init":   func(s *ast.Stmt) any { return s.Init() },
		"expr":   func(s *ast.Stmt) any { return s.Expr() },
	}
	active := map[ast.StmtKind]string{
		ast.StmtDecl:     "decl",
		ast.StmtReturn:   "return",
		ast.StmtCompound: "block",
		ast.StmtIf:       "if",
		ast.StmtWhile:    "while",
		ast.StmtDoWhile:  "while",
		ast.StmtFor:      "for",
		ast.StmtSwitch:   "switch",
		ast.StmtAssign:   "assign",
		ast.StmtInit:     "init",
		ast.StmtExpr:     "expr",
	}
	for kind, node := range sampleStmts(ast.NewArena()) {
		if node.Kind() != kind {
			t.Fatalf("kind = %v, want %v", node.Kind(), kind)
		}
		for name, get := range payloads {
			if name != active[kind] && !isZero(get(node)) {
				t.Errorf("%v node: %s payload is %+v, want zero", kind, name, get(node))
			}
		}
	}
}

func TestDeclPayloadsOfOtherKindsAreZero(t *testing.T) {
	payloads := map[string]func(*ast.Decl) any{
		"enum":      func(d *ast.Decl) any { return d.Enum() },
		"aggregate": func(d *ast.Decl) any { return d.Aggregate() },
		"var":       func(d *ast.Decl) any { return d.Var() },
		"func":      func(d *ast.Decl) any { return d.Func() },
		"const":     func(d *ast.Decl) any { return d.Const() },
		"typedef":   func(d *ast.Decl) any { return d.Typedef() },
	}
	active := map[ast.DeclKind]string{
		ast.DeclEnum:    "enum",
		ast.DeclStruct:  "aggregate",
		ast.DeclUnion:   "aggregate",
		ast.DeclVar:     "var",
		ast.DeclFunc:    "func",
		ast.DeclConst:   "const",
		ast.DeclTypedef: "typedef",
	}
	for kind, node := range sampleDecls(ast.NewArena()) {
		if node.Kind() != kind {
			t.Fatalf("kind = %v, want %v", node.Kind(), kind)
		}
		if node.Name() == "" {
			t.Errorf("%v node has no name", kind)
		}
		for name, get := range payloads {
			if name != active[kind] && !isZero(get(node)) {
				t.Errorf("%v node: %s payload is %+v, want zero", kind, name, get(node))
			}
		}
	}
}

func TestBinaryOfTwoLiterals(t *testing.T) {
	a := ast.NewArena()
	e := a.Binary(lexer.PLUS, a.Int(1), a.Int(2))

	if e.Kind() != ast.ExprBinary {
		t.Fatalf("kind = %v, want binary", e.Kind())
	}
	bin := e.Binary()
	if bin.Op != lexer.PLUS {
		t.Errorf("op = %v, want +", bin.Op)
	}
	if bin.Left.Kind() != ast.ExprInt || bin.Left.Int() != 1 {
		t.Errorf("left = %v %d, want int 1", bin.Left.Kind(), bin.Left.Int())
	}
	if bin.Right.Kind() != ast.ExprInt || bin.Right.Int() != 2 {
		t.Errorf("right = %v %d, want int 2", bin.Right.Kind(), bin.Right.Int())
	}
}

func TestFuncDeclAdd(t *testing.T) {
	a := ast.NewArena()
	params := []ast.FuncParam{
		{Name: "a", Type: a.TypeName("int")},
		{Name: "b", Type: a.TypeName("int")},
	}
	body := a.Block([]*ast.Stmt{
		a.Return(a.Binary(lexer.PLUS, a.Name("a"), a.Name("b"))),
	})
	d := a.Func("add", params, a.TypeName("int"), body)

	if d.Kind() != ast.DeclFunc || d.Name() != "add" {
		t.Fatalf("got %v %q, want func add", d.Kind(), d.Name())
	}
	fn := d.Func()
	if len(fn.Params) != 2 {
		t.Fatalf("len(params) = %d, want 2", len(fn.Params))
	}
	for i, want := range []string{"a", "b"} {
		p := fn.Params[i]
		if p.Name != want || p.Type.Kind() != ast.TypeSpecName || p.Type.Name() != "int" {
			t.Errorf("param %d = %s %v %q, want %s int", i, p.Name, p.Type.Kind(), p.Type.Name(), want)
		}
	}
	if fn.Ret == nil || fn.Ret.Kind() != ast.TypeSpecName || fn.Ret.Name() != "int" {
		t.Errorf("ret = %+v, want name int", fn.Ret)
	}
	if fn.Block.Len() != 1 {
		t.Fatalf("body has %d stmts, want 1", fn.Block.Len())
	}
	ret := fn.Block.At(0)
	if ret.Kind() != ast.StmtReturn {
		t.Fatalf("body[0] = %v, want return", ret.Kind())
	}
	sum := ret.Return().Expr
	if sum.Kind() != ast.ExprBinary || sum.Binary().Op != lexer.PLUS {
		t.Fatalf("return value = %v, want binary +", sum.Kind())
	}
	if l, r := sum.Binary().Left, sum.Binary().Right; l.Name() != "a" || r.Name() != "b" {
		t.Errorf("operands = %q %q, want a b", l.Name(), r.Name())
	}
}

func TestConstructorsCopyCallerArrays(t *testing.T) {
	a := ast.NewArena()

	scratch := []ast.FuncParam{
		{Name: "x", Type: a.TypeName("int")},
		{Name: "y", Type: a.TypeName("float")},
		{Name: "z", Type: a.TypePtr(a.TypeName("char"))},
	}
	d := a.Func("f", scratch, nil, ast.StmtBlock{})
	for i := range scratch {
		scratch[i] = ast.FuncParam{Name: "clobbered"}
	}

	params := d.Func().Params
	if len(params) != 3 {
		t.Fatalf("len(params) = %d, want 3", len(params))
	}
	for i, want := range []string{"x", "y", "z"} {
		if params[i].Name != want || params[i].Type == nil {
			t.Errorf("param %d = %+v, want %s", i, params[i], want)
		}
	}

	// nested arrays inside records are copied too
	names := []string{"lo", "hi"}
	labels := []*ast.Expr{a.Int(1)}
	agg := a.Struct("Range", []ast.AggregateItem{{Names: names, Type: a.TypeName("int")}})
	sw := a.Switch(a.Name("v"), []ast.SwitchCase{{Exprs: labels}})
	names[0] = "clobbered"
	labels[0] = a.Int(99)

	if got := agg.Aggregate().Items[0].Names[0]; got != "lo" {
		t.Errorf("field name = %q, want lo", got)
	}
	if got := sw.Switch().Cases[0].Exprs[0].Int(); got != 1 {
		t.Errorf("case label = %d, want 1", got)
	}

	args := []*ast.Expr{a.Int(1), a.Int(2)}
	call := a.Call(a.Name("g"), args)
	args[1] = nil
	if call.Call().Args[1] == nil {
		t.Error("call argument aliases the caller's slice")
	}
}

func TestBlockKeepsOrderAndIsolation(t *testing.T) {
	a := ast.NewArena()
	sa, sb, sc := a.Break(), a.Continue(), a.Return(nil)
	buf := []*ast.Stmt{sa, sb, sc}

	block := a.Block(buf)
	// reuse the buffer for the next block, as a parser does
	inner := a.Break()
	buf = append(buf[:0], inner)
	next := a.Block(buf)

	if block.Len() != 3 {
		t.Fatalf("len = %d, want 3", block.Len())
	}
	for i, want := range []*ast.Stmt{sa, sb, sc} {
		if block.At(i) != want {
			t.Errorf("stmt %d = %v, want %v", i, block.At(i).Kind(), want.Kind())
		}
	}
	if next.Len() != 1 || next.At(0) != inner {
		t.Fatalf("next block = %v", next.Stmts())
	}

	// appending to what a reader got back never reaches the next block
	_ = append(block.Stmts(), a.Continue())
	if next.At(0) != inner {
		t.Error("append through Stmts() overwrote the following block")
	}
}

func TestCompositeStmtsOwnTheirBlocks(t *testing.T) {
	a := ast.NewArena()
	body := a.Block([]*ast.Stmt{a.Break()})
	w := a.While(a.Name("c"), body)

	got := w.While().Block.Stmts()
	if &got[0] == &body.Stmts()[0] {
		t.Error("while shares block storage with its argument")
	}
	if got[0] != body.At(0) {
		t.Error("while block lost its statement")
	}
}

func TestLengthsMatchInputs(t *testing.T) {
	a := ast.NewArena()
	for _, n := range []int{0, 1, 5} {
		args := make([]*ast.Expr, n)
		for i := range args {
			args[i] = a.Int(int64(i))
		}
		if got := len(a.Call(a.Name("f"), args).Call().Args); got != n {
			t.Errorf("call with %d args has %d", n, got)
		}
		if got := len(a.Compound(nil, args).Compound().Args); got != n {
			t.Errorf("compound with %d args has %d", n, got)
		}
		types := make([]*ast.TypeSpec, n)
		for i := range types {
			types[i] = a.TypeName("int")
		}
		if got := len(a.TypeFunc(types, nil).Func().Params); got != n {
			t.Errorf("func type with %d params has %d", n, got)
		}
		items := make([]ast.EnumItem, n)
		if got := len(a.Enum("E", items).Enum().Items); got != n {
			t.Errorf("enum with %d items has %d", n, got)
		}
		stmts := make([]*ast.Stmt, n)
		for i := range stmts {
			stmts[i] = a.Break()
		}
		if got := a.Block(stmts).Len(); got != n {
			t.Errorf("block with %d stmts has %d", n, got)
		}
	}

	// an absent else and an empty else are the same
	s := a.If(a.Name("c"), ast.StmtBlock{}, nil, ast.StmtBlock{})
	if ifs := s.If(); !ifs.Else.IsEmpty() || ifs.Else.Len() != 0 || len(ifs.ElseIfs) != 0 || !ifs.Then.IsEmpty() {
		t.Errorf("empty if = %+v", ifs)
	}
}

func TestAggregateKindMustBeStructOrUnion(t *testing.T) {
	a := ast.NewArena()
	if d := a.Aggregate(ast.DeclUnion, "U", nil); d.Kind() != ast.DeclUnion {
		t.Errorf("kind = %v, want union", d.Kind())
	}
	for _, kind := range []ast.DeclKind{ast.DeclNone, ast.DeclEnum, ast.DeclVar, ast.DeclKind(42)} {
		expectPanic(t, "must be struct or union", func() {
			a.Aggregate(kind, "Bad", nil)
		})
	}
}

func TestVarNeedsTypeOrInitializer(t *testing.T) {
	a := ast.NewArena()
	expectPanic(t, "needs a type or an initializer", func() {
		a.Var("x", nil, nil)
	})
	if v := a.Var("x", a.TypeName("int"), nil).Var(); v.Type == nil || v.Expr != nil {
		t.Errorf("typed var = %+v", v)
	}
}

func TestWalkVisitsEveryKind(t *testing.T) {
	a := ast.NewArena()
	seenType := map[ast.TypeSpecKind]bool{}
	seenExpr := map[ast.ExprKind]bool{}
	seenStmt := map[ast.StmtKind]bool{}
	seenDecl := map[ast.DeclKind]bool{}
	visit := func(n ast.Node) bool {
		switch n := n.(type) {
		case *ast.TypeSpec:
			seenType[n.Kind()] = true
		case *ast.Expr:
			seenExpr[n.Kind()] = true
		case *ast.Stmt:
			seenStmt[n.Kind()] = true
		case *ast.Decl:
			seenDecl[n.Kind()] = true
		}
		return true
	}
	for _, n := range sampleTypeSpecs(a) {
		ast.Walk(n, visit)
	}
	for _, n := range sampleExprs(a) {
		ast.Walk(n, visit)
	}
	for _, n := range sampleStmts(a) {
		ast.Walk(n, visit)
	}
	for _, n := range sampleDecls(a) {
		ast.Walk(n, visit)
	}

	for _, k := range ast.AllTypeSpecKinds() {
		if !seenType[k] {
			t.Errorf("typespec kind %v not visited", k)
		}
	}
	for _, k := range ast.AllExprKinds() {
		if !seenExpr[k] {
			t.Errorf("expr kind %v not visited", k)
		}
	}
	for _, k := range ast.AllStmtKinds() {
		if !seenStmt[k] {
			t.Errorf("stmt kind %v not visited", k)
		}
	}
	for _, k := range ast.AllDeclKinds() {
		if !seenDecl[k] {
			t.Errorf("decl kind %v not visited", k)
		}
	}
}

func TestWalkOrderAndPruning(t *testing.T) {
	a := ast.NewArena()
	// f(1 + 2, g(3))
	call := a.Call(a.Name("f"), []*ast.Expr{
		a.Binary(lexer.PLUS, a.Int(1), a.Int(2)),
		a.Call(a.Name("g"), []*ast.Expr{a.Int(3)}),
	})

	var order []string
	ast.Walk(call, func(n ast.Node) bool {
		e := n.(*ast.Expr)
		switch e.Kind() {
		case ast.ExprInt:
			order = append(order, "int")
		case ast.ExprName:
			order = append(order, e.Name())
		default:
			order = append(order, e.Kind().String())
		}
		// do not look inside g(...)
		return !(e.Kind() == ast.ExprCall && e.Call().Expr.Name() == "g")
	})

	want := []string{"call", "f", "binary", "int", "int", "call"}
	if !reflect.DeepEqual(order, want) {
		t.Errorf("order = %v, want %v", order, want)
	}
}

func TestKindStrings(t *testing.T) {
	tests := []struct {
		kind interface{ String() string }
		want string
	}{
		{ast.TypeSpecArray, "array"},
		{ast.ExprSizeofType, "sizeof-type"},
		{ast.StmtDoWhile, "do-while"},
		{ast.StmtCompound, "block"},
		{ast.DeclTypedef, "typedef"},
		{ast.ExprKind(99), "ExprKind(99)"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
	if ast.ExprNone.Valid() || !ast.ExprCall.Valid() || ast.DeclKind(-1).Valid() {
		t.Error("Valid() disagrees with the enumeration")
	}
}

func TestStats(t *testing.T) {
	a := ast.NewArena()
	a.Func("f", []ast.FuncParam{{Name: "x", Type: a.TypeName("int")}}, nil,
		a.Block([]*ast.Stmt{a.Return(a.Name("x"))}))

	st := a.Stats()
	want := ast.Stats{TypeSpecs: 1, Exprs: 1, Stmts: 1, Decls: 1}
	// 1 param + 1 stmt in the scratch-copied block + 1 stmt in the func's own copy
	want.ListElems = 3
	if st != want {
		t.Errorf("stats = %+v, want %+v", st, want)
	}
	if st.Nodes() != 4 {
		t.Errorf("Nodes() = %d, want 4", st.Nodes())
	}
}

func TestFileCopiesDecls(t *testing.T) {
	a := ast.NewArena()
	decls := []*ast.Decl{a.Const("A", a.Int(1)), a.Const("B", a.Int(2))}
	f := a.File("x.ion", decls)
	decls[0] = nil
	if f.Decls[0] == nil || f.Decls[0].Name() != "A" || len(f.Decls) != 2 {
		t.Errorf("file decls = %v", f.Decls)
	}
	if f.Arena != a || f.Name != "x.ion" {
		t.Errorf("file = %+v", f)
	}
}
