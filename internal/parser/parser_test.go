package parser

import (
	"errors"
	"testing"

	"minim/internal/ast"
	"minim/internal/diag"
	"minim/internal/source"
)

type parseResult struct {
	builder *ast.Builder
	strings *source.Interner
	fileSet *source.FileSet
	program ast.ProgramID
	bag     *diag.Bag
	err     error
}

func parseSource(t *testing.T, src string) parseResult {
	t.Helper()
	fileSet := source.NewFileSet()
	fileID := fileSet.AddVirtual("test.minim", []byte(src))
	builder := ast.NewBuilder(ast.Hints{})
	bag := diag.NewBag(64)
	p := New(fileSet.Get(fileID), builder, Options{Reporter: diag.BagReporter{Bag: bag}})
	program, err := p.ParseProgram()
	return parseResult{
		builder: builder,
		strings: p.Strings(),
		fileSet: fileSet,
		program: program,
		bag:     bag,
		err:     err,
	}
}

func mustParse(t *testing.T, src string) parseResult {
	t.Helper()
	res := parseSource(t, src)
	if res.err != nil {
		t.Fatalf("parse failed: %v", res.err)
	}
	if res.bag.HasErrors() {
		t.Fatalf("unexpected diagnostics: %s", diag.FormatGolden(res.bag, res.fileSet, false))
	}
	return res
}

func (r parseResult) decls(t *testing.T) []ast.DeclID {
	t.Helper()
	prog := r.builder.Programs.Get(r.program)
	if prog == nil {
		t.Fatal("nil program")
	}
	return prog.Decls
}

func (r parseResult) name(t *testing.T, id source.StringID) string {
	t.Helper()
	return r.strings.MustLookup(id)
}

func TestParseVarDecls(t *testing.T) {
	res := mustParse(t, "int a;\nbool flag;\nstruct Point origin;\n")
	decls := res.decls(t)
	if len(decls) != 3 {
		t.Fatalf("got %d decls, want 3", len(decls))
	}

	wantNames := []string{"a", "flag", "origin"}
	wantKinds := []ast.TypeKind{ast.TypeInt, ast.TypeBool, ast.TypeStruct}
	for i, id := range decls {
		data, ok := res.builder.Decls.Var(id)
		if !ok {
			t.Fatalf("decl %d: not a var decl", i)
		}
		if got := res.name(t, data.Name); got != wantNames[i] {
			t.Errorf("decl %d: name %q, want %q", i, got, wantNames[i])
		}
		typ := res.builder.Types.Get(data.Type)
		if typ.Kind != wantKinds[i] {
			t.Errorf("decl %d: type kind %v, want %v", i, typ.Kind, wantKinds[i])
		}
	}

	data, _ := res.builder.Decls.Var(decls[2])
	typ := res.builder.Types.Get(data.Type)
	if got := res.name(t, typ.Name); got != "Point" {
		t.Errorf("struct type name %q, want \"Point\"", got)
	}
}

func TestParseStructDecl(t *testing.T) {
	res := mustParse(t, "struct Point {\n    int x;\n    int y;\n};\n")
	decls := res.decls(t)
	if len(decls) != 1 {
		t.Fatalf("got %d decls, want 1", len(decls))
	}
	data, ok := res.builder.Decls.Struct(decls[0])
	if !ok {
		t.Fatal("not a struct decl")
	}
	if got := res.name(t, data.Name); got != "Point" {
		t.Errorf("struct name %q, want \"Point\"", got)
	}
	if len(data.Fields) != 2 {
		t.Fatalf("got %d fields, want 2", len(data.Fields))
	}
	for i, want := range []string{"x", "y"} {
		field, ok := res.builder.Decls.Var(data.Fields[i])
		if !ok {
			t.Fatalf("field %d: not a var decl", i)
		}
		if got := res.name(t, field.Name); got != want {
			t.Errorf("field %d: name %q, want %q", i, got, want)
		}
	}
}

func TestParseStructDeclMissingSemicolon(t *testing.T) {
	res := parseSource(t, "struct Point { int x; }\n")
	if !errors.Is(res.err, ErrSyntax) {
		t.Fatalf("err = %v, want ErrSyntax", res.err)
	}
}

func TestParseFunction(t *testing.T) {
	res := mustParse(t, "void main(int argc, struct Config cfg) {\n    int n;\n    n = argc;\n}\n")
	decls := res.decls(t)
	fn, ok := res.builder.Decls.Fn(decls[0])
	if !ok {
		t.Fatal("not a fn decl")
	}
	if got := res.name(t, fn.Name); got != "main" {
		t.Errorf("fn name %q, want \"main\"", got)
	}
	if res.builder.Types.Get(fn.ReturnType).Kind != ast.TypeVoid {
		t.Error("return type is not void")
	}
	if len(fn.Formals) != 2 {
		t.Fatalf("got %d formals, want 2", len(fn.Formals))
	}
	second, _ := res.builder.Decls.Formal(fn.Formals[1])
	if res.builder.Types.Get(second.Type).Kind != ast.TypeStruct {
		t.Error("second formal is not a struct type")
	}
	if len(fn.BodyDecls) != 1 || len(fn.BodyStmts) != 1 {
		t.Fatalf("body has %d decls and %d stmts, want 1 and 1", len(fn.BodyDecls), len(fn.BodyStmts))
	}
	if res.builder.Stmts.Get(fn.BodyStmts[0]).Kind != ast.StmtAssign {
		t.Error("body stmt is not an assignment")
	}
}

func TestParseStatements(t *testing.T) {
	src := `void main() {
    int i;
    bool b;
    i = 0;
    i++;
    i--;
    input >> i;
    disp << i + 1;
    if (b) {
        i = 1;
    }
    if (b) {
        i = 1;
    } else {
        i = 2;
    }
    while (i < 10) {
        i++;
    }
    helper(i, true);
    return;
}
`
	res := mustParse(t, src)
	fn, _ := res.builder.Decls.Fn(res.decls(t)[0])

	want := []ast.StmtKind{
		ast.StmtAssign, ast.StmtPostInc, ast.StmtPostDec,
		ast.StmtRead, ast.StmtWrite,
		ast.StmtIf, ast.StmtIfElse, ast.StmtWhile,
		ast.StmtCall, ast.StmtReturn,
	}
	if len(fn.BodyStmts) != len(want) {
		t.Fatalf("got %d stmts, want %d", len(fn.BodyStmts), len(want))
	}
	for i, id := range fn.BodyStmts {
		if got := res.builder.Stmts.Get(id).Kind; got != want[i] {
			t.Errorf("stmt %d: kind %v, want %v", i, got, want[i])
		}
	}

	ifElse, ok := res.builder.Stmts.If(fn.BodyStmts[6])
	if !ok {
		t.Fatal("stmt 6 has no if payload")
	}
	if len(ifElse.ThenStmts) != 1 || len(ifElse.ElseStmts) != 1 {
		t.Errorf("if/else arms: %d then, %d else, want 1 and 1",
			len(ifElse.ThenStmts), len(ifElse.ElseStmts))
	}
}

func TestParseReturnValue(t *testing.T) {
	res := mustParse(t, "int f() {\n    return 42;\n}\n")
	fn, _ := res.builder.Decls.Fn(res.decls(t)[0])
	data, ok := res.builder.Stmts.SimpleData(fn.BodyStmts[0])
	if !ok {
		t.Fatal("return stmt has no payload")
	}
	lit, ok := res.builder.Exprs.IntLit(data.Expr)
	if !ok {
		t.Fatal("return value is not an int literal")
	}
	if lit.Value != 42 {
		t.Errorf("value %d, want 42", lit.Value)
	}
}

// firstAssignRhs digs out the right-hand side of the only statement,
// which must be an assignment.
func firstAssignRhs(t *testing.T, res parseResult) ast.ExprID {
	t.Helper()
	fn, _ := res.builder.Decls.Fn(res.decls(t)[0])
	stmt, ok := res.builder.Stmts.SimpleData(fn.BodyStmts[0])
	if !ok {
		t.Fatal("stmt has no payload")
	}
	assign, ok := res.builder.Exprs.Assign(stmt.Expr)
	if !ok {
		t.Fatal("stmt expr is not an assignment")
	}
	return assign.Rhs
}

func TestParsePrecedence(t *testing.T) {
	res := mustParse(t, "void main() {\n    int x;\n    x = 1 + 2 * 3;\n}\n")
	rhs := firstAssignRhs(t, res)

	top, ok := res.builder.Exprs.Binary(rhs)
	if !ok {
		t.Fatal("rhs is not a binary expression")
	}
	if top.Op != ast.BinaryAdd {
		t.Fatalf("top op = %v, want +", top.Op)
	}
	right, ok := res.builder.Exprs.Binary(top.Right)
	if !ok {
		t.Fatal("right side is not a binary expression")
	}
	if right.Op != ast.BinaryMul {
		t.Fatalf("right op = %v, want *", right.Op)
	}
}

func TestParseLogicalPrecedence(t *testing.T) {
	res := mustParse(t, "void main() {\n    bool b;\n    b = true || false && 1 < 2;\n}\n")
	rhs := firstAssignRhs(t, res)

	top, ok := res.builder.Exprs.Binary(rhs)
	if !ok {
		t.Fatal("rhs is not a binary expression")
	}
	if top.Op != ast.BinaryOr {
		t.Fatalf("top op = %v, want ||", top.Op)
	}
	right, ok := res.builder.Exprs.Binary(top.Right)
	if !ok {
		t.Fatal("right side is not a binary expression")
	}
	if right.Op != ast.BinaryAnd {
		t.Fatalf("right op = %v, want &&", right.Op)
	}
	cmp, ok := res.builder.Exprs.Binary(right.Right)
	if !ok {
		t.Fatal("inner expression is not a binary expression")
	}
	if cmp.Op != ast.BinaryLess {
		t.Fatalf("inner op = %v, want <", cmp.Op)
	}
}

func TestParseAssignRightAssociative(t *testing.T) {
	res := mustParse(t, "void main() {\n    int a;\n    int b;\n    a = b = 3;\n}\n")
	rhs := firstAssignRhs(t, res)
	inner, ok := res.builder.Exprs.Assign(rhs)
	if !ok {
		t.Fatal("rhs is not a nested assignment")
	}
	lit, ok := res.builder.Exprs.IntLit(inner.Rhs)
	if !ok || lit.Value != 3 {
		t.Error("innermost rhs is not the literal 3")
	}
}

func TestParseDotAccessLeftAssociative(t *testing.T) {
	res := mustParse(t, "void main() {\n    int x;\n    x = a.b.c;\n}\n")
	rhs := firstAssignRhs(t, res)

	outer, ok := res.builder.Exprs.Dot(rhs)
	if !ok {
		t.Fatal("rhs is not a dot access")
	}
	field, _ := res.builder.Exprs.Ident(outer.Field)
	if got := res.name(t, field.Name); got != "c" {
		t.Errorf("outer field %q, want \"c\"", got)
	}
	inner, ok := res.builder.Exprs.Dot(outer.Loc)
	if !ok {
		t.Fatal("loc of outer dot is not a dot access")
	}
	base, _ := res.builder.Exprs.Ident(inner.Loc)
	if got := res.name(t, base.Name); got != "a" {
		t.Errorf("base %q, want \"a\"", got)
	}
}

func TestParseCallArguments(t *testing.T) {
	res := mustParse(t, "void main() {\n    int x;\n    x = add(1, 2 + 3, y.z);\n}\n")
	rhs := firstAssignRhs(t, res)

	call, ok := res.builder.Exprs.Call(rhs)
	if !ok {
		t.Fatal("rhs is not a call")
	}
	callee, _ := res.builder.Exprs.Ident(call.Callee)
	if got := res.name(t, callee.Name); got != "add" {
		t.Errorf("callee %q, want \"add\"", got)
	}
	if len(call.Args) != 3 {
		t.Fatalf("got %d args, want 3", len(call.Args))
	}
	if res.builder.Exprs.Get(call.Args[2]).Kind != ast.ExprDot {
		t.Error("third arg is not a dot access")
	}
}

func TestParseUnary(t *testing.T) {
	res := mustParse(t, "void main() {\n    bool b;\n    b = !(-1 < 0);\n}\n")
	rhs := firstAssignRhs(t, res)

	not, ok := res.builder.Exprs.Unary(rhs)
	if !ok || not.Op != ast.UnaryNot {
		t.Fatal("rhs is not a logical negation")
	}
	cmp, ok := res.builder.Exprs.Binary(not.Operand)
	if !ok || cmp.Op != ast.BinaryLess {
		t.Fatal("operand is not a comparison")
	}
	neg, ok := res.builder.Exprs.Unary(cmp.Left)
	if !ok || neg.Op != ast.UnaryNeg {
		t.Fatal("left side is not an arithmetic negation")
	}
}

func TestParseBadAssignTarget(t *testing.T) {
	res := parseSource(t, "void main() {\n    disp << f() = 3;\n}\n")
	if !errors.Is(res.err, ErrSyntax) {
		t.Fatalf("err = %v, want ErrSyntax", res.err)
	}
	items := res.bag.Items()
	if len(items) != 1 || items[0].Code != diag.SynBadAssignTarget {
		t.Fatalf("diagnostics = %s", diag.FormatGolden(res.bag, res.fileSet, false))
	}
}

func TestParseNestedStructDeclRejected(t *testing.T) {
	res := parseSource(t, "void main() {\n    struct Inner { int x; };\n}\n")
	if !errors.Is(res.err, ErrSyntax) {
		t.Fatalf("err = %v, want ErrSyntax", res.err)
	}
}

func TestParseStopsAtFirstSyntaxError(t *testing.T) {
	res := parseSource(t, "int a\nint b\n")
	if !errors.Is(res.err, ErrSyntax) {
		t.Fatalf("err = %v, want ErrSyntax", res.err)
	}
	if res.bag.Len() != 1 {
		t.Fatalf("got %d diagnostics, want exactly 1", res.bag.Len())
	}
	if res.program.IsValid() {
		t.Error("program id should be invalid after a syntax error")
	}
}
