package format

import (
	"strings"
	"testing"

	"minim/internal/ast"
	"minim/internal/diag"
	"minim/internal/parser"
	"minim/internal/source"
	"minim/internal/symbols"
)

func parse(t *testing.T, src string) (*ast.Builder, *source.Interner, ast.ProgramID) {
	t.Helper()
	fileSet := source.NewFileSet()
	fileID := fileSet.AddVirtual("test.minim", []byte(src))
	builder := ast.NewBuilder(ast.Hints{})
	bag := diag.NewBag(16)
	p := parser.New(fileSet.Get(fileID), builder, parser.Options{Reporter: diag.BagReporter{Bag: bag}})
	program, err := p.ParseProgram()
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	return builder, p.Strings(), program
}

func TestUnparseRoundTripFixedPoint(t *testing.T) {
	src := `
struct Point {
    int x;
    int y;
};
int countdown;
bool ready;
int add(int a, int b) {
    return a + b;
}
void main(struct Point origin) {
    int i;
    struct Point p;
    p.x = add(1, 2 * 3);
    p.y = p.x;
    i = 10;
    while (i > 0) {
        i--;
        if (ready && !(i < 3)) {
            disp << "tick";
        }
        else {
            input >> i;
        }
    }
    countdown = i;
    main(origin);
    return;
}
`
	builder, strs, program := parse(t, src)
	first := Unparse(builder, strs, program, Options{})

	builder2, strs2, program2 := parse(t, first)
	second := Unparse(builder2, strs2, program2, Options{})

	if first != second {
		t.Fatalf("unparse is not a fixed point:\nfirst:\n%s\nsecond:\n%s", first, second)
	}
}

func TestUnparseStructLayout(t *testing.T) {
	builder, strs, program := parse(t, "struct Point { int x; int y; };")
	got := Unparse(builder, strs, program, Options{})
	want := "struct Point {\n    int x;\n    int y;\n};\n"
	if got != want {
		t.Fatalf("got:\n%q\nwant:\n%q", got, want)
	}
}

func TestUnparseStatementLayout(t *testing.T) {
	builder, strs, program := parse(t, "void main() { int i; i = 1 + 2; i++; disp << i; }")
	got := Unparse(builder, strs, program, Options{})
	want := strings.Join([]string{
		"void main() {",
		"    int i;",
		"    i = (1 + 2);",
		"    i++;",
		"    disp << i;",
		"}",
		"",
	}, "\n")
	if got != want {
		t.Fatalf("got:\n%q\nwant:\n%q", got, want)
	}
}

func TestUnparseAnnotated(t *testing.T) {
	builder, strs, program := parse(t, `
struct Point {
    int x;
};
void main() {
    int i;
    struct Point p;
    i = i;
    p.x = i;
}
`)
	table := symbols.NewTable(symbols.Hints{}, strs)
	symbols.NewResolver(table, builder, symbols.Options{}).Resolve(program)

	got := Unparse(builder, strs, program, Options{Annotate: true, Table: table})
	for _, want := range []string{"i(int) = i(int);", "p(Point).x(int) = i(int);"} {
		if !strings.Contains(got, want) {
			t.Errorf("annotated output missing %q:\n%s", want, got)
		}
	}
}
