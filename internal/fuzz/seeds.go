package fuzztests

import "testing"

// languageSeeds covers every construct of the grammar at least once so
// the fuzzer starts from syntactically interesting inputs.
var languageSeeds = []string{
	"",
	"int a;",
	"void main() {\n}\n",
	"struct Point {\n    int x;\n    int y;\n};\n",
	`struct Pair {
    int first;
    bool second;
};

int pick(int a, bool b) {
    if (b) {
        return a;
    }
    return 0;
}

void main() {
    struct Pair p;
    int i;
    input >> i;
    p.first = i;
    p.second = true;
    while (i < 10) {
        i++;
        disp << i;
    }
    disp << pick(p.first, p.second);
}
`,
	"void f() { a = b.c.d; }",
	"void f() { x = (1 + 2) * 3 == 4 && !done; }",
	"// comment only\n/* block */\n",
	"void f() { disp << \"str with \\\"escape\\\"\"; }",
	"int 123abc; struct struct;",
	"void f() { a = ; }",
	"struct S { int x; }", // missing the ';' after '}'
}

func addLanguageSeeds(f *testing.F) {
	for _, seed := range languageSeeds {
		f.Add([]byte(seed))
	}
}
