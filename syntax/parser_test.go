package syntax

import (
	"errors"
	"testing"

	"github.com/erhanbaris/karamel-sub001/errs"
)

func TestParseExpressions(t *testing.T) {
	for _, c := range []struct {
		source   string
		expected string
	}{
		{"1024", "{1024}"},
		{"-1024", "{-1024}"},
		{"+3.5", "{3.5}"},
		{`"merhaba"`, `{"merhaba"}`},
		{"doğru", "{doğru}"},
		{"yanlış", "{yanlış}"},
		{"boş", "{boş}"},
		{":ok", "{:ok}"},
		{"5 * 2 mod 2 - 10", "{(((5 * 2) mod 2) - 10)}"},
		{"22 + 5 * 2 mod 2", "{(22 + ((5 * 2) mod 2))}"},
		{"(1 + 2) * 3", "{((1 + 2) * 3)}"},
		{"1 + 2 == 3", "{((1 + 2) == 3)}"},
		{"a < b ve b < c veya d", "{(((a < b) ve (b < c)) veya d)}"},
		{"a && b || c", "{((a ve b) veya c)}"},
		{"değil a", "{(değil a)}"},
		{"!a", "{(değil a)}"},
		{"-a", "{(-a)}"},
		{"++a", "{(++a)}"},
		{"a--", "{(a--)}"},
		{"[1, 2, [3]]", "{[1, 2, [3]]}"},
		{`{"a": 1, "b": 2}`, `{{"a": 1, "b": 2}}`},
		{`{"a":x, "b":[1]}`, `{{"a": x, "b": [1]}}`},
		{`{"a": :x}`, `{{"a": :x}}`},
		{"liste[0]", "{liste[0]}"},
		{"io.writeline(1, 2)", "{io.writeline(1, 2)}"},
		{"f()", "{f()}"},
		{"[\n1,\n2\n]", "{[1, 2]}"},
		{"f(1,\n  2)", "{f(1, 2)}"},
	} {
		block, err := ParseString(c.source)
		if err != nil {
			t.Fatalf("%s: %v", c.source, err)
		}
		if got := block.String(); got != c.expected {
			t.Fatalf("%s: got %s, expected %s", c.source, got, c.expected)
		}
	}
}

func TestParseStatements(t *testing.T) {
	for _, c := range []struct {
		source   string
		expected string
	}{
		{"erhan = 2020", "{erhan = 2020}"},
		{"a += 1\nb -= 2", "{a += 1; b -= 2}"},
		{"a[1] = 2", "{a[1] = 2}"},
		{"a == 1 ise:\n    b = 2", "{ise (a == 1) {b = 2}}"},
		{"eğer a: b = 1", "{ise a {b = 1}}"},
		{"eğer a:b = 1", "{ise a {b = 1}}"},
		{"a ise:b = 1\ndeğilse:b = 2", "{ise a {b = 1} değilse {b = 2}}"},
		{"sonsuz:kır", "{sonsuz {kır}}"},
		{"döngü:kır", "{sonsuz {kır}}"},
		{"fonk f():döndür 1", "{fonk f() {döndür 1}}"},
		{"fonk f():döndür :ok", "{fonk f() {döndür :ok}}"},
		{
			"a ise:\n  b = 1\ndeğilse:\n  b = 2",
			"{ise a {b = 1} değilse {b = 2}}",
		},
		{
			"a ise: b = 1\ndeğilse c ise: b = 2\ndeğilse: b = 3",
			"{ise a {b = 1} değilse ise c {b = 2} değilse {b = 3}}",
		},
		{"döngü a < 10:\n  a++\n  kır", "{döngü (a < 10) {(a++); kır}}"},
		{"sonsuz:\n  devam", "{sonsuz {devam}}"},
		{"döngü:\n  kır", "{sonsuz {kır}}"},
		{"fonk f(): döndür 1", "{fonk f() {döndür 1}}"},
		{"fonk f(a, b):\n  c = a + b", "{fonk f(a, b) {c = (a + b); döndür boş}}"},
		{"fonk f():\n  döndür", "{fonk f() {döndür boş}}"},
		{"a = 1 // yorum\n/* blok\nyorum */\nb = 2", "{a = 1; b = 2}"},
		{"\n\na = 1\n\n\nb = 2\n", "{a = 1; b = 2}"},
		{
			"a ise:\n    b ise:\n        c = 1\n    d = 2\ne = 3",
			"{ise a {ise b {c = 1}; d = 2}; e = 3}",
		},
		{
			"a ise:\n      b = 1\ndeğilse:\n  b = 2\nc = 3",
			"{ise a {b = 1} değilse {b = 2}; c = 3}",
		},
		{
			"a ise:\n  b ise:\n    c ise:\n      d = 1\ne = 2",
			"{ise a {ise b {ise c {d = 1}}}; e = 2}",
		},
		{
			"a ise:\n  b ise:\n    c ise:\n      d = 1\n  f = 3\ng = 4",
			"{ise a {ise b {ise c {d = 1}}; f = 3}; g = 4}",
		},
	} {
		block, err := ParseString(c.source)
		if err != nil {
			t.Fatalf("%q: %v", c.source, err)
		}
		if got := block.String(); got != c.expected {
			t.Fatalf("%q: got %s, expected %s", c.source, got, c.expected)
		}
	}
}

func TestParseErrors(t *testing.T) {
	for _, c := range []struct {
		source string
		kind   errs.Kind
		line   int
		column int
	}{
		{"1/", errs.RightSideOfExpressionNotFound, 0, 2},
		{"a = ", errs.RightSideOfExpressionNotFound, 0, 3},
		{"kır", errs.BreakAndContinueBelongToLoops, 0, 0},
		{"devam", errs.BreakAndContinueBelongToLoops, 0, 0},
		{"döndür 1", errs.ReturnMustBeUsedInFunction, 0, 0},
		{"fonk f():\n  döngü:\n    kır\n  kır", errs.BreakAndContinueBelongToLoops, 3, 2},
		{"döngü:\n  fonk f(): kır", errs.BreakAndContinueBelongToLoops, 1, 12},
		{"a ise\n  b = 1", errs.ColonMarkMissing, 0, 5},
		{"fonk (): döndür 1", errs.FunctionNameNotDefined, 0, 5},
		{"fonk f():", errs.FunctionConditionBodyNotFound, 0, 9},
		{"fonk f(a, a): döndür 1", errs.DuplicateDefinition, 0, 10},
		{"(1 + 2", errs.RightParenthesesMissing, 0, 6},
		{"[1, 2", errs.ArrayNotClosed, 0, 5},
		{`{"a": 1`, errs.DictNotClosed, 0, 7},
		{`{a: 1}`, errs.ArgumentMustBeText, 0, 1},
		{"f(1, 2,)", errs.FunctionCallSyntaxNotValid, 0, 7},
		{"f(, 1)", errs.FunctionCallSyntaxNotValid, 0, 2},
		{`-"a"`, errs.UnaryWorksWithNumber, 0, 0},
		{"++1", errs.InvalidUnaryOperation, 0, 0},
		{"1++", errs.InvalidUnaryOperation, 0, 1},
		{"a = 1\n  b = 2", errs.IndentationIssue, 1, 2},
		{"1 = 2", errs.InvalidAssignmentTarget, 0, 0},
		{"a = 1 b = 2", errs.ExpectedNewLine, 0, 6},
		{"değilse: a = 1", errs.SyntaxError, 0, 0},
	} {
		_, err := ParseString(c.source)
		if err == nil {
			t.Fatalf("%q: expected error", c.source)
		}
		if !errors.Is(err, c.kind) {
			t.Fatalf("%q: got %v, expected %s", c.source, err, c.kind)
		}
		var e *errs.Error
		if !errors.As(err, &e) {
			t.Fatalf("%q: not a structured error", c.source)
		}
		if e.Line != c.line || e.Column != c.column {
			t.Fatalf("%q: got %d:%d, expected %d:%d", c.source, e.Line, e.Column, c.line, c.column)
		}
	}
}

func TestAssignToTemp(t *testing.T) {
	block, err := ParseString("f()\nx = f() + g()\na++")
	if err != nil {
		t.Fatal(err)
	}
	if block.Items[0].(*FuncCall).AssignToTemp {
		t.Fatal("statement call should discard its result")
	}
	bin := block.Items[1].(*Assignment).Expr.(*Binary)
	if !bin.Left.(*FuncCall).AssignToTemp || !bin.Right.(*FuncCall).AssignToTemp {
		t.Fatal("operand calls should keep their result")
	}
	if block.Items[2].(*SuffixUnary).AssignToTemp {
		t.Fatal("statement suffix should discard its result")
	}
}

func TestPositions(t *testing.T) {
	block, err := ParseString("a = 1\n  \nbüyük = a + 2")
	if err != nil {
		t.Fatal(err)
	}
	assign := block.Items[1].(*Assignment)
	if assign.Line != 2 || assign.Column != 0 {
		t.Fatalf("got %d:%d", assign.Line, assign.Column)
	}
	right := assign.Expr.(*Binary).Right
	if pos := right.Position(); pos.Line != 2 || pos.Column != 12 {
		t.Fatalf("got %+v", pos)
	}
}
