package tokenizer

import (
	"errors"
	"testing"

	"github.com/erhanbaris/karamel-sub001/errs"
)

func kinds(t *testing.T, src string) []TokenKind {
	t.Helper()
	tokens, err := Tokenize(src)
	if err != nil {
		t.Fatalf("%s: %v", src, err)
	}
	var ret []TokenKind
	for _, token := range tokens {
		if _, ok := token.Kind.(Whitespace); ok {
			continue
		}
		ret = append(ret, token.Kind)
	}
	return ret
}

func TestNumbers(t *testing.T) {
	tests := []struct {
		input string
		want  TokenKind
	}{
		{"1024", Integer(1024)},
		{"1_000_000", Integer(1000000)},
		{"1_0_", Integer(10)},
		{"0x1F", Integer(31)},
		{"0X_ff", Integer(255)},
		{"0b101", Integer(5)},
		{"0B1_1", Integer(3)},
		{"0755", Integer(493)},
		{"0o17", Integer(15)},
		{"0", Integer(0)},
		{"1.5", Double(1.5)},
		{".25", Double(0.25)},
		{"1e3", Double(1000)},
		{"2.5E-1", Double(0.25)},
		{"1_0.5", Double(10.5)},
	}
	for _, test := range tests {
		t.Run(test.input, func(t *testing.T) {
			got := kinds(t, test.input)
			if len(got) != 1 {
				t.Fatalf("got %v", got)
			}
			if got[0] != test.want {
				t.Fatalf("got %v, want %v", got[0], test.want)
			}
		})
	}
}

func TestInvalidNumbers(t *testing.T) {
	for _, input := range []string{"0x", "09", "0b102", "12abc"} {
		_, err := Tokenize(input)
		if !errors.Is(err, errs.SyntaxError) {
			t.Errorf("%s: got %v", input, err)
		}
	}
}

func TestTexts(t *testing.T) {
	got := kinds(t, `"merhaba" 'dünya' "a\"b" 'x\ny'`)
	want := []TokenKind{Text("merhaba"), Text("dünya"), Text(`a"b`), Text("x\ny")}
	if len(got) != len(want) {
		t.Fatalf("got %v", got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("%d: got %v, want %v", i, got[i], want[i])
		}
	}
}

func TestMissingStringDelimiter(t *testing.T) {
	for _, input := range []string{`"abc`, `'abc"`, `"`} {
		_, err := Tokenize(input)
		var e *errs.Error
		if !errors.As(err, &e) || e.Kind != errs.MissingStringDelimiter {
			t.Fatalf("%s: got %v", input, err)
		}
		if e.Column != len([]rune(input)) {
			t.Fatalf("%s: column %d", input, e.Column)
		}
	}
}

func TestKeywordsAndSymbols(t *testing.T) {
	got := kinds(t, "doğru true yanlış boş değilse değil erhan kır _x1")
	want := []TokenKind{
		KeywordTrue,
		KeywordTrue,
		KeywordFalse,
		KeywordEmpty,
		KeywordElse,
		KeywordNot,
		Symbol("erhan"),
		KeywordBreak,
		Symbol("_x1"),
	}
	if len(got) != len(want) {
		t.Fatalf("got %v", got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("%d: got %v, want %v", i, got[i], want[i])
		}
	}
}

func TestOperators(t *testing.T) {
	got := kinds(t, "++ -- += -= *= /= == != <= >= && || + - * / % = ! < > ( ) [ ] { } , : . :ok")
	want := []TokenKind{
		OpIncrement, OpDecrement, OpAssignAddition, OpAssignSubtraction,
		OpAssignMultiplication, OpAssignDivision, OpEqual, OpNotEqual,
		OpLessEqualThan, OpGreaterEqualThan, OpAnd, OpOr,
		OpAddition, OpSubtraction, OpMultiplication, OpDivision, OpModulo,
		OpAssign, OpNot, OpLessThan, OpGreaterThan,
		OpLeftParentheses, OpRightParentheses, OpSquareBracketStart, OpSquareBracketEnd,
		OpCurveBracketStart, OpCurveBracketEnd, OpComma, OpColonMark, OpDot,
		Atom("ok"),
	}
	if len(got) != len(want) {
		t.Fatalf("got %d tokens: %v", len(got), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("%d: got %v, want %v", i, got[i], want[i])
		}
	}
}

func TestColonOrAtom(t *testing.T) {
	for _, c := range []struct {
		source string
		want   []TokenKind
	}{
		{`{"a":x}`, []TokenKind{OpCurveBracketStart, Text("a"), OpColonMark, Symbol("x"), OpCurveBracketEnd}},
		{"a:b", []TokenKind{Symbol("a"), OpColonMark, Symbol("b")}},
		{"f():döndür", []TokenKind{Symbol("f"), OpLeftParentheses, OpRightParentheses, OpColonMark, KeywordReturn}},
		{"değilse:b", []TokenKind{KeywordElse, OpColonMark, Symbol("b")}},
		{"[1]:x", []TokenKind{OpSquareBracketStart, Integer(1), OpSquareBracketEnd, OpColonMark, Symbol("x")}},
		{"a = :x", []TokenKind{Symbol("a"), OpAssign, Atom("x")}},
		{"f(:x, :y)", []TokenKind{Symbol("f"), OpLeftParentheses, Atom("x"), OpComma, Atom("y"), OpRightParentheses}},
		{`"a": :x`, []TokenKind{Text("a"), OpColonMark, Atom("x")}},
		{"döndür :x", []TokenKind{KeywordReturn, Atom("x")}},
		{":x", []TokenKind{Atom("x")}},
	} {
		got := kinds(t, c.source)
		if len(got) != len(c.want) {
			t.Fatalf("%s: got %v", c.source, got)
		}
		for i := range c.want {
			if got[i] != c.want[i] {
				t.Fatalf("%s: %d: got %v, want %v", c.source, i, got[i], c.want[i])
			}
		}
	}
}

func TestLinesAndColumns(t *testing.T) {
	tokens, err := Tokenize("a = 1\n    ğüş = 'ı'\n")
	if err != nil {
		t.Fatal(err)
	}
	var nl Token
	var sym Token
	var text Token
	for _, token := range tokens {
		switch k := token.Kind.(type) {
		case NewLine:
			if nl.Kind == nil {
				nl = token
			}
		case Symbol:
			if k == "ğüş" {
				sym = token
			}
		case Text:
			text = token
		}
	}
	if nl.Kind != NewLine(4) {
		t.Fatalf("got %v", nl)
	}
	if sym.Line != 1 || sym.Start != 4 || sym.End != 7 {
		t.Fatalf("got %v", sym)
	}
	if text.Line != 1 || text.Start != 10 || text.End != 13 {
		t.Fatalf("got %v", text)
	}
}

func TestComments(t *testing.T) {
	got := kinds(t, "a // yorum\n/* çok\nsatır */ b")
	want := []TokenKind{Symbol("a"), NewLine(0), Symbol("b")}
	if len(got) != len(want) {
		t.Fatalf("got %v", got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("%d: got %v, want %v", i, got[i], want[i])
		}
	}

	_, err := Tokenize("/* açık")
	if !errors.Is(err, errs.SyntaxError) {
		t.Fatalf("got %v", err)
	}
}

func TestUnknownCharacter(t *testing.T) {
	_, err := Tokenize("a = 1 @")
	var e *errs.Error
	if !errors.As(err, &e) || e.Kind != errs.SyntaxError || e.Column != 6 {
		t.Fatalf("got %v", err)
	}
}
