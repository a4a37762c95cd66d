package tokenizer

import (
	"fmt"
	"strconv"
)

type Token struct {
	Line  int
	Start int
	End   int
	Kind  TokenKind
}

func (t Token) String() string {
	return fmt.Sprintf("%d:%d-%d %s", t.Line, t.Start, t.End, t.Kind)
}

// TokenKind is one of Integer, Double, Symbol, Text, Atom, Operator,
// Keyword, Whitespace or NewLine.
type TokenKind interface {
	fmt.Stringer
	tokenKind()
}

type Integer int64

func (Integer) tokenKind() {}

func (i Integer) String() string {
	return "Integer(" + strconv.FormatInt(int64(i), 10) + ")"
}

type Double float64

func (Double) tokenKind() {}

func (d Double) String() string {
	return "Double(" + strconv.FormatFloat(float64(d), 'g', -1, 64) + ")"
}

type Symbol string

func (Symbol) tokenKind() {}

func (s Symbol) String() string {
	return "Symbol(" + string(s) + ")"
}

type Text string

func (Text) tokenKind() {}

func (t Text) String() string {
	return "Text(" + strconv.Quote(string(t)) + ")"
}

type Atom string

func (Atom) tokenKind() {}

func (a Atom) String() string {
	return "Atom(" + string(a) + ")"
}

// Whitespace holds the run length of blanks inside a line.
type Whitespace int

func (Whitespace) tokenKind() {}

func (w Whitespace) String() string {
	return "Whitespace(" + strconv.Itoa(int(w)) + ")"
}

// NewLine holds the indentation of the line that follows it.
type NewLine int

func (NewLine) tokenKind() {}

func (n NewLine) String() string {
	return "NewLine(" + strconv.Itoa(int(n)) + ")"
}
