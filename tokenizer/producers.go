package tokenizer

import (
	"strings"
	"unicode"

	"github.com/erhanbaris/karamel-sub001/errs"
)

const tabWidth = 4

type lineProducer struct{}

func (lineProducer) check(t *Tokenizer) bool {
	return t.current() == '\n' || (t.current() == '\r' && t.next() == '\n')
}

func (lineProducer) parse(t *Tokenizer) error {
	if t.current() == '\r' {
		t.increase()
	}
	t.increase()
	indent := 0
	for {
		switch t.current() {
		case ' ':
			indent++
		case '\t':
			indent += tabWidth
		default:
			t.tokens = append(t.tokens, Token{
				Line:  t.line,
				Start: 0,
				End:   t.column,
				Kind:  NewLine(indent),
			})
			return nil
		}
		t.increase()
	}
}

type whitespaceProducer struct{}

func isBlank(r rune) bool {
	return r == ' ' || r == '\t' || (r == '\r')
}

func (whitespaceProducer) check(t *Tokenizer) bool {
	return isBlank(t.current()) && !(t.current() == '\r' && t.next() == '\n')
}

func (whitespaceProducer) parse(t *Tokenizer) error {
	start := t.column
	n := 0
	for isBlank(t.current()) && !(t.current() == '\r' && t.next() == '\n') {
		if t.current() == '\t' {
			n += tabWidth
		} else {
			n++
		}
		t.increase()
	}
	t.emit(start, Whitespace(n))
	return nil
}

type commentProducer struct{}

func (commentProducer) check(t *Tokenizer) bool {
	return t.current() == '/' && (t.next() == '/' || t.next() == '*')
}

func (commentProducer) parse(t *Tokenizer) error {
	if t.next() == '/' {
		for !t.eof() && t.current() != '\n' && !(t.current() == '\r' && t.next() == '\n') {
			t.increase()
		}
		return nil
	}
	t.increaseN(2)
	for !t.eof() {
		if t.current() == '*' && t.next() == '/' {
			t.increaseN(2)
			return nil
		}
		t.increase()
	}
	return t.errorf(errs.SyntaxError, "comment not closed")
}

type symbolProducer struct{}

func isSymbolStart(r rune) bool {
	return unicode.IsLetter(r) || r == '_'
}

func isSymbolPart(r rune) bool {
	return isSymbolStart(r) || unicode.IsDigit(r)
}

func (symbolProducer) check(t *Tokenizer) bool {
	return isSymbolStart(t.current())
}

func (symbolProducer) parse(t *Tokenizer) error {
	start := t.column
	var sb strings.Builder
	for isSymbolPart(t.current()) {
		sb.WriteRune(t.current())
		t.increase()
	}
	name := sb.String()
	if keyword, ok := LookupKeyword(name); ok {
		t.emit(start, keyword)
		return nil
	}
	t.emit(start, Symbol(name))
	return nil
}

type textProducer struct{}

func (textProducer) check(t *Tokenizer) bool {
	return t.current() == '"' || t.current() == '\''
}

func (textProducer) parse(t *Tokenizer) error {
	startLine, start := t.line, t.column
	quote := t.current()
	t.increase()
	var sb strings.Builder
	for {
		if t.eof() {
			return t.errorf(errs.MissingStringDelimiter, "missing %c", quote)
		}
		r := t.current()
		if r == quote {
			t.increase()
			break
		}
		if r == '\\' {
			t.increase()
			if t.eof() {
				return t.errorf(errs.MissingStringDelimiter, "missing %c", quote)
			}
			switch esc := t.current(); esc {
			case 'n':
				sb.WriteRune('\n')
			case 'r':
				sb.WriteRune('\r')
			case 't':
				sb.WriteRune('\t')
			case '\\', '"', '\'':
				sb.WriteRune(esc)
			default:
				sb.WriteRune('\\')
				sb.WriteRune(esc)
			}
			t.increase()
			continue
		}
		sb.WriteRune(r)
		t.increase()
	}
	t.tokens = append(t.tokens, Token{
		Line:  startLine,
		Start: start,
		End:   t.column,
		Kind:  Text(sb.String()),
	})
	return nil
}

type operatorProducer struct{}

func (operatorProducer) check(t *Tokenizer) bool {
	return true
}

func (operatorProducer) parse(t *Tokenizer) error {
	start := t.column

	if t.current() == ':' && isSymbolStart(t.next()) && !t.colonExpected() {
		t.increase()
		var sb strings.Builder
		for isSymbolPart(t.current()) {
			sb.WriteRune(t.current())
			t.increase()
		}
		t.emit(start, Atom(sb.String()))
		return nil
	}

	if op, ok := twoCharOperators[[2]rune{t.current(), t.next()}]; ok {
		t.increaseN(2)
		t.emit(start, op)
		return nil
	}

	if op, ok := oneCharOperators[t.current()]; ok {
		t.increase()
		t.emit(start, op)
		return nil
	}

	return t.errorf(errs.SyntaxError, "unexpected %q", t.current())
}

// colonExpected reports whether the last meaningful token may be followed
// by a colon mark, in which case ":name" is a colon and a symbol.
func (t *Tokenizer) colonExpected() bool {
	for i := len(t.tokens) - 1; i >= 0; i-- {
		switch kind := t.tokens[i].Kind.(type) {
		case Whitespace:
			continue
		case Integer, Double, Symbol, Text, Atom:
			return true
		case Operator:
			return kind == OpRightParentheses ||
				kind == OpSquareBracketEnd ||
				kind == OpCurveBracketEnd
		case Keyword:
			switch kind {
			case KeywordTrue, KeywordFalse, KeywordEmpty,
				KeywordIf, KeywordElse, KeywordLoop, KeywordEndless:
				return true
			}
			return false
		default:
			return false
		}
	}
	return false
}
