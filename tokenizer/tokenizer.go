package tokenizer

import (
	"github.com/erhanbaris/karamel-sub001/errs"
)

type Tokenizer struct {
	source []rune
	index  int
	line   int
	column int
	tokens []Token
}

func NewTokenizer(source string) *Tokenizer {
	return &Tokenizer{
		source: []rune(source),
	}
}

func Tokenize(source string) ([]Token, error) {
	return NewTokenizer(source).Tokenize()
}

// producer recognizes one token family. check must not consume input.
type producer interface {
	check(t *Tokenizer) bool
	parse(t *Tokenizer) error
}

var producers = []producer{
	lineProducer{},
	whitespaceProducer{},
	commentProducer{},
	symbolProducer{},
	textProducer{},
	numberProducer{},
	operatorProducer{},
}

func (t *Tokenizer) Tokenize() ([]Token, error) {
	for !t.eof() {
		matched := false
		for _, p := range producers {
			if !p.check(t) {
				continue
			}
			if err := p.parse(t); err != nil {
				return nil, err
			}
			matched = true
			break
		}
		if !matched {
			return nil, t.errorf(errs.SyntaxError, "unexpected %q", t.current())
		}
	}
	return t.tokens, nil
}

func (t *Tokenizer) eof() bool {
	return t.index >= len(t.source)
}

func (t *Tokenizer) peek(offset int) rune {
	i := t.index + offset
	if i >= len(t.source) {
		return 0
	}
	return t.source[i]
}

func (t *Tokenizer) current() rune {
	return t.peek(0)
}

func (t *Tokenizer) next() rune {
	return t.peek(1)
}

func (t *Tokenizer) nextNext() rune {
	return t.peek(2)
}

// increase consumes one rune.
func (t *Tokenizer) increase() {
	if t.eof() {
		return
	}
	if t.source[t.index] == '\n' {
		t.line++
		t.column = 0
	} else {
		t.column++
	}
	t.index++
}

func (t *Tokenizer) increaseN(n int) {
	for range n {
		t.increase()
	}
}

func (t *Tokenizer) emit(start int, kind TokenKind) {
	t.tokens = append(t.tokens, Token{
		Line:  t.line,
		Start: start,
		End:   t.column,
		Kind:  kind,
	})
}

func (t *Tokenizer) errorf(kind errs.Kind, format string, args ...any) error {
	return errs.Newf(kind, t.line, t.column, format, args...)
}
