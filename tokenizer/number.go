package tokenizer

import (
	"strconv"
	"strings"
	"unicode"

	"github.com/erhanbaris/karamel-sub001/errs"
)

type numberProducer struct{}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func (numberProducer) check(t *Tokenizer) bool {
	return isDigit(t.current()) || (t.current() == '.' && isDigit(t.next()))
}

func (numberProducer) parse(t *Tokenizer) error {
	start := t.column

	if t.current() == '0' {
		switch t.next() {
		case 'x', 'X':
			t.increaseN(2)
			return parseWithBase(t, start, 16)
		case 'b', 'B':
			t.increaseN(2)
			return parseWithBase(t, start, 2)
		case 'o', 'O':
			t.increaseN(2)
			return parseWithBase(t, start, 8)
		}
		if isDigit(t.next()) || t.next() == '_' {
			t.increase()
			return parseWithBase(t, start, 8)
		}
	}

	return parseDecimal(t, start)
}

func digitValue(r rune) int {
	switch {
	case r >= '0' && r <= '9':
		return int(r - '0')
	case r >= 'a' && r <= 'f':
		return int(r-'a') + 10
	case r >= 'A' && r <= 'F':
		return int(r-'A') + 10
	}
	return -1
}

func parseWithBase(t *Tokenizer, start int, base int) error {
	var sb strings.Builder
	for {
		r := t.current()
		if r == '_' {
			t.increase()
			continue
		}
		v := digitValue(r)
		if v < 0 {
			break
		}
		if v >= base {
			return t.errorf(errs.SyntaxError, "invalid digit %q for base %d", r, base)
		}
		sb.WriteRune(r)
		t.increase()
	}
	if sb.Len() == 0 {
		return t.errorf(errs.SyntaxError, "number has no digits")
	}
	if isSymbolStart(t.current()) {
		return t.errorf(errs.SyntaxError, "unexpected %q in number", t.current())
	}
	n, err := strconv.ParseInt(sb.String(), base, 64)
	if err != nil {
		return t.errorf(errs.SyntaxError, "%v", err)
	}
	t.emit(start, Integer(n))
	return nil
}

func readDigits(t *Tokenizer, sb *strings.Builder) {
	for isDigit(t.current()) || t.current() == '_' {
		if t.current() != '_' {
			sb.WriteRune(t.current())
		}
		t.increase()
	}
}

func parseDecimal(t *Tokenizer, start int) error {
	var sb strings.Builder
	isFloat := false

	readDigits(t, &sb)

	if t.current() == '.' && isDigit(t.next()) {
		isFloat = true
		sb.WriteRune('.')
		t.increase()
		readDigits(t, &sb)
	}

	if r := t.current(); r == 'e' || r == 'E' {
		sign := t.next()
		if isDigit(sign) || ((sign == '+' || sign == '-') && isDigit(t.nextNext())) {
			isFloat = true
			sb.WriteRune('e')
			t.increase()
			if sign == '+' || sign == '-' {
				sb.WriteRune(sign)
				t.increase()
			}
			readDigits(t, &sb)
		}
	}

	if unicode.IsLetter(t.current()) {
		return t.errorf(errs.SyntaxError, "unexpected %q in number", t.current())
	}

	text := sb.String()
	if !isFloat {
		if n, err := strconv.ParseInt(text, 10, 64); err == nil {
			t.emit(start, Integer(n))
			return nil
		}
	}
	f, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return t.errorf(errs.SyntaxError, "%v", err)
	}
	t.emit(start, Double(f))
	return nil
}
