package errs

import (
	"fmt"
	"strings"
)

type Error struct {
	Kind   Kind
	Line   int
	Column int
	Detail string
}

func New(kind Kind, line, column int) *Error {
	return &Error{
		Kind:   kind,
		Line:   line,
		Column: column,
	}
}

func Newf(kind Kind, line, column int, format string, args ...any) *Error {
	return &Error{
		Kind:   kind,
		Line:   line,
		Column: column,
		Detail: fmt.Sprintf(format, args...),
	}
}

// Runtime creates an error that has no source position.
func Runtime(kind Kind, format string, args ...any) *Error {
	return &Error{
		Kind:   kind,
		Line:   -1,
		Column: -1,
		Detail: fmt.Sprintf(format, args...),
	}
}

func (e *Error) Error() string {
	if e.Line < 0 {
		return e.Kind.String() + ": " + e.Detail
	}
	if e.Detail != "" {
		return fmt.Sprintf("%s at %d:%d: %s", e.Kind, e.Line, e.Column, e.Detail)
	}
	return fmt.Sprintf("%s at %d:%d", e.Kind, e.Line, e.Column)
}

func (e *Error) Is(target error) bool {
	if k, ok := target.(Kind); ok {
		return e.Kind == k
	}
	return false
}

// Pretty renders the error with the offending source line and a caret.
func (e *Error) Pretty(source string) string {
	var sb strings.Builder
	sb.WriteString(e.Error())
	sb.WriteString("\n")

	lines := strings.Split(source, "\n")
	if e.Line < 0 || e.Line >= len(lines) {
		return sb.String()
	}
	line := lines[e.Line]
	sb.WriteString(line)
	sb.WriteString("\n")

	for i, r := range []rune(line) {
		if i >= e.Column {
			break
		}
		if r == '\t' {
			sb.WriteString("\t")
		} else {
			for k := 0; k < runeWidth(r); k++ {
				sb.WriteString(" ")
			}
		}
	}
	sb.WriteString("^\n")

	return sb.String()
}

func runeWidth(r rune) int {
	if r == 0 {
		return 0
	}
	if r >= 0x1100 &&
		(r <= 0x115f || r == 0x2329 || r == 0x232a ||
			(r >= 0x2e80 && r <= 0xa4cf && r != 0x303f) ||
			(r >= 0xac00 && r <= 0xd7a3) ||
			(r >= 0xf900 && r <= 0xfaff) ||
			(r >= 0xfe10 && r <= 0xfe19) ||
			(r >= 0xfe30 && r <= 0xfe6f) ||
			(r >= 0xff00 && r <= 0xff60) ||
			(r >= 0xffe0 && r <= 0xffe6)) {
		return 2
	}
	return 1
}
