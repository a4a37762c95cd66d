package conformance

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/erhanbaris/karamel-sub001/errs"
	"github.com/erhanbaris/karamel-sub001/karamel"
	"github.com/erhanbaris/karamel-sub001/primitives"
)

type Runner struct {
	execute karamel.Execute
}

func NewRunner(execute karamel.Execute) *Runner {
	return &Runner{
		execute: execute,
	}
}

type Outcome struct {
	Case    LoadedCase
	Skipped bool
	// Failures lists every unmet expectation.
	Failures []string
}

func (o Outcome) Passed() bool {
	return !o.Skipped && len(o.Failures) == 0
}

func (r *Runner) Run(ctx context.Context, loaded LoadedCase) (ret Outcome) {
	ret.Case = loaded
	c := loaded.Case
	if c.Skip != "" {
		ret.Skipped = true
		return
	}
	fail := func(format string, args ...any) {
		ret.Failures = append(ret.Failures, fmt.Sprintf(format, args...))
	}

	result := r.execute(ctx, c.Source, karamel.WithInput(strings.NewReader(c.Input)))
	expect := c.Expect

	if expect.Error != "" {
		checkError(result.Err, expect, fail)
	} else if result.Err != nil {
		fail("unexpected error: %v", result.Err)
		return
	}

	if expect.Top != nil {
		if got := result.Top(); !primitives.Equal(got, expect.Top.Primitive) {
			fail("top: got %s, want %s", primitives.Quote(got), primitives.Quote(expect.Top.Primitive))
		}
	}
	if expect.Stack != nil {
		if !sameValues(result.Stack, expect.Stack) {
			fail("stack: got %s, want %s", formatStack(result.Stack), formatValues(expect.Stack))
		}
	}
	for name, want := range expect.Memory {
		got, ok := result.Memory[name]
		if !ok {
			fail("memory: %s not defined", name)
			continue
		}
		if !primitives.Equal(got, want.Primitive) {
			fail("memory %s: got %s, want %s", name, primitives.Quote(got), primitives.Quote(want.Primitive))
		}
	}
	if expect.Output != nil && result.Output != *expect.Output {
		fail("output: got %q, want %q", result.Output, *expect.Output)
	}
	return
}

func checkError(err error, expect Expectation, fail func(string, ...any)) {
	kind, ok := errs.ParseKind(expect.Error)
	if !ok {
		fail("unknown error kind %s", expect.Error)
		return
	}
	var e *errs.Error
	if !errors.As(err, &e) {
		fail("error: got %v, want %s", err, kind)
		return
	}
	if e.Kind != kind {
		fail("error: got %s, want %s", e.Kind, kind)
	}
	if expect.Line != nil && e.Line != *expect.Line {
		fail("error line: got %d, want %d", e.Line, *expect.Line)
	}
	if expect.Column != nil && e.Column != *expect.Column {
		fail("error column: got %d, want %d", e.Column, *expect.Column)
	}
}

func sameValues(got []primitives.Primitive, want []Value) bool {
	if len(got) != len(want) {
		return false
	}
	for i := range got {
		if !primitives.Equal(got[i], want[i].Primitive) {
			return false
		}
	}
	return true
}

func formatStack(values []primitives.Primitive) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = primitives.Quote(v)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

func formatValues(values []Value) string {
	ps := make([]primitives.Primitive, len(values))
	for i, v := range values {
		ps[i] = v.Primitive
	}
	return formatStack(ps)
}

func (r *Runner) RunAll(ctx context.Context, cases []LoadedCase) []Outcome {
	ret := make([]Outcome, 0, len(cases))
	for _, c := range cases {
		ret = append(ret, r.Run(ctx, c))
	}
	return ret
}

type Stats struct {
	Total   int
	Passed  int
	Failed  int
	Skipped int
}

func ComputeStats(outcomes []Outcome) (s Stats) {
	for _, o := range outcomes {
		s.Total++
		switch {
		case o.Skipped:
			s.Skipped++
		case o.Passed():
			s.Passed++
		default:
			s.Failed++
		}
	}
	return
}

func (s Stats) String() string {
	return fmt.Sprintf("total %d, passed %d, failed %d, skipped %d", s.Total, s.Passed, s.Failed, s.Skipped)
}
