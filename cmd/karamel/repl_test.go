package main

import (
	"bytes"
	"testing"

	"github.com/erhanbaris/karamel-sub001/karamel"
	"github.com/erhanbaris/karamel-sub001/modes"
	"github.com/reusee/dscope"
)

func TestSession(t *testing.T) {
	dscope.New(
		new(karamel.Module),
		modes.ForTest(t),
	).Call(func(
		execute karamel.Execute,
	) {
		s := &session{
			execute: execute,
		}
		out := new(bytes.Buffer)

		for _, step := range []struct {
			block string
			want  string
			fail  bool
		}{
			{"a = 40", "", false},
			{"a + 2", "42\n", false},
			{"fonk selam(ad):\n    io.writeline('selam ', ad)", "", false},
			{"selam('dünya')", "selam dünya\n", false},
			{"b = (", "", true},
			{"a * 2", "80\n", false},
			{"'x'", "\"x\"\n", false},
		} {
			out.Reset()
			err := s.eval(t.Context(), step.block, out)
			if step.fail {
				if err == nil {
					t.Fatalf("%q: expected error", step.block)
				}
				continue
			}
			if err != nil {
				t.Fatalf("%q: %v", step.block, err)
			}
			if got := out.String(); got != step.want {
				t.Fatalf("%q: got %q, want %q", step.block, got, step.want)
			}
		}
		if len(s.history) != 6 {
			t.Fatalf("got %d", len(s.history))
		}
	})
}

func TestNeedsMore(t *testing.T) {
	for line, want := range map[string]bool{
		"fonk f():":  true,
		"a > 1 ise:": true,
		"a = 1":      false,
		"  döngü:  ": true,
	} {
		if got := needsMore(line); got != want {
			t.Fatalf("%q: got %v", line, got)
		}
	}
}
