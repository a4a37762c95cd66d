package conformance

import (
	"testing"

	"github.com/erhanbaris/karamel-sub001/karamel"
	"github.com/erhanbaris/karamel-sub001/modes"
	"github.com/reusee/dscope"
)

func TestConformance(t *testing.T) {
	cases, err := LoadDir("testdata")
	if err != nil {
		t.Fatal(err)
	}
	if len(cases) == 0 {
		t.Fatal("no cases loaded")
	}

	dscope.New(
		new(karamel.Module),
		modes.ForTest(t),
	).Call(func(
		execute karamel.Execute,
	) {
		runner := NewRunner(execute)
		outcomes := runner.RunAll(t.Context(), cases)
		for _, outcome := range outcomes {
			c := outcome.Case
			t.Run(c.Suite+"/"+c.Case.Name, func(t *testing.T) {
				if outcome.Skipped {
					t.Skip(c.Case.Skip)
				}
				for _, failure := range outcome.Failures {
					t.Errorf("%s: %s", c.File, failure)
				}
			})
		}
		t.Logf("%v", ComputeStats(outcomes))
	})
}

func TestLoadFileRejectsUnknownFields(t *testing.T) {
	if _, err := LoadFile("testdata/invalid/unknown_field.yml"); err == nil {
		t.Fatal("expected error")
	}
}

func TestRunnerReportsFailures(t *testing.T) {
	dscope.New(
		new(karamel.Module),
		modes.ForTest(t),
	).Call(func(
		execute karamel.Execute,
	) {
		want := "hayır"
		top := Value{}
		outcome := NewRunner(execute).Run(t.Context(), LoadedCase{
			Case: Case{
				Name:   "wrong",
				Source: "1 + 1",
				Expect: Expectation{
					Top:    &top,
					Output: &want,
					Error:  "",
				},
			},
		})
		if outcome.Passed() {
			t.Fatal("expected failures")
		}
		if len(outcome.Failures) != 2 {
			t.Fatalf("got %v", outcome.Failures)
		}

		outcome = NewRunner(execute).Run(t.Context(), LoadedCase{
			Case: Case{
				Name:   "error kind",
				Source: "1 +",
				Expect: Expectation{
					Error: "SyntaxError",
				},
			},
		})
		if outcome.Passed() {
			t.Fatal("expected kind mismatch")
		}
	})
}
