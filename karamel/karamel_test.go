package karamel

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/erhanbaris/karamel-sub001/compiler"
	"github.com/erhanbaris/karamel-sub001/errs"
	"github.com/erhanbaris/karamel-sub001/karamelconfigs"
	"github.com/erhanbaris/karamel-sub001/logs"
	"github.com/erhanbaris/karamel-sub001/modes"
	"github.com/erhanbaris/karamel-sub001/primitives"
	"github.com/reusee/dscope"
)

func testScope(t *testing.T, defs ...any) dscope.Scope {
	scope := dscope.New(
		new(Module),
		modes.ForTest(t),
	)
	if len(defs) > 0 {
		scope = scope.Fork(defs...)
	}
	return scope
}

func TestExecute(t *testing.T) {
	testScope(t).Call(func(
		execute Execute,
	) {
		for _, c := range []struct {
			source string
			top    primitives.Primitive
		}{
			{"fonk f(): döndür 1\nf() + f()", primitives.Number(2)},
			{"1 / 0", primitives.Empty{}},
			{"a = 3\na * 2", primitives.Number(6)},
			{"'a' + 1", primitives.Text("a1")},
			{"[1, 2, 3][-1]", primitives.Number(3)},
		} {
			result := execute(t.Context(), c.source)
			if result.Err != nil {
				t.Fatalf("%q: %v", c.source, result.Err)
			}
			if !result.Compiled || !result.Executed {
				t.Fatalf("%q: got %+v", c.source, result)
			}
			if got := result.Top(); !primitives.Equal(got, c.top) {
				t.Fatalf("%q: got %v, want %v", c.source, got, c.top)
			}
		}
	})
}

func TestExecuteMemory(t *testing.T) {
	testScope(t).Call(func(
		execute Execute,
	) {
		result := execute(t.Context(), "toplam = 0\ni = 0\ndöngü i < 5:\n    i++\n    toplam += i")
		if result.Err != nil {
			t.Fatal(result.Err)
		}
		if v := result.Memory["toplam"]; !primitives.Equal(v, primitives.Number(15)) {
			t.Fatalf("got %v", v)
		}
		if v := result.Memory["i"]; !primitives.Equal(v, primitives.Number(5)) {
			t.Fatalf("got %v", v)
		}
		if len(result.Stack) != 0 {
			t.Fatalf("got %v", result.Stack)
		}
	})
}

func TestOutputAndInput(t *testing.T) {
	testScope(t).Call(func(
		execute Execute,
	) {
		copied := new(bytes.Buffer)
		result := execute(t.Context(), "ad = io.readline()\nio.writeline('merhaba ' + ad)",
			WithInput(strings.NewReader("dünya\n")),
			WithOutput(copied),
		)
		if result.Err != nil {
			t.Fatal(result.Err)
		}
		if result.Output != "merhaba dünya\n" {
			t.Fatalf("got %q", result.Output)
		}
		if copied.String() != result.Output {
			t.Fatalf("got %q", copied.String())
		}
	})
}

func TestCompileError(t *testing.T) {
	testScope(t).Call(func(
		execute Execute,
	) {
		result := execute(t.Context(), "a = (1")
		if result.Compiled || result.Executed {
			t.Fatalf("got %+v", result)
		}
		var e *errs.Error
		if !errors.As(result.Err, &e) {
			t.Fatalf("got %T", result.Err)
		}
		if e.Kind != errs.RightParenthesesMissing {
			t.Fatalf("got %v", e.Kind)
		}
		var spanErr logs.SpanError
		if !errors.As(result.Err, &spanErr) || spanErr.Span == "" {
			t.Fatalf("got %v", result.Err)
		}
	})
}

func TestRuntimeError(t *testing.T) {
	testScope(t, func() karamelconfigs.MaxCallDepth {
		return 32
	}).Call(func(
		execute Execute,
	) {
		result := execute(t.Context(), "fonk f(): döndür f()\nf()")
		if !result.Compiled || result.Executed {
			t.Fatalf("got %+v", result)
		}
		if !errors.Is(result.Err, errs.StackOverflow) {
			t.Fatalf("got %v", result.Err)
		}
		var spanErr logs.SpanError
		if !errors.As(result.Err, &spanErr) || spanErr.Span == "" {
			t.Fatalf("got %v", result.Err)
		}
	})
}

func TestDisabledBuiltins(t *testing.T) {
	testScope(t, func() karamelconfigs.DisabledBuiltins {
		return karamelconfigs.DisabledBuiltins{"io.readline"}
	}).Call(func(
		execute Execute,
	) {
		result := execute(t.Context(), "io.readline()")
		if !errors.Is(result.Err, errs.UnresolvedSymbol) {
			t.Fatalf("got %v", result.Err)
		}
		result = execute(t.Context(), "type(1)")
		if result.Err != nil {
			t.Fatal(result.Err)
		}
	})
}

func TestDumpOpcodes(t *testing.T) {
	buf := new(bytes.Buffer)
	testScope(t,
		func() karamelconfigs.DumpOpcodes {
			return true
		},
		func() DumpWriter {
			return buf
		},
	).Call(func(
		compile Compile,
	) {
		if _, err := compile(t.Context(), "a = 1"); err != nil {
			t.Fatal(err)
		}
		out := buf.String()
		if !strings.Contains(out, "LOAD") || !strings.Contains(out, "STORE") {
			t.Fatalf("got %q", out)
		}
	})
}

func TestImageRoundTrip(t *testing.T) {
	testScope(t).Call(func(
		compile Compile,
		loadImage LoadImage,
		run Run,
	) {
		unit, err := compile(t.Context(), "fonk kare(x): döndür x * x\nio.writeline(kare(7))\nsonuç = kare(3)\nkare(4) + 0")
		if err != nil {
			t.Fatal(err)
		}
		data, err := compiler.MarshalImage(unit)
		if err != nil {
			t.Fatal(err)
		}
		loaded, err := loadImage(data)
		if err != nil {
			t.Fatal(err)
		}
		result := run(t.Context(), loaded)
		if result.Err != nil {
			t.Fatal(result.Err)
		}
		if result.Output != "49\n" {
			t.Fatalf("got %q", result.Output)
		}
		if v := result.Memory["sonuç"]; !primitives.Equal(v, primitives.Number(9)) {
			t.Fatalf("got %v", v)
		}
		if !primitives.Equal(result.Top(), primitives.Number(16)) {
			t.Fatalf("got %v", result.Top())
		}
	})
}

func TestResultHelpers(t *testing.T) {
	testScope(t).Call(func(
		execute Execute,
	) {
		result := execute(t.Context(), "a = 'x'\na\n1")
		helpers := resultHelpers(result)
		if s := helpers["stack"].(func() string)(); s != `["x", 1]` {
			t.Fatalf("got %s", s)
		}
		if s := helpers["dump"].(func() string)(); !strings.Contains(s, "storage 0") {
			t.Fatalf("got %s", s)
		}
	})
}
