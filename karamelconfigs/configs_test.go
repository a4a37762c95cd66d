package karamelconfigs

import (
	"slices"
	"testing"

	"github.com/erhanbaris/karamel-sub001/cmds"
	"github.com/erhanbaris/karamel-sub001/configs"
	"github.com/erhanbaris/karamel-sub001/karamelvm"
	"github.com/erhanbaris/karamel-sub001/modes"
	"github.com/reusee/dscope"
)

func testScope(t *testing.T, paths ...string) dscope.Scope {
	return dscope.New(
		new(Module),
		modes.ForTest(t),
	).Fork(
		func() configs.Loader {
			return configs.NewLoader(paths, Schema)
		},
	)
}

func TestDefaults(t *testing.T) {
	dscope.New(
		new(Module),
		modes.ForTest(t),
	).Call(func(
		depth MaxCallDepth,
		size StackSize,
		dump DumpOpcodes,
		disabled DisabledBuiltins,
	) {
		if depth != karamelvm.DefaultMaxCallDepth {
			t.Fatalf("got %d", depth)
		}
		if size != karamelvm.DefaultStackSize {
			t.Fatalf("got %d", size)
		}
		if dump {
			t.Fatal()
		}
		if len(disabled) != 0 {
			t.Fatalf("got %v", disabled)
		}
	})
}

func TestFromConfigFile(t *testing.T) {
	testScope(t, "testdata/karamel.cue").Call(func(
		depth MaxCallDepth,
		size StackSize,
		dump DumpOpcodes,
		disabled DisabledBuiltins,
	) {
		if depth != 300 {
			t.Fatalf("got %d", depth)
		}
		if size != karamelvm.DefaultStackSize {
			t.Fatalf("got %d", size)
		}
		if !dump {
			t.Fatal()
		}
		if !slices.Equal(disabled, DisabledBuiltins{"io.readline", "num.sqrt"}) {
			t.Fatalf("got %v", disabled)
		}
	})
}

func TestFlagsOverrideConfig(t *testing.T) {
	cmds.GlobalExecutor.MustExecute([]string{
		"-max-call-depth", "77",
		"-disable", "text.upper",
		"-disable", "io.readline",
	})
	t.Cleanup(func() {
		cmds.GlobalExecutor.MustExecute([]string{"-max-call-depth."})
		*disableFlags = nil
	})

	testScope(t, "testdata/karamel.cue").Call(func(
		depth MaxCallDepth,
		disabled DisabledBuiltins,
	) {
		if depth != 77 {
			t.Fatalf("got %d", depth)
		}
		if !slices.Equal(disabled, DisabledBuiltins{"io.readline", "num.sqrt", "text.upper"}) {
			t.Fatalf("got %v", disabled)
		}
	})
}

func TestInvalidConfig(t *testing.T) {
	testScope(t, "testdata/bad.cue").Call(func(
		loader configs.Loader,
	) {
		var n int
		if err := loader.AssignFirst("max_call_depth", &n); err == nil {
			t.Fatal("expected schema violation")
		}
	})
}

func TestDevelopmentLoaderIgnoresHost(t *testing.T) {
	dscope.New(
		new(Module),
		modes.ForTest(t),
	).Call(func(
		loader configs.Loader,
	) {
		if len(loader.Paths()) != 0 {
			t.Fatalf("got %v", loader.Paths())
		}
	})
}

func TestApplyLogLevel(t *testing.T) {
	testScope(t, "testdata/karamel.cue").Call(func(
		apply ApplyLogLevel,
	) {
		if err := apply(); err != nil {
			t.Fatal(err)
		}
	})
}
