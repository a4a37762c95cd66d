package debugs

import (
	"testing"

	"github.com/erhanbaris/karamel-sub001/primitives"
	"github.com/reusee/dscope"
	"go.starlark.net/starlark"
)

func TestTap(t *testing.T) {
	dscope.New(
		new(Module),
	).Call(func(
		tap Tap,
	) {
		// stdin is not interactive under go test, the REPL returns at EOF
		tap(t.Context(), "test", map[string]primitives.Primitive{
			"a": primitives.Number(42),
		}, nil)
	})
}

func TestGlobals(t *testing.T) {
	globals := Globals(map[string]primitives.Primitive{
		"a":     primitives.Number(42),
		"items": primitives.NewList(primitives.Number(1), primitives.Text("x")),
	}, map[string]any{
		"dump": func() string {
			return "LOAD 0"
		},
	})

	thread := &starlark.Thread{Name: "test"}
	for expr, want := range map[string]starlark.Value{
		"a + 1":        starlark.MakeInt(43),
		"items[1]":     starlark.String("x"),
		"len(items)":   starlark.MakeInt(2),
		"dump()":       starlark.String("LOAD 0"),
		"type(a) == 1": starlark.False,
	} {
		got, err := starlark.Eval(thread, "expr", expr, globals)
		if err != nil {
			t.Fatalf("%s: %v", expr, err)
		}
		ok, err := starlark.Equal(got, want)
		if err != nil {
			t.Fatal(err)
		}
		if !ok {
			t.Fatalf("%s: got %v, want %v", expr, got, want)
		}
	}
}
