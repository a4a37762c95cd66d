package configs

import (
	"testing"

	"github.com/erhanbaris/karamel-sub001/primitives"
	"github.com/reusee/dscope"
)

type testDepth int

func (testDepth) ConfigName() string {
	return "depth"
}

type testName string

func (testName) ConfigName() string {
	return "name"
}

type testDisabled []string

func (testDisabled) ConfigName() string {
	return "disabled"
}

func TestScriptFork(t *testing.T) {
	scope := dscope.New(
		dscope.Provide(testDepth(1)),
		dscope.Provide(testName("a")),
		dscope.Provide(testDisabled(nil)),
	)

	scope, err := ScriptFork(scope, map[string]primitives.Primitive{
		"depth":    primitives.Number(42),
		"disabled": primitives.NewList(primitives.Text("io.readline")),
		"other":    primitives.Bool(true),
	})
	if err != nil {
		t.Fatal(err)
	}

	if n := dscope.Get[testDepth](scope); n != 42 {
		t.Fatalf("got %v", n)
	}
	if s := dscope.Get[testName](scope); s != "a" {
		t.Fatalf("got %v", s)
	}
	if d := dscope.Get[testDisabled](scope); len(d) != 1 || d[0] != "io.readline" {
		t.Fatalf("got %v", d)
	}
}

func TestScriptForkTypeMismatch(t *testing.T) {
	scope := dscope.New(dscope.Provide(testDepth(1)))
	for _, p := range []primitives.Primitive{
		primitives.Text("deep"),
		primitives.Number(1.5),
	} {
		if _, err := ScriptFork(scope, map[string]primitives.Primitive{
			"depth": p,
		}); err == nil {
			t.Fatalf("%v: expected error", p)
		}
	}
}
