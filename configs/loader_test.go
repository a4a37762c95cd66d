package configs

import (
	"errors"
	"fmt"
	"slices"
	"testing"
)

var testSchema = `
max_call_depth?: int & >0
dump_opcodes?: bool
disabled_builtins?: [...string]
`

func TestLoaderAssignFirst(t *testing.T) {
	loader := NewLoader([]string{
		"testdata/first.cue",
		"testdata/second.cue",
	}, testSchema)

	var depth int
	if err := loader.AssignFirst("max_call_depth", &depth); err != nil {
		t.Fatal(err)
	}
	if depth != 128 {
		t.Fatalf("got %d", depth)
	}

	// only defined in the second file
	var dump bool
	if err := loader.AssignFirst("dump_opcodes", &dump); err != nil {
		t.Fatal(err)
	}
	if !dump {
		t.Fatal()
	}

	if err := loader.AssignFirst("stack_size", &depth); !errors.Is(err, ErrValueNotFound) {
		t.Fatalf("got %v", err)
	}
}

func TestLoaderAll(t *testing.T) {
	loader := NewLoader([]string{
		"testdata/first.cue",
		"testdata/second.cue",
	}, testSchema)

	var names []string
	for list := range All[[]string](loader, "disabled_builtins") {
		names = append(names, list...)
	}
	if str := fmt.Sprintf("%v", names); str != "[io.readline num.sqrt text.upper]" {
		t.Fatalf("got %s", str)
	}

	var depths []int
	for value, err := range loader.IterCueValues("max_call_depth") {
		if err != nil {
			t.Fatal(err)
		}
		var n int
		if err := value.Decode(&n); err != nil {
			t.Fatal(err)
		}
		depths = append(depths, n)
	}
	if !slices.Equal(depths, []int{128, 4096}) {
		t.Fatalf("got %v", depths)
	}
}

func TestUnknownField(t *testing.T) {
	loader := NewLoader([]string{"testdata/bad.cue"}, testSchema)
	var str string
	if err := loader.AssignFirst("unknown_field", &str); err == nil {
		t.Fatal("should error")
	}
}

func TestMissingFile(t *testing.T) {
	loader := NewLoader([]string{"testdata/nope.cue"}, "")
	var n int
	err := loader.AssignFirst("max_call_depth", &n)
	if err == nil || errors.Is(err, ErrValueNotFound) {
		t.Fatalf("got %v", err)
	}
}

func TestZeroLoader(t *testing.T) {
	var loader Loader
	if n := First[int](loader, "max_call_depth"); n != 0 {
		t.Fatalf("got %d", n)
	}
}
