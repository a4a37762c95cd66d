package builtins

import (
	"errors"
	"strings"
	"testing"

	"github.com/erhanbaris/karamel-sub001/compiler"
	"github.com/erhanbaris/karamel-sub001/errs"
	"github.com/erhanbaris/karamel-sub001/karamelvm"
	"github.com/erhanbaris/karamel-sub001/primitives"
)

func execute(source string, input string) (*compiler.Context, string, error) {
	registry := Default()
	unit := compiler.NewContext(registry)
	if err := compiler.CompileString(source, unit); err != nil {
		return nil, "", err
	}
	var out strings.Builder
	vm := karamelvm.New(unit, registry,
		karamelvm.WithOutput(&out),
		karamelvm.WithInput(strings.NewReader(input)),
	)
	err := vm.Execute()
	return unit, out.String(), err
}

func TestResolve(t *testing.T) {
	r := Default()
	for _, c := range []struct {
		name      string
		canonical string
		ok        bool
	}{
		{"io.writeline", "io.writeline", true},
		{"type", "base.type", true},
		{"text", "base.text", true},
		{"writeline", "", false},
		{"io.nothing", "", false},
	} {
		canonical, ok := r.Resolve(c.name)
		if canonical != c.canonical || ok != c.ok {
			t.Fatalf("%s: got %q %v", c.name, canonical, ok)
		}
	}
	if names := r.Names(); len(names) == 0 || names[0] != "base.length" {
		t.Fatalf("got %v", names)
	}
}

func TestIO(t *testing.T) {
	_, out, err := execute(`io.print("a", 1)
io.writeline(" b ", doğru, " ", boş)
satır = io.readline()
io.writeline(satır + "!")
io.writeline(io.readline())
io.writeline(io.readline())`, "merhaba\r\nson")
	if err != nil {
		t.Fatal(err)
	}
	expected := "a1 b doğru boş\nmerhaba!\nson\nboş\n"
	if out != expected {
		t.Fatalf("got %q", out)
	}
}

func TestFunctions(t *testing.T) {
	unit, _, err := execute(`a = num.abs(-2.5)
b = num.floor(2.7) + num.ceil(2.1) + num.round(2.5) + num.sqrt(16)
c = text.length("çiçek")
d = text.upper("abc") + text.lower("DEF")
l = [1, 2]
list.append(l, 3)
e = list.length(l)
f = list.pop(l)
g = text.join(l, "-")
h = dict.keys({"x": 1, "y": 2})
i = dict.get({"x": 1}, "x") + dict.get({}, "y", 10)
j = type(1) + type("a") + type([]) + type(boş)
k = text(12.5) + text(doğru)
m = length("abc") + length([1]) + length({"a": 1})`, "")
	if err != nil {
		t.Fatal(err)
	}
	s := unit.Storages[0]
	for name, expected := range map[string]string{
		"a": "2.5",
		"b": "12",
		"c": "5",
		"d": "ABCdef",
		"e": "3",
		"f": "3",
		"g": "1-2",
		"h": `["x", "y"]`,
		"i": "11",
		"j": "sayıyazılisteboş",
		"k": "12.5doğru",
		"m": "5",
	} {
		got, ok := s.Get(name)
		if !ok {
			t.Fatalf("%s missing", name)
		}
		if got.String() != expected {
			t.Fatalf("%s: got %s, expected %s", name, primitives.Quote(got), expected)
		}
	}
}

func TestErrors(t *testing.T) {
	for _, c := range []struct {
		source string
		kind   errs.Kind
	}{
		{`num.abs("a")`, errs.TypeMismatch},
		{`num.abs(1, 2)`, errs.ArgumentCountMismatch},
		{`list.pop([])`, errs.IndexOutOfRange},
		{`dict.get({})`, errs.ArgumentCountMismatch},
		{`length(1)`, errs.TypeMismatch},
	} {
		_, _, err := execute(c.source, "")
		if !errors.Is(err, c.kind) {
			t.Fatalf("%s: got %v", c.source, err)
		}
	}
}

func TestWithout(t *testing.T) {
	r := Default().Without("io.readline", "type")
	if _, ok := r.Resolve("io.readline"); ok {
		t.Fatal("io.readline still registered")
	}
	if _, ok := r.Resolve("type"); ok {
		t.Fatal("base.type still registered")
	}
	if _, ok := r.Resolve("io.print"); !ok {
		t.Fatal("io.print missing")
	}
	// the source registry is untouched
	if _, ok := Default().Resolve("io.readline"); !ok {
		t.Fatal()
	}

	unit := compiler.NewContext(r)
	err := compiler.CompileString("io.readline()", unit)
	if !errors.Is(err, errs.UnresolvedSymbol) {
		t.Fatalf("got %v", err)
	}
}
