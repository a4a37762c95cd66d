package primitives

import "testing"

func TestString(t *testing.T) {
	tests := []struct {
		value Primitive
		want  string
	}{
		{Number(2020), "2020"},
		{Number(5.0), "5"},
		{Number(1.5), "1.5"},
		{Number(-0.25), "-0.25"},
		{Bool(true), "doğru"},
		{Bool(false), "yanlış"},
		{Empty{}, "boş"},
		{Text("erhan"), "erhan"},
		{NewAtom("ok"), ":ok"},
		{NewList(Number(1), Text("a")), `[1, "a"]`},
	}
	for _, test := range tests {
		if got := test.value.String(); got != test.want {
			t.Errorf("got %q, want %q", got, test.want)
		}
	}

	d := NewDict()
	d.Set("b", Number(2))
	d.Set("a", Number(1))
	d.Set("b", Number(3))
	if got := d.String(); got != `{"b": 3, "a": 1}` {
		t.Fatalf("got %s", got)
	}
}

func TestEqual(t *testing.T) {
	if !Equal(Number(100), Number(100.0)) {
		t.Fatal()
	}
	if Equal(Number(1), Text("1")) {
		t.Fatal()
	}
	if !Equal(Empty{}, nil) {
		t.Fatal()
	}
	if !Equal(NewAtom("a"), NewAtom("a")) {
		t.Fatal()
	}
	if !Equal(NewList(Number(1), NewList(Text("x"))), NewList(Number(1), NewList(Text("x")))) {
		t.Fatal()
	}
	a := NewDict()
	a.Set("k", Bool(true))
	b := NewDict()
	b.Set("k", Bool(true))
	if !Equal(a, b) {
		t.Fatal()
	}
	b.Set("j", Empty{})
	if Equal(a, b) {
		t.Fatal()
	}
}

func TestTruthy(t *testing.T) {
	tests := []struct {
		value Primitive
		want  bool
	}{
		{Bool(true), true},
		{Bool(false), false},
		{Number(0), false},
		{Number(-1), true},
		{Number(0.5), true},
		{Empty{}, false},
		{Text(""), false},
		{Text("a"), true},
		{NewList(), false},
		{NewList(Empty{}), true},
		{NewDict(), false},
		{NewAtom("x"), true},
		{&FunctionReference{Name: "f"}, true},
	}
	for _, test := range tests {
		if got := Truthy(test.value); got != test.want {
			t.Errorf("%v: got %v", test.value, got)
		}
	}
}

func TestDictDelete(t *testing.T) {
	d := NewDict()
	d.Set("a", Number(1))
	d.Set("b", Number(2))
	d.Delete("a")
	if d.Len() != 1 || d.Keys()[0] != "b" {
		t.Fatalf("got %v", d)
	}
}

func TestListIndex(t *testing.T) {
	l := NewList(Number(1), Number(2), Number(3))
	if i, ok := l.Index(-1); !ok || i != 2 {
		t.Fatal()
	}
	if _, ok := l.Index(3); ok {
		t.Fatal()
	}
}
