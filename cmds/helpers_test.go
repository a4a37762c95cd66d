package cmds

import (
	"fmt"
	"testing"
)

func TestVar(t *testing.T) {
	depth := Var[int]("TestVar-depth")
	name := Var[string]("TestVar-name")
	GlobalExecutor.MustExecute([]string{
		"TestVar-depth", "42",
		"TestVar-name", "karamel",
	})
	if *depth != 42 {
		t.Fatal()
	}
	if *name != "karamel" {
		t.Fatal()
	}
	GlobalExecutor.MustExecute([]string{"TestVar-depth."})
	if *depth != 0 {
		t.Fatal()
	}
}

func TestSwitch(t *testing.T) {
	foo := Switch("TestSwitch")
	if err := Execute([]string{"TestSwitch"}); err != nil {
		t.Fatal(err)
	}
	if !*foo {
		t.Fatal()
	}
	GlobalExecutor.MustExecute([]string{"!TestSwitch"})
	if *foo {
		t.Fatal()
	}
}

func TestCollect(t *testing.T) {
	list := Collect[string]("TestCollect")
	GlobalExecutor.MustExecute([]string{
		"TestCollect", "io.readline",
		"TestCollect", "io.print",
	})
	if str := fmt.Sprintf("%v", *list); str != "[io.readline io.print]" {
		t.Fatalf("got %s", str)
	}
}

func TestTypedVar(t *testing.T) {
	type Path string
	v := Var[Path]("TestTypedVar")
	GlobalExecutor.MustExecute([]string{
		"TestTypedVar", "main.k",
	})
	if *v != "main.k" {
		t.Fatal()
	}
}

func TestBoolArgument(t *testing.T) {
	v := Var[bool]("TestBoolArgument")
	GlobalExecutor.MustExecute([]string{"TestBoolArgument", "yes"})
	if !*v {
		t.Fatal()
	}
	GlobalExecutor.MustExecute([]string{"TestBoolArgument", "nope"})
	if *v {
		t.Fatal()
	}
}
