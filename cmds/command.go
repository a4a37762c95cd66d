package cmds

import (
	"fmt"
	"reflect"
)

// Command is either a function taking positional arguments, a set of sub
// commands, or both.
type Command struct {
	Func        reflect.Value
	Subs        map[string]*Command
	Description string
	Aliases     []string
}

var errorType = reflect.TypeFor[error]()

func Func(fn any) *Command {
	value := reflect.ValueOf(fn)
	if value.Kind() != reflect.Func {
		panic(fmt.Errorf("command must be a function, got %T", fn))
	}
	switch t := value.Type(); t.NumOut() {
	case 0:
	case 1:
		if t.Out(0) != errorType {
			panic(fmt.Errorf("command must return error, got %v", t.Out(0)))
		}
	default:
		panic(fmt.Errorf("command returns %d values", t.NumOut()))
	}
	return &Command{
		Func: value,
	}
}

func Sub(subs map[string]*Command) *Command {
	return &Command{
		Subs: subs,
	}
}

func (c *Command) Desc(desc string) *Command {
	c.Description = desc
	return c
}

func (c *Command) Alias(names ...string) *Command {
	c.Aliases = append(c.Aliases, names...)
	return c
}

func (c *Command) call(args []string) ([]string, error) {
	if !c.Func.IsValid() {
		return args, nil
	}
	t := c.Func.Type()
	in := make([]reflect.Value, 0, t.NumIn())
	for i := range t.NumIn() {
		value, err := decodeArg(t.In(i), args)
		if err != nil {
			return nil, err
		}
		if len(args) > 0 {
			args = args[1:]
		}
		in = append(in, value)
	}
	out := c.Func.Call(in)
	if len(out) > 0 && !out[0].IsNil() {
		return nil, out[0].Interface().(error)
	}
	return args, nil
}
