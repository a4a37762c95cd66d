package builtins

import (
	"errors"
	"io"
	"math"
	"strings"
	"unicode/utf8"

	"github.com/erhanbaris/karamel-sub001/errs"
	"github.com/erhanbaris/karamel-sub001/karamelvm"
	"github.com/erhanbaris/karamel-sub001/primitives"
)

type args = []primitives.Primitive

func typeError(name string, arg primitives.Primitive, want primitives.Kind) error {
	return errs.Runtime(errs.TypeMismatch, "%s expects %s, got %s", name, want, primitives.OrEmpty(arg).Kind())
}

func joined(values args) string {
	var b strings.Builder
	for _, v := range values {
		b.WriteString(primitives.OrEmpty(v).String())
	}
	return b.String()
}

var ioFuncs = []Builtin{
	{
		Name:  "io.print",
		Arity: Variadic,
		Func: func(vm *karamelvm.VM, a args) (primitives.Primitive, error) {
			_, err := io.WriteString(vm.Output(), joined(a))
			return primitives.Empty{}, err
		},
	},
	{
		Name:  "io.writeline",
		Arity: Variadic,
		Func: func(vm *karamelvm.VM, a args) (primitives.Primitive, error) {
			_, err := io.WriteString(vm.Output(), joined(a)+"\n")
			return primitives.Empty{}, err
		},
	},
	{
		Name:  "io.readline",
		Arity: 0,
		Func: func(vm *karamelvm.VM, a args) (primitives.Primitive, error) {
			line, err := vm.Input().ReadString('\n')
			if errors.Is(err, io.EOF) {
				if line == "" {
					return primitives.Empty{}, nil
				}
				err = nil
			}
			if err != nil {
				return nil, err
			}
			line = strings.TrimSuffix(line, "\n")
			line = strings.TrimSuffix(line, "\r")
			return primitives.Text(line), nil
		},
	},
}

func numeric(name string, fn func(float64) float64) Builtin {
	return Builtin{
		Name:  name,
		Arity: 1,
		Func: func(vm *karamelvm.VM, a args) (primitives.Primitive, error) {
			n, ok := a[0].(primitives.Number)
			if !ok {
				return nil, typeError(name, a[0], primitives.KindNumber)
			}
			return primitives.Number(fn(float64(n))), nil
		},
	}
}

var numFuncs = []Builtin{
	numeric("num.abs", math.Abs),
	numeric("num.floor", math.Floor),
	numeric("num.ceil", math.Ceil),
	numeric("num.round", math.Round),
	numeric("num.sqrt", math.Sqrt),
}

func textual(name string, fn func(string) primitives.Primitive) Builtin {
	return Builtin{
		Name:  name,
		Arity: 1,
		Func: func(vm *karamelvm.VM, a args) (primitives.Primitive, error) {
			t, ok := a[0].(primitives.Text)
			if !ok {
				return nil, typeError(name, a[0], primitives.KindText)
			}
			return fn(string(t)), nil
		},
	}
}

var textFuncs = []Builtin{
	textual("text.length", func(s string) primitives.Primitive {
		return primitives.Number(utf8.RuneCountInString(s))
	}),
	textual("text.upper", func(s string) primitives.Primitive {
		return primitives.Text(strings.ToUpper(s))
	}),
	textual("text.lower", func(s string) primitives.Primitive {
		return primitives.Text(strings.ToLower(s))
	}),
	{
		Name:  "text.join",
		Arity: 2,
		Func: func(vm *karamelvm.VM, a args) (primitives.Primitive, error) {
			l, ok := a[0].(*primitives.List)
			if !ok {
				return nil, typeError("text.join", a[0], primitives.KindList)
			}
			sep, ok := a[1].(primitives.Text)
			if !ok {
				return nil, typeError("text.join", a[1], primitives.KindText)
			}
			parts := make([]string, 0, l.Len())
			for _, item := range l.Items {
				parts = append(parts, primitives.OrEmpty(item).String())
			}
			return primitives.Text(strings.Join(parts, string(sep))), nil
		},
	},
}

func asList(name string, p primitives.Primitive) (*primitives.List, error) {
	l, ok := p.(*primitives.List)
	if !ok {
		return nil, typeError(name, p, primitives.KindList)
	}
	return l, nil
}

var listFuncs = []Builtin{
	{
		Name:  "list.length",
		Arity: 1,
		Func: func(vm *karamelvm.VM, a args) (primitives.Primitive, error) {
			l, err := asList("list.length", a[0])
			if err != nil {
				return nil, err
			}
			return primitives.Number(l.Len()), nil
		},
	},
	{
		Name:  "list.append",
		Arity: 2,
		Func: func(vm *karamelvm.VM, a args) (primitives.Primitive, error) {
			l, err := asList("list.append", a[0])
			if err != nil {
				return nil, err
			}
			l.Items = append(l.Items, a[1])
			return l, nil
		},
	},
	{
		Name:  "list.pop",
		Arity: 1,
		Func: func(vm *karamelvm.VM, a args) (primitives.Primitive, error) {
			l, err := asList("list.pop", a[0])
			if err != nil {
				return nil, err
			}
			if l.Len() == 0 {
				return nil, errs.Runtime(errs.IndexOutOfRange, "pop from empty list")
			}
			last := l.Items[len(l.Items)-1]
			l.Items = l.Items[:len(l.Items)-1]
			return last, nil
		},
	},
}

func asDict(name string, p primitives.Primitive) (*primitives.Dict, error) {
	d, ok := p.(*primitives.Dict)
	if !ok {
		return nil, typeError(name, p, primitives.KindDict)
	}
	return d, nil
}

var dictFuncs = []Builtin{
	{
		Name:  "dict.keys",
		Arity: 1,
		Func: func(vm *karamelvm.VM, a args) (primitives.Primitive, error) {
			d, err := asDict("dict.keys", a[0])
			if err != nil {
				return nil, err
			}
			keys := primitives.NewList()
			for _, key := range d.Keys() {
				keys.Items = append(keys.Items, primitives.Text(key))
			}
			return keys, nil
		},
	},
	{
		Name:  "dict.get",
		Arity: Variadic,
		Func: func(vm *karamelvm.VM, a args) (primitives.Primitive, error) {
			if len(a) != 2 && len(a) != 3 {
				return nil, errs.Runtime(errs.ArgumentCountMismatch, "dict.get takes 2 or 3 arguments, got %d", len(a))
			}
			d, err := asDict("dict.get", a[0])
			if err != nil {
				return nil, err
			}
			key, ok := a[1].(primitives.Text)
			if !ok {
				return nil, typeError("dict.get", a[1], primitives.KindText)
			}
			if value, ok := d.Get(string(key)); ok {
				return value, nil
			}
			if len(a) == 3 {
				return a[2], nil
			}
			return primitives.Empty{}, nil
		},
	},
}

var baseFuncs = []Builtin{
	{
		Name:  "base.type",
		Arity: 1,
		Func: func(vm *karamelvm.VM, a args) (primitives.Primitive, error) {
			return primitives.Text(primitives.OrEmpty(a[0]).Kind().String()), nil
		},
	},
	{
		Name:  "base.text",
		Arity: 1,
		Func: func(vm *karamelvm.VM, a args) (primitives.Primitive, error) {
			return primitives.Text(primitives.OrEmpty(a[0]).String()), nil
		},
	},
	{
		Name:  "base.length",
		Arity: 1,
		Func: func(vm *karamelvm.VM, a args) (primitives.Primitive, error) {
			switch v := a[0].(type) {
			case primitives.Text:
				return primitives.Number(utf8.RuneCountInString(string(v))), nil
			case *primitives.List:
				return primitives.Number(v.Len()), nil
			case *primitives.Dict:
				return primitives.Number(v.Len()), nil
			}
			return nil, errs.Runtime(errs.TypeMismatch, "%s has no length", primitives.OrEmpty(a[0]).Kind())
		},
	},
}
