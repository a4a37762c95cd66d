package builtins

import (
	"maps"
	"slices"
	"strings"

	"github.com/erhanbaris/karamel-sub001/errs"
	"github.com/erhanbaris/karamel-sub001/karamelvm"
	"github.com/erhanbaris/karamel-sub001/primitives"
)

// Variadic marks a builtin that takes any number of arguments.
const Variadic = -1

type Builtin struct {
	Name  string
	Arity int
	Func  karamelvm.NativeFunc
}

// Registry maps dotted names like io.writeline to builtins. Bare names
// resolve to the base module.
type Registry struct {
	funcs map[string]Builtin
}

var _ karamelvm.Natives = new(Registry)

func NewRegistry(builtins ...Builtin) *Registry {
	r := &Registry{
		funcs: make(map[string]Builtin),
	}
	for _, b := range builtins {
		r.Register(b)
	}
	return r
}

// Default returns a registry holding every standard builtin.
func Default() *Registry {
	return NewRegistry(slices.Concat(ioFuncs, numFuncs, textFuncs, listFuncs, dictFuncs, baseFuncs)...)
}

func (r *Registry) Register(b Builtin) {
	r.funcs[b.Name] = b
}

func (r *Registry) Resolve(name string) (string, bool) {
	if _, ok := r.funcs[name]; ok {
		return name, true
	}
	if !strings.Contains(name, ".") {
		qualified := "base." + name
		if _, ok := r.funcs[qualified]; ok {
			return qualified, true
		}
	}
	return "", false
}

func (r *Registry) Lookup(name string) (karamelvm.NativeFunc, bool) {
	b, ok := r.funcs[name]
	if !ok {
		return nil, false
	}
	if b.Arity == Variadic {
		return b.Func, true
	}
	return func(vm *karamelvm.VM, args []primitives.Primitive) (primitives.Primitive, error) {
		if len(args) != b.Arity {
			return nil, errs.Runtime(errs.ArgumentCountMismatch, "%s takes %d arguments, got %d", b.Name, b.Arity, len(args))
		}
		return b.Func(vm, args)
	}, true
}

// Names returns the registered names in order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.funcs))
	for name := range r.funcs {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Without returns a copy of r lacking the named builtins.
func (r *Registry) Without(names ...string) *Registry {
	ret := &Registry{
		funcs: maps.Clone(r.funcs),
	}
	for _, name := range names {
		if canonical, ok := r.Resolve(name); ok {
			delete(ret.funcs, canonical)
		}
	}
	return ret
}
