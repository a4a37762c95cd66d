package compiler

import (
	"maps"

	"github.com/erhanbaris/karamel-sub001/errs"
	"github.com/erhanbaris/karamel-sub001/primitives"
	"github.com/erhanbaris/karamel-sub001/syntax"
)

// Storage is the slot space of the top level or of one function. Memory
// holds the constants first, then one slot per variable.
type Storage struct {
	Index int
	Name  string
	Arity int

	constants []primitives.Primitive
	constMap  map[any]int
	variables []string
	slots     map[string]int
	memory    []primitives.Primitive
}

type functionKey struct {
	name   string
	native bool
}

func (s *Storage) Constants() []primitives.Primitive {
	return s.constants
}

func (s *Storage) Variables() []string {
	return s.variables
}

// Memory is the live slot array.
func (s *Storage) Memory() []primitives.Primitive {
	return s.memory
}

// SetMemory replaces the slot array, used to write execution results back.
func (s *Storage) SetMemory(memory []primitives.Primitive) {
	s.memory = memory
}

// InitialMemory returns a fresh copy of the slots as compiled.
func (s *Storage) InitialMemory() []primitives.Primitive {
	ret := make([]primitives.Primitive, 0, len(s.constants)+len(s.variables))
	ret = append(ret, s.constants...)
	for range s.variables {
		ret = append(ret, primitives.Empty{})
	}
	return ret
}

// Lookup returns the slot of a variable.
func (s *Storage) Lookup(name string) (int, bool) {
	slot, ok := s.slots[name]
	return slot, ok
}

// Names returns a copy of the variable name map.
func (s *Storage) Names() map[string]int {
	return maps.Clone(s.slots)
}

// Get returns the current value of a variable.
func (s *Storage) Get(name string) (primitives.Primitive, bool) {
	slot, ok := s.slots[name]
	if !ok || slot >= len(s.memory) {
		return nil, false
	}
	return s.memory[slot], true
}

// Values returns the variables and their current values.
func (s *Storage) Values() map[string]primitives.Primitive {
	ret := make(map[string]primitives.Primitive, len(s.slots))
	for name, slot := range s.slots {
		if slot < len(s.memory) {
			ret[name] = s.memory[slot]
		}
	}
	return ret
}

func (s *Storage) constantSlot(key any) (int, bool) {
	slot, ok := s.constMap[key]
	return slot, ok
}

func isScalar(p primitives.Primitive) bool {
	switch p.(type) {
	case primitives.Number, primitives.Bool, primitives.Text, primitives.Atom, primitives.Empty:
		return true
	}
	return false
}

func (s *Storage) addConstant(key any, value primitives.Primitive) {
	if _, ok := s.constMap[key]; ok {
		return
	}
	s.constMap[key] = len(s.constants)
	s.constants = append(s.constants, value)
}

func (s *Storage) addScalar(value primitives.Primitive) {
	if isScalar(value) {
		s.addConstant(value, value)
	}
}

func (s *Storage) declare(name string) {
	if _, ok := s.slots[name]; ok {
		return
	}
	s.slots[name] = len(s.variables)
	s.variables = append(s.variables, name)
}

// newStorage builds the storage of one scope. Nested function bodies are
// not visited, they own their storages.
func newStorage(ctx *Context, index int, name string, params []string, body *syntax.Block) (*Storage, error) {
	s := &Storage{
		Index:    index,
		Name:     name,
		Arity:    len(params),
		constMap: make(map[any]int),
		slots:    make(map[string]int),
	}

	for _, param := range params {
		s.declare(param)
	}
	walkScope(body, func(node syntax.Node) {
		switch n := node.(type) {
		case *syntax.Assignment:
			if sym, ok := n.Target.(*syntax.Symbol); ok {
				s.declare(sym.Name)
			}
		case *syntax.PrefixUnary:
			if sym, ok := n.Expr.(*syntax.Symbol); ok && (n.Op == syntax.OpIncrement || n.Op == syntax.OpDecrement) {
				s.declare(sym.Name)
			}
		case *syntax.SuffixUnary:
			if sym, ok := n.Expr.(*syntax.Symbol); ok {
				s.declare(sym.Name)
			}
		}
	})

	var err error
	resolve := func(pos syntax.Pos, name string) {
		if _, ok := s.slots[name]; ok {
			return
		}
		key, ref, ok := ctx.resolveFunction(name)
		if !ok {
			if err == nil {
				err = errs.Newf(errs.UnresolvedSymbol, pos.Line, pos.Column, "%s", name)
			}
			return
		}
		s.addConstant(key, ref)
	}
	walkScope(body, func(node syntax.Node) {
		switch n := node.(type) {
		case *syntax.Primitive:
			s.addScalar(n.Value)
		case *syntax.None:
			s.addScalar(primitives.Empty{})
		case *syntax.Dict:
			for _, entry := range n.Entries {
				s.addScalar(primitives.Text(entry.Key))
			}
		case *syntax.Symbol:
			resolve(n.Pos, n.Name)
		case *syntax.ModulePath:
			key, ref, ok := ctx.resolveNative(n.Name())
			if !ok {
				if err == nil {
					err = errs.Newf(errs.UnresolvedSymbol, n.Line, n.Column, "%s", n.Name())
				}
				return
			}
			s.addConstant(key, ref)
		}
	})
	if err != nil {
		return nil, err
	}

	for name, i := range s.slots {
		s.slots[name] = len(s.constants) + i
	}
	if len(s.constants)+len(s.variables) > maxOperand {
		return nil, errs.Newf(errs.SyntaxError, body.Line, body.Column, "too many slots in %s", name)
	}
	s.memory = s.InitialMemory()
	return s, nil
}

// walkScope visits nodes in source order without entering function bodies.
func walkScope(node syntax.Node, fn func(syntax.Node)) {
	if node == nil {
		return
	}
	fn(node)
	switch n := node.(type) {
	case *syntax.Block:
		for _, item := range n.Items {
			walkScope(item, fn)
		}
	case *syntax.Binary:
		walkScope(n.Left, fn)
		walkScope(n.Right, fn)
	case *syntax.Control:
		walkScope(n.Left, fn)
		walkScope(n.Right, fn)
	case *syntax.Assignment:
		walkScope(n.Target, fn)
		walkScope(n.Expr, fn)
	case *syntax.FuncCall:
		walkScope(n.Callee, fn)
		for _, arg := range n.Args {
			walkScope(arg, fn)
		}
	case *syntax.List:
		for _, item := range n.Items {
			walkScope(item, fn)
		}
	case *syntax.Dict:
		for _, entry := range n.Entries {
			walkScope(entry.Value, fn)
		}
	case *syntax.PrefixUnary:
		walkScope(n.Expr, fn)
	case *syntax.SuffixUnary:
		walkScope(n.Expr, fn)
	case *syntax.Indexer:
		walkScope(n.Body, fn)
		walkScope(n.Index, fn)
	case *syntax.If:
		walkScope(n.Condition, fn)
		walkScope(n.Body, fn)
		walkScope(n.Else, fn)
	case *syntax.Return:
		walkScope(n.Expr, fn)
	case *syntax.EndlessLoop:
		walkScope(n.Body, fn)
	case *syntax.WhileLoop:
		walkScope(n.Condition, fn)
		walkScope(n.Body, fn)
	}
}
