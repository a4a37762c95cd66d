package compiler

import (
	"github.com/erhanbaris/karamel-sub001/errs"
	"github.com/erhanbaris/karamel-sub001/primitives"
	"github.com/erhanbaris/karamel-sub001/syntax"
)

// Natives resolves callee names to registered native functions.
type Natives interface {
	Resolve(name string) (canonical string, ok bool)
}

// Context is one compilation unit. Storages[0] is the top level.
type Context struct {
	Opcodes   []byte
	Storages  []*Storage
	Functions map[string]*primitives.FunctionReference
	Natives   Natives
	Locations Locations
}

func NewContext(natives Natives) *Context {
	return &Context{
		Functions: make(map[string]*primitives.FunctionReference),
		Natives:   natives,
	}
}

func (c *Context) resolveFunction(name string) (functionKey, *primitives.FunctionReference, bool) {
	if ref, ok := c.Functions[name]; ok {
		return functionKey{name: name}, ref, true
	}
	return c.resolveNative(name)
}

func (c *Context) resolveNative(name string) (functionKey, *primitives.FunctionReference, bool) {
	if c.Natives == nil {
		return functionKey{}, nil, false
	}
	canonical, ok := c.Natives.Resolve(name)
	if !ok {
		return functionKey{}, nil, false
	}
	return functionKey{name: canonical, native: true}, &primitives.FunctionReference{
		Name:   canonical,
		Native: true,
		Arity:  -1,
	}, true
}

// Compile generates opcodes for ast into unit.
func Compile(ast *syntax.Block, unit *Context) error {
	if unit.Functions == nil {
		unit.Functions = make(map[string]*primitives.FunctionReference)
	}
	unit.Opcodes = unit.Opcodes[:0]
	unit.Storages = unit.Storages[:0]
	unit.Locations = Locations{}
	clear(unit.Functions)

	// functions are visible everywhere, including before their definition
	var defs []*syntax.FunctionDefinition
	var err error
	walkAll(ast, func(node syntax.Node) {
		def, ok := node.(*syntax.FunctionDefinition)
		if !ok || err != nil {
			return
		}
		if _, dup := unit.Functions[def.Name]; dup {
			err = errs.Newf(errs.DuplicateDefinition, def.Line, def.Column, "function %s", def.Name)
			return
		}
		unit.Functions[def.Name] = &primitives.FunctionReference{
			Name:    def.Name,
			Storage: len(defs) + 1,
			Arity:   len(def.Params),
		}
		defs = append(defs, def)
	})
	if err != nil {
		return err
	}

	top, err := newStorage(unit, 0, "", nil, ast)
	if err != nil {
		return err
	}
	unit.Storages = append(unit.Storages, top)
	for i, def := range defs {
		storage, err := newStorage(unit, i+1, def.Name, def.Params, def.Body)
		if err != nil {
			return err
		}
		unit.Storages = append(unit.Storages, storage)
	}

	g := &generator{
		unit:    unit,
		storage: top,
	}
	if err := g.block(ast); err != nil {
		return err
	}

	if len(unit.Opcodes) > maxOperand {
		return errs.Newf(errs.SyntaxError, ast.Line, ast.Column, "program too large")
	}
	if pending := unit.Locations.Unresolved(); len(pending) > 0 {
		if Debug {
			panic("unresolved jump locations")
		}
		return errs.Newf(errs.InvalidJumpTarget, ast.Line, ast.Column, "%d unresolved locations", len(pending))
	}
	return nil
}

func CompileString(source string, unit *Context) error {
	ast, err := syntax.ParseString(source)
	if err != nil {
		return err
	}
	return Compile(ast, unit)
}

// walkAll visits every node, function bodies included.
func walkAll(node syntax.Node, fn func(syntax.Node)) {
	walkScope(node, func(n syntax.Node) {
		fn(n)
		if def, ok := n.(*syntax.FunctionDefinition); ok {
			walkAll(def.Body, fn)
		}
	})
}
