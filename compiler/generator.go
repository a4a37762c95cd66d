package compiler

import (
	"encoding/binary"
	"fmt"

	"github.com/erhanbaris/karamel-sub001/errs"
	"github.com/erhanbaris/karamel-sub001/primitives"
	"github.com/erhanbaris/karamel-sub001/syntax"
)

const maxOperand = 0xffff

type generator struct {
	unit       *Context
	storage    *Storage
	loops      []*LoopItem
	inFunction bool
}

func (g *generator) offset() int {
	return len(g.unit.Opcodes)
}

func (g *generator) emit(op Opcode) {
	g.unit.Opcodes = append(g.unit.Opcodes, byte(op))
}

func (g *generator) emitArg(op Opcode, arg int) {
	g.unit.Opcodes = append(g.unit.Opcodes, byte(op))
	g.unit.Opcodes = binary.LittleEndian.AppendUint16(g.unit.Opcodes, uint16(arg))
}

// emitJump emits op with a placeholder operand bound to loc.
func (g *generator) emitJump(op Opcode, loc Location) {
	g.emitArg(op, 0)
	g.unit.Locations.Use(g.unit.Opcodes, loc, g.offset()-2)
}

func (g *generator) emitCall(slot int, argc int, assignToTemp bool) {
	flag := byte(0)
	if assignToTemp {
		flag = 1
	}
	g.unit.Opcodes = append(g.unit.Opcodes, byte(OpCall))
	g.unit.Opcodes = binary.LittleEndian.AppendUint16(g.unit.Opcodes, uint16(slot))
	g.unit.Opcodes = append(g.unit.Opcodes, byte(argc), flag)
}

func (g *generator) newLocation() Location {
	return g.unit.Locations.New()
}

// mark resolves loc to the current offset.
func (g *generator) mark(loc Location) {
	g.unit.Locations.Set(g.unit.Opcodes, loc, g.offset())
}

func (g *generator) constant(node syntax.Node, key any) (int, error) {
	slot, ok := g.storage.constantSlot(key)
	if !ok {
		pos := node.Position()
		return 0, errs.Newf(errs.UnresolvedSymbol, pos.Line, pos.Column, "no slot for %v", key)
	}
	return slot, nil
}

func (g *generator) loadConstant(node syntax.Node, value primitives.Primitive) error {
	slot, err := g.constant(node, value)
	if err != nil {
		return err
	}
	g.emitArg(OpLoad, slot)
	return nil
}

// slotOf resolves a symbol to a variable slot or a function constant.
func (g *generator) slotOf(sym *syntax.Symbol) (int, error) {
	if slot, ok := g.storage.Lookup(sym.Name); ok {
		return slot, nil
	}
	key, _, ok := g.unit.resolveFunction(sym.Name)
	if !ok {
		return 0, errs.Newf(errs.UnresolvedSymbol, sym.Line, sym.Column, "%s", sym.Name)
	}
	return g.constant(sym, key)
}

func (g *generator) block(block *syntax.Block) error {
	for _, item := range block.Items {
		if err := g.statement(item); err != nil {
			return err
		}
	}
	return nil
}

// pushesValue reports whether a statement leaves a value on the stack.
func pushesValue(node syntax.Node) bool {
	switch n := node.(type) {
	case *syntax.Assignment, *syntax.If, *syntax.EndlessLoop, *syntax.WhileLoop,
		*syntax.Break, *syntax.Continue, *syntax.Return, *syntax.FunctionDefinition,
		*syntax.Block:
		return false
	case *syntax.FuncCall:
		return n.AssignToTemp
	case *syntax.PrefixUnary:
		if n.Op == syntax.OpIncrement || n.Op == syntax.OpDecrement {
			return n.AssignToTemp
		}
	case *syntax.SuffixUnary:
		return n.AssignToTemp
	}
	return true
}

func (g *generator) statement(node syntax.Node) error {
	switch n := node.(type) {

	case *syntax.Assignment:
		return g.assignment(n)

	case *syntax.If:
		return g.ifStatement(n)

	case *syntax.WhileLoop:
		return g.loop(n.Condition, n.Body)

	case *syntax.EndlessLoop:
		return g.loop(nil, n.Body)

	case *syntax.Break, *syntax.Continue:
		if len(g.loops) == 0 {
			pos := n.Position()
			return errs.New(errs.BreakAndContinueBelongToLoops, pos.Line, pos.Column)
		}
		item := g.loops[len(g.loops)-1]
		loc := g.newLocation()
		if _, ok := n.(*syntax.Break); ok {
			item.Breaks.Add(loc)
		} else {
			item.Continues.Add(loc)
		}
		g.emitJump(OpJump, loc)
		return nil

	case *syntax.Return:
		if !g.inFunction {
			return errs.New(errs.ReturnMustBeUsedInFunction, n.Line, n.Column)
		}
		if err := g.expression(n.Expr); err != nil {
			return err
		}
		g.emit(OpReturn)
		return nil

	case *syntax.FunctionDefinition:
		return g.function(n)

	case *syntax.Block:
		return g.block(n)
	}

	if err := g.expression(node); err != nil {
		return err
	}
	if pushesValue(node) && (g.inFunction || len(g.loops) > 0) {
		g.emit(OpPop)
	}
	return nil
}

var arithmeticOpcodes = map[syntax.Operator]Opcode{
	syntax.OpAddition:       OpAdd,
	syntax.OpSubtraction:    OpSub,
	syntax.OpMultiplication: OpMul,
	syntax.OpDivision:       OpDiv,
	syntax.OpModulo:         OpMod,
}

var compareOpcodes = map[syntax.Operator]Opcode{
	syntax.OpEqual:            OpEqual,
	syntax.OpNotEqual:         OpNotEqual,
	syntax.OpLessThan:         OpLess,
	syntax.OpLessEqualThan:    OpLessEqual,
	syntax.OpGreaterThan:      OpGreater,
	syntax.OpGreaterEqualThan: OpGreaterEqual,
}

func (g *generator) assignment(n *syntax.Assignment) error {
	switch target := n.Target.(type) {

	case *syntax.Symbol:
		slot, ok := g.storage.Lookup(target.Name)
		if !ok {
			return errs.Newf(errs.UnresolvedSymbol, target.Line, target.Column, "%s", target.Name)
		}
		if n.Op != syntax.OpAssign {
			g.emitArg(OpLoad, slot)
		}
		if err := g.expression(n.Expr); err != nil {
			return err
		}
		if n.Op != syntax.OpAssign {
			g.emit(arithmeticOpcodes[n.Op.Arithmetic()])
		}
		g.emitArg(OpStore, slot)
		return nil

	case *syntax.Indexer:
		if err := g.expression(target.Body); err != nil {
			return err
		}
		if err := g.expression(target.Index); err != nil {
			return err
		}
		if n.Op != syntax.OpAssign {
			g.emit(OpDup2)
			g.emit(OpGetItem)
		}
		if err := g.expression(n.Expr); err != nil {
			return err
		}
		if n.Op != syntax.OpAssign {
			g.emit(arithmeticOpcodes[n.Op.Arithmetic()])
		}
		g.emit(OpSetItem)
		return nil
	}

	pos := n.Target.Position()
	return errs.New(errs.InvalidAssignmentTarget, pos.Line, pos.Column)
}

func (g *generator) ifStatement(n *syntax.If) error {
	if err := g.expression(n.Condition); err != nil {
		return err
	}
	elseLoc := g.newLocation()
	g.emitJump(OpCompare, elseLoc)
	if err := g.block(n.Body); err != nil {
		return err
	}
	if n.Else == nil {
		g.mark(elseLoc)
		return nil
	}
	endLoc := g.newLocation()
	g.emitJump(OpJump, endLoc)
	g.mark(elseLoc)
	if err := g.statement(n.Else); err != nil {
		return err
	}
	g.mark(endLoc)
	return nil
}

// loop compiles a while loop, or an endless one when cond is nil.
func (g *generator) loop(cond syntax.Node, body *syntax.Block) error {
	item := new(LoopItem)
	g.loops = append(g.loops, item)

	start := g.offset()
	endLoc := g.newLocation()
	if cond != nil {
		if err := g.expression(cond); err != nil {
			return err
		}
		g.emitJump(OpCompare, endLoc)
	}
	if err := g.block(body); err != nil {
		return err
	}
	g.emitArg(OpJump, start)
	g.mark(endLoc)

	item.Breaks.Set(&g.unit.Locations, g.unit.Opcodes, g.offset())
	item.Continues.Set(&g.unit.Locations, g.unit.Opcodes, start)
	item.Breaks.Clear(&g.unit.Locations)
	item.Continues.Clear(&g.unit.Locations)
	g.loops = g.loops[:len(g.loops)-1]
	return nil
}

// function emits the body in place behind a jump that skips it.
func (g *generator) function(n *syntax.FunctionDefinition) error {
	ref, ok := g.unit.Functions[n.Name]
	if !ok {
		return errs.Newf(errs.FunctionNameNotDefined, n.Line, n.Column, "%s", n.Name)
	}

	skip := g.newLocation()
	g.emitJump(OpJump, skip)
	ref.Entry = g.offset()

	sub := &generator{
		unit:       g.unit,
		storage:    g.unit.Storages[ref.Storage],
		inFunction: true,
	}
	if err := sub.block(n.Body); err != nil {
		return err
	}
	if len(n.Body.Items) == 0 {
		if err := sub.loadConstant(n, primitives.Empty{}); err != nil {
			return err
		}
		sub.emit(OpReturn)
	}
	g.mark(skip)
	return nil
}

func (g *generator) expression(node syntax.Node) error {
	switch n := node.(type) {

	case *syntax.Primitive:
		return g.loadConstant(n, n.Value)

	case *syntax.None:
		return g.loadConstant(n, primitives.Empty{})

	case *syntax.Symbol:
		slot, err := g.slotOf(n)
		if err != nil {
			return err
		}
		g.emitArg(OpLoad, slot)
		return nil

	case *syntax.ModulePath:
		key, _, ok := g.unit.resolveNative(n.Name())
		if !ok {
			return errs.Newf(errs.UnresolvedSymbol, n.Line, n.Column, "%s", n.Name())
		}
		slot, err := g.constant(n, key)
		if err != nil {
			return err
		}
		g.emitArg(OpLoad, slot)
		return nil

	case *syntax.Binary:
		op, ok := arithmeticOpcodes[n.Op]
		if !ok {
			return errs.Newf(errs.SyntaxError, n.Line, n.Column, "bad operator %s", n.Op)
		}
		if err := g.expression(n.Left); err != nil {
			return err
		}
		if err := g.expression(n.Right); err != nil {
			return err
		}
		g.emit(op)
		return nil

	case *syntax.Control:
		return g.control(n)

	case *syntax.FuncCall:
		return g.call(n)

	case *syntax.List:
		for _, item := range n.Items {
			if err := g.expression(item); err != nil {
				return err
			}
		}
		if len(n.Items) > maxOperand {
			return errs.Newf(errs.SyntaxError, n.Line, n.Column, "list too long")
		}
		g.emitArg(OpInitList, len(n.Items))
		return nil

	case *syntax.Dict:
		for _, entry := range n.Entries {
			if err := g.loadConstant(n, primitives.Text(entry.Key)); err != nil {
				return err
			}
			if err := g.expression(entry.Value); err != nil {
				return err
			}
		}
		if len(n.Entries) > maxOperand {
			return errs.Newf(errs.SyntaxError, n.Line, n.Column, "dict too long")
		}
		g.emitArg(OpInitDict, len(n.Entries))
		return nil

	case *syntax.PrefixUnary:
		return g.prefix(n)

	case *syntax.SuffixUnary:
		return g.suffix(n)

	case *syntax.Indexer:
		if err := g.expression(n.Body); err != nil {
			return err
		}
		if err := g.expression(n.Index); err != nil {
			return err
		}
		g.emit(OpGetItem)
		return nil
	}

	if node == nil {
		return fmt.Errorf("nil expression")
	}
	pos := node.Position()
	return errs.Newf(errs.SyntaxError, pos.Line, pos.Column, "unexpected %s", node)
}

// control lowers comparisons to opcodes and and/or to short circuit jumps
// that keep the deciding operand as the result.
func (g *generator) control(n *syntax.Control) error {
	if op, ok := compareOpcodes[n.Op]; ok {
		if err := g.expression(n.Left); err != nil {
			return err
		}
		if err := g.expression(n.Right); err != nil {
			return err
		}
		g.emit(op)
		return nil
	}

	if n.Op != syntax.OpAnd && n.Op != syntax.OpOr {
		return errs.Newf(errs.SyntaxError, n.Line, n.Column, "bad operator %s", n.Op)
	}
	if err := g.expression(n.Left); err != nil {
		return err
	}
	end := g.newLocation()
	g.emit(OpDup)
	if n.Op == syntax.OpOr {
		g.emit(OpNot)
	}
	g.emitJump(OpCompare, end)
	g.emit(OpPop)
	if err := g.expression(n.Right); err != nil {
		return err
	}
	g.mark(end)
	return nil
}

func (g *generator) call(n *syntax.FuncCall) error {
	var slot int
	var err error
	switch callee := n.Callee.(type) {
	case *syntax.Symbol:
		if _, isVar := g.storage.Lookup(callee.Name); !isVar {
			if ref, ok := g.unit.Functions[callee.Name]; ok && ref.Arity != len(n.Args) {
				return errs.Newf(errs.ArgumentCountMismatch, n.Line, n.Column,
					"%s takes %d arguments, got %d", callee.Name, ref.Arity, len(n.Args))
			}
		}
		slot, err = g.slotOf(callee)
	case *syntax.ModulePath:
		key, _, ok := g.unit.resolveNative(callee.Name())
		if !ok {
			return errs.Newf(errs.UnresolvedSymbol, callee.Line, callee.Column, "%s", callee.Name())
		}
		slot, err = g.constant(callee, key)
	default:
		pos := n.Callee.Position()
		return errs.New(errs.FunctionCallSyntaxNotValid, pos.Line, pos.Column)
	}
	if err != nil {
		return err
	}
	if len(n.Args) > 0xff {
		return errs.Newf(errs.FunctionCallSyntaxNotValid, n.Line, n.Column, "too many arguments")
	}

	for _, arg := range n.Args {
		if err := g.expression(arg); err != nil {
			return err
		}
	}
	g.emitCall(slot, len(n.Args), n.AssignToTemp)
	return nil
}

func (g *generator) variableSlot(node syntax.Node) (int, error) {
	sym, ok := node.(*syntax.Symbol)
	if !ok {
		pos := node.Position()
		return 0, errs.New(errs.InvalidUnaryOperation, pos.Line, pos.Column)
	}
	slot, ok := g.storage.Lookup(sym.Name)
	if !ok {
		return 0, errs.Newf(errs.UnresolvedSymbol, sym.Line, sym.Column, "%s", sym.Name)
	}
	return slot, nil
}

func (g *generator) prefix(n *syntax.PrefixUnary) error {
	switch n.Op {
	case syntax.OpIncrement, syntax.OpDecrement:
		slot, err := g.variableSlot(n.Expr)
		if err != nil {
			return err
		}
		g.emitArg(OpLoad, slot)
		if n.Op == syntax.OpIncrement {
			g.emit(OpIncrement)
		} else {
			g.emit(OpDecrement)
		}
		if n.AssignToTemp {
			g.emitArg(OpFastStore, slot)
		} else {
			g.emitArg(OpStore, slot)
		}
		return nil

	case syntax.OpNot:
		if err := g.expression(n.Expr); err != nil {
			return err
		}
		g.emit(OpNot)
		return nil

	case syntax.OpNegate:
		if err := g.expression(n.Expr); err != nil {
			return err
		}
		g.emit(OpNegate)
		return nil

	case syntax.OpPlus:
		return g.expression(n.Expr)
	}
	return errs.New(errs.InvalidUnaryOperation, n.Line, n.Column)
}

func (g *generator) suffix(n *syntax.SuffixUnary) error {
	slot, err := g.variableSlot(n.Expr)
	if err != nil {
		return err
	}
	g.emitArg(OpLoad, slot)
	if n.AssignToTemp {
		g.emit(OpDup)
	}
	if n.Op == syntax.OpIncrement {
		g.emit(OpIncrement)
	} else {
		g.emit(OpDecrement)
	}
	g.emitArg(OpStore, slot)
	return nil
}
