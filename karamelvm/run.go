package karamelvm

import (
	"encoding/binary"
	"errors"

	"github.com/erhanbaris/karamel-sub001/compiler"
	"github.com/erhanbaris/karamel-sub001/errs"
	"github.com/erhanbaris/karamel-sub001/primitives"
)

// Run executes until the top level runs past the end of the opcodes.
// Recoverable errors are yielded; when yield returns true execution goes
// on with an empty value in place of the failed result. Fatal errors
// always end the run.
func (v *VM) Run(yield func(error) bool) {
	defer v.writeBack()
	if len(v.Frames) == 0 {
		return
	}
	code := v.Unit.Opcodes

	for v.IP < len(code) {
		op := compiler.Opcode(code[v.IP])
		at := v.IP
		size := op.OperandSize()
		if op == compiler.OpInvalid || at+1+size > len(code) {
			yield(errs.Runtime(errs.InvalidJumpTarget, "bad instruction %s at %d", op, at))
			return
		}
		v.IP += 1 + size

		var arg int
		if size >= 2 {
			arg = int(binary.LittleEndian.Uint16(code[at+1:]))
		}

		var err error
		switch op {

		case compiler.OpLoad:
			memory := v.frame().Memory
			if arg >= len(memory) {
				err = errs.Runtime(errs.InvalidSlot, "slot %d at %d", arg, at)
				break
			}
			v.push(memory[arg])

		case compiler.OpStore, compiler.OpFastStore:
			memory := v.frame().Memory
			if arg >= len(memory) {
				err = errs.Runtime(errs.InvalidSlot, "slot %d at %d", arg, at)
				break
			}
			if err = v.need(1); err != nil {
				break
			}
			if op == compiler.OpStore {
				memory[arg] = v.pop()
			} else {
				memory[arg] = v.peek()
			}

		case compiler.OpJump:
			if arg > len(code) {
				err = errs.Runtime(errs.InvalidJumpTarget, "jump to %d at %d", arg, at)
				break
			}
			v.IP = arg

		case compiler.OpCompare:
			if arg > len(code) {
				err = errs.Runtime(errs.InvalidJumpTarget, "jump to %d at %d", arg, at)
				break
			}
			if err = v.need(1); err != nil {
				break
			}
			if !v.pop().Truthy() {
				v.IP = arg
			}

		case compiler.OpCall:
			argc := int(code[at+3])
			temp := code[at+4] != 0
			err = v.call(arg, argc, temp)

		case compiler.OpReturn:
			err = v.ret()

		case compiler.OpInitList:
			if err = v.need(arg); err != nil {
				break
			}
			items := toPrimitives(v.Stack[v.SP-arg : v.SP])
			v.drop(v.SP - arg)
			v.push(FromPrimitive(primitives.NewList(items...)))

		case compiler.OpInitDict:
			err = v.initDict(arg)

		case compiler.OpAdd, compiler.OpSub, compiler.OpMul, compiler.OpDiv, compiler.OpMod,
			compiler.OpEqual, compiler.OpNotEqual,
			compiler.OpLess, compiler.OpLessEqual, compiler.OpGreater, compiler.OpGreaterEqual:
			if err = v.need(2); err != nil {
				break
			}
			right := v.pop()
			left := v.pop()
			var result VmObject
			result, err = binaryOp(op, left, right)
			v.push(result)

		case compiler.OpNot:
			if err = v.need(1); err != nil {
				break
			}
			v.push(FromBool(!v.pop().Truthy()))

		case compiler.OpNegate, compiler.OpIncrement, compiler.OpDecrement:
			if err = v.need(1); err != nil {
				break
			}
			var result VmObject
			result, err = unaryOp(op, v.pop())
			v.push(result)

		case compiler.OpDup:
			if err = v.need(1); err != nil {
				break
			}
			v.push(v.peek())

		case compiler.OpDup2:
			if err = v.need(2); err != nil {
				break
			}
			a, b := v.Stack[v.SP-2], v.Stack[v.SP-1]
			v.push(a)
			v.push(b)

		case compiler.OpPop:
			if err = v.need(1); err != nil {
				break
			}
			v.pop()

		case compiler.OpGetItem:
			if err = v.need(2); err != nil {
				break
			}
			index := v.pop()
			container := v.pop()
			var result VmObject
			result, err = getItem(container, index)
			v.push(result)

		case compiler.OpSetItem:
			if err = v.need(3); err != nil {
				break
			}
			value := v.pop()
			index := v.pop()
			container := v.pop()
			err = setItem(container, index, value)

		default:
			err = errs.Runtime(errs.InvalidJumpTarget, "bad instruction %s at %d", op, at)
		}

		if err == nil {
			continue
		}
		var e *errs.Error
		if !errors.As(err, &e) || e.Kind.Fatal() {
			v.logger.Error("execution stopped", "error", err, "offset", at)
			yield(err)
			return
		}
		v.logger.Debug("runtime error", "error", err, "offset", at)
		if !yield(err) {
			return
		}
	}
}

func (v *VM) call(slot int, argc int, temp bool) error {
	memory := v.frame().Memory
	if slot >= len(memory) {
		return errs.Runtime(errs.InvalidSlot, "slot %d", slot)
	}
	if err := v.need(argc); err != nil {
		return err
	}

	fail := func(err error) error {
		v.drop(v.SP - argc)
		if temp {
			v.push(Empty)
		}
		return err
	}

	callee := memory[slot]
	ref, ok := callee.Primitive().(*primitives.FunctionReference)
	if !ok {
		return fail(errs.Runtime(errs.NotCallable, "%s is not a function", callee.Kind()))
	}

	if ref.Native {
		var fn NativeFunc
		if v.Natives != nil {
			fn, ok = v.Natives.Lookup(ref.Name)
		}
		if !ok {
			return fail(errs.Runtime(errs.NotCallable, "native function %s not registered", ref.Name))
		}
		args := toPrimitives(v.Stack[v.SP-argc : v.SP])
		v.drop(v.SP - argc)
		result, err := fn(v, args)
		if temp {
			v.push(FromPrimitive(result))
		}
		if err != nil {
			var e *errs.Error
			if !errors.As(err, &e) {
				err = errs.Runtime(errs.TypeMismatch, "%s: %v", ref.Name, err)
			}
			return err
		}
		return nil
	}

	if ref.Arity != argc {
		return fail(errs.Runtime(errs.ArgumentCountMismatch, "%s takes %d arguments, got %d", ref.Name, ref.Arity, argc))
	}
	if ref.Storage <= 0 || ref.Storage >= len(v.Unit.Storages) {
		return errs.Runtime(errs.InvalidSlot, "storage %d of %s", ref.Storage, ref.Name)
	}
	if ref.Entry < 0 || ref.Entry >= len(v.Unit.Opcodes) {
		return errs.Runtime(errs.InvalidJumpTarget, "entry %d of %s", ref.Entry, ref.Name)
	}
	if len(v.Frames) >= v.MaxCallDepth {
		return errs.Runtime(errs.StackOverflow, "call depth %d exceeded in %s", v.MaxCallDepth, ref.Name)
	}

	storage := v.Unit.Storages[ref.Storage]
	frameMemory := make([]VmObject, len(v.initial[ref.Storage]))
	copy(frameMemory, v.initial[ref.Storage])
	params := len(storage.Constants())
	copy(frameMemory[params:params+argc], v.Stack[v.SP-argc:v.SP])
	v.drop(v.SP - argc)

	v.Frames = append(v.Frames, Frame{
		Storage:      storage,
		Memory:       frameMemory,
		ReturnIP:     v.IP,
		BP:           v.SP,
		AssignToTemp: temp,
	})
	v.IP = ref.Entry
	return nil
}

func (v *VM) ret() error {
	if err := v.need(1); err != nil {
		return err
	}
	result := v.pop()
	if len(v.Frames) == 1 {
		// returning from the top level ends the run
		v.push(result)
		v.IP = len(v.Unit.Opcodes)
		return nil
	}
	frame := v.Frames[len(v.Frames)-1]
	v.Frames = v.Frames[:len(v.Frames)-1]
	v.drop(frame.BP)
	v.IP = frame.ReturnIP
	if frame.AssignToTemp {
		v.push(result)
	}
	return nil
}

func (v *VM) initDict(pairs int) error {
	if err := v.need(pairs * 2); err != nil {
		return err
	}
	base := v.SP - pairs*2
	dict := primitives.NewDict()
	var err error
	for i := base; i < v.SP; i += 2 {
		key, ok := v.Stack[i].Primitive().(primitives.Text)
		if !ok {
			err = errs.Runtime(errs.TypeMismatch, "dict key must be text, got %s", v.Stack[i].Kind())
			continue
		}
		dict.Set(string(key), v.Stack[i+1].Primitive())
	}
	v.drop(base)
	v.push(FromPrimitive(dict))
	return err
}
