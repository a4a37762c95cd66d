package karamelvm

import (
	"bufio"
	"io"
	"log/slog"
	"os"

	"github.com/erhanbaris/karamel-sub001/compiler"
	"github.com/erhanbaris/karamel-sub001/errs"
	"github.com/erhanbaris/karamel-sub001/primitives"
)

const (
	DefaultMaxCallDepth = 1024
	DefaultStackSize    = 256
)

// NativeFunc implements a function registered by name.
type NativeFunc func(vm *VM, args []primitives.Primitive) (primitives.Primitive, error)

// Natives resolves native functions for both compiling and running.
type Natives interface {
	compiler.Natives
	Lookup(name string) (NativeFunc, bool)
}

type Frame struct {
	Storage      *compiler.Storage
	Memory       []VmObject
	ReturnIP     int
	BP           int
	AssignToTemp bool
}

type VM struct {
	Unit         *compiler.Context
	Natives      Natives
	IP           int
	Stack        []VmObject
	SP           int
	Frames       []Frame
	MaxCallDepth int

	output io.Writer
	input  *bufio.Reader
	logger *slog.Logger

	initial [][]VmObject
}

type Option func(*VM)

func WithOutput(w io.Writer) Option {
	return func(v *VM) {
		v.output = w
	}
}

func WithInput(r io.Reader) Option {
	return func(v *VM) {
		v.input = bufio.NewReader(r)
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(v *VM) {
		v.logger = logger
	}
}

func WithMaxCallDepth(n int) Option {
	return func(v *VM) {
		if n > 0 {
			v.MaxCallDepth = n
		}
	}
}

func WithStackSize(n int) Option {
	return func(v *VM) {
		if n > 0 {
			v.Stack = make([]VmObject, n)
		}
	}
}

func New(unit *compiler.Context, natives Natives, options ...Option) *VM {
	v := &VM{
		Unit:         unit,
		Natives:      natives,
		Stack:        make([]VmObject, DefaultStackSize),
		MaxCallDepth: DefaultMaxCallDepth,
		output:       os.Stdout,
	}
	for _, option := range options {
		option(v)
	}
	if v.input == nil {
		v.input = bufio.NewReader(os.Stdin)
	}
	if v.logger == nil {
		v.logger = slog.New(slog.DiscardHandler)
	}

	v.initial = make([][]VmObject, len(unit.Storages))
	for i, s := range unit.Storages {
		v.initial[i] = toObjects(s.InitialMemory())
	}
	if len(unit.Storages) > 0 {
		v.Frames = append(v.Frames, Frame{
			Storage:  unit.Storages[0],
			Memory:   toObjects(unit.Storages[0].Memory()),
			ReturnIP: -1,
		})
	}
	return v
}

func toObjects(values []primitives.Primitive) []VmObject {
	ret := make([]VmObject, len(values))
	for i, value := range values {
		ret[i] = FromPrimitive(value)
	}
	return ret
}

func toPrimitives(objects []VmObject) []primitives.Primitive {
	ret := make([]primitives.Primitive, len(objects))
	for i, o := range objects {
		ret[i] = o.Primitive()
	}
	return ret
}

func (v *VM) Output() io.Writer {
	return v.output
}

func (v *VM) Input() *bufio.Reader {
	return v.input
}

func (v *VM) Logger() *slog.Logger {
	return v.logger
}

func (v *VM) frame() *Frame {
	return &v.Frames[len(v.Frames)-1]
}

func (v *VM) push(o VmObject) {
	if v.SP >= len(v.Stack) {
		v.growStack()
	}
	v.Stack[v.SP] = o
	v.SP++
}

func (v *VM) growStack() {
	n := len(v.Stack) * 2
	if n == 0 {
		n = 8
	}
	stack := make([]VmObject, n)
	copy(stack, v.Stack)
	v.Stack = stack
}

func (v *VM) pop() VmObject {
	v.SP--
	o := v.Stack[v.SP]
	v.Stack[v.SP] = VmObject{}
	return o
}

func (v *VM) peek() VmObject {
	return v.Stack[v.SP-1]
}

// drop truncates the stack to sp.
func (v *VM) drop(sp int) {
	clear(v.Stack[sp:v.SP])
	v.SP = sp
}

// need checks that the current frame has n values on the stack.
func (v *VM) need(n int) error {
	if v.SP-v.frame().BP < n {
		return errs.Runtime(errs.StackUnderflow, "need %d values at offset %d", n, v.IP)
	}
	return nil
}

// StackValues returns the values left on the stack.
func (v *VM) StackValues() []primitives.Primitive {
	return toPrimitives(v.Stack[:v.SP])
}

// writeBack stores top level memory into the first storage.
func (v *VM) writeBack() {
	if len(v.Frames) == 0 {
		return
	}
	v.Unit.Storages[0].SetMemory(toPrimitives(v.Frames[0].Memory))
}

// Execute runs to completion and returns the first error.
func (v *VM) Execute() (err error) {
	for e := range v.Run {
		err = e
		break
	}
	return
}
