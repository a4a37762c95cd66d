package karamel

import (
	"github.com/erhanbaris/karamel-sub001/compiler"
	"github.com/erhanbaris/karamel-sub001/primitives"
)

// Result is the observable outcome of one program. Err is the first
// compile or runtime error. It carries the span of the failing step as a
// logs.SpanError, and unwraps to an *errs.Error for language failures.
type Result struct {
	Compiled bool
	Executed bool
	Output   string
	Stack    []primitives.Primitive
	Memory   map[string]primitives.Primitive
	Unit     *compiler.Context
	Err      error
}

// Top returns the value on top of the final stack, Empty when it is empty.
func (r Result) Top() primitives.Primitive {
	if len(r.Stack) == 0 {
		return primitives.Empty{}
	}
	return r.Stack[len(r.Stack)-1]
}
