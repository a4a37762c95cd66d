package karamelvm

import (
	"math"
	"strings"

	"github.com/erhanbaris/karamel-sub001/compiler"
	"github.com/erhanbaris/karamel-sub001/errs"
	"github.com/erhanbaris/karamel-sub001/primitives"
)

func mismatch(op compiler.Opcode, left, right VmObject) error {
	return errs.Runtime(errs.TypeMismatch, "%s %s %s", left.Kind(), op, right.Kind())
}

func binaryOp(op compiler.Opcode, left, right VmObject) (VmObject, error) {
	switch op {
	case compiler.OpEqual:
		return FromBool(equal(left, right)), nil
	case compiler.OpNotEqual:
		return FromBool(!equal(left, right)), nil
	case compiler.OpLess, compiler.OpLessEqual, compiler.OpGreater, compiler.OpGreaterEqual:
		return compare(op, left, right)
	}

	if left.IsNumber() && right.IsNumber() {
		return arithmetic(op, left.Number(), right.Number()), nil
	}

	switch op {
	case compiler.OpAdd:
		l, lok := left.Primitive().(primitives.Text)
		r, rok := right.Primitive().(primitives.Text)
		switch {
		case lok && rok:
			return FromPrimitive(l + r), nil
		case lok:
			return FromPrimitive(l + primitives.Text(right.String())), nil
		case rok:
			return FromPrimitive(primitives.Text(left.String()) + r), nil
		}
		ll, lok := left.Primitive().(*primitives.List)
		rl, rok := right.Primitive().(*primitives.List)
		if lok && rok {
			items := make([]primitives.Primitive, 0, len(ll.Items)+len(rl.Items))
			items = append(items, ll.Items...)
			items = append(items, rl.Items...)
			return FromPrimitive(primitives.NewList(items...)), nil
		}

	case compiler.OpMul:
		if text, ok := left.Primitive().(primitives.Text); ok && right.IsNumber() {
			return repeat(text, right.Number()), nil
		}
		if text, ok := right.Primitive().(primitives.Text); ok && left.IsNumber() {
			return repeat(text, left.Number()), nil
		}
	}

	return Empty, mismatch(op, left, right)
}

func arithmetic(op compiler.Opcode, a, b float64) VmObject {
	switch op {
	case compiler.OpAdd:
		return FromNumber(a + b)
	case compiler.OpSub:
		return FromNumber(a - b)
	case compiler.OpMul:
		return FromNumber(a * b)
	case compiler.OpDiv:
		if b == 0 {
			return Empty
		}
		return FromNumber(a / b)
	case compiler.OpMod:
		if b == 0 {
			return Empty
		}
		return FromNumber(math.Mod(a, b))
	}
	return Empty
}

// repeat yields empty for a negative or fractional count.
func repeat(text primitives.Text, count float64) VmObject {
	if count < 0 || count != math.Trunc(count) || math.IsInf(count, 0) {
		return Empty
	}
	return FromPrimitive(primitives.Text(strings.Repeat(string(text), int(count))))
}

func equal(left, right VmObject) bool {
	if left.IsNumber() && right.IsNumber() {
		return left.Number() == right.Number()
	}
	if !left.IsPointer() && !right.IsPointer() {
		return left.bits == right.bits
	}
	return primitives.Equal(left.Primitive(), right.Primitive())
}

func compare(op compiler.Opcode, left, right VmObject) (VmObject, error) {
	var c int
	switch {
	case left.IsNumber() && right.IsNumber():
		a, b := left.Number(), right.Number()
		if a != a || b != b {
			return False, nil
		}
		switch {
		case a < b:
			c = -1
		case a > b:
			c = 1
		}
	default:
		l, lok := left.Primitive().(primitives.Text)
		r, rok := right.Primitive().(primitives.Text)
		if !lok || !rok {
			return Empty, mismatch(op, left, right)
		}
		c = strings.Compare(string(l), string(r))
	}
	switch op {
	case compiler.OpLess:
		return FromBool(c < 0), nil
	case compiler.OpLessEqual:
		return FromBool(c <= 0), nil
	case compiler.OpGreater:
		return FromBool(c > 0), nil
	}
	return FromBool(c >= 0), nil
}

func unaryOp(op compiler.Opcode, operand VmObject) (VmObject, error) {
	if !operand.IsNumber() {
		return Empty, errs.Runtime(errs.TypeMismatch, "%s %s", op, operand.Kind())
	}
	n := operand.Number()
	switch op {
	case compiler.OpNegate:
		return FromNumber(-n), nil
	case compiler.OpIncrement:
		return FromNumber(n + 1), nil
	}
	return FromNumber(n - 1), nil
}

func integralIndex(index VmObject) (int, bool) {
	if !index.IsNumber() {
		return 0, false
	}
	n := index.Number()
	if n != math.Trunc(n) || math.IsInf(n, 0) {
		return 0, false
	}
	return int(n), true
}

func getItem(container, index VmObject) (VmObject, error) {
	switch c := container.Primitive().(type) {

	case *primitives.List:
		i, ok := integralIndex(index)
		if !ok {
			return Empty, errs.Runtime(errs.TypeMismatch, "list index must be an integral number, got %s", index.Kind())
		}
		pos, ok := c.Index(i)
		if !ok {
			return Empty, errs.Runtime(errs.IndexOutOfRange, "index %d of %d", i, c.Len())
		}
		return FromPrimitive(c.Items[pos]), nil

	case *primitives.Dict:
		key, ok := index.Primitive().(primitives.Text)
		if !ok {
			return Empty, errs.Runtime(errs.TypeMismatch, "dict key must be text, got %s", index.Kind())
		}
		value, _ := c.Get(string(key))
		return FromPrimitive(value), nil

	case primitives.Text:
		i, ok := integralIndex(index)
		if !ok {
			return Empty, errs.Runtime(errs.TypeMismatch, "text index must be an integral number, got %s", index.Kind())
		}
		runes := []rune(string(c))
		if i < 0 {
			i += len(runes)
		}
		if i < 0 || i >= len(runes) {
			return Empty, errs.Runtime(errs.IndexOutOfRange, "index %d of %d", i, len(runes))
		}
		return FromPrimitive(primitives.Text(runes[i])), nil
	}

	return Empty, errs.Runtime(errs.TypeMismatch, "%s is not indexable", container.Kind())
}

func setItem(container, index, value VmObject) error {
	switch c := container.Primitive().(type) {

	case *primitives.List:
		i, ok := integralIndex(index)
		if !ok {
			return errs.Runtime(errs.TypeMismatch, "list index must be an integral number, got %s", index.Kind())
		}
		pos, ok := c.Index(i)
		if !ok {
			return errs.Runtime(errs.IndexOutOfRange, "index %d of %d", i, c.Len())
		}
		c.Items[pos] = value.Primitive()
		return nil

	case *primitives.Dict:
		key, ok := index.Primitive().(primitives.Text)
		if !ok {
			return errs.Runtime(errs.TypeMismatch, "dict key must be text, got %s", index.Kind())
		}
		c.Set(string(key), value.Primitive())
		return nil
	}

	return errs.Runtime(errs.TypeMismatch, "%s does not support item assignment", container.Kind())
}
