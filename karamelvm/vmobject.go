package karamelvm

import (
	"math"

	"github.com/erhanbaris/karamel-sub001/primitives"
)

// VmObject is a NaN boxed value. Doubles are stored inline. Quiet NaNs
// with the sign bit clear tag the empty and boolean values, and with the
// sign bit set tag a heap value held in ref.
type VmObject struct {
	bits uint64
	ref  primitives.Primitive
}

const (
	qnan       uint64 = 0x7ffc000000000000
	signBit    uint64 = 1 << 63
	tagEmpty   uint64 = 1
	tagFalse   uint64 = 2
	tagTrue    uint64 = 3
	pointerTag        = signBit | qnan

	canonicalNaN uint64 = 0x7ff8000000000000
)

var (
	Empty = VmObject{bits: qnan | tagEmpty}
	False = VmObject{bits: qnan | tagFalse}
	True  = VmObject{bits: qnan | tagTrue}
)

func FromNumber(f float64) VmObject {
	if f != f {
		return VmObject{bits: canonicalNaN}
	}
	return VmObject{bits: math.Float64bits(f)}
}

func FromBool(b bool) VmObject {
	if b {
		return True
	}
	return False
}

func FromPrimitive(p primitives.Primitive) VmObject {
	switch v := p.(type) {
	case nil, primitives.Empty:
		return Empty
	case primitives.Number:
		return FromNumber(float64(v))
	case primitives.Bool:
		return FromBool(bool(v))
	}
	return VmObject{
		bits: pointerTag | uint64(p.Kind()),
		ref:  p,
	}
}

func (o VmObject) Bits() uint64 {
	return o.bits
}

func (o VmObject) IsNumber() bool {
	return o.bits&qnan != qnan
}

func (o VmObject) IsPointer() bool {
	return o.bits&pointerTag == pointerTag
}

func (o VmObject) IsEmpty() bool {
	return o.bits == Empty.bits
}

func (o VmObject) IsBool() bool {
	return o.bits == True.bits || o.bits == False.bits
}

func (o VmObject) Number() float64 {
	return math.Float64frombits(o.bits)
}

func (o VmObject) Primitive() primitives.Primitive {
	switch {
	case o.IsNumber():
		return primitives.Number(o.Number())
	case o.IsPointer():
		return o.ref
	case o.bits == True.bits:
		return primitives.Bool(true)
	case o.bits == False.bits:
		return primitives.Bool(false)
	}
	return primitives.Empty{}
}

func (o VmObject) Kind() primitives.Kind {
	switch {
	case o.IsNumber():
		return primitives.KindNumber
	case o.IsPointer():
		return o.ref.Kind()
	case o.IsBool():
		return primitives.KindBool
	}
	return primitives.KindEmpty
}

func (o VmObject) Truthy() bool {
	switch {
	case o.IsNumber():
		return o.Number() != 0
	case o.IsPointer():
		return primitives.Truthy(o.ref)
	}
	return o.bits == True.bits
}

func (o VmObject) String() string {
	return o.Primitive().String()
}
