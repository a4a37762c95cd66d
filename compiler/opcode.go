package compiler

import (
	"encoding/binary"
	"fmt"
)

type Opcode uint8

const (
	OpInvalid Opcode = iota

	OpLoad
	OpStore
	OpFastStore
	OpJump
	OpCompare
	OpCall
	OpReturn
	OpInitList
	OpInitDict

	OpAdd
	OpSub
	OpMul
	OpDiv
	OpMod

	OpEqual
	OpNotEqual
	OpLess
	OpLessEqual
	OpGreater
	OpGreaterEqual

	OpNot
	OpNegate
	OpIncrement
	OpDecrement

	OpDup
	OpDup2
	OpPop
	OpGetItem
	OpSetItem

	opcodeCount
)

var opcodeNames = [...]string{
	OpInvalid:      "INVALID",
	OpLoad:         "LOAD",
	OpStore:        "STORE",
	OpFastStore:    "FAST_STORE",
	OpJump:         "JUMP",
	OpCompare:      "COMPARE",
	OpCall:         "CALL",
	OpReturn:       "RETURN",
	OpInitList:     "INIT_LIST",
	OpInitDict:     "INIT_DICT",
	OpAdd:          "ADD",
	OpSub:          "SUB",
	OpMul:          "MUL",
	OpDiv:          "DIV",
	OpMod:          "MOD",
	OpEqual:        "EQUAL",
	OpNotEqual:     "NOT_EQUAL",
	OpLess:         "LESS",
	OpLessEqual:    "LESS_EQUAL",
	OpGreater:      "GREATER",
	OpGreaterEqual: "GREATER_EQUAL",
	OpNot:          "NOT",
	OpNegate:       "NEGATE",
	OpIncrement:    "INCREMENT",
	OpDecrement:    "DECREMENT",
	OpDup:          "DUP",
	OpDup2:         "DUP2",
	OpPop:          "POP",
	OpGetItem:      "GET_ITEM",
	OpSetItem:      "SET_ITEM",
}

func (o Opcode) String() string {
	if o < opcodeCount {
		return opcodeNames[o]
	}
	return fmt.Sprintf("OP(%d)", uint8(o))
}

// OperandSize is the number of operand bytes following the opcode byte.
func (o Opcode) OperandSize() int {
	switch o {
	case OpLoad, OpStore, OpFastStore, OpJump, OpCompare, OpInitList, OpInitDict:
		return 2
	case OpCall:
		return 4
	}
	return 0
}

// Instruction is one decoded opcode.
type Instruction struct {
	Offset int
	Op     Opcode
	// u16 operand of every opcode except Call
	Arg int
	// Call operands
	Slot         int
	ArgCount     int
	AssignToTemp bool
}

// Size is the encoded length in bytes.
func (i Instruction) Size() int {
	return 1 + i.Op.OperandSize()
}

func readU16(code []byte, offset int) int {
	return int(binary.LittleEndian.Uint16(code[offset:]))
}

// Decode reads the instruction at offset.
func Decode(code []byte, offset int) (Instruction, error) {
	if offset < 0 || offset >= len(code) {
		return Instruction{}, fmt.Errorf("offset %d out of range", offset)
	}
	op := Opcode(code[offset])
	if op == OpInvalid || op >= opcodeCount {
		return Instruction{}, fmt.Errorf("bad opcode %d at %d", code[offset], offset)
	}
	inst := Instruction{
		Offset: offset,
		Op:     op,
	}
	if offset+inst.Size() > len(code) {
		return Instruction{}, fmt.Errorf("truncated %s at %d", op, offset)
	}
	switch op.OperandSize() {
	case 2:
		inst.Arg = readU16(code, offset+1)
	case 4:
		inst.Slot = readU16(code, offset+1)
		inst.ArgCount = int(code[offset+3])
		inst.AssignToTemp = code[offset+4] != 0
	}
	return inst, nil
}

// Instructions decodes the whole buffer.
func Instructions(code []byte) ([]Instruction, error) {
	var ret []Instruction
	for offset := 0; offset < len(code); {
		inst, err := Decode(code, offset)
		if err != nil {
			return nil, err
		}
		ret = append(ret, inst)
		offset += inst.Size()
	}
	return ret, nil
}
