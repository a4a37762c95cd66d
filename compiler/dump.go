package compiler

import (
	"fmt"
	"io"

	"github.com/erhanbaris/karamel-sub001/primitives"
)

// Dump writes an opcode listing followed by the storage layouts.
func (c *Context) Dump(w io.Writer) error {
	entries := make(map[int]string)
	for name, ref := range c.Functions {
		entries[ref.Entry] = name
	}

	instructions, err := Instructions(c.Opcodes)
	if err != nil {
		return err
	}
	for _, inst := range instructions {
		if name, ok := entries[inst.Offset]; ok {
			if _, err := fmt.Fprintf(w, "%s:\n", name); err != nil {
				return err
			}
		}
		var operands string
		switch inst.Op.OperandSize() {
		case 2:
			operands = fmt.Sprintf("%d", inst.Arg)
		case 4:
			operands = fmt.Sprintf("%d %d %t", inst.Slot, inst.ArgCount, inst.AssignToTemp)
		}
		if _, err := fmt.Fprintf(w, "%04d %-14s %s\n", inst.Offset, inst.Op, operands); err != nil {
			return err
		}
	}

	for _, s := range c.Storages {
		name := s.Name
		if name == "" {
			name = "<top>"
		}
		if _, err := fmt.Fprintf(w, "storage %d %s\n", s.Index, name); err != nil {
			return err
		}
		for i, value := range s.Constants() {
			if _, err := fmt.Fprintf(w, "  %3d const %s\n", i, primitives.Quote(value)); err != nil {
				return err
			}
		}
		for i, name := range s.Variables() {
			if _, err := fmt.Fprintf(w, "  %3d var   %s\n", len(s.Constants())+i, name); err != nil {
				return err
			}
		}
	}
	return nil
}
