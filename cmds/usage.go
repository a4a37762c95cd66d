package cmds

import (
	"fmt"
	"io"
	"reflect"
	"slices"
	"strings"
)

func (e *Executor) PrintUsage() {
	writeUsage(e.output, e.commands, 0)
}

func writeUsage(w io.Writer, commands map[string]*Command, depth int) {
	// aliases share the command value
	names := make(map[*Command][]string)
	var order []*Command
	for name, cmd := range commands {
		if cmd == nil {
			continue
		}
		if _, ok := names[cmd]; !ok {
			order = append(order, cmd)
		}
		names[cmd] = append(names[cmd], name)
	}
	for _, cmd := range order {
		slices.Sort(names[cmd])
	}
	slices.SortFunc(order, func(a, b *Command) int {
		return strings.Compare(names[a][0], names[b][0])
	})

	indent := strings.Repeat("  ", depth)
	for _, cmd := range order {
		line := indent + strings.Join(names[cmd], ", ")
		if cmd.Func.IsValid() {
			for i := range cmd.Func.Type().NumIn() {
				t := cmd.Func.Type().In(i)
				if t.Kind() == reflect.Pointer {
					line += fmt.Sprintf(" [%v]", t.Elem())
				} else {
					line += fmt.Sprintf(" <%v>", t)
				}
			}
		}
		if cmd.Description != "" {
			line += "\t" + cmd.Description
		}
		fmt.Fprintln(w, line)
		if len(cmd.Subs) > 0 {
			writeUsage(w, cmd.Subs, depth+1)
		}
	}
}
