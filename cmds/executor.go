package cmds

import (
	"fmt"
	"io"
	"os"
	"strings"
)

type Executor struct {
	commands map[string]*Command
	output   io.Writer
}

func NewExecutor() *Executor {
	ret := &Executor{
		commands: make(map[string]*Command),
		output:   os.Stdout,
	}
	ret.Define("-h", Func(func() {
		ret.PrintUsage()
		os.Exit(0)
	}).Desc("print this usage").Alias("help", "-help", "--help"))
	return ret
}

// SetOutput sets where usage is written.
func (e *Executor) SetOutput(w io.Writer) {
	e.output = w
}

func (e *Executor) Define(name string, command *Command) {
	for _, n := range append([]string{name}, command.Aliases...) {
		if _, ok := e.commands[n]; ok {
			panic(fmt.Errorf("duplicated command %s", n))
		}
		e.commands[n] = command
	}
}

// Execute consumes args from left to right. Sub commands of an executed
// command stay visible for the rest of the arguments.
func (e *Executor) Execute(args []string) error {
	scopes := []map[string]*Command{e.commands}
	lookup := func(name string) (*Command, bool) {
		for i := len(scopes) - 1; i >= 0; i-- {
			if cmd, ok := scopes[i][name]; ok {
				return cmd, true
			}
		}
		return nil, false
	}

	for len(args) > 0 {
		name := strings.TrimSpace(args[0])
		args = args[1:]
		command, _ := lookup(name)
		if command == nil {
			return fmt.Errorf("unknown command: %s", name)
		}

		var err error
		args, err = command.call(args)
		if err != nil {
			return err
		}

		if len(command.Subs) > 0 {
			for sub := range command.Subs {
				if _, ok := lookup(sub); ok {
					return fmt.Errorf("duplicated sub command: %s %s", name, sub)
				}
			}
			scopes = append(scopes, command.Subs)
		}
	}
	return nil
}

func (e *Executor) MustExecute(args []string) {
	if err := e.Execute(args); err != nil {
		panic(err)
	}
}
