package karamel

import (
	"context"
	"io"
	"strings"

	"github.com/erhanbaris/karamel-sub001/compiler"
	"github.com/erhanbaris/karamel-sub001/karamelconfigs"
	"github.com/erhanbaris/karamel-sub001/karamelvm"
	"github.com/erhanbaris/karamel-sub001/logs"
)

type runConfig struct {
	output io.Writer
	input  io.Reader
}

type RunOption func(*runConfig)

// WithOutput copies program output to w. Output is always captured in
// Result.Output as well.
func WithOutput(w io.Writer) RunOption {
	return func(c *runConfig) {
		c.output = w
	}
}

func WithInput(r io.Reader) RunOption {
	return func(c *runConfig) {
		c.input = r
	}
}

// Run executes a compiled unit, stopping at the first runtime error.
type Run func(ctx context.Context, unit *compiler.Context, options ...RunOption) Result

func (Module) Run(
	logger logs.Logger,
	newSpan logs.NewSpan,
	natives Natives,
	maxCallDepth karamelconfigs.MaxCallDepth,
	stackSize karamelconfigs.StackSize,
) Run {
	return func(ctx context.Context, unit *compiler.Context, options ...RunOption) Result {
		ctx, _ = newSpan(ctx, "")

		var config runConfig
		for _, option := range options {
			option(&config)
		}

		captured := new(strings.Builder)
		output := io.Writer(captured)
		if config.output != nil {
			output = io.MultiWriter(captured, config.output)
		}
		vmOptions := []karamelvm.Option{
			karamelvm.WithOutput(output),
			karamelvm.WithLogger(logger),
			karamelvm.WithMaxCallDepth(int(maxCallDepth)),
			karamelvm.WithStackSize(int(stackSize)),
		}
		if config.input != nil {
			vmOptions = append(vmOptions, karamelvm.WithInput(config.input))
		}

		vm := karamelvm.New(unit, natives, vmOptions...)
		err := vm.Execute()
		if err != nil {
			logger.InfoContext(ctx, "run failed", "error", err)
		} else {
			logger.DebugContext(ctx, "run done", "stack", vm.SP)
		}

		return Result{
			Compiled: true,
			Executed: err == nil,
			Output:   captured.String(),
			Stack:    vm.StackValues(),
			Memory:   unit.Storages[0].Values(),
			Unit:     unit,
			Err:      logs.WrapSpan(ctx, err),
		}
	}
}
