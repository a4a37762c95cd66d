package karamel

import "context"

// Execute compiles and runs source.
type Execute func(ctx context.Context, source string, options ...RunOption) Result

func (Module) Execute(
	compile Compile,
	run Run,
) Execute {
	return func(ctx context.Context, source string, options ...RunOption) Result {
		unit, err := compile(ctx, source)
		if err != nil {
			return Result{
				Err: err,
			}
		}
		return run(ctx, unit, options...)
	}
}
