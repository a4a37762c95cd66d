package debugs

import (
	"context"
	"maps"
	"slices"

	"github.com/erhanbaris/karamel-sub001/logs"
	"github.com/erhanbaris/karamel-sub001/primitives"
	"github.com/reusee/starlarkutil"
	"go.starlark.net/repl"
	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// Tap opens a starlark REPL on stdin over program variables. Each helper
// is a Go function exposed under its key.
type Tap func(ctx context.Context, what string, vars map[string]primitives.Primitive, helpers map[string]any)

func (Module) Tap(
	logger logs.Logger,
) Tap {
	return func(ctx context.Context, what string, vars map[string]primitives.Primitive, helpers map[string]any) {
		logger.InfoContext(ctx, "tap: "+what,
			"vars", slices.Sorted(maps.Keys(vars)),
		)
		defer logger.InfoContext(ctx, "tap end: "+what)

		repl.REPLOptions(&syntax.FileOptions{
			Set:             true,
			While:           true,
			TopLevelControl: true,
		}, &starlark.Thread{
			Name: what,
		}, Globals(vars, helpers))
	}
}

// Globals builds the starlark environment a Tap runs in.
func Globals(vars map[string]primitives.Primitive, helpers map[string]any) starlark.StringDict {
	ret := make(starlark.StringDict, len(vars)+len(helpers))
	for name, value := range vars {
		ret[name] = toStarlarkValue(value)
	}
	for name, fn := range helpers {
		ret[name] = starlarkutil.MakeFunc(name, fn)
	}
	return ret
}
