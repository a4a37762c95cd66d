package karamel

import (
	"context"
	"strings"

	"github.com/erhanbaris/karamel-sub001/debugs"
	"github.com/erhanbaris/karamel-sub001/primitives"
)

// TapResult opens an inspection REPL over the final top-level variables.
type TapResult func(ctx context.Context, result Result)

func (Module) TapResult(
	tap debugs.Tap,
) TapResult {
	return func(ctx context.Context, result Result) {
		tap(ctx, "karamel", result.Memory, resultHelpers(result))
	}
}

func resultHelpers(result Result) map[string]any {
	return map[string]any{
		"dump": func() string {
			if result.Unit == nil {
				return ""
			}
			var sb strings.Builder
			if err := result.Unit.Dump(&sb); err != nil {
				return err.Error()
			}
			return sb.String()
		},
		"stack": func() string {
			parts := make([]string, len(result.Stack))
			for i, p := range result.Stack {
				parts[i] = primitives.Quote(p)
			}
			return "[" + strings.Join(parts, ", ") + "]"
		},
		"output": func() string {
			return result.Output
		},
	}
}
