package logs

import (
	"context"
	"crypto/rand"
)

// NewSpan starts a span under parent, or under the span already in ctx
// when parent is empty.
type NewSpan func(ctx context.Context, parent Span) (context.Context, Span)

func (Module) NewSpan(
	logger Logger,
) NewSpan {
	return func(ctx context.Context, parent Span) (context.Context, Span) {
		creator, _ := ctx.Value(SpanKey).(Span)
		if parent == "" {
			parent = creator
		}

		span := Span(rand.Text())
		ctx = context.WithValue(ctx, SpanKey, span)

		var args []any
		if parent != "" {
			args = append(args, "parent", parent)
		}
		if creator != "" && creator != parent {
			args = append(args, "creator", creator)
		}
		logger.DebugContext(ctx, "new span", args...)

		return ctx, span
	}
}
