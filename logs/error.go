package logs

import (
	"context"
	"fmt"
)

// SpanError attaches the span of the failing unit of work to an error.
type SpanError struct {
	Err  error
	Span Span
}

func (s SpanError) Error() string {
	return fmt.Sprintf("%v (span %s)", s.Err, s.Span)
}

func (s SpanError) Unwrap() error {
	return s.Err
}

func WrapSpan(ctx context.Context, err error) error {
	if err == nil {
		return nil
	}
	span, ok := ctx.Value(SpanKey).(Span)
	if !ok {
		return err
	}
	return SpanError{
		Err:  err,
		Span: span,
	}
}
