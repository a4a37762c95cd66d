package logs

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/reusee/dscope"
)

func TestNewSpan(t *testing.T) {
	withLevel(t, "debug")
	buf := new(bytes.Buffer)
	dscope.New(new(Module)).Fork(
		func() Writer {
			return buf
		},
	).Call(func(
		newSpan NewSpan,
	) {
		ctx := context.Background()
		ctx1, span1 := newSpan(ctx, "")
		ctx11, span11 := newSpan(ctx1, "")
		_, span12 := newSpan(ctx11, span1)

		lines := strings.Split(buf.String(), "\n")
		for i, want := range [][]string{
			{"logs.span=" + string(span1)},
			{"logs.span=" + string(span11), "parent=" + string(span1)},
			{"logs.span=" + string(span12), "parent=" + string(span1), "creator=" + string(span11)},
		} {
			for _, w := range want {
				if !strings.Contains(lines[i], w) {
					t.Fatalf("line %d: missing %q in %q", i, w, lines[i])
				}
			}
		}
		if strings.Contains(lines[1], "creator=") {
			t.Fatalf("got %v", lines[1])
		}
	})
}

func TestWrapSpan(t *testing.T) {
	err := context.Canceled
	if got := WrapSpan(context.Background(), err); got != err {
		t.Fatalf("got %v", got)
	}
	if WrapSpan(context.Background(), nil) != nil {
		t.Fatal()
	}
	ctx := context.WithValue(context.Background(), SpanKey, Span("abc"))
	wrapped := WrapSpan(ctx, err)
	if !strings.Contains(wrapped.Error(), "span abc") {
		t.Fatalf("got %v", wrapped)
	}
	if !errors.Is(wrapped, context.Canceled) {
		t.Fatal()
	}
}
