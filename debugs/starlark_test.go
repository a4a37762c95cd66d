package debugs

import (
	"testing"

	"github.com/erhanbaris/karamel-sub001/primitives"
	"go.starlark.net/starlark"
)

func TestToStarlarkValue(t *testing.T) {
	dict := primitives.NewDict()
	dict.Set("b", primitives.Number(2))
	dict.Set("a", primitives.Bool(true))

	testCases := []struct {
		name     string
		input    primitives.Primitive
		expected starlark.Value
	}{
		{"empty", primitives.Empty{}, starlark.None},
		{"nil", nil, starlark.None},
		{"true", primitives.Bool(true), starlark.True},
		{"integral", primitives.Number(42), starlark.MakeInt(42)},
		{"negative", primitives.Number(-7), starlark.MakeInt(-7)},
		{"fraction", primitives.Number(1.5), starlark.Float(1.5)},
		{"huge", primitives.Number(1e300), starlark.Float(1e300)},
		{"text", primitives.Text("merhaba"), starlark.String("merhaba")},
		{"atom", primitives.NewAtom("ok"), starlark.String(":ok")},
		{"list", primitives.NewList(
			primitives.Number(1),
			primitives.NewList(primitives.Text("x")),
		), starlark.NewList([]starlark.Value{
			starlark.MakeInt(1),
			starlark.NewList([]starlark.Value{starlark.String("x")}),
		})},
		{"dict", dict, func() starlark.Value {
			d := starlark.NewDict(2)
			d.SetKey(starlark.String("b"), starlark.MakeInt(2))
			d.SetKey(starlark.String("a"), starlark.True)
			return d
		}()},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			actual := toStarlarkValue(tc.input)
			equal, err := starlark.Equal(actual, tc.expected)
			if err != nil {
				t.Fatalf("comparison failed: %v", err)
			}
			if !equal {
				t.Errorf("toStarlarkValue(%v) = %v, want %v", tc.input, actual, tc.expected)
			}
		})
	}

	t.Run("function", func(t *testing.T) {
		fn := toStarlarkValue(&primitives.FunctionReference{
			Name:   "io.print",
			Native: true,
		})
		if _, ok := fn.(starlark.Callable); !ok {
			t.Fatalf("got %T", fn)
		}
	})
}
