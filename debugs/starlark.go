package debugs

import (
	"fmt"
	"math"

	"github.com/erhanbaris/karamel-sub001/primitives"
	"github.com/reusee/starlarkutil"
	"go.starlark.net/starlark"
)

// toStarlarkValue converts a program value for inspection. Integral numbers
// become ints so that starlark indexing works on them.
func toStarlarkValue(p primitives.Primitive) starlark.Value {
	switch v := p.(type) {

	case nil, primitives.Empty:
		return starlark.None

	case primitives.Bool:
		return starlark.Bool(v)

	case primitives.Number:
		if v.IsIntegral() && math.Abs(float64(v)) <= 1<<53 {
			return starlark.MakeInt64(int64(v))
		}
		return starlark.Float(v)

	case primitives.Text:
		return starlark.String(v)

	case primitives.Atom:
		return starlark.String(v.String())

	case *primitives.List:
		elems := make([]starlark.Value, len(v.Items))
		for i, item := range v.Items {
			elems[i] = toStarlarkValue(item)
		}
		return starlark.NewList(elems)

	case *primitives.Dict:
		d := starlark.NewDict(v.Len())
		for _, key := range v.Keys() {
			value, _ := v.Get(key)
			if err := d.SetKey(starlark.String(key), toStarlarkValue(value)); err != nil {
				panic(err)
			}
		}
		return d

	case *primitives.FunctionReference:
		desc := v.String()
		return starlarkutil.MakeFunc(v.Name, func() string {
			return desc
		})

	}

	panic(fmt.Errorf("unsupported value for starlark: %T", p))
}
