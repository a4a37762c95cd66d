package configs

import (
	"fmt"
	"reflect"

	"github.com/erhanbaris/karamel-sub001/primitives"
	"github.com/reusee/dscope"
)

// Configurable types can be overridden by a top-level variable of a
// configuration script. ConfigName is the variable name.
type Configurable interface {
	ConfigName() string
}

var configurableType = reflect.TypeFor[Configurable]()

// ScriptFork forks scope with every Configurable type whose ConfigName is
// bound in vars.
func ScriptFork(scope dscope.Scope, vars map[string]primitives.Primitive) (dscope.Scope, error) {
	var defs []any
	for t := range scope.AllTypes() {
		if !t.Implements(configurableType) {
			continue
		}
		name := reflect.Zero(t).Interface().(Configurable).ConfigName()
		p, ok := vars[name]
		if !ok {
			continue
		}
		value, err := convert(p, t)
		if err != nil {
			return scope, fmt.Errorf("config %s: %w", name, err)
		}
		ptr := reflect.New(t)
		ptr.Elem().Set(value)
		defs = append(defs, ptr.Interface())
	}
	if len(defs) == 0 {
		return scope, nil
	}
	return scope.Fork(defs...), nil
}

func convert(p primitives.Primitive, t reflect.Type) (reflect.Value, error) {
	ret := reflect.New(t).Elem()
	switch v := p.(type) {

	case primitives.Number:
		switch t.Kind() {
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
			if !v.IsIntegral() {
				return ret, fmt.Errorf("%v is not an integer", v)
			}
			ret.SetInt(int64(v))
			return ret, nil
		case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
			if !v.IsIntegral() || v < 0 {
				return ret, fmt.Errorf("%v is not a natural number", v)
			}
			ret.SetUint(uint64(v))
			return ret, nil
		case reflect.Float32, reflect.Float64:
			ret.SetFloat(float64(v))
			return ret, nil
		}

	case primitives.Bool:
		if t.Kind() == reflect.Bool {
			ret.SetBool(bool(v))
			return ret, nil
		}

	case primitives.Text:
		if t.Kind() == reflect.String {
			ret.SetString(string(v))
			return ret, nil
		}

	case *primitives.List:
		if t.Kind() == reflect.Slice && t.Elem().Kind() == reflect.String {
			ret = reflect.MakeSlice(t, 0, len(v.Items))
			for _, item := range v.Items {
				text, ok := item.(primitives.Text)
				if !ok {
					return ret, fmt.Errorf("list item %s is not text", primitives.Quote(item))
				}
				ret = reflect.Append(ret, reflect.ValueOf(string(text)).Convert(t.Elem()))
			}
			return ret, nil
		}

	}
	return ret, fmt.Errorf("cannot use %s as %v", p.Kind(), t)
}
