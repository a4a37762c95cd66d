package cmds

import (
	"fmt"
	"reflect"
	"strconv"

	"github.com/erhanbaris/karamel-sub001/vars"
)

// decodeArg converts the head of args to t. Pointer types are optional and
// decode to a pointer to the zero value when args is exhausted.
func decodeArg(t reflect.Type, args []string) (reflect.Value, error) {
	if t.Kind() == reflect.Pointer {
		if len(args) == 0 {
			return reflect.New(t.Elem()), nil
		}
		elem, err := decodeArg(t.Elem(), args)
		if err != nil {
			return reflect.Value{}, err
		}
		return elem.Addr(), nil
	}
	if len(args) == 0 {
		return reflect.Value{}, fmt.Errorf("missing %v argument", t)
	}

	str := args[0]
	ret := reflect.New(t).Elem()
	switch t.Kind() {

	case reflect.String:
		ret.SetString(str)

	case reflect.Bool:
		ret.SetBool(vars.StrToBool(str))

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		v, err := strconv.ParseInt(str, 10, t.Bits())
		if err != nil {
			return ret, fmt.Errorf("parse %q as %v: %w", str, t, err)
		}
		ret.SetInt(v)

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		v, err := strconv.ParseUint(str, 10, t.Bits())
		if err != nil {
			return ret, fmt.Errorf("parse %q as %v: %w", str, t, err)
		}
		ret.SetUint(v)

	case reflect.Float32, reflect.Float64:
		v, err := strconv.ParseFloat(str, t.Bits())
		if err != nil {
			return ret, fmt.Errorf("parse %q as %v: %w", str, t, err)
		}
		ret.SetFloat(v)

	default:
		return ret, fmt.Errorf("unsupported argument type: %v", t)
	}
	return ret, nil
}
