package primitives

func Equal(a, b Primitive) bool {
	a, b = OrEmpty(a), OrEmpty(b)
	switch x := a.(type) {
	case Number:
		y, ok := b.(Number)
		return ok && x == y
	case Bool:
		y, ok := b.(Bool)
		return ok && x == y
	case Text:
		y, ok := b.(Text)
		return ok && x == y
	case Empty:
		_, ok := b.(Empty)
		return ok
	case Atom:
		y, ok := b.(Atom)
		return ok && x.ID == y.ID
	case *List:
		y, ok := b.(*List)
		if !ok {
			return false
		}
		if x == y {
			return true
		}
		if len(x.Items) != len(y.Items) {
			return false
		}
		for i := range x.Items {
			if !Equal(x.Items[i], y.Items[i]) {
				return false
			}
		}
		return true
	case *Dict:
		y, ok := b.(*Dict)
		if !ok {
			return false
		}
		if x == y {
			return true
		}
		if x.Len() != y.Len() {
			return false
		}
		for _, key := range x.keys {
			v, ok := y.values[key]
			if !ok || !Equal(x.values[key], v) {
				return false
			}
		}
		return true
	case *FunctionReference:
		y, ok := b.(*FunctionReference)
		return ok && x.Name == y.Name && x.Native == y.Native && x.Entry == y.Entry
	}
	return false
}

func Truthy(p Primitive) bool {
	switch x := OrEmpty(p).(type) {
	case Bool:
		return bool(x)
	case Number:
		return x != 0
	case Text:
		return x != ""
	case Empty:
		return false
	case *List:
		return len(x.Items) > 0
	case *Dict:
		return x.Len() > 0
	}
	return true
}
