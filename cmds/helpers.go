package cmds

// Var defines name taking one argument, and name+"." resetting the value.
func Var[T any](name string) *T {
	value := new(T)
	Define(name, Func(func(v T) {
		*value = v
	}))
	Define(name+".", Func(func() {
		var zero T
		*value = zero
	}))
	return value
}

// Switch defines name setting true and "!"+name setting false.
func Switch(name string) *bool {
	value := new(bool)
	Define(name, Func(func() {
		*value = true
	}))
	Define("!"+name, Func(func() {
		*value = false
	}))
	return value
}

// Collect defines name appending its argument on every occurrence.
func Collect[T any](name string) *[]T {
	values := new([]T)
	Define(name, Func(func(v T) {
		*values = append(*values, v)
	}))
	return values
}
