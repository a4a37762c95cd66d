package configs

import "errors"

// First returns the first value at path, or the zero value when no file
// defines it. Other errors panic.
func First[T any](loader Loader, path string) (ret T) {
	err := loader.AssignFirst(path, &ret)
	if err != nil && !errors.Is(err, ErrValueNotFound) {
		panic(err)
	}
	return
}
