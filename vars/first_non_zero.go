package vars

// FirstNonZero returns the first argument that is not the zero value.
func FirstNonZero[T comparable](values ...T) (ret T) {
	for _, value := range values {
		if value != ret {
			return value
		}
	}
	return
}
