package vector

// Index returns the index of the first element equal to x, or NotFound.
func Index[T comparable](v *Vector[T], x T) int {
	for i := range v.size {
		if v.data[i] == x {
			return i
		}
	}
	return NotFound
}

// Contains reports whether any element equals x.
func Contains[T comparable](v *Vector[T], x T) bool {
	return Index(v, x) != NotFound
}

// Equal reports whether a and b hold equal elements in the same order.
// Capacities and allocators are not compared.
func Equal[T comparable](a, b *Vector[T]) bool {
	if a.size != b.size {
		return false
	}
	for i := range a.size {
		if a.data[i] != b.data[i] {
			return false
		}
	}
	return true
}

// IndexFunc returns the index of the first element satisfying match, or NotFound.
func (v *Vector[T]) IndexFunc(match func(T) bool) int {
	for i := range v.size {
		if match(v.data[i]) {
			return i
		}
	}
	return NotFound
}

// ContainsFunc reports whether any element satisfies match.
func (v *Vector[T]) ContainsFunc(match func(T) bool) bool {
	return v.IndexFunc(match) != NotFound
}
