package utils

// FindIndex returns the position of the first item in slice, or -1
func FindIndex[T comparable](slice []T, item T) int {
	for i, v := range slice {
		if v == item {
			return i
		}
	}
	return -1
}

// Without returns slice minus the first occurrence of item. The input is
// never modified; it is returned as is when item is absent.
func Without[T comparable](slice []T, item T) []T {
	i := FindIndex(slice, item)
	if i < 0 {
		return slice
	}
	out := make([]T, 0, len(slice)-1)
	out = append(out, slice[:i]...)
	return append(out, slice[i+1:]...)
}
