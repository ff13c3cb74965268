package ast

// Arena is a compact slice-backed store. Indices are 1-based so the zero
// value of every ID type means "none".
type Arena[T any] struct {
	data []T
}

// NewArena creates an *Arena[T] with capHint as the initial capacity.
func NewArena[T any](capHint uint) *Arena[T] {
	return &Arena[T]{
		data: make([]T, 0, capHint),
	}
}

// Allocate appends value and returns its 1-based index.
func (a *Arena[T]) Allocate(value T) uint32 {
	a.data = append(a.data, value)
	return uint32(len(a.data)) //nolint:gosec // arenas stay far below 2^32
}

// Get returns a pointer to the element, or nil for index 0.
func (a *Arena[T]) Get(index uint32) *T {
	if index == 0 || index > uint32(len(a.data)) { //nolint:gosec
		return nil
	}
	return &a.data[index-1]
}

// Slice exposes the raw storage. Read-only.
func (a *Arena[T]) Slice() []T {
	return a.data
}

func (a *Arena[T]) Len() uint32 {
	return uint32(len(a.data)) //nolint:gosec
}
