package arena

import "unsafe"

// New allocates a zeroed T inside the arena and returns a pointer to it.
// The pointer is valid until the arena is reset, decommitted past it, or
// released. Zero-size types are rejected with ErrZeroSize.
func New[T any](a *Arena) (*T, error) {
	var zero T
	b, err := a.Alloc(int(unsafe.Sizeof(zero)))
	if err != nil {
		return nil, err
	}
	// Fresh pages arrive zeroed from the OS, but memory reused after Reset
	// does not.
	clear(b)
	return (*T)(unsafe.Pointer(&b[0])), nil
}

// Slice allocates a zeroed []T of n elements inside the arena. The slice is
// valid until the arena is reset, decommitted past it, or released.
func Slice[T any](a *Arena, n int) ([]T, error) {
	if n <= 0 {
		return nil, ErrZeroSize
	}
	var zero T
	size := int(unsafe.Sizeof(zero))
	if size > 0 && n > MaxCapacity/size {
		// The byte count would overflow or exceed any reservation.
		return nil, ErrOutOfReserved
	}
	b, err := a.Alloc(n * size)
	if err != nil {
		return nil, err
	}
	clear(b)
	return unsafe.Slice((*T)(unsafe.Pointer(&b[0])), n), nil
}
