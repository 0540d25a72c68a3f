package arena

// Allocator is the bump-allocation surface of an arena: allocate, rewind,
// release. Code that only consumes allocations should accept this interface
// rather than a concrete *Arena.
type Allocator interface {
	// Alloc returns the next n bytes, aligned to Alignment.
	Alloc(n int) ([]byte, error)

	// Reset rewinds the allocator; every prior allocation becomes invalid.
	Reset()

	// Release returns all memory to the OS.
	Release() error
}

// Resizer is the signature of Realloc: a single grow/shrink/free entry point
// for external owners of growable buffers (dynamic arrays, hash tables) that
// need the base pointer to stay put across growth.
type Resizer func(data []byte, total int) ([]byte, error)

// Compile-time interface checks
var (
	_ Allocator = (*Arena)(nil)
	_ Resizer   = Realloc
)
