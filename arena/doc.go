// Package arena implements a virtual-memory-backed bump allocator and a
// stable-pointer growable allocation built on top of it.
//
// # Overview
//
// An Arena reserves a large range of virtual address space up front and
// commits physical pages only as allocations advance through it. This
// separates the two costs that conventional allocators mix together: address
// space is cheap and claimed once, while memory is committed page by page on
// demand. Because the reservation never moves, every pointer handed out by
// the arena stays valid across growth.
//
// Two allocation disciplines share this foundation:
//
//   - Bump allocation: Alloc carves sequential, 16-byte-aligned regions out
//     of one arena. There is no per-allocation free; Reset rewinds the whole
//     arena in O(1) and Release returns it to the OS.
//   - Growable allocation: Realloc manages one contiguous buffer per handle
//     with realloc/free semantics and a pointer-stability guarantee; growing
//     or shrinking never changes the buffer's base address.
//
// # Bump arena
//
//	var a arena.Arena
//	if err := a.Reserve(1 << 20); err != nil {
//		return err
//	}
//	defer a.Release()
//
//	buf, err := a.Alloc(512)       // 512 bytes, 16-byte aligned
//	hdr, err := arena.New[Header](&a)     // typed, zeroed
//	ids, err := arena.Slice[int64](&a, 128) // typed slice, zeroed
//
//	a.Reset() // O(1): every allocation above is now invalid
//
// The zero-value Arena is usable directly; the first Alloc reserves
// MaxCapacity (1 GiB of address space) lazily.
//
// # Growable allocation
//
//	data, err := arena.Realloc(nil, 64) // create
//	data, err = arena.Realloc(data, 4096) // grow: same base pointer
//	_, err = arena.Realloc(data, 0) // free
//
// Realloc embeds its allocation record at the base of the reservation,
// immediately before the user data, so the data slice alone carries all
// resizing metadata. The returned base pointer is bit-identical across every
// successful resize, which makes Realloc usable as the memory provider for
// dynamic arrays or hash tables that keep interior pointers.
//
// # Failure model
//
// Every failure is an error return, never a panic: zero-size requests,
// growth past the fixed reservation (ErrOutOfReserved), and OS-level
// reserve/commit failures (wrapped, inspectable with errors.Is). After any
// failure the arena and its live allocations are unchanged.
//
// # Thread safety
//
// Arenas are not thread-safe. Concurrent use of one Arena or one Realloc
// buffer requires external synchronization. Distinct arenas are fully
// independent.
package arena
