package arena

import (
	"github.com/joshuapare/arenakit/internal/vmem"
)

const (
	// Alignment is the boundary every allocation size is rounded up to, so
	// every pointer handed out by the arena is at least 16-byte aligned.
	Alignment = 16

	// MaxCapacity is the ceiling for a single reservation and the default
	// size reserved when an arena is first used without an explicit Reserve
	// (1 GiB of address space, not of memory).
	MaxCapacity = 1 << 30
)

// Arena is a bump allocator over a single reserved virtual address range.
// Allocations advance a cursor through the committed prefix of the range;
// pages are committed on demand and the reservation itself never grows or
// moves. Individual allocations are never reclaimed; Reset rewinds the whole
// arena and Release returns the range to the OS.
//
// The zero value is ready to use: the first Alloc lazily reserves
// MaxCapacity. An Arena must not be used from multiple goroutines without
// external synchronization.
type Arena struct {
	region    []byte // full reserved range; nil until reserved
	cursor    int    // next free byte offset
	committed int    // exclusive end of the read/write prefix, page-aligned
	pageSize  int
}

// Reserve claims size bytes of virtual address space for the arena. No
// memory is committed; the arena starts empty with its cursor at the base.
//
// Reserving over an already-reserved arena abandons the old range without
// releasing it. Call Release first if the arena may hold a reservation.
func (a *Arena) Reserve(size int) error {
	if size <= 0 {
		return ErrZeroSize
	}
	if size > MaxCapacity {
		return ErrTooLarge
	}
	region, err := vmem.Reserve(size)
	if err != nil {
		return err
	}
	a.region = region
	a.cursor = 0
	a.committed = 0
	a.pageSize = vmem.PageSize()
	return nil
}

// Alloc carves the next n bytes out of the arena, rounding n up to
// Alignment. If the request does not fit in the committed headroom, the
// committed prefix grows by whole pages; a request that would pass the end
// of the reservation fails with ErrOutOfReserved and leaves the arena
// untouched. A never-reserved arena reserves MaxCapacity on first use.
func (a *Arena) Alloc(n int) ([]byte, error) {
	if n <= 0 {
		return nil, ErrZeroSize
	}
	if n > MaxCapacity {
		// No reservation can ever satisfy this; rejecting before the align
		// also keeps the arithmetic below from wrapping.
		return nil, ErrOutOfReserved
	}
	n = alignUp(n, Alignment)
	if n > a.committed-a.cursor {
		if a.region == nil {
			if err := a.Reserve(MaxCapacity); err != nil {
				return nil, err
			}
		}
		grow := alignUp(n-(a.committed-a.cursor), a.pageSize)
		if grow > len(a.region)-a.committed {
			return nil, ErrOutOfReserved
		}
		if err := vmem.Commit(a.region, a.committed+grow, grow); err != nil {
			return nil, err
		}
		a.committed += grow
	}
	p := a.region[a.cursor : a.cursor+n : a.cursor+n]
	a.cursor += n
	return p, nil
}

// Reset rewinds the cursor to the base of the arena. Committed pages stay
// committed, so allocations that previously fit succeed again without a
// commit call. Use Decommit to shrink the footprint.
func (a *Arena) Reset() {
	a.cursor = 0
}

// Decommit returns the trailing extra bytes of committed memory to the OS,
// rounded up to the page size. The reservation and base address are
// untouched, so the arena remains usable.
func (a *Arena) Decommit(extra int) error {
	if a.region == nil {
		return ErrNotReserved
	}
	if extra <= 0 {
		return ErrZeroSize
	}
	// Bounds-check before aligning so an extra near MaxInt cannot wrap.
	if extra > a.committed {
		return ErrDecommitBounds
	}
	extra = alignUp(extra, a.pageSize)
	if extra > a.committed {
		return ErrDecommitBounds
	}
	start := alignDown(a.committed-extra, a.pageSize)
	if err := vmem.Decommit(a.region[start:a.committed]); err != nil {
		return err
	}
	a.committed = start
	// Invariant: cursor never points past the committed end.
	if a.cursor > a.committed {
		a.cursor = a.committed
	}
	return nil
}

// Release returns the entire reserved range to the OS and zeroes the
// descriptor. Every slice previously returned by Alloc is invalid
// afterwards. Releasing a never-reserved arena fails with ErrNotReserved.
func (a *Arena) Release() error {
	if a.region == nil {
		return ErrNotReserved
	}
	if err := vmem.Release(a.region); err != nil {
		return err
	}
	*a = Arena{}
	return nil
}

// alignUp rounds n up to the next multiple of align, which must be a power
// of two.
func alignUp(n, align int) int {
	return (n + align - 1) &^ (align - 1)
}

// alignDown rounds n down to a multiple of align, which must be a power of
// two.
func alignDown(n, align int) int {
	return n &^ (align - 1)
}
