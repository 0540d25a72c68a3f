package arena

import (
	"unsafe"

	"github.com/joshuapare/arenakit/internal/vmem"
)

// record is the allocation record Realloc embeds at the base of each
// reservation. User data starts dataOffset bytes after it, in the same
// reservation, so a bare data pointer always carries its own resizing
// metadata and growing never relocates either of them.
type record struct {
	arena Arena
}

// dataOffset is where user data starts inside a Realloc reservation. It is
// rounded up to Alignment so data pointers keep the allocator's alignment
// guarantee. The record/data adjacency is a layout invariant checked by
// TestRecordLayout.
const dataOffset = (int(unsafe.Sizeof(record{})) + Alignment - 1) &^ (Alignment - 1)

// recordOf recovers the allocation record for a data slice handed out by
// Realloc. This is the only way back from data to its record; callers never
// see the record directly.
func recordOf(data []byte) *record {
	return (*record)(unsafe.Add(unsafe.Pointer(&data[0]), -dataOffset))
}

// Resize grows or frees the arena as one contiguous allocation, realloc
// style, without ever moving the base address.
//
// A total of 0 releases the reservation and returns (nil, nil). A total
// above the committed size commits more pages, reserving MaxCapacity first
// if the arena was never reserved, and leaves the cursor at the committed
// end; growth past the reservation fails with ErrOutOfReserved. A total
// that already fits is accepted as-is: shrinking never decommits. On
// success the returned slice is always region[:total] over the same base.
// On failure the arena is unchanged and any prior contents stay valid.
func (a *Arena) Resize(total int) ([]byte, error) {
	if total < 0 {
		return nil, ErrZeroSize
	}
	if total == 0 {
		if a.region == nil {
			return nil, nil
		}
		return nil, a.Release()
	}
	if total > MaxCapacity {
		// Beyond any possible reservation; aligning it could also wrap.
		return nil, ErrOutOfReserved
	}
	if total > a.committed {
		if a.region == nil {
			if err := a.Reserve(MaxCapacity); err != nil {
				return nil, err
			}
		}
		newCommitted := alignUp(total, a.pageSize)
		if newCommitted > len(a.region) {
			return nil, ErrOutOfReserved
		}
		if err := vmem.Commit(a.region, newCommitted, newCommitted-a.committed); err != nil {
			return nil, err
		}
		a.committed = newCommitted
		a.cursor = a.committed
	}
	return a.region[:total:total], nil
}

// Realloc creates, grows, shrinks, or frees a growable allocation whose
// resizing metadata travels with the data slice itself, mirroring the
// realloc/free contract with one extra guarantee: the base pointer of the
// returned slice is bit-identical to the input's across every successful
// resize, so callers never fix up other pointers into the buffer.
//
//	data == nil, total == 0: no-op.
//	data == nil, total > 0:  fresh allocation of total bytes.
//	data != nil, total == 0: frees the allocation; data is dead afterwards.
//	data != nil, total > 0:  resizes in place, same base pointer.
//
// data must be nil or a slice previously returned by Realloc; anything else
// has no record in front of it and corrupts memory. On failure the prior
// allocation, if any, is unchanged and still valid.
func Realloc(data []byte, total int) ([]byte, error) {
	if total < 0 {
		return nil, ErrZeroSize
	}
	if total == 0 {
		if data == nil {
			return nil, nil
		}
		// Copy the arena out first: the record lives inside the region
		// being released.
		a := recordOf(data).arena
		return nil, a.Release()
	}
	if total > MaxCapacity-dataOffset {
		// The record plus data can never fit a reservation, and the sum
		// below must not wrap.
		return nil, ErrOutOfReserved
	}
	full := dataOffset + total
	if data == nil {
		var a Arena
		base, err := a.Resize(full)
		if err != nil {
			return nil, err
		}
		rec := (*record)(unsafe.Pointer(&base[0]))
		rec.arena = a
		return base[dataOffset:full:full], nil
	}
	rec := recordOf(data)
	if _, err := rec.arena.Resize(full); err != nil {
		return nil, err
	}
	return unsafe.Slice(&data[0], total), nil
}
