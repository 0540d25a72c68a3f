package arena

import (
	"math"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestRecordLayout pins the allocation-record layout invariants: the data
// offset preserves alignment, the record fits before the data, and the two
// are adjacent in one reservation.
func TestRecordLayout(t *testing.T) {
	assert.Zero(t, dataOffset%Alignment, "data offset must be a multiple of Alignment")
	assert.GreaterOrEqual(t, dataOffset, int(unsafe.Sizeof(record{})),
		"record must fit before the data region")

	data, err := Realloc(nil, 32)
	require.NoError(t, err)
	defer func() {
		_, err := Realloc(data, 0)
		require.NoError(t, err)
	}()

	rec := recordOf(data)
	assert.Equal(t, unsafe.Pointer(&rec.arena.region[0]),
		unsafe.Add(unsafe.Pointer(&data[0]), -dataOffset),
		"record must sit at the base of the data's reservation")
	assert.Zero(t, uintptr(unsafe.Pointer(&data[0]))%Alignment,
		"data pointer must satisfy the alignment constant")
}

// TestRealloc_PointerStability runs the realloc scenario: create, write,
// grow, and expect the same base pointer with contents intact.
func TestRealloc_PointerStability(t *testing.T) {
	data, err := Realloc(nil, 64)
	require.NoError(t, err)
	require.Len(t, data, 64)
	base := unsafe.Pointer(&data[0])

	copy(data, "stable pointers")

	grown, err := Realloc(data, 128)
	require.NoError(t, err)
	require.Len(t, grown, 128)
	assert.Equal(t, base, unsafe.Pointer(&grown[0]), "growth must not relocate the data")
	assert.Equal(t, "stable pointers", string(grown[:15]), "contents must survive growth")

	shrunk, err := Realloc(grown, 16)
	require.NoError(t, err)
	require.Len(t, shrunk, 16)
	assert.Equal(t, base, unsafe.Pointer(&shrunk[0]), "shrink must not relocate the data")

	_, err = Realloc(shrunk, 0)
	require.NoError(t, err)
}

// TestRealloc_GrowAcrossPages grows one allocation through many page-commit
// steps and checks the base pointer never moves.
func TestRealloc_GrowAcrossPages(t *testing.T) {
	data, err := Realloc(nil, 1)
	require.NoError(t, err)
	base := unsafe.Pointer(&data[0])

	data[0] = 0x7F
	for size := 1 << 10; size <= 1<<22; size <<= 1 {
		data, err = Realloc(data, size)
		require.NoError(t, err, "grow to %d should succeed", size)
		require.Len(t, data, size)
		require.Equal(t, base, unsafe.Pointer(&data[0]), "grow to %d moved the data", size)
	}
	assert.Equal(t, byte(0x7F), data[0], "first byte must survive every growth step")

	_, err = Realloc(data, 0)
	require.NoError(t, err)
}

// TestRealloc_NilZero tests that Realloc(nil, 0) is a no-op.
func TestRealloc_NilZero(t *testing.T) {
	data, err := Realloc(nil, 0)
	assert.NoError(t, err)
	assert.Nil(t, data)
}

// TestRealloc_FreeSemantics tests that freeing releases the region and that
// distinct live allocations never overlap.
func TestRealloc_FreeSemantics(t *testing.T) {
	first, err := Realloc(nil, 64)
	require.NoError(t, err)

	second, err := Realloc(nil, 64)
	require.NoError(t, err)
	assert.NotEqual(t, unsafe.Pointer(&first[0]), unsafe.Pointer(&second[0]),
		"live allocations must come from distinct reservations")

	released, err := Realloc(first, 0)
	require.NoError(t, err)
	assert.Nil(t, released)

	// A fresh allocation after the free is independent of the survivor.
	third, err := Realloc(nil, 64)
	require.NoError(t, err)
	assert.NotEqual(t, unsafe.Pointer(&second[0]), unsafe.Pointer(&third[0]))

	_, err = Realloc(second, 0)
	require.NoError(t, err)
	_, err = Realloc(third, 0)
	require.NoError(t, err)
}

// TestResize_ExplicitDescriptor tests the realloc-style resize over an
// explicitly managed arena.
func TestResize_ExplicitDescriptor(t *testing.T) {
	var a Arena
	require.NoError(t, a.Reserve(1<<16))

	buf, err := a.Resize(1000)
	require.NoError(t, err)
	require.Len(t, buf, 1000)
	base := unsafe.Pointer(&buf[0])
	assert.Equal(t, a.Committed(), a.SizeInUse(), "resize leaves the cursor at the committed end")

	grown, err := a.Resize(5000)
	require.NoError(t, err)
	require.Len(t, grown, 5000)
	assert.Equal(t, base, unsafe.Pointer(&grown[0]))

	// A shrink that fits in committed space is accepted without decommit.
	committed := a.Committed()
	shrunk, err := a.Resize(100)
	require.NoError(t, err)
	require.Len(t, shrunk, 100)
	assert.Equal(t, base, unsafe.Pointer(&shrunk[0]))
	assert.Equal(t, committed, a.Committed(), "shrink must not decommit")

	// Resize to zero frees the region.
	gone, err := a.Resize(0)
	require.NoError(t, err)
	assert.Nil(t, gone)
	assert.Zero(t, a.Reserved())
}

// TestResize_CapacityBoundary tests that resizing past the reservation fails
// and leaves the prior allocation valid.
func TestResize_CapacityBoundary(t *testing.T) {
	var a Arena
	require.NoError(t, a.Reserve(1<<16))
	defer func() { require.NoError(t, a.Release()) }()

	buf, err := a.Resize(1 << 16)
	require.NoError(t, err)
	buf[0] = 0x42

	_, err = a.Resize(1<<16 + 1)
	assert.ErrorIs(t, err, ErrOutOfReserved)

	_, err = a.Resize(1 << 24)
	assert.ErrorIs(t, err, ErrOutOfReserved)

	assert.Equal(t, 1<<16, a.Committed(), "failed resize must not mutate the arena")
	assert.Equal(t, byte(0x42), buf[0], "prior allocation must stay valid after failure")
}

// TestResize_HugeRequest tests that resize requests up to MaxInt fail with
// the sentinel and leave the arena and its contents untouched.
func TestResize_HugeRequest(t *testing.T) {
	var a Arena
	require.NoError(t, a.Reserve(1<<16))
	defer func() { require.NoError(t, a.Release()) }()

	buf, err := a.Resize(256)
	require.NoError(t, err)
	buf[0] = 0x5A

	committed := a.Committed()
	for _, total := range []int{MaxCapacity + 1, math.MaxInt - 10, math.MaxInt} {
		_, err := a.Resize(total)
		assert.ErrorIs(t, err, ErrOutOfReserved, "Resize(%d) must fail cleanly", total)
	}
	assert.Equal(t, committed, a.Committed(), "failed huge resizes must not commit")
	assert.Equal(t, byte(0x5A), buf[0], "prior contents must survive the failures")
}

// TestResize_ZeroUnreserved tests that resizing a never-reserved arena to
// zero is a no-op rather than an error.
func TestResize_ZeroUnreserved(t *testing.T) {
	var a Arena
	buf, err := a.Resize(0)
	assert.NoError(t, err)
	assert.Nil(t, buf)
}

// TestRealloc_FailureLeavesAllocationValid grows a small-reservation
// allocation past its limit through the pointer-only front end and checks
// the original buffer is untouched.
func TestRealloc_FailureLeavesAllocationValid(t *testing.T) {
	data, err := Realloc(nil, 64)
	require.NoError(t, err)
	copy(data, "still here")

	// The lazy reservation is MaxCapacity, so anything from there up to
	// MaxInt can never fit once the record is accounted for.
	for _, total := range []int{MaxCapacity, math.MaxInt - dataOffset, math.MaxInt} {
		_, err = Realloc(data, total)
		require.ErrorIs(t, err, ErrOutOfReserved, "Realloc(%d) must fail cleanly", total)
	}

	assert.Equal(t, "still here", string(data[:10]), "failed grows must leave data intact")

	_, err = Realloc(data, 0)
	require.NoError(t, err)
}
