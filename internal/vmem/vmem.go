// Package vmem exposes the OS virtual-memory primitives the arena allocator
// is built on: reserving address space without physical backing, committing
// and decommitting page ranges inside a reservation, and releasing a whole
// reservation back to the OS.
//
// Each platform implements the same four calls behind build tags:
//
//   - Unix: anonymous private mmap with PROT_NONE, mprotect to commit,
//     madvise(MADV_DONTNEED)+mprotect(PROT_NONE) to decommit, munmap to
//     release.
//   - Windows: VirtualAlloc MEM_RESERVE/MEM_COMMIT, VirtualFree
//     MEM_DECOMMIT/MEM_RELEASE.
//
// Reserved regions are handed out as byte slices over the full reservation.
// Only the committed prefix may be touched; reading or writing past it
// faults. All calls are synchronous and report failure as an error wrapping
// the underlying OS error.
package vmem

import "os"

// pageSize is cached process-wide by the first successful Reserve. Concurrent
// first reservations may race on the store, but every writer stores the same
// value, so the race is benign. This is a documented limitation, not a bug to
// fix with synchronization.
var pageSize int

// PageSize reports the cached OS page size. It is 0 until the first
// successful Reserve in this process.
func PageSize() int { return pageSize }

func cachePageSize() {
	if pageSize == 0 {
		pageSize = os.Getpagesize()
	}
}
