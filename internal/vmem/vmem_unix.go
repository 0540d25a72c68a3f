//go:build unix

package vmem

import (
	"fmt"

	"golang.org/x/sys/unix"
)

// Reserve claims size bytes of address space with no access rights and no
// physical backing. The returned slice spans the full reservation; nothing in
// it may be touched until committed.
func Reserve(size int) ([]byte, error) {
	region, err := unix.Mmap(-1, 0, size, unix.PROT_NONE, unix.MAP_PRIVATE|unix.MAP_ANON)
	if err != nil {
		return nil, fmt.Errorf("vmem: reserve %d bytes: %w", size, err)
	}
	cachePageSize()
	return region, nil
}

// Commit makes the prefix region[:newTotal] read/write accessible. Only the
// trailing additional bytes actually change protection; the rest of the
// prefix is already committed.
func Commit(region []byte, newTotal, additional int) error {
	if err := unix.Mprotect(region[newTotal-additional:newTotal], unix.PROT_READ|unix.PROT_WRITE); err != nil {
		return fmt.Errorf("vmem: commit %d bytes: %w", additional, err)
	}
	return nil
}

// Decommit revokes access and physical backing for sub, which must be a
// page-aligned view into a reserved region. The discard and the protection
// change are verified independently; either failing fails the decommit.
func Decommit(sub []byte) error {
	if err := unix.Madvise(sub, unix.MADV_DONTNEED); err != nil {
		return fmt.Errorf("vmem: decommit advise: %w", err)
	}
	if err := unix.Mprotect(sub, unix.PROT_NONE); err != nil {
		return fmt.Errorf("vmem: decommit protect: %w", err)
	}
	return nil
}

// Release unmaps the entire reservation. Every pointer into it is invalid
// afterwards.
func Release(region []byte) error {
	if err := unix.Munmap(region); err != nil {
		return fmt.Errorf("vmem: release: %w", err)
	}
	return nil
}
