//go:build windows

package vmem

import (
	"fmt"
	"unsafe"

	"golang.org/x/sys/windows"
)

// Reserve claims size bytes of address space with no access rights and no
// physical backing. The returned slice spans the full reservation; nothing in
// it may be touched until committed.
func Reserve(size int) ([]byte, error) {
	base, err := windows.VirtualAlloc(0, uintptr(size), windows.MEM_RESERVE, windows.PAGE_NOACCESS)
	if err != nil {
		return nil, fmt.Errorf("vmem: reserve %d bytes: %w", size, err)
	}
	cachePageSize()
	return unsafe.Slice((*byte)(unsafe.Pointer(base)), size), nil
}

// Commit makes the prefix region[:newTotal] read/write accessible. Windows
// re-commits the whole prefix rather than just the tail; committing pages
// that are already committed is idempotent, per VirtualAlloc's contract.
func Commit(region []byte, newTotal, additional int) error {
	_ = additional
	base := uintptr(unsafe.Pointer(&region[0]))
	if _, err := windows.VirtualAlloc(base, uintptr(newTotal), windows.MEM_COMMIT, windows.PAGE_READWRITE); err != nil {
		return fmt.Errorf("vmem: commit %d bytes: %w", newTotal, err)
	}
	return nil
}

// Decommit revokes access and physical backing for sub, which must be a
// page-aligned view into a reserved region. VirtualFree can decommit a range
// of pages in mixed committed/uncommitted states.
func Decommit(sub []byte) error {
	addr := uintptr(unsafe.Pointer(&sub[0]))
	if err := windows.VirtualFree(addr, uintptr(len(sub)), windows.MEM_DECOMMIT); err != nil {
		return fmt.Errorf("vmem: decommit: %w", err)
	}
	return nil
}

// Release frees the entire reservation. Every pointer into it is invalid
// afterwards.
func Release(region []byte) error {
	addr := uintptr(unsafe.Pointer(&region[0]))
	if err := windows.VirtualFree(addr, 0, windows.MEM_RELEASE); err != nil {
		return fmt.Errorf("vmem: release: %w", err)
	}
	return nil
}
