package arena

// SizeInUse returns the number of bytes handed out since the last reset,
// including alignment padding.
func (a *Arena) SizeInUse() int {
	return a.cursor
}

// Committed returns the size of the read/write prefix in bytes. This is the
// arena's actual memory footprint; the rest of the reservation is address
// space only.
func (a *Arena) Committed() int {
	return a.committed
}

// Reserved returns the total reserved virtual size in bytes, or 0 if the
// arena holds no reservation.
func (a *Arena) Reserved() int {
	return len(a.region)
}

// PageSize returns the OS page size the arena commits in, or 0 until the
// arena has been reserved.
func (a *Arena) PageSize() int {
	return a.pageSize
}

// Utilization returns the ratio of bytes in use to committed bytes (0.0 to
// 1.0). Returns 0 if nothing is committed.
func (a *Arena) Utilization() float64 {
	if a.committed == 0 {
		return 0
	}
	return float64(a.cursor) / float64(a.committed)
}

// Metrics contains a snapshot of arena statistics.
type Metrics struct {
	SizeInUse   int     // bytes handed out since the last reset
	Committed   int     // bytes of read/write memory
	Reserved    int     // bytes of reserved address space
	PageSize    int     // OS page size, 0 until reserved
	Utilization float64 // SizeInUse / Committed (0.0-1.0)
}

// Metrics returns a snapshot of the arena's statistics.
func (a *Arena) Metrics() Metrics {
	return Metrics{
		SizeInUse:   a.SizeInUse(),
		Committed:   a.Committed(),
		Reserved:    a.Reserved(),
		PageSize:    a.PageSize(),
		Utilization: a.Utilization(),
	}
}
