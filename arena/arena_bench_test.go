package arena

import (
	"testing"
)

// BenchmarkArena_Alloc measures bump-allocation throughput with periodic
// resets so the arena never outruns its reservation.
func BenchmarkArena_Alloc(b *testing.B) {
	var a Arena
	if err := a.Reserve(1 << 24); err != nil {
		b.Fatal(err)
	}
	defer a.Release()

	b.ResetTimer()
	b.ReportAllocs()

	for n := 0; n < b.N; n++ {
		if _, err := a.Alloc(64); err != nil {
			b.Fatal(err)
		}
		if a.SizeInUse() >= (1<<24)-64 {
			a.Reset()
		}
	}
}

// BenchmarkArena_ResetReuse measures allocation from already-committed pages,
// the steady state of a per-request arena.
func BenchmarkArena_ResetReuse(b *testing.B) {
	var a Arena
	if err := a.Reserve(1 << 20); err != nil {
		b.Fatal(err)
	}
	defer a.Release()

	// Commit up front so the loop never touches the OS.
	if _, err := a.Alloc(1 << 20); err != nil {
		b.Fatal(err)
	}
	a.Reset()

	b.ResetTimer()
	b.ReportAllocs()

	for n := 0; n < b.N; n++ {
		for j := 0; j < 16; j++ {
			if _, err := a.Alloc(256); err != nil {
				b.Fatal(err)
			}
		}
		a.Reset()
	}
}

// BenchmarkRealloc_Grow measures growth steps of a stable-pointer
// allocation, commit cost included.
func BenchmarkRealloc_Grow(b *testing.B) {
	b.ReportAllocs()

	for n := 0; n < b.N; n++ {
		data, err := Realloc(nil, 1<<10)
		if err != nil {
			b.Fatal(err)
		}
		for size := 1 << 11; size <= 1<<18; size <<= 1 {
			if data, err = Realloc(data, size); err != nil {
				b.Fatal(err)
			}
		}
		if _, err := Realloc(data, 0); err != nil {
			b.Fatal(err)
		}
	}
}
