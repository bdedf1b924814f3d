package memspace

import (
	"testing"
)

const (
	benchSize = 1 << 20
)

func newBenchAllocator(b *testing.B, order ReleaseOrder) *Allocator {
	options := DefaultOptions
	options.MaxSize = benchSize
	options.ReleaseOrder = order
	a, err := New(options)
	if err != nil {
		b.Fatal(err)
	}
	return a
}

// fragment allocates n blocks and releases every other one.
func fragment(a *Allocator, n, length int) {
	bases := make([]int, 0, n)
	for i := 0; i < n; i++ {
		base, err := a.Allocate(length)
		if err != nil {
			panic(err)
		}
		bases = append(bases, base)
	}
	for i := 0; i < n; i += 2 {
		if err := a.Release(bases[i]); err != nil {
			panic(err)
		}
	}
}

func BenchmarkAllocate(b *testing.B) {
	b.Run("split", func(b *testing.B) {
		a := newBenchAllocator(b, ReleaseToTail)
		for i := 0; i < b.N; i++ {
			if _, err := a.Allocate(1); err != nil {
				a.Reset()
			}
		}
	})

	for _, order := range []ReleaseOrder{ReleaseToTail, ReleaseToHead} {
		name := "fragmented/tail"
		if order == ReleaseToHead {
			name = "fragmented/head"
		}
		b.Run(name, func(b *testing.B) {
			a := newBenchAllocator(b, order)
			fragment(a, 1000, 16)
			b.ResetTimer()

			for i := 0; i < b.N; i++ {
				base, err := a.Allocate(8)
				if err != nil {
					b.Fatal(err)
				}
				b.StopTimer()
				_ = a.Release(base)
				a.Compact()
				fragmentIfMerged(a)
				b.StartTimer()
			}
		})
	}
}

// fragmentIfMerged restores the fragmented layout when compaction collapsed it.
func fragmentIfMerged(a *Allocator) {
	if a.free.Len() < 2 {
		a.Reset()
		fragment(a, 1000, 16)
	}
}

func BenchmarkRelease(b *testing.B) {
	a := newBenchAllocator(b, ReleaseToTail)
	fragment(a, 1000, 16)
	base, err := a.Allocate(4)
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if err := a.Release(base); err != nil {
			b.Fatal(err)
		}
		b.StopTimer()
		base, _ = a.Allocate(4)
		b.StartTimer()
	}
}

func BenchmarkCompact(b *testing.B) {
	a := newBenchAllocator(b, ReleaseToTail)
	fragment(a, 1000, 16)
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		a.Compact()
	}
}

func BenchmarkSnapshot(b *testing.B) {
	a := newBenchAllocator(b, ReleaseToTail)
	fragment(a, 1000, 16)
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_ = a.Snapshot()
	}
}

func BenchmarkBlockList(b *testing.B) {
	b.Run("PushBack", func(b *testing.B) {
		var l BlockList
		for i := 0; i < b.N; i++ {
			l.PushBack(Block{i, 1})
		}
	})

	b.Run("PushFront", func(b *testing.B) {
		var l BlockList
		for i := 0; i < b.N; i++ {
			l.PushFront(Block{i, 1})
		}
	})

	b.Run("Get/1000", func(b *testing.B) {
		var l BlockList
		for i := 0; i < 1000; i++ {
			l.PushBack(Block{i, 1})
		}
		b.ResetTimer()

		for i := 0; i < b.N; i++ {
			_, _ = l.Get(i % 1000)
		}
	})
}
