package memspace

// Stats summarizes the allocator state.
type Stats struct {
	MaxSize int

	FreeLen     int
	FreeBlocks  int
	LargestFree int

	AllocLen    int
	AllocBlocks int
}

// Stats
func (a *Allocator) Stats() (stats Stats) {
	stats.MaxSize = a.options.MaxSize
	stats.FreeBlocks = a.free.Len()
	stats.AllocBlocks = a.allocated.Len()

	a.free.Scan(func(_ int, b Block) bool {
		stats.FreeLen += b.Length
		stats.LargestFree = max(stats.LargestFree, b.Length)
		return true
	})
	a.allocated.Scan(func(_ int, b Block) bool {
		stats.AllocLen += b.Length
		return true
	})
	return
}

// UsageRate returns the allocated share of the space in percent.
func (s Stats) UsageRate() float64 {
	return float64(s.AllocLen) / float64(s.MaxSize) * 100
}

// Fragmentation returns 1 - largest/free: 0 when all free space is one block,
// approaching 1 as free space splinters. It is 0 when nothing is free.
func (s Stats) Fragmentation() float64 {
	if s.FreeLen == 0 {
		return 0
	}
	return 1 - float64(s.LargestFree)/float64(s.FreeLen)
}
