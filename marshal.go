package memspace

import (
	"github.com/bytedance/sonic"
	"github.com/zeebo/xxh3"
)

type allocatorJSON struct {
	MaxSize   int     `json:"maxSize"`
	Free      []Block `json:"free"`
	Allocated []Block `json:"allocated"`
}

// MarshalJSON exports both lists in list order for diagnostics.
func (a *Allocator) MarshalJSON() ([]byte, error) {
	return sonic.Marshal(allocatorJSON{
		MaxSize:   a.options.MaxSize,
		Free:      a.free.Blocks(),
		Allocated: a.allocated.Blocks(),
	})
}

// Digest returns a hash of the snapshot. Two allocators with the same digest
// have the same blocks in the same list order.
func (a *Allocator) Digest() uint64 {
	return xxh3.HashString(a.Snapshot())
}
