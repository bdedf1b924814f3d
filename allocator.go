package memspace

import (
	"cmp"
	"slices"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"
)

// Allocator is a first-fit allocator over the address space [0, MaxSize).
//
// Every address is covered by exactly one block across the free and allocated
// lists between calls. Adjacent free blocks are only merged by Compact.
// Allocator is not safe for concurrent use, see SyncAllocator.
type Allocator struct {
	options Options
	logger  *zap.Logger

	// free is scanned in list order by Allocate, it is not kept sorted.
	free      *BlockList
	allocated *BlockList
}

// New returns an allocator whose free list is a single block covering the space.
func New(options Options) (*Allocator, error) {
	if err := checkOptions(options); err != nil {
		return nil, err
	}

	logger := options.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	a := &Allocator{
		options:   options,
		logger:    logger,
		free:      &BlockList{},
		allocated: &BlockList{},
	}
	a.Reset()
	return a, nil
}

// Allocate reserves length words from the first free block large enough and
// returns the base address. It returns NoFit with ErrInvalidLength or ErrNoFit
// when nothing is reserved.
func (a *Allocator) Allocate(length int) (int, error) {
	if length <= 0 {
		return NoFit, ErrInvalidLength
	}

	index, fit := a.free.find(func(b Block) bool {
		return b.Length >= length
	})
	if fit == nil {
		a.logger.Debug("no fit",
			zap.Int("length", length),
			zap.Int("freeBlocks", a.free.Len()))
		return NoFit, ErrNoFit
	}

	base := fit.Base
	if fit.Length == length {
		_, err := a.free.RemoveAt(index)
		mustNotFail(err)
	} else {
		// split: the free block keeps the tail of its region.
		fit.Base += length
		fit.Length -= length
	}
	a.allocated.PushBack(Block{Base: base, Length: length})

	return base, nil
}

// Release returns the allocated block starting at addr to the free list without
// merging it. It returns ErrNotAllocated if no allocated block starts at addr.
func (a *Allocator) Release(addr int) error {
	index := a.allocated.IndexFunc(func(b Block) bool {
		return b.Base == addr
	})
	if index < 0 {
		a.logger.Debug("release of unallocated address", zap.Int("addr", addr))
		return ErrNotAllocated
	}

	b, err := a.allocated.RemoveAt(index)
	mustNotFail(err)

	if a.options.ReleaseOrder == ReleaseToHead {
		a.free.PushFront(b)
	} else {
		a.free.PushBack(b)
	}
	return nil
}

// Compact sorts the free list by base address and merges adjacent free blocks.
func (a *Allocator) Compact() {
	before := a.free.Len()

	blocks := a.free.Blocks()
	slices.SortStableFunc(blocks, func(x, y Block) int {
		return cmp.Compare(x.Base, y.Base)
	})

	// merge in place, n is the length of the merged prefix.
	n := 0
	for _, b := range blocks {
		if n > 0 && blocks[n-1].Adjacent(b) {
			blocks[n-1].Length += b.Length
			continue
		}
		blocks[n] = b
		n++
	}

	a.free.Reset()
	for _, b := range blocks[:n] {
		a.free.PushBack(b)
	}

	a.logger.Debug("compact",
		zap.Int("before", before),
		zap.Int("after", n))
}

// Snapshot renders the free blocks on the first line and, if any, the
// allocated blocks on the second, each block as "(base , length) ".
func (a *Allocator) Snapshot() string {
	buf := make([]byte, 0, (a.free.Len()+a.allocated.Len())*16+2)
	buf = appendLine(buf, a.free)
	if a.allocated.Len() > 0 {
		buf = appendLine(buf, a.allocated)
	}
	return string(buf)
}

func (a *Allocator) String() string {
	return a.Snapshot()
}

func appendLine(buf []byte, l *BlockList) []byte {
	l.Scan(func(_ int, b Block) bool {
		buf = b.appendTo(buf)
		buf = append(buf, ' ')
		return true
	})
	return append(buf, '\n')
}

// MaxSize returns the size of the address space.
func (a *Allocator) MaxSize() int {
	return a.options.MaxSize
}

// FreeBlocks returns a copy of the free list in list order.
func (a *Allocator) FreeBlocks() []Block {
	return a.free.Blocks()
}

// AllocatedBlocks returns a copy of the allocated list in allocation order.
func (a *Allocator) AllocatedBlocks() []Block {
	return a.allocated.Blocks()
}

// Reset releases everything, leaving a single free block over the whole space.
func (a *Allocator) Reset() {
	a.free.Reset()
	a.allocated.Reset()
	a.free.PushBack(Block{Base: 0, Length: a.options.MaxSize})
}

// DebugLogBlocks writes every block of both lists to logger at debug level.
func (a *Allocator) DebugLogBlocks(logger *zap.Logger) {
	logList := func(name string, l *BlockList) {
		l.Scan(func(i int, b Block) bool {
			logger.Debug("block",
				zap.String("list", name),
				zap.Int("index", i),
				zap.Int("base", b.Base),
				zap.Int("length", b.Length))
			return true
		})
	}
	logList("free", a.free)
	logList("allocated", a.allocated)
}

// mustNotFail panics on block list errors, which only arise from indices the
// allocator computed itself.
func mustNotFail(err error) {
	if err != nil {
		panic(errors.NewAssertionErrorWithWrappedErrf(err, "memspace: block list invariant violated"))
	}
}
