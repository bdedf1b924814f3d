package memspace

import (
	"cmp"
	"slices"

	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/swiss"
)

// Validate checks that the free and allocated blocks tile [0, MaxSize) with
// no gaps and no overlaps. It is meant for tests and debugging.
func (a *Allocator) Validate() error {
	total := a.free.Len() + a.allocated.Len()
	bases := swiss.New[int, string](total)
	blocks := make([]Block, 0, total)

	var err error
	check := func(list string) func(int, Block) bool {
		return func(i int, b Block) bool {
			if b.Length <= 0 {
				err = errors.Newf("%s block %d at base %d has length %d", list, i, b.Base, b.Length)
				return false
			}
			if b.Base < 0 || b.End() > a.options.MaxSize {
				err = errors.Newf("%s block %v lies outside [0, %d)", list, b, a.options.MaxSize)
				return false
			}
			if other, ok := bases.Get(b.Base); ok {
				err = errors.Newf("%s block %v shares its base with a %s block", list, b, other)
				return false
			}
			bases.Put(b.Base, list)
			blocks = append(blocks, b)
			return true
		}
	}

	if a.free.Scan(check("free")); err != nil {
		return err
	}
	if a.allocated.Scan(check("allocated")); err != nil {
		return err
	}

	slices.SortFunc(blocks, func(x, y Block) int {
		return cmp.Compare(x.Base, y.Base)
	})

	next := 0
	for _, b := range blocks {
		if b.Base < next {
			return errors.Newf("block %v overlaps the block ending at %d", b, next)
		}
		if b.Base > next {
			return errors.Newf("gap [%d, %d) is neither free nor allocated", next, b.Base)
		}
		next = b.End()
	}
	if next != a.options.MaxSize {
		return errors.Newf("gap [%d, %d) is neither free nor allocated", next, a.options.MaxSize)
	}
	return nil
}
