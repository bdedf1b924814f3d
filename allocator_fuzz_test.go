package memspace

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func FuzzAllocator(f *testing.F) {
	f.Add([]byte{3, 9, 0, 200, 7, 1})
	f.Add([]byte{255, 0, 128, 64, 32})

	f.Fuzz(func(t *testing.T, ops []byte) {
		assert := assert.New(t)

		options := DefaultOptions
		options.MaxSize = 256
		options.ReleaseOrder = ReleaseOrder(len(ops) % 2)
		a, err := New(options)
		if !assert.NoError(err) {
			return
		}

		var live []int
		for _, op := range ops {
			switch {
			case op < 128:
				// lengths start at -1 to cover rejected requests.
				length := int(op%64) - 1
				base, err := a.Allocate(length)
				if err == nil {
					live = append(live, base)
				} else {
					assert.Equal(NoFit, base)
				}

			case op < 224:
				if len(live) == 0 {
					assert.ErrorIs(a.Release(int(op)), ErrNotAllocated)
					continue
				}
				i := int(op) % len(live)
				assert.NoError(a.Release(live[i]))
				live = append(live[:i], live[i+1:]...)

			default:
				a.Compact()
			}

			if err := a.Validate(); err != nil {
				t.Fatalf("after op %d: %v\n%s", op, err, a.Snapshot())
			}
		}
		assert.Equal(len(live), a.Stats().AllocBlocks)
	})
}
