package memspace

import "github.com/cockroachdb/errors"

var (
	// ErrInvalidLength indicates an allocation request with a non-positive length.
	ErrInvalidLength = errors.New("memspace: length must be positive")

	// ErrNoFit indicates that no free block is large enough for the request.
	ErrNoFit = errors.New("memspace: no free block large enough")

	// ErrNotAllocated indicates a release of an address that is not the base of an allocated block.
	ErrNotAllocated = errors.New("memspace: address not allocated")

	// ErrIndexOutOfRange indicates a block list access outside the valid index range.
	ErrIndexOutOfRange = errors.New("memspace: index out of range")

	// ErrNotFound indicates that a block is not present in a block list.
	ErrNotFound = errors.New("memspace: block not found")

	// ErrInvalidOptions indicates a configuration that cannot build an allocator.
	ErrInvalidOptions = errors.New("memspace: invalid options")
)

// NoFit is the address returned alongside a failed allocation.
const NoFit = -1
