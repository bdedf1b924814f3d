package memspace

import (
	"github.com/cockroachdb/errors"
	"go.uber.org/zap"
)

// ReleaseOrder decides where a released block enters the free list.
type ReleaseOrder uint8

const (
	// ReleaseToTail appends released blocks to the free list.
	ReleaseToTail ReleaseOrder = iota
	// ReleaseToHead prepends released blocks, so they are found first by the next allocation.
	ReleaseToHead
)

// Options is the configuration of Allocator.
type Options struct {
	// MaxSize is the number of words in the address space.
	MaxSize int

	// ReleaseOrder positions released blocks in the free list.
	// Released blocks are never merged until Compact.
	ReleaseOrder ReleaseOrder

	// Logger receives debug events. Nil means no logging.
	Logger *zap.Logger
}

// DefaultOptions
var DefaultOptions = Options{
	MaxSize:      1024,
	ReleaseOrder: ReleaseToTail,
	Logger:       nil,
}

func checkOptions(options Options) error {
	if options.MaxSize <= 0 {
		return errors.Wrapf(ErrInvalidOptions, "max size %d", options.MaxSize)
	}
	switch options.ReleaseOrder {
	case ReleaseToTail, ReleaseToHead:
	default:
		return errors.Wrapf(ErrInvalidOptions, "release order %d", options.ReleaseOrder)
	}
	return nil
}
