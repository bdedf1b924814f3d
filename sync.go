package memspace

import "sync"

// SyncAllocator guards an Allocator with a single mutex, so each operation
// runs its read-then-mutate sequence on both lists atomically.
type SyncAllocator struct {
	mu sync.Mutex
	a  *Allocator
}

// NewSync returns a SyncAllocator for options.
func NewSync(options Options) (*SyncAllocator, error) {
	a, err := New(options)
	if err != nil {
		return nil, err
	}
	return &SyncAllocator{a: a}, nil
}

func (s *SyncAllocator) Allocate(length int) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.Allocate(length)
}

func (s *SyncAllocator) Release(addr int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.Release(addr)
}

func (s *SyncAllocator) Compact() {
	s.mu.Lock()
	s.a.Compact()
	s.mu.Unlock()
}

func (s *SyncAllocator) Snapshot() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.Snapshot()
}

func (s *SyncAllocator) Stats() Stats {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.Stats()
}

func (s *SyncAllocator) Validate() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.a.Validate()
}
