package mempool

import "sync"

// SafePool is a mutex-protected wrapper around Pool for concurrent
// access. All operations are serialized with a single lock, which is
// the external mutual exclusion the bare Pool requires when shared;
// workloads that can give each goroutine its own Pool should prefer
// that instead.
type SafePool[T any] struct {
	mu sync.Mutex
	p  *Pool[T]
}

// NewSafe creates a new thread-safe empty pool for items of type T.
func NewSafe[T any]() *SafePool[T] {
	return &SafePool[T]{p: New[T]()}
}

// NewSafeWithConfig creates a new thread-safe empty pool with an
// explicit configuration.
func NewSafeWithConfig[T any](cfg PoolConfig) *SafePool[T] {
	return &SafePool[T]{p: NewWithConfig[T](cfg)}
}

// NewSafeWithCapacity creates a new thread-safe pool pre-seeded with
// one slab of capacity items.
func NewSafeWithCapacity[T any](capacity uint) (*SafePool[T], error) {
	p, err := NewWithCapacity[T](capacity)
	if err != nil {
		return nil, err
	}
	return &SafePool[T]{p: p}, nil
}

// Alloc thread-safely pops one item off the free list.
func (s *SafePool[T]) Alloc() (*T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.p.Alloc()
}

// Free thread-safely pushes item back onto the free list.
func (s *SafePool[T]) Free(item *T) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.p.Free(item)
}

// Destroy thread-safely releases all slabs and resets the pool.
func (s *SafePool[T]) Destroy() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.p.Destroy()
}

// Owns thread-safely reports whether item points into one of this
// pool's slabs.
func (s *SafePool[T]) Owns(item *T) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.p.Owns(item)
}

// Metrics thread-safely returns a snapshot of pool statistics.
func (s *SafePool[T]) Metrics() PoolMetrics {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.p.Metrics()
}
