package mempool

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"unsafe"
)

// ErrZeroCapacity is returned when a pool is created with capacity 0.
var ErrZeroCapacity = errors.New("mempool: capacity must be positive")

// Pool hands out fixed-size items of type T. It manages multiple slabs
// of contiguous item storage and a LIFO free list threaded through the
// unused items, so allocation and release are O(1) with slab growth
// amortized over the allocation count.
//
// A Pool is not safe for concurrent use, see SafePool. All slab memory
// is owned by the pool until Destroy; items are lent to the caller and
// must only be returned with Free. The pool performs no membership or
// double-free checks: releasing a foreign or already-free item, or
// using the pool after Destroy, corrupts the free list.
type Pool[T any] struct {
	slabs     []slab   // kept sorted in descending base address order
	firstFree itemAddr // head of the intrusive free list, 0 when empty
	nItems    uint     // cumulative successful allocations, never decremented
	stride    uintptr
	cfg       PoolConfig
}

// New initializes an empty pool for items of type T. No memory is
// acquired; the first Alloc creates the first slab.
// It panics if T cannot hold a free-list link, i.e. if T is smaller or
// less aligned than a machine pointer.
func New[T any]() *Pool[T] {
	return NewWithConfig[T](Config)
}

// NewWithConfig is like New but with an explicit configuration instead
// of the package default. Zero fields of cfg fall back to the defaults.
func NewWithConfig[T any](cfg PoolConfig) *Pool[T] {
	var zero T
	if unsafe.Sizeof(zero) < unsafe.Sizeof(uintptr(0)) {
		panic(fmt.Sprintf("mempool: item size %d is below the link size %d",
			unsafe.Sizeof(zero), unsafe.Sizeof(uintptr(0))))
	}
	if unsafe.Alignof(zero) < unsafe.Alignof(uintptr(0)) {
		panic(fmt.Sprintf("mempool: item alignment %d is below the link alignment %d",
			unsafe.Alignof(zero), unsafe.Alignof(uintptr(0))))
	}
	return &Pool[T]{
		stride: unsafe.Sizeof(zero),
		cfg:    cfg.withDefaults(),
	}
}

// NewWithCapacity initializes a pool pre-seeded with one slab holding
// capacity items, all of them free. Exactly one block is requested from
// the raw allocator; if the request fails no pool state is retained.
func NewWithCapacity[T any](capacity uint) (*Pool[T], error) {
	return NewWithCapacityConfig[T](capacity, Config)
}

// NewWithCapacityConfig is like NewWithCapacity with an explicit
// configuration.
func NewWithCapacityConfig[T any](capacity uint, cfg PoolConfig) (*Pool[T], error) {
	if capacity == 0 {
		return nil, ErrZeroCapacity
	}
	p := NewWithConfig[T](cfg)
	sl, err := buildSlab(p.cfg.Allocator, capacity, p.stride)
	if err != nil {
		return nil, fmt.Errorf("mempool: pre-seeding pool with %d items: %w", capacity, err)
	}
	p.registerSlab(sl)
	p.firstFree = sl.addr()
	return p, nil
}

// Alloc pops one item off the free list and returns a pointer to it.
// When the free list is empty it first creates a new slab sized
// max(MinSlabItems, items ever allocated), so the number of growth
// events stays logarithmic in the total allocation count.
// On allocator failure the error is returned and the pool is left
// exactly as it was before the call.
//
// The item's memory is uninitialized from the pool's perspective; the
// caller must construct a valid value into it. When the pool is backed
// by off-heap memory the collector cannot see the item, so T must not
// hold the only reference to a Go-heap object.
func (p *Pool[T]) Alloc() (*T, error) {
	if p.firstFree == 0 {
		n := p.nItems
		if n < p.cfg.MinSlabItems {
			n = p.cfg.MinSlabItems
		}
		sl, err := buildSlab(p.cfg.Allocator, n, p.stride)
		if err != nil {
			return nil, fmt.Errorf("mempool: growing pool by %d items: %w", n, err)
		}
		p.registerSlab(sl)
		p.firstFree = sl.addr()
	}

	it := p.firstFree
	p.firstFree = chainNext(it)
	p.nItems++
	return (*T)(unsafe.Pointer(it)), nil
}

// Free pushes item onto the head of the free list, making it the next
// item Alloc returns. No memory is released and no check is made that
// item belongs to this pool or is not already free; that precondition
// is the caller's contract.
func (p *Pool[T]) Free(item *T) {
	p.firstFree = chainPush(p.firstFree, uintptr(unsafe.Pointer(item)))
}

// Destroy releases every slab back to the raw allocator and resets the
// pool to the empty state. It does not require that all items were
// freed first; any item the caller still holds becomes dangling. Using
// the pool after Destroy is a contract violation.
// The sweep always completes; the first release error, if any, is
// returned.
func (p *Pool[T]) Destroy() error {
	var firstErr error
	for i := range p.slabs {
		if err := p.cfg.Allocator.Release(p.slabs[i].block); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	p.slabs = nil
	p.firstFree = 0
	p.nItems = 0
	return firstErr
}

// Owns reports whether item points into one of this pool's slabs. It is
// a diagnostic helper only: Free intentionally performs no such check.
func (p *Pool[T]) Owns(item *T) bool {
	addr := uintptr(unsafe.Pointer(item))
	idx := p.findSlabByAddr(addr)
	return idx < len(p.slabs) && p.slabs[idx].contains(addr)
}

// registerSlab inserts a new slab into the registry.
// note that p.slabs must remain sorted in descending base address order
// for findSlabByAddr to work
func (p *Pool[T]) registerSlab(sl slab) {
	base := sl.addr()
	insertAt := sort.Search(len(p.slabs), func(i int) bool { return p.slabs[i].addr() < base })
	p.slabs = append(p.slabs, slab{})
	copy(p.slabs[insertAt+1:], p.slabs[insertAt:])
	p.slabs[insertAt] = sl
}

// findSlabByAddr takes an item address and finds the slab which is
// likely to contain it by looking it up in the registry.
// It returns the slab index if a candidate was found, otherwise the
// number of known slabs.
// For the lookup to succeed it relies on p.slabs being sorted in
// descending order
func (p *Pool[T]) findSlabByAddr(addr uintptr) int {
	return sort.Search(len(p.slabs), func(i int) bool { return p.slabs[i].addr() <= addr })
}

// String creates a multi-line string which illustrates the pool in a
// human-readable format
func (p *Pool[T]) String() string {
	var b strings.Builder

	fmt.Fprintf(&b, "-------------------------------\n")
	fmt.Fprintf(&b, "Item Size: %d\n", p.stride)
	fmt.Fprintf(&b, "Slab Count: %d\n", len(p.slabs))
	fmt.Fprintf(&b, "Items Allocated: %d\n", p.nItems)
	fmt.Fprintf(&b, "Free Items: %d\n", chainLen(p.firstFree))

	for i := range p.slabs {
		sl := &p.slabs[i]
		fmt.Fprintf(&b, "slab[%d]: Addr: %d Items: %d\n", i, sl.addr(), sl.items)
	}

	return b.String()
}
