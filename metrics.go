package mempool

// ItemSize returns the size in bytes of one item slot.
func (p *Pool[T]) ItemSize() uintptr {
	return p.stride
}

// NumSlabs returns the number of slabs currently owned by the pool.
func (p *Pool[T]) NumSlabs() int {
	return len(p.slabs)
}

// Capacity returns the total number of item slots across all slabs.
func (p *Pool[T]) Capacity() uint {
	var sum uint
	for i := range p.slabs {
		sum += p.slabs[i].items
	}
	return sum
}

// ItemsAllocated returns the cumulative number of successful Alloc
// calls. It is never decremented by Free; it sizes future slab growth
// and does not report current utilization.
func (p *Pool[T]) ItemsAllocated() uint {
	return p.nItems
}

// NumFree returns the number of items currently on the free list.
// It walks the list, so it is linear in the free item count.
func (p *Pool[T]) NumFree() uint {
	return chainLen(p.firstFree)
}

// Live returns the number of items currently lent out to callers.
func (p *Pool[T]) Live() uint {
	return p.Capacity() - p.NumFree()
}

// Utilization returns the ratio of live items to total capacity
// (0.0 to 1.0). Returns 0.0 if the pool has no slabs.
func (p *Pool[T]) Utilization() float64 {
	capacity := p.Capacity()
	if capacity == 0 {
		return 0
	}
	return float64(p.Live()) / float64(capacity)
}

// Metrics returns a snapshot of pool statistics.
func (p *Pool[T]) Metrics() PoolMetrics {
	capacity := p.Capacity()
	free := p.NumFree()
	m := PoolMetrics{
		ItemSize:       p.stride,
		NumSlabs:       len(p.slabs),
		Capacity:       capacity,
		ItemsAllocated: p.nItems,
		NumFree:        free,
		Live:           capacity - free,
	}
	if capacity > 0 {
		m.Utilization = float64(m.Live) / float64(capacity)
	}
	return m
}

// PoolMetrics contains statistical information about a pool.
type PoolMetrics struct {
	ItemSize       uintptr // Size of one item slot in bytes
	NumSlabs       int     // Number of slabs owned by the pool
	Capacity       uint    // Total item slots across all slabs
	ItemsAllocated uint    // Cumulative successful allocations
	NumFree        uint    // Items currently on the free list
	Live           uint    // Items currently lent out
	Utilization    float64 // Ratio of live items to capacity (0.0-1.0)
}
