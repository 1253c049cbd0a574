// Package mempool implements a slab-backed fixed-size object pool.
//
// # Overview
//
// A pool is a specialized allocator for objects of one uniform size and
// alignment. It trades the generality of the runtime allocator for O(1)
// allocation and release with good constants, less fragmentation and
// better spatial locality. It pays off in workloads that create and
// destroy many same-typed objects (nodes, records, connections) where
// general-purpose allocator bookkeeping dominates.
//
// # Basic Usage
//
//	pool := mempool.New[Node]()
//	defer pool.Destroy()
//
//	n, err := pool.Alloc() // *Node, uninitialized
//	if err != nil {
//		return err
//	}
//	*n = Node{...}
//
//	// hand the node back when done with it
//	pool.Free(n)
//
// When the required capacity is known ahead of time, pre-seed the pool
// so no further slabs are created:
//
//	pool, err := mempool.NewWithCapacity[Node](10000)
//
// # Memory Layout
//
// The pool acquires memory in slabs, contiguous blocks of N items, and
// threads an intrusive free list through the unused items: a free
// item's first pointer-sized bytes hold the address of the next free
// item. Items must therefore be at least as large and as aligned as a
// machine pointer; the constructors panic otherwise. The free list is
// LIFO, so the most recently freed item is the next one allocated and
// stays hot in cache.
//
// When the free list runs out, the pool grows by a slab of
// max(MinSlabItems, items ever allocated), so growth events are
// logarithmic in the total allocation count and allocation stays
// amortized O(1). Slabs are only returned to the system by Destroy.
//
// # Contract
//
// The fast path is intentionally unchecked. The pool does not detect
// double frees, frees of foreign pointers, or use after Destroy; any of
// these corrupts the free list. Alloc returns uninitialized memory.
//
// With the default mmap-backed allocator, slab memory is invisible to
// the garbage collector: an item must not hold the only reference to a
// Go-heap object.
//
// # Thread Safety
//
// Pool is single-owner and performs no internal locking. Use SafePool
// for shared access, or give each goroutine its own Pool.
package mempool
