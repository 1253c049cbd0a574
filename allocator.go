package mempool

import (
	"fmt"

	"golang.org/x/sys/unix"
)

// Allocator is the raw memory provider backing a pool's slabs.
// Allocate returns a block of exactly n bytes; on exhaustion it must
// report an error instead of aborting the process. Release returns a
// previously allocated block and must accept blocks in any order.
type Allocator interface {
	Allocate(n int) ([]byte, error)
	Release(block []byte) error
}

// MmapAllocator acquires blocks as anonymous private mappings. Slab
// memory obtained this way lives outside the Go heap, so the garbage
// collector never scans the intrusive links written into free items.
type MmapAllocator struct{}

// Allocate maps a new anonymous read-write block of n bytes
func (MmapAllocator) Allocate(n int) ([]byte, error) {
	if n <= 0 {
		return nil, fmt.Errorf("mempool: invalid block size %d", n)
	}
	return unix.Mmap(-1, 0, n, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_ANON|unix.MAP_PRIVATE)
}

// Release unmaps a block previously returned by Allocate
func (MmapAllocator) Release(block []byte) error {
	return unix.Munmap(block)
}

// HeapAllocator acquires blocks from the Go heap with make. Allocate
// never reports exhaustion (the runtime aborts on OOM instead) and
// Release only drops the allocator's use of the block; the memory is
// reclaimed by the collector once the caller holds no items into it.
// The intrusive links stored in free items are plain integers to the
// collector, which is safe because the Go heap does not move objects.
type HeapAllocator struct{}

func (HeapAllocator) Allocate(n int) ([]byte, error) {
	if n <= 0 {
		return nil, fmt.Errorf("mempool: invalid block size %d", n)
	}
	return make([]byte, n), nil
}

func (HeapAllocator) Release(block []byte) error {
	return nil
}
