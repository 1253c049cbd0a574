package mempool

import "unsafe"

// A slab is one contiguous block holding a fixed number of item slots.
// The pool owns it exclusively from creation until Destroy; it is never
// resized or partially released.
type slab struct {
	block []byte // the raw block, retained for the teardown release
	items uint   // number of item slots in the block
}

// addr returns the address of this slab's first item slot
func (s *slab) addr() uintptr {
	return uintptr(unsafe.Pointer(&s.block[0]))
}

// contains reports whether addr falls inside this slab's block
func (s *slab) contains(addr uintptr) bool {
	base := s.addr()
	return addr >= base && addr < base+uintptr(len(s.block))
}

// buildSlab requests one block sized for n items from the allocator and
// threads the slots into a ready-made free chain for exactly this slab.
// On failure the allocator's error is returned untouched and no partial
// block stays reachable.
func buildSlab(a Allocator, n uint, stride uintptr) (slab, error) {
	block, err := a.Allocate(int(uintptr(n) * stride))
	if err != nil {
		return slab{}, err
	}
	threadChain(uintptr(unsafe.Pointer(&block[0])), n, stride)
	return slab{block: block, items: n}, nil
}
