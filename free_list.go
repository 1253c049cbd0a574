package mempool

import "unsafe"

// The free list is intrusive: the first pointer-sized bytes of a free
// item hold the address of the next free item, so free items carry the
// bookkeeping in their own storage and no side structure exists.
// Reinterpreting item storage like this is the one deliberately unsafe
// hot path of the package; it requires items to be at least as large
// and as aligned as a machine pointer, which the pool constructors
// enforce.

// itemAddr is the address of one item slot, 0 means "no item"
type itemAddr = uintptr

// threadChain links the n item slots of the block starting at base into
// a free chain ordered by ascending address. The last slot gets the
// terminating 0. It returns the head of the chain, which is base.
func threadChain(base uintptr, n uint, stride uintptr) itemAddr {
	last := base + uintptr(n-1)*stride
	for it := base; it < last; it += stride {
		*(*itemAddr)(unsafe.Pointer(it)) = it + stride
	}
	*(*itemAddr)(unsafe.Pointer(last)) = 0
	return base
}

// chainNext returns the successor address stored inside the item at addr
func chainNext(addr itemAddr) itemAddr {
	return *(*itemAddr)(unsafe.Pointer(addr))
}

// chainPush stores head into the item at addr and returns addr as the
// new head of the chain
func chainPush(head, addr itemAddr) itemAddr {
	*(*itemAddr)(unsafe.Pointer(addr)) = head
	return addr
}

// chainLen walks the chain from head and counts its items.
// It is linear in the number of free items and only used for
// introspection, never on the allocation path.
func chainLen(head itemAddr) uint {
	var n uint
	for it := head; it != 0; it = chainNext(it) {
		n++
	}
	return n
}
