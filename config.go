package mempool

// DefaultMinSlabItems is the default floor of the slab growth policy.
const DefaultMinSlabItems = 8

// Config provides a PoolConfig with default settings.
var Config = NewConfig()

// PoolConfig is used by the pool constructors when creating a new
// instance. Please see the documentation at
// https://github.com/replay/go-mempool for more information
type PoolConfig struct {
	// MinSlabItems is the floor of the growth policy: a growth slab
	// holds max(MinSlabItems, items ever allocated) items.
	MinSlabItems uint

	// Allocator provides the raw memory backing the slabs.
	Allocator Allocator
}

// NewConfig returns a new pool configuration with default settings:
// a growth floor of DefaultMinSlabItems and mmap-backed slabs.
func NewConfig() PoolConfig {
	return PoolConfig{
		MinSlabItems: DefaultMinSlabItems,
		Allocator:    MmapAllocator{},
	}
}

// withDefaults fills the zero values of a caller-supplied configuration
func (c PoolConfig) withDefaults() PoolConfig {
	if c.MinSlabItems == 0 {
		c.MinSlabItems = DefaultMinSlabItems
	}
	if c.Allocator == nil {
		c.Allocator = MmapAllocator{}
	}
	return c
}
