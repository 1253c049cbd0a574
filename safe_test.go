package mempool

import (
	"sync"
	"testing"
	"unsafe"
)

func TestSafePoolConcurrentAlloc(t *testing.T) {
	workers := 8
	allocsPerWorker := 200

	s := NewSafe[record]()
	defer s.Destroy()

	var wg sync.WaitGroup
	results := make(chan uintptr, workers*allocsPerWorker)

	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			for j := 0; j < allocsPerWorker; j++ {
				r, err := s.Alloc()
				if err != nil {
					t.Error(err)
					return
				}
				results <- uintptr(unsafe.Pointer(r))
			}
		}()
	}
	wg.Wait()
	close(results)

	seen := make(map[uintptr]bool)
	for addr := range results {
		if seen[addr] {
			t.Fatalf("address %d handed out twice", addr)
		}
		seen[addr] = true
	}

	if got := len(seen); got != workers*allocsPerWorker {
		t.Errorf("distinct items = %d, want %d", got, workers*allocsPerWorker)
	}
	if got := s.Metrics().ItemsAllocated; got != uint(workers*allocsPerWorker) {
		t.Errorf("ItemsAllocated = %d, want %d", got, workers*allocsPerWorker)
	}
}

func TestSafePoolConcurrentChurn(t *testing.T) {
	workers := 4
	rounds := 500

	s, err := NewSafeWithCapacity[record](uint(workers))
	if err != nil {
		t.Fatal(err)
	}
	defer s.Destroy()

	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			for j := 0; j < rounds; j++ {
				r, err := s.Alloc()
				if err != nil {
					t.Error(err)
					return
				}
				r.id = uint64(j)
				s.Free(r)
			}
		}()
	}
	wg.Wait()

	m := s.Metrics()
	if m.Live != 0 {
		t.Errorf("Live after churn = %d, want 0", m.Live)
	}
	if m.ItemsAllocated != uint(workers*rounds) {
		t.Errorf("ItemsAllocated = %d, want %d", m.ItemsAllocated, workers*rounds)
	}
}

func TestSafePoolOwns(t *testing.T) {
	s, err := NewSafeWithCapacity[record](2)
	if err != nil {
		t.Fatal(err)
	}
	defer s.Destroy()

	r, err := s.Alloc()
	if err != nil {
		t.Fatal(err)
	}
	if !s.Owns(r) {
		t.Error("pool does not own its own item")
	}
	if s.Owns(&record{}) {
		t.Error("pool claims a stack value")
	}
}

func TestSafePoolZeroCapacity(t *testing.T) {
	if _, err := NewSafeWithCapacity[record](0); err != ErrZeroCapacity {
		t.Errorf("err = %v, want ErrZeroCapacity", err)
	}
}
