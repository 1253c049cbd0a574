package mempool

import "testing"

func BenchmarkAllocFree(b *testing.B) {
	p, err := NewWithCapacity[record](1)
	if err != nil {
		b.Fatal(err)
	}
	defer p.Destroy()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		r, err := p.Alloc()
		if err != nil {
			b.Fatal(err)
		}
		p.Free(r)
	}
}

func BenchmarkAllocBatch(b *testing.B) {
	batch := 1024
	p, err := NewWithCapacity[record](uint(batch))
	if err != nil {
		b.Fatal(err)
	}
	defer p.Destroy()

	refs := make([]*record, batch)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for j := 0; j < batch; j++ {
			refs[j], _ = p.Alloc()
		}
		// release in reverse so the chain ends up in its original order
		for j := batch - 1; j >= 0; j-- {
			p.Free(refs[j])
		}
	}
}

func BenchmarkRuntimeNewBaseline(b *testing.B) {
	var sink *record
	for i := 0; i < b.N; i++ {
		sink = new(record)
		sink.id = uint64(i)
	}
	_ = sink
}

func BenchmarkSafePoolAllocFree(b *testing.B) {
	s, err := NewSafeWithCapacity[record](1)
	if err != nil {
		b.Fatal(err)
	}
	defer s.Destroy()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		r, err := s.Alloc()
		if err != nil {
			b.Fatal(err)
		}
		s.Free(r)
	}
}
