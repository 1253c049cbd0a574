// poolbench measures fixed-size pool allocation against runtime
// allocation under a steady-state churn workload: a bounded live set of
// objects where every new allocation retires the oldest one.
package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"
	"time"
	"unsafe"

	"github.com/davecgh/go-spew/spew"
	"github.com/fatih/color"

	mempool "github.com/replay/go-mempool"
)

// node imitates a typical intrusively-linked record. It holds no Go
// pointers, so it is safe to store in off-heap pool memory.
type node struct {
	key     uint64
	value   uint64
	weight  uint64
	padding [5]uint64
}

type result struct {
	name     string
	ops      int
	duration time.Duration
	gcCycles uint32
}

func (r result) nsPerOp() float64 {
	return float64(r.duration.Nanoseconds()) / float64(r.ops)
}

func main() {
	iterations := flag.Int("iterations", 5_000_000, "number of allocate/retire rounds")
	liveSet := flag.Int("live", 1024, "number of objects kept live at any time")
	dumpMetrics := flag.Bool("metrics", false, "dump the final pool metrics snapshot")
	flag.Parse()

	if *liveSet <= 0 || *iterations <= *liveSet {
		fmt.Fprintln(os.Stderr, "poolbench: iterations must exceed the live set size")
		os.Exit(1)
	}

	color.Cyan("[poolbench] %d rounds, live set of %d nodes of %d bytes\n",
		*iterations, *liveSet, int(unsafe.Sizeof(node{})))

	pool, err := mempool.NewWithCapacity[node](uint(*liveSet))
	if err != nil {
		fmt.Fprintf(os.Stderr, "poolbench: creating pool: %v\n", err)
		os.Exit(1)
	}

	poolRes, err := benchPool(pool, *iterations, *liveSet)
	if err != nil {
		fmt.Fprintf(os.Stderr, "poolbench: pool workload: %v\n", err)
		os.Exit(1)
	}
	runtimeRes := benchRuntime(*iterations, *liveSet)

	report(poolRes, runtimeRes)

	if *dumpMetrics {
		color.Yellow("\n[poolbench] final pool metrics")
		spew.Dump(pool.Metrics())
	}

	if err := pool.Destroy(); err != nil {
		fmt.Fprintf(os.Stderr, "poolbench: destroying pool: %v\n", err)
		os.Exit(1)
	}
}

// benchPool churns the live set through the pool: each round allocates
// one node and frees the oldest one.
func benchPool(pool *mempool.Pool[node], iterations, liveSet int) (result, error) {
	live := make([]*node, liveSet)
	for i := range live {
		n, err := pool.Alloc()
		if err != nil {
			return result{}, err
		}
		n.key = uint64(i)
		live[i] = n
	}

	gcBefore := gcCount()
	start := time.Now()

	for i := 0; i < iterations-liveSet; i++ {
		slot := i % liveSet
		pool.Free(live[slot])

		n, err := pool.Alloc()
		if err != nil {
			return result{}, err
		}
		n.key = uint64(i)
		n.value = n.key * 2
		live[slot] = n
	}

	return result{
		name:     "mempool",
		ops:      iterations,
		duration: time.Since(start),
		gcCycles: gcCount() - gcBefore,
	}, nil
}

// benchRuntime runs the same churn against the regular allocator,
// leaving retirement to the garbage collector.
func benchRuntime(iterations, liveSet int) result {
	live := make([]*node, liveSet)
	for i := range live {
		live[i] = &node{key: uint64(i)}
	}

	gcBefore := gcCount()
	start := time.Now()

	for i := 0; i < iterations-liveSet; i++ {
		slot := i % liveSet
		n := new(node)
		n.key = uint64(i)
		n.value = n.key * 2
		live[slot] = n
	}

	return result{
		name:     "runtime new",
		ops:      iterations,
		duration: time.Since(start),
		gcCycles: gcCount() - gcBefore,
	}
}

func gcCount() uint32 {
	var ms runtime.MemStats
	runtime.ReadMemStats(&ms)
	return ms.NumGC
}

func report(results ...result) {
	bold := color.New(color.Bold)
	bold.Printf("\n%-12s %14s %12s %10s\n", "allocator", "total", "ns/op", "GC cycles")

	for _, r := range results {
		line := fmt.Sprintf("%-12s %14s %12.1f %10d", r.name, r.duration.Round(time.Microsecond), r.nsPerOp(), r.gcCycles)
		if r.name == "mempool" {
			color.Green(line)
		} else {
			fmt.Println(line)
		}
	}
}
