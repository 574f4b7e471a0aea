// benchmark.go
// A reusable benchmarking wrapper for fasta_buddy sessions
// Measures execution time and memory usage for the wrapped function

package benchmark

import (
	"fmt"
	"io"
	"os"
	"runtime"
	"time"
)

// Report holds what one benchmarked run consumed
type Report struct {
	Label          string
	Elapsed        time.Duration
	AllocMB        float64 // difference in live heap
	TotalAllocMB   float64 // everything allocated during the run
	GCCycles       uint32
	GoroutineStart int
	GoroutineEnd   int
}

const mb = 1024.0 * 1024.0

// Run wraps f to measure its runtime and memory usage, writing the report to w.
// The report is written even when f fails; f's error is returned unchanged.
func Run(w io.Writer, label string, f func() error) (Report, error) {
	fmt.Fprintf(w, "[Benchmark] Running: %s\n", label)
	fmt.Fprintln(w, "[Benchmark] Timestamp:", time.Now().Format(time.RFC1123))
	if host, err := os.Hostname(); err == nil {
		fmt.Fprintln(w, "[Benchmark] Hostname:", host)
	}
	fmt.Fprintln(w, "[Benchmark] Go Version:", runtime.Version())
	fmt.Fprintf(w, "[Benchmark] OS/Arch: %s/%s\n", runtime.GOOS, runtime.GOARCH)

	runtime.GC()
	var memStart, memEnd runtime.MemStats
	runtime.ReadMemStats(&memStart)
	rep := Report{Label: label, GoroutineStart: runtime.NumGoroutine()}
	start := time.Now()

	err := f()

	rep.Elapsed = time.Since(start)
	runtime.ReadMemStats(&memEnd)
	rep.GoroutineEnd = runtime.NumGoroutine()
	rep.AllocMB = (float64(memEnd.Alloc) - float64(memStart.Alloc)) / mb // can go negative after a GC
	rep.TotalAllocMB = float64(memEnd.TotalAlloc-memStart.TotalAlloc) / mb
	rep.GCCycles = memEnd.NumGC - memStart.NumGC

	fmt.Fprintf(w, "[Benchmark] Time Elapsed: %v\n", rep.Elapsed)
	fmt.Fprintf(w, "[Benchmark] Memory Used: %.2f MB\n", rep.AllocMB)
	fmt.Fprintf(w, "[Benchmark] Total Allocated: %.2f MB\n", rep.TotalAllocMB)
	fmt.Fprintf(w, "[Benchmark] Peak Heap: %.2f MB\n", float64(memEnd.HeapAlloc)/mb)
	fmt.Fprintf(w, "[Benchmark] GC Cycles: %d\n", rep.GCCycles)
	fmt.Fprintf(w, "[Benchmark] CPU Cores: %d\n", runtime.NumCPU())
	fmt.Fprintf(w, "[Benchmark] Goroutines Started: %d → %d\n", rep.GoroutineStart, rep.GoroutineEnd)
	fmt.Fprintln(w, "[Benchmark] ----------------------------------------")
	return rep, err
}
