package utils

import (
	"fmt"
	"runtime"
)

// Reporting gates ReportAllocs output so the checkpoints can stay in
// place while benchmarks run silent.
var Reporting = false

var (
	baseline runtime.MemStats
	current  runtime.MemStats

	checkpoints int
)

const statFormat = "%8d allocs %10d bytes %25s\n"

// ReportAllocs prints the cumulative allocation delta since the first
// checkpoint, tagged with label. The first call establishes the
// baseline and reports zeros.
func ReportAllocs(label string) {
	if !Reporting {
		return
	}

	runtime.ReadMemStats(&current)

	if checkpoints == 0 {
		baseline = current
	}

	fmt.Printf(statFormat, current.Mallocs-baseline.Mallocs, current.Alloc-baseline.Alloc, label)

	checkpoints++
}
