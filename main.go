package main

import (
	"fmt"
	"testing"
	"time"

	"github.com/anastasiia-trofymenko/vector/utils"
	"github.com/anastasiia-trofymenko/vector/vec"
)

func PrintBenchmark(label string, result testing.BenchmarkResult) {

	memPerRun := float64(result.MemBytes) / float64(result.N)
	allocsPerRun := float64(result.MemAllocs) / float64(result.N)
	timePerRun := result.T / time.Duration(result.N)

	fmt.Printf("%8d time %8s. memory %f, memallocs %f [%s]\n", result.N, timePerRun, memPerRun, allocsPerRun, label)
}

func main() {

	utils.Reporting = true
	utils.ReportAllocs("start")

	v := vec.New[int]()
	for i := 1; i <= 7; i++ {
		v.Append(i * i)
	}

	utils.ReportAllocs("after 7 appends")

	fmt.Printf("vector %v, size %d, cap %d\n", v, v.Size(), v.Cap())

	it, err := v.InsertAt(3, -1)
	if err != nil {
		panic(err)
	}
	fmt.Printf("inserted %d at slot %d\n", it.Value(), it.Const().Distance(v.ConstBegin()))

	if _, err := v.EraseAt(3); err != nil {
		panic(err)
	}

	sum := 0
	for it := v.Begin(); !it.Equal(v.End()); it.Next() {
		sum += it.Value()
	}
	fmt.Printf("restored %v, iterator sum %d\n", v, sum)

	utils.ReportAllocs("after insert/erase")
	utils.Reporting = false

	const n = 1024

	PrintBenchmark("vector append", testing.Benchmark(func(b *testing.B) {

		for i := 0; i < b.N; i++ {
			w := vec.WithCapacity[int](0)
			for j := 0; j < n; j++ {
				w.Append(j)
			}
		}

		b.ReportAllocs()
	}))

	PrintBenchmark("vector append, reserved", testing.Benchmark(func(b *testing.B) {

		for i := 0; i < b.N; i++ {
			w := vec.WithCapacity[int](n)
			for j := 0; j < n; j++ {
				w.Append(j)
			}
		}

		b.ReportAllocs()
	}))

	PrintBenchmark("builtin slice append", testing.Benchmark(func(b *testing.B) {

		for i := 0; i < b.N; i++ {
			s := make([]int, 0)
			for j := 0; j < n; j++ {
				s = append(s, j)
			}
			_ = s
		}

		b.ReportAllocs()
	}))

	fmt.Println("")

	PrintBenchmark("vector insert front", testing.Benchmark(func(b *testing.B) {

		for i := 0; i < b.N; i++ {
			w := vec.WithCapacity[int](0)
			for j := 0; j < n; j++ {
				if _, err := w.InsertAt(0, j); err != nil {
					panic(err)
				}
			}
		}

		b.ReportAllocs()
	}))

	PrintBenchmark("builtin slice insert front", testing.Benchmark(func(b *testing.B) {

		for i := 0; i < b.N; i++ {
			s := make([]int, 0)
			for j := 0; j < n; j++ {
				s = append(s, 0)
				copy(s[1:], s)
				s[0] = j
			}
			_ = s
		}

		b.ReportAllocs()
	}))
}
