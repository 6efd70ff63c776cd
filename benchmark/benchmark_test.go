package benchmark

import (
	"fmt"
	"testing"

	"github.com/benny779/Logger/core"
	"github.com/benny779/Logger/destination"
	"github.com/benny779/Logger/formatter"
	"github.com/benny779/Logger/registry"
)

func newRegistry(destinations int) *registry.Registry {
	r := registry.New()
	r.SetConcurrentDispatch(false)
	for i := 0; i < destinations; i++ {
		d := &noopDestination{min: core.DebugLevel}
		r.AddOrReplace(named{d, fmt.Sprintf("noop-%d", i)})
	}
	return r
}

// named wraps a destination with a distinct ID so several can coexist.
type named struct {
	destination.Destination
	id string
}

func (n named) ID() string { return n.id }

// Benchmark registry creation
func BenchmarkRegistryCreation(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = registry.New()
	}
}

// Benchmark plain text dispatch through one destination
func BenchmarkDispatchText(b *testing.B) {
	r := newRegistry(1)
	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		r.Info("benchmark message")
	}
}

// Benchmark dispatch fan-out across several destinations
func BenchmarkDispatchFanOut(b *testing.B) {
	for _, n := range []int{1, 3, 8} {
		b.Run(fmt.Sprintf("destinations-%d", n), func(b *testing.B) {
			r := newRegistry(n)
			b.ResetTimer()
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				r.Info("benchmark message")
			}
		})
	}
}

// Benchmark concurrent vs sequential fan-out
func BenchmarkDispatchConcurrent(b *testing.B) {
	for _, concurrent := range []bool{false, true} {
		name := "sequential"
		if concurrent {
			name = "concurrent"
		}
		b.Run(name, func(b *testing.B) {
			r := newRegistry(4)
			r.SetConcurrentDispatch(concurrent)
			b.ResetTimer()
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				r.Info("benchmark message")
			}
		})
	}
}

// Benchmark the level filter rejecting an entry before formatting
func BenchmarkDispatchFiltered(b *testing.B) {
	r := newRegistry(0)
	r.AddOrReplace(newNoopDestination(core.ErrorLevel))
	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		r.Debug("skipped by minimum level")
	}
}

// Benchmark the global-disable short circuit
func BenchmarkDispatchGloballyDisabled(b *testing.B) {
	r := newRegistry(1)
	r.SetGlobalEnabled(false)
	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		r.Info("never formatted")
	}
}

// Benchmark error chain formatting
func BenchmarkDispatchErrorPayload(b *testing.B) {
	r := newRegistry(1)
	err := fmt.Errorf("handler failed: %w",
		fmt.Errorf("query failed: %w",
			fmt.Errorf("connection reset")))
	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		r.Error(err)
	}
}

// Benchmark history retention overhead
func BenchmarkDispatchWithHistory(b *testing.B) {
	r := newRegistry(1)
	if err := r.EnableHistory(1024); err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		r.Info("retained message")
	}
}

// Benchmark contended dispatch from many goroutines
func BenchmarkDispatchParallel(b *testing.B) {
	r := newRegistry(1)
	b.ResetTimer()
	b.ReportAllocs()
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			r.Info("parallel message")
		}
	})
}

// Benchmark building a timestamp layout with the fluent builder
func BenchmarkPatternBuilder(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_, err := formatter.NewPatternBuilder().
			Year("-").Month("-").Day(" ").
			Hour(":").Minute(":").Second().
			Millisecond(3).
			Layout()
		if err != nil {
			b.Fatal(err)
		}
	}
}
