package registry_test

import (
	"fmt"
	"strings"

	"github.com/benny779/Logger/formatter"
	"github.com/benny779/Logger/registry"
)

// Build a registry, retain dispatched lines in history and inspect them.
func ExampleRegistry() {
	r := registry.New()
	_ = r.EnableHistory(8)

	r.Info("application started")
	r.Error("disk almost full")

	for _, line := range r.HistorySnapshot() {
		// Strip the timestamp to keep the output stable.
		fmt.Println(line[strings.Index(line, "["):])
	}
	// Output:
	// [INF] application started
	// [ERR] disk almost full
}

// Configure the timestamp layout with the fluent pattern builder.
func ExampleRegistry_SetTimePattern() {
	r := registry.New()
	_ = r.EnableHistory(4)

	b := formatter.NewPatternBuilder().Hour(":").Minute(":").Second()
	if err := r.SetTimePattern(b); err != nil {
		fmt.Println(err)
		return
	}

	r.Warn("low memory")

	line := r.HistorySnapshot()[0]
	// An "HH:MM:SS" prefix puts the level marker at offset 9.
	fmt.Println(strings.Index(line, "[WRN]"))
	// Output:
	// 9
}

// Out-of-range pattern fragments surface as configuration errors.
func ExampleRegistry_SetTimePattern_invalid() {
	r := registry.New()

	b := formatter.NewPatternBuilder().Second().Millisecond(9)
	err := r.SetTimePattern(b)

	fmt.Println(err)
	// Output:
	// logger: millisecond digits 9 outside [1,7]
}
