package main

import (
	"fmt"
	"io"
	"time"

	"github.com/fatih/color"
)

var denominators = []int64{int64(time.Hour), int64(time.Minute), int64(time.Second), int64(time.Millisecond), int64(time.Microsecond), int64(time.Nanosecond)}
var units = []string{"h", "m", "s", "ms", "µs", "ns"}

// getMeasurementMetrics picks the largest unit the timing fills at least once.
// Anything below a nanosecond, zero included, is reported in nanoseconds.
func getMeasurementMetrics(timing int64) (float64, string) {
	for i, denominator := range denominators {
		if timing/denominator > 0 {
			return float64(denominator), units[i]
		}
	}
	return float64(time.Nanosecond), units[len(units)-1]
}

func formatDuration(d time.Duration) string {
	denominator, unit := getMeasurementMetrics(int64(d))
	return fmt.Sprintf("%.2f %s", float64(d)/denominator, unit)
}

// printResult writes the single report line for a completed run.
func printResult(w io.Writer, result *benchmarkResult) error {
	_, err := fmt.Fprintf(w, "Parsing took: %s [User: %s, System: %s]\n",
		color.GreenString(formatDuration(result.elapsed)),
		color.CyanString(formatDuration(result.userTime)),
		color.CyanString(formatDuration(result.kernelTime)))
	return err
}
