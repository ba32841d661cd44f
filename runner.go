package main

import (
	"errors"
	"fmt"
	"time"
)

var errParse = errors.New("failed to parse JSON")

type benchmarkResult struct {
	decoder    string
	iterations int

	elapsed    time.Duration
	userTime   time.Duration
	kernelTime time.Duration
}

// runBenchmark decodes cfg.input into a fresh person cfg.iterations times and
// measures the wall time across the whole loop, loop overhead included. The
// first decode failure aborts the run.
func runBenchmark(cfg config) (*benchmarkResult, error) {
	unmarshal, err := lookupDecoder(cfg.decoder)
	if err != nil {
		return nil, err
	}
	if cfg.iterations < 0 {
		return nil, fmt.Errorf("invalid iteration count %d", cfg.iterations)
	}

	userBefore, kernelBefore := cfg.timer.CPUTimes()
	start := cfg.timer.Now()
	for i := 0; i < cfg.iterations; i++ {
		var p person
		if err := unmarshal(cfg.input, &p); err != nil {
			return nil, fmt.Errorf("%w: iteration %d: %w", errParse, i, err)
		}
	}
	end := cfg.timer.Now()
	userAfter, kernelAfter := cfg.timer.CPUTimes()

	return &benchmarkResult{
		decoder:    cfg.decoder,
		iterations: cfg.iterations,
		elapsed:    nonNegative(end.Sub(start)),
		userTime:   nonNegative(userAfter - userBefore),
		kernelTime: nonNegative(kernelAfter - kernelBefore),
	}, nil
}

func nonNegative(d time.Duration) time.Duration {
	if d < 0 {
		return 0
	}
	return d
}
