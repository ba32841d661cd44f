package main

import "time"

type timer interface {
	// Now returns an instant carrying a monotonic clock reading.
	Now() time.Time
	// CPUTimes returns the user and kernel CPU time consumed by this process so far.
	CPUTimes() (user, kernel time.Duration)
}

var processTimer timer
