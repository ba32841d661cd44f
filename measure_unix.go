//go:build unix && !hurd

package main

import (
	"time"

	"golang.org/x/sys/unix"
)

type unixTimer struct{}

func init() {
	processTimer = unixTimer{}
}

func (unixTimer) Now() time.Time { return time.Now() }

// CPUTimes reads getrusage(RUSAGE_SELF). A failed read reports zero for both.
func (unixTimer) CPUTimes() (time.Duration, time.Duration) {
	var usage unix.Rusage
	if err := unix.Getrusage(unix.RUSAGE_SELF, &usage); err != nil {
		return 0, 0
	}
	return time.Duration(usage.Utime.Nano()), time.Duration(usage.Stime.Nano())
}
