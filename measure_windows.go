//go:build windows

package main

import (
	"time"

	"golang.org/x/sys/windows"
)

// FILETIME values count 100ns ticks.
const HundredNSTicks = 100

type windowsTimer struct{}

func init() {
	processTimer = windowsTimer{}
}

func (windowsTimer) Now() time.Time { return time.Now() }

func (windowsTimer) CPUTimes() (time.Duration, time.Duration) {
	var creation, exit, kernel, user windows.Filetime
	if err := windows.GetProcessTimes(windows.CurrentProcess(), &creation, &exit, &kernel, &user); err != nil {
		return 0, 0
	}
	return filetimeDuration(user), filetimeDuration(kernel)
}

// filetimeDuration treats ft as an interval rather than an absolute date, so
// Filetime.Nanoseconds (which rebases onto the Unix epoch) does not apply.
func filetimeDuration(ft windows.Filetime) time.Duration {
	ticks := int64(ft.HighDateTime)<<32 | int64(ft.LowDateTime)
	return time.Duration(ticks * HundredNSTicks)
}
