//go:build (!unix && !windows) || hurd

package main

import "time"

// wallTimer serves platforms without a process accounting call; CPU times
// read as zero there.
type wallTimer struct{}

func init() {
	processTimer = wallTimer{}
}

func (wallTimer) Now() time.Time { return time.Now() }

func (wallTimer) CPUTimes() (time.Duration, time.Duration) { return 0, 0 }
