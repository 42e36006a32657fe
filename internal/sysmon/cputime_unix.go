//go:build unix

package sysmon

import (
	"time"

	"golang.org/x/sys/unix"
)

// ProcessCPUTime returns the CPU time consumed so far by the process.
// It returns a zero value if getrusage fails.
func ProcessCPUTime() CPUTime {
	var ru unix.Rusage
	if err := unix.Getrusage(unix.RUSAGE_SELF, &ru); err != nil {
		return CPUTime{}
	}
	return CPUTime{
		User:   time.Duration(ru.Utime.Nano()),
		System: time.Duration(ru.Stime.Nano()),
	}
}
