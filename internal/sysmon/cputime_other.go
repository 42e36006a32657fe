//go:build !unix

package sysmon

// ProcessCPUTime is not available on this platform and returns zero.
func ProcessCPUTime() CPUTime {
	return CPUTime{}
}
