//go:build amd64

package bitops

import "golang.org/x/sys/cpu"

func init() {
	if cpu.X86.HasBMI1 {
		ClearLowest = clearLowestTZ
	}
}
