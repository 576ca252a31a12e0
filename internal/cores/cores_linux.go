//go:build linux

package cores

import (
	"fmt"
	"runtime"

	"golang.org/x/sys/unix"
)

// maxCPUs is CPU_SETSIZE, the number of cores a unix.CPUSet can describe.
const maxCPUs = 1024

// discover reads the affinity mask of the process, so cores excluded by
// taskset or a cgroup cpuset are never used.
func discover() ([]ID, error) {
	var set unix.CPUSet
	if err := unix.SchedGetaffinity(0, &set); err != nil {
		// affinity is unavailable under some seccomp profiles
		return sequential(runtime.NumCPU()), nil
	}

	n := set.Count()
	ids := make([]ID, 0, n)
	for cpu := 0; cpu < maxCPUs && len(ids) < n; cpu++ {
		if set.IsSet(cpu) {
			ids = append(ids, ID(cpu))
		}
	}
	return ids, nil
}

// Pin locks the calling goroutine to its OS thread and binds that thread to
// the core. The thread stays locked: when the goroutine exits the runtime
// discards it instead of reusing a thread with a narrowed affinity mask.
func Pin(id ID) error {
	runtime.LockOSThread()

	var set unix.CPUSet
	set.Set(int(id))
	if err := unix.SchedSetaffinity(0, &set); err != nil {
		return fmt.Errorf("pin to core %d: %w", id, err)
	}
	return nil
}
