//go:build !linux

package cores

import (
	"fmt"
	"runtime"
)

func discover() ([]ID, error) {
	return sequential(runtime.NumCPU()), nil
}

// Pin locks the calling goroutine to its OS thread. Binding the thread to a
// core is only implemented on Linux.
func Pin(id ID) error {
	runtime.LockOSThread()
	return fmt.Errorf("pin to core %d: %w", id, ErrPinUnsupported)
}
