// Package cores discovers the processor cores available to the process and
// pins worker threads to them.
package cores

import (
	"errors"
	"fmt"
)

// ID identifies a processor core as reported by the platform.
type ID int

var (
	ErrCoreDiscovery  = errors.New("could not discover processor cores")
	ErrPinUnsupported = errors.New("core pinning is not supported on this platform")
)

// Enumerate returns the cores workers should run on. A positive limit keeps
// only the first limit cores in platform order; limit <= 0 keeps them all.
func Enumerate(limit int) ([]ID, error) {
	return enumerate(discover, limit)
}

func enumerate(discoverFn func() ([]ID, error), limit int) ([]ID, error) {
	ids, err := discoverFn()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCoreDiscovery, err)
	}
	if len(ids) == 0 {
		return nil, ErrCoreDiscovery
	}
	return Limit(ids, limit), nil
}

// Limit keeps the ids whose position is below limit. It never adds ids.
func Limit(ids []ID, limit int) []ID {
	if limit <= 0 || limit >= len(ids) {
		return ids
	}
	return ids[:limit:limit]
}

func sequential(n int) []ID {
	ids := make([]ID, n)
	for i := range ids {
		ids[i] = ID(i)
	}
	return ids
}
