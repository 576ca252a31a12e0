package worker

import (
	"strings"

	"github.com/screa/sui-address-grinder/pkg/types"
)

// Matches reports whether address satisfies the pattern. A single leading
// "0x" is ignored; with IgnoreCase both sides are compared lower-cased.
// An empty pattern matches every address.
func Matches(address string, p types.Pattern) bool {
	addr := strings.TrimPrefix(address, "0x")
	prefix, suffix := p.StartsWith, p.EndsWith

	if p.IgnoreCase {
		addr = strings.ToLower(addr)
		prefix = strings.ToLower(prefix)
		suffix = strings.ToLower(suffix)
	}

	if prefix != "" && !strings.HasPrefix(addr, prefix) {
		return false
	}
	if suffix != "" && !strings.HasSuffix(addr, suffix) {
		return false
	}
	return true
}
