package tether

import (
	"fmt"
	"os"
)

// globalDebug enables stderr diagnostics for conditions that are silently
// tolerated in release mode. Set via SetDebugMode.
var globalDebug bool

// SetDebugMode enables or disables debug diagnostics. When enabled, calls
// with an end index outside {0, 1} print a warning to stderr before the
// usual silent no-op, which makes a misbehaving caller easy to spot without
// changing the tolerant release behavior.
func SetDebugMode(enabled bool) {
	globalDebug = enabled
}

// validEnd reports whether end is a valid end index. In debug mode an
// invalid index also prints a warning naming the operation.
func validEnd(end int, op string) bool {
	if end == 0 || end == 1 {
		return true
	}
	if globalDebug {
		_, _ = fmt.Fprintf(os.Stderr, "[tether] warning: %s called with end index %d (want 0 or 1); ignored\n", op, end)
	}
	return false
}

// debugWarnDegenerate notes a correspondence comparison between coincident
// points. The tie-break (no swap) is deterministic, so this is informational
// only.
func debugWarnDegenerate(op string) {
	if !globalDebug {
		return
	}
	_, _ = fmt.Fprintf(os.Stderr, "[tether] warning: %s compared coincident points; keeping original end assignment\n", op)
}
