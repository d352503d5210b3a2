package rules

import "fmt"

// invariant panics when the engine's internal bookkeeping is inconsistent.
// Checks are compiled in only with the fairydebug build tag.
func invariant(ok bool, format string, args ...any) {
	if debugChecks && !ok {
		panic(fmt.Sprintf("rules: "+format, args...))
	}
}
