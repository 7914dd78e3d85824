//go:build collidedebug

package collision

import "fmt"

// assertf panics when cond is false. Enabled with -tags collidedebug.
func assertf(cond bool, format string, args ...any) {
	if !cond {
		panic(fmt.Sprintf("collision: "+format, args...))
	}
}
