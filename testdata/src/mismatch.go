//go:build mismatch

package demo

import "github.com/typenotes/typegate/arith"

// Broken does not compile. Build with -tags mismatch (or run typegate over
// it) to see the checker reject the argument.
func Broken() float64 {
	return arith.Square("two")
}
