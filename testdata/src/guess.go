package demo

import "github.com/typenotes/typegate/arith/loose"

// Guess compiles and runs, and its result is NaN. This is the call
// typegate reports.
func Guess() any {
	return loose.Square("two")
}
