// Package loose is the "before" picture of the repository: a square
// function with no static types. Arguments are coerced to numbers the way
// a dynamically typed runtime would, so a bad call computes a silently
// wrong result instead of failing. The typed: directives on Square declare
// the contract the function was always meant to have; typegate reports
// every call site of an annotated function like this one.
package loose

import "github.com/typenotes/typegate/internal/coerce"

// Square returns value*value plus the sum of the offsets, coercing every
// argument to a number first. It never fails: a non-numeric argument
// degrades the result to NaN.
//
//typed:param value number
//typed:param offset number = 0
//typed:returns number
//typed:use github.com/typenotes/typegate/arith.Square
func Square(value any, offset ...any) any {
	v := coerce.Number(value)
	result := v * v
	for _, o := range offset {
		result += coerce.Number(o)
	}
	return result
}
