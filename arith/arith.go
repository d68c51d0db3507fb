// Package arith provides the typed square utility.
//
// This is the "after" picture of the repository: the parameter types are
// constrained to numbers by the type system, so a call like Square("two")
// does not compile. Compare with the loosely typed variant in arith/loose.
package arith

// Number is the set of types Square accepts.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64
}

// Square returns value*value plus the sum of the offsets.
// With no offset it is the plain square of value.
func Square[N Number](value N, offset ...N) N {
	result := value * value
	for _, o := range offset {
		result += o
	}
	return result
}
