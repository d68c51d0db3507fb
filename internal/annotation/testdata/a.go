package a

// Square returns value*value plus the sum of the offsets.
//
//typed:param value number
//typed:param offset number = 0
//typed:returns number
//typed:use example.com/demo/arith.Square
func Square(value any, offset ...any) any { return nil }

// Plain carries no directives at all.
func Plain() {}

// Cube has a directive but no replacement.
//
//typed:param value number
func Cube(value any) any { return nil }
