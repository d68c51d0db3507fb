// Package demo exercises both square variants; run typegate on it to see
// the loose call in guess.go reported.
package demo

import "github.com/typenotes/typegate/arith"

func Area(side float64) float64 {
	return arith.Square(side)
}

func Biased(side, bias float64) float64 {
	return arith.Square(side, bias)
}
