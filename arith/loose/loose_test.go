package loose

import (
	"math"
	"testing"
)

func TestSquare(t *testing.T) {
	type args struct {
		value  any
		offset []any
	}
	tests := []struct {
		name string
		args args
		want float64
	}{
		{"no_offset", args{2, nil}, 4},
		{"offset", args{2, []any{10}}, 14},
		{"zero", args{0, nil}, 0},
		{"negative", args{-3, nil}, 9},
		{"negative_offset", args{-3, []any{1}}, 10},
		{"numeric_string", args{"2", nil}, 4},
		{"mixed", args{"2", []any{10}}, 14},
		{"bool_offset", args{2, []any{true}}, 5},
		{"nil_value", args{nil, nil}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Square(tt.args.value, tt.args.offset...); got != any(tt.want) {
				t.Errorf("Square() = %v, want %v", got, tt.want)
			}
		})
	}
}

// The defect the annotations exist to surface: a non-numeric argument is
// not rejected, the result just silently stops being a useful number.
func TestSquare_nonNumeric(t *testing.T) {
	got := Square("two")
	f, ok := got.(float64)
	if !ok {
		t.Fatalf("Square() = %T, want float64", got)
	}
	if !math.IsNaN(f) {
		t.Errorf("Square() = %v, want NaN", f)
	}
}

func TestSquare_pure(t *testing.T) {
	for range 3 {
		if got := Square(7, 2); got != any(51.0) {
			t.Fatal(got)
		}
	}
}
