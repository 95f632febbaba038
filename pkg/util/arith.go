// Package util holds leaf helpers shared by the interpreter nodes'
// surrounding code.
package util

import "errors"

// ErrOverflow is the distinguished signal for a result that does not fit
// the target width. It is a singleton so the fast numeric path can check
// it with a pointer comparison and fall back to exact arithmetic; it
// must never escape as a language-level exception.
var ErrOverflow = errors.New("overflow")

// AddExact returns x+y or ErrOverflow if the sum does not fit int32.
func AddExact(x, y int32) (int32, error) {
	r := x + y
	if ((x ^ r) & (y ^ r)) < 0 {
		return 0, ErrOverflow
	}
	return r, nil
}

// AddExact64 returns x+y or ErrOverflow if the sum does not fit int64.
func AddExact64(x, y int64) (int64, error) {
	r := x + y
	if ((x ^ r) & (y ^ r)) < 0 {
		return 0, ErrOverflow
	}
	return r, nil
}

// SubtractExact returns x-y or ErrOverflow if the difference does not
// fit int32.
func SubtractExact(x, y int32) (int32, error) {
	r := x - y
	if ((x ^ y) & (x ^ r)) < 0 {
		return 0, ErrOverflow
	}
	return r, nil
}

// SubtractExact64 returns x-y or ErrOverflow if the difference does not
// fit int64.
func SubtractExact64(x, y int64) (int64, error) {
	r := x - y
	if ((x ^ y) & (x ^ r)) < 0 {
		return 0, ErrOverflow
	}
	return r, nil
}

// MultiplyExact returns x*y or ErrOverflow if the product does not fit
// int32.
func MultiplyExact(x, y int32) (int32, error) {
	r := int64(x) * int64(y)
	if int64(int32(r)) != r {
		return 0, ErrOverflow
	}
	return int32(r), nil
}

// ToIntExact narrows x to int32, or ErrOverflow if the value does not
// fit.
func ToIntExact(x int64) (int32, error) {
	r := int32(x)
	if int64(r) != x {
		return 0, ErrOverflow
	}
	return r, nil
}
