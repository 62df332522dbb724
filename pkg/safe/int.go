// Package safe provides helpers for numeric conversions with range checks.
package safe

import (
	"fmt"
	"math"
)

// Integer is the set of integer kinds accepted by the converters.
type Integer interface {
	~int | ~int32 | ~int64 | ~uint | ~uint32 | ~uint64
}

func magnitude[T Integer](v T) (negative bool, mag uint64) {
	if v < 0 {
		return true, 0
	}
	return false, uint64(v)
}

// Uint32 converts v to uint32, rejecting negatives and overflow.
func Uint32[T Integer](v T) (uint32, error) {
	neg, mag := magnitude(v)
	if neg || mag > math.MaxUint32 {
		return 0, fmt.Errorf("value %d out of uint32 range", v)
	}
	return uint32(mag), nil
}

// Uint64 converts v to uint64, rejecting negatives.
func Uint64[T Integer](v T) (uint64, error) {
	neg, mag := magnitude(v)
	if neg {
		return 0, fmt.Errorf("value %d out of uint64 range", v)
	}
	return mag, nil
}

// Len converts a decoded element count to int for slicing and allocation.
func Len[T Integer](v T) (int, error) {
	neg, mag := magnitude(v)
	if neg || mag > math.MaxInt32 {
		return 0, fmt.Errorf("length %d out of range", v)
	}
	return int(mag), nil
}
