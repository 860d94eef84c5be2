package core

import (
	"golang.org/x/exp/constraints"
)

// Series is an ordered sequence of values indexed by position
type Series[T constraints.Ordered] []T

// Values returns the underlying slice of values
func (s Series[T]) Values() []T {
	return s
}

// Length returns the number of values in the series
func (s Series[T]) Length() int {
	return len(s)
}

// Last returns the value at a specified position from the end
// position 0 is the last value, 1 is the second-to-last, etc.
func (s Series[T]) Last(position int) T {
	return s[len(s)-1-position]
}

// LastValues returns a slice with the last 'size' values
// If size exceeds the length, returns the entire series
func (s Series[T]) LastValues(size int) Series[T] {
	if l := len(s); l > size {
		return s[l-size:]
	}
	return s
}

// Window returns the sub-series covering the half-open range [begin, end),
// clamped to the series bounds
func (s Series[T]) Window(begin, end int) Series[T] {
	if begin < 0 {
		begin = 0
	}
	if end > len(s) {
		end = len(s)
	}
	if begin >= end {
		return nil
	}
	return s[begin:end]
}

// MinMax returns the smallest and largest values of the series
// ok is false when the series is empty
func (s Series[T]) MinMax() (low, high T, ok bool) {
	if len(s) == 0 {
		return low, high, false
	}
	low, high = s[0], s[0]
	for _, v := range s[1:] {
		if v < low {
			low = v
		}
		if v > high {
			high = v
		}
	}
	return low, high, true
}
