package stats

import "math"

// totalCmp performs a three-way comparison of a and b under the IEEE 754
// totalOrder predicate, so NaN and signed zero still branch
// deterministically. Both bit patterns are mapped sign-magnitude to
// two's complement, after which plain integer comparison applies.
func totalCmp(a, b float64) int {
	x := int64(math.Float64bits(a))
	y := int64(math.Float64bits(b))
	x ^= int64(uint64(x>>63) >> 1)
	y ^= int64(uint64(y>>63) >> 1)

	switch {
	case x < y:
		return -1
	case x > y:
		return 1
	}
	return 0
}

// searchBoundary locates where f crosses key on the inclusive range
// [low, high], assuming f is monotonically non-decreasing there; callers
// negate f to search a non-increasing tail. The result is the largest
// index whose value does not exceed key, saturating at low-1 -> 0 when
// even f(low) overshoots. Monotonicity is the caller's responsibility and
// is not checked.
func searchBoundary(f func(uint64) float64, key float64, low, high uint64) uint64 {
	for low < high {
		mid := low + (high-low)/2

		switch totalCmp(f(mid), key) {
		case -1:
			low = mid + 1
		case 0:
			return mid
		default:
			if mid == 0 {
				return 0
			}
			high = mid - 1
		}
	}

	// f is a step function over a real-valued key, so the loop can end
	// without an exact hit; the crossing may sit strictly between two
	// integers.
	if f(low) <= key {
		return low
	}
	if low == 0 {
		return 0
	}
	return low - 1
}
