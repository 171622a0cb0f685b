package chainmap

import (
	"math/bits"
	"unsafe"
)

// Returns the next power of 2 for the given value `v`.
func NextPowerOf2(v uint32) uint32 {
	return uint32(1) << min(bits.Len32(v-1), 31)
}

// Estimates bucket capacity from the given memory size in bytes.
// Budgets one chain header per bucket plus the entry nodes a bucket
// holds on average right at the grow threshold (3/4 of a node).
// The result is rounded down to a power of two so the estimate never
// exceeds the budget; CapacityFromSize ignores per-value heap data
// behind pointers, strings and slices.
func CapacityFromSize[V any](size uintptr) int {
	perBucket := unsafe.Sizeof(chain[V]{}) + unsafe.Sizeof(node[V]{})*loadFactorNum/loadFactorDen

	numBuckets := size / perBucket
	if numBuckets == 0 {
		return 0
	}

	return 1 << (bits.Len(uint(numBuckets)) - 1)
}
