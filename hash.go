package chainmap

// HashFunc maps a string key to a 64-bit hash. The table reduces the
// result to a bucket index with a power-of-two mask.
type HashFunc func(key string) uint64

// DefaultHashFunc folds every code point of the key into a polynomial
// accumulator: acc = 31 * (acc + codePoint), wrapping in uint64.
// Deterministic across runs, so bucket placement is reproducible.
func DefaultHashFunc(key string) uint64 {
	var acc uint64
	for _, cp := range key {
		acc = 31 * (acc + uint64(cp))
	}

	return acc
}
