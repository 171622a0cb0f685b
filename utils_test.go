package chainmap

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/require"
)

func TestNextPowerOf2(t *testing.T) {
	tests := []struct {
		name  string
		input uint32
		want  uint32
	}{
		{"one", 1, 1},
		{"two", 2, 2},
		{"three", 3, 4},
		{"fifteen", 15, 16},
		{"sixteen", 16, 16},
		{"seventeen", 17, 32},
		{"thousand", 1000, 1024},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, NextPowerOf2(tt.input))
		})
	}
}

func TestCapacityFromSize(t *testing.T) {
	t.Run("int", func(t *testing.T) {
		perBucket := unsafe.Sizeof(chain[int]{}) + unsafe.Sizeof(node[int]{})*3/4

		tests := []struct {
			name string
			size uintptr
			want int
		}{
			{"zero", 0, 0},
			{"less than one bucket", perBucket - 1, 0},
			{"exactly one bucket", perBucket, 1},
			{"sixteen buckets", perBucket * 16, 16},
			{"rounds down to power of two", perBucket * 20, 16},
			{"sixty four buckets", perBucket * 64, 64},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				require.Equal(t, tt.want, CapacityFromSize[int](tt.size))
			})
		}
	})

	t.Run("usage with New", func(t *testing.T) {
		perBucket := unsafe.Sizeof(chain[string]{}) + unsafe.Sizeof(node[string]{})*3/4

		capacity := CapacityFromSize[string](perBucket * 256)
		require.Equal(t, 256, capacity)

		m := New(WithCapacity[string](capacity))
		require.Equal(t, 256, m.Stats().Capacity)
	})
}
