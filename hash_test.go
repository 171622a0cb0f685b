package chainmap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultHashFunc(t *testing.T) {
	tests := []struct {
		name string
		key  string
		want uint64
	}{
		{
			name: "empty",
			key:  "",
			want: 0,
		},
		{
			name: "single char",
			key:  "a",
			want: 31 * 97,
		},
		{
			name: "two chars",
			key:  "ab",
			want: 31 * (31*97 + 98),
		},
		{
			name: "order matters",
			key:  "ba",
			want: 31 * (31*98 + 97),
		},
		{
			name: "code points, not bytes",
			key:  "é", // U+00E9, two bytes in UTF-8
			want: 31 * 0xE9,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, DefaultHashFunc(tt.key))
		})
	}
}

func TestDefaultHashFunc_Deterministic(t *testing.T) {
	key := "some-longer-key-with-many-code-points-é-漢"

	assert.Equal(t, DefaultHashFunc(key), DefaultHashFunc(key))
}
