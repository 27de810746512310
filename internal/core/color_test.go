package core

import "testing"

func TestBlockColor(t *testing.T) {
	tests := []struct {
		value    int
		expected Color
	}{
		{0, ColorDefault},
		{1, ColorCyan},
		{4, ColorYellow},
		{7, ColorMagenta},
		{8, ColorDefault},
		{-1, ColorDefault},
	}

	for _, tc := range tests {
		if got := BlockColor(tc.value); got != tc.expected {
			t.Errorf("BlockColor(%d) = %d, expected %d", tc.value, got, tc.expected)
		}
	}
}
