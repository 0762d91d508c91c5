package emoji

import "testing"

func TestIsSingleUnit(t *testing.T) {
	tests := []struct {
		name string
		r    rune
		want bool
	}{
		{"watch", 0x231A, true},
		{"high voltage", 0x26A1, true},
		{"sparkles", 0x2728, true},
		{"star", 0x2B50, true},
		{"red heart is text presentation", 0x2764, false},
		{"copyright is text presentation", 0x00A9, false},
		{"grinning face needs a surrogate pair", 0x1F600, false},
		{"CJK ideograph", 0x4E00, false},
		{"letter", 'x', false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsSingleUnit(tt.r); got != tt.want {
				t.Errorf("IsSingleUnit(%U) = %v, want %v", tt.r, got, tt.want)
			}
		})
	}
}
