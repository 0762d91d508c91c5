package text

import (
	"testing"
	"unicode/utf16"
)

// TestDetectDirection tests first-strong direction detection.
func TestDetectDirection(t *testing.T) {
	tests := []struct {
		name string
		text string
		def  Direction
		want Direction
	}{
		{"latin", "hello", DirectionRTL, DirectionLTR},
		{"hebrew after digits", "123 שלום", DirectionLTR, DirectionRTL},
		{"arabic", "مرحبا", DirectionLTR, DirectionRTL},
		{"neutral only", "123 !?", DirectionRTL, DirectionRTL},
		{"empty", "", DirectionLTR, DirectionLTR},
		{"supplementary letter", "\U0001D400x", DirectionRTL, DirectionLTR},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DetectDirection(utf16.Encode([]rune(tt.text)), tt.def)
			if got != tt.want {
				t.Errorf("DetectDirection(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}
