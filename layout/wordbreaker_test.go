package layout

import "testing"

// collectBoundaries returns every boundary of s.
func collectBoundaries(s string) []int {
	var w WordBreaker
	u := units(s)
	w.SetText(NewBuffer(u, 0, len(u)))
	var out []int
	for b := w.Next(); b >= 0; b = w.Next() {
		out = append(out, b)
	}
	return out
}

// TestWordBreakerBoundaries tests boundary placement.
func TestWordBreakerBoundaries(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []int
	}{
		{"words", "aa bb cc", []int{2, 3, 5, 6, 8}},
		{"multiple spaces", "a   b", []int{1, 4, 5}},
		{"punctuation", "hi, you", []int{2, 3, 4, 7}},
		{"cjk", "中文字", []int{1, 2, 3}},
		{"surrogate pair", "a😀 b", []int{3, 4, 5}},
		{"leading space", " a", []int{1, 2}},
		{"empty", "", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := collectBoundaries(tt.text)
			if len(got) != len(tt.want) {
				t.Fatalf("boundaries = %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Fatalf("boundaries = %v, want %v", got, tt.want)
				}
			}
		})
	}
}

// TestWordBreakerWordTrim tests that WordStart and WordEnd skip line-end
// whitespace.
func TestWordBreakerWordTrim(t *testing.T) {
	var w WordBreaker
	u := units("ab  cd")
	w.SetText(NewBuffer(u, 0, len(u)))

	w.Next() // "ab"
	if w.WordStart() != 0 || w.WordEnd() != 2 {
		t.Errorf("word 1 = [%d, %d), want [0, 2)", w.WordStart(), w.WordEnd())
	}
	w.Next() // "  "
	if w.WordStart() != 4 || w.WordEnd() != 2 {
		t.Errorf("space token = [%d, %d), want start 4 end 2", w.WordStart(), w.WordEnd())
	}
	w.Next() // "cd"
	if w.WordStart() != 4 || w.WordEnd() != 6 {
		t.Errorf("word 2 = [%d, %d), want [4, 6)", w.WordStart(), w.WordEnd())
	}
	if w.BreakBadness() != 0 {
		t.Errorf("BreakBadness() = %d, want 0", w.BreakBadness())
	}
}

// TestWordBreakerExhausted tests behavior past the end.
func TestWordBreakerExhausted(t *testing.T) {
	var w WordBreaker
	u := units("ab")
	w.SetText(NewBuffer(u, 0, len(u)))
	if got := w.Next(); got != 2 {
		t.Fatalf("Next() = %d, want 2", got)
	}
	for i := 0; i < 3; i++ {
		if got := w.Next(); got != -1 {
			t.Errorf("Next() after end = %d, want -1", got)
		}
	}
	if got := w.Current(); got != -1 {
		t.Errorf("Current() = %d, want -1", got)
	}
}

// TestWordBreakerWindow tests boundaries relative to a sub-window.
func TestWordBreakerWindow(t *testing.T) {
	var w WordBreaker
	u := units("xx ab cd")
	w.SetText(NewBuffer(u, 3, 5))
	var got []int
	for b := w.Next(); b >= 0; b = w.Next() {
		got = append(got, b)
	}
	want := []int{2, 3, 5}
	if len(got) != len(want) || got[0] != 2 || got[1] != 3 || got[2] != 5 {
		t.Errorf("boundaries = %v, want %v", got, want)
	}
}
