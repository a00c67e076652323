package wordcount

import "testing"

func TestCount(t *testing.T) {
	tests := []struct {
		text      string
		words     int
		graphemes int
	}{
		{"", 0, 0},
		{"hello world", 2, 11},
		{"  one,two;  three\n", 3, 18},
		{"can't stop", 2, 10},
		{"aé x", 2, 4},
		{"--- ...", 0, 7},
	}
	for _, tt := range tests {
		s := Count(tt.text)
		if s.Words != tt.words || s.Graphemes != tt.graphemes || s.Bytes != len(tt.text) {
			t.Errorf("Count(%q): expected %d words %d graphemes, got %+v", tt.text, tt.words, tt.graphemes, s)
		}
	}
}
