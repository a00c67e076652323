package buffer

import (
	"math/rand"
	"strings"
	"testing"
)

func TestLineCount(t *testing.T) {
	tests := []struct {
		text string
		want int
	}{
		{"", 1},
		{"abc", 1},
		{"abc\n", 2},
		{"abc\ndef", 2},
		{"a\r\nb\r\n", 3},
		{"\n\n", 3},
	}
	for _, tt := range tests {
		if got := FromString(tt.text).LineCount(); got != tt.want {
			t.Errorf("LineCount(%q) = %d, want %d", tt.text, got, tt.want)
		}
	}
}

func TestLineLengths(t *testing.T) {
	b := FromString("ab\r\ncde\nf")
	cases := []struct {
		row, raw, bare int
		line           string
	}{
		{0, 4, 2, "ab"},
		{1, 4, 3, "cde"},
		{2, 1, 1, "f"},
	}
	for _, c := range cases {
		if got := b.LineLen(c.row); got != c.raw {
			t.Errorf("LineLen(%d) = %d, want %d", c.row, got, c.raw)
		}
		if got := b.LineLenWithoutNewline(c.row); got != c.bare {
			t.Errorf("LineLenWithoutNewline(%d) = %d, want %d", c.row, got, c.bare)
		}
		if got := b.Line(c.row); got != c.line {
			t.Errorf("Line(%d) = %q, want %q", c.row, got, c.line)
		}
	}
}

func TestByteToPosTrailingNewline(t *testing.T) {
	b := FromString("abc\n")
	row, col := b.ByteToPos(4)
	if row != 1 || col != 0 {
		t.Errorf("expected end of buffer to map to synthetic line 1:0, got %d:%d", row, col)
	}
	row, col = b.ByteToPos(3)
	if row != 0 || col != 3 {
		t.Errorf("expected offset 3 to map to 0:3, got %d:%d", row, col)
	}
}

func TestByteToPosInsideCRLF(t *testing.T) {
	b := FromString("ab\r\ncd")
	row, col := b.ByteToPos(3)
	if row != 0 || col != 2 {
		t.Errorf("offset between \\r and \\n should clamp to line end, got %d:%d", row, col)
	}
}

func TestPosToByteClamps(t *testing.T) {
	b := FromString("ab\ncdef")
	if got := b.PosToByte(0, 99); got != 2 {
		t.Errorf("column past end should clamp to 2, got %d", got)
	}
	if got := b.PosToByte(99, 1); got != 4 {
		t.Errorf("row past end should clamp to last row, got %d", got)
	}
	if got := b.PosToByte(-1, -1); got != 0 {
		t.Errorf("negative position should clamp to 0, got %d", got)
	}
}

func TestInsertDeleteClamp(t *testing.T) {
	b := FromString("hello")
	if at := b.Insert(99, "!"); at != 5 {
		t.Errorf("insert past end should clamp to 5, got %d", at)
	}
	if b.String() != "hello!" {
		t.Fatalf("unexpected text %q", b.String())
	}
	if got := b.Delete(3, 1); got != "el" {
		t.Errorf("reversed delete should swap bounds, removed %q", got)
	}
	if got := b.Delete(-5, 1); got != "h" {
		t.Errorf("negative start should clamp, removed %q", got)
	}
	if b.String() != "lo!" {
		t.Errorf("unexpected text %q", b.String())
	}
	if got := b.Delete(2, 2); got != "" {
		t.Errorf("empty delete should remove nothing, got %q", got)
	}
}

func TestRevisionBumps(t *testing.T) {
	b := New()
	r0 := b.Revision()
	b.Insert(0, "")
	if b.Revision() != r0 {
		t.Error("empty insert should not bump revision")
	}
	b.Insert(0, "x")
	if b.Revision() == r0 {
		t.Error("insert should bump revision")
	}
}

func TestLargeRandomEditsMatchString(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	b := New()
	var ref string
	alphabet := []string{"a", "bc", "\n", "\r\n", "é", "日本", "xyz\nuvw"}

	for i := 0; i < 3000; i++ {
		if len(ref) > 0 && rng.Intn(3) == 0 {
			start := rng.Intn(len(ref) + 1)
			end := start + rng.Intn(8)
			if end > len(ref) {
				end = len(ref)
			}
			got := b.Delete(start, end)
			if got != ref[start:end] {
				t.Fatalf("step %d: deleted %q, want %q", i, got, ref[start:end])
			}
			ref = ref[:start] + ref[end:]
			continue
		}
		at := rng.Intn(len(ref) + 1)
		s := strings.Repeat(alphabet[rng.Intn(len(alphabet))], 1+rng.Intn(40))
		b.Insert(at, s)
		ref = ref[:at] + s + ref[at:]
	}

	if b.String() != ref {
		t.Fatal("rope content diverged from reference string")
	}
	if want := strings.Count(ref, "\n") + 1; b.LineCount() != want {
		t.Errorf("LineCount = %d, want %d", b.LineCount(), want)
	}
	lines := strings.Split(ref, "\n")
	for row, line := range lines {
		if row < len(lines)-1 {
			line = strings.TrimSuffix(line, "\r")
		}
		if got := b.Line(row); got != line {
			t.Fatalf("Line(%d) = %q, want %q", row, got, line)
		}
	}
	for i := 0; i <= len(ref); i += 97 {
		row, _ := b.ByteToPos(i)
		if want := strings.Count(ref[:i], "\n"); row != want {
			t.Fatalf("ByteToPos(%d) row = %d, want %d", i, row, want)
		}
	}
}
