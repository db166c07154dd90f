package font

import (
	"testing"
)

const sampleCMap = `/CIDInit /ProcSet findresource begin
12 dict begin
begincmap
1 begincodespacerange
<00> <FF>
endcodespacerange
3 beginbfchar
<01> <0048>
<02> <0065>
<03> <00E9>
endbfchar
1 beginbfrange
<41> <43> <0041>
endbfrange
endcmap
CMapName currentdict /CMap defineresource pop
end
end`

// TestParseToUnicode tests bfchar and bfrange parsing.
func TestParseToUnicode(t *testing.T) {
	mapping, err := ParseToUnicode([]byte(sampleCMap))
	if err != nil {
		t.Fatalf("ParseToUnicode failed: %v", err)
	}

	want := map[byte]string{
		0x01: "H",
		0x02: "e",
		0x03: "é",
		0x41: "A",
		0x42: "B",
		0x43: "C",
	}
	for code, text := range want {
		if got := mapping[code]; got != text {
			t.Errorf("code %#02x: expected %q, got %q", code, text, got)
		}
	}
	if len(mapping) != len(want) {
		t.Errorf("expected %d entries, got %d", len(want), len(mapping))
	}
}

// TestParseToUnicodeSurrogatePair tests UTF-16BE destinations beyond the BMP.
func TestParseToUnicodeSurrogatePair(t *testing.T) {
	cmap := "1 beginbfchar\n<05> <D83DDE00>\nendbfchar"
	mapping, err := ParseToUnicode([]byte(cmap))
	if err != nil {
		t.Fatalf("ParseToUnicode failed: %v", err)
	}
	if got := mapping[0x05]; got != "😀" {
		t.Errorf("expected emoji, got %q", got)
	}
}

// TestParseToUnicodeRejectsArrayRange tests the unsupported bfrange form.
func TestParseToUnicodeRejectsArrayRange(t *testing.T) {
	cmap := "1 beginbfrange\n<00> <02> [<0041> <0042> <0043>]\nendbfrange"
	if _, err := ParseToUnicode([]byte(cmap)); err == nil {
		t.Fatal("expected error for array destination, got nil")
	}
}

// TestDecodeRun tests decoding, width accumulation, and missing codes.
func TestDecodeRun(t *testing.T) {
	f := New("F1", "ArialMT")
	f.SetGlyph(0x01, "H", 722)
	f.SetGlyph(0x02, "i", 222)

	text, width, missing := f.DecodeRun([]byte{0x01, 0x02})
	if text != "Hi" {
		t.Errorf("expected 'Hi', got %q", text)
	}
	if width != 944 {
		t.Errorf("expected width 944, got %v", width)
	}
	if missing != 0 {
		t.Errorf("expected 0 missing, got %d", missing)
	}

	// An unmapped code decodes to the replacement character with zero width.
	text, width, missing = f.DecodeRun([]byte{0x01, 0x7F})
	if text != "H�" {
		t.Errorf("expected replacement character, got %q", text)
	}
	if width != 722 {
		t.Errorf("expected width 722, got %v", width)
	}
	if missing != 1 {
		t.Errorf("expected 1 missing, got %d", missing)
	}
}

// TestDecodeRunNormalizes tests that combining sequences compose.
func TestDecodeRunNormalizes(t *testing.T) {
	f := New("F1", "ArialMT")
	f.SetGlyph(0x01, "e", 444)
	f.SetGlyph(0x02, "́", 0) // combining acute accent

	text, _, _ := f.DecodeRun([]byte{0x01, 0x02})
	if text != "é" {
		t.Errorf("expected composed é, got %q", text)
	}
}

// TestClass tests bold detection from the base font name.
func TestClass(t *testing.T) {
	tests := []struct {
		baseFont string
		want     string
	}{
		{"Arial-BoldMT", ClassBold},
		{"ArialMT", ClassNormal},
		{"TimesNewRomanPS-BOLD", ClassBold},
		{"", ClassNormal},
	}
	for _, tt := range tests {
		f := New("F1", tt.baseFont)
		if got := f.Class(); got != tt.want {
			t.Errorf("%q: expected %s, got %s", tt.baseFont, tt.want, got)
		}
	}
}

// TestCheckReserved tests the sentinel collision audit.
func TestCheckReserved(t *testing.T) {
	f := New("F1", "ArialMT")
	f.SetGlyph(0x01, "a", 500)

	if err := f.CheckReserved("_\n[]|^"); err != nil {
		t.Errorf("expected no error, got %v", err)
	}

	f.SetGlyph(0x02, "^", 500)
	err := f.CheckReserved("_\n[]|^")
	if err == nil {
		t.Fatal("expected error for reserved character, got nil")
	}
	rcErr, ok := err.(*ReservedCharError)
	if !ok {
		t.Fatalf("expected *ReservedCharError, got %T", err)
	}
	if rcErr.Char != '^' {
		t.Errorf("expected char '^', got %q", rcErr.Char)
	}
}
