package extract

import (
	"strings"
	"testing"

	"github.com/joshuagerstein/PAcourt-document-parser/contentstream"
	"github.com/joshuagerstein/PAcourt-document-parser/font"
)

// testFont builds a font mapping printable ASCII to itself, every glyph
// 500 units wide. At size 10 each glyph occupies 5 text space units.
func testFont(resource, baseFont string) *font.Font {
	f := font.New(resource, baseFont)
	for c := byte(' '); c <= '~'; c++ {
		f.SetGlyph(c, string(rune(c)), 500)
	}
	return f
}

func testFonts() map[string]*font.Font {
	return map[string]*font.Font{
		"F1": testFont("F1", "ArialMT"),
		"F2": testFont("F2", "Arial-BoldMT"),
	}
}

// interpret runs a content stream through the walker and interpreter.
func interpret(t *testing.T, stream string) ([]Segment, []string) {
	t.Helper()
	in := NewInterpreter(testFonts(), DefaultTolerances(), nil)
	if err := contentstream.NewWalker().WalkBytes([]byte(stream), in.Visit); err != nil {
		t.Fatalf("walk failed: %v", err)
	}
	return in.Segments(), in.Warnings()
}

// TestSimpleSegment tests origin capture and render format.
func TestSimpleSegment(t *testing.T) {
	segments, _ := interpret(t, "BT /F1 10 Tf 1 0 0 1 50 700 Tm (Hello) Tj ET")
	if len(segments) != 1 {
		t.Fatalf("expected 1 segment, got %d", len(segments))
	}
	s := segments[0]
	if s.Content != "Hello" {
		t.Errorf("expected 'Hello', got %q", s.Content)
	}
	if s.OriginX != 50 || s.OriginY != 700 {
		t.Errorf("expected origin (50,700), got (%v,%v)", s.OriginX, s.OriginY)
	}
	if got := s.Render(); got != "Hello[050.00,700.00,normal]\n" {
		t.Errorf("unexpected render: %q", got)
	}
}

// TestOriginFrozenAtFirstShow tests that later repositioning does not
// move a segment's reported origin.
func TestOriginFrozenAtFirstShow(t *testing.T) {
	segments, _ := interpret(t,
		"BT /F1 10 Tf 1 0 0 1 50 700 Tm (AB) Tj 30 0 Td (CD) Tj ET")
	if len(segments) != 1 {
		t.Fatalf("expected 1 segment, got %d", len(segments))
	}
	if segments[0].OriginX != 50 || segments[0].OriginY != 700 {
		t.Errorf("expected origin (50,700), got (%v,%v)",
			segments[0].OriginX, segments[0].OriginY)
	}
}

// TestFieldSeparator tests that a horizontal gap beyond tolerance becomes
// a field separator. AB occupies 10 units; a 30 unit move leaves a 20
// unit gap, well over the threshold of 3 at size 10.
func TestFieldSeparator(t *testing.T) {
	segments, _ := interpret(t,
		"BT /F1 10 Tf 1 0 0 1 50 700 Tm (AB) Tj 30 0 Td (CD) Tj ET")
	if len(segments) != 1 {
		t.Fatalf("expected 1 segment, got %d", len(segments))
	}
	if segments[0].Content != "AB"+string(FieldSep)+"CD" {
		t.Errorf("expected field separator, got %q", segments[0].Content)
	}
}

// TestContinuation tests that a move matching the glyph displacement
// joins the runs without a separator.
func TestContinuation(t *testing.T) {
	// AB occupies 10 units; moving 11 leaves a 1 unit gap, inside the
	// threshold of 3.
	segments, _ := interpret(t,
		"BT /F1 10 Tf 1 0 0 1 50 700 Tm (AB) Tj 11 0 Td (CD) Tj ET")
	if len(segments) != 1 {
		t.Fatalf("expected 1 segment, got %d", len(segments))
	}
	if segments[0].Content != "ABCD" {
		t.Errorf("expected plain continuation, got %q", segments[0].Content)
	}
}

// TestOverlapKeepsContent tests that a move back over shown glyphs joins
// the runs without a separator.
func TestOverlapKeepsContent(t *testing.T) {
	// AB occupies 10 units but the cursor only moves 5.
	segments, _ := interpret(t,
		"BT /F1 10 Tf 1 0 0 1 50 700 Tm (AB) Tj 5 0 Td (CD) Tj ET")
	if len(segments) != 1 {
		t.Fatalf("expected 1 segment, got %d", len(segments))
	}
	if segments[0].Content != "ABCD" {
		t.Errorf("expected joined content, got %q", segments[0].Content)
	}
}

// TestComesBefore tests that a leftward move on the same line marks the
// following text as logically earlier.
func TestComesBefore(t *testing.T) {
	segments, _ := interpret(t,
		"BT /F1 10 Tf 1 0 0 1 50 700 Tm (AB) Tj -20 0 Td (CD) Tj ET")
	if len(segments) != 1 {
		t.Fatalf("expected 1 segment, got %d", len(segments))
	}
	if segments[0].Content != "AB"+string(ComesBefore)+"CD" {
		t.Errorf("expected comes-before marker, got %q", segments[0].Content)
	}
}

// TestBoxWrap tests that a small descending move back to the left edge
// marks a wrapped line inside a text box, and that the matching return
// to the baseline ends the box with a separator.
func TestBoxWrap(t *testing.T) {
	segments, _ := interpret(t,
		"BT /F1 10 Tf 1 0 0 1 50 700 Tm (AB) Tj -0.1 -12 Td (CD) Tj 0.2 12 Td (EF) Tj ET")
	if len(segments) != 1 {
		t.Fatalf("expected 1 segment, got %d", len(segments))
	}
	want := "AB" + string(BoxWrap) + "CD" + string(FieldSep) + "EF"
	if segments[0].Content != want {
		t.Errorf("expected %q, got %q", want, segments[0].Content)
	}
}

// TestTrailingBoxWrapStripped tests that a segment ending on a wrap
// marker loses it when finalized.
func TestTrailingBoxWrapStripped(t *testing.T) {
	segments, _ := interpret(t,
		"BT /F1 10 Tf 1 0 0 1 50 700 Tm (AB) Tj 0 -12 Td ET")
	if len(segments) != 1 {
		t.Fatalf("expected 1 segment, got %d", len(segments))
	}
	if segments[0].Content != "AB" {
		t.Errorf("expected trailing wrap stripped, got %q", segments[0].Content)
	}
}

// TestNewLine tests that a vertical move beyond tolerance finalizes the
// segment, and the next segment gets its own origin.
func TestNewLine(t *testing.T) {
	segments, _ := interpret(t,
		"BT /F1 10 Tf 1 0 0 1 50 700 Tm (AB) Tj 5 -12 Td (CD) Tj ET")
	if len(segments) != 2 {
		t.Fatalf("expected 2 segments, got %d", len(segments))
	}
	if segments[0].Content != "AB" || segments[1].Content != "CD" {
		t.Errorf("unexpected contents: %q, %q", segments[0].Content, segments[1].Content)
	}
	if segments[1].OriginX != 55 || segments[1].OriginY != 688 {
		t.Errorf("expected second origin (55,688), got (%v,%v)",
			segments[1].OriginX, segments[1].OriginY)
	}
}

// TestFontChangeFinalizes tests that Tf ends the working segment and the
// new segment carries the new font's class.
func TestFontChangeFinalizes(t *testing.T) {
	segments, _ := interpret(t,
		"BT /F1 10 Tf 1 0 0 1 50 700 Tm (AB) Tj /F2 10 Tf (CD) Tj ET")
	if len(segments) != 2 {
		t.Fatalf("expected 2 segments, got %d", len(segments))
	}
	if segments[0].FontClass != font.ClassNormal {
		t.Errorf("expected normal, got %s", segments[0].FontClass)
	}
	if segments[1].FontClass != font.ClassBold {
		t.Errorf("expected bold, got %s", segments[1].FontClass)
	}
}

// TestTJKerning tests that TJ numeric adjustments count toward glyph
// displacement rather than producing separators.
func TestTJKerning(t *testing.T) {
	// A occupies 5 units, kerning adds 1.2, B adds 5: 11.2 total. A move
	// of 12 leaves a 0.8 unit gap, inside the threshold.
	segments, _ := interpret(t,
		"BT /F1 10 Tf 1 0 0 1 50 700 Tm [(A) -120 (B)] TJ 12 0 Td (C) Tj ET")
	if len(segments) != 1 {
		t.Fatalf("expected 1 segment, got %d", len(segments))
	}
	if segments[0].Content != "ABC" {
		t.Errorf("expected 'ABC', got %q", segments[0].Content)
	}
}

// TestStateStack tests that q/Q save and restore the text state and that
// Q finalizes the working segment.
func TestStateStack(t *testing.T) {
	segments, _ := interpret(t,
		"BT /F1 10 Tf 1 0 0 1 50 700 Tm (AB) Tj q /F2 10 Tf (CD) Tj Q (EF) Tj ET")
	if len(segments) != 3 {
		t.Fatalf("expected 3 segments, got %d", len(segments))
	}
	classes := []string{font.ClassNormal, font.ClassBold, font.ClassNormal}
	for i, want := range classes {
		if segments[i].FontClass != want {
			t.Errorf("segment %d: expected %s, got %s", i, want, segments[i].FontClass)
		}
	}
}

// TestRestoreWithEmptyStackWarns tests the warning for an unbalanced Q.
func TestRestoreWithEmptyStackWarns(t *testing.T) {
	_, warnings := interpret(t, "BT /F1 10 Tf (AB) Tj Q ET")
	found := false
	for _, w := range warnings {
		if strings.Contains(w, "empty stack") {
			found = true
		}
	}
	if !found {
		t.Errorf("expected empty stack warning, got %v", warnings)
	}
}

// TestUnknownFontWarns tests that showing text without a known font
// drops the run with a warning.
func TestUnknownFontWarns(t *testing.T) {
	segments, warnings := interpret(t, "BT /F9 10 Tf 1 0 0 1 50 700 Tm (AB) Tj ET")
	if len(segments) != 0 {
		t.Fatalf("expected no segments, got %d", len(segments))
	}
	found := false
	for _, w := range warnings {
		if strings.Contains(w, "unknown font") {
			found = true
		}
	}
	if !found {
		t.Errorf("expected unknown font warning, got %v", warnings)
	}
}

// TestTooManyFontsWarns tests the page font count diagnostic.
func TestTooManyFontsWarns(t *testing.T) {
	fonts := testFonts()
	fonts["F3"] = testFont("F3", "CourierNewPSMT")
	in := NewInterpreter(fonts, DefaultTolerances(), nil)
	if len(in.Warnings()) == 0 {
		t.Error("expected a warning for more than two fonts")
	}
}

// TestRenderConcatenates tests multi-segment rendering.
func TestRenderConcatenates(t *testing.T) {
	segments, _ := interpret(t,
		"BT /F1 10 Tf 1 0 0 1 50 700 Tm (AB) Tj 0 -12 Td (CD) Tj ET")
	got := Render(segments)
	want := "AB[050.00,700.00,normal]\nCD[050.00,688.00,normal]\n"
	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}
