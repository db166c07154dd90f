package contentstream

import (
	"testing"
)

// TestMatrixMul tests that Mul applies the receiver first.
func TestMatrixMul(t *testing.T) {
	scale := Matrix{2, 0, 0, 2, 0, 0}
	translate := Translate(10, 20)

	// Scale then translate: origin lands on the translation.
	m := scale.Mul(translate)
	x, y := m.Origin()
	if x != 10 || y != 20 {
		t.Errorf("expected origin (10,20), got (%v,%v)", x, y)
	}

	// Translate then scale: the translation is scaled.
	m = translate.Mul(scale)
	x, y = m.Origin()
	if x != 20 || y != 40 {
		t.Errorf("expected origin (20,40), got (%v,%v)", x, y)
	}
}

// walkTrace collects the text matrix origin at each text-showing operation.
func walkTrace(t *testing.T, stream string) [][2]float64 {
	t.Helper()
	var origins [][2]float64
	w := NewWalker()
	err := w.WalkBytes([]byte(stream), func(op Operation, tm, ctm Matrix) error {
		if op.Operator == "Tj" {
			x, y := tm.Mul(ctm).Origin()
			origins = append(origins, [2]float64{x, y})
		}
		return nil
	})
	if err != nil {
		t.Fatalf("WalkBytes failed: %v", err)
	}
	return origins
}

// TestWalkerTmSetsOrigin tests that Tm positions text absolutely.
func TestWalkerTmSetsOrigin(t *testing.T) {
	origins := walkTrace(t, "BT 1 0 0 1 50 700 Tm (A) Tj ET")
	if len(origins) != 1 {
		t.Fatalf("expected 1 origin, got %d", len(origins))
	}
	if origins[0] != [2]float64{50, 700} {
		t.Errorf("expected (50,700), got %v", origins[0])
	}
}

// TestWalkerTdTranslatesLine tests that Td moves relative to the line start.
func TestWalkerTdTranslatesLine(t *testing.T) {
	origins := walkTrace(t, "BT 1 0 0 1 50 700 Tm (A) Tj 10 -12 Td (B) Tj 10 -12 Td (C) Tj ET")
	want := [][2]float64{{50, 700}, {60, 688}, {70, 676}}
	if len(origins) != len(want) {
		t.Fatalf("expected %d origins, got %d", len(want), len(origins))
	}
	for i := range want {
		if origins[i] != want[i] {
			t.Errorf("origin %d: expected %v, got %v", i, want[i], origins[i])
		}
	}
}

// TestWalkerTDSetsLeading tests that TD sets leading for later T* moves.
func TestWalkerTDSetsLeading(t *testing.T) {
	origins := walkTrace(t, "BT 0 14 TD (A) Tj T* (B) Tj ET")
	want := [][2]float64{{0, 14}, {0, 0}}
	if len(origins) != len(want) {
		t.Fatalf("expected %d origins, got %d", len(want), len(origins))
	}
	for i := range want {
		if origins[i] != want[i] {
			t.Errorf("origin %d: expected %v, got %v", i, want[i], origins[i])
		}
	}
}

// TestWalkerCTM tests that cm composes with the text matrix, and that q/Q
// save and restore it.
func TestWalkerCTM(t *testing.T) {
	stream := "q 1 0 0 1 100 200 cm BT 1 0 0 1 5 7 Tm (A) Tj ET Q BT 1 0 0 1 5 7 Tm (B) Tj ET"
	origins := walkTrace(t, stream)
	want := [][2]float64{{105, 207}, {5, 7}}
	if len(origins) != len(want) {
		t.Fatalf("expected %d origins, got %d", len(want), len(origins))
	}
	for i := range want {
		if origins[i] != want[i] {
			t.Errorf("origin %d: expected %v, got %v", i, want[i], origins[i])
		}
	}
}

// TestWalkerBTResetsTextMatrix tests that BT starts with identity matrices.
func TestWalkerBTResetsTextMatrix(t *testing.T) {
	origins := walkTrace(t, "BT 1 0 0 1 50 700 Tm (A) Tj ET BT (B) Tj ET")
	want := [][2]float64{{50, 700}, {0, 0}}
	for i := range want {
		if origins[i] != want[i] {
			t.Errorf("origin %d: expected %v, got %v", i, want[i], origins[i])
		}
	}
}
