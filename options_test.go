package pacourt

import (
	"testing"

	"github.com/joshuagerstein/PAcourt-document-parser/extract"
)

// TestParseOptionsDefaults tests that absent fields keep their defaults.
func TestParseOptionsDefaults(t *testing.T) {
	opts, err := ParseOptions([]byte("tolerances:\n  y: 2.5\n"))
	if err != nil {
		t.Fatalf("ParseOptions failed: %v", err)
	}
	def := extract.DefaultTolerances()
	if opts.tolerances.Y != 2.5 {
		t.Errorf("expected Y=2.5, got %v", opts.tolerances.Y)
	}
	if opts.tolerances.X != def.X {
		t.Errorf("expected default X=%v, got %v", def.X, opts.tolerances.X)
	}
	if opts.tolerances.OverlapSlack != def.OverlapSlack {
		t.Errorf("expected default OverlapSlack=%v, got %v", def.OverlapSlack, opts.tolerances.OverlapSlack)
	}
}

// TestParseOptionsFull tests a fully specified options file.
func TestParseOptionsFull(t *testing.T) {
	opts, err := ParseOptions([]byte("tolerances:\n  x: 0.4\n  y: 1.2\n  overlap_slack: -0.2\n"))
	if err != nil {
		t.Fatalf("ParseOptions failed: %v", err)
	}
	want := extract.Tolerances{X: 0.4, Y: 1.2, OverlapSlack: -0.2}
	if opts.tolerances != want {
		t.Errorf("expected %+v, got %+v", want, opts.tolerances)
	}
}

// TestParseOptionsInvalid tests that malformed YAML is an error.
func TestParseOptionsInvalid(t *testing.T) {
	if _, err := ParseOptions([]byte("tolerances: [not a map")); err == nil {
		t.Error("expected error for malformed YAML")
	}
}

// TestExtractorConfigReturnsNewInstance tests that configuration methods
// do not mutate the receiver.
func TestExtractorConfigReturnsNewInstance(t *testing.T) {
	base := Open("does-not-exist.pdf")
	tuned := base.Tolerances(extract.Tolerances{X: 9, Y: 9, OverlapSlack: -9})

	if tuned == base {
		t.Fatal("Tolerances returned the same instance")
	}
	if base.options.tolerances != extract.DefaultTolerances() {
		t.Errorf("base options mutated: %+v", base.options.tolerances)
	}
	if tuned.options.tolerances.X != 9 {
		t.Errorf("expected configured X=9, got %v", tuned.options.tolerances.X)
	}
}

// TestOpenMissingFile tests the error path of a terminal operation on a
// nonexistent file.
func TestOpenMissingFile(t *testing.T) {
	_, warnings, err := Open("does-not-exist.pdf").Record()
	if err == nil {
		t.Fatal("expected error for missing file")
	}
	if len(warnings) != 0 {
		t.Errorf("expected no warnings, got %v", warnings)
	}
}

// TestWarningString tests page attribution in warning formatting.
func TestWarningString(t *testing.T) {
	w := Warning{Stage: "extract", Page: 3, Message: "glyph run shown with unknown font"}
	got := w.String()
	want := "extract (page 3): glyph run shown with unknown font"
	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}

	w = Warning{Stage: "read", Message: "document creator unknown"}
	if got := w.String(); got != "read: document creator unknown" {
		t.Errorf("unexpected formatting: %q", got)
	}
}
