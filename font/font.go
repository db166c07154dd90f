package font

import (
	"fmt"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Classification labels for serialized segments.
const (
	ClassNormal = "normal"
	ClassBold   = "bold"
)

// Font is a simple single-byte font resource: a mapping from character
// codes to Unicode text and glyph widths.
type Font struct {
	Resource string // resource name in the page's font dictionary, e.g. "F1"
	BaseFont string // base font name, e.g. "Arial-BoldMT"

	text   map[byte]string  // character code -> decoded text
	widths map[byte]float64 // character code -> width in glyph space units
}

// New creates an empty font for the given resource and base font names.
func New(resource, baseFont string) *Font {
	return &Font{
		Resource: resource,
		BaseFont: baseFont,
		text:     make(map[byte]string),
		widths:   make(map[byte]float64),
	}
}

// SetText maps a character code to its decoded text.
func (f *Font) SetText(code byte, s string) {
	f.text[code] = s
}

// SetWidth maps a character code to its width in glyph space units
// (1000ths of an em).
func (f *Font) SetWidth(code byte, w float64) {
	f.widths[code] = w
}

// SetGlyph maps a character code to decoded text and width in one call.
func (f *Font) SetGlyph(code byte, s string, w float64) {
	f.SetText(code, s)
	f.SetWidth(code, w)
}

// DecodeRun decodes a byte run to text and its cumulative width in glyph
// space units. Codes without a ToUnicode entry decode to U+FFFD with
// width zero; missing reports how many such codes were seen so the caller
// can log a degraded-fidelity warning.
func (f *Font) DecodeRun(run []byte) (text string, width float64, missing int) {
	var sb strings.Builder
	for _, code := range run {
		s, ok := f.text[code]
		if !ok {
			sb.WriteRune('�')
			missing++
			continue
		}
		sb.WriteString(s)
		width += f.widths[code]
	}
	return norm.NFC.String(sb.String()), width, missing
}

// Class classifies the font as bold or normal by substring match on the
// base font name.
func (f *Font) Class() string {
	if strings.Contains(strings.ToLower(f.BaseFont), "bold") {
		return ClassBold
	}
	return ClassNormal
}

// ReservedCharError reports that a font can produce one of the reserved
// sentinel characters, which would corrupt the serialized segment format.
// This is a configuration error: extraction must not start.
type ReservedCharError struct {
	Font string // base font name
	Char rune
}

func (e *ReservedCharError) Error() string {
	return fmt.Sprintf("font %s can produce reserved character %q; choose different sentinel characters", e.Font, e.Char)
}

// CheckReserved returns a *ReservedCharError if any character reachable
// through this font's ToUnicode mapping is in the reserved set.
func (f *Font) CheckReserved(reserved string) error {
	for _, s := range f.text {
		for _, r := range s {
			if strings.ContainsRune(reserved, r) {
				return &ReservedCharError{Font: f.BaseFont, Char: r}
			}
		}
	}
	return nil
}
