package extract

import "regexp"

// The six reserved sentinel characters of the intermediate annotated text
// format. None of them may be producible by any font in the document; see
// [github.com/joshuagerstein/PAcourt-document-parser/font.Font.CheckReserved].
const (
	// Terminator ends each serialized segment.
	Terminator = '\n'
	// FieldSep marks meaningful horizontal spacing between two pieces of
	// content on the same line.
	FieldSep = '_'
	// ComesBefore marks content that logically precedes, but was emitted
	// after, the preceding content.
	ComesBefore = '|'
	// BoxWrap marks a line wrap inside a single layout text box.
	BoxWrap = '^'
	// PropsOpen and PropsClose bracket the position/style annotation at
	// the end of each serialized segment.
	PropsOpen  = '['
	PropsClose = ']'
)

// Reserved returns all sentinel characters as a string.
func Reserved() string {
	return string([]rune{FieldSep, Terminator, PropsOpen, PropsClose, ComesBefore, BoxWrap})
}

// ContentCharPattern returns a regular expression character class matching
// any single character that extraction cannot have inserted. Grammars are
// built from this so they can never disagree with the serializer about
// which characters are structural.
func ContentCharPattern() string {
	return "[^" + regexp.QuoteMeta(Reserved()) + "]"
}
