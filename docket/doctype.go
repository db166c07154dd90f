package docket

import (
	"errors"
	"fmt"
	"strings"

	"github.com/joshuagerstein/PAcourt-document-parser/extract"
)

// DocumentType identifies which of the two known layouts a document uses.
// Each type binds to exactly one grammar and one reducer set.
type DocumentType int

const (
	// Docket is a criminal docket sheet.
	Docket DocumentType = iota
	// CourtSummary is a court summary sheet.
	CourtSummary
)

func (t DocumentType) String() string {
	switch t {
	case Docket:
		return "docket"
	case CourtSummary:
		return "court summary"
	default:
		return fmt.Sprintf("DocumentType(%d)", int(t))
	}
}

// ErrUnknownDocumentType is returned when the serialized text matches
// neither known layout. Without a type no grammar or reducer set can be
// selected, so this is fatal.
var ErrUnknownDocumentType = errors.New("could not determine document type")

// DetectType determines the document type from serialized text. The
// reporting engine always names the document kind on the second line.
func DetectType(text string) (DocumentType, error) {
	lines := strings.SplitN(text, string(extract.Terminator), 3)
	if len(lines) < 2 {
		return 0, ErrUnknownDocumentType
	}
	second := strings.ToLower(lines[1])
	switch {
	case strings.Contains(second, "docket"):
		return Docket, nil
	case strings.Contains(second, "court summary"):
		return CourtSummary, nil
	}
	return 0, ErrUnknownDocumentType
}
