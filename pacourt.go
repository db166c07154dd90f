// Package pacourt provides a fluent API for turning Pennsylvania court
// PDFs — criminal dockets and court summaries — into structured records.
//
// Basic usage:
//
//	record, warnings, err := pacourt.Open("docket.pdf").Record()
//	if err != nil {
//	    // handle error
//	}
//	if len(warnings) > 0 {
//	    log.Println("Warnings:\n" + pacourt.FormatWarnings(warnings))
//	}
//
// With options:
//
//	record, _, err := pacourt.Open("docket.pdf").
//	    Tolerances(extract.Tolerances{X: 0.3, Y: 1.0, OverlapSlack: -0.1}).
//	    Record()
//
// Text returns the intermediate serialized form, which is useful for
// debugging extraction without parsing:
//
//	text, _, err := pacourt.Open("docket.pdf").Text()
//
// For advanced use cases, the lower-level reader, extract, and docket
// packages are also available.
package pacourt

import (
	"github.com/joshuagerstein/PAcourt-document-parser/reader"
)

// Open opens a PDF file and returns an Extractor for fluent
// configuration. The returned Extractor must be closed when done, either
// explicitly via Close() or implicitly when calling a terminal operation
// like Record().
func Open(filename string) *Extractor {
	return &Extractor{
		filename: filename,
		options:  defaultOptions(),
	}
}

// FromDocument creates an Extractor from an already-opened
// reader.Document. The caller is responsible for closing the document.
func FromDocument(doc *reader.Document) *Extractor {
	return &Extractor{
		doc:        doc,
		docOpened:  true,
		ownsReader: false,
		options:    defaultOptions(),
	}
}

// Must is a helper that wraps a call to a function returning
// (T, []Warning, error) and panics if the error is non-nil, discarding
// warnings. It is intended for scripts and tests.
func Must[T any](val T, _ []Warning, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}
