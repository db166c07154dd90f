// Package reader provides PDF file reading for the document pipeline.
//
// This package wraps pdfcpu to expose exactly what the pipeline needs
// from a PDF: per-page decoded content streams and per-page font
// capabilities, plus the document metadata used for sanity checks.
//
// # Opening documents
//
// Use [Open] to open a PDF file for reading:
//
//	doc, err := reader.Open("docket.pdf", nil)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer doc.Close()
//
// Or use [New] with any io.ReadSeeker.
//
// # Page access
//
// Pages are numbered from 1, matching pdfcpu:
//
//   - PageCount() - number of pages
//   - PageContent(n) - decoded content stream bytes for page n
//   - PageFonts(n) - the fonts page n's resources declare, with their
//     character-to-text mappings and glyph widths
//
// # Diagnostics
//
// Non-fatal oddities found while reading (an unexpected document
// creator, a font without a usable character map) are logged and
// collected; Warnings returns them.
package reader
