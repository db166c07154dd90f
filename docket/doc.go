// Package docket turns the serialized text of a court document into a
// structured record.
//
// Two document layouts are understood, both produced by the same
// reporting engine: criminal dockets and court summaries. The pipeline
// for either type is the same:
//
//  1. detect the document type from the second serialized line,
//  2. remove pagination artifacts ("Printed: ..." footers and, for court
//     summaries, "(Continued)" banners) so the grammar sees one
//     continuous document,
//  3. parse the text against the type's grammar,
//  4. reduce the parse tree bottom-up into a nested record.
//
// The resulting record is a map from field name to string, time.Time,
// float64, nested record, or list — the shape is a contract of the
// grammar and reducer pair, not of this package's machinery.
package docket
