package docket

import (
	"regexp"
	"strings"

	"github.com/joshuagerstein/PAcourt-document-parser/extract"
	"github.com/joshuagerstein/PAcourt-document-parser/font"
)

// Pagination artifact patterns. Built from the sentinel constants so they
// stay correct if the sentinel set ever changes.
var (
	propsRe     = regexp.QuoteMeta(string(extract.PropsOpen)) + `[^` + regexp.QuoteMeta(string(extract.PropsClose)) + `]*` + regexp.QuoteMeta(string(extract.PropsClose))
	boldPropsRe = regexp.QuoteMeta(string(extract.PropsOpen)) + `[^` + regexp.QuoteMeta(string(extract.PropsClose)) + `]*` + font.ClassBold + regexp.QuoteMeta(string(extract.PropsClose))
	notPropsRe  = `[^` + regexp.QuoteMeta(string(extract.PropsOpen)) + `]*`

	// "Printed: 1/1/2020 ..." footer line that the engine inserts at the
	// top of every page break.
	printedDateLine = regexp.MustCompile(`^Printed:\s*\d{1,2}/\d{1,2}/\d{4}` + notPropsRe + propsRe)

	// "v. <defendant>" line that resumes docket body content.
	versusLine = regexp.MustCompile(`^v\. *` + notPropsRe + propsRe)

	// "(Continued)" banner that resumes court summary body content.
	continuedLine = regexp.MustCompile(`^` + notPropsRe + `\(Continued\)` + boldPropsRe)

	// "(Continued)" inside a wrapped text box: content after the box-wrap
	// sentinel belongs to the body and must be kept.
	continuedBoxLine = regexp.MustCompile(`^` + notPropsRe + `\(Continued\)` + regexp.QuoteMeta(string(extract.BoxWrap)) + notPropsRe + boldPropsRe)
)

// RemovePageBreaks removes pagination artifact lines from serialized
// text, restoring the appearance of one continuous document. Lines
// outside a page-break region pass through unchanged, in order. The
// operation is idempotent.
func RemovePageBreaks(text string, docType DocumentType) string {
	if docType == CourtSummary {
		return removeSummaryPageBreaks(text)
	}
	return removeDocketPageBreaks(text)
}

// removeDocketPageBreaks drops lines from each "Printed:" footer up to,
// but not including, the "v. <defendant>" line that resumes the body.
func removeDocketPageBreaks(text string) string {
	lines := strings.Split(text, string(extract.Terminator))
	out := make([]string, 0, len(lines))
	out = append(out, lines[0])
	inBreak := false

	for _, line := range lines[1:] {
		switch {
		case inBreak:
			if versusLine.MatchString(line) {
				out = append(out, line)
				inBreak = false
			}
		case printedDateLine.MatchString(line):
			inBreak = true
		default:
			out = append(out, line)
		}
	}
	return strings.Join(out, string(extract.Terminator))
}

// removeSummaryPageBreaks drops lines from each "Printed:" footer up to
// the line after the last "(Continued)" banner. When that line carries
// "(Continued)" inside a wrapped text box, only the portion after the
// box-wrap sentinel is body content.
func removeSummaryPageBreaks(text string) string {
	lines := strings.Split(text, string(extract.Terminator))
	out := make([]string, 0, len(lines))
	out = append(out, lines[0])
	inBreak := false

	for i := 1; i < len(lines); i++ {
		line := lines[i]
		switch {
		case inBreak:
			if continuedLine.MatchString(lines[i-1]) && !continuedLine.MatchString(line) {
				inBreak = false
				if continuedBoxLine.MatchString(line) {
					_, after, _ := strings.Cut(line, string(extract.BoxWrap))
					out = append(out, after)
				} else {
					out = append(out, line)
				}
			}
		case printedDateLine.MatchString(line):
			inBreak = true
		default:
			out = append(out, line)
		}
	}
	return strings.Join(out, string(extract.Terminator))
}
