package docket

import (
	"regexp"

	"github.com/joshuagerstein/PAcourt-document-parser/extract"
	"github.com/joshuagerstein/PAcourt-document-parser/grammar"
)

// Shared grammar tokens, built from the serializer's sentinel characters
// so the grammars track the serialization format by construction.
var (
	quotedTerm  = regexp.QuoteMeta(string(extract.Terminator))
	quotedOpen  = regexp.QuoteMeta(string(extract.PropsOpen))
	quotedClose = regexp.QuoteMeta(string(extract.PropsClose))
	quotedWrap  = regexp.QuoteMeta(string(extract.BoxWrap))
	quotedSep   = regexp.QuoteMeta(string(extract.FieldSep))

	// A run of plain content: no sentinels.
	contentRun = extract.ContentCharPattern() + "+"

	// The bracketed position annotation closing every line, and the
	// variant only emitted for bold text.
	propsPat     = quotedOpen + "[^" + quotedClose + "]*" + quotedClose
	boldPropsPat = quotedOpen + "[^" + quotedClose + "]*bold" + quotedClose

	datePat  = `\d{1,2}/\d{1,2}/\d{4}`
	moneyPat = `\(?\$[\d,]+(?:\.\d+)?\)?`
)

// tok wraps the recurring terminal expressions.
func tokTerm() grammar.Expr  { return grammar.Lit(string(extract.Terminator)) }
func tokField() grammar.Expr { return grammar.Lit(string(extract.FieldSep)) }
func tokWrap() grammar.Expr  { return grammar.Lit(string(extract.BoxWrap)) }
func tokProps() grammar.Expr { return grammar.Rgx(propsPat) }
func tokBold() grammar.Expr  { return grammar.Rgx(boldPropsPat) }

// tokSep matches the optional spacing between a label and its value:
// literal spaces, or a separator the serializer inserted for a gap.
func tokSep() grammar.Expr { return grammar.Rgx("[ " + quotedSep + "]*") }

// tokValue matches one field's content.
func tokValue() grammar.Expr { return grammar.Rgx(contentRun) }

// tokAnyLine matches a whole serialized line of any content.
func tokAnyLine() grammar.Expr {
	return grammar.Rgx("[^" + quotedTerm + "]*" + quotedTerm)
}

// endOfField succeeds only at a sentinel boundary. Grammars use it after
// short keyword-like leaves (grades) so that a field which merely starts
// with a grade letter is not misparsed as a grade.
func endOfField() grammar.Expr {
	return grammar.Not(grammar.Rgx(extract.ContentCharPattern()))
}

// labeled builds the common "Label: value" line shape around a leaf rule.
func labeled(label string, valueRule string) grammar.Expr {
	return grammar.Seq(
		grammar.Lit(label),
		tokSep(),
		grammar.Ref(valueRule),
		tokProps(),
		tokTerm(),
	)
}
