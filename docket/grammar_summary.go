package docket

import (
	"github.com/joshuagerstein/PAcourt-document-parser/grammar"
)

var summaryGrammar = newSummaryGrammar()

// newSummaryGrammar builds the grammar for court summaries: a defendant
// header with an alias box, then case-status categories, each holding
// per-county runs of docket sections with their charge tables.
func newSummaryGrammar() *grammar.Grammar {
	fs := tokField()
	term, props, bold := tokTerm(), tokProps(), tokBold()

	rules := grammar.Rules{
		"whole_summary": grammar.Seq(
			grammar.Ref("summary_header"),
			grammar.Opt(grammar.Ref("alias_block")),
			grammar.Plus(grammar.Ref("category_section")),
			grammar.Star(tokAnyLine()),
		),

		"summary_header": grammar.Seq(
			tokAnyLine(),
			tokAnyLine(),
			grammar.Seq(grammar.Ref("defendant_name_reversed"), bold, term),
			labeled("DOB:", "dob"),
		),
		"defendant_name_reversed": tokValue(),
		"dob":                     grammar.Rgx(datePat),

		// The alias list renders as one wrapped text box; the aliases
		// rule spans exactly the box content so its wrap markers survive
		// into the parse tree.
		"alias_block": grammar.Seq(
			grammar.Seq(grammar.Lit("Aliases:"), bold, term),
			grammar.Ref("aliases"), props, term,
		),
		"aliases": grammar.Rgx(contentRun + "(?:" + quotedWrap + contentRun + ")*"),

		"category_section": grammar.Seq(
			grammar.Ref("category_heading"),
			grammar.Plus(grammar.Ref("county_section")),
		),
		"category_heading": grammar.Seq(
			grammar.Rgx(`(?:Closed|Active|Inactive|Adjudicated|Archived)`), bold, term,
		),

		"county_section": grammar.Seq(
			grammar.Seq(grammar.Ref("county"), bold, term),
			grammar.Plus(grammar.Ref("docket_section")),
		),
		"county": grammar.Rgx(`[A-Za-z][A-Za-z .]*`),

		"docket_section": grammar.Seq(
			grammar.Ref("docket_header_line"),
			grammar.Opt(grammar.Ref("docket_detail_line")),
			grammar.Opt(grammar.Ref("charges_section")),
		),
		"docket_header_line": grammar.Seq(
			grammar.Ref("docket_number"),
			grammar.Opt(grammar.Seq(fs, grammar.Lit("Proc Status: "), grammar.Ref("proc_status"))),
			grammar.Opt(grammar.Seq(fs, grammar.Lit("DC No: "), grammar.Ref("dcn"))),
			grammar.Opt(grammar.Seq(fs, grammar.Lit("OTN:"), tokSep(), grammar.Ref("otn"))),
			props, term,
		),
		"docket_number": grammar.Rgx(`(?:CP|MC)-\d{2}-(?:CR|MD|SU)-\d{7}-\d{4}`),
		"proc_status":   tokValue(),
		"dcn":           tokValue(),
		"otn":           tokValue(),

		"docket_detail_line": grammar.Seq(
			grammar.Lit("Arrest Dt:"), tokSep(),
			grammar.Opt(grammar.Ref("arrest_date")),
			grammar.Opt(grammar.Seq(fs, grammar.Lit("Disp Dt:"), tokSep(), grammar.Ref("disposition_date"))),
			grammar.Opt(grammar.Seq(fs, grammar.Lit("Disp Judge:"), tokSep(), grammar.Ref("judge"))),
			props, term,
		),
		"arrest_date":      grammar.Rgx(datePat),
		"disposition_date": grammar.Rgx(datePat),
		"judge":            tokValue(),

		"charges_section": grammar.Seq(
			grammar.Ref("charges_heading"),
			grammar.Plus(grammar.Ref("charge_segment")),
		),
		"charges_heading": grammar.Seq(
			grammar.Lit("Seq No"),
			grammar.Rgx("[^"+quotedOpen+quotedTerm+"]*"),
			props, term,
		),
		"charge_segment": grammar.Seq(
			grammar.Ref("sequence_number"), fs,
			grammar.Ref("statute"),
			grammar.Opt(grammar.Seq(fs, grammar.Ref("grade"), endOfField())),
			fs, grammar.Ref("charge_description"),
			grammar.Opt(grammar.Seq(fs, grammar.Ref("disposition"))),
			props, term,
		),
		"sequence_number":    grammar.Rgx(`\d+`),
		"statute":            tokValue(),
		"grade":              grammar.Rgx(`[FMS][123]?`),
		"charge_description": tokValue(),
		"disposition":        tokValue(),
	}

	return grammar.New("whole_summary", rules)
}
