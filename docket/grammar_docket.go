package docket

import (
	"github.com/joshuagerstein/PAcourt-document-parser/grammar"
)

var docketGrammar = newDocketGrammar()

// newDocketGrammar builds the grammar for criminal dockets. The layout
// is fixed by the reporting engine that generates the documents: a
// caption header, labeled case-information lines, an optional alias
// list, disposition sections of case events with charges, and a
// financial totals table.
func newDocketGrammar() *grammar.Grammar {
	fs, bw := tokField(), tokWrap()
	term, props, bold := tokTerm(), tokProps(), tokBold()

	rules := grammar.Rules{
		"whole_docket": grammar.Seq(
			grammar.Ref("header"),
			grammar.Ref("case_info"),
			grammar.Ref("uncaptured_lines"),
			grammar.Opt(grammar.Ref("aliases")),
			grammar.Ref("section_disposition"),
			grammar.Star(grammar.Ref("versus_line")),
			grammar.Opt(grammar.Ref("financial_section")),
			grammar.Star(tokAnyLine()),
		),

		// Two banner lines, then the docket number and the caption.
		"header": grammar.Seq(
			tokAnyLine(),
			tokAnyLine(),
			grammar.Ref("docket_number_line"),
			grammar.Ref("caption"),
		),
		"docket_number_line": labeled("Docket Number:", "docket_number"),
		"docket_number":      grammar.Rgx(`(?:CP|MC)-\d{2}-(?:CR|MD|SU)-\d{7}-\d{4}`),
		"caption": grammar.Seq(
			grammar.Seq(grammar.Lit("Commonwealth of Pennsylvania"), props, term),
			grammar.Ref("versus_line"),
			grammar.Seq(grammar.Ref("defendant_name"), props, term),
		),
		// Matches both the bare caption "v." line and the "v. <defendant>"
		// line the page-break filter keeps at each page resumption.
		"versus_line": grammar.Seq(
			grammar.Lit("v."),
			grammar.Rgx("[^"+quotedTerm+"]*"),
			term,
		),
		"defendant_name": tokValue(),

		// Labeled fields appear in varying order and subsets.
		"case_info": grammar.Star(grammar.Choice(
			labeled("Judge Assigned:", "judge"),
			labeled("Date Of Birth:", "dob"),
			labeled("OTN:", "otn"),
			labeled("Originating Docket No:", "originating_docket_number"),
			labeled("Cross Court Docket Nos:", "cross_court_docket_numbers"),
			labeled("Complaint Date:", "complaint_date"),
		)),
		"judge":                      tokValue(),
		"otn":                        tokValue(),
		"originating_docket_number":  tokValue(),
		"cross_court_docket_numbers": tokValue(),
		"dob":                        grammar.Rgx(datePat),
		"complaint_date":             grammar.Rgx(datePat),

		// Status and calendaring sections carry nothing we extract.
		"uncaptured_lines": grammar.Star(grammar.Seq(
			grammar.Not(grammar.Choice(
				grammar.Ref("aliases_heading"),
				grammar.Ref("disposition_heading"),
			)),
			tokAnyLine(),
		)),

		"aliases_heading": grammar.Seq(grammar.Lit("Alias Name"), bold, term),
		"aliases": grammar.Seq(
			grammar.Ref("aliases_heading"),
			grammar.Star(grammar.Ref("alias_line")),
		),
		"alias_line": grammar.Seq(
			grammar.Not(grammar.Ref("disposition_heading")),
			grammar.Ref("alias"), props, term,
		),
		"alias": tokValue(),

		"disposition_heading": grammar.Seq(
			grammar.Lit("DISPOSITION SENTENCING/PENALTIES"), bold, term,
		),
		// The page-break filter keeps the "v. <defendant>" line that
		// resumes each page, so body sections must tolerate it between
		// entries.
		"section_disposition": grammar.Seq(
			grammar.Ref("disposition_heading"),
			grammar.Plus(grammar.Seq(
				grammar.Star(grammar.Ref("versus_line")),
				grammar.Ref("case_event_block"),
			)),
		),

		"case_event_block": grammar.Seq(
			grammar.Ref("case_event_line"),
			grammar.Star(grammar.Seq(
				grammar.Star(grammar.Ref("versus_line")),
				grammar.Ref("charge_info"),
			)),
		),
		"case_event_line": grammar.Seq(
			grammar.Ref("case_event"), fs,
			grammar.Ref("event_disposition"), fs,
			grammar.Ref("disposition_finality"),
			grammar.Opt(grammar.Seq(fs, grammar.Ref("disposition_date"))),
			props, term,
		),
		"case_event":           tokValue(),
		"event_disposition":    tokValue(),
		"disposition_finality": tokValue(),
		"disposition_date":     grammar.Rgx(datePat),

		"charge_info": grammar.Seq(
			grammar.Ref("sequence_line"),
			grammar.Ref("disposition_grade_statute"),
		),
		// Long descriptions wrap inside their text box.
		"sequence_line": grammar.Seq(
			grammar.Ref("sequence"), fs,
			grammar.Ref("charge_description_part"),
			grammar.Star(grammar.Seq(bw, grammar.Ref("charge_description_part"))),
			props, term,
		),
		"sequence":                grammar.Rgx(`\d+`),
		"charge_description_part": tokValue(),

		"disposition_grade_statute": grammar.Seq(
			grammar.Ref("offense_disposition_part"),
			grammar.Star(grammar.Seq(bw, grammar.Ref("offense_disposition_part"))),
			grammar.Opt(grammar.Seq(fs, grammar.Ref("grade"), endOfField())),
			fs, grammar.Ref("statute"),
			props, term,
		),
		"offense_disposition_part": tokValue(),
		"grade":                    grammar.Rgx(`[FMS][123]?`),
		"statute":                  tokValue(),

		"financial_heading": grammar.Seq(
			grammar.Lit("CASE FINANCIAL INFORMATION"), bold, term,
		),
		"financial_section": grammar.Seq(
			grammar.Ref("financial_heading"),
			grammar.Star(grammar.Seq(grammar.Not(grammar.Ref("totals_line")), tokAnyLine())),
			grammar.Ref("totals_line"),
		),
		"totals_line": grammar.Seq(
			grammar.Lit("Grand Totals:"), fs,
			grammar.Ref("assessment"), fs,
			grammar.Ref("payments"), fs,
			grammar.Ref("adjustments"), fs,
			grammar.Ref("non_monetary"), fs,
			grammar.Ref("total"),
			props, term,
		),
		"assessment":   grammar.Rgx(moneyPat),
		"payments":     grammar.Rgx(moneyPat),
		"adjustments":  grammar.Rgx(moneyPat),
		"non_monetary": grammar.Rgx(moneyPat),
		"total":        grammar.Rgx(moneyPat),
	}

	return grammar.New("whole_docket", rules)
}
