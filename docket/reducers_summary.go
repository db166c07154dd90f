package docket

import (
	"errors"
	"strings"

	"github.com/joshuagerstein/PAcourt-document-parser/extract"
	"github.com/joshuagerstein/PAcourt-document-parser/grammar"
)

// summaryReducers is the reduction table for court summaries.
func summaryReducers() *reducerSet {
	return &reducerSet{
		leaves: map[string]leafKind{
			"defendant_name_reversed": stringLeaf,
			"docket_number":           stringLeaf,
			"otn":                     stringLeaf,
			"dcn":                     stringLeaf,
			"county":                  stringLeaf,
			"proc_status":             stringLeaf,
			"judge":                   stringLeaf,
			"grade":                   stringLeaf,
			"statute":                 stringLeaf,
			"sequence_number":         stringLeaf,
			"disposition":             stringLeaf,
			"charge_description":      stringLeaf,
			"dob":                     dateLeaf,
			"disposition_date":        dateLeaf,
			"arrest_date":             dateLeaf,
		},
		structural: map[string]structuralFunc{
			"whole_summary":   reduceWholeSummary,
			"aliases":         reduceSummaryAliases,
			"category_section": reduceCategorySection,
			"county_section":  reduceCountySection,
			"docket_section":  reduceDocketSection,
			"charges_section": reduceChargesSection,
			"charge_segment":  reduceChargeSegment,
		},
	}
}

// reduceWholeSummary splits the flattened results into per-docket
// records, keyed by the presence of a docket number, and defendant-level
// fields, which merge into the top of the summary.
func reduceWholeSummary(_ *grammar.Node, children []any) (any, error) {
	summary := Record{}
	dockets := []Record{}
	for _, child := range flatten(children) {
		rec, ok := child.(Record)
		if !ok {
			continue
		}
		if _, isDocket := rec["docket_number"]; isDocket {
			dockets = append(dockets, rec)
			continue
		}
		for k, v := range rec {
			summary[k] = v
		}
	}
	summary["dockets"] = dockets
	return summary, nil
}

// reduceSummaryAliases splits the alias box on its wrap markers. A
// "WARRANT OUTSTANDING" banner can render directly below the alias box
// and lands on its final wrapped line; drop it rather than report it as
// an alias.
func reduceSummaryAliases(node *grammar.Node, _ []any) (any, error) {
	aliases := strings.Split(strings.TrimSpace(node.Text), string(extract.BoxWrap))
	if len(aliases) > 0 && strings.Contains(aliases[len(aliases)-1], "WARRANT") {
		aliases = aliases[:len(aliases)-1]
	}
	return Record{"aliases": aliases}, nil
}

// reduceCategorySection stamps the section's heading onto every docket
// record beneath it and passes the records through for the summary to
// collect.
func reduceCategorySection(node *grammar.Node, children []any) (any, error) {
	heading, _, _ := strings.Cut(node.Text, string(extract.PropsOpen))
	heading = strings.TrimSpace(heading)
	for _, child := range flatten(children) {
		if rec, ok := child.(Record); ok {
			if _, isDocket := rec["docket_number"]; isDocket {
				rec["category"] = heading
			}
		}
	}
	return children, nil
}

// reduceCountySection hoists the county heading, which renders once
// above a run of dockets, down onto each docket record in the run.
func reduceCountySection(_ *grammar.Node, children []any) (any, error) {
	county := ""
	for _, child := range flatten(children) {
		rec, ok := child.(Record)
		if !ok {
			continue
		}
		if name, ok := rec["county"].(string); ok {
			county = name
			delete(rec, "county")
		}
		if _, isDocket := rec["docket_number"]; isDocket {
			if county == "" {
				return nil, errors.New("failed to find county before docket number")
			}
			rec["county"] = county
		}
	}
	return children, nil
}

func reduceDocketSection(_ *grammar.Node, children []any) (any, error) {
	return mergeRecords(children), nil
}

func reduceChargesSection(_ *grammar.Node, children []any) (any, error) {
	charges := []Record{}
	for _, child := range flatten(children) {
		if rec, ok := child.(Record); ok {
			charges = append(charges, rec)
		}
	}
	return Record{"charges": charges}, nil
}

func reduceChargeSegment(_ *grammar.Node, children []any) (any, error) {
	return mergeRecords(children), nil
}
