package docket

import (
	"strings"

	"github.com/joshuagerstein/PAcourt-document-parser/grammar"
)

// docketReducers is the reduction table for criminal dockets. Leaf rules
// are declared by kind; structural rules assemble the nested record.
func docketReducers() *reducerSet {
	return &reducerSet{
		leaves: map[string]leafKind{
			"defendant_name":              stringLeaf,
			"docket_number":               stringLeaf,
			"judge":                       stringLeaf,
			"otn":                         stringLeaf,
			"originating_docket_number":   stringLeaf,
			"cross_court_docket_numbers":  stringLeaf,
			"alias":                       stringLeaf,
			"event_disposition":           stringLeaf,
			"case_event":                  stringLeaf,
			"disposition_finality":        stringLeaf,
			"sequence":                    stringLeaf,
			"charge_description_part":     stringLeaf,
			"grade":                       stringLeaf,
			"statute":                     stringLeaf,
			"offense_disposition_part":    stringLeaf,
			"dob":                         dateLeaf,
			"disposition_date":            dateLeaf,
			"complaint_date":              dateLeaf,
			"assessment":                  moneyLeaf,
			"total":                       moneyLeaf,
			"non_monetary":                moneyLeaf,
			"adjustments":                 moneyLeaf,
			"payments":                    moneyLeaf,
		},
		structural: map[string]structuralFunc{
			"whole_docket":              reduceWholeDocket,
			"aliases":                   reduceDocketAliases,
			"section_disposition":       reduceSectionDisposition,
			"case_event_block":          reduceCaseEventBlock,
			"charge_info":               reduceChargeInfo,
			"disposition_grade_statute": reduceDispositionGradeStatute,
		},
	}
}

// mergeRecords folds every record found beneath a node into one map.
func mergeRecords(children []any) Record {
	merged := Record{}
	for _, child := range flatten(children) {
		if rec, ok := child.(Record); ok {
			for k, v := range rec {
				merged[k] = v
			}
		}
	}
	return merged
}

func reduceWholeDocket(_ *grammar.Node, children []any) (any, error) {
	return mergeRecords(children), nil
}

// reduceDocketAliases collects the individual alias leaves into a list.
func reduceDocketAliases(_ *grammar.Node, children []any) (any, error) {
	aliases := []string{}
	for _, child := range flatten(children) {
		if rec, ok := child.(Record); ok {
			if alias, ok := rec["alias"].(string); ok {
				aliases = append(aliases, alias)
			}
		}
	}
	return Record{"aliases": aliases}, nil
}

// reduceCaseEventBlock builds the record for a single case event,
// gathering its charges into a list alongside the event's own fields.
func reduceCaseEventBlock(_ *grammar.Node, children []any) (any, error) {
	event := Record{}
	charges := []Record{}
	for _, child := range flatten(children) {
		rec, ok := child.(Record)
		if !ok {
			continue
		}
		if charge, ok := rec["charge_info"].(Record); ok {
			charges = append(charges, charge)
			delete(rec, "charge_info")
		}
		for k, v := range rec {
			event[k] = v
		}
	}
	event["charges"] = charges
	return event, nil
}

func reduceSectionDisposition(_ *grammar.Node, children []any) (any, error) {
	events := []Record{}
	for _, child := range flatten(children) {
		if rec, ok := child.(Record); ok {
			events = append(events, rec)
		}
	}
	return Record{"section_disposition": events}, nil
}

// reduceChargeInfo merges a charge's fields, joining the description
// fragments that the layout splits across lines.
func reduceChargeInfo(_ *grammar.Node, children []any) (any, error) {
	charge := Record{}
	var descriptionParts []string
	for _, child := range flatten(children) {
		rec, ok := child.(Record)
		if !ok {
			continue
		}
		if part, ok := rec["charge_description_part"].(string); ok {
			descriptionParts = append(descriptionParts, part)
			delete(rec, "charge_description_part")
		}
		for k, v := range rec {
			charge[k] = v
		}
	}
	charge["charge_description"] = strings.TrimSpace(strings.Join(descriptionParts, " "))
	return Record{"charge_info": charge}, nil
}

func reduceDispositionGradeStatute(_ *grammar.Node, children []any) (any, error) {
	result := Record{}
	var dispositionParts []string
	for _, child := range flatten(children) {
		rec, ok := child.(Record)
		if !ok {
			continue
		}
		if part, ok := rec["offense_disposition_part"].(string); ok {
			dispositionParts = append(dispositionParts, part)
			delete(rec, "offense_disposition_part")
		}
		for k, v := range rec {
			result[k] = v
		}
	}
	result["offense_disposition"] = strings.TrimSpace(strings.Join(dispositionParts, " "))
	return result, nil
}
