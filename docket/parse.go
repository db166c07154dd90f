package docket

import (
	"fmt"
)

// ParseText runs the parsing half of the pipeline on serialized document
// text: detect the document type, remove page-break artifacts, parse
// against the type's grammar, and reduce the tree to a record.
func ParseText(text string) (Record, error) {
	docType, err := DetectType(text)
	if err != nil {
		return nil, err
	}
	return ParseTextAs(text, docType)
}

// ParseTextAs is ParseText with the document type already known.
func ParseTextAs(text string, docType DocumentType) (Record, error) {
	text = RemovePageBreaks(text, docType)

	var (
		g  = docketGrammar
		rs = docketReducers()
	)
	if docType == CourtSummary {
		g = summaryGrammar
		rs = summaryReducers()
	}

	tree, err := g.Parse(text)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", docType, err)
	}

	value, err := rs.reduce(tree)
	if err != nil {
		return nil, err
	}
	record, ok := value.(Record)
	if !ok {
		return nil, fmt.Errorf("parsing %s: reduction produced %T, not a record", docType, value)
	}
	return record, nil
}
