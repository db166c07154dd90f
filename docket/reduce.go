package docket

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/joshuagerstein/PAcourt-document-parser/extract"
	"github.com/joshuagerstein/PAcourt-document-parser/grammar"
)

// Reduced values are one of: string, time.Time, float64, Record, or
// []any. Record is the nested mapping the pipeline ultimately produces.
type Record = map[string]any

// leafKind selects how a registered leaf rule's matched text becomes a
// value. A static mapping from rule name to kind replaces per-field
// generated visit methods: same declarative-table ergonomics, no runtime
// method synthesis.
type leafKind int

const (
	stringLeaf leafKind = iota
	dateLeaf
	moneyLeaf
)

// structuralFunc aggregates the already-reduced results of a node's
// subtree into a single value.
type structuralFunc func(node *grammar.Node, children []any) (any, error)

// reducerSet is the full reduction table for one document type.
type reducerSet struct {
	leaves     map[string]leafKind
	structural map[string]structuralFunc
}

// ReduceError reports a failure while reducing a parse tree node. It
// carries the original cause but deliberately no tree context: docket
// parse trees are thousands of nodes and the context drowns the cause.
type ReduceError struct {
	Rule string
	Err  error
}

func (e *ReduceError) Error() string {
	return fmt.Sprintf("reducing %q: %v", e.Rule, e.Err)
}

func (e *ReduceError) Unwrap() error { return e.Err }

// reduce walks the parse tree post-order, visiting each node exactly
// once. Registered leaf rules become {rule: value} records from their
// matched text; registered structural rules combine their children;
// unregistered nodes are transparent: they pass their children's results
// through, or nil when the subtree produced nothing.
func (rs *reducerSet) reduce(node *grammar.Node) (any, error) {
	if kind, ok := rs.leaves[node.Rule]; ok {
		value, err := reduceLeaf(kind, node.Text)
		if err != nil {
			return nil, &ReduceError{Rule: node.Rule, Err: err}
		}
		return Record{node.Rule: value}, nil
	}

	var children []any
	for _, child := range node.Children {
		value, err := rs.reduce(child)
		if err != nil {
			return nil, err
		}
		if value != nil {
			children = append(children, value)
		}
	}

	if fn, ok := rs.structural[node.Rule]; ok {
		value, err := fn(node, children)
		if err != nil {
			if _, already := err.(*ReduceError); already {
				return nil, err
			}
			return nil, &ReduceError{Rule: node.Rule, Err: err}
		}
		return value, nil
	}

	if len(children) == 0 {
		return nil, nil
	}
	return children, nil
}

// reduceLeaf converts a leaf rule's matched text to its typed value.
func reduceLeaf(kind leafKind, text string) (any, error) {
	switch kind {
	case dateLeaf:
		return parseDate(text)
	case moneyLeaf:
		return parseMoney(text)
	default:
		return cleanString(text), nil
	}
}

// cleanString trims surrounding space and strips stray box-wrap markers.
func cleanString(text string) string {
	text = strings.TrimSpace(text)
	return strings.ReplaceAll(text, string(extract.BoxWrap), "")
}

// parseDate parses the engine's M/D/Y form into a calendar date at UTC
// midnight.
func parseDate(text string) (time.Time, error) {
	parts := strings.Split(strings.TrimSpace(text), "/")
	if len(parts) != 3 {
		return time.Time{}, fmt.Errorf("expected M/D/Y date, found %q", text)
	}
	month, err1 := strconv.Atoi(parts[0])
	day, err2 := strconv.Atoi(parts[1])
	year, err3 := strconv.Atoi(parts[2])
	if err1 != nil || err2 != nil || err3 != nil {
		return time.Time{}, fmt.Errorf("non-numeric date component in %q", text)
	}
	if month < 1 || month > 12 || day < 1 || day > 31 {
		return time.Time{}, fmt.Errorf("date %q out of range", text)
	}
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC), nil
}

// parseMoney parses a signed currency literal. A leading $ denotes a
// non-negative amount; the parenthesized form ($X) denotes a negative
// amount; anything else is an error.
func parseMoney(text string) (float64, error) {
	s := strings.ReplaceAll(strings.TrimSpace(text), ",", "")
	switch {
	case strings.HasPrefix(s, "$"):
		v, err := strconv.ParseFloat(s[1:], 64)
		if err != nil {
			return 0, fmt.Errorf("invalid money amount %q: %w", text, err)
		}
		return v, nil
	case strings.HasPrefix(s, "($") && strings.HasSuffix(s, ")"):
		v, err := strconv.ParseFloat(s[2:len(s)-1], 64)
		if err != nil {
			return 0, fmt.Errorf("invalid money amount %q: %w", text, err)
		}
		return -v, nil
	}
	return 0, fmt.Errorf("expected money term to start with $ or ($, found %q", text)
}

// flatten recursively expands nested []any results, yielding every
// non-list value in order. Reducers use it to find the records produced
// anywhere beneath a structural node.
func flatten(values []any) []any {
	var out []any
	for _, v := range values {
		if list, ok := v.([]any); ok {
			out = append(out, flatten(list)...)
		} else if v != nil {
			out = append(out, v)
		}
	}
	return out
}
