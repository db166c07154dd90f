package grammar

import (
	"fmt"
	"strings"
)

// Node is one vertex of the parse tree: the rule that produced it (empty
// for anonymous sub-expressions), the matched span, and its children in
// match order. Nodes are read-only once Parse returns.
type Node struct {
	Rule     string
	Start    int
	End      int
	Text     string
	Children []*Node
}

// Rules maps rule names to their expressions.
type Rules map[string]Expr

// Grammar is a validated rule set with a designated start rule.
type Grammar struct {
	start string
	rules Rules
}

// New builds a grammar. It panics if the start rule or any referenced
// rule is undefined; grammars are program data, so a bad reference is a
// programming error, not an input error.
func New(start string, rules Rules) *Grammar {
	g := &Grammar{start: start, rules: rules}
	if err := g.validate(); err != nil {
		panic(err)
	}
	return g
}

// validate checks that the start rule exists and every Ref resolves.
func (g *Grammar) validate() error {
	if _, ok := g.rules[g.start]; !ok {
		return fmt.Errorf("grammar: start rule %q is not defined", g.start)
	}
	for name, expr := range g.rules {
		for _, ref := range collectRefs(expr, nil) {
			if _, ok := g.rules[ref]; !ok {
				return fmt.Errorf("grammar: rule %q references undefined rule %q", name, ref)
			}
		}
	}
	return nil
}

func collectRefs(expr Expr, refs []string) []string {
	switch e := expr.(type) {
	case refExpr:
		refs = append(refs, string(e))
	case seqExpr:
		for _, sub := range e {
			refs = collectRefs(sub, refs)
		}
	case choiceExpr:
		for _, sub := range e {
			refs = collectRefs(sub, refs)
		}
	case *repExpr:
		refs = collectRefs(e.expr, refs)
	case *optExpr:
		refs = collectRefs(e.expr, refs)
	case *notExpr:
		refs = collectRefs(e.expr, refs)
	}
	return refs
}

// ParseError reports a failed parse and the furthest position the
// evaluator reached before giving up.
type ParseError struct {
	Pos      int    // byte offset of the furthest failure
	Line     int    // 1-based line of Pos
	Column   int    // 1-based column of Pos
	Expected string // description of the expression that failed there
	tail     string // a little input context after Pos
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error at line %d, column %d (offset %d): expected %s near %q",
		e.Line, e.Column, e.Pos, e.Expected, e.tail)
}

// Parse matches the start rule against the entire input. Anything short
// of a full-input match is a *ParseError.
func (g *Grammar) Parse(input string) (*Node, error) {
	p := &parser{grammar: g, input: input}
	node, ok := Ref(g.start).match(p, 0)
	if !ok || node.End != len(input) {
		if ok {
			// matched a prefix; the interesting position is whatever the
			// evaluator could not get past
			if node.End > p.furthest {
				p.fail(node.End, Lit("end of input"))
			}
		}
		return nil, p.parseError()
	}
	return node, nil
}

// parser holds the per-parse state: the input and the furthest failure.
type parser struct {
	grammar      *Grammar
	input        string
	furthest     int
	furthestExpr Expr
}

func (p *parser) leaf(start, end int) *Node {
	return &Node{Start: start, End: end, Text: p.input[start:end]}
}

func (p *parser) inner(start, end int, children []*Node) *Node {
	return &Node{Start: start, End: end, Text: p.input[start:end], Children: children}
}

// fail records a match failure for furthest-position error reporting.
func (p *parser) fail(pos int, expr Expr) {
	if pos >= p.furthest {
		p.furthest = pos
		p.furthestExpr = expr
	}
}

func (p *parser) parseError() *ParseError {
	line := 1 + strings.Count(p.input[:p.furthest], "\n")
	col := p.furthest - strings.LastIndexByte(p.input[:p.furthest], '\n')

	tail := p.input[p.furthest:]
	if len(tail) > 40 {
		tail = tail[:40]
	}

	expected := "input"
	if p.furthestExpr != nil {
		expected = p.furthestExpr.desc()
	}
	return &ParseError{
		Pos:      p.furthest,
		Line:     line,
		Column:   col,
		Expected: expected,
		tail:     tail,
	}
}
