package grammar

import (
	"fmt"
	"regexp"
	"strings"
)

// Expr is a parsing expression.
type Expr interface {
	// match attempts the expression at pos. It returns the matched node
	// and true, or nil and false. Implementations must not consume input
	// on failure.
	match(p *parser, pos int) (*Node, bool)

	// desc is a short human-readable description for error messages and
	// validation.
	desc() string
}

// Lit matches an exact literal string.
func Lit(s string) Expr { return litExpr(s) }

type litExpr string

func (e litExpr) match(p *parser, pos int) (*Node, bool) {
	if strings.HasPrefix(p.input[pos:], string(e)) {
		return p.leaf(pos, pos+len(e)), true
	}
	p.fail(pos, e)
	return nil, false
}

func (e litExpr) desc() string { return fmt.Sprintf("%q", string(e)) }

// Rgx matches a regular expression anchored at the current position.
func Rgx(pattern string) Expr {
	return &rgxExpr{
		pattern: pattern,
		re:      regexp.MustCompile(`^(?:` + pattern + `)`),
	}
}

type rgxExpr struct {
	pattern string
	re      *regexp.Regexp
}

func (e *rgxExpr) match(p *parser, pos int) (*Node, bool) {
	loc := e.re.FindStringIndex(p.input[pos:])
	if loc == nil {
		p.fail(pos, e)
		return nil, false
	}
	return p.leaf(pos, pos+loc[1]), true
}

func (e *rgxExpr) desc() string { return fmt.Sprintf("/%s/", e.pattern) }

// Seq matches every sub-expression in order.
func Seq(exprs ...Expr) Expr { return seqExpr(exprs) }

type seqExpr []Expr

func (e seqExpr) match(p *parser, pos int) (*Node, bool) {
	children := make([]*Node, 0, len(e))
	cur := pos
	for _, sub := range e {
		n, ok := sub.match(p, cur)
		if !ok {
			return nil, false
		}
		children = append(children, n)
		cur = n.End
	}
	return p.inner(pos, cur, children), true
}

func (e seqExpr) desc() string { return "sequence" }

// Choice matches the first sub-expression that succeeds. Order is
// significant: a successful alternative commits.
func Choice(exprs ...Expr) Expr { return choiceExpr(exprs) }

type choiceExpr []Expr

func (e choiceExpr) match(p *parser, pos int) (*Node, bool) {
	for _, sub := range e {
		if n, ok := sub.match(p, pos); ok {
			return n, true
		}
	}
	return nil, false
}

func (e choiceExpr) desc() string { return "choice" }

// Star matches the sub-expression zero or more times, greedily.
func Star(expr Expr) Expr { return &repExpr{expr: expr, min: 0} }

// Plus matches the sub-expression one or more times, greedily.
func Plus(expr Expr) Expr { return &repExpr{expr: expr, min: 1} }

type repExpr struct {
	expr Expr
	min  int
}

func (e *repExpr) match(p *parser, pos int) (*Node, bool) {
	var children []*Node
	cur := pos
	for {
		n, ok := e.expr.match(p, cur)
		if !ok {
			break
		}
		if n.End == cur && len(children) > 0 {
			// zero-width match would loop forever
			break
		}
		children = append(children, n)
		cur = n.End
	}
	if len(children) < e.min {
		return nil, false
	}
	return p.inner(pos, cur, children), true
}

func (e *repExpr) desc() string {
	if e.min > 0 {
		return "one or more of " + e.expr.desc()
	}
	return "zero or more of " + e.expr.desc()
}

// Opt matches the sub-expression zero or one time.
func Opt(expr Expr) Expr { return &optExpr{expr: expr} }

type optExpr struct {
	expr Expr
}

func (e *optExpr) match(p *parser, pos int) (*Node, bool) {
	if n, ok := e.expr.match(p, pos); ok {
		return p.inner(pos, n.End, []*Node{n}), true
	}
	return p.inner(pos, pos, nil), true
}

func (e *optExpr) desc() string { return "optional " + e.expr.desc() }

// Not is a zero-width negative lookahead: it succeeds, consuming nothing,
// only if the sub-expression fails at the current position.
func Not(expr Expr) Expr { return &notExpr{expr: expr} }

type notExpr struct {
	expr Expr
}

func (e *notExpr) match(p *parser, pos int) (*Node, bool) {
	// Failures inside a negative lookahead are expected and must not move
	// the furthest-failure marker.
	saved := p.furthest
	savedExpr := p.furthestExpr
	if _, ok := e.expr.match(p, pos); ok {
		p.fail(pos, e)
		return nil, false
	}
	p.furthest = saved
	p.furthestExpr = savedExpr
	return p.inner(pos, pos, nil), true
}

func (e *notExpr) desc() string { return "not " + e.expr.desc() }

// Ref matches the named rule. The resulting node carries the rule name,
// which is what reducers dispatch on.
func Ref(name string) Expr { return refExpr(name) }

type refExpr string

func (e refExpr) match(p *parser, pos int) (*Node, bool) {
	expr, ok := p.grammar.rules[string(e)]
	if !ok {
		// construction validates references; this is unreachable for a
		// validated grammar
		p.fail(pos, e)
		return nil, false
	}
	n, matched := expr.match(p, pos)
	if !matched {
		return nil, false
	}
	named := *n
	named.Rule = string(e)
	return &named, true
}

func (e refExpr) desc() string { return string(e) }
