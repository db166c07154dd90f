// Package grammar is a deterministic PEG evaluator.
//
// A [Grammar] is a named set of parsing expressions built from the
// combinators in this package:
//
//	g := grammar.New("greeting",
//		grammar.Rules{
//			"greeting": grammar.Seq(grammar.Ref("word"), grammar.Lit(" "), grammar.Ref("word")),
//			"word":     grammar.Rgx(`[a-z]+`),
//		})
//	tree, err := g.Parse("hello world")
//
// Evaluation is PEG-style: alternatives are tried in order and the first
// match commits, repetition is greedy, and there is no backtracking into
// an already-committed alternative. A failed parse reports the furthest
// position reached, which is the most useful signal when a document
// layout has drifted from what the grammar expects.
//
// Parse produces a generic [Node] tree; interpreting it is the caller's
// concern (see the docket package's reducers).
package grammar
