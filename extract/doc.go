// Package extract reconstructs logical text segments from the content
// stream of one page of a machine-generated court document.
//
// The page description format has no notion of a line or a field: it is a
// stream of positioning and glyph-showing instructions. The [Interpreter]
// is a state machine that resolves this ambiguity with spacing
// heuristics: glyph runs in the same font on the same logical line
// accumulate into a [Segment]; font changes, graphics-state pops, text
// block ends and large vertical moves finalize it. Meaningful horizontal
// gaps, wrapped text boxes and out-of-order placements are recorded
// inside the segment content with reserved sentinel characters.
//
// A finalized segment renders to one line of the intermediate annotated
// text format consumed by the grammar:
//
//	Defendant Name[036.00,720.00,bold]
//
// The spacing thresholds are empirically tuned to one report generator's
// output and are configurable via [Tolerances].
package extract
