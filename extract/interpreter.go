package extract

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/joshuagerstein/PAcourt-document-parser/contentstream"
	"github.com/joshuagerstein/PAcourt-document-parser/font"
)

// Tolerances are the spacing thresholds of the segment state machine.
// They are a heuristic fit to one report generator's output, so they are
// configuration rather than constants.
type Tolerances struct {
	// X is the horizontal tolerance in unscaled text space units. A
	// positive reposition gap larger than X times the font size becomes a
	// field separator; a wrapped text box is recognized when the cursor
	// returns within X of the box's left edge.
	X float64

	// Y is the vertical tolerance in unscaled text space units. A
	// vertical move of at least Y finalizes the segment as a new logical
	// line.
	Y float64

	// OverlapSlack is the (negative) spacing below which a reposition is
	// reported as possibly overlapping earlier text. Slightly below zero
	// so float rounding does not trigger it.
	OverlapSlack float64
}

// DefaultTolerances returns the thresholds tuned to the known generator.
func DefaultTolerances() Tolerances {
	return Tolerances{X: 0.3, Y: 1.0, OverlapSlack: -0.1}
}

// Interpreter turns the operator stream of one page into an ordered
// sequence of finalized segments. It owns all of its mutable state; use a
// fresh Interpreter for each page.
type Interpreter struct {
	fonts  map[string]*font.Font
	tol    Tolerances
	logger *slog.Logger

	state TextState
	stack []TextState

	seg workingSegment

	// Horizontal space occupied by glyphs since the last reposition, in
	// unscaled text space units. See the positive-dx reposition case.
	displacement float64

	segments []Segment
	warnings []string
}

// NewInterpreter creates an interpreter for one page. fonts maps font
// resource names to their parsed font resources. A nil logger uses
// slog.Default. More than two fonts on a page is unexpected for this
// format and draws a warning.
func NewInterpreter(fonts map[string]*font.Font, tol Tolerances, logger *slog.Logger) *Interpreter {
	if logger == nil {
		logger = slog.Default()
	}
	in := &Interpreter{fonts: fonts, tol: tol, logger: logger}
	if len(fonts) > 2 {
		in.warnf("page has %d fonts, expected at most two", len(fonts))
	}
	return in
}

// Visit is a contentstream.Visitor. It processes one operation.
func (in *Interpreter) Visit(op contentstream.Operation, tm, ctm contentstream.Matrix) error {
	// Output coordinates are where the segment started; later repositioning
	// must not move them.
	if (op.Operator == "Tj" || op.Operator == "TJ") && !in.seg.originSet {
		in.seg.originX, in.seg.originY = tm.Mul(ctm).Origin()
		in.seg.originSet = true
	}

	switch op.Operator {
	case "Tf":
		in.finalizeSegment()
		if len(op.Operands) == 2 {
			name, okName := op.Operands[0].(contentstream.Name)
			size, okSize := contentstream.ToFloat(op.Operands[1])
			if okName && okSize {
				in.state = TextState{Font: string(name), Size: size}
				break
			}
		}
		in.warnf("malformed Tf operands: %v", op.Operands)

	case "q":
		in.stack = append(in.stack, in.state)

	case "Q":
		in.finalizeSegment()
		if n := len(in.stack); n > 0 {
			in.state = in.stack[n-1]
			in.stack = in.stack[:n-1]
		} else {
			in.warnf("graphics state restore with empty stack")
		}

	case "ET":
		in.finalizeSegment()

	case "Td":
		dx, dy, ok := pair(op.Operands)
		if !ok {
			in.warnf("malformed Td operands: %v", op.Operands)
			break
		}
		in.reposition(dx, dy)

	case "TJ":
		if len(op.Operands) == 1 {
			if arr, ok := op.Operands[0].(contentstream.Array); ok {
				for _, item := range arr {
					switch v := item.(type) {
					case contentstream.String:
						in.showRun([]byte(v))
					case contentstream.Int, contentstream.Real:
						// inter-glyph kerning pullback, not a line break
						adj, _ := contentstream.ToFloat(v)
						in.displacement -= adj * in.state.Size / 1000
					}
				}
			}
		}

	case "Tj":
		if len(op.Operands) == 1 {
			if str, ok := op.Operands[0].(contentstream.String); ok {
				in.showRun([]byte(str))
			}
		}

	case "'", "\"":
		in.warnf("unexpected text showing operator: %s", op.Operator)

	case "Tc", "Tw", "Tz", "TL", "Ts", "gs":
		in.warnf("unexpected text spacing operator: %s", op.Operator)

	case "T*", "TD":
		in.warnf("unexpected text positioning operator: %s", op.Operator)
	}

	return nil
}

// reposition applies the Td ambiguity-resolution cases, in order:
//
//  1. descending move back to the box's left edge: a wrapped line inside
//     a text box,
//  2. ascending move back to the current baseline: a text box ended,
//  3. vertical move beyond tolerance: new logical line,
//  4. leftward move with content: the next text logically comes before,
//  5. rightward move with content: a field gap, a continuation, or a
//     possible overlap, depending on the glyph displacement since the
//     last reposition.
func (in *Interpreter) reposition(dx, dy float64) {
	switch {
	case dy < 0 && abs(dx+in.seg.xCarry) < in.tol.X:
		in.seg.content += string(BoxWrap)
		in.seg.xCarry = 0
		in.seg.yCarry += dy

	case dy > 0 && abs(dy+in.seg.yCarry) < in.tol.Y:
		in.seg.yCarry = 0
		in.seg.xCarry = 0
		if dx < 0 {
			in.seg.content += string(ComesBefore)
		} else {
			in.seg.content += string(FieldSep)
		}

	case abs(dy) >= in.tol.Y:
		in.finalizeSegment()

	case dx < 0 && in.seg.content != "":
		in.seg.content += string(ComesBefore)

	case dx > 0 && in.seg.content != "":
		spacing := dx - in.displacement
		switch {
		case spacing > in.tol.X*in.state.Size:
			in.seg.content += string(FieldSep)
		case spacing < in.tol.OverlapSlack:
			in.logger.Debug("possibly overlapping text", "after", in.seg.content)
		default:
			in.seg.xCarry += dx
		}
	}
	in.displacement = 0
}

// showRun decodes a glyph run, appends its text to the working segment,
// and accounts for the horizontal space it occupies.
func (in *Interpreter) showRun(run []byte) {
	f, ok := in.fonts[in.state.Font]
	if !ok {
		in.warnf("glyph run shown with unknown font %q", in.state.Font)
		return
	}
	text, width, missing := f.DecodeRun(run)
	if missing > 0 {
		in.warnf("%d character codes missing from font %s", missing, f.BaseFont)
	}
	// Glyph space to text space is the standard 1/1000; scale by font size
	// to get unscaled text space units, which is what Td operands use.
	in.displacement += width / 1000 * in.state.Size
	in.seg.content += text
}

// finalizeSegment ends the working segment, appending a copy to the
// output sequence, then resets the accumulator and displacement.
func (in *Interpreter) finalizeSegment() {
	if in.seg.content != "" {
		content := strings.TrimSuffix(in.seg.content, string(BoxWrap))
		in.segments = append(in.segments, Segment{
			Content:   content,
			OriginX:   in.seg.originX,
			OriginY:   in.seg.originY,
			FontClass: in.fontClass(),
		})
	}
	in.seg.reset()
	in.displacement = 0
}

// fontClass resolves the output label for the active font.
func (in *Interpreter) fontClass() string {
	if f, ok := in.fonts[in.state.Font]; ok {
		return f.Class()
	}
	in.warnf("segment finalized with unknown font %q", in.state.Font)
	return font.ClassNormal
}

// Segments finalizes any pending segment and returns the page's segments
// in source order.
func (in *Interpreter) Segments() []Segment {
	in.finalizeSegment()
	return in.segments
}

// Warnings returns the non-fatal diagnostics recorded while interpreting.
func (in *Interpreter) Warnings() []string {
	return in.warnings
}

func (in *Interpreter) warnf(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	in.warnings = append(in.warnings, msg)
	in.logger.Warn(msg)
}

func pair(operands []contentstream.Object) (float64, float64, bool) {
	if len(operands) != 2 {
		return 0, 0, false
	}
	x, okX := contentstream.ToFloat(operands[0])
	y, okY := contentstream.ToFloat(operands[1])
	return x, y, okX && okY
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
