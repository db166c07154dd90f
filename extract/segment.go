package extract

import (
	"fmt"
	"strings"
)

// TextState is the subset of the PDF text state extraction cares about:
// the active font resource and size. Values are immutable; Tf replaces
// the whole state, and q/Q save and restore it on an explicit stack.
type TextState struct {
	Font string  // font resource name, e.g. "F1"
	Size float64 // font size in unscaled text space units
}

// Segment is a finalized run of same-font, same-logical-line decoded
// text with the device-space coordinates of the point where it started.
type Segment struct {
	Content   string
	OriginX   float64
	OriginY   float64
	FontClass string // font.ClassNormal or font.ClassBold
}

// Render returns the serialized form of the segment: content followed by
// the bracketed, fixed-precision position and font class annotation and
// the terminator.
func (s Segment) Render() string {
	return fmt.Sprintf("%s%c%06.2f,%06.2f,%s%c%c",
		s.Content, PropsOpen, s.OriginX, s.OriginY, s.FontClass, PropsClose, Terminator)
}

// Render concatenates the serialized form of every segment in order.
func Render(segments []Segment) string {
	var sb strings.Builder
	for _, s := range segments {
		sb.WriteString(s.Render())
	}
	return sb.String()
}

// workingSegment is the interpreter's mutable accumulator. It becomes a
// Segment when finalized and is then reset in place.
type workingSegment struct {
	content   string
	originSet bool
	originX   float64
	originY   float64

	// Translation accumulated since the origin, used only to classify a
	// later reposition as a box wrap or a return to the current line.
	xCarry float64
	yCarry float64
}

func (w *workingSegment) reset() {
	w.content = ""
	w.originSet = false
	w.originX = 0
	w.originY = 0
	w.xCarry = 0
	w.yCarry = 0
}
