package contentstream

// Matrix is a 2D affine transformation in the shortened six-element PDF
// form [a b c d e f], row-vector convention: p' = p·M.
type Matrix [6]float64

// Identity returns an identity matrix.
func Identity() Matrix {
	return Matrix{1, 0, 0, 1, 0, 0}
}

// Translate returns a pure translation matrix.
func Translate(tx, ty float64) Matrix {
	return Matrix{1, 0, 0, 1, tx, ty}
}

// Mul returns m×n, the transform that applies m first and then n.
func (m Matrix) Mul(n Matrix) Matrix {
	return Matrix{
		m[0]*n[0] + m[1]*n[2],
		m[0]*n[1] + m[1]*n[3],
		m[2]*n[0] + m[3]*n[2],
		m[2]*n[1] + m[3]*n[3],
		m[4]*n[0] + m[5]*n[2] + n[4],
		m[4]*n[1] + m[5]*n[3] + n[5],
	}
}

// Origin returns the translation components (e, f): the device-space image
// of the text-space origin.
func (m Matrix) Origin() (x, y float64) {
	return m[4], m[5]
}

// Visitor receives every operation together with the text matrix and the
// current transformation matrix in effect after the operation's own
// positioning side effects have been applied. Returning an error aborts
// the walk.
type Visitor func(op Operation, tm, ctm Matrix) error

// Walker replays content stream operations, maintaining the current
// transformation matrix (q, Q, cm) and the text matrix (BT, ET, Tm, Td,
// TD, T*, TL) so that visitors observe the positioning context the PDF
// renderer would.
type Walker struct {
	ctm   Matrix
	stack []Matrix // saved CTMs for q/Q

	tm      Matrix // text matrix
	tlm     Matrix // text line matrix
	leading float64
	inText  bool
}

// NewWalker creates a walker with identity matrices.
func NewWalker() *Walker {
	return &Walker{
		ctm: Identity(),
		tm:  Identity(),
		tlm: Identity(),
	}
}

// Walk replays the operations through the visitor in order.
func (w *Walker) Walk(ops []Operation, visit Visitor) error {
	for _, op := range ops {
		w.apply(op)
		if err := visit(op, w.tm, w.ctm); err != nil {
			return err
		}
	}
	return nil
}

// WalkBytes parses raw content stream data and replays it.
func (w *Walker) WalkBytes(data []byte, visit Visitor) error {
	ops, err := NewParser(data).Parse()
	if err != nil {
		return err
	}
	return w.Walk(ops, visit)
}

// apply updates the matrix state for positioning operators. Operators
// without positioning side effects leave the state untouched.
func (w *Walker) apply(op Operation) {
	switch op.Operator {
	case "q":
		w.stack = append(w.stack, w.ctm)
	case "Q":
		if n := len(w.stack); n > 0 {
			w.ctm = w.stack[n-1]
			w.stack = w.stack[:n-1]
		}
	case "cm":
		if m, ok := operandsMatrix(op.Operands); ok {
			w.ctm = m.Mul(w.ctm)
		}
	case "BT":
		w.tm = Identity()
		w.tlm = Identity()
		w.inText = true
	case "ET":
		w.inText = false
	case "Tm":
		if m, ok := operandsMatrix(op.Operands); ok {
			w.tm = m
			w.tlm = m
		}
	case "Td":
		if tx, ty, ok := operandsPair(op.Operands); ok {
			w.nextLine(tx, ty)
		}
	case "TD":
		if tx, ty, ok := operandsPair(op.Operands); ok {
			w.leading = -ty
			w.nextLine(tx, ty)
		}
	case "T*":
		w.nextLine(0, -w.leading)
	case "TL":
		if len(op.Operands) == 1 {
			if l, ok := ToFloat(op.Operands[0]); ok {
				w.leading = l
			}
		}
	case "'", "\"":
		// both imply a move to the next line before showing text
		w.nextLine(0, -w.leading)
	}
}

// nextLine translates the text line matrix and resets the text matrix to it.
func (w *Walker) nextLine(tx, ty float64) {
	w.tlm = Translate(tx, ty).Mul(w.tlm)
	w.tm = w.tlm
}

func operandsMatrix(operands []Object) (Matrix, bool) {
	if len(operands) != 6 {
		return Identity(), false
	}
	var m Matrix
	for i, op := range operands {
		v, ok := ToFloat(op)
		if !ok {
			return Identity(), false
		}
		m[i] = v
	}
	return m, true
}

func operandsPair(operands []Object) (float64, float64, bool) {
	if len(operands) != 2 {
		return 0, 0, false
	}
	x, okX := ToFloat(operands[0])
	y, okY := ToFloat(operands[1])
	return x, y, okX && okY
}
