package contentstream

import "strconv"

// Object represents a PDF object appearing as a content stream operand.
type Object interface {
	String() string
}

// Null represents a PDF null object.
type Null struct{}

func (n Null) String() string { return "null" }

// Bool represents a PDF boolean.
type Bool bool

func (b Bool) String() string {
	if b {
		return "true"
	}
	return "false"
}

// Int represents a PDF integer.
type Int int64

func (i Int) String() string { return strconv.FormatInt(int64(i), 10) }

// Real represents a PDF real number.
type Real float64

func (r Real) String() string { return strconv.FormatFloat(float64(r), 'f', -1, 64) }

// String represents a PDF string. The bytes are character codes in some
// font's encoding, not text; decoding them is the font package's job.
type String string

func (s String) String() string { return "(" + string(s) + ")" }

// Name represents a PDF name such as /F1.
type Name string

func (n Name) String() string { return "/" + string(n) }

// Array represents a PDF array.
type Array []Object

func (a Array) String() string {
	out := "["
	for i, obj := range a {
		if i > 0 {
			out += " "
		}
		out += obj.String()
	}
	return out + "]"
}

// Dict represents a PDF dictionary. Rare in content streams (marked
// content property lists), but must not break the parser.
type Dict map[string]Object

func (d Dict) String() string {
	out := "<<"
	for k, v := range d {
		out += "/" + k + " " + v.String()
	}
	return out + ">>"
}

// ToFloat converts a numeric operand to float64. The second return value
// reports whether the operand was numeric.
func ToFloat(obj Object) (float64, bool) {
	switch v := obj.(type) {
	case Int:
		return float64(v), true
	case Real:
		return float64(v), true
	default:
		return 0, false
	}
}
