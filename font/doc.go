// Package font models the font resources of machine-generated court
// documents: simple single-byte TrueType fonts with a ToUnicode CMap and
// a Widths array.
//
// A [Font] answers the two questions extraction needs: what text does a
// byte run show, and how much horizontal space does it occupy in glyph
// units. It also classifies itself as bold or normal from its base font
// name, and can audit its reachable characters against the reserved
// sentinel set used by the segment serializer.
package font
