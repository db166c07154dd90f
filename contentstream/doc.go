// Package contentstream provides parsing and replay of PDF content streams.
//
// Content streams contain the instructions for rendering page content. A
// stream is a sequence of operands followed by an operator:
//
//	/F1 8 Tf
//	1 0 0 1 36.0 720.0 Tm
//	(Hello) Tj
//
// # Parsing
//
// The [Parser] tokenizes a decoded stream into []Operation:
//
//	parser := contentstream.NewParser(streamData)
//	ops, err := parser.Parse()
//	for _, op := range ops {
//	    fmt.Printf("Operator: %s, Operands: %v\n", op.Operator, op.Operands)
//	}
//
// # Replay
//
// The [Walker] executes the positioning subset of the operator vocabulary
// (q, Q, cm, BT, ET, Tm, Td, TD, T*, TL) while calling a [Visitor] for
// every operation together with the current text matrix and the current
// transformation matrix. Consumers that only care about text, such as the
// extract package, never track matrices themselves.
//
// # Operand Types
//
// Operands can be any object type that occurs in content streams:
//   - Numbers (Int, Real)
//   - Strings (String)
//   - Names (Name)
//   - Arrays (Array)
//   - Dictionaries (Dict)
//   - Booleans and null (Bool, Null)
package contentstream
