// Package decimal bridges digit rings and exact base 10 values.
//
// A ring in radix b with digits d0 d1 ... dn (d0 most significant) has the
// value:
//
//  value = ((d0 * b + d1) * b + ...) * b + dn
//
// For example the radix 16 ring F F is 15 * 16 + 15 = 255.
//
// Arithmetic on digit lists is done by decoding both sides to a big.Int with
// Value, operating on the integers and encoding the result again with Format
// (any radix) or Fill (decimal text).
//
// Text Form
//
// The only text accepted is one or more ASCII decimal digits, matched in full:
//
//  ^[0-9]+$
//
// Each character becomes one digit in the same order, so leading zeros are
// kept as digits ("007" is the ring 0 0 7) even though they do not change the
// value ("7"). An empty ring has no text form and Text returns "".
//
// Files
//
// A stored number is one line of decimal text. Only the first line is read and
// surrounding whitespace on it is ignored.
package decimal
