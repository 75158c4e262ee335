// Package digitlist provides arbitrary precision non-negative integers stored
// as circular lists of digits.
//
// A List keeps its digits most significant first in a ring (see package ring)
// together with the radix they are written in. Lists built from decimal input
// use radix 10:
//
//  l := digitlist.FromString("255")
//  l.String()                // "255"
//  l.ChangeScale().String()  // "FF"
//
// Decimal Bridge
//
// Operations that need the numeric value decode the digits to an exact
// integer (package decimal), compute with it and encode the result as a new
// list. ChangeScale re-encodes in radix 16; AdditionalOperation multiplies two
// lists and always produces a radix 10 result regardless of the operand
// radices:
//
//  a := digitlist.FromString("12")
//  b := digitlist.FromString("3")
//  p, _ := a.AdditionalOperation(b)
//  p.ToDecimalString()       // "36"
//
// Input Errors
//
// FromString and FromFile never fail. Text that is not entirely decimal digits
// or a file that cannot be read yields an empty list and the cause is only
// logged at debug level. Parse and Load are the same constructors with the
// cause returned.
//
// Index errors (IndexRangeError) and operand type errors (TypeMismatchError)
// are always returned to the caller.
//
// Digits are not checked against the radix when they are added. A digit that
// does not fit still takes part in arithmetic with its own value and renders
// as '?' in String.
//
// Bulk Operations
//
// The Collection interface lists the bulk operations of an ordered collection
// (AddAll, RemoveAll, SubList and so on). List provides them only to return
// UnsupportedOperationError; NumberList is the supported subset.
package digitlist
