// Package radix re-expresses digit rings in another scale of notation.
package radix

import (
	"github.com/zeebo/errs"

	"github.com/calebcase/digitlist/decimal"
	"github.com/calebcase/digitlist/ring"
)

// Error is the class of radix errors.
var Error = errs.Class("radix")

const (
	// Min and Max bound the radices a digit can be rendered in.
	Min = 2
	Max = 36

	// Target is the radix ChangeScale converts to.
	Target = 16
)

// Check returns an error if radix cannot be rendered.
func Check(radix int) error {
	if radix < Min || radix > Max {
		return Error.New("radix %d not in [%d..%d]", radix, Min, Max)
	}

	return nil
}

// Convert returns a new ring holding the value of r (in radix from) expressed
// in radix to. The source ring is not modified.
//
// The value is decoded through the decimal bridge and then divided by the
// target radix until exhausted, each remainder being placed in front of the
// digits found so far. Zero converts to a single 0 digit.
func Convert(r *ring.Ring, from, to int) *ring.Ring {
	out := ring.New()
	decimal.Format(out, decimal.Value(r, from), to)

	return out
}
