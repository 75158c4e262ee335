package digitlist

import (
	"github.com/zeebo/errs"

	"github.com/calebcase/digitlist/ring"
)

var (
	// Error is the general class of digit list errors.
	Error = errs.Class("digitlist")

	// IndexRangeError is returned for an index outside the list.
	IndexRangeError = &ring.IndexRangeError

	// UnsupportedOperationError is returned by the bulk collection
	// operations.
	UnsupportedOperationError = errs.Class("unsupported operation")

	// TypeMismatchError is returned when an operand is not a *List.
	TypeMismatchError = errs.Class("type mismatch")
)

