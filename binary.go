package digitlist

import (
	"math/big"

	"github.com/calebcase/digitlist/decimal"
	"github.com/calebcase/digitlist/radix"
	"github.com/calebcase/digitlist/ring"
)

// MarshalBinary implements encoding.BinaryMarshaler.
//
// The first byte is the radix and the rest is the value as a big-endian
// unsigned integer. Leading zero digits are not kept.
func (l *List) MarshalBinary() (data []byte, err error) {
	if l.r.Len() == 0 {
		return []byte{byte(l.radix)}, nil
	}

	value := decimal.Value(l.r, l.radix).Bytes()

	// Note: big.Int encodes zero as an empty byte array, but we
	// desire zero to be an actual zero byte.
	if len(value) == 0 {
		value = []byte{0}
	}

	return append([]byte{byte(l.radix)}, value...), nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler. A lone radix byte is
// an empty list.
func (l *List) UnmarshalBinary(data []byte) (err error) {
	defer Error.WrapP(&err)

	if len(data) == 0 {
		return Error.New("missing radix")
	}

	to := int(data[0])

	err = radix.Check(to)
	if err != nil {
		return err
	}

	r := ring.New()
	if len(data) > 1 {
		decimal.Format(r, new(big.Int).SetBytes(data[1:]), to)
	}

	l.r = r
	l.radix = to

	return nil
}
