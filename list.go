package digitlist

import (
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/calebcase/digitlist/decimal"
	"github.com/calebcase/digitlist/radix"
	"github.com/calebcase/digitlist/ring"
)

// DefaultRadix is the radix of lists built from decimal input.
const DefaultRadix = 10

// Digit is a single digit of a list.
type Digit = ring.Digit

const alphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// List is a non-negative integer stored as a circular list of digits in a
// fixed radix, most significant digit first.
type List struct {
	r     *ring.Ring
	radix int
}

// New returns an empty list in the default radix.
func New() *List {
	return &List{
		r:     ring.New(),
		radix: DefaultRadix,
	}
}

// Parse returns a list holding the digits of the decimal string s.
func Parse(s string) (l *List, err error) {
	l = New()

	err = decimal.Fill(l.r, s)
	if err != nil {
		return l, err
	}

	return l, nil
}

// Load returns a list holding the decimal number on the first line of the file
// at path.
func Load(path string) (l *List, err error) {
	l = New()

	err = decimal.ReadFile(l.r, path)
	if err != nil {
		return l, err
	}

	return l, nil
}

// FromString returns a list holding the digits of the decimal string s. Input
// that is not a decimal number produces an empty list.
func FromString(s string) *List {
	l, err := Parse(s)
	if err != nil {
		log.WithFields(log.Fields{
			"value": s,
			"err":   err,
		}).Debug("invalid decimal string, using empty list")
	}

	return l
}

// FromFile returns a list holding the decimal number stored in the file at
// path. Any failure reading or parsing the file produces an empty list.
func FromFile(path string) *List {
	l, err := Load(path)
	if err != nil {
		log.WithFields(log.Fields{
			"path": path,
			"err":  err,
		}).Debug("unable to load number, using empty list")
	}

	return l
}

// Radix returns the radix the digits are expressed in.
func (l *List) Radix() int {
	return l.radix
}

// Size returns the number of digits.
func (l *List) Size() int {
	return l.r.Len()
}

// IsEmpty reports whether the list has no digits.
func (l *List) IsEmpty() bool {
	return l.r.Len() == 0
}

// Contains reports whether d is one of the digits.
func (l *List) Contains(d Digit) bool {
	return l.r.Contains(d)
}

// Iter returns an iterator over the digits, most significant first.
func (l *List) Iter() *ring.Iterator {
	return l.r.Iter()
}

// ToArray returns a copy of the digits.
func (l *List) ToArray() []Digit {
	return l.r.Digits()
}

// Add appends d as the least significant digit. It always reports true.
func (l *List) Add(d Digit) bool {
	l.r.Append(d)

	return true
}

// AddFirst inserts d as the most significant digit.
func (l *List) AddFirst(d Digit) {
	l.r.Prepend(d)
}

func (l *List) Get(index int) (Digit, error) {
	return l.r.Get(index)
}

// Set replaces the digit at index, returning the replaced digit.
func (l *List) Set(index int, d Digit) (Digit, error) {
	return l.r.Set(index, d)
}

// Insert places d before the digit at index; index may equal Size.
func (l *List) Insert(index int, d Digit) error {
	return l.r.Insert(index, d)
}

func (l *List) Remove(index int) (Digit, error) {
	return l.r.Remove(index)
}

// RemoveValue removes the first d, reporting whether one was found.
func (l *List) RemoveValue(d Digit) bool {
	return l.r.RemoveValue(d)
}

// IndexOf returns the index of the first d or -1.
func (l *List) IndexOf(d Digit) int {
	return l.r.IndexOf(d)
}

// LastIndexOf returns the same index as IndexOf.
func (l *List) LastIndexOf(d Digit) int {
	return l.r.LastIndexOf(d)
}

// Clear removes every digit. The radix is kept.
func (l *List) Clear() {
	l.r.Clear()
}

// ChangeScale returns a new list with the same value in radix 16.
func (l *List) ChangeScale() *List {
	return &List{
		r:     radix.Convert(l.r, l.radix, radix.Target),
		radix: radix.Target,
	}
}

// ConvertTo returns a new list with the same value in the given radix.
func (l *List) ConvertTo(to int) (_ *List, err error) {
	err = radix.Check(to)
	if err != nil {
		return nil, err
	}

	return &List{
		r:     radix.Convert(l.r, l.radix, to),
		radix: to,
	}, nil
}

// AdditionalOperation returns the product of l and arg as a new decimal list.
// Neither operand is modified. An empty operand counts as zero.
func (l *List) AdditionalOperation(arg NumberList) (_ *List, err error) {
	o, ok := arg.(*List)
	if !ok || o == nil {
		return nil, TypeMismatchError.New("want *digitlist.List, got %T", arg)
	}

	a := decimal.Value(l.r, l.radix)
	b := decimal.Value(o.r, o.radix)

	return FromString(a.Mul(a, b).Text(10)), nil
}

// ToDecimalString returns the value in base 10, or "" for an empty list.
func (l *List) ToDecimalString() string {
	return decimal.Text(l.r, l.radix)
}

// String returns the digits in the list radix using 0-9 and A-Z. A digit
// that does not fit the radix is shown as '?'.
func (l *List) String() string {
	sb := &strings.Builder{}
	sb.Grow(l.r.Len())

	it := l.r.Iter()
	for it.Next() {
		d := it.Digit()
		if int(d) >= l.radix || int(d) >= len(alphabet) {
			sb.WriteByte('?')

			continue
		}

		sb.WriteByte(alphabet[d])
	}

	return sb.String()
}

// Equal reports whether o is a *List with the same digits. The radix is not
// compared.
func (l *List) Equal(o NumberList) bool {
	other, ok := o.(*List)
	if !ok || other == nil {
		return false
	}

	return l.r.Equal(other.r)
}

// MarshalText implements encoding.TextMarshaler.
func (l *List) MarshalText() (text []byte, err error) {
	return []byte(l.ToDecimalString()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. Unlike FromString the
// malformed input error is returned; the list is left empty in that case.
func (l *List) UnmarshalText(text []byte) (err error) {
	if l.r == nil {
		l.r = ring.New()
	}

	l.r.Clear()
	l.radix = DefaultRadix

	return decimal.Fill(l.r, string(text))
}
