package digitlist

import (
	"github.com/calebcase/digitlist/decimal"
	"github.com/calebcase/digitlist/ring"
)

// NumberList is the set of operations a digit list supports.
type NumberList interface {
	Size() int
	IsEmpty() bool
	Contains(d Digit) bool
	Iter() *ring.Iterator
	ToArray() []Digit

	Add(d Digit) bool
	AddFirst(d Digit)
	Get(index int) (Digit, error)
	Set(index int, d Digit) (Digit, error)
	Insert(index int, d Digit) error
	Remove(index int) (Digit, error)
	RemoveValue(d Digit) bool
	IndexOf(d Digit) int
	LastIndexOf(d Digit) int
	Clear()

	SortAscending()
	SortDescending()
	ShiftLeft()
	ShiftRight()
	Swap(i, j int) bool
	SaveList(path string) error

	Radix() int
	ChangeScale() *List
	AdditionalOperation(arg NumberList) (*List, error)
	ToDecimalString() string
	String() string
	Equal(o NumberList) bool
}

// Collection adds the bulk operations of a general ordered collection. A List
// implements them only to report UnsupportedOperationError.
type Collection interface {
	NumberList

	AddAll(ds []Digit) error
	InsertAll(index int, ds []Digit) error
	RemoveAll(ds []Digit) error
	RetainAll(ds []Digit) error
	ContainsAll(ds []Digit) (bool, error)
	ListIterator(index int) (*ring.Iterator, error)
	SubList(from, to int) (*List, error)
}

var (
	_ NumberList = (*List)(nil)
	_ Collection = (*List)(nil)
)

func unsupported(op string) error {
	return UnsupportedOperationError.New("%s", op)
}

func (l *List) AddAll(ds []Digit) error {
	return unsupported("AddAll")
}

func (l *List) InsertAll(index int, ds []Digit) error {
	return unsupported("InsertAll")
}

func (l *List) RemoveAll(ds []Digit) error {
	return unsupported("RemoveAll")
}

func (l *List) RetainAll(ds []Digit) error {
	return unsupported("RetainAll")
}

func (l *List) ContainsAll(ds []Digit) (bool, error) {
	return false, unsupported("ContainsAll")
}

func (l *List) ListIterator(index int) (*ring.Iterator, error) {
	return nil, unsupported("ListIterator")
}

func (l *List) SubList(from, to int) (*List, error) {
	return nil, unsupported("SubList")
}

// SortAscending orders the digits from smallest to largest.
func (l *List) SortAscending() {
	l.r.Sort(false)
}

// SortDescending orders the digits from largest to smallest.
func (l *List) SortDescending() {
	l.r.Sort(true)
}

// ShiftLeft rotates the digits one place toward the front; the most
// significant digit becomes the least significant.
func (l *List) ShiftLeft() {
	l.r.Rotate(1)
}

// ShiftRight rotates the digits one place toward the back.
func (l *List) ShiftRight() {
	l.r.Rotate(-1)
}

// Swap exchanges the digits at i and j. It reports false, leaving the list
// unchanged, if either index is out of range.
func (l *List) Swap(i, j int) bool {
	return l.r.Swap(i, j) == nil
}

// SaveList writes the decimal value as a single line to the file at path.
func (l *List) SaveList(path string) (err error) {
	defer Error.WrapP(&err)

	return decimal.WriteFile(l.r, l.radix, path)
}
