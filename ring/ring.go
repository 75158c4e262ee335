package ring

import (
	"sort"

	"github.com/zeebo/errs"
)

// IndexRangeError is the class of errors returned for an index outside the
// ring.
var IndexRangeError = errs.Class("index out of range")

// None is the slot index used for an absent node.
const None = -1

// Digit is a single digit of a number. Values are expected to be below the
// radix of the owning list but this is not enforced.
type Digit = uint8

type node struct {
	digit Digit
	next  int
	prev  int
}

// Ring is a circular doubly linked list of digits. Nodes live in a pool owned
// by the ring and link to each other by slot index. Released slots are kept on
// a free list and reused by later insertions.
//
// The zero value is a ready to use empty ring.
type Ring struct {
	nodes []node
	free  []int

	head int
	size int
}

// New returns an empty ring.
func New() *Ring {
	return &Ring{
		head: None,
	}
}

// Len returns the number of digits in the ring.
func (r *Ring) Len() int {
	return r.size
}

// Head returns the slot of the most significant digit or None.
func (r *Ring) Head() int {
	if r.size == 0 {
		return None
	}

	return r.head
}

// Links returns the next and previous slots of the node in slot.
func (r *Ring) Links(slot int) (next, prev int) {
	n := &r.nodes[slot]

	return n.next, n.prev
}

func (r *Ring) alloc(d Digit) (slot int) {
	if len(r.free) > 0 {
		slot = r.free[len(r.free)-1]
		r.free = r.free[:len(r.free)-1]
		r.nodes[slot] = node{digit: d}

		return slot
	}

	r.nodes = append(r.nodes, node{digit: d})

	return len(r.nodes) - 1
}

func (r *Ring) release(slot int) {
	r.nodes[slot] = node{next: None, prev: None}
	r.free = append(r.free, slot)
}

// slot walks forward from head to the node at index. The index must already
// be checked.
func (r *Ring) slot(index int) int {
	cur := r.head
	for i := 0; i < index; i++ {
		cur = r.nodes[cur].next
	}

	return cur
}

func (r *Ring) check(index int) error {
	if index < 0 || index >= r.size {
		return IndexRangeError.New("index=%d size=%d", index, r.size)
	}

	return nil
}

// linkBefore places a new node holding d in front of the node in slot at.
func (r *Ring) linkBefore(at int, d Digit) int {
	n := r.alloc(d)
	prev := r.nodes[at].prev

	r.nodes[n].next = at
	r.nodes[n].prev = prev
	r.nodes[prev].next = n
	r.nodes[at].prev = n

	r.size++

	return n
}

// Append adds d after the least significant digit.
func (r *Ring) Append(d Digit) {
	if r.size == 0 {
		n := r.alloc(d)
		r.nodes[n].next = n
		r.nodes[n].prev = n
		r.head = n
		r.size = 1

		return
	}

	// Inserting in front of head lands the node at the tail.
	r.linkBefore(r.head, d)
}

// Prepend adds d as the new most significant digit.
func (r *Ring) Prepend(d Digit) {
	if r.size == 0 {
		r.Append(d)

		return
	}

	r.head = r.linkBefore(r.head, d)
}

// Get returns the digit at index.
func (r *Ring) Get(index int) (d Digit, err error) {
	err = r.check(index)
	if err != nil {
		return 0, err
	}

	return r.nodes[r.slot(index)].digit, nil
}

// Set replaces the digit at index and returns the previous digit.
func (r *Ring) Set(index int, d Digit) (old Digit, err error) {
	err = r.check(index)
	if err != nil {
		return 0, err
	}

	n := &r.nodes[r.slot(index)]
	old, n.digit = n.digit, d

	return old, nil
}

// Insert places d in front of the digit currently at index. An index equal to
// the length appends.
func (r *Ring) Insert(index int, d Digit) (err error) {
	if index < 0 || index > r.size {
		return IndexRangeError.New("index=%d size=%d", index, r.size)
	}

	if index == r.size {
		r.Append(d)

		return nil
	}

	n := r.linkBefore(r.slot(index), d)
	if index == 0 {
		r.head = n
	}

	return nil
}

// Remove unlinks the digit at index and returns it.
func (r *Ring) Remove(index int) (d Digit, err error) {
	err = r.check(index)
	if err != nil {
		return 0, err
	}

	slot := r.slot(index)
	n := r.nodes[slot]

	if r.size == 1 {
		r.head = None
	} else {
		r.nodes[n.prev].next = n.next
		r.nodes[n.next].prev = n.prev

		if slot == r.head {
			r.head = n.next
		}
	}

	r.release(slot)
	r.size--

	return n.digit, nil
}

// RemoveValue removes the first occurrence of d. It reports whether a digit
// was removed.
func (r *Ring) RemoveValue(d Digit) bool {
	i := r.IndexOf(d)
	if i == None {
		return false
	}

	_, err := r.Remove(i)

	return err == nil
}

// IndexOf returns the index of the first occurrence of d or None.
func (r *Ring) IndexOf(d Digit) int {
	it := r.Iter()
	for i := 0; it.Next(); i++ {
		if it.Digit() == d {
			return i
		}
	}

	return None
}

// LastIndexOf is the same search as IndexOf. Callers rely on it returning the
// first occurrence.
func (r *Ring) LastIndexOf(d Digit) int {
	return r.IndexOf(d)
}

// Contains reports whether d is in the ring.
func (r *Ring) Contains(d Digit) bool {
	return r.IndexOf(d) != None
}

// Clear discards every node.
func (r *Ring) Clear() {
	r.nodes = r.nodes[:0]
	r.free = r.free[:0]
	r.head = None
	r.size = 0
}

// Digits returns the digits in ring order.
func (r *Ring) Digits() []Digit {
	ds := make([]Digit, 0, r.size)

	it := r.Iter()
	for it.Next() {
		ds = append(ds, it.Digit())
	}

	return ds
}

// Equal reports whether both rings hold the same digit sequence.
func (r *Ring) Equal(o *Ring) bool {
	if r.size != o.size {
		return false
	}

	a, b := r.Iter(), o.Iter()
	for a.Next() && b.Next() {
		if a.Digit() != b.Digit() {
			return false
		}
	}

	return true
}

// Clone returns a copy of the ring with a compacted pool.
func (r *Ring) Clone() *Ring {
	c := New()

	it := r.Iter()
	for it.Next() {
		c.Append(it.Digit())
	}

	return c
}

// Rotate moves head n nodes forward (negative n moves it backward).
func (r *Ring) Rotate(n int) {
	if r.size == 0 {
		return
	}

	for ; n > 0; n-- {
		r.head = r.nodes[r.head].next
	}

	for ; n < 0; n++ {
		r.head = r.nodes[r.head].prev
	}
}

// Swap exchanges the digits at i and j.
func (r *Ring) Swap(i, j int) (err error) {
	err = r.check(i)
	if err != nil {
		return err
	}

	err = r.check(j)
	if err != nil {
		return err
	}

	a, b := &r.nodes[r.slot(i)], &r.nodes[r.slot(j)]
	a.digit, b.digit = b.digit, a.digit

	return nil
}

// Sort orders the digits in place. The linkage is untouched; only the digit
// values move between nodes.
func (r *Ring) Sort(descending bool) {
	ds := r.Digits()

	sort.Slice(ds, func(i, j int) bool {
		if descending {
			return ds[i] > ds[j]
		}

		return ds[i] < ds[j]
	})

	cur := r.head
	for _, d := range ds {
		r.nodes[cur].digit = d
		cur = r.nodes[cur].next
	}
}
