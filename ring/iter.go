package ring

// Iterator walks the digits of a ring from the most significant digit. It
// stops after visiting each node exactly once even though the links wrap
// around.
type Iterator struct {
	r *Ring

	cur   int
	count int
	digit Digit
}

// Iter returns an iterator positioned before the first digit.
func (r *Ring) Iter() *Iterator {
	return &Iterator{
		r:   r,
		cur: r.Head(),
	}
}

// Next advances to the next digit and reports whether one was available.
func (it *Iterator) Next() (ok bool) {
	if it.cur == None || it.count >= it.r.size {
		return false
	}

	n := &it.r.nodes[it.cur]
	it.digit = n.digit
	it.cur = n.next
	it.count++

	return true
}

// Digit returns the digit at the current position.
func (it *Iterator) Digit() Digit {
	return it.digit
}

// Index returns the index of the current digit.
func (it *Iterator) Index() int {
	return it.count - 1
}
