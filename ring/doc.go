// Package ring provides the circular digit storage underlying a digit list.
//
// Digits are held in nodes that link forward and backward to their
// neighbours, with the last node linking back to the first. The first node
// (head) holds the most significant digit.
//
// Pool Layout
//
// Nodes are not individually allocated. They live in a dense slice of slots
// owned by the ring and the links are slot indices. Removed nodes give their
// slot back to a free list that later insertions draw from before growing the
// slice. For example, the number 907 after removing and reinserting the 0:
//
//  slot | digit | next | prev |
//  -----|-------|------|------|
//     0 |     9 |    2 |    1 | <- head
//     1 |     7 |    0 |    2 |
//     2 |     0 |    1 |    0 | (reused from the free list)
//
// Invariants
//
// Starting from head and following next exactly Len times returns to head and
// following prev visits the same nodes in reverse. An empty ring has no head
// (None). A ring of one node links that node to itself in both directions.
//
// Traversal is always bounded by Len rather than by reaching head again, so
// iteration terminates regardless of the circular links.
package ring
