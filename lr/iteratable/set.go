package iteratable

import (
	"bytes"
	"fmt"
)

// Set is an insertion-ordered set of comparable items.
type Set struct {
	items  []interface{}
	member map[interface{}]struct{}
	cursor int // iteration cursor, see IterateOnce
}

// NewSet creates an empty set. cap is a capacity hint.
func NewSet(cap int) *Set {
	if cap < 0 {
		cap = 0
	}
	return &Set{
		items:  make([]interface{}, 0, cap),
		member: make(map[interface{}]struct{}, cap),
	}
}

// Add puts an item into S. It returns true if the item has not been a member before.
// Items have to be comparable.
func (S *Set) Add(item interface{}) bool {
	if _, ok := S.member[item]; ok {
		return false
	}
	S.member[item] = struct{}{}
	S.items = append(S.items, item)
	return true
}

// Contains checks if item is a member of S.
func (S *Set) Contains(item interface{}) bool {
	if S == nil {
		return false
	}
	_, ok := S.member[item]
	return ok
}

// Size returns the number of items in S.
func (S *Set) Size() int {
	if S == nil {
		return 0
	}
	return len(S.items)
}

// Values returns the items of S in insertion order. The slice is a copy.
func (S *Set) Values() []interface{} {
	vals := make([]interface{}, len(S.items))
	copy(vals, S.items)
	return vals
}

// Equals is true if S and other contain exactly the same items, regardless of order.
func (S *Set) Equals(other *Set) bool {
	if S.Size() != other.Size() {
		return false
	}
	for _, x := range S.items {
		if !other.Contains(x) {
			return false
		}
	}
	return true
}

// --- Iteration -------------------------------------------------------------

// IterateOnce starts an iteration over S. Usage:
//
//     S.IterateOnce()
//     for S.Next() {
//         item := S.Item()
//         …                 // may add items to S, they will be visited
//     }
//
func (S *Set) IterateOnce() {
	S.cursor = 0
}

// Next moves the iteration cursor and is false when all items have been visited.
func (S *Set) Next() bool {
	if S.cursor >= len(S.items) {
		return false
	}
	S.cursor++
	return true
}

// Item returns the current item of an iteration.
func (S *Set) Item() interface{} {
	if S.cursor == 0 || S.cursor > len(S.items) {
		panic("iteratable.Set.Item() called outside of iteration")
	}
	return S.items[S.cursor-1]
}

func (S *Set) String() string {
	var b bytes.Buffer
	b.WriteString("{")
	for i, x := range S.items {
		if i > 0 {
			b.WriteString(",")
		}
		b.WriteString(fmt.Sprintf(" %v", x))
	}
	b.WriteString(" }")
	return b.String()
}
