package service

import "fmt"

// Navigator is the selection cursor over a collection of size photos.
// The index stays within [0, size-1]; an empty collection pins it at 0.
type Navigator struct {
	index int
	size  int
}

// Reset points the cursor at the first photo of a collection of size photos.
func (n *Navigator) Reset(size int) {
	n.index = 0
	n.size = max(size, 0)
}

// Index returns the current position.
func (n *Navigator) Index() int {
	return n.index
}

// Previous steps back one photo. Returns false, leaving the index unchanged,
// when already at the first photo.
func (n *Navigator) Previous() bool {
	if n.index <= 0 {
		return false
	}
	n.index--
	return true
}

// Next steps forward one photo. Returns false, leaving the index unchanged,
// when already at the last photo.
func (n *Navigator) Next() bool {
	if n.index >= n.size-1 {
		return false
	}
	n.index++
	return true
}

// Position renders the 1-based "current/total" status, "0/0" when empty.
func (n *Navigator) Position() string {
	if n.size == 0 {
		return "0/0"
	}
	return fmt.Sprintf("%d/%d", n.index+1, n.size)
}
