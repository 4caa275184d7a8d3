// Package bittrie implements an exact-match binary trie over fixed-width integer keys.
//
// Every key is exactly Width() bits long and a lookup always walks Width() nodes,
// most significant bit first:
//
//	          root
//	         /    \
//	       [0]    [1]
//	       /        \
//	     [0]        [1]*  <- terminal node, carries a label
//
// A node exists only while it carries a label or has live descendants, so memory is
// proportional to the number of stored keys rather than to the size of the key space.
package bittrie

import (
	"fmt"

	"github.com/hideo55/go-popcount"
)

const (
	// MaxWidth is the widest key a Trie can hold.
	MaxWidth = 128

	leftBit     uint64 = 1 << 0
	rightBit    uint64 = 1 << 1
	terminalBit uint64 = 1 << 2

	childMask = leftBit | rightBit
)

type node[V any] struct {
	child [2]*node[V]
	// bitmap tracks which children exist and whether the node is terminal
	bitmap uint64
	label  V
}

func (n *node[V]) terminal() bool {
	return n.bitmap&terminalBit != 0
}

func (n *node[V]) fanout() int {
	return int(popcount.Count(n.bitmap & childMask))
}

func (n *node[V]) attach(dir byte, c *node[V]) {
	n.child[dir] = c
	n.bitmap |= leftBit << dir
}

func (n *node[V]) detach(dir byte) {
	n.child[dir] = nil
	n.bitmap &^= leftBit << dir
}

func (n *node[V]) setLabel(label V) {
	n.label = label
	n.bitmap |= terminalBit
}

func (n *node[V]) clearLabel() (label V) {
	label = n.label
	var zero V
	n.label = zero
	n.bitmap &^= terminalBit
	return
}

// Trie maps Width()-bit keys to labels.
type Trie[V any] struct {
	root  node[V]
	width int
	size  int
}

// Stats describes the shape of a trie.
type Stats struct {
	Entries  int // terminal nodes
	Nodes    int // allocated nodes, the root excluded
	Branches int // nodes with two children, the root included
}

// New returns an empty trie for keys of the given width.
// It panics if width is not in [1, MaxWidth].
func New[V any](width int) *Trie[V] {
	if width < 1 || width > MaxWidth {
		panic(fmt.Sprintf("bittrie: invalid key width %d", width))
	}
	return &Trie[V]{width: width}
}

// Width returns the number of bits in every key.
func (t *Trie[V]) Width() int {
	return t.width
}

// Len returns the number of keys in the trie.
func (t *Trie[V]) Len() int {
	return t.size
}

func (t *Trie[V]) Empty() bool {
	return t.size == 0
}

// find walks the full path of the key and returns its last node or nil.
func (t *Trie[V]) find(key Key) *node[V] {
	n := &t.root
	for pos := t.width - 1; pos >= 0 && n != nil; pos-- {
		n = n.child[key.Bit(pos)]
	}
	return n
}

// Insert associates a label with the key, replacing a previous one.
// It returns true if the key was not in the trie before.
func (t *Trie[V]) Insert(key Key, label V) bool {
	n := &t.root
	for pos := t.width - 1; pos >= 0; pos-- {
		dir := key.Bit(pos)
		next := n.child[dir]
		if next == nil {
			next = &node[V]{}
			n.attach(dir, next)
		}
		n = next
	}
	added := !n.terminal()
	n.setLabel(label)
	if added {
		t.size++
	}
	return added
}

// Remove deletes the key and returns its label.
// Nodes left without a label and without children are pruned on the way back up.
func (t *Trie[V]) Remove(key Key) (label V, ok bool) {
	var path [MaxWidth]*node[V]

	n := &t.root
	for pos := t.width - 1; pos >= 0; pos-- {
		path[pos] = n
		if n = n.child[key.Bit(pos)]; n == nil {
			return
		}
	}
	if !n.terminal() {
		return
	}
	label, ok = n.clearLabel(), true
	t.size--

	// prune from the leaf towards the root
	for pos := 0; pos < t.width && n.bitmap == 0; pos++ {
		parent := path[pos]
		parent.detach(key.Bit(pos))
		n = parent
	}
	return
}

// Contains reports whether the key has a label.
// Internal nodes on the path of longer keys do not count.
func (t *Trie[V]) Contains(key Key) bool {
	n := t.find(key)
	return n != nil && n.terminal()
}

// Get returns the label associated with the key.
func (t *Trie[V]) Get(key Key) (label V, ok bool) {
	if n := t.find(key); n != nil && n.terminal() {
		return n.label, true
	}
	return
}

// Update replaces the label of an existing key and never creates nodes.
// It returns false if the key is not in the trie.
func (t *Trie[V]) Update(key Key, label V) bool {
	n := t.find(key)
	if n == nil || !n.terminal() {
		return false
	}
	n.setLabel(label)
	return true
}

// Walk calls a handler for every key in ascending order.
// It returns whether all keys were visited; the handler aborts the walk by returning false.
func (t *Trie[V]) Walk(handler func(Key, V) bool) bool {
	if t.Empty() {
		return true
	}
	return t.walk(&t.root, Key{}, t.width, handler)
}

func (t *Trie[V]) walk(n *node[V], prefix Key, pos int, h func(Key, V) bool) bool {
	if pos == 0 {
		return !n.terminal() || h(prefix, n.label)
	}
	pos--
	if c := n.child[0]; c != nil && !t.walk(c, prefix, pos, h) {
		return false
	}
	if c := n.child[1]; c != nil && !t.walk(c, prefix.SetBit(pos), pos, h) {
		return false
	}
	return true
}

// Stats counts entries, nodes and branching points without recursion.
func (t *Trie[V]) Stats() (st Stats) {
	st.Entries = t.size

	toVisit := []*node[V]{&t.root}
	for l := len(toVisit); l > 0; l = len(toVisit) {
		n := toVisit[l-1]
		toVisit = toVisit[:l-1]

		if n.fanout() == 2 {
			st.Branches++
		}
		for _, c := range n.child {
			if c != nil {
				st.Nodes++
				toVisit = append(toVisit, c)
			}
		}
	}
	return
}

func (t *Trie[V]) DebugDump() {
	fmt.Printf("TRIE width=%d size=%d\n", t.width, t.size)
	t.debugDump(&t.root, "T:", t.width, "")
}

func (t *Trie[V]) debugDump(n *node[V], tag string, pos int, indent string) {
	if n.terminal() {
		fmt.Printf("%s%s NODE bitmap=%03b label=%v\n", indent, tag, n.bitmap, n.label)
	} else {
		fmt.Printf("%s%s NODE bitmap=%03b\n", indent, tag, n.bitmap)
	}
	if pos == 0 {
		return
	}
	if n.child[0] != nil {
		t.debugDump(n.child[0], "0:", pos-1, indent+" ")
	}
	if n.child[1] != nil {
		t.debugDump(n.child[1], "1:", pos-1, indent+" ")
	}
}
