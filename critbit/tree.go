// Package critbit implements a crit-bit (PATRICIA) tree over fixed-width integer keys.
//
// It offers the same exact-match contract as package bittrie but collapses single-child
// chains: an internal node is created only where two stored keys first differ, so a tree
// of n keys always has n-1 internal nodes regardless of the key width.
package critbit

import (
	"fmt"

	"github.com/aglyzov/go-ipstore/bittrie"
)

type Key = bittrie.Key

type Item[V any] struct {
	Key Key
	Val V
}

// Ref holds either an Item (leaf) or a Node pointer
type Ref[V any] struct {
	Item[V]
	node *Node[V]
}

func (ref *Ref[V]) String() string {
	if ref == nil {
		return "Ref(nil)"
	}
	if ref.node != nil {
		return fmt.Sprintf("<Ref NODE pos=%v>", ref.node.pos)
	}
	return fmt.Sprintf("<Ref LEAF key=%#x:%#x, val=%v>", ref.Key.Hi, ref.Key.Lo, ref.Val)
}

type Node[V any] struct {
	child [2]Ref[V]
	// pos is the position of the crit bit counting from the least significant bit
	pos int
}

// dir calculates the direction for the given key
func (n *Node[V]) dir(key Key) byte {
	return key.Bit(n.pos)
}

type Tree[V any] struct {
	size  int
	width int
	root  Ref[V]
}

// New returns an empty tree for keys of the given width.
// It panics if width is not in [1, bittrie.MaxWidth].
func New[V any](width int, items ...Item[V]) *Tree[V] {
	if width < 1 || width > bittrie.MaxWidth {
		panic(fmt.Sprintf("critbit: invalid key width %d", width))
	}
	t := &Tree[V]{width: width}
	for _, item := range items {
		t.Insert(item.Key, item.Val)
	}
	return t
}

// Width returns the number of bits in every key.
func (t *Tree[V]) Width() int {
	return t.width
}

// Len returns the number of keys in the tree.
func (t *Tree[V]) Len() int {
	return t.size
}

func (t *Tree[V]) Empty() bool {
	return t.size == 0
}

// leaf walks for the best member, the only leaf that may hold the key
func (t *Tree[V]) leaf(key Key) *Ref[V] {
	p := &t.root
	for p.node != nil {
		p = &p.node.child[p.node.dir(key)]
	}
	return p
}

// Get returns a value associated with the key
func (t *Tree[V]) Get(key Key) (val V, ok bool) {
	if t.Empty() {
		return
	}
	if p := t.leaf(key); p.Key == key {
		return p.Val, true
	}
	return
}

// Contains reports whether the key is in the tree.
func (t *Tree[V]) Contains(key Key) bool {
	return !t.Empty() && t.leaf(key).Key == key
}

// Update replaces the value of an existing key. Returns false if the key is absent.
func (t *Tree[V]) Update(key Key, val V) bool {
	if t.Empty() {
		return false
	}
	p := t.leaf(key)
	if p.Key != key {
		return false
	}
	p.Val = val
	return true
}

// Insert associates a value with the key. Returns true if the key is new.
func (t *Tree[V]) Insert(key Key, val V) bool {
	// test for empty tree
	if t.Empty() {
		t.root = Ref[V]{Item: Item[V]{key, val}}
		t.size++
		return true
	}
	p := t.leaf(key)

	// find critical bit
	diff := p.Key.Xor(key)
	if diff.IsZero() {
		// key exists - just replace its value
		p.Val = val
		return false
	}
	pos := diff.Len() - 1
	ndir := key.Bit(pos)

	// insert new node
	nn := &Node[V]{pos: pos}
	nn.child[ndir].Item = Item[V]{key, val}

	// walk for best insertion node
	wp := &t.root
	for wp.node != nil {
		if wp.node.pos < pos {
			break
		}
		// try next node
		wp = &wp.node.child[wp.node.dir(key)]
	}
	nn.child[1-ndir] = *wp
	*wp = Ref[V]{node: nn}
	t.size++

	return true
}

// Remove deletes the key from the tree and returns its value
func (t *Tree[V]) Remove(key Key) (val V, ok bool) {
	// test for empty tree
	if t.Empty() {
		return
	}
	// walk for best member
	var dir byte
	var wp *Ref[V]
	p := &t.root
	for p.node != nil {
		wp = p
		dir = p.node.dir(key)
		p = &p.node.child[dir]
	}
	// check for membership
	if p.Key != key {
		return
	}
	val, ok = p.Val, true

	// delete from the tree
	t.size--
	if wp == nil {
		t.root = Ref[V]{}
		return
	}
	*wp = wp.node.child[1-dir]
	return
}

// Walk calls a handler for all keys in ascending order.
// It returns whether all keys were visited.
// The handler can continue the process by returning true or abort with false.
func (t *Tree[V]) Walk(handler func(Key, V) bool) bool {
	if t.Empty() {
		return true
	}
	return t.iterate(t.root, handler)
}

// iterate calls the handler or traverses both node children unless aborted.
func (t *Tree[V]) iterate(p Ref[V], h func(Key, V) bool) bool {
	if p.node != nil {
		return t.iterate(p.node.child[0], h) && t.iterate(p.node.child[1], h)
	}
	return h(p.Key, p.Val)
}

// Stats reports the same shape metrics as bittrie.
// Every internal node of a crit-bit tree branches.
func (t *Tree[V]) Stats() bittrie.Stats {
	if t.Empty() {
		return bittrie.Stats{}
	}
	return bittrie.Stats{
		Entries:  t.size,
		Nodes:    t.size - 1,
		Branches: t.size - 1,
	}
}

// Items returns all items sorted by key.
func (t *Tree[V]) Items() []Item[V] {
	items := make([]Item[V], 0, t.size)

	// empty tree?
	if t.Empty() {
		return items
	}

	// Walk the tree without function recursion
	toVisit := []*Ref[V]{&t.root}

	for l := len(toVisit); l > 0; l = len(toVisit) {
		p := toVisit[l-1]
		toVisit = toVisit[:l-1]

		// leaf?
		if p.node == nil {
			items = append(items, p.Item)
		} else {
			// push the right child first so the left one pops next
			toVisit = append(toVisit, &p.node.child[1], &p.node.child[0])
		}
	}
	return items
}

func (t *Tree[V]) DebugDump() {
	if t.Empty() {
		fmt.Println("T: EMPTY")
		return
	}
	t.debugDump(&t.root, "T:", "")
}

func (t *Tree[V]) debugDump(ref *Ref[V], tag string, indent string) {
	if ref.node == nil {
		digits := (t.width + 3) / 4
		fmt.Printf("%s%s LEAF key=%s val=%v\n", indent, tag, hexKey(ref.Key, digits), ref.Val)
		return
	}
	fmt.Printf("%s%s NODE pos=%v\n", indent, tag, ref.node.pos)

	t.debugDump(&ref.node.child[0], "L:", indent+"  ")
	t.debugDump(&ref.node.child[1], "R:", indent+"  ")
}

func hexKey(k Key, digits int) string {
	s := fmt.Sprintf("%016x%016x", k.Hi, k.Lo)
	return s[len(s)-digits:]
}
