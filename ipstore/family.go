package ipstore

import (
	"fmt"

	"github.com/aglyzov/go-ipstore/addrkey"
	"github.com/aglyzov/go-ipstore/bittrie"
	"github.com/aglyzov/go-ipstore/critbit"
)

// index is the exact-match structure behind a FamilyStore.
// Both *bittrie.Trie and *critbit.Tree satisfy it.
type index[V any] interface {
	Insert(key bittrie.Key, label V) bool
	Remove(key bittrie.Key) (V, bool)
	Contains(key bittrie.Key) bool
	Update(key bittrie.Key, label V) bool
	Get(key bittrie.Key) (V, bool)
	Walk(handler func(bittrie.Key, V) bool) bool
	Len() int
	Width() int
	Stats() bittrie.Stats
	DebugDump()
}

var (
	_ index[int] = (*bittrie.Trie[int])(nil)
	_ index[int] = (*critbit.Tree[int])(nil)
)

// FamilyStore holds the keys of a single address family.
type FamilyStore[V any] struct {
	family addrkey.Family
	idx    index[V]
}

func newFamilyStore[V any](family addrkey.Family, compressed bool) *FamilyStore[V] {
	width := family.Width()
	if width == 0 {
		panic(fmt.Sprintf("ipstore: no family store for %v", family))
	}
	fs := &FamilyStore[V]{family: family}
	if compressed {
		fs.idx = critbit.New[V](width)
	} else {
		fs.idx = bittrie.New[V](width)
	}
	return fs
}

func (fs *FamilyStore[V]) check(key bittrie.Key) error {
	if key.Len() > fs.idx.Width() {
		return fmt.Errorf("%w: %v key %#x:%#x", ErrKeyWidth, fs.family, key.Hi, key.Lo)
	}
	return nil
}

func (fs *FamilyStore[V]) Family() addrkey.Family {
	return fs.family
}

// Insert stores the label under the key and reports whether the key is new.
func (fs *FamilyStore[V]) Insert(key bittrie.Key, label V) (bool, error) {
	if err := fs.check(key); err != nil {
		return false, err
	}
	return fs.idx.Insert(key, label), nil
}

// Remove deletes the key and returns its label, if it was present.
func (fs *FamilyStore[V]) Remove(key bittrie.Key) (label V, ok bool, err error) {
	if err = fs.check(key); err != nil {
		return
	}
	label, ok = fs.idx.Remove(key)
	return
}

func (fs *FamilyStore[V]) Contains(key bittrie.Key) (bool, error) {
	if err := fs.check(key); err != nil {
		return false, err
	}
	return fs.idx.Contains(key), nil
}

// Update replaces the label of an existing key. It returns false if the key is absent.
func (fs *FamilyStore[V]) Update(key bittrie.Key, label V) (bool, error) {
	if err := fs.check(key); err != nil {
		return false, err
	}
	return fs.idx.Update(key, label), nil
}

func (fs *FamilyStore[V]) Get(key bittrie.Key) (label V, ok bool, err error) {
	if err = fs.check(key); err != nil {
		return
	}
	label, ok = fs.idx.Get(key)
	return
}

func (fs *FamilyStore[V]) Len() int {
	return fs.idx.Len()
}

func (fs *FamilyStore[V]) Stats() bittrie.Stats {
	return fs.idx.Stats()
}

// Walk visits the entries in ascending address order.
func (fs *FamilyStore[V]) Walk(handler func(addrkey.Address, V) bool) bool {
	return fs.idx.Walk(func(key bittrie.Key, label V) bool {
		return handler(addrkey.Address{Family: fs.family, Key: addrkey.Key(key)}, label)
	})
}

func (fs *FamilyStore[V]) DebugDump() {
	fs.idx.DebugDump()
}
