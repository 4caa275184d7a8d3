// Package ipstore maps IPv4 and IPv6 addresses to arbitrary labels.
//
// A Store parses each address, picks the family store of the matching width
// (32 bits for IPv4, 128 bits for IPv6) and performs an exact-match operation on it:
//
//	s := ipstore.New[string]()
//	s.Add("192.168.1.1", "internal")           // true, nil
//	s.IsPresent("192.168.1.1")                 // true, nil
//	s.UpdateIPInfo("192.168.1.1", "blocked")   // true, nil
//	s.UpdateIPInfo("10.0.0.1", "x")            // false, nil
//	s.Add("not-an-ip", "x")                    // false, *addrkey.InvalidAddressError
//
// Malformed addresses always fail with an error matching addrkey.ErrInvalidAddress;
// absent addresses never do.
//
// A Store is not safe for concurrent use, see SyncStore.
package ipstore

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/aglyzov/go-ipstore/addrkey"
	"github.com/aglyzov/go-ipstore/bittrie"
)

type Store[V any] struct {
	parser addrkey.Parser
	log    *zap.Logger
	v4     *FamilyStore[V]
	v6     *FamilyStore[V]
}

// New returns an empty store.
func New[V any](opts ...Option) *Store[V] {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Store[V]{
		parser: o.parser,
		log:    o.logger,
		v4:     newFamilyStore[V](addrkey.V4, o.compressed),
		v6:     newFamilyStore[V](addrkey.V6, o.compressed),
	}
}

// Family returns the family store for V4 or V6, nil otherwise.
func (s *Store[V]) Family(f addrkey.Family) *FamilyStore[V] {
	switch f {
	case addrkey.V4:
		return s.v4
	case addrkey.V6:
		return s.v6
	}
	return nil
}

// route parses the address and finds its family store
func (s *Store[V]) route(address string) (*FamilyStore[V], bittrie.Key, error) {
	a, err := s.parser.Parse(address)
	if err != nil {
		s.log.Debug("rejected address", zap.String("address", address), zap.Error(err))
		return nil, bittrie.Key{}, err
	}
	fs := s.Family(a.Family)
	if fs == nil {
		return nil, bittrie.Key{}, fmt.Errorf("%w: %q parsed as %v", ErrUnknownFamily, address, a.Family)
	}
	return fs, bittrie.Key(a.Key), nil
}

// Add stores the label under the address, replacing a previous label.
// It returns true if the address was not in the store before.
func (s *Store[V]) Add(address string, label V) (bool, error) {
	fs, key, err := s.route(address)
	if err != nil {
		return false, err
	}
	return fs.Insert(key, label)
}

// Remove deletes the address and echoes it back whether or not it was present.
// Use Delete to learn if something was removed.
func (s *Store[V]) Remove(address string) (string, error) {
	if _, _, err := s.Delete(address); err != nil {
		return "", err
	}
	return address, nil
}

// Delete removes the address and returns its label, if it was present.
func (s *Store[V]) Delete(address string) (label V, ok bool, err error) {
	fs, key, err := s.route(address)
	if err != nil {
		return
	}
	return fs.Remove(key)
}

// IsPresent reports whether the address is in the store.
func (s *Store[V]) IsPresent(address string) (bool, error) {
	fs, key, err := s.route(address)
	if err != nil {
		return false, err
	}
	return fs.Contains(key)
}

// UpdateIPInfo replaces the label of an address already in the store.
// It returns false, and no error, if the address was never added.
func (s *Store[V]) UpdateIPInfo(address string, label V) (bool, error) {
	fs, key, err := s.route(address)
	if err != nil {
		return false, err
	}
	return fs.Update(key, label)
}

// Get returns the label of the address.
func (s *Store[V]) Get(address string) (label V, ok bool, err error) {
	fs, key, err := s.route(address)
	if err != nil {
		return
	}
	return fs.Get(key)
}

// Len returns the number of addresses of both families.
func (s *Store[V]) Len() int {
	return s.v4.Len() + s.v6.Len()
}

// Walk calls a handler for every address in canonical text form, IPv4 addresses
// first, each family in ascending order. It returns whether all addresses were visited.
func (s *Store[V]) Walk(handler func(address string, label V) bool) bool {
	h := func(a addrkey.Address, label V) bool {
		return handler(a.String(), label)
	}
	return s.v4.Walk(h) && s.v6.Walk(h)
}

// FamilyStats returns the shape of both family stores.
func (s *Store[V]) FamilyStats() (v4, v6 bittrie.Stats) {
	return s.v4.Stats(), s.v6.Stats()
}
