package ipstore

import "errors"

var (
	// ErrKeyWidth is returned by a FamilyStore for keys wider than its family.
	ErrKeyWidth = errors.New("key does not fit the family width")

	// ErrUnknownFamily is returned when an address parser produces no usable family.
	ErrUnknownFamily = errors.New("unknown address family")
)
