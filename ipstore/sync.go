package ipstore

import (
	"sync"

	"github.com/aglyzov/go-ipstore/bittrie"
)

// SyncStore guards a Store with a single lock so it can be shared between goroutines.
// Writers are serialized, readers run concurrently with each other.
type SyncStore[V any] struct {
	mutex sync.RWMutex
	store *Store[V]
}

// NewSync returns an empty store safe for concurrent use.
func NewSync[V any](opts ...Option) *SyncStore[V] {
	return &SyncStore[V]{store: New[V](opts...)}
}

func (ss *SyncStore[V]) Add(address string, label V) (bool, error) {
	ss.mutex.Lock()
	defer ss.mutex.Unlock()

	return ss.store.Add(address, label)
}

func (ss *SyncStore[V]) Remove(address string) (string, error) {
	ss.mutex.Lock()
	defer ss.mutex.Unlock()

	return ss.store.Remove(address)
}

func (ss *SyncStore[V]) Delete(address string) (V, bool, error) {
	ss.mutex.Lock()
	defer ss.mutex.Unlock()

	return ss.store.Delete(address)
}

func (ss *SyncStore[V]) UpdateIPInfo(address string, label V) (bool, error) {
	ss.mutex.Lock()
	defer ss.mutex.Unlock()

	return ss.store.UpdateIPInfo(address, label)
}

// Load holds the write lock for the whole batch.
func (ss *SyncStore[V]) Load(entries []Entry[V]) (int, error) {
	ss.mutex.Lock()
	defer ss.mutex.Unlock()

	return ss.store.Load(entries)
}

func (ss *SyncStore[V]) IsPresent(address string) (bool, error) {
	ss.mutex.RLock()
	defer ss.mutex.RUnlock()

	return ss.store.IsPresent(address)
}

func (ss *SyncStore[V]) Get(address string) (V, bool, error) {
	ss.mutex.RLock()
	defer ss.mutex.RUnlock()

	return ss.store.Get(address)
}

func (ss *SyncStore[V]) Len() int {
	ss.mutex.RLock()
	defer ss.mutex.RUnlock()

	return ss.store.Len()
}

// Walk holds the read lock while the handler runs; the handler must not call
// any writing method of the same SyncStore.
func (ss *SyncStore[V]) Walk(handler func(address string, label V) bool) bool {
	ss.mutex.RLock()
	defer ss.mutex.RUnlock()

	return ss.store.Walk(handler)
}

// FamilyStats returns the entry and node counts of both families under one read lock.
func (ss *SyncStore[V]) FamilyStats() (v4, v6 bittrie.Stats) {
	ss.mutex.RLock()
	defer ss.mutex.RUnlock()

	return ss.store.FamilyStats()
}
