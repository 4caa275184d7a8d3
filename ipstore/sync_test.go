package ipstore

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

func TestSyncStore_ConcurrentWriters(t *testing.T) {
	t.Parallel()

	const (
		writers   = 8
		perWriter = 500
	)

	var (
		s = NewSync[int]()
		g errgroup.Group
	)

	for w := 0; w < writers; w++ {
		w := w
		g.Go(func() error {
			for i := 0; i < perWriter; i++ {
				address := fmt.Sprintf("10.%d.%d.%d", w, i/256, i%256)
				if _, err := s.Add(address, i); err != nil {
					return err
				}
				if _, err := s.IsPresent(address); err != nil {
					return err
				}
				if i%2 == 0 {
					if _, err := s.Remove(address); err != nil {
						return err
					}
				}
			}
			return nil
		})
		g.Go(func() error {
			for i := 0; i < perWriter; i++ {
				if _, err := s.Add(fmt.Sprintf("fd00::%x:%x", w, i), i); err != nil {
					return err
				}
				s.Len()
				s.FamilyStats()
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())

	assert.Equal(t, writers*perWriter/2+writers*perWriter, s.Len())

	v4, v6 := s.FamilyStats()
	assert.Equal(t, writers*perWriter/2, v4.Entries)
	assert.Equal(t, writers*perWriter, v6.Entries)
}

func TestSyncStore_Operations(t *testing.T) {
	t.Parallel()

	s := NewSync[string](WithCompression())

	added, err := s.Add("192.168.1.1", "internal")
	require.NoError(t, err)
	assert.True(t, added)

	updated, err := s.UpdateIPInfo("192.168.1.1", "blocked")
	require.NoError(t, err)
	assert.True(t, updated)

	label, ok, err := s.Get("192.168.1.1")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "blocked", label)

	n, err := s.Load([]Entry[string]{{"::1", "lo"}})
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	var walked []string
	s.Walk(func(address string, _ string) bool {
		walked = append(walked, address)
		return true
	})
	assert.Equal(t, []string{"192.168.1.1", "::1"}, walked)

	label, ok, err = s.Delete("::1")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "lo", label)

	present, err := s.IsPresent("::1")
	require.NoError(t, err)
	assert.False(t, present)
}
