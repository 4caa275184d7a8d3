package ipstore

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/aglyzov/go-ipstore/addrkey"
)

func TestLoad(t *testing.T) {
	t.Parallel()

	core, logs := observer.New(zapcore.DebugLevel)
	s := New[string](WithLogger(zap.New(core)))

	added, err := s.Load([]Entry[string]{
		{"192.168.1.1", "internal"},
		{"bogus", "x"},
		{"2001:db8::1", "doc"},
		{"192.168.1.1", "blocked"},
		{"::ffff:1.2.3.4", "mapped"},
	})

	assert.Equal(t, 2, added)
	require.Error(t, err)

	errs := multierr.Errors(err)
	require.Len(t, errs, 2)
	for _, e := range errs {
		assert.ErrorIs(t, e, addrkey.ErrInvalidAddress)
	}

	label, ok, err := s.Get("192.168.1.1")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "blocked", label)
	assert.Equal(t, 2, s.Len())

	summary := logs.FilterMessage("loaded entries").All()
	require.Len(t, summary, 1)
	assert.Equal(t, int64(5), summary[0].ContextMap()["total"])
	assert.Equal(t, int64(2), summary[0].ContextMap()["rejected"])
}

func TestLoad_Clean(t *testing.T) {
	t.Parallel()

	s := New[int]()

	added, err := s.Load([]Entry[int]{{"10.0.0.1", 1}, {"10.0.0.2", 2}})
	require.NoError(t, err)
	assert.Equal(t, 2, added)

	added, err = s.Load(nil)
	require.NoError(t, err)
	assert.Equal(t, 0, added)
}
