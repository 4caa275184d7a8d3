package bittrie

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKey_Bit(t *testing.T) {
	t.Parallel()

	for _, tcase := range []*struct {
		Key    Key
		Pos    int
		ExpBit byte
	}{
		{Key{}, 0, 0},
		{Key{Lo: 1}, 0, 1},
		{Key{Lo: 1 << 63}, 63, 1},
		{Key{Lo: 1 << 63}, 64, 0},
		{Key{Hi: 1}, 64, 1},
		{Key{Hi: 1 << 63}, 127, 1},
		{Key{Hi: 1 << 63}, 63, 0},
	} {
		tcase := tcase

		t.Run(fmt.Sprintf("%#x:%#x/%d", tcase.Key.Hi, tcase.Key.Lo, tcase.Pos), func(t *testing.T) {
			assert.Equal(t, tcase.ExpBit, tcase.Key.Bit(tcase.Pos))
			assert.Equal(t, byte(1), tcase.Key.SetBit(tcase.Pos).Bit(tcase.Pos))
		})
	}
}

func TestKey_Len(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 0, Key{}.Len())
	assert.Equal(t, 1, Key{Lo: 1}.Len())
	assert.Equal(t, 32, Key{Lo: 0xFFFF_FFFF}.Len())
	assert.Equal(t, 33, Key{Lo: 1 << 32}.Len())
	assert.Equal(t, 65, Key{Hi: 1}.Len())
	assert.Equal(t, 128, Key{Hi: 1 << 63}.Len())
}

func TestKey_XorLess(t *testing.T) {
	t.Parallel()

	a, b := Key{Hi: 1, Lo: 2}, Key{Hi: 1, Lo: 3}

	assert.Equal(t, Key{Lo: 1}, a.Xor(b))
	assert.True(t, a.Xor(a).IsZero())
	assert.True(t, a.Less(b))
	assert.False(t, b.Less(a))
	assert.True(t, Key{Lo: ^uint64(0)}.Less(Key{Hi: 1}))
}
