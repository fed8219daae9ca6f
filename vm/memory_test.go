package vm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryLoadStoreWordRoundTrip(t *testing.T) {
	m, st := newMemory(4)
	require.True(t, st.Ok())

	require.True(t, m.StoreWord(4, -12345).Ok())
	v, st := m.LoadWord(4)
	require.True(t, st.Ok())
	assert.Equal(t, Word(-12345), v)
}

func TestMemoryLoadWordMisaligned(t *testing.T) {
	m, st := newMemory(4)
	require.True(t, st.Ok())

	_, st = m.LoadWord(1)
	assert.Equal(t, StatusMisaligned, st)
}

func TestMemoryLoadWordOutOfBounds(t *testing.T) {
	m, st := newMemory(1)
	require.True(t, st.Ok())

	_, st = m.LoadWord(4)
	assert.Equal(t, StatusBounds, st)
}

func TestMemoryByteAccessIgnoresAlignment(t *testing.T) {
	m, st := newMemory(2)
	require.True(t, st.Ok())

	require.True(t, m.StoreByte(3, 0x7f).Ok())
	b, st := m.LoadByte(3)
	require.True(t, st.Ok())
	assert.Equal(t, Byte(0x7f), b)
}

func TestMemoryReallocGrowZeroesNewRegion(t *testing.T) {
	m, st := newMemory(1)
	require.True(t, st.Ok())
	require.True(t, m.StoreWord(0, -1).Ok())

	require.True(t, m.realloc(2).Ok())
	v, st := m.LoadWord(4)
	require.True(t, st.Ok())
	assert.Equal(t, Word(0), v)

	orig, st := m.LoadWord(0)
	require.True(t, st.Ok())
	assert.Equal(t, Word(-1), orig)
}

func TestMemoryReallocShrinkTruncates(t *testing.T) {
	m, st := newMemory(2)
	require.True(t, st.Ok())

	require.True(t, m.realloc(1).Ok())
	assert.Equal(t, UWord(WordSize), m.Size())
}

func TestMemoryReallocRejectsOversize(t *testing.T) {
	m, st := newMemory(1)
	require.True(t, st.Ok())

	st = m.realloc(MaxMemorySize + 1)
	assert.Equal(t, StatusIO, st)
}

func TestMemoryNativeAddressOfRange(t *testing.T) {
	m, st := newMemory(2)
	require.True(t, st.Ok())
	require.True(t, m.StoreByte(2, 9).Ok())

	r := m.NativeAddressOfRange(2, 2)
	require.NotNil(t, r)
	assert.Equal(t, Byte(9), r[0])

	assert.Nil(t, m.NativeAddressOfRange(7, 2))
}
