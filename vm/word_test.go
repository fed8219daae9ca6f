package vm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAlign(t *testing.T) {
	assert.Equal(t, UWord(0), Align(0))
	assert.Equal(t, UWord(4), Align(1))
	assert.Equal(t, UWord(4), Align(4))
	assert.Equal(t, UWord(8), Align(5))
}

func TestIsAligned(t *testing.T) {
	assert.True(t, IsAligned(0))
	assert.True(t, IsAligned(8))
	assert.False(t, IsAligned(1))
	assert.False(t, IsAligned(7))
}

func TestARShiftPreservesSign(t *testing.T) {
	assert.Equal(t, Word(-1), ARShift(-1, 31))
	assert.Equal(t, Word(-32), ARShift(-64, 1))
	assert.Equal(t, Word(32), ARShift(64, 1))
}

func TestHighestSetBit(t *testing.T) {
	assert.Equal(t, -1, highestSetBit(0))
	assert.Equal(t, -1, highestSetBit(-1))
	assert.Equal(t, 5, highestSetBit(63))
	assert.Equal(t, 6, highestSetBit(64))
	assert.Equal(t, 5, highestSetBit(-64))
}
