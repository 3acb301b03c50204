package z80

import (
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestPair(t *testing.T) {
	var p Pair
	p.SetHi(0x12)
	p.SetLo(0x34)

	assert.Equal(t, Pair(0x1234), p)
	assert.Equal(t, uint8(0x12), p.Hi())
	assert.Equal(t, uint8(0x34), p.Lo())

	p.SetHi(0xFF)
	assert.Equal(t, Pair(0xFF34), p)
}

func TestRegisterFileFlags(t *testing.T) {
	var r RegisterFile

	assert.False(t, r.Flag(FlagZero))

	r.SetFlag(FlagZero, true)
	r.SetFlag(FlagCarry, true)
	assert.True(t, r.Flag(FlagZero))
	assert.True(t, r.Flag(FlagCarry))
	assert.False(t, r.Flag(FlagHalfCarry))
	assert.False(t, r.Flag(FlagAddSub))

	// flag storage must not clobber the accumulator
	r.AF.SetHi(0xAB)
	r.SetFlag(FlagZero, false)
	assert.False(t, r.Flag(FlagZero))
	assert.True(t, r.Flag(FlagCarry))
	assert.Equal(t, uint8(0xAB), r.AF.Hi())
}

func TestClock(t *testing.T) {
	clock := NewClock(0)
	clock.Incr()
	assert.Equal(t, uint64(4), clock.Time())

	clock.IncrN(3)
	assert.Equal(t, uint64(16), clock.Time())

	clock = NewClock(100)
	assert.Equal(t, uint64(100), clock.Time())
}
