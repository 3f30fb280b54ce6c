package i8080

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParity(t *testing.T) {
	assert := assert.New(t)

	f := &Flags{}
	for _, tc := range []struct {
		value  uint16
		parity bool
	}{
		{0x00, true},
		{0x01, false},
		{0x03, true},
		{0x80, false},
		{0xff, true},
		{0x7f, false},
		// only the low 8 bits count
		{0x100, true},
		{0x1ff, true},
		{0x301, false},
	} {
		f.setParity(tc.value)
		assert.Equal(tc.parity, f.P, "%#x", tc.value)
	}
}

func TestZeroSign(t *testing.T) {
	assert := assert.New(t)

	f := &Flags{}
	f.setZero(0)
	f.setSign(0)
	assert.True(f.Z)
	assert.False(f.S)

	f.setZero(0xff)
	f.setSign(0xff)
	assert.False(f.Z)
	assert.True(f.S)

	f.setSign(0x7f)
	assert.False(f.S)
}

func TestHelpersIdempotent(t *testing.T) {
	assert := assert.New(t)

	f := &Flags{}
	f.setZero(0)
	f.setSign(0x80)
	f.setParity(0x03)
	first := *f

	f.setZero(0)
	f.setSign(0x80)
	f.setParity(0x03)
	assert.Equal(first, *f)
}

// each helper writes only its own flag
func TestHelpersIsolated(t *testing.T) {
	assert := assert.New(t)

	f := &Flags{S: true, Z: true, AC: true, P: true, CY: true}
	f.setCarryAdd(0x00ff)
	assert.Equal(Flags{S: true, Z: true, AC: true, P: true, CY: false}, *f)

	f.setAuxCarrySub(0x10, 0x01, 0)
	assert.Equal(Flags{S: true, Z: true, AC: true, P: true, CY: false}, *f)

	f.setAuxCarryAdd(0x0e, 0x01, 0x0f)
	assert.Equal(Flags{S: true, Z: true, AC: false, P: true, CY: false}, *f)

	f.setZero(1)
	assert.Equal(Flags{S: true, Z: false, AC: false, P: true, CY: false}, *f)
}

func TestAuxCarry(t *testing.T) {
	assert := assert.New(t)

	f := &Flags{}
	f.setAuxCarryAdd(0x0f, 0x01, 0x10)
	assert.True(f.AC)
	f.setAuxCarryAdd(0x0e, 0x01, 0x0f)
	assert.False(f.AC)

	// carry in shows in the result: 0x0f + 0x00 + 1
	f.setAuxCarryAdd(0x0f, 0x00, 0x10)
	assert.True(f.AC)

	f.setAuxCarrySub(0x00, 0x01, 0)
	assert.True(f.AC)
	f.setAuxCarrySub(0x1f, 0x01, 0)
	assert.False(f.AC)

	// the borrow must not wrap the nibble away
	f.setAuxCarrySub(0x0f, 0x0f, 1)
	assert.True(f.AC)
	f.setAuxCarrySub(0x0f, 0x0e, 1)
	assert.False(f.AC)
}

func TestCarry(t *testing.T) {
	assert := assert.New(t)

	f := &Flags{}
	f.setCarryAdd(0x100)
	assert.True(f.CY)
	f.setCarryAdd(0xff)
	assert.False(f.CY)

	f.setCarrySub(0x00, 0x01, 0)
	assert.True(f.CY)
	f.setCarrySub(0x01, 0x01, 0)
	assert.False(f.CY)
	f.setCarrySub(0x01, 0x01, 1)
	assert.True(f.CY)
	f.setCarrySub(0x00, 0xff, 1)
	assert.True(f.CY)

	f.setCarryRotate(0x80)
	assert.True(f.CY)
	f.setCarryRotate(0x7f)
	assert.False(f.CY)
}

func TestPSW(t *testing.T) {
	assert := assert.New(t)

	f := &Flags{}
	assert.Equal(uint8(0x02), f.Pack())

	f = &Flags{S: true, Z: true, AC: true, P: true, CY: true}
	assert.Equal(uint8(0xd7), f.Pack())

	g := &Flags{}
	g.Unpack(0xd7)
	assert.Equal(*f, *g)

	// unused bits are ignored
	g.Unpack(0x28)
	assert.Equal(Flags{}, *g)

	g.Unpack(pswZ | pswCY)
	assert.Equal(Flags{Z: true, CY: true}, *g)
	assert.Equal(FlagZ|FlagCY, g.mask())
}
