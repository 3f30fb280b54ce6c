package i8080

// Flags is the status of the processor after the last instruction that
// affected it.
type Flags struct {
	S  bool
	Z  bool
	AC bool
	P  bool
	CY bool
}

// FlagMask names the flags an instruction may write.
type FlagMask uint8

const (
	FlagCY FlagMask = 1 << iota
	FlagP
	FlagAC
	FlagZ
	FlagS

	flagsNone FlagMask = 0
	flagsZSPA          = FlagZ | FlagS | FlagP | FlagAC
	flagsAll           = flagsZSPA | FlagCY
)

// bit positions of the flags in the PSW byte. bit 1 is always set, bits 3 and
// 5 are always clear.
const (
	pswCY  = 0x01
	pswOne = 0x02
	pswP   = 0x04
	pswAC  = 0x10
	pswZ   = 0x40
	pswS   = 0x80
)

// Pack returns the flags as the low byte of the PSW.
func (f *Flags) Pack() uint8 {
	psw := uint8(pswOne)
	if f.S {
		psw |= pswS
	}
	if f.Z {
		psw |= pswZ
	}
	if f.AC {
		psw |= pswAC
	}
	if f.P {
		psw |= pswP
	}
	if f.CY {
		psw |= pswCY
	}
	return psw
}

// Unpack sets the flags from the low byte of the PSW.
func (f *Flags) Unpack(psw uint8) {
	f.S = psw&pswS != 0
	f.Z = psw&pswZ != 0
	f.AC = psw&pswAC != 0
	f.P = psw&pswP != 0
	f.CY = psw&pswCY != 0
}

// mask returns the flags that are currently set.
func (f *Flags) mask() FlagMask {
	m := flagsNone
	if f.S {
		m |= FlagS
	}
	if f.Z {
		m |= FlagZ
	}
	if f.AC {
		m |= FlagAC
	}
	if f.P {
		m |= FlagP
	}
	if f.CY {
		m |= FlagCY
	}
	return m
}

func (f *Flags) setZero(val uint8) {
	f.Z = val == 0
}

func (f *Flags) setSign(val uint8) {
	f.S = val&0x80 != 0
}

// only the low 8 bits are counted.
func (f *Flags) setParity(val uint16) {
	ones := uint16(0)
	for i := 0; i < 8; i++ {
		ones += (val >> i) & 1
	}
	f.P = ones%2 == 0
}

func (f *Flags) setZSP(val uint8) {
	f.setZero(val)
	f.setSign(val)
	f.setParity(uint16(val))
}

// first and second must be the operands actually added and result the
// wrapped sum, carry in included.
func (f *Flags) setAuxCarryAdd(first, second, result uint8) {
	f.AC = (first^second^result)&0x10 != 0
}

// borrow is folded into second at nibble width.
func (f *Flags) setAuxCarrySub(first, second, borrow uint8) {
	f.AC = uint16(first&0x0f) < uint16(second&0x0f)+uint16(borrow)
}

// carry is the bit shifted out of bit 7 by a left rotate.
func (f *Flags) setCarryRotate(val uint8) {
	f.CY = val&0x80 != 0
}

// sum is the unwrapped 16-bit intermediate.
func (f *Flags) setCarryAdd(sum uint16) {
	f.CY = sum&0x100 != 0
}

func (f *Flags) setCarrySub(first, second, borrow uint8) {
	f.CY = uint16(first) < uint16(second)+uint16(borrow)
}
