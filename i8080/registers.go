package i8080

// Registers are the seven 8-bit working registers. B/C, D/E and H/L also act
// as 16-bit pairs with the first register as the high byte.
type Registers struct {
	A uint8
	B uint8
	C uint8
	D uint8
	E uint8
	H uint8
	L uint8
}

func pair(hi, lo uint8) uint16 {
	return (uint16(hi) << 8) | uint16(lo)
}

func (r *Registers) BC() uint16 {
	return pair(r.B, r.C)
}

func (r *Registers) DE() uint16 {
	return pair(r.D, r.E)
}

func (r *Registers) HL() uint16 {
	return pair(r.H, r.L)
}

func (r *Registers) SetBC(val uint16) {
	r.B = uint8(val >> 8)
	r.C = uint8(val & 0xff)
}

func (r *Registers) SetDE(val uint16) {
	r.D = uint8(val >> 8)
	r.E = uint8(val & 0xff)
}

func (r *Registers) SetHL(val uint16) {
	r.H = uint8(val >> 8)
	r.L = uint8(val & 0xff)
}
