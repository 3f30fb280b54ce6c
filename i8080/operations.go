package i8080

// operand is an 8-bit source or destination in the order the 8080 encodes
// them in bits 0-2 and 3-5 of the opcode. opM is the memory byte addressed by
// HL.
type operand uint8

const (
	opB operand = iota
	opC
	opD
	opE
	opH
	opL
	opM
	opA
)

func (c *CPU) get(o operand) uint8 {
	switch o {
	case opB:
		return c.reg.B
	case opC:
		return c.reg.C
	case opD:
		return c.reg.D
	case opE:
		return c.reg.E
	case opH:
		return c.reg.H
	case opL:
		return c.reg.L
	case opM:
		return c.read(c.reg.HL())
	}
	return c.reg.A
}

func (c *CPU) set(o operand, val uint8) {
	switch o {
	case opB:
		c.reg.B = val
	case opC:
		c.reg.C = val
	case opD:
		c.reg.D = val
	case opE:
		c.reg.E = val
	case opH:
		c.reg.H = val
	case opL:
		c.reg.L = val
	case opM:
		c.write(c.reg.HL(), val)
	default:
		c.reg.A = val
	}
}

// regPair is a 16-bit register pair. pairSP and pairPSW share an encoding;
// which one an opcode means depends on the instruction.
type regPair uint8

const (
	pairB regPair = iota
	pairD
	pairH
	pairSP
	pairPSW
)

func (c *CPU) getPair(p regPair) uint16 {
	switch p {
	case pairB:
		return c.reg.BC()
	case pairD:
		return c.reg.DE()
	case pairH:
		return c.reg.HL()
	case pairSP:
		return c.sp
	}
	return pair(c.reg.A, c.flags.Pack())
}

func (c *CPU) setPair(p regPair, val uint16) {
	switch p {
	case pairB:
		c.reg.SetBC(val)
	case pairD:
		c.reg.SetDE(val)
	case pairH:
		c.reg.SetHL(val)
	case pairSP:
		c.sp = val
	default:
		c.reg.A = uint8(val >> 8)
		c.flags.Unpack(uint8(val))
	}
}

type execFunc func(c *CPU) StepResult

func nop(c *CPU) StepResult {
	return StepNoOperation
}

func notKnown(c *CPU) StepResult {
	return StepNotKnownOpcode
}

func hlt(c *CPU) StepResult {
	return StepHalt
}

// data transfer

func mov(dst, src operand) execFunc {
	return func(c *CPU) StepResult {
		c.set(dst, c.get(src))
		return StepOk
	}
}

func mvi(dst operand) execFunc {
	return func(c *CPU) StepResult {
		c.set(dst, c.getNextByte())
		return StepOk
	}
}

func lxi(p regPair) execFunc {
	return func(c *CPU) StepResult {
		c.setPair(p, c.getNextTwoBytes())
		return StepOk
	}
}

func stax(p regPair) execFunc {
	return func(c *CPU) StepResult {
		c.write(c.getPair(p), c.reg.A)
		return StepOk
	}
}

func ldax(p regPair) execFunc {
	return func(c *CPU) StepResult {
		c.reg.A = c.read(c.getPair(p))
		return StepOk
	}
}

func sta(c *CPU) StepResult {
	c.write(c.getNextTwoBytes(), c.reg.A)
	return StepOk
}

func lda(c *CPU) StepResult {
	c.reg.A = c.read(c.getNextTwoBytes())
	return StepOk
}

func shld(c *CPU) StepResult {
	addr := c.getNextTwoBytes()
	c.write(addr, c.reg.L)
	c.write(addr+1, c.reg.H)
	return StepOk
}

func lhld(c *CPU) StepResult {
	addr := c.getNextTwoBytes()
	c.reg.L = c.read(addr)
	c.reg.H = c.read(addr + 1)
	return StepOk
}

func xchg(c *CPU) StepResult {
	c.reg.H, c.reg.D = c.reg.D, c.reg.H
	c.reg.L, c.reg.E = c.reg.E, c.reg.L
	return StepOk
}

// increment and decrement

func (c *CPU) inr(val uint8) uint8 {
	ans := val + 1
	c.flags.setZSP(ans)
	c.flags.setAuxCarryAdd(val, 1, ans)
	return ans
}

// a decrement borrows from the high nibble only when the low nibble wraps to
// 0xf. the carry flag is left alone.
func (c *CPU) dcr(val uint8) uint8 {
	ans := val - 1
	c.flags.setZSP(ans)
	c.flags.AC = ans&0x0f != 0x0f
	return ans
}

func inr(o operand) execFunc {
	return func(c *CPU) StepResult {
		c.set(o, c.inr(c.get(o)))
		return StepOk
	}
}

func dcr(o operand) execFunc {
	return func(c *CPU) StepResult {
		c.set(o, c.dcr(c.get(o)))
		return StepOk
	}
}

func inx(p regPair) execFunc {
	return func(c *CPU) StepResult {
		c.setPair(p, c.getPair(p)+1)
		return StepOk
	}
}

func dcx(p regPair) execFunc {
	return func(c *CPU) StepResult {
		c.setPair(p, c.getPair(p)-1)
		return StepOk
	}
}

func dad(p regPair) execFunc {
	return func(c *CPU) StepResult {
		hl := c.reg.HL()
		ans := hl + c.getPair(p)
		c.flags.CY = ans < hl
		c.reg.SetHL(ans)
		return StepOk
	}
}

// accumulator arithmetic and logic

func (c *CPU) addCarry(val uint8, cy uint8) {
	a := c.reg.A
	sum := uint16(a) + uint16(val) + uint16(cy)
	ans := uint8(sum)
	c.flags.setAuxCarryAdd(a, val, ans)
	c.flags.setCarryAdd(sum)
	c.flags.setZSP(ans)
	c.reg.A = ans
}

func (c *CPU) subBorrow(val uint8, borrow uint8) uint8 {
	a := c.reg.A
	ans := a - val - borrow
	c.flags.setAuxCarrySub(a, val, borrow)
	c.flags.setCarrySub(a, val, borrow)
	c.flags.setZSP(ans)
	return ans
}

func (c *CPU) carry() uint8 {
	if c.flags.CY {
		return 1
	}
	return 0
}

func (c *CPU) add(val uint8) {
	c.addCarry(val, 0)
}

func (c *CPU) adc(val uint8) {
	c.addCarry(val, c.carry())
}

func (c *CPU) sub(val uint8) {
	c.reg.A = c.subBorrow(val, 0)
}

func (c *CPU) sbb(val uint8) {
	c.reg.A = c.subBorrow(val, c.carry())
}

// cmp sets the flags of a subtraction but leaves A alone.
func (c *CPU) cmp(val uint8) {
	c.subBorrow(val, 0)
}

func (c *CPU) logical(ans uint8) {
	c.flags.setZSP(ans)
	c.flags.CY = false
	c.flags.AC = false
	c.reg.A = ans
}

func (c *CPU) and(val uint8) {
	c.logical(c.reg.A & val)
}

func (c *CPU) xor(val uint8) {
	c.logical(c.reg.A ^ val)
}

func (c *CPU) or(val uint8) {
	c.logical(c.reg.A | val)
}

func alu(src operand, op func(*CPU, uint8)) execFunc {
	return func(c *CPU) StepResult {
		op(c, c.get(src))
		return StepOk
	}
}

func aluImmediate(op func(*CPU, uint8)) execFunc {
	return func(c *CPU) StepResult {
		op(c, c.getNextByte())
		return StepOk
	}
}

// the second adjustment tests the high nibble after the first adjustment has
// been applied. carry is only ever set by DAA, never cleared.
func daa(c *CPU) StepResult {
	a := c.reg.A
	cy := c.flags.CY

	if a&0x0f > 9 || c.flags.AC {
		sum := uint16(a) + 0x06
		c.flags.setAuxCarryAdd(a, 0x06, uint8(sum))
		cy = cy || sum > 0xff
		a = uint8(sum)
	}

	if a>>4 > 9 || cy {
		sum := uint16(a) + 0x60
		cy = cy || sum > 0xff
		a = uint8(sum)
	}

	c.flags.CY = cy
	c.flags.setZSP(a)
	c.reg.A = a
	return StepOk
}

func cma(c *CPU) StepResult {
	c.reg.A ^= 0xff
	return StepOk
}

func stc(c *CPU) StepResult {
	c.flags.CY = true
	return StepOk
}

func cmc(c *CPU) StepResult {
	c.flags.CY = !c.flags.CY
	return StepOk
}

// rotates

func rlc(c *CPU) StepResult {
	a := c.reg.A
	c.flags.setCarryRotate(a)
	c.reg.A = (a << 1) | (a >> 7)
	return StepOk
}

func rrc(c *CPU) StepResult {
	a := c.reg.A
	c.flags.CY = a&0x01 != 0
	c.reg.A = (a >> 1) | (a << 7)
	return StepOk
}

// RAL and RAR rotate through the carry: the old carry is captured before the
// new one is taken from the bit rotated out.
func ral(c *CPU) StepResult {
	a := c.reg.A
	cy := c.carry()
	c.flags.setCarryRotate(a)
	c.reg.A = (a << 1) | cy
	return StepOk
}

func rar(c *CPU) StepResult {
	a := c.reg.A
	cy := c.carry()
	c.flags.CY = a&0x01 != 0
	c.reg.A = (a >> 1) | (cy << 7)
	return StepOk
}

// input/output

func in(c *CPU) StepResult {
	if c.ports == nil {
		return StepNotKnownOpcode
	}
	c.reg.A = c.ports.In(c.getNextByte())
	return StepOk
}

func out(c *CPU) StepResult {
	if c.ports == nil {
		return StepNotKnownOpcode
	}
	c.ports.Out(c.getNextByte(), c.reg.A)
	return StepOk
}

func ei(c *CPU) StepResult {
	c.inte = true
	return StepOk
}

func di(c *CPU) StepResult {
	c.inte = false
	return StepOk
}
