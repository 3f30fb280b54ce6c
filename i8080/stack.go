package i8080

// the stack grows down. the high byte of a pushed pair is at the higher
// address.
func (c *CPU) push(val uint16) {
	c.sp--
	c.write(c.sp, uint8(val>>8))
	c.sp--
	c.write(c.sp, uint8(val&0xff))
}

func (c *CPU) pop() uint16 {
	lo := c.read(c.sp)
	c.sp++
	hi := c.read(c.sp)
	c.sp++
	return pair(hi, lo)
}

// condition is a branch condition in the order the 8080 encodes them in bits
// 3-5 of the opcode.
type condition uint8

const (
	condNZ condition = iota
	condZ
	condNC
	condC
	condPO
	condPE
	condP
	condM
)

func (c *CPU) check(cc condition) bool {
	switch cc {
	case condNZ:
		return !c.flags.Z
	case condZ:
		return c.flags.Z
	case condNC:
		return !c.flags.CY
	case condC:
		return c.flags.CY
	case condPO:
		return !c.flags.P
	case condPE:
		return c.flags.P
	case condP:
		return !c.flags.S
	}
	return c.flags.S
}

// extra cycles taken by a conditional call or return when the condition holds.
const condCycles = 6

func pushPair(p regPair) execFunc {
	return func(c *CPU) StepResult {
		c.push(c.getPair(p))
		return StepOk
	}
}

func popPair(p regPair) execFunc {
	return func(c *CPU) StepResult {
		c.setPair(p, c.pop())
		return StepOk
	}
}

func xthl(c *CPU) StepResult {
	lo := c.read(c.sp)
	hi := c.read(c.sp + 1)
	c.write(c.sp, c.reg.L)
	c.write(c.sp+1, c.reg.H)
	c.reg.H = hi
	c.reg.L = lo
	return StepOk
}

func sphl(c *CPU) StepResult {
	c.sp = c.reg.HL()
	return StepOk
}

func pchl(c *CPU) StepResult {
	c.jump(c.reg.HL())
	return StepOk
}

func jmp(c *CPU) StepResult {
	c.jump(c.getNextTwoBytes())
	return StepOk
}

func jcc(cc condition) execFunc {
	return func(c *CPU) StepResult {
		if c.check(cc) {
			return jmp(c)
		}
		return StepOk
	}
}

// the return address is the instruction following the CALL.
func call(c *CPU) StepResult {
	c.push(c.pc + 3)
	c.jump(c.getNextTwoBytes())
	return StepOk
}

func ccc(cc condition) execFunc {
	return func(c *CPU) StepResult {
		if c.check(cc) {
			c.cyc += condCycles
			return call(c)
		}
		return StepOk
	}
}

func ret(c *CPU) StepResult {
	c.jump(c.pop())
	return StepOk
}

func rcc(cc condition) execFunc {
	return func(c *CPU) StepResult {
		if c.check(cc) {
			c.cyc += condCycles
			return ret(c)
		}
		return StepOk
	}
}

func rst(n uint16) execFunc {
	return func(c *CPU) StepResult {
		c.push(c.pc + 1)
		c.jump(n * 8)
		return StepOk
	}
}
