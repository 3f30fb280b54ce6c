package i8080

import (
	"fmt"

	"github.com/is386/i8080core/logger"
)

type CPU struct {
	mem    Memory
	reg    Registers
	flags  Flags
	pc     uint16
	sp     uint16
	cyc    int
	inte   bool
	jumped bool
	ports  Ports

	// Verbose logs the processor state before every instruction.
	Verbose bool
}

// NewCPU returns a processor with zeroed registers, flags and memory. ports
// may be nil, in which case IN and OUT are not executed.
func NewCPU(pcStart uint16, ports Ports) *CPU {
	return &CPU{pc: pcStart, ports: ports}
}

func (c *CPU) Write(addr uint16, val uint8) {
	c.mem.Write(addr, val)
}

func (c *CPU) Read(addr uint16) uint8 {
	return c.mem.Read(addr)
}

func (c *CPU) getNextByte() uint8 {
	return c.read(c.pc + 1)
}

func (c *CPU) getSecondByte() uint8 {
	return c.read(c.pc + 2)
}

// operands in the instruction stream are little-endian.
func (c *CPU) getNextTwoBytes() uint16 {
	return pair(c.getSecondByte(), c.getNextByte())
}

func (c *CPU) read(addr uint16) uint8 {
	return c.mem.Read(addr)
}

func (c *CPU) write(addr uint16, val uint8) {
	c.mem.Write(addr, val)
}

func (c *CPU) fetch() uint8 {
	return c.read(c.pc)
}

func (c *CPU) decode(opcode uint8) *Instruction {
	return &INSTRUCTIONS[opcode]
}

// jump transfers control. the program counter is not advanced past the
// instruction that made the jump.
func (c *CPU) jump(addr uint16) {
	c.pc = addr
	c.jumped = true
}

// Step executes the instruction at the program counter. An instruction that
// returns StepNotKnownOpcode or StepError has not changed any state.
func (c *CPU) Step() StepResult {
	opcode := c.fetch()
	instr := c.decode(opcode)

	if c.Verbose {
		logger.Logf(logger.Allow, "i8080", "%s (%s)", c.String(), instr.Mnemonic)
	}

	c.jumped = false
	res := instr.exec(c)
	if res == StepNotKnownOpcode || res == StepError {
		return res
	}

	c.cyc += instr.Cycles
	if !c.jumped {
		c.pc += instr.Bytes
	}
	return res
}

// Execute steps the processor once and returns false if the driver should
// stop.
func (c *CPU) Execute() bool {
	switch c.Step() {
	case StepHalt, StepNotKnownOpcode, StepError:
		return false
	}
	return true
}

func (c *CPU) GetRegisters() *Registers {
	return &c.reg
}

func (c *CPU) GetFlags() *Flags {
	return &c.flags
}

func (c *CPU) GetMemory() *Memory {
	return &c.mem
}

func (c *CPU) GetPC() uint16 {
	return c.pc
}

func (c *CPU) SetPC(addr uint16) {
	c.pc = addr
}

func (c *CPU) GetSP() uint16 {
	return c.sp
}

func (c *CPU) SetSP(addr uint16) {
	c.sp = addr
}

func (c *CPU) GetAF() uint16 {
	return pair(c.reg.A, c.flags.Pack())
}

func (c *CPU) GetBC() uint16 {
	return c.reg.BC()
}

func (c *CPU) GetDE() uint16 {
	return c.reg.DE()
}

func (c *CPU) GetHL() uint16 {
	return c.reg.HL()
}

// GetCycles returns the nominal number of 8080 cycles executed so far.
func (c *CPU) GetCycles() int {
	return c.cyc
}

// InterruptsEnabled reports the state of the latch set by EI and cleared by
// DI.
func (c *CPU) InterruptsEnabled() bool {
	return c.inte
}

func (c *CPU) String() string {
	return fmt.Sprintf("PC: %04X, AF: %04X, BC: %04X, DE: %04X, HL: %04X, SP: %04X, CYC: %04d (%02X %02X %02X %02X)",
		c.pc, c.GetAF(), c.GetBC(), c.GetDE(), c.GetHL(), c.sp, c.cyc,
		c.fetch(), c.getNextByte(), c.getSecondByte(), c.read(c.pc+3))
}
