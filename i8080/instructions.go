package i8080

import "fmt"

// Instruction describes one opcode of the instruction set.
type Instruction struct {
	Opcode   uint8
	Mnemonic string

	// length of the instruction including operands
	Bytes uint16

	// nominal cycle count. conditional calls and returns that are taken cost
	// an extra six cycles
	Cycles int

	// the flags the instruction may change. all other flags are preserved
	Flags FlagMask

	// undocumented opcodes are either duplicates of NOP or decline to execute
	// and return StepNotKnownOpcode
	Documented bool

	exec execFunc
}

func (instr Instruction) String() string {
	return fmt.Sprintf("%02x %s +%dbytes (%d cycles)", instr.Opcode, instr.Mnemonic, instr.Bytes, instr.Cycles)
}

// INSTRUCTIONS is indexed by opcode. Every one of the 256 entries is present.
var INSTRUCTIONS = [256]Instruction{
	0x00: {0x00, "NOP", 1, 4, flagsNone, true, nop},
	0x01: {0x01, "LXI B", 3, 10, flagsNone, true, lxi(pairB)},
	0x02: {0x02, "STAX B", 1, 7, flagsNone, true, stax(pairB)},
	0x03: {0x03, "INX B", 1, 5, flagsNone, true, inx(pairB)},
	0x04: {0x04, "INR B", 1, 5, flagsZSPA, true, inr(opB)},
	0x05: {0x05, "DCR B", 1, 5, flagsZSPA, true, dcr(opB)},
	0x06: {0x06, "MVI B", 2, 7, flagsNone, true, mvi(opB)},
	0x07: {0x07, "RLC", 1, 4, FlagCY, true, rlc},
	0x08: {0x08, "*NOP", 1, 4, flagsNone, false, nop},
	0x09: {0x09, "DAD B", 1, 10, FlagCY, true, dad(pairB)},
	0x0A: {0x0A, "LDAX B", 1, 7, flagsNone, true, ldax(pairB)},
	0x0B: {0x0B, "DCX B", 1, 5, flagsNone, true, dcx(pairB)},
	0x0C: {0x0C, "INR C", 1, 5, flagsZSPA, true, inr(opC)},
	0x0D: {0x0D, "DCR C", 1, 5, flagsZSPA, true, dcr(opC)},
	0x0E: {0x0E, "MVI C", 2, 7, flagsNone, true, mvi(opC)},
	0x0F: {0x0F, "RRC", 1, 4, FlagCY, true, rrc},
	0x10: {0x10, "*NOP", 1, 4, flagsNone, false, nop},
	0x11: {0x11, "LXI D", 3, 10, flagsNone, true, lxi(pairD)},
	0x12: {0x12, "STAX D", 1, 7, flagsNone, true, stax(pairD)},
	0x13: {0x13, "INX D", 1, 5, flagsNone, true, inx(pairD)},
	0x14: {0x14, "INR D", 1, 5, flagsZSPA, true, inr(opD)},
	0x15: {0x15, "DCR D", 1, 5, flagsZSPA, true, dcr(opD)},
	0x16: {0x16, "MVI D", 2, 7, flagsNone, true, mvi(opD)},
	0x17: {0x17, "RAL", 1, 4, FlagCY, true, ral},
	0x18: {0x18, "*NOP", 1, 4, flagsNone, false, nop},
	0x19: {0x19, "DAD D", 1, 10, FlagCY, true, dad(pairD)},
	0x1A: {0x1A, "LDAX D", 1, 7, flagsNone, true, ldax(pairD)},
	0x1B: {0x1B, "DCX D", 1, 5, flagsNone, true, dcx(pairD)},
	0x1C: {0x1C, "INR E", 1, 5, flagsZSPA, true, inr(opE)},
	0x1D: {0x1D, "DCR E", 1, 5, flagsZSPA, true, dcr(opE)},
	0x1E: {0x1E, "MVI E", 2, 7, flagsNone, true, mvi(opE)},
	0x1F: {0x1F, "RAR", 1, 4, FlagCY, true, rar},
	0x20: {0x20, "*NOP", 1, 4, flagsNone, false, nop},
	0x21: {0x21, "LXI H", 3, 10, flagsNone, true, lxi(pairH)},
	0x22: {0x22, "SHLD", 3, 16, flagsNone, true, shld},
	0x23: {0x23, "INX H", 1, 5, flagsNone, true, inx(pairH)},
	0x24: {0x24, "INR H", 1, 5, flagsZSPA, true, inr(opH)},
	0x25: {0x25, "DCR H", 1, 5, flagsZSPA, true, dcr(opH)},
	0x26: {0x26, "MVI H", 2, 7, flagsNone, true, mvi(opH)},
	0x27: {0x27, "DAA", 1, 4, flagsAll, true, daa},
	0x28: {0x28, "*NOP", 1, 4, flagsNone, false, nop},
	0x29: {0x29, "DAD H", 1, 10, FlagCY, true, dad(pairH)},
	0x2A: {0x2A, "LHLD", 3, 16, flagsNone, true, lhld},
	0x2B: {0x2B, "DCX H", 1, 5, flagsNone, true, dcx(pairH)},
	0x2C: {0x2C, "INR L", 1, 5, flagsZSPA, true, inr(opL)},
	0x2D: {0x2D, "DCR L", 1, 5, flagsZSPA, true, dcr(opL)},
	0x2E: {0x2E, "MVI L", 2, 7, flagsNone, true, mvi(opL)},
	0x2F: {0x2F, "CMA", 1, 4, flagsNone, true, cma},
	0x30: {0x30, "*NOP", 1, 4, flagsNone, false, nop},
	0x31: {0x31, "LXI SP", 3, 10, flagsNone, true, lxi(pairSP)},
	0x32: {0x32, "STA", 3, 13, flagsNone, true, sta},
	0x33: {0x33, "INX SP", 1, 5, flagsNone, true, inx(pairSP)},
	0x34: {0x34, "INR M", 1, 10, flagsZSPA, true, inr(opM)},
	0x35: {0x35, "DCR M", 1, 10, flagsZSPA, true, dcr(opM)},
	0x36: {0x36, "MVI M", 2, 10, flagsNone, true, mvi(opM)},
	0x37: {0x37, "STC", 1, 4, FlagCY, true, stc},
	0x38: {0x38, "*NOP", 1, 4, flagsNone, false, nop},
	0x39: {0x39, "DAD SP", 1, 10, FlagCY, true, dad(pairSP)},
	0x3A: {0x3A, "LDA", 3, 13, flagsNone, true, lda},
	0x3B: {0x3B, "DCX SP", 1, 5, flagsNone, true, dcx(pairSP)},
	0x3C: {0x3C, "INR A", 1, 5, flagsZSPA, true, inr(opA)},
	0x3D: {0x3D, "DCR A", 1, 5, flagsZSPA, true, dcr(opA)},
	0x3E: {0x3E, "MVI A", 2, 7, flagsNone, true, mvi(opA)},
	0x3F: {0x3F, "CMC", 1, 4, FlagCY, true, cmc},
	0x40: {0x40, "MOV B,B", 1, 5, flagsNone, true, mov(opB, opB)},
	0x41: {0x41, "MOV B,C", 1, 5, flagsNone, true, mov(opB, opC)},
	0x42: {0x42, "MOV B,D", 1, 5, flagsNone, true, mov(opB, opD)},
	0x43: {0x43, "MOV B,E", 1, 5, flagsNone, true, mov(opB, opE)},
	0x44: {0x44, "MOV B,H", 1, 5, flagsNone, true, mov(opB, opH)},
	0x45: {0x45, "MOV B,L", 1, 5, flagsNone, true, mov(opB, opL)},
	0x46: {0x46, "MOV B,M", 1, 7, flagsNone, true, mov(opB, opM)},
	0x47: {0x47, "MOV B,A", 1, 5, flagsNone, true, mov(opB, opA)},
	0x48: {0x48, "MOV C,B", 1, 5, flagsNone, true, mov(opC, opB)},
	0x49: {0x49, "MOV C,C", 1, 5, flagsNone, true, mov(opC, opC)},
	0x4A: {0x4A, "MOV C,D", 1, 5, flagsNone, true, mov(opC, opD)},
	0x4B: {0x4B, "MOV C,E", 1, 5, flagsNone, true, mov(opC, opE)},
	0x4C: {0x4C, "MOV C,H", 1, 5, flagsNone, true, mov(opC, opH)},
	0x4D: {0x4D, "MOV C,L", 1, 5, flagsNone, true, mov(opC, opL)},
	0x4E: {0x4E, "MOV C,M", 1, 7, flagsNone, true, mov(opC, opM)},
	0x4F: {0x4F, "MOV C,A", 1, 5, flagsNone, true, mov(opC, opA)},
	0x50: {0x50, "MOV D,B", 1, 5, flagsNone, true, mov(opD, opB)},
	0x51: {0x51, "MOV D,C", 1, 5, flagsNone, true, mov(opD, opC)},
	0x52: {0x52, "MOV D,D", 1, 5, flagsNone, true, mov(opD, opD)},
	0x53: {0x53, "MOV D,E", 1, 5, flagsNone, true, mov(opD, opE)},
	0x54: {0x54, "MOV D,H", 1, 5, flagsNone, true, mov(opD, opH)},
	0x55: {0x55, "MOV D,L", 1, 5, flagsNone, true, mov(opD, opL)},
	0x56: {0x56, "MOV D,M", 1, 7, flagsNone, true, mov(opD, opM)},
	0x57: {0x57, "MOV D,A", 1, 5, flagsNone, true, mov(opD, opA)},
	0x58: {0x58, "MOV E,B", 1, 5, flagsNone, true, mov(opE, opB)},
	0x59: {0x59, "MOV E,C", 1, 5, flagsNone, true, mov(opE, opC)},
	0x5A: {0x5A, "MOV E,D", 1, 5, flagsNone, true, mov(opE, opD)},
	0x5B: {0x5B, "MOV E,E", 1, 5, flagsNone, true, mov(opE, opE)},
	0x5C: {0x5C, "MOV E,H", 1, 5, flagsNone, true, mov(opE, opH)},
	0x5D: {0x5D, "MOV E,L", 1, 5, flagsNone, true, mov(opE, opL)},
	0x5E: {0x5E, "MOV E,M", 1, 7, flagsNone, true, mov(opE, opM)},
	0x5F: {0x5F, "MOV E,A", 1, 5, flagsNone, true, mov(opE, opA)},
	0x60: {0x60, "MOV H,B", 1, 5, flagsNone, true, mov(opH, opB)},
	0x61: {0x61, "MOV H,C", 1, 5, flagsNone, true, mov(opH, opC)},
	0x62: {0x62, "MOV H,D", 1, 5, flagsNone, true, mov(opH, opD)},
	0x63: {0x63, "MOV H,E", 1, 5, flagsNone, true, mov(opH, opE)},
	0x64: {0x64, "MOV H,H", 1, 5, flagsNone, true, mov(opH, opH)},
	0x65: {0x65, "MOV H,L", 1, 5, flagsNone, true, mov(opH, opL)},
	0x66: {0x66, "MOV H,M", 1, 7, flagsNone, true, mov(opH, opM)},
	0x67: {0x67, "MOV H,A", 1, 5, flagsNone, true, mov(opH, opA)},
	0x68: {0x68, "MOV L,B", 1, 5, flagsNone, true, mov(opL, opB)},
	0x69: {0x69, "MOV L,C", 1, 5, flagsNone, true, mov(opL, opC)},
	0x6A: {0x6A, "MOV L,D", 1, 5, flagsNone, true, mov(opL, opD)},
	0x6B: {0x6B, "MOV L,E", 1, 5, flagsNone, true, mov(opL, opE)},
	0x6C: {0x6C, "MOV L,H", 1, 5, flagsNone, true, mov(opL, opH)},
	0x6D: {0x6D, "MOV L,L", 1, 5, flagsNone, true, mov(opL, opL)},
	0x6E: {0x6E, "MOV L,M", 1, 7, flagsNone, true, mov(opL, opM)},
	0x6F: {0x6F, "MOV L,A", 1, 5, flagsNone, true, mov(opL, opA)},
	0x70: {0x70, "MOV M,B", 1, 7, flagsNone, true, mov(opM, opB)},
	0x71: {0x71, "MOV M,C", 1, 7, flagsNone, true, mov(opM, opC)},
	0x72: {0x72, "MOV M,D", 1, 7, flagsNone, true, mov(opM, opD)},
	0x73: {0x73, "MOV M,E", 1, 7, flagsNone, true, mov(opM, opE)},
	0x74: {0x74, "MOV M,H", 1, 7, flagsNone, true, mov(opM, opH)},
	0x75: {0x75, "MOV M,L", 1, 7, flagsNone, true, mov(opM, opL)},
	0x76: {0x76, "HLT", 1, 7, flagsNone, true, hlt},
	0x77: {0x77, "MOV M,A", 1, 7, flagsNone, true, mov(opM, opA)},
	0x78: {0x78, "MOV A,B", 1, 5, flagsNone, true, mov(opA, opB)},
	0x79: {0x79, "MOV A,C", 1, 5, flagsNone, true, mov(opA, opC)},
	0x7A: {0x7A, "MOV A,D", 1, 5, flagsNone, true, mov(opA, opD)},
	0x7B: {0x7B, "MOV A,E", 1, 5, flagsNone, true, mov(opA, opE)},
	0x7C: {0x7C, "MOV A,H", 1, 5, flagsNone, true, mov(opA, opH)},
	0x7D: {0x7D, "MOV A,L", 1, 5, flagsNone, true, mov(opA, opL)},
	0x7E: {0x7E, "MOV A,M", 1, 7, flagsNone, true, mov(opA, opM)},
	0x7F: {0x7F, "MOV A,A", 1, 5, flagsNone, true, mov(opA, opA)},
	0x80: {0x80, "ADD B", 1, 4, flagsAll, true, alu(opB, (*CPU).add)},
	0x81: {0x81, "ADD C", 1, 4, flagsAll, true, alu(opC, (*CPU).add)},
	0x82: {0x82, "ADD D", 1, 4, flagsAll, true, alu(opD, (*CPU).add)},
	0x83: {0x83, "ADD E", 1, 4, flagsAll, true, alu(opE, (*CPU).add)},
	0x84: {0x84, "ADD H", 1, 4, flagsAll, true, alu(opH, (*CPU).add)},
	0x85: {0x85, "ADD L", 1, 4, flagsAll, true, alu(opL, (*CPU).add)},
	0x86: {0x86, "ADD M", 1, 7, flagsAll, true, alu(opM, (*CPU).add)},
	0x87: {0x87, "ADD A", 1, 4, flagsAll, true, alu(opA, (*CPU).add)},
	0x88: {0x88, "ADC B", 1, 4, flagsAll, true, alu(opB, (*CPU).adc)},
	0x89: {0x89, "ADC C", 1, 4, flagsAll, true, alu(opC, (*CPU).adc)},
	0x8A: {0x8A, "ADC D", 1, 4, flagsAll, true, alu(opD, (*CPU).adc)},
	0x8B: {0x8B, "ADC E", 1, 4, flagsAll, true, alu(opE, (*CPU).adc)},
	0x8C: {0x8C, "ADC H", 1, 4, flagsAll, true, alu(opH, (*CPU).adc)},
	0x8D: {0x8D, "ADC L", 1, 4, flagsAll, true, alu(opL, (*CPU).adc)},
	0x8E: {0x8E, "ADC M", 1, 7, flagsAll, true, alu(opM, (*CPU).adc)},
	0x8F: {0x8F, "ADC A", 1, 4, flagsAll, true, alu(opA, (*CPU).adc)},
	0x90: {0x90, "SUB B", 1, 4, flagsAll, true, alu(opB, (*CPU).sub)},
	0x91: {0x91, "SUB C", 1, 4, flagsAll, true, alu(opC, (*CPU).sub)},
	0x92: {0x92, "SUB D", 1, 4, flagsAll, true, alu(opD, (*CPU).sub)},
	0x93: {0x93, "SUB E", 1, 4, flagsAll, true, alu(opE, (*CPU).sub)},
	0x94: {0x94, "SUB H", 1, 4, flagsAll, true, alu(opH, (*CPU).sub)},
	0x95: {0x95, "SUB L", 1, 4, flagsAll, true, alu(opL, (*CPU).sub)},
	0x96: {0x96, "SUB M", 1, 7, flagsAll, true, alu(opM, (*CPU).sub)},
	0x97: {0x97, "SUB A", 1, 4, flagsAll, true, alu(opA, (*CPU).sub)},
	0x98: {0x98, "SBB B", 1, 4, flagsAll, true, alu(opB, (*CPU).sbb)},
	0x99: {0x99, "SBB C", 1, 4, flagsAll, true, alu(opC, (*CPU).sbb)},
	0x9A: {0x9A, "SBB D", 1, 4, flagsAll, true, alu(opD, (*CPU).sbb)},
	0x9B: {0x9B, "SBB E", 1, 4, flagsAll, true, alu(opE, (*CPU).sbb)},
	0x9C: {0x9C, "SBB H", 1, 4, flagsAll, true, alu(opH, (*CPU).sbb)},
	0x9D: {0x9D, "SBB L", 1, 4, flagsAll, true, alu(opL, (*CPU).sbb)},
	0x9E: {0x9E, "SBB M", 1, 7, flagsAll, true, alu(opM, (*CPU).sbb)},
	0x9F: {0x9F, "SBB A", 1, 4, flagsAll, true, alu(opA, (*CPU).sbb)},
	0xA0: {0xA0, "ANA B", 1, 4, flagsAll, true, alu(opB, (*CPU).and)},
	0xA1: {0xA1, "ANA C", 1, 4, flagsAll, true, alu(opC, (*CPU).and)},
	0xA2: {0xA2, "ANA D", 1, 4, flagsAll, true, alu(opD, (*CPU).and)},
	0xA3: {0xA3, "ANA E", 1, 4, flagsAll, true, alu(opE, (*CPU).and)},
	0xA4: {0xA4, "ANA H", 1, 4, flagsAll, true, alu(opH, (*CPU).and)},
	0xA5: {0xA5, "ANA L", 1, 4, flagsAll, true, alu(opL, (*CPU).and)},
	0xA6: {0xA6, "ANA M", 1, 7, flagsAll, true, alu(opM, (*CPU).and)},
	0xA7: {0xA7, "ANA A", 1, 4, flagsAll, true, alu(opA, (*CPU).and)},
	0xA8: {0xA8, "XRA B", 1, 4, flagsAll, true, alu(opB, (*CPU).xor)},
	0xA9: {0xA9, "XRA C", 1, 4, flagsAll, true, alu(opC, (*CPU).xor)},
	0xAA: {0xAA, "XRA D", 1, 4, flagsAll, true, alu(opD, (*CPU).xor)},
	0xAB: {0xAB, "XRA E", 1, 4, flagsAll, true, alu(opE, (*CPU).xor)},
	0xAC: {0xAC, "XRA H", 1, 4, flagsAll, true, alu(opH, (*CPU).xor)},
	0xAD: {0xAD, "XRA L", 1, 4, flagsAll, true, alu(opL, (*CPU).xor)},
	0xAE: {0xAE, "XRA M", 1, 7, flagsAll, true, alu(opM, (*CPU).xor)},
	0xAF: {0xAF, "XRA A", 1, 4, flagsAll, true, alu(opA, (*CPU).xor)},
	0xB0: {0xB0, "ORA B", 1, 4, flagsAll, true, alu(opB, (*CPU).or)},
	0xB1: {0xB1, "ORA C", 1, 4, flagsAll, true, alu(opC, (*CPU).or)},
	0xB2: {0xB2, "ORA D", 1, 4, flagsAll, true, alu(opD, (*CPU).or)},
	0xB3: {0xB3, "ORA E", 1, 4, flagsAll, true, alu(opE, (*CPU).or)},
	0xB4: {0xB4, "ORA H", 1, 4, flagsAll, true, alu(opH, (*CPU).or)},
	0xB5: {0xB5, "ORA L", 1, 4, flagsAll, true, alu(opL, (*CPU).or)},
	0xB6: {0xB6, "ORA M", 1, 7, flagsAll, true, alu(opM, (*CPU).or)},
	0xB7: {0xB7, "ORA A", 1, 4, flagsAll, true, alu(opA, (*CPU).or)},
	0xB8: {0xB8, "CMP B", 1, 4, flagsAll, true, alu(opB, (*CPU).cmp)},
	0xB9: {0xB9, "CMP C", 1, 4, flagsAll, true, alu(opC, (*CPU).cmp)},
	0xBA: {0xBA, "CMP D", 1, 4, flagsAll, true, alu(opD, (*CPU).cmp)},
	0xBB: {0xBB, "CMP E", 1, 4, flagsAll, true, alu(opE, (*CPU).cmp)},
	0xBC: {0xBC, "CMP H", 1, 4, flagsAll, true, alu(opH, (*CPU).cmp)},
	0xBD: {0xBD, "CMP L", 1, 4, flagsAll, true, alu(opL, (*CPU).cmp)},
	0xBE: {0xBE, "CMP M", 1, 7, flagsAll, true, alu(opM, (*CPU).cmp)},
	0xBF: {0xBF, "CMP A", 1, 4, flagsAll, true, alu(opA, (*CPU).cmp)},
	0xC0: {0xC0, "RNZ", 1, 5, flagsNone, true, rcc(condNZ)},
	0xC1: {0xC1, "POP B", 1, 10, flagsNone, true, popPair(pairB)},
	0xC2: {0xC2, "JNZ", 3, 10, flagsNone, true, jcc(condNZ)},
	0xC3: {0xC3, "JMP", 3, 10, flagsNone, true, jmp},
	0xC4: {0xC4, "CNZ", 3, 11, flagsNone, true, ccc(condNZ)},
	0xC5: {0xC5, "PUSH B", 1, 11, flagsNone, true, pushPair(pairB)},
	0xC6: {0xC6, "ADI", 2, 7, flagsAll, true, aluImmediate((*CPU).add)},
	0xC7: {0xC7, "RST 0", 1, 11, flagsNone, true, rst(0)},
	0xC8: {0xC8, "RZ", 1, 5, flagsNone, true, rcc(condZ)},
	0xC9: {0xC9, "RET", 1, 10, flagsNone, true, ret},
	0xCA: {0xCA, "JZ", 3, 10, flagsNone, true, jcc(condZ)},
	0xCB: {0xCB, "*JMP", 3, 0, flagsNone, false, notKnown},
	0xCC: {0xCC, "CZ", 3, 11, flagsNone, true, ccc(condZ)},
	0xCD: {0xCD, "CALL", 3, 17, flagsNone, true, call},
	0xCE: {0xCE, "ACI", 2, 7, flagsAll, true, aluImmediate((*CPU).adc)},
	0xCF: {0xCF, "RST 1", 1, 11, flagsNone, true, rst(1)},
	0xD0: {0xD0, "RNC", 1, 5, flagsNone, true, rcc(condNC)},
	0xD1: {0xD1, "POP D", 1, 10, flagsNone, true, popPair(pairD)},
	0xD2: {0xD2, "JNC", 3, 10, flagsNone, true, jcc(condNC)},
	0xD3: {0xD3, "OUT", 2, 10, flagsNone, true, out},
	0xD4: {0xD4, "CNC", 3, 11, flagsNone, true, ccc(condNC)},
	0xD5: {0xD5, "PUSH D", 1, 11, flagsNone, true, pushPair(pairD)},
	0xD6: {0xD6, "SUI", 2, 7, flagsAll, true, aluImmediate((*CPU).sub)},
	0xD7: {0xD7, "RST 2", 1, 11, flagsNone, true, rst(2)},
	0xD8: {0xD8, "RC", 1, 5, flagsNone, true, rcc(condC)},
	0xD9: {0xD9, "*RET", 1, 0, flagsNone, false, notKnown},
	0xDA: {0xDA, "JC", 3, 10, flagsNone, true, jcc(condC)},
	0xDB: {0xDB, "IN", 2, 10, flagsNone, true, in},
	0xDC: {0xDC, "CC", 3, 11, flagsNone, true, ccc(condC)},
	0xDD: {0xDD, "*CALL", 3, 0, flagsNone, false, notKnown},
	0xDE: {0xDE, "SBI", 2, 7, flagsAll, true, aluImmediate((*CPU).sbb)},
	0xDF: {0xDF, "RST 3", 1, 11, flagsNone, true, rst(3)},
	0xE0: {0xE0, "RPO", 1, 5, flagsNone, true, rcc(condPO)},
	0xE1: {0xE1, "POP H", 1, 10, flagsNone, true, popPair(pairH)},
	0xE2: {0xE2, "JPO", 3, 10, flagsNone, true, jcc(condPO)},
	0xE3: {0xE3, "XTHL", 1, 18, flagsNone, true, xthl},
	0xE4: {0xE4, "CPO", 3, 11, flagsNone, true, ccc(condPO)},
	0xE5: {0xE5, "PUSH H", 1, 11, flagsNone, true, pushPair(pairH)},
	0xE6: {0xE6, "ANI", 2, 7, flagsAll, true, aluImmediate((*CPU).and)},
	0xE7: {0xE7, "RST 4", 1, 11, flagsNone, true, rst(4)},
	0xE8: {0xE8, "RPE", 1, 5, flagsNone, true, rcc(condPE)},
	0xE9: {0xE9, "PCHL", 1, 5, flagsNone, true, pchl},
	0xEA: {0xEA, "JPE", 3, 10, flagsNone, true, jcc(condPE)},
	0xEB: {0xEB, "XCHG", 1, 4, flagsNone, true, xchg},
	0xEC: {0xEC, "CPE", 3, 11, flagsNone, true, ccc(condPE)},
	0xED: {0xED, "*CALL", 3, 0, flagsNone, false, notKnown},
	0xEE: {0xEE, "XRI", 2, 7, flagsAll, true, aluImmediate((*CPU).xor)},
	0xEF: {0xEF, "RST 5", 1, 11, flagsNone, true, rst(5)},
	0xF0: {0xF0, "RP", 1, 5, flagsNone, true, rcc(condP)},
	0xF1: {0xF1, "POP PSW", 1, 10, flagsAll, true, popPair(pairPSW)},
	0xF2: {0xF2, "JP", 3, 10, flagsNone, true, jcc(condP)},
	0xF3: {0xF3, "DI", 1, 4, flagsNone, true, di},
	0xF4: {0xF4, "CP", 3, 11, flagsNone, true, ccc(condP)},
	0xF5: {0xF5, "PUSH PSW", 1, 11, flagsNone, true, pushPair(pairPSW)},
	0xF6: {0xF6, "ORI", 2, 7, flagsAll, true, aluImmediate((*CPU).or)},
	0xF7: {0xF7, "RST 6", 1, 11, flagsNone, true, rst(6)},
	0xF8: {0xF8, "RM", 1, 5, flagsNone, true, rcc(condM)},
	0xF9: {0xF9, "SPHL", 1, 5, flagsNone, true, sphl},
	0xFA: {0xFA, "JM", 3, 10, flagsNone, true, jcc(condM)},
	0xFB: {0xFB, "EI", 1, 4, flagsNone, true, ei},
	0xFC: {0xFC, "CM", 3, 11, flagsNone, true, ccc(condM)},
	0xFD: {0xFD, "*CALL", 3, 0, flagsNone, false, notKnown},
	0xFE: {0xFE, "CPI", 2, 7, flagsAll, true, aluImmediate((*CPU).cmp)},
	0xFF: {0xFF, "RST 7", 1, 11, flagsNone, true, rst(7)},
}
