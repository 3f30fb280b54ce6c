// Package i8080Test runs CP/M .COM test programs. The program is loaded at
// 0x100 and the two BDOS entry points it uses are replaced by OUT trampolines:
// OUT 0 at 0x0000 ends the run and OUT 1 at 0x0005 prints through BDOS
// functions 2 and 9.
package i8080Test

import (
	"io"
	"os"

	"github.com/is386/i8080core/i8080"
	"github.com/is386/i8080core/logger"
)

// start address of a CP/M transient program
const programStart = 0x100

type TestMachine struct {
	cpu        *i8080.CPU
	cycles     int
	instrCount int
	running    bool
	showDebug  bool

	// Output receives everything the program prints. Defaults to stdout.
	Output io.Writer

	// MaxSteps stops the run after that many instructions. Zero is no limit.
	MaxSteps int
}

func newTestMachine(showDebug bool) *TestMachine {
	tm := &TestMachine{showDebug: showDebug, running: true, Output: os.Stdout}
	tm.cpu = i8080.NewCPU(programStart, tm)
	tm.cpu.Verbose = showDebug
	return tm
}

func NewTestMachine(filename string, showDebug bool) (*TestMachine, error) {
	tm := newTestMachine(showDebug)
	if _, err := tm.cpu.LoadRomAt(filename, programStart); err != nil {
		return nil, err
	}
	tm.patchBDOS()
	return tm, nil
}

// NewTestMachineFromBytes is NewTestMachine for a program already in memory.
func NewTestMachineFromBytes(program []byte, showDebug bool) (*TestMachine, error) {
	tm := newTestMachine(showDebug)
	if err := tm.cpu.GetMemory().Load(program, programStart); err != nil {
		return nil, err
	}
	tm.patchBDOS()
	return tm, nil
}

func (tm *TestMachine) patchBDOS() {
	tm.cpu.Write(0x0, 0xD3)
	tm.cpu.Write(0x1, 0x00)
	tm.cpu.Write(0x5, 0xD3)
	tm.cpu.Write(0x6, 0x01)
	tm.cpu.Write(0x7, 0xC9)
}

// Run executes until the program returns to CP/M, halts or reaches MaxSteps.
// An opcode the processor declines to execute ends the run with an
// i8080.ErrOpcode.
func (tm *TestMachine) Run() error {
	defer tm.summary()

	for tm.running {
		if tm.MaxSteps > 0 && tm.instrCount >= tm.MaxSteps {
			return nil
		}

		pc := tm.cpu.GetPC()
		switch tm.cpu.Step() {
		case i8080.StepNotKnownOpcode, i8080.StepError:
			return i8080.ErrOpcode(tm.cpu.Read(pc))
		case i8080.StepHalt:
			tm.running = false
		}
		tm.instrCount++
	}
	return nil
}

func (tm *TestMachine) summary() {
	tm.cycles = tm.cpu.GetCycles()
	logger.Logf(logger.Allow, "cpm", "test completed: instructions %d, cycles %d", tm.instrCount, tm.cycles)
}

func (tm *TestMachine) CPU() *i8080.CPU {
	return tm.cpu
}

func (tm *TestMachine) Instructions() int {
	return tm.instrCount
}

func (tm *TestMachine) Cycles() int {
	return tm.cycles
}

func (tm *TestMachine) In(port uint8) uint8 {
	return 0
}

func (tm *TestMachine) Out(port uint8, val uint8) {
	if port == 0 {
		tm.running = false
	} else if port == 1 {
		reg := tm.cpu.GetRegisters()
		if reg.C == 9 {
			offset := tm.cpu.GetDE()
			mem := tm.cpu.GetMemory()
			var str []byte
			for len(str) < i8080.MemorySize && mem.Read(offset) != '$' {
				str = append(str, mem.Read(offset))
				offset++
			}
			tm.Output.Write(str)
		} else if reg.C == 2 {
			tm.Output.Write([]byte{reg.E})
		}
	}
}
