// Package i8080Script drives a CPU from a Starlark script. The script sees the
// processor through a small set of builtins:
//
//	step()                         execute one instruction, returns the step result
//	run(max=0)                     step until the processor stops or max steps
//	reg(name)                      read a, b, c, d, e, h, l, bc, de, hl, sp or pc
//	set_reg(name, value)
//	flag(name)                     read s, z, ac, p or cy
//	set_flag(name, value)
//	peek(addr)
//	poke(addr, value)
//	load_program(program, addr=0)  copy a list of bytes into memory
//	cycles()
//
// print() writes to the script's Output.
package i8080Script

import (
	"fmt"
	"io"
	"os"
	"strings"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"

	"github.com/is386/i8080core/i8080"
	"github.com/is386/i8080core/logger"
)

type Script struct {
	cpu *i8080.CPU

	// Output receives the script's print() calls. Defaults to stdout.
	Output io.Writer
}

func NewScript(cpu *i8080.CPU) *Script {
	return &Script{cpu: cpu, Output: os.Stdout}
}

// Run executes src, which may be a string, a []byte or nil to read filename.
// The script's globals are returned.
func (s *Script) Run(filename string, src interface{}) (starlark.StringDict, error) {
	thread := starlark.Thread{
		Name: filename,
		Print: func(_ *starlark.Thread, msg string) {
			fmt.Fprintln(s.Output, msg)
		},
	}
	opts := syntax.FileOptions{}

	globals, err := starlark.ExecFileOptions(&opts, &thread, filename, src, s.builtins())
	if err != nil {
		logger.Logf(logger.Allow, "script", "%s: %v", filename, err)
		return nil, err
	}
	return globals, nil
}

func (s *Script) builtins() starlark.StringDict {
	return starlark.StringDict{
		"step":         starlark.NewBuiltin("step", s.step),
		"run":          starlark.NewBuiltin("run", s.run),
		"reg":          starlark.NewBuiltin("reg", s.reg),
		"set_reg":      starlark.NewBuiltin("set_reg", s.setReg),
		"flag":         starlark.NewBuiltin("flag", s.flag),
		"set_flag":     starlark.NewBuiltin("set_flag", s.setFlag),
		"peek":         starlark.NewBuiltin("peek", s.peek),
		"poke":         starlark.NewBuiltin("poke", s.poke),
		"load_program": starlark.NewBuiltin("load_program", s.load),
		"cycles":       starlark.NewBuiltin("cycles", s.cycles),
	}
}

func (s *Script) step(thread *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	if err := starlark.UnpackArgs(b.Name(), args, kwargs); err != nil {
		return nil, err
	}
	return starlark.String(s.cpu.Step().String()), nil
}

func (s *Script) run(thread *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	limit := 0
	if err := starlark.UnpackArgs(b.Name(), args, kwargs, "max?", &limit); err != nil {
		return nil, err
	}

	res := i8080.StepOk
	for n := 0; limit == 0 || n < limit; n++ {
		res = s.cpu.Step()
		if res == i8080.StepHalt || res == i8080.StepNotKnownOpcode || res == i8080.StepError {
			break
		}
	}
	return starlark.String(res.String()), nil
}

func (s *Script) reg(thread *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var name string
	if err := starlark.UnpackArgs(b.Name(), args, kwargs, "name", &name); err != nil {
		return nil, err
	}

	r := s.cpu.GetRegisters()
	var val int
	switch strings.ToLower(name) {
	case "a":
		val = int(r.A)
	case "b":
		val = int(r.B)
	case "c":
		val = int(r.C)
	case "d":
		val = int(r.D)
	case "e":
		val = int(r.E)
	case "h":
		val = int(r.H)
	case "l":
		val = int(r.L)
	case "bc":
		val = int(s.cpu.GetBC())
	case "de":
		val = int(s.cpu.GetDE())
	case "hl":
		val = int(s.cpu.GetHL())
	case "sp":
		val = int(s.cpu.GetSP())
	case "pc":
		val = int(s.cpu.GetPC())
	default:
		return nil, ErrScriptRegister(name)
	}
	return starlark.MakeInt(val), nil
}

func (s *Script) setReg(thread *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var name string
	var val int
	if err := starlark.UnpackArgs(b.Name(), args, kwargs, "name", &name, "value", &val); err != nil {
		return nil, err
	}

	r := s.cpu.GetRegisters()
	name = strings.ToLower(name)

	var reg8 *uint8
	var set16 func(uint16)
	switch name {
	case "a":
		reg8 = &r.A
	case "b":
		reg8 = &r.B
	case "c":
		reg8 = &r.C
	case "d":
		reg8 = &r.D
	case "e":
		reg8 = &r.E
	case "h":
		reg8 = &r.H
	case "l":
		reg8 = &r.L
	case "bc":
		set16 = r.SetBC
	case "de":
		set16 = r.SetDE
	case "hl":
		set16 = r.SetHL
	case "sp":
		set16 = s.cpu.SetSP
	case "pc":
		set16 = s.cpu.SetPC
	default:
		return nil, ErrScriptRegister(name)
	}

	if reg8 != nil {
		if val < 0 || val > 0xff {
			return nil, ErrScriptValue{Name: name, Value: val}
		}
		*reg8 = uint8(val)
		return starlark.None, nil
	}

	if val < 0 || val > 0xffff {
		return nil, ErrScriptValue{Name: name, Value: val}
	}
	set16(uint16(val))
	return starlark.None, nil
}

func (s *Script) flagRef(name string) (*bool, error) {
	fl := s.cpu.GetFlags()
	switch strings.ToLower(name) {
	case "s":
		return &fl.S, nil
	case "z":
		return &fl.Z, nil
	case "ac":
		return &fl.AC, nil
	case "p":
		return &fl.P, nil
	case "cy":
		return &fl.CY, nil
	}
	return nil, ErrScriptFlag(name)
}

func (s *Script) flag(thread *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var name string
	if err := starlark.UnpackArgs(b.Name(), args, kwargs, "name", &name); err != nil {
		return nil, err
	}
	ref, err := s.flagRef(name)
	if err != nil {
		return nil, err
	}
	return starlark.Bool(*ref), nil
}

func (s *Script) setFlag(thread *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var name string
	var val bool
	if err := starlark.UnpackArgs(b.Name(), args, kwargs, "name", &name, "value", &val); err != nil {
		return nil, err
	}
	ref, err := s.flagRef(name)
	if err != nil {
		return nil, err
	}
	*ref = val
	return starlark.None, nil
}

func address(val int) (uint16, error) {
	if val < 0 || val > 0xffff {
		return 0, ErrScriptValue{Name: "address", Value: val}
	}
	return uint16(val), nil
}

func (s *Script) peek(thread *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var addr int
	if err := starlark.UnpackArgs(b.Name(), args, kwargs, "addr", &addr); err != nil {
		return nil, err
	}
	a, err := address(addr)
	if err != nil {
		return nil, err
	}
	return starlark.MakeInt(int(s.cpu.Read(a))), nil
}

func (s *Script) poke(thread *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var addr, val int
	if err := starlark.UnpackArgs(b.Name(), args, kwargs, "addr", &addr, "value", &val); err != nil {
		return nil, err
	}
	a, err := address(addr)
	if err != nil {
		return nil, err
	}
	if val < 0 || val > 0xff {
		return nil, ErrScriptValue{Name: "byte", Value: val}
	}
	s.cpu.Write(a, uint8(val))
	return starlark.None, nil
}

func (s *Script) load(thread *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var program *starlark.List
	addr := 0
	if err := starlark.UnpackArgs(b.Name(), args, kwargs, "program", &program, "addr?", &addr); err != nil {
		return nil, err
	}
	start, err := address(addr)
	if err != nil {
		return nil, err
	}

	rom := make([]byte, program.Len())
	for i := range rom {
		val, err := starlark.AsInt32(program.Index(i))
		if err != nil {
			return nil, err
		}
		if val < 0 || val > 0xff {
			return nil, ErrScriptValue{Name: "byte", Value: val}
		}
		rom[i] = uint8(val)
	}

	if err := s.cpu.GetMemory().Load(rom, start); err != nil {
		return nil, err
	}
	return starlark.None, nil
}

func (s *Script) cycles(thread *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	if err := starlark.UnpackArgs(b.Name(), args, kwargs); err != nil {
		return nil, err
	}
	return starlark.MakeInt(s.cpu.GetCycles()), nil
}
