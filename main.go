package main

import (
	"flag"
	"log"
	"os"

	"github.com/bradleyjkemp/memviz"

	"github.com/is386/i8080core/i8080"
	"github.com/is386/i8080core/i8080Script"
	"github.com/is386/i8080core/i8080Test"
	"github.com/is386/i8080core/logger"
)

func main() {
	var rom string
	var cpm bool
	var script string
	var max int
	var verbose bool
	var graph string

	flag.StringVar(&rom, "rom", "", "ROM image to load at 0x0000")
	flag.BoolVar(&cpm, "cpm", false, "Run the ROM as a CP/M .COM test program")
	flag.StringVar(&script, "script", "", "Starlark script to drive the CPU")
	flag.IntVar(&max, "max", 0, "Stop after this many instructions (0 is no limit)")
	flag.BoolVar(&verbose, "v", false, "Trace every instruction to stderr")
	flag.StringVar(&graph, "memviz", "", "Write a Graphviz dot file of the processor state on exit")

	flag.Parse()

	if len(rom) == 0 && flag.NArg() == 1 {
		rom = flag.Arg(0)
	} else if flag.NArg() != 0 {
		log.Fatalf("%v: Unknown arguments: %v", os.Args[0], flag.Args())
	}

	if verbose {
		logger.SetEcho(os.Stderr)
	}

	switch {
	case cpm:
		if len(rom) == 0 {
			log.Fatalf("%v: -cpm needs a ROM", os.Args[0])
		}
		tm, err := i8080Test.NewTestMachine(rom, verbose)
		if err != nil {
			log.Fatalf("%v: %v", rom, err)
		}
		tm.MaxSteps = max
		if err := tm.Run(); err != nil {
			log.Fatalf("%v: %v", rom, err)
		}
		if !verbose {
			logger.Tail(os.Stderr, 1)
		}

	case len(script) != 0:
		cpu := i8080.NewCPU(0, nil)
		cpu.Verbose = verbose
		if len(rom) != 0 {
			if _, err := cpu.LoadRom(rom); err != nil {
				log.Fatalf("%v: %v", rom, err)
			}
		}
		if _, err := i8080Script.NewScript(cpu).Run(script, nil); err != nil {
			log.Fatalf("%v: %v", script, err)
		}

	default:
		if len(rom) == 0 {
			log.Fatalf("%v: no ROM given", os.Args[0])
		}
		cpu := i8080.NewCPU(0, nil)
		cpu.Verbose = verbose
		if _, err := cpu.LoadRom(rom); err != nil {
			log.Fatalf("%v: %v", rom, err)
		}

		running := true
		for n := 0; running && (max == 0 || n < max); n++ {
			pc := cpu.GetPC()
			switch cpu.Step() {
			case i8080.StepNotKnownOpcode, i8080.StepError:
				log.Fatalf("%v: %04x: %v", rom, pc, i8080.ErrOpcode(cpu.Read(pc)))
			case i8080.StepHalt:
				running = false
			}
		}
		logger.Logf(logger.Allow, "main", "%s", cpu.String())
		if !verbose {
			logger.Tail(os.Stderr, 1)
		}

		if len(graph) != 0 {
			writeGraph(graph, cpu)
		}
	}
}

// writeGraph dumps the registers and flags, not memory.
func writeGraph(filename string, cpu *i8080.CPU) {
	ouf, err := os.Create(filename)
	if err != nil {
		log.Fatalf("%v: %v", filename, err)
	}
	defer ouf.Close()
	memviz.Map(ouf, cpu.GetRegisters(), cpu.GetFlags())
}
