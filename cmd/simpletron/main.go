// Copyright 2025, Steve Caiula

package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/steve-caiula/simpletron-vm/cpu"
	"github.com/steve-caiula/simpletron-vm/emulator"
	"github.com/steve-caiula/simpletron-vm/translate"
)

func main() {
	var compile string
	var list bool
	var input string
	var output string
	var unified bool
	var quiet bool
	var lang string
	var verbose bool

	defines := map[string]string{}

	flag.StringVar(&compile, "c", "", ".sml file to assemble and run")
	flag.BoolVar(&list, "s", false, "Print the assembled listing, do not execute")
	flag.StringVar(&input, "i", "-", "Operator input")
	flag.StringVar(&output, "o", "-", "Operator output")
	flag.BoolVar(&unified, "u", false, "Unified program and data memory")
	flag.BoolVar(&quiet, "q", false, "Do not print the welcome banner")
	flag.StringVar(&lang, "l", "", "Message language (BCP 47 tag)")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")
	flag.Func("D", "Assembler equate NAME=VALUE", func(arg string) error {
		name, value, ok := strings.Cut(arg, "=")
		if !ok {
			return fmt.Errorf("%v: expected NAME=VALUE", arg)
		}
		defines[name] = value
		return nil
	})

	flag.Parse()

	if flag.NArg() != 0 {
		log.Fatalf("%v: Unknown arguments: %v", os.Args[0], flag.Args())
	}

	if len(lang) != 0 {
		translate.SetLanguage(lang)
	}

	if verbose {
		log.Printf("language: %v", translate.Language())
	}

	var prog *cpu.Program

	// Assemble a program listing.
	if len(compile) != 0 {
		inf, err := os.Open(compile)
		if err != nil {
			log.Fatalf("%v: %v", compile, err)
		}
		defer inf.Close()

		asm := &cpu.Assembler{Verbose: verbose}
		for name, value := range defines {
			asm.Predefine(name, value)
		}
		prog, err = asm.Parse(inf)
		if err != nil {
			log.Fatalf("%v: %v", compile, err)
		}

		if list {
			fmt.Print(prog.String())
			return
		}
	}

	layout := cpu.LAYOUT_SPLIT
	if unified {
		layout = cpu.LAYOUT_UNIFIED
	}

	emu := emulator.NewEmulator(layout)
	emu.Verbose = verbose

	if input == "-" {
		emu.Tape.Input = os.Stdin
	} else {
		inf, err := os.Open(input)
		if err != nil {
			log.Fatalf("%v: %v", input, err)
		}
		defer inf.Close()
		emu.Tape.Input = inf
	}

	if output == "-" {
		emu.Tape.Output = os.Stdout
	} else {
		ouf, err := os.Create(output)
		if err != nil {
			log.Fatalf("%v: %v", output, err)
		}
		defer ouf.Close()
		emu.Tape.Output = ouf
	}

	if prog != nil {
		err := emu.LoadProgram(prog)
		if err != nil {
			log.Fatalf("%v: %v", compile, err)
		}
	} else {
		if !quiet {
			err := emu.Welcome()
			if err != nil {
				log.Fatalf("%v: %v", output, err)
			}
		}
		_, err := emu.Load()
		if err != nil {
			log.Fatalf("%v: %v", input, err)
		}
	}

	state, err := emu.Run()
	if err != nil {
		log.Fatal(err)
	}

	if state == cpu.STATE_HALTED_FAULT {
		if verbose {
			log.Print(emu.Fault())
		}
		os.Exit(1)
	}
}
