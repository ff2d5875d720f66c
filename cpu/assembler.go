// Copyright 2025, Steve Caiula

package cpu

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"maps"
	"regexp"
	"slices"
	"strconv"
	"strings"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"

	"github.com/steve-caiula/simpletron-vm/internal"
)

// Predefined system equates
var sysEquate = map[string]string{
	"LINENO": "0",
}

// Assembler is a single pass assembler for the Simpletron machine language.
//
// Each non-empty line holds at most one instruction or directive:
//
//	; comment to end of line
//	.equ NAME VALUE        ; define an equate
//	label: MNEMONIC OPERAND
//	label: .word VALUE     ; raw data word
//
// Operands are decimal (or 0x/0o/0b prefixed) numbers, equates, labels,
// or $(...) expressions evaluated at assembly time.
type Assembler struct {
	Verbose bool   // If set, verbosely logs the assembler actions.
	Lines   []Line // List of generated lines.

	predefine map[string]string // Predefines
	Label     map[string]int    // Map of labels to addresses.
	Equate    map[string]string // Map of equates.
}

// Predefine defines a new equate or redefines an existing equate.
func (asm *Assembler) Predefine(equ string, value string) {
	if asm.predefine == nil {
		asm.predefine = map[string]string{equ: value}
	} else {
		asm.predefine[equ] = value
	}
}

// mnemonicMap maps lower case mnemonics to opcodes.
var mnemonicMap = map[string]Opcode{
	"sub":   OP_SUBTRACT,
	"div":   OP_DIVIDE,
	"rem":   OP_REMAINDER,
	"mul":   OP_MULTIPLY,
	"b":     OP_BRANCH,
	"bneg":  OP_BRANCHNEG,
	"bzero": OP_BRANCHZERO,
}

func init() {
	for op := range Opcodes() {
		mnemonicMap[strings.ToLower(op.String())] = op
	}
}

var (
	reIdentifier = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)
	reParen      = regexp.MustCompile(`\$\([^\$]*\)`)
)

// valueOf returns the value of a simple word.
func (asm *Assembler) valueOf(word string) (value int, err error) {
	base := 10
	digits := strings.TrimLeft(word, "+-")
	if len(digits) > 1 && digits[0] == '0' && strings.ContainsAny(digits[1:2], "xXoObB") {
		base = 0
	}

	v64, err := strconv.ParseInt(word, base, 32)
	if err != nil {
		err = ErrParseNumber(word)
		return
	}

	value = int(v64)
	return
}

// parenEval does compile-time $(...) evaluations
func (asm *Assembler) parenEval(expr string) (value int, err error) {
	thread := starlark.Thread{}
	opts := syntax.FileOptions{}
	pred := starlark.StringDict{}
	for key, str := range asm.Equate {
		var known int
		known, err = asm.valueOf(str)
		if err != nil {
			// Ignore non-integer equates.
			continue
		}
		pred[key] = starlark.MakeInt(known)
	}
	err = nil
	for key, ip := range asm.Label {
		pred[key] = starlark.MakeInt(ip)
	}
	prog := "rc=" + expr + "\n"
	dict, err := starlark.ExecFileOptions(&opts, &thread, "expr", prog, pred)
	if err != nil {
		return
	}
	st_rc, ok := dict["rc"]
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	st_int, ok := st_rc.(starlark.Int)
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	st_int64, ok := st_int.Int64()
	if !ok {
		err = ErrParseExpression(expr)
		return
	}
	value = int(st_int64)
	return
}

// parseLine expands a single line into the words of an instruction,
// defining any equates and labels found.
func (asm *Assembler) parseLine(line string, lineno int) (words []string, err error) {
	// Set line number.
	asm.Equate["LINENO"] = fmt.Sprintf("%v", lineno)

	// Do $() evaluations
	line = reParen.ReplaceAllStringFunc(line, func(str string) string {
		value, _err := asm.parenEval(str[2 : len(str)-1])
		if _err != nil {
			err = _err
		}
		return fmt.Sprintf("%d", value)
	})
	if err != nil {
		return
	}

	words = strings.Fields(line)

	if len(words) == 0 {
		return
	}

	// .equ CONST VALUE
	if words[0] == ".equ" {
		if len(words) != 3 || !reIdentifier.MatchString(words[1]) {
			err = ErrEquateSyntax
			return
		}
		_, ok := asm.Equate[words[1]]
		if ok {
			err = ErrEquateDuplicate
			return
		}
		asm.Equate[words[1]] = words[2]
		words = words[:0]
		return
	}

	for n, word := range words {
		equate, ok := asm.Equate[word]
		if ok {
			words[n] = equate
		}
	}

	for len(words) > 0 && strings.HasSuffix(words[0], ":") {
		label := words[0][:len(words[0])-1]
		if !reIdentifier.MatchString(label) {
			err = ErrLabelInvalid
			return
		}
		_, ok := asm.Label[label]
		if ok {
			err = ErrLabelDuplicate
			return
		}

		if asm.Label == nil {
			asm.Label = make(map[string]int, 16)
		}
		asm.Label[label] = asm.currentIp()
		words = words[1:]
	}

	return
}

// currentIp gets the address of the next generated word.
func (asm *Assembler) currentIp() int {
	if len(asm.Lines) == 0 {
		return 0
	}

	return asm.Lines[len(asm.Lines)-1].Ip + 1
}

// Parse parses an input stream into a Program.
func (asm *Assembler) Parse(input io.Reader) (prog *Program, err error) {
	scanner := bufio.NewScanner(input)

	var line string
	var lineno int

	defer func() {
		if err != nil {
			err = &ErrSyntax{LineNo: lineno, Line: line, Err: err}
		}
	}()

	clear(asm.Label)
	asm.Lines = asm.Lines[:0]
	asm.Equate = maps.Collect(internal.IterSeq2Concat(
		maps.All(sysEquate),
		Defines(),
		maps.All(asm.predefine),
	))

	for scanner.Scan() {
		text := scanner.Text()
		lineno += 1

		if asm.Verbose {
			log.Printf("%v: %v\n", lineno, text)
		}

		text_comment := strings.Split(text, ";")
		line = strings.TrimSpace(text_comment[0])

		var words []string
		words, err = asm.parseLine(line, lineno)
		if err != nil {
			return
		}

		err = asm.parseWords(words, lineno)
		if err != nil {
			return
		}
	}

	err = scanner.Err()
	if err != nil {
		return
	}

	// Final linking of labels.
	for n := range asm.Lines {
		op := &asm.Lines[n]

		if len(op.LinkLabel) == 0 {
			continue
		}
		label := op.LinkLabel
		ip, ok := asm.Label[label]
		if !ok {
			lineno, line = op.LineNo, strings.Join(op.Words, " ")
			err = ErrLabelMissing(label)
			return
		}
		if ip >= MEMORY_SIZE {
			lineno, line = op.LineNo, strings.Join(op.Words, " ")
			err = ErrOperandRange
			return
		}
		op.Code = MakeCode(op.Code.Opcode(), ip)
	}

	prog = &Program{
		Lines: slices.Clone(asm.Lines),
	}

	return
}

// parseWords evaluates the words of a line of assembly text.
func (asm *Assembler) parseWords(words []string, lineno int) (err error) {
	// no-op
	if len(words) == 0 {
		return
	}

	if asm.currentIp() >= MEMORY_SIZE {
		err = ErrProgramTooLarge
		return
	}

	var code Code
	var label string

	name := strings.ToLower(words[0])
	args := words[1:]

	if len(args) > 1 {
		err = ErrOpcodeExtraArgs
		return
	}

	switch name {
	case ".word":
		if len(args) == 0 {
			err = ErrOpcodeValueMissing
			return
		}
		var value int
		value, err = asm.valueOf(args[0])
		if err != nil {
			return
		}
		var word Word
		word, err = MakeWord(value)
		if err != nil {
			return
		}
		code = Code(word)
	default:
		op, ok := mnemonicMap[name]
		if !ok {
			err = ErrInstructionInvalid
			return
		}

		if len(args) == 0 {
			if op != OP_HALT {
				err = ErrOpcodeValueMissing
				return
			}
			code = MakeCode(op, 0)
			break
		}

		var operand int
		operand, err = asm.valueOf(args[0])
		if err != nil {
			if !reIdentifier.MatchString(args[0]) {
				return
			}
			// Resolved once all labels are known.
			err = nil
			label = args[0]
		}
		if operand < 0 || operand >= MEMORY_SIZE {
			err = ErrOperandRange
			return
		}
		code = MakeCode(op, operand)
	}

	asm.Lines = append(asm.Lines, Line{
		LineNo:    lineno,
		Ip:        asm.currentIp(),
		Words:     words,
		Code:      code,
		LinkLabel: label,
	})

	return
}
