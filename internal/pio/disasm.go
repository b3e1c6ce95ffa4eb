/*
 * rp2040pio - Disassembler: renders a raw 16-bit PIO word back to a
 * mnemonic line, for trace logging and the console's disasm command.
 *
 * Copyright 2026, The rp2040pio Authors
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in
 * all copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 */
package pio

import "fmt"

var jmpConditions = [8]string{"", "!x", "x--", "!y", "y--", "x!=y", "pin", "!osre"}

var movSources = [8]string{"pins", "x", "y", "?", "?", "status", "isr", "osr"}
var movDests = [8]string{"pins", "x", "y", "?", "exec", "pc", "isr", "osr"}
var movOps = [4]string{"", "~", "::", ""}

// Disassemble decodes w into an assembly-like mnemonic. It performs no
// execution and has no side effects; it exists purely for observability.
func Disassemble(w uint16) string {
	d := decode(w)
	imm := d.immediate

	switch d.opcode {
	case OpJMP:
		cond := jmpConditions[(imm>>5)&0x7]
		addr := imm & 0x1F
		if cond == "" {
			return fmt.Sprintf("jmp %d", addr)
		}
		return fmt.Sprintf("jmp %s, %d", cond, addr)

	case OpWAIT:
		polarity := (imm >> 7) & 1
		source := (imm >> 5) & 0x3
		index := imm & 0x1F
		switch source {
		case 0:
			return fmt.Sprintf("wait %d gpio %d", polarity, index)
		case 1:
			return fmt.Sprintf("wait %d pin %d", polarity, index)
		case 2:
			return fmt.Sprintf("wait %d irq %d", polarity, index&0xF)
		default:
			return fmt.Sprintf("wait %d ? %d", polarity, index)
		}

	case OpIN:
		source := []string{"pins", "x", "y", "?", "?", "?", "isr", "osr"}[(imm>>5)&0x7]
		count := foldZeroTo32(uint32(imm) & 0x1F)
		return fmt.Sprintf("in %s, %d", source, count)

	case OpOUT:
		dest := []string{"pins", "x", "y", "null", "pindirs", "pc", "isr", "exec"}[(imm>>5)&0x7]
		count := foldZeroTo32(uint32(imm) & 0x1F)
		return fmt.Sprintf("out %s, %d", dest, count)

	case OpPushPull:
		isPush := imm&(1<<7) == 0
		ifFlag := imm&(1<<6) != 0
		block := imm&(1<<5) != 0
		if isPush {
			return fmt.Sprintf("push%s%s", optSuffix(ifFlag, "iffull"), optSuffix(block, "block"))
		}
		return fmt.Sprintf("pull%s%s", optSuffix(ifFlag, "ifempty"), optSuffix(block, "block"))

	case OpMOV:
		dest := movDests[(imm>>5)&0x7]
		op := movOps[(imm>>3)&0x3]
		source := movSources[imm&0x7]
		if dest == "y" && op == "" && source == "y" {
			return "nop"
		}
		return fmt.Sprintf("mov %s, %s%s", dest, op, source)

	case OpIRQ:
		clear := imm&(1<<6) != 0
		wait := imm&(1<<5) != 0
		index := imm & 0x1F
		verb := "set"
		if clear {
			verb = "clear"
		}
		if wait && !clear {
			return fmt.Sprintf("irq wait %d", index)
		}
		return fmt.Sprintf("irq %s %d", verb, index)

	case OpSET:
		dest := []string{"pins", "x", "y", "?", "pindirs", "?", "?", "?"}[(imm>>5)&0x7]
		data := imm & 0x1F
		return fmt.Sprintf("set %s, %d", dest, data)

	default:
		return fmt.Sprintf("??? (%#04x)", w)
	}
}

func optSuffix(flag bool, word string) string {
	if !flag {
		return ""
	}
	return " " + word
}
