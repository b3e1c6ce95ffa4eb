/*
 * rp2040pio - PIO instruction decoder.
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

// Opcode identifies one of the eight PIO instruction classes.
type Opcode uint8

const (
	OpJMP Opcode = iota
	OpWAIT
	OpIN
	OpOUT
	OpPushPull
	OpMOV
	OpIRQ
	OpSET
)

func (op Opcode) String() string {
	switch op {
	case OpJMP:
		return "JMP"
	case OpWAIT:
		return "WAIT"
	case OpIN:
		return "IN"
	case OpOUT:
		return "OUT"
	case OpPushPull:
		return "PUSH/PULL"
	case OpMOV:
		return "MOV"
	case OpIRQ:
		return "IRQ"
	case OpSET:
		return "SET"
	default:
		return "???"
	}
}

// decodedInstruction splits a raw 16-bit PIO word into its three fields.
type decodedInstruction struct {
	opcode         Opcode
	delayOrSideset uint16 // bits [12:8]
	immediate      uint16 // bits [7:0]
}

// decode implements the bit layout in spec §4.1: opcode = bits[15:13],
// delay/sideset = bits[12:8], immediate = bits[7:0].
func decode(w uint16) decodedInstruction {
	return decodedInstruction{
		opcode:         Opcode((w >> 13) & 0x7),
		delayOrSideset: (w >> 8) & 0x1F,
		immediate:      w & 0xFF,
	}
}
