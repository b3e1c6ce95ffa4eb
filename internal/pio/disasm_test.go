/*
 * rp2040pio - Disassembler spot checks across all eight opcodes.
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

import "testing"

func TestDisassemble(t *testing.T) {
	tests := []struct {
		word uint16
		want string
	}{
		{0x0000, "jmp 0"},
		{0x0041, "jmp x--, 1"},
		{0x20C2, "wait 1 irq 2"},
		{0x4028, "in x, 8"},
		{0x6028, "out x, 8"},
		{0x8020, "push block"},
		{0x80A0, "pull block"},
		{0xA042, "nop"}, // mov y, y is PIO assembly's canonical nop encoding
		{0xA0A2, "mov pc, y"},
		{0xC002, "irq set 2"},
		{0xC0C2, "irq clear 2"},
		{0xE001, "set pins, 1"},
	}
	for _, tt := range tests {
		if got := Disassemble(tt.word); got != tt.want {
			t.Errorf("Disassemble(%#04x) = %q, want %q", tt.word, got, tt.want)
		}
	}
}

func TestDisassembleGarbageWordRendersNonEmpty(t *testing.T) {
	// Every 3-bit opcode field actually maps to a known mnemonic on real
	// hardware, but the renderer still needs a safe fallback for garbage.
	got := Disassemble(0xFFFF)
	if got == "" {
		t.Errorf("Disassemble(0xFFFF) returned empty string")
	}
}
