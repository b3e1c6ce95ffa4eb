/*
 * rp2040pio - Deterministic GPIO double used across core tests.
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

// pinCall records one gpio_set_{pin,pindir}_bitset invocation, for tests
// that assert on the exact GPIO call sequence (spec §8's determinism
// property).
type pinCall struct {
	kind          string // "pin" or "pindir"
	bitset, bitmap uint32
}

// mockGPIO is a deterministic, single-threaded GPIO double: pin/dir state
// plus a log of every mutating call, and a presettable state word for tests
// that drive WAIT/JMP/IN off specific pin values.
type mockGPIO struct {
	state, dir uint32
	calls      []pinCall
}

func (g *mockGPIO) SetPinBitset(bitset, bitmap uint32) {
	g.state = (g.state &^ bitmap) | (bitset & bitmap)
	g.calls = append(g.calls, pinCall{"pin", bitset, bitmap})
}

func (g *mockGPIO) SetPindirBitset(bitset, bitmap uint32) {
	g.dir = (g.dir &^ bitmap) | (bitset & bitmap)
	g.calls = append(g.calls, pinCall{"pindir", bitset, bitmap})
}

func (g *mockGPIO) GetPinState(pin uint32) int {
	return int((g.state >> (pin & 31)) & 1)
}

func (g *mockGPIO) GetPinBitmap() uint32 {
	return g.state
}

// recordingLogger captures every log call for tests asserting on warnings.
type recordingLogger struct {
	entries []string
}

func (l *recordingLogger) Log(level LogLevel, msg string) {
	l.entries = append(l.entries, level.String()+": "+msg)
}
