/*
 * rp2040pio - Bit manipulation helpers for the PIO core.
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

// mask32 returns the low n bits set, n in [0,32]. mask32(0) is 0, not 32 --
// callers that use the "0 means 32" convention must fold bitCount first.
func mask32(n uint32) uint32 {
	if n >= 32 {
		return 0xFFFFFFFF
	}
	return (uint32(1) << n) - 1
}

// rotl masks v to its low `width` significant bits, then rotates the result
// left by shift within a full 32-bit circular word. width bounds how many
// bits of v are significant (e.g. an out_count-wide field); the rotation
// itself always wraps at bit 32, which is what lets a narrow field be
// positioned anywhere in a 32-pin GPIO word via the shift argument.
func rotl(v, shift, width uint32) uint32 {
	v &= mask32(width)
	s := shift % 32
	if s == 0 {
		return v
	}
	return (v << s) | (v >> (32 - s))
}

// rotr is rotl's mirror: mask to width bits, then rotate right mod 32.
func rotr(v, shift, width uint32) uint32 {
	v &= mask32(width)
	s := shift % 32
	if s == 0 {
		return v
	}
	return (v >> s) | (v << (32 - s))
}

// bitReverse32 reverses the bit order of a 32-bit word.
func bitReverse32(v uint32) uint32 {
	var r uint32
	for i := 0; i < 32; i++ {
		r <<= 1
		r |= v & 1
		v >>= 1
	}
	return r
}

// foldZeroTo32 implements the "0 means 32" encoding used by bit counts and
// shift thresholds throughout the PIO register map.
func foldZeroTo32(n uint32) uint32 {
	if n == 0 {
		return 32
	}
	return n
}
