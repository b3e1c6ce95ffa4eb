/*
 * rp2040pio - Bit-packed views of the PIO block's memory-mapped registers.
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
 *
 * Each register has a decoded Go struct (one field per named bit-field) and a
 * pair of pack/unpack functions. Keeping the decoded form separate from the
 * raw 32-bit word avoids relying on compiler-specific bit-field layout, and
 * lets the executor work entirely in decoded terms.
 */
package pio

// ctrlFields is CTRL: bits [3:0] sm_enable, [7:4] sm_restart, [11:8] clkdiv_restart.
type ctrlFields struct {
	smEnable      uint8
	smRestart     uint8
	clkdivRestart uint8
}

func decodeCtrl(v uint32) ctrlFields {
	return ctrlFields{
		smEnable:      uint8(v) & 0xF,
		smRestart:     uint8(v>>4) & 0xF,
		clkdivRestart: uint8(v>>8) & 0xF,
	}
}

func encodeCtrl(f ctrlFields) uint32 {
	return uint32(f.smEnable&0xF) | uint32(f.smRestart&0xF)<<4 | uint32(f.clkdivRestart&0xF)<<8
}

// clockDivider is CLKDIV: bits [15:8] frac, [31:16] int (int=0 means divisor 65536).
type clockDivider struct {
	frac uint8
	intg uint16
}

func decodeClockDivider(v uint32) clockDivider {
	return clockDivider{
		frac: uint8(v>>8) & 0xFF,
		intg: uint16(v >> 16),
	}
}

func encodeClockDivider(c clockDivider) uint32 {
	return uint32(c.frac)<<8 | uint32(c.intg)<<16
}

// divisor returns the effective clock divisor; int=0 means 65536 (spec §4.3).
func (c clockDivider) divisor() float64 {
	intPart := float64(c.intg)
	if c.intg == 0 {
		intPart = 65536
	}
	return intPart + float64(c.frac)/256
}

// execCtrl is EXECCTRL (spec §4.3), excluding the read-only exec_stalled
// flag in bit 31, which is synthesised live from StateMachine.stalled rather
// than stored here.
type execCtrl struct {
	statusN     uint8
	statusSel   uint8
	wrapBottom  uint8
	wrapTop     uint8
	outSticky   bool
	inlineOutEn bool
	outEnSel    uint8
	jmpPin      uint8
	sidePindir  bool
	sideEn      bool
}

func decodeExecCtrl(v uint32) execCtrl {
	return execCtrl{
		statusN:     uint8(v) & 0xF,
		statusSel:   uint8(v>>4) & 0x1,
		wrapBottom:  uint8(v>>7) & 0x1F,
		wrapTop:     uint8(v>>12) & 0x1F,
		outSticky:   (v>>17)&0x1 != 0,
		inlineOutEn: (v>>18)&0x1 != 0,
		outEnSel:    uint8(v>>19) & 0x1F,
		jmpPin:      uint8(v>>24) & 0x1F,
		sidePindir:  (v>>29)&0x1 != 0,
		sideEn:      (v>>30)&0x1 != 0,
	}
}

func encodeExecCtrl(e execCtrl) uint32 {
	var v uint32
	v |= uint32(e.statusN & 0xF)
	v |= uint32(e.statusSel&0x1) << 4
	v |= uint32(e.wrapBottom&0x1F) << 7
	v |= uint32(e.wrapTop&0x1F) << 12
	v |= boolBit(e.outSticky) << 17
	v |= boolBit(e.inlineOutEn) << 18
	v |= uint32(e.outEnSel&0x1F) << 19
	v |= uint32(e.jmpPin&0x1F) << 24
	v |= boolBit(e.sidePindir) << 29
	v |= boolBit(e.sideEn) << 30
	return v
}

// shiftCtrl is SHIFTCTRL (spec §4.3). pushThreshold/pullThreshold are stored
// decoded (1..32); the host-visible encoding of 0 folds to 32 on write and
// 32 folds back to encoded 0 on read.
type shiftCtrl struct {
	autoPush      bool
	autoPull      bool
	inShiftDir    bool
	outShiftDir   bool
	pushThreshold uint8
	pullThreshold uint8
	fjoinTX       bool
	fjoinRX       bool
}

func decodeShiftCtrl(v uint32) shiftCtrl {
	return shiftCtrl{
		autoPush:      (v>>16)&0x1 != 0,
		autoPull:      (v>>17)&0x1 != 0,
		inShiftDir:    (v>>18)&0x1 != 0,
		outShiftDir:   (v>>19)&0x1 != 0,
		pushThreshold: uint8(foldZeroTo32((v >> 20) & 0x1F)),
		pullThreshold: uint8(foldZeroTo32((v >> 25) & 0x1F)),
		fjoinTX:       (v>>30)&0x1 != 0,
		fjoinRX:       (v>>31)&0x1 != 0,
	}
}

func encodeShiftCtrl(s shiftCtrl) uint32 {
	var v uint32
	v |= boolBit(s.autoPush) << 16
	v |= boolBit(s.autoPull) << 17
	v |= boolBit(s.inShiftDir) << 18
	v |= boolBit(s.outShiftDir) << 19
	v |= uint32(encodeThreshold(s.pushThreshold)) << 20
	v |= uint32(encodeThreshold(s.pullThreshold)) << 25
	v |= boolBit(s.fjoinTX) << 30
	v |= boolBit(s.fjoinRX) << 31
	return v
}

// encodeThreshold folds the decoded 32 back to the hardware's 0 encoding.
func encodeThreshold(t uint8) uint8 {
	if t >= 32 {
		return 0
	}
	return t & 0x1F
}

// pinCtrl is PINCTRL (spec §4.3).
type pinCtrl struct {
	outBase   uint8
	setBase   uint8
	sideBase  uint8
	inBase    uint8
	outCount  uint8
	setCount  uint8
	sideCount uint8
}

func decodePinCtrl(v uint32) pinCtrl {
	return pinCtrl{
		outBase:   uint8(v) & 0x1F,
		setBase:   uint8(v>>5) & 0x1F,
		sideBase:  uint8(v>>10) & 0x1F,
		inBase:    uint8(v>>15) & 0x1F,
		outCount:  uint8(v>>20) & 0x3F,
		setCount:  uint8(v>>26) & 0x7,
		sideCount: uint8(v>>29) & 0x7,
	}
}

func encodePinCtrl(p pinCtrl) uint32 {
	var v uint32
	v |= uint32(p.outBase & 0x1F)
	v |= uint32(p.setBase&0x1F) << 5
	v |= uint32(p.sideBase&0x1F) << 10
	v |= uint32(p.inBase&0x1F) << 15
	v |= uint32(p.outCount&0x3F) << 20
	v |= uint32(p.setCount&0x7) << 26
	v |= uint32(p.sideCount&0x7) << 29
	return v
}

func boolBit(b bool) uint32 {
	if b {
		return 1
	}
	return 0
}

func defaultExecCtrl() execCtrl {
	return execCtrl{wrapTop: 31}
}

func defaultShiftCtrl() shiftCtrl {
	return shiftCtrl{inShiftDir: true, outShiftDir: true, pushThreshold: 32, pullThreshold: 32}
}

func defaultPinCtrl() pinCtrl {
	return pinCtrl{setCount: 5}
}
