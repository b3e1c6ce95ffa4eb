/*
 * rp2040pio - IN, OUT, PUSH, and PULL opcode handlers: the shift-register
 * and FIFO-exchange machinery.
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

// pushISR moves ISR into RX and clears it. Returns false if RX is full and
// nothing happened.
func (sm *StateMachine) pushISR() bool {
	if sm.rx.full() {
		return false
	}
	sm.rx.push(sm.isr)
	sm.isr = 0
	sm.isrCounter = 0
	return true
}

// writeISR shifts bitCount bits of data into ISR per in_shiftdir, then
// attempts an autopush if the threshold is now met. Returns true when the
// caller must stall (autopush wanted a push but RX was full).
func (sm *StateMachine) writeISR(bitCount uint32, data uint32) bool {
	masked := data & mask32(bitCount)
	if !sm.shift.inShiftDir {
		sm.isr = (sm.isr << bitCount) | masked
	} else {
		sm.isr = (sm.isr >> bitCount) | (masked << (32 - bitCount))
	}
	sm.isrCounter = minU32(32, sm.isrCounter+bitCount)

	if sm.shift.autoPush && sm.isrCounter >= uint32(sm.shift.pushThreshold) {
		return !sm.pushISR()
	}
	return false
}

func minU32(a, b uint32) uint32 {
	if a < b {
		return a
	}
	return b
}

func (sm *StateMachine) processIN(imm uint16) bool {
	source := uint8(imm>>5) & 0x7
	bitCount := uint32(imm) & 0x1F
	if bitCount == 0 {
		bitCount = 32
	}

	var data uint32
	switch source {
	case 0:
		data = rotr(sm.gpio.GetPinBitmap(), uint32(sm.pinctrl.inBase), 32)
	case 1:
		data = sm.x
	case 2:
		data = sm.y
	case 6:
		data = sm.isr
	case 7:
		data = sm.osr
	default:
		data = 0
	}

	if sm.writeISR(bitCount, data) {
		return false
	}
	sm.incrementPC()
	return true
}

// loadOSRFromTX refills OSR from TX if TX has data. Returns true if TX was
// empty (the refill did not happen).
func (sm *StateMachine) loadOSRFromTX() bool {
	if sm.tx.empty() {
		return true
	}
	sm.osr = sm.tx.pop()
	sm.osrCounter = 0
	return false
}

// readOSR shifts bitCount bits out of OSR per out_shiftdir, bumps
// osr_counter, and autopulls a refill when the threshold is reached.
func (sm *StateMachine) readOSR(bitCount uint32) uint32 {
	mask := mask32(bitCount)
	var data uint32
	if !sm.shift.outShiftDir {
		data = (sm.osr >> (32 - bitCount)) & mask
		sm.osr <<= bitCount
	} else {
		data = sm.osr & mask
		sm.osr >>= bitCount
	}
	sm.osrCounter = minU32(32, sm.osrCounter+bitCount)

	if sm.shift.autoPull && sm.osrCounter >= uint32(sm.shift.pullThreshold) {
		sm.loadOSRFromTX()
	}
	return data
}

func (sm *StateMachine) processOUT(imm uint16) bool {
	dest := uint8(imm>>5) & 0x7
	bitCount := uint32(imm) & 0x1F
	if bitCount == 0 {
		bitCount = 32
	}

	if sm.shift.autoPull && sm.osrCounter >= uint32(sm.shift.pullThreshold) {
		if sm.loadOSRFromTX() {
			return false
		}
	}

	data := sm.readOSR(bitCount)

	switch dest {
	case 0:
		bitset, bitmap := pinWrite(data, uint32(sm.pinctrl.outBase), uint32(sm.pinctrl.outCount))
		sm.gpio.SetPinBitset(bitset, bitmap)
	case 1:
		sm.x = data
	case 2:
		sm.y = data
	case 3:
		// NULL: discard
	case 4:
		bitset, bitmap := pinWrite(data, uint32(sm.pinctrl.outBase), uint32(sm.pinctrl.outCount))
		sm.gpio.SetPindirBitset(bitset, bitmap)
	case 5:
		sm.pc = uint8(data) & 0x1F
		return true
	case 6:
		sm.isr = data
		sm.isrCounter = bitCount
	case 7:
		sm.hasInjected = true
		sm.injected = uint16(data)
		sm.ignoreDelay = true
	}

	sm.incrementPC()
	return true
}

func (sm *StateMachine) processPushPull(imm uint16) bool {
	isPush := imm&(1<<7) == 0
	if isPush {
		return sm.processPUSH(imm)
	}
	return sm.processPULL(imm)
}

func (sm *StateMachine) processPUSH(imm uint16) bool {
	ifFull := imm&(1<<6) != 0
	block := imm&(1<<5) != 0

	if ifFull && sm.isrCounter < uint32(sm.shift.pushThreshold) {
		sm.incrementPC()
		return true
	}

	if sm.rx.full() {
		if block {
			return false
		}
		// RX full, non-blocking: drop ISR silently, leave it untouched.
	} else {
		sm.pushISR()
	}
	sm.incrementPC()
	return true
}

func (sm *StateMachine) processPULL(imm uint16) bool {
	ifEmpty := imm&(1<<6) != 0
	block := imm&(1<<5) != 0

	if ifEmpty && sm.osrCounter < uint32(sm.shift.pullThreshold) {
		sm.incrementPC()
		return true
	}

	if sm.tx.empty() {
		if block {
			return false
		}
		sm.osr = sm.x
		sm.osrCounter = 0
	} else {
		sm.osr = sm.tx.pop()
		sm.osrCounter = 0
	}
	sm.incrementPC()
	return true
}
