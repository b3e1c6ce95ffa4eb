/*
 * rp2040pio - MOV, IRQ, and SET opcode handlers.
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

func (sm *StateMachine) processMOV(imm uint16) bool {
	dest := uint8(imm>>5) & 0x7
	op := uint8(imm>>3) & 0x3
	source := uint8(imm) & 0x7

	data := sm.getFromSource(source)
	switch op {
	case 1:
		data = ^data
	case 2:
		data = bitReverse32(data)
	}

	switch dest {
	case 0:
		bitset, bitmap := pinWrite(data, uint32(sm.pinctrl.outBase), uint32(sm.pinctrl.outCount))
		sm.gpio.SetPinBitset(bitset, bitmap)
	case 1:
		sm.x = data
	case 2:
		sm.y = data
	case 3:
		// reserved
	case 4:
		sm.hasInjected = true
		sm.injected = uint16(data)
		sm.ignoreDelay = true
		return true
	case 5:
		sm.pc = uint8(data) & 0x1F
		return true
	case 6:
		sm.isr = data
		sm.isrCounter = 0
	case 7:
		sm.osr = data
		sm.osrCounter = 0
	}

	sm.incrementPC()
	return true
}

func (sm *StateMachine) processIRQ(imm uint16) bool {
	clear := imm&(1<<6) != 0
	wait := imm&(1<<5) != 0
	index := uint8(imm) & 0x1F

	if sm.waitForIRQ {
		if !sm.irqs[sm.waitForIRQID] {
			sm.waitForIRQ = false
			sm.incrementPC()
			return true
		}
		return false
	}

	id := sm.irqIndex(index)
	if clear {
		sm.irqs[id] = false
		sm.incrementPC()
		return true
	}

	sm.irqs[id] = true
	if wait {
		sm.waitForIRQ = true
		sm.waitForIRQID = id
		return false
	}
	sm.incrementPC()
	return true
}

func (sm *StateMachine) processSET(imm uint16) bool {
	dest := uint8(imm>>5) & 0x7
	data := uint32(imm) & 0x1F

	switch dest {
	case 0:
		bitset, bitmap := pinWrite(data, uint32(sm.pinctrl.setBase), uint32(sm.pinctrl.setCount))
		sm.gpio.SetPinBitset(bitset, bitmap)
	case 1:
		sm.x = data
	case 2:
		sm.y = data
	case 4:
		bitset, bitmap := pinWrite(data, uint32(sm.pinctrl.setBase), uint32(sm.pinctrl.setCount))
		sm.gpio.SetPindirBitset(bitset, bitmap)
	}

	sm.incrementPC()
	return true
}
