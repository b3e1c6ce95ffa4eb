/*
 * rp2040pio - JMP and WAIT opcode handlers.
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

// jumpCondition evaluates a JMP condition code. Conditions 2 and 4
// post-decrement their register even when the test is consulted outside a
// jump (MOV/WAIT never reuse this, only JMP does, but the decrement is part
// of the read so it lives here rather than in processJMP).
func (sm *StateMachine) jumpCondition(condition uint8) bool {
	switch condition {
	case 0:
		return true
	case 1:
		return sm.x == 0
	case 2:
		met := sm.x != 0
		sm.x--
		return met
	case 3:
		return sm.y == 0
	case 4:
		met := sm.y != 0
		sm.y--
		return met
	case 5:
		return sm.x != sm.y
	case 6:
		return sm.gpio.GetPinState(uint32(sm.exec.jmpPin)) != 0
	case 7:
		return sm.osrCounter < uint32(sm.shift.pullThreshold)
	default:
		return true
	}
}

func (sm *StateMachine) processJMP(imm uint16) bool {
	condition := uint8(imm>>5) & 0x7
	address := uint8(imm) & 0x1F

	if sm.jumpCondition(condition) {
		sm.pc = address
	} else {
		sm.incrementPC()
	}
	return true
}

func (sm *StateMachine) processWAIT(imm uint16) bool {
	polarity := imm&(1<<7) != 0
	source := uint8(imm>>5) & 0x3
	index := uint8(imm) & 0x1F

	conditionMet := false
	switch source {
	case 0:
		conditionMet = (sm.gpio.GetPinState(uint32(index)) != 0) == polarity
	case 1:
		pin := (uint32(index) + uint32(sm.pinctrl.inBase)) % 32
		conditionMet = (sm.gpio.GetPinState(pin) != 0) == polarity
	case 2:
		id := sm.irqIndex(index)
		if !sm.irqs[id] {
			return false
		}
		if polarity {
			sm.irqs[id] = false
		}
		conditionMet = true
	}

	if !conditionMet {
		return false
	}
	sm.incrementPC()
	return true
}
