/*
 * rp2040pio - Per-state-machine register read/write surface and FIFO access,
 * as exposed to PioBlock's address dispatch.
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

func (sm *StateMachine) PushTX(data uint32) {
	sm.log(LogNoisy, "push TX")
	sm.tx.push(data)
}

func (sm *StateMachine) PopRX() uint32 {
	return sm.rx.pop()
}

func (sm *StateMachine) TXLevel() int   { return sm.tx.size() }
func (sm *StateMachine) RXLevel() int   { return sm.rx.size() }
func (sm *StateMachine) TXFull() bool   { return sm.tx.full() }
func (sm *StateMachine) TXEmpty() bool  { return sm.tx.empty() }
func (sm *StateMachine) RXFull() bool   { return sm.rx.full() }
func (sm *StateMachine) RXEmpty() bool  { return sm.rx.empty() }

func (sm *StateMachine) ProgramCounter() uint8      { return sm.pc }
func (sm *StateMachine) CurrentInstruction() uint16 { return sm.currentInstr }
func (sm *StateMachine) Stalled() bool              { return sm.stalled }

func (sm *StateMachine) ClockDividerRegister() uint32 {
	return encodeClockDivider(sm.clkdiv)
}

func (sm *StateMachine) SetClockDividerRegister(v uint32) {
	sm.clkdiv = decodeClockDivider(v)
	sm.log(LogDebug, "changed clock divider")
}

func (sm *StateMachine) ExecControlRegister() uint32 {
	v := encodeExecCtrl(sm.exec)
	if sm.stalled {
		v |= 1 << 31
	}
	return v
}

func (sm *StateMachine) SetExecControlRegister(v uint32) {
	// Bit 31 (exec_stalled) is read-only; writes to it are masked off.
	sm.exec = decodeExecCtrl(v &^ (1 << 31))
}

func (sm *StateMachine) ShiftControlRegister() uint32 {
	return encodeShiftCtrl(sm.shift)
}

func (sm *StateMachine) SetShiftControlRegister(v uint32) {
	sm.shift = decodeShiftCtrl(v)

	// FJOIN repurposes the FIFO pair: joining TX doubles its depth to 8 and
	// zeroes RX's, and vice versa. Setting both is host error; last-applied
	// (RX) wins, matching the hardware's JOIN_RX/JOIN_TX bit priority.
	if sm.shift.fjoinTX {
		sm.tx.resize(8)
		sm.rx.resize(0)
	}
	if sm.shift.fjoinRX {
		sm.tx.resize(0)
		sm.rx.resize(8)
	}
}

func (sm *StateMachine) PinControlRegister() uint32 {
	return encodePinCtrl(sm.pinctrl)
}

func (sm *StateMachine) SetPinControlRegister(v uint32) {
	sm.pinctrl = decodePinCtrl(v)
}

func (sm *StateMachine) SetGPIO(g GPIO) {
	if g == nil {
		g = nopGPIO{}
	}
	sm.gpio = g
}

func (sm *StateMachine) SetLogger(l Logger) {
	if l == nil {
		l = nopLogger{}
	}
	sm.logger = l
}
