/*
 * rp2040pio - PioBlock: the register-map front door. One block owns four
 * state machines, 32 words of shared program memory, and an eight-flag IRQ
 * bank, and dispatches every host read/write to the right piece.
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

const numSM = 4
const programSize = 32

const (
	addrCTRL       = 0x000
	addrFSTAT      = 0x004
	addrFLEVEL     = 0x00C
	addrTXF0       = 0x010
	addrRXF0       = 0x020
	addrInstrMem0  = 0x048
	addrSM0ClkDiv  = 0x0C8
	smRegStride    = 0x18
)

// Block is one PIO peripheral instance: four state machines sharing program
// memory and an IRQ bank. It is the unit the instance manager creates,
// resets, and destroys by numeric id.
type Block struct {
	id      int
	program [programSize]uint16
	irqs    [8]bool
	sms     [numSM]*StateMachine

	gpio     GPIO
	logger   Logger
	ctrlWord uint32
}

// NewBlock constructs a block with four disabled state machines bound to
// gpio/logger (nil defaults to no-ops, matching spec §6's "registered once
// at startup" callbacks).
func NewBlock(id int, gpio GPIO, logger Logger) *Block {
	if gpio == nil {
		gpio = nopGPIO{}
	}
	if logger == nil {
		logger = nopLogger{}
	}
	b := &Block{id: id, gpio: gpio, logger: logger}
	for i := range b.sms {
		sm := newStateMachine(i, b.program[:], b.irqs[:])
		sm.SetGPIO(gpio)
		sm.SetLogger(logger)
		b.sms[i] = sm
	}
	return b
}

func (b *Block) log(level LogLevel, msg string) {
	b.logger.Log(level, fmt.Sprintf("PIO%d: %s", b.id, msg))
}

// StateMachines exposes the four SMs for console/test introspection. The
// core itself never needs this; it always dispatches through register
// addresses.
func (b *Block) StateMachines() [numSM]*StateMachine { return b.sms }

// ProgramWord returns program memory slot k, for debug tooling (the
// console's disasm command). INSTR_MEM is write-only on the register bus
// (spec §4.3), so this exists outside ReadMemory's dispatch rather than
// making INSTR_MEM readable from the bus.
func (b *Block) ProgramWord(k uint8) uint16 {
	return b.program[k&0x1F]
}

// Execute advances every enabled SM by up to n cycles, stepping all four in
// lockstep (spec §4.4/§5: SM0, SM1, SM2, SM3 each cycle). It always returns
// n — the core never gates on wall-clock time.
func (b *Block) Execute(n uint32) uint32 {
	for c := uint32(0); c < n; c++ {
		for _, sm := range b.sms {
			sm.Step()
		}
	}
	return n
}

// ReadMemory dispatches a register-map read. Unmapped addresses log a
// warning and return 0.
func (b *Block) ReadMemory(addr uint32) uint32 {
	switch {
	case addr == addrCTRL:
		return b.readCTRL()
	case addr == addrFSTAT:
		return b.readFSTAT()
	case addr == addrFLEVEL:
		return b.readFLEVEL()
	case addr >= addrRXF0 && addr < addrRXF0+4*numSM:
		i := (addr - addrRXF0) / 4
		return b.sms[i].PopRX()
	case addr >= addrTXF0 && addr < addrTXF0+4*numSM:
		// TXF is write-only; treat a read as unmapped.
	case addr >= addrSM0ClkDiv && addr < addrSM0ClkDiv+smRegStride*numSM:
		return b.readSMRegister(addr)
	}

	b.log(LogWarn, fmt.Sprintf("unmapped read at %#x", addr))
	return 0
}

// WriteMemory dispatches a register-map write. Unmapped addresses log a
// warning with the address and value.
func (b *Block) WriteMemory(addr uint32, value uint32) {
	switch {
	case addr == addrCTRL:
		b.writeCTRL(value)
		return
	case addr >= addrTXF0 && addr < addrTXF0+4*numSM:
		i := (addr - addrTXF0) / 4
		b.sms[i].PushTX(value)
		return
	case addr >= addrInstrMem0 && addr < addrInstrMem0+4*programSize:
		k := (addr - addrInstrMem0) / 4
		b.program[k] = uint16(value & 0xFFFF)
		return
	case addr >= addrSM0ClkDiv && addr < addrSM0ClkDiv+smRegStride*numSM:
		if b.writeSMRegister(addr, value) {
			return
		}
	}

	b.log(LogWarn, fmt.Sprintf("unmapped write at %#x = %#x", addr, value))
}

// readCTRL returns the last-written CTRL word verbatim (spec §4.4: "Read:
// last-written enable/restart bits (restart bits observable as written)"),
// not a value recomputed from live SM state.
func (b *Block) readCTRL() uint32 {
	return b.ctrlWord
}

func (b *Block) writeCTRL(value uint32) {
	b.ctrlWord = value
	smEnable := uint8(value) & 0xF
	smRestart := uint8(value>>4) & 0xF
	clkdivRestart := uint8(value>>8) & 0xF

	for i, sm := range b.sms {
		sm.Enable(smEnable&(1<<uint(i)) != 0)
		if smRestart&(1<<uint(i)) != 0 {
			sm.Restart()
		}
		if clkdivRestart&(1<<uint(i)) != 0 {
			sm.ClockDividerRestart()
		}
	}
}

// readFSTAT packs rx_full/rx_empty/tx_full/tx_empty, one bit per SM, into
// the layout of spec §4.3.
func (b *Block) readFSTAT() uint32 {
	var v uint32
	for i, sm := range b.sms {
		if sm.RXFull() {
			v |= 1 << uint(i)
		}
		if sm.RXEmpty() {
			v |= 1 << uint(8+i)
		}
		if sm.TXFull() {
			v |= 1 << uint(16+i)
		}
		if sm.TXEmpty() {
			v |= 1 << uint(24+i)
		}
	}
	return v
}

func (b *Block) readFLEVEL() uint32 {
	var v uint32
	for i, sm := range b.sms {
		v |= uint32(sm.TXLevel()&0xF) << uint(i*8)
		v |= uint32(sm.RXLevel()&0xF) << uint(i*8+4)
	}
	return v
}

func (b *Block) smRegisterIndex(addr uint32) (i int, reg uint32) {
	off := addr - addrSM0ClkDiv
	return int(off / smRegStride), off % smRegStride
}

func (b *Block) readSMRegister(addr uint32) uint32 {
	i, reg := b.smRegisterIndex(addr)
	sm := b.sms[i]
	switch reg {
	case 0x00:
		return sm.ClockDividerRegister()
	case 0x04:
		return sm.ExecControlRegister()
	case 0x08:
		return sm.ShiftControlRegister()
	case 0x0C:
		return uint32(sm.ProgramCounter())
	case 0x10:
		return uint32(sm.CurrentInstruction())
	case 0x14:
		return sm.PinControlRegister()
	}
	b.log(LogWarn, fmt.Sprintf("unmapped read at %#x", addr))
	return 0
}

func (b *Block) writeSMRegister(addr uint32, value uint32) bool {
	i, reg := b.smRegisterIndex(addr)
	sm := b.sms[i]
	switch reg {
	case 0x00:
		sm.SetClockDividerRegister(value)
	case 0x04:
		sm.SetExecControlRegister(value)
	case 0x08:
		sm.SetShiftControlRegister(value)
	case 0x10:
		sm.ExecuteImmediately(uint16(value & 0xFFFF))
	case 0x14:
		sm.SetPinControlRegister(value)
	default:
		return false
	}
	return true
}
