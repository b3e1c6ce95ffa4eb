/*
 * rp2040pio - One PIO state machine: registers, shift state, and the
 * per-cycle fetch/decode/execute algorithm.
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

// StateMachine is one of the four execution units sharing a block's program
// memory and IRQ bank. It never allocates a goroutine: every exported method
// runs to completion before returning, matching the host's single-threaded
// calling convention.
type StateMachine struct {
	id int

	enabled      bool
	stalled      bool
	sidesetDone  bool
	ignoreDelay  bool
	waitForIRQ   bool
	waitForIRQID uint8

	pc      uint8
	program []uint16 // borrowed from the owning block; read-only here
	irqs    []bool   // borrowed from the owning block

	x, y         uint32
	osr, isr     uint32
	osrCounter   uint32
	isrCounter   uint32

	delayCounter uint64
	delay        uint64

	hasInjected    bool
	injected       uint16
	currentInstr   uint16

	tx, rx fifo

	clkdiv  clockDivider
	exec    execCtrl
	shift   shiftCtrl
	pinctrl pinCtrl

	gpio   GPIO
	logger Logger
}

// newStateMachine builds one state machine bound to a block's shared program
// and IRQ slices. gpio/logger default to no-ops; a block installs real ones
// at construction.
func newStateMachine(id int, program []uint16, irqs []bool) *StateMachine {
	sm := &StateMachine{
		id:      id,
		program: program,
		irqs:    irqs,
		tx:      newFIFO(4),
		rx:      newFIFO(4),
		clkdiv:  clockDivider{intg: 1},
		exec:    defaultExecCtrl(),
		shift:   defaultShiftCtrl(),
		pinctrl: defaultPinCtrl(),
		gpio:    nopGPIO{},
		logger:  nopLogger{},
	}
	sm.restart()
	return sm
}

func (sm *StateMachine) log(level LogLevel, msg string) {
	sm.logger.Log(level, fmt.Sprintf("SM%d: %s", sm.id, msg))
}

// Enable matches the hardware's edge-triggered CTRL.sm_enable bit: a write of
// the same value the machine already holds is a no-op, notably leaving any
// in-progress stall untouched.
func (sm *StateMachine) Enable(enable bool) {
	if enable == sm.enabled {
		return
	}
	sm.log(LogDebug, fmt.Sprintf("enabling -> %v", enable))
	sm.enabled = enable
}

// Restart is CTRL.sm_restart: clears shift/stall/delay state but not PC,
// configuration registers, or FIFO contents.
func (sm *StateMachine) restart() {
	sm.stalled = false
	sm.waitForIRQ = false
	sm.waitForIRQID = 0
	sm.osr = 0
	sm.isr = 0
	sm.osrCounter = 32
	sm.isrCounter = 0
	sm.delayCounter = 0
	sm.delay = 0
	sm.hasInjected = false
}

func (sm *StateMachine) Restart() {
	sm.restart()
}

// ClockDividerRestart is CTRL.clkdiv_restart; the core never gates
// instructions on the divider's wall-clock timing (spec's Non-goals), so
// there is nothing to reset.
func (sm *StateMachine) ClockDividerRestart() {}

func (sm *StateMachine) incrementPC() {
	if sm.pc == sm.exec.wrapTop {
		sm.pc = sm.exec.wrapBottom
	} else {
		sm.pc++
	}
}

// sidesetDelayBits splits the 5-bit delay_or_sideset field per the current
// PINCTRL.sideset_count: the top `sideset_count` bits are side-set data,
// the rest are the delay.
func (sm *StateMachine) sidesetDelayBits() int {
	return 5 - int(sm.pinctrl.sideCount)
}

func (sm *StateMachine) applySideset(delayOrSideset uint16) {
	if sm.sidesetDone {
		return
	}
	sm.sidesetDone = true

	if sm.pinctrl.sideCount == 0 {
		return
	}

	delayBits := sm.sidesetDelayBits()
	effectiveWidth := uint32(sm.pinctrl.sideCount)
	if sm.exec.sideEn {
		effectiveWidth--
	}

	sidesetMask := mask32(uint32(sm.pinctrl.sideCount))
	sideset := (uint32(delayOrSideset) >> delayBits) & sidesetMask

	enabled := true
	if sm.exec.sideEn {
		enabled = delayOrSideset&(1<<4) != 0
	}
	if !enabled {
		return
	}

	bitset := rotl(sideset, uint32(sm.pinctrl.sideBase), effectiveWidth)
	bitmap := rotl(mask32(effectiveWidth), uint32(sm.pinctrl.sideBase), 32)

	if sm.exec.sidePindir {
		sm.gpio.SetPindirBitset(bitset, bitmap)
	} else {
		sm.gpio.SetPinBitset(bitset, bitmap)
	}
}

// Step runs one cycle of this state machine's algorithm (spec §4.5). It is a
// no-op when disabled.
func (sm *StateMachine) Step() {
	if !sm.enabled {
		return
	}

	if !sm.stalled {
		if sm.delayCounter < sm.delay {
			sm.delayCounter++
			return
		}
		sm.delayCounter = 0
		sm.delay = 0
	}

	if sm.hasInjected {
		sm.currentInstr = sm.injected
		sm.hasInjected = false
	} else if !sm.stalled {
		sm.currentInstr = sm.program[sm.pc]
	}
	sm.stalled = false

	sm.runStep()
}

// ExecuteImmediately is SMx_INSTR's write side: decode and execute w as the
// current cycle's instruction, bypassing program fetch and delay scheduling.
// A stall from the injected opcode is discarded rather than retried (spec's
// execute_immediately semantics).
func (sm *StateMachine) ExecuteImmediately(w uint16) {
	sm.currentInstr = w
	sm.ignoreDelay = true
	sm.runStep()
	if sm.stalled {
		// Drop the unfinished opcode together with the per-instruction
		// state runStep keeps for a retry.
		sm.stalled = false
		sm.ignoreDelay = false
		sm.sidesetDone = false
		sm.waitForIRQ = false
	}
}

func (sm *StateMachine) runStep() {
	d := decode(sm.currentInstr)

	sm.applySideset(d.delayOrSideset)

	var finished bool
	switch d.opcode {
	case OpJMP:
		finished = sm.processJMP(d.immediate)
	case OpWAIT:
		finished = sm.processWAIT(d.immediate)
	case OpIN:
		finished = sm.processIN(d.immediate)
	case OpOUT:
		finished = sm.processOUT(d.immediate)
	case OpPushPull:
		finished = sm.processPushPull(d.immediate)
	case OpMOV:
		finished = sm.processMOV(d.immediate)
	case OpIRQ:
		finished = sm.processIRQ(d.immediate)
	case OpSET:
		finished = sm.processSET(d.immediate)
	}

	if finished {
		if !sm.ignoreDelay {
			sm.scheduleDelay(d.delayOrSideset)
		}
		sm.ignoreDelay = false
		sm.sidesetDone = false
		sm.stalled = false
		return
	}

	sm.stalled = true
}

func (sm *StateMachine) scheduleDelay(delayOrSideset uint16) {
	delayBits := sm.sidesetDelayBits()
	delayMask := uint16(1<<delayBits) - 1
	delay := delayOrSideset & delayMask
	if delay != 0 {
		sm.delayCounter = 0
		sm.delay = uint64(delay)
	}
}

// irqIndex resolves a 5-bit IRQ index field: bit 4 set means relative to this
// state machine's id (mod 4); the bank itself is 8 flags wide.
func (sm *StateMachine) irqIndex(index uint8) uint8 {
	id := index
	if index&(1<<4) != 0 {
		id = uint8((sm.id + int(index)) % 4)
	}
	return id & 7
}

// getFromSource implements the IN/MOV shared source table (spec §4.5 IN,
// MOV; source 5 is STATUS, §glossary).
func (sm *StateMachine) getFromSource(source uint8) uint32 {
	switch source {
	case 0:
		return rotr(sm.gpio.GetPinBitmap(), uint32(sm.pinctrl.inBase), 32)
	case 1:
		return sm.x
	case 2:
		return sm.y
	case 5:
		var full bool
		if sm.exec.statusSel == 0 {
			full = uint8(sm.tx.size()) < sm.exec.statusN
		} else {
			full = uint8(sm.rx.size()) < sm.exec.statusN
		}
		if full {
			return 0xFFFFFFFF
		}
		return 0
	case 6:
		return sm.isr
	case 7:
		return sm.osr
	default:
		return 0
	}
}

// pinWrite computes the rotl-positioned bitset/bitmap pair shared by
// OUT.PINS, OUT.PINDIRS, MOV.PINS, and SET.PINS/PINDIRS.
func pinWrite(data, base, count uint32) (bitset, bitmap uint32) {
	bitset = rotl(data, base, count)
	bitmap = rotl(mask32(count), base, 32)
	return
}
