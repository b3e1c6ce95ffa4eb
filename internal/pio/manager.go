/*
 * rp2040pio - Instance manager: lifecycle of PIO blocks keyed by the
 * host's numeric instance id.
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

// Manager owns every live Block, keyed by the host's numeric instance id.
// It is the Go-side realization of spec §6's pio_initialize_ex /
// pio_deinitialize_ex / pio_reset_ex C ABI entry points. Like the core
// itself, it is single-threaded: the host is expected to serialize calls.
type Manager struct {
	blocks map[int]*Block
	gpio   GPIO
	logger Logger
}

// NewManager builds a manager that binds every block it creates to the
// given GPIO and Logger implementations. Either may be nil; blocks then
// default to no-ops.
func NewManager(gpio GPIO, logger Logger) *Manager {
	return &Manager{blocks: make(map[int]*Block), gpio: gpio, logger: logger}
}

func (m *Manager) log(level LogLevel, msg string) {
	if m.logger != nil {
		m.logger.Log(level, msg)
	}
}

// Init creates block id, replacing any existing block at that id. Per spec
// §7, referencing an id is never fatal; Init always succeeds.
func (m *Manager) Init(id int) *Block {
	if _, exists := m.blocks[id]; exists {
		m.log(LogWarn, fmt.Sprintf("PIO%d: re-initializing live instance", id))
	}
	b := NewBlock(id, m.gpio, m.logger)
	m.blocks[id] = b
	return b
}

// Close destroys block id. Closing an unknown id logs and is otherwise a
// no-op.
func (m *Manager) Close(id int) {
	if _, exists := m.blocks[id]; !exists {
		m.log(LogError, fmt.Sprintf("PIO%d: close of unknown instance", id))
		return
	}
	delete(m.blocks, id)
}

// Reset destroys and recreates block id (spec §6's pio_reset_ex).
func (m *Manager) Reset(id int) *Block {
	delete(m.blocks, id)
	return m.Init(id)
}

// Lookup returns block id, or nil if it does not exist.
func (m *Manager) Lookup(id int) *Block {
	return m.blocks[id]
}

// ReadMemory and WriteMemory route to block id, returning 0 / doing nothing
// for an unknown id (spec §7: unknown-id access is never fatal).
func (m *Manager) ReadMemory(id int, addr uint32) uint32 {
	b, ok := m.blocks[id]
	if !ok {
		m.log(LogError, fmt.Sprintf("PIO%d: read of unknown instance at %#x", id, addr))
		return 0
	}
	return b.ReadMemory(addr)
}

func (m *Manager) WriteMemory(id int, addr, value uint32) {
	b, ok := m.blocks[id]
	if !ok {
		m.log(LogError, fmt.Sprintf("PIO%d: write of unknown instance at %#x", id, addr))
		return
	}
	b.WriteMemory(addr, value)
}

// Execute advances block id by n cycles, returning the cycles performed (0
// for an unknown id).
func (m *Manager) Execute(id int, n uint32) uint32 {
	b, ok := m.blocks[id]
	if !ok {
		m.log(LogError, fmt.Sprintf("PIO%d: execute of unknown instance", id))
		return 0
	}
	return b.Execute(n)
}

// CloseAll tears down every live instance; used by cmd/pioctl on shutdown.
func (m *Manager) CloseAll() {
	for id := range m.blocks {
		delete(m.blocks, id)
	}
}
