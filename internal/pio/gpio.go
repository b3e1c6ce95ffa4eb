/*
 * rp2040pio - GPIO and logging capability surfaces the executor calls into.
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

// GPIO is the capability surface the executor uses to drive and sample
// pins. A real deployment implements this over the host emulator's pin
// electrics; internal/gpiosim provides an in-process stand-in.
type GPIO interface {
	// SetPinBitset sets pins masked by bitmap to the corresponding bits of bitset.
	SetPinBitset(bitset, bitmap uint32)
	// SetPindirBitset is SetPinBitset's mirror over pin direction.
	SetPindirBitset(bitset, bitmap uint32)
	// GetPinState returns 1 or 0 for the given pin.
	GetPinState(pin uint32) int
	// GetPinBitmap returns all 32 pin states packed into one word.
	GetPinBitmap() uint32
}

// LogLevel mirrors the host's five-level logging taxonomy (spec §6).
type LogLevel int

const (
	LogNoisy LogLevel = -1
	LogDebug LogLevel = 0
	LogInfo  LogLevel = 1
	LogWarn  LogLevel = 2
	LogError LogLevel = 3
)

func (l LogLevel) String() string {
	switch l {
	case LogNoisy:
		return "NOISY"
	case LogDebug:
		return "DEBUG"
	case LogInfo:
		return "INFO"
	case LogWarn:
		return "WARN"
	case LogError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// Logger is the logging thunk the host registers once at startup.
type Logger interface {
	Log(level LogLevel, msg string)
}

// nopLogger discards everything; used when a block is created without an
// explicit logger so the core never has to nil-check.
type nopLogger struct{}

func (nopLogger) Log(LogLevel, string) {}

// nopGPIO answers every pin as 0 and ignores writes; same rationale.
type nopGPIO struct{}

func (nopGPIO) SetPinBitset(uint32, uint32)    {}
func (nopGPIO) SetPindirBitset(uint32, uint32) {}
func (nopGPIO) GetPinState(uint32) int         { return 0 }
func (nopGPIO) GetPinBitmap() uint32           { return 0 }
