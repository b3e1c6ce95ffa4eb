/*
 * rp2040pio - Logger unit tests.
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
package logger

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/renode-pio/rp2040pio/internal/pio"
)

func TestLogWritesLevelAndMessage(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, slog.LevelDebug)
	l.Log(pio.LogWarn, "pin conflict")
	out := buf.String()
	if !strings.Contains(out, "WARN") {
		t.Errorf("output %q missing WARN level", out)
	}
	if !strings.Contains(out, "pin conflict") {
		t.Errorf("output %q missing message", out)
	}
}

func TestLogBelowMinLevelIsFiltered(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, slog.LevelInfo)
	l.Log(pio.LogDebug, "should not appear")
	if buf.Len() != 0 {
		t.Errorf("expected no output below min level, got %q", buf.String())
	}
}

func TestLogNoisyLevelRendersCustomName(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, LevelNoisy)
	l.Log(pio.LogNoisy, "cycle trace")
	if !strings.Contains(buf.String(), "NOISY") {
		t.Errorf("output %q missing NOISY level name", buf.String())
	}
}
