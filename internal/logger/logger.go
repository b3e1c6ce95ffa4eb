/*
 * rp2040pio - Wrapper for slog, adapted to the five-level Noisy/Debug/
 * Info/Warning/Error taxonomy of pio.Logger.
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
	"context"
	"io"
	"log/slog"
	"strings"
	"sync"

	"github.com/renode-pio/rp2040pio/internal/pio"
)

// LevelNoisy sits below slog's built-in Debug for the core's per-cycle
// trace logging (spec §6's Noisy level), which is noisier than anything
// slog defines out of the box.
const LevelNoisy = slog.Level(-8)

var levelNames = map[slog.Leveler]string{
	LevelNoisy: "NOISY",
}

// Handler formats records as "time level message attrs..." to out, the way
// the host's own log lines read.
type Handler struct {
	out io.Writer
	h   slog.Handler
	mu  *sync.Mutex
}

func (h *Handler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.h.Enabled(ctx, level)
}

func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &Handler{out: h.out, h: h.h.WithAttrs(attrs), mu: h.mu}
}

func (h *Handler) WithGroup(name string) slog.Handler {
	return &Handler{out: h.out, h: h.h.WithGroup(name), mu: h.mu}
}

func (h *Handler) Handle(ctx context.Context, r slog.Record) error {
	name, ok := levelNames[r.Level]
	if !ok {
		name = r.Level.String()
	}
	formattedTime := r.Time.Format("2006/01/02 15:04:05")

	strs := []string{formattedTime, name + ":", r.Message}
	r.Attrs(func(a slog.Attr) bool {
		strs = append(strs, a.String())
		return true
	})
	line := strings.Join(strs, " ") + "\n"

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := h.out.Write([]byte(line))
	return err
}

// NewHandler builds a Handler writing to out, filtering below minLevel.
func NewHandler(out io.Writer, minLevel slog.Level) *Handler {
	return &Handler{
		out: out,
		h:   slog.NewTextHandler(out, &slog.HandlerOptions{Level: minLevel}),
		mu:  &sync.Mutex{},
	}
}

// Logger implements pio.Logger over an *slog.Logger.
type Logger struct {
	slog *slog.Logger
}

// New wraps an slog.Logger built on NewHandler(out, level).
func New(out io.Writer, level slog.Level) *Logger {
	return &Logger{slog: slog.New(NewHandler(out, level))}
}

// Log implements pio.Logger.
func (l *Logger) Log(level pio.LogLevel, msg string) {
	l.slog.Log(context.Background(), toSlogLevel(level), msg)
}

func toSlogLevel(level pio.LogLevel) slog.Level {
	switch level {
	case pio.LogNoisy:
		return LevelNoisy
	case pio.LogDebug:
		return slog.LevelDebug
	case pio.LogInfo:
		return slog.LevelInfo
	case pio.LogWarn:
		return slog.LevelWarn
	case pio.LogError:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
