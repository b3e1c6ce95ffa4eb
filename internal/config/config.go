/*
 * rp2040pio - Process configuration: which PIO instances to create at
 * startup and how to log, parsed from a small key=value file.
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

// Package config parses the small process-level configuration file
// cmd/pioctl reads at startup. Unlike the teacher's configparser (a
// device-mnemonic registry for a whole mainframe's worth of peripherals),
// the PIO core has no devices to register — just a handful of process
// knobs — so this is a flat key=value/key value scanner, not a grammar.
package config

import (
	"bufio"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/renode-pio/rp2040pio/internal/logger"
)

// Config holds the knobs cmd/pioctl needs before it can start the
// console: which block ids to pre-create, where to log, and an optional
// program image to preload into every configured instance.
type Config struct {
	Instances   []int
	LogFile     string
	LogLevel    slog.Level
	ProgramFile string
}

// Default returns the configuration used when no file is given: a single
// instance at id 0, Info-level logging to stderr, no program preload.
func Default() *Config {
	return &Config{
		Instances: []int{0},
		LogLevel:  slog.LevelInfo,
	}
}

// Load reads a config file of '#'-commented, blank-line-tolerant
// key=value (or key value) lines. Unknown keys and malformed values are
// reported as errors rather than silently ignored or defaulted.
func Load(path string) (*Config, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	cfg := Default()
	scanner := bufio.NewScanner(file)
	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		if err := cfg.parseLine(scanner.Text()); err != nil {
			return nil, fmt.Errorf("%s:%d: %w", path, lineNumber, err)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (cfg *Config) parseLine(line string) error {
	if i := strings.IndexByte(line, '#'); i >= 0 {
		line = line[:i]
	}
	line = strings.TrimSpace(line)
	if line == "" {
		return nil
	}

	key, value, ok := strings.Cut(line, "=")
	if !ok {
		key, value, ok = cutSpace(line)
		if !ok {
			return fmt.Errorf("missing value for option %q", line)
		}
	}
	key = strings.ToLower(strings.TrimSpace(key))
	value = strings.TrimSpace(value)

	switch key {
	case "instances":
		ids, err := parseIntList(value)
		if err != nil {
			return fmt.Errorf("instances: %w", err)
		}
		cfg.Instances = ids
	case "logfile":
		cfg.LogFile = value
	case "loglevel":
		level, err := parseLevel(value)
		if err != nil {
			return err
		}
		cfg.LogLevel = level
	case "program":
		cfg.ProgramFile = value
	default:
		return fmt.Errorf("unknown option %q", key)
	}
	return nil
}

func cutSpace(s string) (before, after string, found bool) {
	i := strings.IndexAny(s, " \t")
	if i < 0 {
		return "", "", false
	}
	return s[:i], s[i+1:], true
}

func parseIntList(value string) ([]int, error) {
	var ids []int
	for _, tok := range strings.Split(value, ",") {
		tok = strings.TrimSpace(tok)
		if tok == "" {
			continue
		}
		id, err := strconv.Atoi(tok)
		if err != nil {
			return nil, fmt.Errorf("invalid instance id %q", tok)
		}
		ids = append(ids, id)
	}
	if len(ids) == 0 {
		return nil, fmt.Errorf("empty instance list")
	}
	return ids, nil
}

func parseLevel(value string) (slog.Level, error) {
	switch strings.ToLower(value) {
	case "noisy":
		return logger.LevelNoisy, nil
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("unknown log level %q", value)
	}
}

// LoadProgramFile reads a newline-separated list of hex PIO instruction
// words (with or without a leading "0x"), for use as the ProgramFile
// preload. Blank lines and '#' comments are ignored, matching the config
// file's own comment convention.
func LoadProgramFile(path string) ([]uint16, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var words []uint16
	scanner := bufio.NewScanner(file)
	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		line := scanner.Text()
		if i := strings.IndexByte(line, '#'); i >= 0 {
			line = line[:i]
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		line = strings.TrimPrefix(strings.TrimPrefix(line, "0x"), "0X")
		word, err := strconv.ParseUint(line, 16, 16)
		if err != nil {
			return nil, fmt.Errorf("%s:%d: invalid instruction word %q", path, lineNumber, line)
		}
		words = append(words, uint16(word))
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return words, nil
}
