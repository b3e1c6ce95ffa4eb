/*
 * rp2040pio - Console command dispatch table.
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
package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/renode-pio/rp2040pio/internal/gpiosim"
	"github.com/renode-pio/rp2040pio/internal/pio"
)

type cmd struct {
	name    string
	min     int // minimum unique-prefix match length
	process func(*console, []string) (bool, error)
}

var cmdList = []cmd{
	{name: "init", min: 2, process: doInit},
	{name: "close", min: 2, process: doClose},
	{name: "reset", min: 2, process: doReset},
	{name: "load", min: 2, process: doLoad},
	{name: "enable", min: 2, process: doEnable},
	{name: "step", min: 2, process: doStep},
	{name: "read", min: 2, process: doRead},
	{name: "write", min: 2, process: doWrite},
	{name: "pins", min: 2, process: doPins},
	{name: "disasm", min: 3, process: doDisasm},
	{name: "show", min: 2, process: doShow},
	{name: "quit", min: 1, process: doQuit},
}

// console holds the shared state every command operates on.
type console struct {
	manager *pio.Manager
	gpio    *gpiosim.Simulator
}

// matchCommand reports whether name is a prefix of c.name at least c.min
// characters long. Ambiguity across commands is reported by dispatch.
func matchCommand(c cmd, name string) bool {
	if len(name) < c.min || len(name) > len(c.name) {
		return false
	}
	return c.name[:len(name)] == name
}

func matchList(name string) []cmd {
	if name == "" {
		return nil
	}
	var match []cmd
	for _, c := range cmdList {
		if matchCommand(c, name) {
			match = append(match, c)
		}
	}
	return match
}

// dispatch executes one already-tokenized command line. It returns quit=true
// when the console should exit.
func (c *console) dispatch(tokens []string) (bool, error) {
	if len(tokens) == 0 {
		return false, nil
	}
	match := matchList(strings.ToLower(tokens[0]))
	switch len(match) {
	case 0:
		return false, fmt.Errorf("unknown command: %s", tokens[0])
	case 1:
		return match[0].process(c, tokens[1:])
	default:
		names := make([]string, len(match))
		for i, m := range match {
			names[i] = m.name
		}
		return false, fmt.Errorf("ambiguous command %q: matches %s", tokens[0], strings.Join(names, ", "))
	}
}

func parseID(args []string) (int, []string, error) {
	if len(args) == 0 {
		return 0, nil, errors.New("missing instance id")
	}
	id, err := strconv.Atoi(args[0])
	if err != nil {
		return 0, nil, fmt.Errorf("invalid instance id %q", args[0])
	}
	return id, args[1:], nil
}

func parseUint32(s string) (uint32, error) {
	s = strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X")
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid hex value %q", s)
	}
	return uint32(v), nil
}

func doInit(c *console, args []string) (bool, error) {
	id, _, err := parseID(args)
	if err != nil {
		return false, err
	}
	c.manager.Init(id)
	fmt.Printf("PIO%d initialized\n", id)
	return false, nil
}

func doClose(c *console, args []string) (bool, error) {
	id, _, err := parseID(args)
	if err != nil {
		return false, err
	}
	c.manager.Close(id)
	return false, nil
}

func doReset(c *console, args []string) (bool, error) {
	id, _, err := parseID(args)
	if err != nil {
		return false, err
	}
	c.manager.Reset(id)
	fmt.Printf("PIO%d reset\n", id)
	return false, nil
}

// load <id> <offset> <hex...>: writes successive INSTR_MEM words starting
// at offset.
func doLoad(c *console, args []string) (bool, error) {
	id, args, err := parseID(args)
	if err != nil {
		return false, err
	}
	if len(args) < 2 {
		return false, errors.New("usage: load <id> <offset> <hex...>")
	}
	offset, err := strconv.Atoi(args[0])
	if err != nil {
		return false, fmt.Errorf("invalid offset %q", args[0])
	}
	for i, tok := range args[1:] {
		word, err := parseUint32(tok)
		if err != nil {
			return false, err
		}
		addr := uint32(0x048) + uint32(offset+i)*4
		c.manager.WriteMemory(id, addr, word)
	}
	fmt.Printf("loaded %d word(s) into PIO%d at offset %d\n", len(args)-1, id, offset)
	return false, nil
}

func doEnable(c *console, args []string) (bool, error) {
	id, args, err := parseID(args)
	if err != nil {
		return false, err
	}
	if len(args) < 1 {
		return false, errors.New("usage: enable <id> <mask>")
	}
	mask, err := parseUint32(args[0])
	if err != nil {
		return false, err
	}
	c.manager.WriteMemory(id, 0x000, mask)
	return false, nil
}

func doStep(c *console, args []string) (bool, error) {
	id, args, err := parseID(args)
	if err != nil {
		return false, err
	}
	n := uint32(1)
	if len(args) > 0 {
		v, err := strconv.ParseUint(args[0], 10, 32)
		if err != nil {
			return false, fmt.Errorf("invalid cycle count %q", args[0])
		}
		n = uint32(v)
	}
	done := c.manager.Execute(id, n)
	fmt.Printf("PIO%d: executed %d cycle(s)\n", id, done)
	return false, nil
}

func doRead(c *console, args []string) (bool, error) {
	id, args, err := parseID(args)
	if err != nil {
		return false, err
	}
	if len(args) < 1 {
		return false, errors.New("usage: read <id> <addr>")
	}
	addr, err := parseUint32(args[0])
	if err != nil {
		return false, err
	}
	fmt.Printf("%#x\n", c.manager.ReadMemory(id, addr))
	return false, nil
}

func doWrite(c *console, args []string) (bool, error) {
	id, args, err := parseID(args)
	if err != nil {
		return false, err
	}
	if len(args) < 2 {
		return false, errors.New("usage: write <id> <addr> <value>")
	}
	addr, err := parseUint32(args[0])
	if err != nil {
		return false, err
	}
	value, err := parseUint32(args[1])
	if err != nil {
		return false, err
	}
	c.manager.WriteMemory(id, addr, value)
	return false, nil
}

func doPins(c *console, _ []string) (bool, error) {
	state, dir := c.gpio.Snapshot()
	fmt.Printf("state=%#010x dir=%#010x\n", state, dir)
	return false, nil
}

func doDisasm(c *console, args []string) (bool, error) {
	id, args, err := parseID(args)
	if err != nil {
		return false, err
	}
	if len(args) < 1 {
		return false, errors.New("usage: disasm <id> <addr>")
	}
	addr, err := strconv.ParseUint(args[0], 10, 8)
	if err != nil {
		return false, fmt.Errorf("invalid program slot %q", args[0])
	}
	b := c.manager.Lookup(id)
	if b == nil {
		return false, fmt.Errorf("PIO%d is not initialized", id)
	}
	word := b.ProgramWord(uint8(addr))
	fmt.Printf("%2d: %#04x  %s\n", addr, word, pio.Disassemble(word))
	return false, nil
}

func doShow(c *console, args []string) (bool, error) {
	id, _, err := parseID(args)
	if err != nil {
		return false, err
	}
	b := c.manager.Lookup(id)
	if b == nil {
		return false, fmt.Errorf("PIO%d is not initialized", id)
	}
	for i, sm := range b.StateMachines() {
		fmt.Printf("SM%d: pc=%d stalled=%v exec=%#x shift=%#x pinctrl=%#x clkdiv=%#x\n",
			i, sm.ProgramCounter(), sm.Stalled(),
			sm.ExecControlRegister(), sm.ShiftControlRegister(),
			sm.PinControlRegister(), sm.ClockDividerRegister())
	}
	return false, nil
}

func doQuit(*console, []string) (bool, error) {
	return true, nil
}
