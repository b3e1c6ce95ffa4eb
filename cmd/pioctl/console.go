/*
 * rp2040pio - Interactive console REPL.
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
	"fmt"
	"io"
	"strings"

	"github.com/google/shlex"
	"github.com/peterh/liner"
)

var consoleCommandNames = []string{
	"init", "close", "reset", "load", "enable", "step",
	"read", "write", "pins", "disasm", "show", "quit",
}

func completer(line string) []string {
	var matches []string
	for _, name := range consoleCommandNames {
		if strings.HasPrefix(name, strings.ToLower(line)) {
			matches = append(matches, name)
		}
	}
	return matches
}

// run drives the prompt loop until the user quits or aborts (Ctrl-D).
// Every command line is tokenized with shlex instead of the teacher's
// hand-rolled cmdLine scanner, since pioctl's grammar is plain
// space/quote-delimited tokens with no device-option syntax to speak of.
func (c *console) run(out io.Writer) error {
	line := liner.NewLiner()
	defer line.Close()
	line.SetCtrlCAborts(true)
	line.SetCompleter(completer)

	for {
		input, err := line.Prompt("pioctl> ")
		if err == liner.ErrPromptAborted {
			fmt.Fprintln(out, "aborted")
			return nil
		}
		if err == io.EOF {
			fmt.Fprintln(out)
			return nil
		}
		if err != nil {
			return err
		}
		if strings.TrimSpace(input) == "" {
			continue
		}
		line.AppendHistory(input)

		tokens, err := shlex.Split(input)
		if err != nil {
			fmt.Fprintf(out, "error: %v\n", err)
			continue
		}
		quit, err := c.dispatch(tokens)
		if err != nil {
			fmt.Fprintf(out, "error: %v\n", err)
		}
		if quit {
			return nil
		}
	}
}
