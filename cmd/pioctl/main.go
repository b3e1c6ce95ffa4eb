/*
 * rp2040pio - pioctl: an interactive console for driving the PIO core
 * without a host emulator attached.
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
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	getopt "github.com/pborman/getopt/v2"

	"github.com/renode-pio/rp2040pio/internal/config"
	"github.com/renode-pio/rp2040pio/internal/gpiosim"
	"github.com/renode-pio/rp2040pio/internal/logger"
	"github.com/renode-pio/rp2040pio/internal/pio"
)

var Logger *slog.Logger

func main() {
	optConfig := getopt.StringLong("config", 'c', "", "Configuration file")
	optLogFile := getopt.StringLong("log", 'l', "", "Log file")
	optHelp := getopt.BoolLong("help", 'h', "Help")
	getopt.Parse()

	if *optHelp {
		getopt.Usage()
		os.Exit(0)
	}

	var cfg *config.Config
	if *optConfig != "" {
		var err error
		cfg, err = config.Load(*optConfig)
		if err != nil {
			os.Stderr.WriteString("pioctl: " + err.Error() + "\n")
			os.Exit(1)
		}
	} else {
		cfg = config.Default()
	}

	logOut := os.Stderr
	if cfg.LogFile != "" {
		*optLogFile = cfg.LogFile
	}
	if *optLogFile != "" {
		file, err := os.Create(*optLogFile)
		if err != nil {
			os.Stderr.WriteString("pioctl: " + err.Error() + "\n")
			os.Exit(1)
		}
		defer file.Close()
		logOut = file
	}
	Logger = slog.New(logger.NewHandler(logOut, cfg.LogLevel))
	slog.SetDefault(Logger)
	pioLogger := logger.New(logOut, cfg.LogLevel)

	gpio := gpiosim.New()
	manager := pio.NewManager(gpio, pioLogger)

	var program []uint16
	if cfg.ProgramFile != "" {
		var err error
		program, err = config.LoadProgramFile(cfg.ProgramFile)
		if err != nil {
			Logger.Error(err.Error())
			os.Exit(1)
		}
	}

	for _, id := range cfg.Instances {
		block := manager.Init(id)
		for i, word := range program {
			block.WriteMemory(uint32(0x048+i*4), uint32(word))
		}
	}

	Logger.Info("pioctl started", "instances", cfg.Instances)

	c := &console{manager: manager, gpio: gpio}

	// A SIGINT/SIGTERM only triggers an orderly Manager.CloseAll before
	// exit; it never interrupts a command mid-execution, since the core
	// itself is single-threaded and every console command runs to
	// completion before the next one starts.
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	done := make(chan error, 1)
	go func() {
		done <- c.run(os.Stdout)
	}()

	var runErr error
	select {
	case <-sigChan:
		Logger.Info("received shutdown signal")
	case runErr = <-done:
	}

	manager.CloseAll()
	if runErr != nil {
		Logger.Error(runErr.Error())
		os.Exit(1)
	}
	Logger.Info("pioctl shut down")
}
