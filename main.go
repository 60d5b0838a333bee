/*
 * oldlinux - Main process.
 *
 * Copyright 2024, Richard Cornwell
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
 *
 */

package main

import (
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	getopt "github.com/pborman/getopt/v2"
	liner "github.com/peterh/liner"

	config "github.com/xenw/oldlinux/config/configparser"
	"github.com/xenw/oldlinux/console"
	"github.com/xenw/oldlinux/platform/bootparams"
	"github.com/xenw/oldlinux/platform/ioport"
	"github.com/xenw/oldlinux/swap"
	logger "github.com/xenw/oldlinux/util/logger"
)

var Logger *slog.Logger

// lineTTY feeds one in-process virtual console from a byte queue and
// drains its answerback queue straight back onto the terminal,
// implementing console.TTY without any real line discipline behind
// it (the line discipline itself is out of this module's scope).
type lineTTY struct {
	idx     int
	pending []byte
	replies []byte
	erase   byte
}

func (t *lineTTY) Index() int                    { return t.idx }
func (t *lineTTY) WriteQueue() console.WriteQueue { return (*writeQueue)(t) }
func (t *lineTTY) ReadQueue() console.ReadQueue   { return (*readQueue)(t) }
func (t *lineTTY) Stopped() bool                  { return false }
func (t *lineTTY) EraseChar() byte                { return t.erase }
func (t *lineTTY) ResetTermios()                  {}
func (t *lineTTY) CopyToCooked() {
	if len(t.replies) > 0 {
		fmt.Printf("[answerback: %q]\n", t.replies)
		t.replies = nil
	}
}

type writeQueue lineTTY

func (q *writeQueue) Len() int { return len((*lineTTY)(q).pending) }
func (q *writeQueue) Get() byte {
	t := (*lineTTY)(q)
	b := t.pending[0]
	t.pending = t.pending[1:]
	return b
}

type readQueue lineTTY

func (q *readQueue) Put(b byte) {
	t := (*lineTTY)(q)
	t.replies = append(t.replies, b)
}

func main() {
	optConfig := getopt.StringLong("config", 'c', "oldlinux.cfg", "Configuration file")
	optLogFile := getopt.StringLong("log", 'l', "", "Log file")
	optHelp := getopt.BoolLong("help", 'h', "Help")
	getopt.Parse()

	if *optHelp {
		getopt.Usage()
		os.Exit(0)
	}

	var file *os.File
	if optLogFile != nil && *optLogFile != "" {
		file, _ = os.Create(*optLogFile)
	}
	programLevel := new(slog.LevelVar)
	programLevel.Set(slog.LevelDebug)
	debug := false
	Logger = slog.New(logger.NewHandler(file, &slog.HandlerOptions{Level: programLevel, AddSource: false}, &debug))
	slog.SetDefault(Logger)

	Logger.Info("oldlinux console/swap demo started")

	if optConfig != nil && *optConfig != "" {
		if _, err := os.Stat(*optConfig); err == nil {
			if err := config.LoadConfigFile(*optConfig); err != nil {
				Logger.Error(err.Error())
			}
		}
	}

	// No real BIOS hand-off exists on a hosted build: boot params are
	// fixed 80x25 CGA values here instead of a memory peek at 0x90000.
	params := bootparams.Params{
		OrigX: 0, OrigY: 0,
		VideoMode: 3, VideoCols: 80, VideoLines: 25,
		EGABX: 0x10,
	}

	hz := console.DefaultHZ
	nConsoles := console.DefaultMaxConsoles
	if console.LastConfig.HZ != 0 {
		hz = console.LastConfig.HZ
	}
	if console.LastConfig.NumConsoles != 0 {
		nConsoles = console.LastConfig.NumConsoles
	}

	bus := ioport.NewFakeBus()
	con := console.NewConsole(bus, params, nConsoles, hz)
	Logger.Info("console initialized", "adapter", con.Adapter().Kind.String(), "consoles", con.NumConsoles())

	startSwapDemo(Logger)

	tty := &lineTTY{idx: con.Foreground(), erase: 127}
	con.ConsolePrint("oldlinux console ready.\n")

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	input := liner.NewLiner()
	defer input.Close()
	input.SetCtrlCAborts(true)

	msg := make(chan string, 1)
	go func() {
		for {
			line, err := input.Prompt("> ")
			if err != nil {
				close(msg)
				return
			}
			input.AppendHistory(line)
			msg <- line + "\r"
		}
	}()

loop:
	for {
		select {
		case <-sigChan:
			fmt.Println("\nGot quit signal")
			break loop
		case line, ok := <-msg:
			if !ok {
				break loop
			}
			tty.pending = append(tty.pending, []byte(line)...)
			con.Write(tty)
		}
	}

	Logger.Info("shutting down")
}

// startSwapDemo wires a tiny in-process address space and runs one
// page-out/page-in cycle purely to exercise the swapper at startup; a
// real deployment would instead call InitSwapping against a
// configured backing store and drive TryToSwapOut/SwapIn from actual
// page faults.
func startSwapDemo(log *slog.Logger) {
	frames := swap.NewFlatMemory(0x100000, 4)
	dir := swap.NewFlatDirectory(1)
	table := &swap.FlatTable{}
	dir.Tables[0] = table

	dev := swap.NewDemoBacking(swap.SwapBits)
	bm := swap.NewBitmap()
	s := swap.NewSwapper(bm, dev, frames, dir, swap.Bounds{LowMemFrame: 0x100000, HighMemFrame: 0x100000 + 4*swap.PageSize}, log)
	s.SizeBlocks = swap.LastDeviceConfig.SizeBlocks

	if _, err := s.InitSwapping(); err != nil {
		log.Warn("swap: demo device failed validation", "error", err)
		return
	}

	frame, _ := frames.AllocHighToLow()
	table.SetEntry(0, swap.EncodePresent(frame, swap.Dirty|swap.Writable|swap.User))

	if s.TryToSwapOut(table, 0) {
		log.Info("swap: demo page evicted", "slot", table.Entry(0).SwapSlot())
	}
	if !table.Entry(0).IsPresent() {
		if err := s.SwapIn(table, 0); err != nil {
			log.Warn("swap: demo page-in failed", "error", err)
		} else {
			log.Info("swap: demo page restored")
		}
	}
}
