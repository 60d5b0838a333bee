/*
 * Log debug data to a file.
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

// Package debug provides cheap, bitmask-gated trace lines for the console
// and swap subsystems, tagged with a module name, a virtual-console index
// or a swap slot. A line is written only when the caller's mask and level
// share a bit; there is no per-console or per-slot filtering.
package debug

import (
	"fmt"
	"os"

	config "github.com/xenw/oldlinux/config/configparser"
)

var logFile *os.File = os.Stderr

// Debugf emits a generic trace line gated by mask&level.
func Debugf(module string, mask int, level int, format string, a ...interface{}) {
	if (mask & level) != 0 {
		fmt.Fprintf(logFile, module+": "+format+"\n", a...)
	}
}

// DebugConsf emits a trace line tagged with a virtual-console index.
func DebugConsf(currcons int, mask int, level int, format string, a ...interface{}) {
	if (mask & level) != 0 {
		fmt.Fprintf(logFile, "console %d: "+format+"\n", append([]interface{}{currcons}, a...)...)
	}
}

// DebugSlotf emits a trace line tagged with a swap slot number.
func DebugSlotf(slot int, mask int, level int, format string, a ...interface{}) {
	if (mask & level) != 0 {
		fmt.Fprintf(logFile, "slot %d: "+format+"\n", append([]interface{}{slot}, a...)...)
	}
}

func init() {
	config.RegisterDirective("LOGFILE", create)
}

// create opens the trace file named by the LOGFILE directive.
func create(opts []config.Option) error {
	if len(opts) == 0 {
		return fmt.Errorf("LOGFILE requires a path")
	}
	if logFile != nil && logFile != os.Stderr {
		return fmt.Errorf("can't have more than one debug file, previous: %s", logFile.Name())
	}

	name := opts[0].Key
	file, err := os.Create(name)
	if err != nil {
		return fmt.Errorf("unable to create debug file: %s", name)
	}

	logFile = file
	return nil
}
