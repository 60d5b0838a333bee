/*
 * CONSOLE configuration directive.
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

package console

import (
	"strconv"

	config "github.com/xenw/oldlinux/config/configparser"
)

// Config holds the CONSOLE directive's CONSOLES= (console count cap)
// and HZ= (timer tick rate) options for the demo harness. Zero fields
// fall back to DefaultMaxConsoles and DefaultHZ. Screen geometry is
// not configurable here; it comes from the boot params.
type Config struct {
	NumConsoles int
	HZ          int
}

// LastConfig is populated by the registered CONSOLE directive as
// config files are loaded; main.go reads it after LoadConfigFile
// returns.
var LastConfig Config

func init() {
	config.RegisterDirective("CONSOLE", func(opts []config.Option) error {
		if o, ok := config.Find(opts, "CONSOLES"); ok {
			if n, err := strconv.Atoi(o.Value); err == nil {
				LastConfig.NumConsoles = n
			}
		}
		if o, ok := config.Find(opts, "HZ"); ok {
			if n, err := strconv.Atoi(o.Value); err == nil {
				LastConfig.HZ = n
			}
		}
		return nil
	})
}
