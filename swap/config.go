/*
 * SWAPDEV/SWAPFILE configuration directives.
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

package swap

import (
	"fmt"
	"strconv"

	config "github.com/xenw/oldlinux/config/configparser"
)

// DeviceConfig is populated by the registered SWAPDEV/SWAPFILE
// directives as config files are loaded. main.go reads only SizeBlocks
// from it; the demo harness always builds an in-memory backing store,
// whatever Kind and Path say.
type DeviceConfig struct {
	// Kind is "device", "file" or "" (no swap directive seen).
	Kind string
	// Path is the raw partition or swap file path named in the
	// directive. Nothing in this module opens it.
	Path string
	// SizePages is not set by either directive and not read by
	// InitSwapping.
	SizePages int
	// SizeBlocks is SWAPDEV's size= option, the device size in 1 KiB
	// blocks the block layer would report; zero if not given (only
	// SWAPDEV carries this option, matching init_swapping consulting
	// blk_size[] only for a raw device, never a swap file).
	SizeBlocks int
}

var LastDeviceConfig DeviceConfig

func init() {
	config.RegisterDirective("SWAPDEV", func(opts []config.Option) error {
		LastDeviceConfig.Kind = "device"
		if len(opts) > 0 {
			LastDeviceConfig.Path = opts[0].Key
		}
		if opt, ok := config.Find(opts, "SIZE"); ok {
			n, err := strconv.Atoi(opt.Value)
			if err != nil {
				return fmt.Errorf("swap: SWAPDEV size=%q is not a number: %w", opt.Value, err)
			}
			LastDeviceConfig.SizeBlocks = n
		}
		return nil
	})
	config.RegisterDirective("SWAPFILE", func(opts []config.Option) error {
		LastDeviceConfig.Kind = "file"
		if len(opts) > 0 {
			LastDeviceConfig.Path = opts[0].Key
		}
		return nil
	})
}
