/*
 * Configuration file parser for the console and swap subsystems.
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

// Package configparser reads the plain-text config file that tells this
// module which console geometry to use instead of a boot hand-off, and
// which backing store the swapper should open.
//
// Configuration file format:
//
//	'#' starts a comment, rest of line ignored.
//	<line> := <directive> <whitespace> <options>
//	<options> ::= *(<option> *<whitespace>)
//	<option> ::= <key> ['=' <value>]
//
// Directives are registered by the package that understands them (the
// console package registers CONSOLE, the swap package registers SWAPDEV
// and SWAPFILE) via RegisterDirective, the same init()-time registration
// pattern the original device models used.
package configparser

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// Option is one key[=value] token found after a directive keyword.
type Option struct {
	Key   string
	Value string // empty if the option had no '=value'.
}

// DirectiveFunc handles one parsed configuration line.
type DirectiveFunc func(opts []Option) error

var directives = map[string]DirectiveFunc{}

var lineNumber int

// RegisterDirective should be called from an init function.
func RegisterDirective(keyword string, fn DirectiveFunc) {
	directives[strings.ToUpper(keyword)] = fn
}

// LoadConfigFile reads and dispatches every directive line in name.
func LoadConfigFile(name string) error {
	file, err := os.Open(name)
	if err != nil {
		return err
	}
	defer file.Close()

	lineNumber = 0
	reader := bufio.NewReader(file)
	for {
		line, err := reader.ReadString('\n')
		lineNumber++
		if len(line) == 0 && err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}
		if perr := parseLine(line); perr != nil {
			return fmt.Errorf("line %d: %w", lineNumber, perr)
		}
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}
	}
}

// parseLine tokenizes one configuration line and dispatches it to the
// directive registered for its leading keyword.
func parseLine(line string) error {
	if i := strings.IndexByte(line, '#'); i >= 0 {
		line = line[:i]
	}
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil
	}

	keyword := strings.ToUpper(fields[0])
	fn, ok := directives[keyword]
	if !ok {
		return errors.New("unknown directive: " + fields[0])
	}

	opts := make([]Option, 0, len(fields)-1)
	for _, tok := range fields[1:] {
		if i := strings.IndexByte(tok, '='); i >= 0 {
			opts = append(opts, Option{Key: strings.ToUpper(tok[:i]), Value: tok[i+1:]})
		} else {
			opts = append(opts, Option{Key: strings.ToUpper(tok)})
		}
	}
	return fn(opts)
}

// Find looks up the first option matching key (case-insensitive).
func Find(opts []Option, key string) (Option, bool) {
	key = strings.ToUpper(key)
	for _, o := range opts {
		if o.Key == key {
			return o, true
		}
	}
	return Option{}, false
}
