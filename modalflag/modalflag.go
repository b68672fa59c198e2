// This file is part of Gopherale.
//
// Gopherale is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopherale is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopherale.  If not, see <https://www.gnu.org/licenses/>.

package modalflag

import (
	"flag"
	"fmt"
	"io"
	"strings"
)

// ParseResult is returned from the Parse() function.
type ParseResult int

// List of valid ParseResult values.
const (
	// continue with the program. if there were sub-modes then Mode() will
	// return the selected mode
	ParseContinue ParseResult = iota

	// help was requested and has been written to Output
	ParseHelp

	// the error returned by Parse() describes the problem
	ParseError
)

// Modes handles the command line arguments for a program with modes.
type Modes struct {
	// where help messages are written. help is not shown if Output is nil
	Output io.Writer

	flags    *flag.FlagSet
	args     []string
	idx      int
	subModes []string
	path     []string
}

// NewArgs sets the list of arguments to be parsed and starts a new mode.
func (md *Modes) NewArgs(args []string) {
	md.args = args
	md.idx = 0
	md.path = md.path[:0]
	md.NewMode()
}

// NewMode starts a new set of flags and sub-modes. Arguments that have been
// consumed by earlier calls to Parse() are not seen again.
func (md *Modes) NewMode() {
	md.flags = flag.NewFlagSet("", flag.ContinueOnError)
	md.flags.SetOutput(io.Discard)
	md.subModes = nil
}

// AddSubModes adds to the list of sub-modes for the next call to Parse().
func (md *Modes) AddSubModes(modes ...string) {
	for _, m := range modes {
		md.subModes = append(md.subModes, strings.ToUpper(m))
	}
}

// Mode returns the most recently selected mode.
func (md *Modes) Mode() string {
	if len(md.path) == 0 {
		return ""
	}
	return md.path[len(md.path)-1]
}

// Path returns every mode that has been selected, separated by a slash.
func (md *Modes) Path() string {
	return strings.Join(md.path, "/")
}

func (md *Modes) String() string {
	return md.Path()
}

// Parse the flags for the current mode followed by the sub-mode, if any
// sub-modes have been added.
func (md *Modes) Parse() (ParseResult, error) {
	err := md.flags.Parse(md.args[md.idx:])
	if err == flag.ErrHelp {
		md.help()
		return ParseHelp, nil
	}
	if err != nil {
		return ParseError, err
	}

	// the flags were consumed by the flagset
	md.idx = len(md.args) - md.flags.NArg()

	if len(md.subModes) > 0 {
		mode := md.subModes[0]
		arg := strings.ToUpper(md.flags.Arg(0))
		for _, m := range md.subModes {
			if m == arg {
				mode = m
				md.idx++
				break
			}
		}
		md.path = append(md.path, mode)
	}

	return ParseContinue, nil
}

// RemainingArgs returns the arguments that have not been consumed as flags
// or modes.
func (md *Modes) RemainingArgs() []string {
	return md.args[md.idx:]
}

// GetArg returns a remaining argument or the empty string.
func (md *Modes) GetArg(i int) string {
	r := md.RemainingArgs()
	if i < 0 || i >= len(r) {
		return ""
	}
	return r[i]
}

func (md *Modes) help() {
	if md.Output == nil {
		return
	}

	if p := md.Path(); p != "" {
		fmt.Fprintf(md.Output, "mode: %s\n", p)
	}

	var n int
	md.flags.VisitAll(func(f *flag.Flag) {
		if n == 0 {
			fmt.Fprintln(md.Output, "flags:")
		}
		n++
		fmt.Fprintf(md.Output, "  -%s\n    \t%s", f.Name, f.Usage)
		if f.DefValue != "" && f.DefValue != "false" && f.DefValue != "0" {
			fmt.Fprintf(md.Output, " (default %s)", f.DefValue)
		}
		fmt.Fprintln(md.Output)
	})

	if len(md.subModes) > 0 {
		fmt.Fprintf(md.Output, "available sub-modes: %s\n", strings.Join(md.subModes, ", "))
		fmt.Fprintf(md.Output, "  default: %s\n", md.subModes[0])
	}
}

// AddBool flag for the next call to Parse().
func (md *Modes) AddBool(name string, value bool, usage string) *bool {
	return md.flags.Bool(name, value, usage)
}

// AddInt flag for the next call to Parse().
func (md *Modes) AddInt(name string, value int, usage string) *int {
	return md.flags.Int(name, value, usage)
}

// AddUint64 flag for the next call to Parse().
func (md *Modes) AddUint64(name string, value uint64, usage string) *uint64 {
	return md.flags.Uint64(name, value, usage)
}

// AddString flag for the next call to Parse().
func (md *Modes) AddString(name string, value string, usage string) *string {
	return md.flags.String(name, value, usage)
}
