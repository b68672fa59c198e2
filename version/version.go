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

// Package version reports the version of the program from the build
// information embedded by the Go toolchain.
package version

import (
	"fmt"
	"runtime/debug"
)

// ApplicationName is the name to use when referring to the program.
const ApplicationName = "Gopherale"

// number can be set at build time with the -X linker flag.
var number string

// Version returns the version string and the vcs revision. The version is
// "unreleased" if the program was built from a vcs checkout without a version
// number and "local" if there is no vcs information. The revision has the
// suffix "+dirty" if the checkout had uncommitted changes.
func Version() (version string, revision string) {
	info, ok := debug.ReadBuildInfo()
	return fromBuildInfo(number, info, ok)
}

func fromBuildInfo(num string, info *debug.BuildInfo, ok bool) (string, string) {
	var vcs, modified bool
	revision := "no revision information"

	if ok {
		for _, s := range info.Settings {
			switch s.Key {
			case "vcs":
				vcs = true
			case "vcs.revision":
				revision = s.Value
			case "vcs.modified":
				modified = s.Value == "true"
			}
		}
	}
	if modified {
		revision = fmt.Sprintf("%s+dirty", revision)
	}

	switch {
	case num != "":
		return num, revision
	case vcs:
		return "unreleased", revision
	}
	return "local", revision
}
