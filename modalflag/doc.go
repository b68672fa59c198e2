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

// Package modalflag wraps the flag package from the standard library and adds
// program modes. A mode is a word on the command line that selects a
// different set of flags and arguments, in the same way as the go command
// has build, test and so on.
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("RUN", "RESUME")
//
//	r, err := md.Parse()
//	switch r {
//	case modalflag.ParseHelp:
//		return nil
//	case modalflag.ParseError:
//		return err
//	}
//
//	switch md.Mode() {
//	case "RUN":
//		md.NewMode()
//		episodes := md.AddInt("episodes", 1, "number of episodes")
//		...
//	}
//
// The first sub-mode is the default and is used if the next argument is not
// one of the sub-modes. Mode names are not case sensitive.
package modalflag
