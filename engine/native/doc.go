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

// Package native binds the ale_c library to the engine.Backend interface.
//
// The binding is only compiled when the "ale" build tag is given and cgo is
// enabled. Without the build tag the package is empty and importing it has
// no effect, so that the gopherale command can always import it:
//
//	go build -tags ale
//
// The library must be available to the linker as libale_c. Use CGO_LDFLAGS
// if it is not installed in a standard location.
//
// Snapshots handed out by the backend are kept in a table of C pointers so
// that no C pointer is ever exposed beyond this package.
package native
