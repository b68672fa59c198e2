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

// Package curated provides the error values used throughout gopherale.
//
// Curated errors are created with Errorf(). Unlike fmt.Errorf() the pattern
// string is retained and can be tested for with the Is() and Has()
// functions. Patterns that callers are expected to test for are exported as
// string constants by the package that raises them. For example, the ale
// package exports the ROMUnreadable pattern:
//
//	err := game.Encode(enc)
//	if curated.Has(err, ale.ROMUnreadable) {
//		...
//	}
//
// Is() checks only the outermost error. Has() searches the entire chain,
// where the chain is formed by any error values given as placeholder values
// to Errorf().
//
// The Error() implementation normalises the message so that adjacent parts
// of the chain that are identical are only printed once. Parts are separated
// by the sub-string ": ". This means a function can wrap an error with the
// same prefix as the error it received without the message stuttering:
//
//	ale: rom unreadable: open pong.bin: no such file
//
// and not:
//
//	ale: ale: rom unreadable: open pong.bin: no such file
//
// Curated errors implement Unwrap() so the errors package in the standard
// library can also be used to inspect the chain.
package curated
