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

package curated

import (
	"fmt"
	"strings"
)

// curated errors keep the formatting pattern so that they can be identified
// later with Is() and Has().
type curated struct {
	pattern string
	values  []any
}

// Errorf creates a new curated error. The values are formatted with the
// pattern when Error() is called.
func Errorf(pattern string, values ...any) error {
	return curated{
		pattern: pattern,
		values:  values,
	}
}

func (er curated) Error() string {
	return normalise(fmt.Sprintf(er.pattern, er.values...))
}

// normalise removes a part of the message that is the same as the part
// immediately before it. wrapped errors often repeat the prefix of the
// wrapping error.
func normalise(msg string) string {
	parts := strings.Split(msg, ": ")

	kept := make([]string, 1, len(parts))
	kept[0] = parts[0]
	for _, p := range parts[1:] {
		if p != kept[len(kept)-1] {
			kept = append(kept, p)
		}
	}

	return strings.Join(kept, ": ")
}

// Unwrap returns the first error in the values, allowing the standard
// errors.Is() and errors.As() functions to see through a curated error.
func (er curated) Unwrap() error {
	for _, v := range er.values {
		if e, ok := v.(error); ok {
			return e
		}
	}
	return nil
}

// IsAny returns true if err is a curated error.
func IsAny(err error) bool {
	_, ok := err.(curated)
	return ok
}

// Is returns true if err is a curated error created with the pattern.
func Is(err error, pattern string) bool {
	er, ok := err.(curated)
	return ok && er.pattern == pattern
}

// Has returns true if err, or any curated error in its values, was created
// with the pattern.
func Has(err error, pattern string) bool {
	er, ok := err.(curated)
	if !ok {
		return false
	}
	if er.pattern == pattern {
		return true
	}
	for _, v := range er.values {
		if e, ok := v.(error); ok && Has(e, pattern) {
			return true
		}
	}
	return false
}
