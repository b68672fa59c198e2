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

// Package test contains helper functions for the package tests.
//
// The Expect*() functions report failure with t.Errorf() and allow the test
// to continue. The Demand*() functions report failure with t.Fatalf() and
// end the test immediately. Each function accepts optional tags which are
// prefixed to the failure message, useful when the test is run in a loop.
//
// Success and failure values are interpreted by type:
//
//	bool -> true is success, false is failure
//	error -> nil is success, non-nil is failure
//	nil -> success
package test
