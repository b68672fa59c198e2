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

// Package statsview is an optional package that is only built when the
// statsview build tag is present. Without the tag Available() returns false
// and Launch() does nothing.
//
// It provides a local HTTP server showing runtime statistics of the process,
// which is useful when playing many episodes. The underlying functionality is
// provided by "github.com/go-echarts/statsview".
//
// After launch the statistics are viewable at:
//
//	localhost:12600/debug/statsview
//
// And the standard Go pprof statistics at:
//
//	localhost:12600/debug/pprof/
package statsview

// Address of the statsview server.
const Address = "localhost:12600"

const url = "/debug/statsview"
