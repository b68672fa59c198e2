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

// Package agent contains players for a Game. An Agent chooses an action for
// each step of the emulation and Play() runs the Agent for a number of
// episodes, collecting the results.
package agent
