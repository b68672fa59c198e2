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

// Package digest creates fingerprints of a sequence of observations. Each
// observation is the screen and RAM of a Game after a step of the emulation.
//
// The fingerprint is chained. The digest of each observation includes the
// digest of the previous observation so that the final value depends on the
// entire sequence. Two runs with the same ROM, the same options and the same
// actions will always produce the same digest.
//
// The digest is not intended for any cryptographic task.
package digest
