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

// Package dummy is an implementation of the engine.Backend interface written
// entirely in Go. It does not emulate any real hardware. Instead it runs a
// small deterministic machine whose RAM, screen, lives and rewards are
// derived from the ROM data, the actions it is given and a pseudo-random
// number generator. This is enough for the lifecycle of sessions and
// snapshots to be exercised without the native library.
//
// The machine has a 160x210 screen and 128 bytes of RAM, the same
// dimensions as the Atari 2600 under the native engine. The screen is a
// function of RAM. The RGB screen packs each pixel into a single byte
// (three bits of red, three of green, two of blue).
//
// An episode ends when all lives have been lost, or when the episode frame
// number reaches max_num_frames_per_episode (if it is greater than zero).
// A life is lost every LifeFrames frames. Act() after the end of an episode
// does nothing and returns a reward of zero.
//
// Snapshots are kept by the Backend and are checked on every use. Deleting
// or restoring a snapshot that does not exist panics, which makes
// use-after-free and double-free errors in the wrapping layer visible to the
// tests.
//
// Importing the package registers the backend with the engine package
// under the name "dummy".
package dummy
