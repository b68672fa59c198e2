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

// Package ale is a safe interface to a single emulator engine instance.
//
// The engine is not reentrant and only one instance may exist in the
// process at any one time. New() enforces this by taking a process-wide
// lease which is only released when the instance is closed. A second call
// to New() while an instance is live panics with an error matching the
// lease.InUse pattern.
//
// The instance passes through two states. An ALE is an instance without a
// ROM. Loading a ROM moves the instance out of the ALE and into a Game:
//
//	a, err := ale.New()
//	if err != nil {
//		return err
//	}
//	a.SetInt("random_seed", 123)
//
//	g, err := a.LoadROM("pong.bin")
//	if err != nil {
//		a.Close()
//		return err
//	}
//	defer g.Close()
//
// After a successful LoadROM() the ALE has been consumed and any further use
// of it panics. The same is true of a Game passed to ChangeGame() or
// Release(), and of an ALE or Game that has been closed. The configuration
// getters and setters are available on both states through the embedded
// Options type.
//
// Snapshots of the emulation are taken with CloneState() and
// CloneSystemState(). Each snapshot owns engine resources and must be closed
// when it is no longer required. Restoring a snapshot does not consume it.
//
// A Game can be encoded with any codec.Format and decoded again, possibly in
// a different process. The encoding includes the ROM data so that the ROM
// file can be recreated if it is missing when the Game is decoded.
package ale
