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

package engine

// Snapshot is an opaque reference to a state snapshot owned by a Backend. The
// zero value is the nil snapshot and is never returned by a successful
// clone or decode.
type Snapshot uint64

// Engine is a single live instance of the emulator.
type Engine interface {
	// Close destroys the instance. The Engine must not be used afterwards.
	Close() error

	GetString(key string) string
	GetBool(key string) bool
	GetInt(key string) int32
	GetFloat(key string) float32
	SetString(key string, value string)
	SetBool(key string, value bool)
	SetInt(key string, value int32)
	SetFloat(key string, value float32)

	// LoadROM loads the ROM file at path and begins a new episode.
	LoadROM(path string) error

	// Act advances the emulation by one step and returns the reward.
	Act(action int32) int32
	GameOver() bool
	ResetGame()

	LegalActionSize() int
	LegalActionSet(actions []int32)
	MinimalActionSize() int
	MinimalActionSet(actions []int32)

	FrameNumber() int32
	EpisodeFrameNumber() int32
	Lives() int32

	ScreenWidth() int
	ScreenHeight() int

	// Screen fills the slice with the palette indexed pixels of the current
	// frame. ScreenRGB fills the slice using the engine's RGB packing.
	Screen(buf []byte)
	ScreenRGB(buf []byte)

	RAMSize() int
	RAM(buf []byte)

	// SaveState and LoadState use a single slot internal to the engine.
	SaveState()
	LoadState()

	SaveScreenPNG(path string) error

	// CloneState and CloneSystemState create a new snapshot that must be
	// deleted with Backend.DeleteState().
	CloneState() Snapshot
	CloneSystemState() Snapshot
	RestoreState(s Snapshot)
	RestoreSystemState(s Snapshot)
}

// Backend provides engine instances and the snapshot functions that do not
// require an instance.
type Backend interface {
	// Name of the backend, used by Lookup().
	Name() string

	// NewEngine creates a new instance. The caller is responsible for ensuring
	// that no other instance is live.
	NewEngine() (Engine, error)

	// DeleteState frees the snapshot.
	DeleteState(s Snapshot)

	// EncodeStateLen returns the number of bytes required by EncodeState().
	EncodeStateLen(s Snapshot) int

	// EncodeState fills the slice with the serialised snapshot.
	EncodeState(s Snapshot, buf []byte)

	// DecodeState creates a new snapshot from serialised data.
	DecodeState(data []byte) (Snapshot, error)
}

// StateKinds is implemented by backends whose serialised snapshots record
// whether they were created by CloneState() or CloneSystemState().
type StateKinds interface {
	// IsSystemState returns true if the serialised snapshot was created by
	// CloneSystemState().
	IsSystemState(data []byte) (bool, error)
}
