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

package ale

import (
	"github.com/jetsetilly/gopherale/curated"
	"github.com/jetsetilly/gopherale/engine"
	"github.com/jetsetilly/gopherale/logger"
)

// Game is an engine instance with a ROM loaded. A Game is only ever created
// by loading a ROM into an ALE, by changing the ROM of another Game, or by
// decoding a previously encoded Game.
type Game struct {
	Options
	romPath string
}

// ROMPath returns the path of the loaded ROM.
func (g *Game) ROMPath() string {
	g.instance()
	return g.romPath
}

// Backend returns the backend that created the instance.
func (g *Game) Backend() engine.Backend {
	return g.instance().backend
}

// ChangeGame loads a different ROM into the same engine instance. The Game
// is consumed by a successful change. If the load fails the Game is returned
// to its previous state and can still be used.
func (g *Game) ChangeGame(path string) (*Game, error) {
	in := g.take()
	n, err := load(in, path)
	if err != nil {
		g.in = in
		return nil, err
	}
	return n, nil
}

// Release consumes the Game and returns the engine instance as an ALE. The
// ROM stays loaded in the engine but the ALE knows nothing about it.
func (g *Game) Release() *ALE {
	return &ALE{Options: Options{in: g.take()}}
}

// Close destroys the engine instance. Closing a Game that has been closed or
// consumed does nothing.
func (g *Game) Close() error {
	return g.release()
}

// Act performs one step of the emulation and returns the reward.
func (g *Game) Act(action Action) int32 {
	return g.engine().Act(int32(action))
}

// IsOver returns true if the current episode has ended.
func (g *Game) IsOver() bool {
	return g.engine().GameOver()
}

// Reset begins a new episode.
func (g *Game) Reset() {
	g.engine().ResetGame()
}

// LegalActionSet returns every action that the engine accepts for the game.
func (g *Game) LegalActionSet() []Action {
	eng := g.engine()
	return actionSet(eng.LegalActionSize(), eng.LegalActionSet)
}

// MinimalActionSet returns the actions that have an effect in the game.
func (g *Game) MinimalActionSet() []Action {
	eng := g.engine()
	return actionSet(eng.MinimalActionSize(), eng.MinimalActionSet)
}

// actionSet fills a buffer of exactly the reported size.
func actionSet(size int, fill func([]int32)) []Action {
	if size < 0 {
		size = 0
	}
	buf := make([]int32, size)
	fill(buf)

	actions := make([]Action, size)
	for i, a := range buf {
		actions[i] = Action(a)
	}
	return actions
}

// FrameNumber returns the number of frames since the ROM was loaded.
func (g *Game) FrameNumber() int32 {
	return g.engine().FrameNumber()
}

// EpisodeFrameNumber returns the number of frames since the start of the
// episode.
func (g *Game) EpisodeFrameNumber() int32 {
	return g.engine().EpisodeFrameNumber()
}

// Lives returns the number of lives remaining.
func (g *Game) Lives() int32 {
	return g.engine().Lives()
}

// SaveState saves the emulation to the engine's internal slot, overwriting
// anything previously saved there.
func (g *Game) SaveState() {
	g.engine().SaveState()
}

// LoadState restores the emulation from the engine's internal slot.
func (g *Game) LoadState() {
	g.engine().LoadState()
}

// SaveScreenPNG writes the current frame to a PNG file.
func (g *Game) SaveScreenPNG(path string) error {
	if err := g.engine().SaveScreenPNG(path); err != nil {
		return err
	}
	logger.Logf(logger.Allow, "ale", "saved screen to %s", path)
	return nil
}

// CloneState returns a snapshot of the game logic state. The Game is not
// changed.
func (g *Game) CloneState() *State {
	in := g.instance()
	return &State{snapshot{backend: in.backend, s: in.eng.CloneState()}}
}

// CloneSystemState returns a snapshot of the entire machine state. The Game
// is not changed.
func (g *Game) CloneSystemState() *SystemState {
	in := g.instance()
	return &SystemState{snapshot{backend: in.backend, s: in.eng.CloneSystemState()}}
}

// RestoreFromClonedState restores the game logic state. The State is not
// consumed and must still be closed by the caller.
func (g *Game) RestoreFromClonedState(st *State) {
	in := g.instance()
	in.eng.RestoreState(st.ref(in.backend))
}

// RestoreFromClonedSystemState restores the entire machine state. The
// SystemState is not consumed and must still be closed by the caller.
func (g *Game) RestoreFromClonedSystemState(st *SystemState) {
	in := g.instance()
	in.eng.RestoreSystemState(st.ref(in.backend))
}

// checks that the snapshot can be restored by the backend.
func (sn *snapshot) ref(b engine.Backend) engine.Snapshot {
	s := sn.snapshot()
	if sn.backend != b {
		panic(curated.Errorf(ForeignState, sn.backend.Name(), b.Name()))
	}
	return s
}
