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

import "fmt"

// Action is a single input to the emulator for one step. Whether an action is
// meaningful for the loaded game is decided by the engine, see
// Game.LegalActionSet() and Game.MinimalActionSet().
type Action int32

// The standard actions for player A.
const (
	Noop Action = iota
	Fire
	Up
	Right
	Left
	Down
	UpRight
	UpLeft
	DownRight
	DownLeft
	UpFire
	RightFire
	LeftFire
	DownFire
	UpRightFire
	UpLeftFire
	DownRightFire
	DownLeftFire
)

var actionNames = [...]string{
	"NOOP", "FIRE", "UP", "RIGHT", "LEFT", "DOWN",
	"UPRIGHT", "UPLEFT", "DOWNRIGHT", "DOWNLEFT",
	"UPFIRE", "RIGHTFIRE", "LEFTFIRE", "DOWNFIRE",
	"UPRIGHTFIRE", "UPLEFTFIRE", "DOWNRIGHTFIRE", "DOWNLEFTFIRE",
}

func (a Action) String() string {
	if a >= 0 && int(a) < len(actionNames) {
		return actionNames[a]
	}
	return fmt.Sprintf("ACTION(%d)", int32(a))
}
