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

package digest

import (
	"crypto/sha1"
	"fmt"

	"github.com/jetsetilly/gopherale/ale"
)

// Observation accumulates a chained digest.
type Observation struct {
	digest [sha1.Size]byte
	count  int

	// the previous digest followed by the observed data
	data []byte

	// reused for every call to AddGame()
	screen []byte
	ram    []byte
}

// NewObservation is preferred to the zero value so that the internal buffers
// are only allocated once.
func NewObservation() *Observation {
	return &Observation{
		data: make([]byte, 0, sha1.Size+1024),
	}
}

func (dig *Observation) String() string {
	return fmt.Sprintf("%x", dig.digest)
}

// Count returns the number of observations since the last reset.
func (dig *Observation) Count() int {
	return dig.count
}

// Reset the digest to zero.
func (dig *Observation) Reset() {
	dig.digest = [sha1.Size]byte{}
	dig.count = 0
}

// Add an observation. Any number of byte slices can be given.
func (dig *Observation) Add(observed ...[]byte) {
	dig.data = append(dig.data[:0], dig.digest[:]...)
	for _, o := range observed {
		dig.data = append(dig.data, o...)
	}
	dig.digest = sha1.Sum(dig.data)
	dig.count++
}

// AddGame adds the current screen and RAM of the Game.
func (dig *Observation) AddGame(g *ale.Game) {
	dig.screen = g.ScreenInBuf(dig.screen)
	dig.ram = g.RAMInBuf(dig.ram)
	dig.Add(dig.screen, dig.ram)
}
