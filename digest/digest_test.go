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

package digest_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jetsetilly/gopherale/ale"
	"github.com/jetsetilly/gopherale/digest"
	"github.com/jetsetilly/gopherale/engine/dummy"
	"github.com/jetsetilly/gopherale/test"
)

func TestChain(t *testing.T) {
	a := digest.NewObservation()
	b := digest.NewObservation()
	test.ExpectEquality(t, a.String(), b.String())
	test.ExpectEquality(t, a.String(), "0000000000000000000000000000000000000000")

	a.Add([]byte("one"))
	a.Add([]byte("two"))
	b.Add([]byte("two"))
	b.Add([]byte("one"))
	test.ExpectInequality(t, a.String(), b.String())
	test.ExpectEquality(t, a.Count(), 2)

	// splitting the data differently within an observation makes no difference
	c := digest.NewObservation()
	d := digest.NewObservation()
	c.Add([]byte("ab"), []byte("cd"))
	d.Add([]byte("abcd"))
	test.ExpectEquality(t, c.String(), d.String())

	c.Reset()
	test.ExpectEquality(t, c.Count(), 0)
	test.ExpectEquality(t, c.String(), "0000000000000000000000000000000000000000")
}

func play(t *testing.T, path string, actions []ale.Action) string {
	t.Helper()

	a, err := ale.NewWithBackend(dummy.Registered())
	test.DemandSuccess(t, err)

	g, err := a.LoadROM(path)
	test.DemandSuccess(t, err)
	defer g.Close()

	dig := digest.NewObservation()
	for _, act := range actions {
		g.Act(act)
		dig.AddGame(g)
	}
	test.ExpectEquality(t, dig.Count(), len(actions))

	return dig.String()
}

func TestGame(t *testing.T) {
	path := filepath.Join(t.TempDir(), "game.bin")
	test.DemandSuccess(t, os.WriteFile(path, []byte("digest test rom"), 0o644))

	actions := []ale.Action{ale.Fire, ale.Up, ale.Up, ale.Left, ale.DownFire}

	first := play(t, path, actions)
	test.ExpectEquality(t, play(t, path, actions), first)

	actions[2] = ale.Down
	test.ExpectInequality(t, play(t, path, actions), first)
}
