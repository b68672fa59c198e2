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

package modalflag_test

import (
	"testing"

	"github.com/jetsetilly/gopherale/modalflag"
	"github.com/jetsetilly/gopherale/test"
)

func TestNoModes(t *testing.T) {
	md := modalflag.Modes{}
	md.NewArgs([]string{"-episodes", "3", "game.bin"})
	episodes := md.AddInt("episodes", 1, "")

	r, err := md.Parse()
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, r, modalflag.ParseContinue)
	test.ExpectEquality(t, *episodes, 3)
	test.ExpectEquality(t, md.Mode(), "")
	test.ExpectEquality(t, len(md.RemainingArgs()), 1)
	test.ExpectEquality(t, md.GetArg(0), "game.bin")
	test.ExpectEquality(t, md.GetArg(1), "")
}

func TestModes(t *testing.T) {
	md := modalflag.Modes{}
	md.NewArgs([]string{"resume", "-png", "out.png", "save.gale"})
	md.AddSubModes("run", "resume")

	_, err := md.Parse()
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, md.Mode(), "RESUME")

	md.NewMode()
	png := md.AddString("png", "", "")
	_, err = md.Parse()
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, *png, "out.png")
	test.ExpectEquality(t, md.GetArg(0), "save.gale")
	test.ExpectEquality(t, md.Path(), "RESUME")
}

func TestDefaultMode(t *testing.T) {
	md := modalflag.Modes{}
	md.NewArgs([]string{"game.bin"})
	md.AddSubModes("run", "resume")

	_, err := md.Parse()
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, md.Mode(), "RUN")
	test.ExpectEquality(t, md.GetArg(0), "game.bin")
}

func TestHelp(t *testing.T) {
	var w test.CompareWriter
	md := modalflag.Modes{Output: &w}
	md.NewArgs([]string{"-help"})
	md.AddSubModes("run", "resume")
	md.AddBool("verbose", false, "more output")

	r, err := md.Parse()
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, r, modalflag.ParseHelp)
	test.ExpectSuccess(t, w.Compare("flags:\n  -verbose\n    \tmore output\navailable sub-modes: RUN, RESUME\n  default: RUN\n"))
}

func TestBadFlag(t *testing.T) {
	md := modalflag.Modes{}
	md.NewArgs([]string{"-nosuchflag"})
	r, err := md.Parse()
	test.ExpectFailure(t, err)
	test.ExpectEquality(t, r, modalflag.ParseError)
}
