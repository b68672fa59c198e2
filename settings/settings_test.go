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

package settings_test

import (
	"fmt"
	"testing"

	"github.com/jetsetilly/gopherale/curated"
	"github.com/jetsetilly/gopherale/settings"
	"github.com/jetsetilly/gopherale/test"
)

// recorder implements the Configurable interface.
type recorder struct {
	test.CompareWriter
}

func (r *recorder) SetString(key string, value string) {
	fmt.Fprintf(r, "%s=s:%s\n", key, value)
}

func (r *recorder) SetBool(key string, value bool) {
	fmt.Fprintf(r, "%s=b:%v\n", key, value)
}

func (r *recorder) SetInt(key string, value int32) {
	fmt.Fprintf(r, "%s=i:%d\n", key, value)
}

func (r *recorder) SetFloat(key string, value float32) {
	fmt.Fprintf(r, "%s=f:%g\n", key, value)
}

func TestParse(t *testing.T) {
	set, err := settings.Parse("random_seed::123;  frame_skip :: 4 ; color_averaging::TRUE; custom::hello world;")
	test.DemandSuccess(t, err)
	test.DemandEquality(t, len(set), 4)

	test.ExpectEquality(t, set[0].Key, "random_seed")
	test.ExpectEquality(t, set[0].Kind(), settings.Int)
	test.ExpectEquality(t, set[1].Value, "4")
	test.ExpectEquality(t, set[2].Kind(), settings.Bool)
	test.ExpectEquality(t, set[3].Kind(), settings.String)

	v, ok := set.Lookup("custom")
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, v, "hello world")

	_, ok = set.Lookup("sound")
	test.ExpectFailure(t, ok)

	test.ExpectEquality(t, set.String(), "random_seed::123; frame_skip::4; color_averaging::TRUE; custom::hello world")
}

func TestParseEmpty(t *testing.T) {
	set, err := settings.Parse("")
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, len(set), 0)

	set, err = settings.Parse(" ; ;")
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, len(set), 0)
}

func TestParseErrors(t *testing.T) {
	for _, s := range []string{
		"random_seed",
		"a::b::c",
		"::value",
	} {
		_, err := settings.Parse(s)
		test.ExpectSuccess(t, curated.Is(err, settings.Malformed), s)
	}

	for _, s := range []string{
		"random_seed::abc",
		"frame_skip::1.5",
		"sound::maybe",
		"repeat_action_probability::high",
		"random_seed::99999999999",
	} {
		_, err := settings.Parse(s)
		test.ExpectSuccess(t, curated.Is(err, settings.BadValue), s)
	}
}

func TestLaterWins(t *testing.T) {
	set, err := settings.Parse("frame_skip::2; frame_skip::5")
	test.DemandSuccess(t, err)
	v, ok := set.Lookup("frame_skip")
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, v, "5")
}

func TestApply(t *testing.T) {
	set, err := settings.Parse("random_seed::-7; sound::false; repeat_action_probability::0.25; record_screen_dir::/tmp/x; other::1")
	test.DemandSuccess(t, err)

	r := &recorder{}
	set.Apply(r)
	test.ExpectSuccess(t, r.Compare("random_seed=i:-7\nsound=b:false\nrepeat_action_probability=f:0.25\nrecord_screen_dir=s:/tmp/x\nother=s:1\n"))
}

func TestEnvironment(t *testing.T) {
	e, err := settings.FromMap(map[string]string{
		"GOPHERALE_OPTIONS":  "frame_skip::3",
		"GOPHERALE_ENGINE":   "dummy",
		"GOPHERALE_ROMCACHE": "/tmp/roms",
	})
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, e.Engine, "dummy")
	test.ExpectEquality(t, e.Codec, "wire")
	test.ExpectEquality(t, e.ROMCache, "/tmp/roms")

	set, err := e.Settings()
	test.DemandSuccess(t, err)
	test.DemandEquality(t, len(set), 1)
	test.ExpectEquality(t, set[0].String(), "frame_skip::3")

	e, err = settings.FromMap(map[string]string{"GOPHERALE_CODEC": "cbor"})
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, e.Codec, "cbor")
	test.ExpectEquality(t, e.Options, "")
}
