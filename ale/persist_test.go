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

package ale_test

import (
	"bytes"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/jetsetilly/gopherale/ale"
	"github.com/jetsetilly/gopherale/codec"
	"github.com/jetsetilly/gopherale/curated"
	"github.com/jetsetilly/gopherale/engine/dummy"
	"github.com/jetsetilly/gopherale/lease"
	"github.com/jetsetilly/gopherale/test"
)

func TestPersistRecreatesROM(t *testing.T) {
	for _, f := range codec.Formats {
		rom := romData(2048, 9)
		path := filepath.Join(t.TempDir(), "roms", "pong.bin")
		test.DemandSuccess(t, os.MkdirAll(filepath.Dir(path), 0o755))
		test.DemandSuccess(t, os.WriteFile(path, rom, 0o644))

		a, err := ale.NewWithBackend(dummy.Registered())
		test.DemandSuccess(t, err)
		g, err := a.LoadROM(path)
		test.DemandSuccess(t, err)

		for range 25 {
			g.Act(ale.Fire)
		}

		data, err := ale.MarshalGame(g, f)
		test.DemandSuccess(t, err, f.Name())

		// continue the original so the decoded game can be compared
		var rewards []int32
		for range 50 {
			rewards = append(rewards, g.Act(ale.DownFire))
		}
		ram := g.RAM()
		test.DemandSuccess(t, g.Close())

		test.DemandSuccess(t, os.RemoveAll(filepath.Dir(path)))

		d, err := ale.UnmarshalGame(data, f)
		test.DemandSuccess(t, err, f.Name())

		recreated, err := os.ReadFile(path)
		test.DemandSuccess(t, err)
		test.ExpectSuccess(t, bytes.Equal(recreated, rom), f.Name())

		test.ExpectEquality(t, d.ROMPath(), path)
		test.ExpectEquality(t, d.FrameNumber(), int32(25))
		for i := range 50 {
			test.ExpectEquality(t, d.Act(ale.DownFire), rewards[i], f.Name(), i)
		}
		test.ExpectSuccess(t, bytes.Equal(d.RAM(), ram), f.Name())

		test.ExpectSuccess(t, d.Close())
	}
}

func TestPersistExistingROM(t *testing.T) {
	g := newGame(t)
	g.Act(ale.Fire)

	data, err := ale.MarshalGame(g, codec.Wire)
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, g.Close())

	// the file is still present and unchanged
	d, err := ale.UnmarshalGame(data, codec.Wire)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, d.FrameNumber(), int32(1))
	test.ExpectSuccess(t, d.Close())
}

func TestPersistROMMismatch(t *testing.T) {
	g := newGame(t)
	path := g.ROMPath()

	data, err := ale.MarshalGame(g, codec.CBOR)
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, g.Close())

	different := romData(100, 77)
	test.DemandSuccess(t, os.WriteFile(path, different, 0o644))

	d, err := ale.UnmarshalGame(data, codec.CBOR)
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, d == nil)
	test.ExpectSuccess(t, curated.Is(err, ale.ROMMismatch))
	test.ExpectFailure(t, ale.Live())

	// the file was not overwritten
	onDisk, err := os.ReadFile(path)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, bytes.Equal(onDisk, different))
}

func TestPersistROMUnreadable(t *testing.T) {
	g := newGame(t)
	test.DemandSuccess(t, os.Remove(g.ROMPath()))

	_, err := ale.MarshalGame(g, codec.Wire)
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, ale.ROMUnreadable))

	// the game is unaffected
	test.ExpectEquality(t, g.FrameNumber(), int32(0))
}

func TestPersistROMUnwritable(t *testing.T) {
	// a regular file where a directory is expected
	dir := t.TempDir()
	blocker := filepath.Join(dir, "blocker")
	test.DemandSuccess(t, os.WriteFile(blocker, []byte{1}, 0o644))

	data, err := codec.Marshal(codec.Wire, func(enc codec.Encoder) error {
		if err := enc.EncodeString(filepath.Join(blocker, "game.bin")); err != nil {
			return err
		}
		if err := enc.EncodeBytes(romData(16, 0)); err != nil {
			return err
		}
		return enc.EncodeBytes(nil)
	})
	test.DemandSuccess(t, err)

	_, err = ale.UnmarshalGame(data, codec.Wire)
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, ale.ROMUnwritable) || curated.Is(err, ale.ROMUnreadable))
	test.ExpectFailure(t, ale.Live())
}

func TestPersistMalformed(t *testing.T) {
	g := newGame(t)
	data, err := ale.MarshalGame(g, codec.Wire)
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, g.Close())

	for _, n := range []int{0, 1, len(data) / 2, len(data) - 1} {
		_, err := ale.UnmarshalGame(data[:n], codec.Wire)
		test.ExpectFailure(t, err, n)
		test.ExpectSuccess(t, curated.Is(err, ale.DecodeFailed), n)
		test.ExpectFailure(t, ale.Live(), n)
	}

	// trailing data after the system state
	_, err = ale.UnmarshalGame(append(data, 0xff, 0xff, 0xff), codec.Wire)
	test.ExpectSuccess(t, curated.Is(err, codec.Malformed))
	test.ExpectFailure(t, ale.Live())

	// CBOR null, an integer and an array in place of the string and byte
	// values
	for _, b := range [][]byte{
		{0xf6, 0xf6, 0xf6},
		{0xf7, 0xf7, 0xf7},
		{0x01, 0x40, 0x40},
		{0x60, 0x80, 0x40},
	} {
		_, err := ale.UnmarshalGame(b, codec.CBOR)
		test.ExpectSuccess(t, curated.Is(err, ale.DecodeFailed), b)
		test.ExpectSuccess(t, curated.Has(err, codec.Malformed), b)
		test.ExpectFailure(t, ale.Live(), b)
	}
}

func TestPersistBadState(t *testing.T) {
	path := writeROM(t, "game.bin", romData(64, 3))
	rom, err := os.ReadFile(path)
	test.DemandSuccess(t, err)

	data, err := codec.Marshal(codec.CBOR, func(enc codec.Encoder) error {
		if err := enc.EncodeString(path); err != nil {
			return err
		}
		if err := enc.EncodeBytes(rom); err != nil {
			return err
		}
		return enc.EncodeBytes([]byte("garbage"))
	})
	test.DemandSuccess(t, err)

	_, err = ale.UnmarshalGame(data, codec.CBOR)
	test.ExpectSuccess(t, curated.Is(err, ale.StateDecodeFailed))

	// the instance created during the decode was closed
	test.ExpectFailure(t, ale.Live())

	// an existing rom file is left alone
	_, err = os.Stat(path)
	test.ExpectSuccess(t, err)

	// but a rom file recreated by the failed decode is removed
	test.DemandSuccess(t, os.Remove(path))
	_, err = ale.UnmarshalGame(data, codec.CBOR)
	test.ExpectSuccess(t, curated.Is(err, ale.StateDecodeFailed))
	_, err = os.Stat(path)
	test.ExpectSuccess(t, errors.Is(err, fs.ErrNotExist))
}

func TestPersistWithLiveInstance(t *testing.T) {
	g := newGame(t)
	data, err := ale.MarshalGame(g, codec.Wire)
	test.DemandSuccess(t, err)

	// the rom file would have to be recreated
	test.DemandSuccess(t, os.Remove(g.ROMPath()))

	r := test.ExpectPanic(t, func() { ale.UnmarshalGame(data, codec.Wire) })
	test.ExpectSuccess(t, recoveredPattern(r, lease.InUse))
	test.ExpectSuccess(t, ale.Live())

	_, err = os.Stat(g.ROMPath())
	test.ExpectSuccess(t, errors.Is(err, fs.ErrNotExist))
}
