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
	"bytes"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/jetsetilly/gopherale/codec"
	"github.com/jetsetilly/gopherale/curated"
	"github.com/jetsetilly/gopherale/engine"
	"github.com/jetsetilly/gopherale/logger"
)

// Sentinal error patterns for persisting a Game.
const (
	ROMUnreadable = "ale: cannot read rom (%s): %v"
	ROMUnwritable = "ale: cannot write rom (%s): %v"
	ROMMismatch   = "ale: rom file (%s) does not match the saved rom"
	DecodeFailed  = "ale: cannot decode game: %v"
)

// Encode writes the ROM path, the contents of the ROM file and the system
// state of the Game. The ROM file is read before anything is written.
func (g *Game) Encode(enc codec.Encoder) error {
	path := g.ROMPath()

	rom, err := os.ReadFile(path)
	if err != nil {
		return curated.Errorf(ROMUnreadable, path, err)
	}

	st := g.CloneSystemState()
	defer st.Close()

	if err := enc.EncodeString(path); err != nil {
		return err
	}
	if err := enc.EncodeBytes(rom); err != nil {
		return err
	}
	return st.Encode(enc)
}

// DecodeGame reads a Game written by Encode() and reconstructs it with a new
// engine instance from the default backend. No other engine instance can
// exist at the time of the call and, as with New(), it is a programming error
// if one does.
//
// The ROM file is written to its original path if there is no file there.
// An existing file must have the same contents as the saved ROM. A file
// written by a decode that then fails is removed again.
func DecodeGame(dec codec.Decoder) (*Game, error) {
	b, err := engine.Default()
	if err != nil {
		return nil, err
	}
	return DecodeGameWithBackend(b, dec)
}

// DecodeGameWithBackend is the same as DecodeGame() but with a specific
// backend.
func DecodeGameWithBackend(b engine.Backend, dec codec.Decoder) (*Game, error) {
	path, err := dec.DecodeString()
	if err != nil {
		return nil, curated.Errorf(DecodeFailed, err)
	}
	rom, err := dec.DecodeBytes()
	if err != nil {
		return nil, curated.Errorf(DecodeFailed, err)
	}
	data, err := dec.DecodeBytes()
	if err != nil {
		return nil, curated.Errorf(DecodeFailed, err)
	}

	a, err := NewWithBackend(b)
	if err != nil {
		return nil, err
	}

	created, err := materialise(path, rom)
	if err != nil {
		_ = a.Close()
		return nil, err
	}

	// a rom file created by this decode is removed if the decode fails
	abandon := func() {
		if created {
			if err := os.Remove(path); err != nil {
				logger.Logf(logger.Allow, "ale", "cannot remove recreated rom file: %v", err)
			}
		}
	}

	g, err := a.LoadROM(path)
	if err != nil {
		_ = a.Close()
		abandon()
		return nil, err
	}

	sn, err := newSnapshot(b, data, true)
	if err != nil {
		_ = g.Close()
		abandon()
		return nil, err
	}
	st := SystemState{sn}
	defer st.Close()

	g.RestoreFromClonedSystemState(&st)

	return g, nil
}

// materialise makes sure the file at path holds the rom data. returns true if
// the file was created.
func materialise(path string, rom []byte) (bool, error) {
	existing, err := os.ReadFile(path)
	if err == nil {
		if !bytes.Equal(existing, rom) {
			return false, curated.Errorf(ROMMismatch, path)
		}
		return false, nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return false, curated.Errorf(ROMUnreadable, path, err)
	}

	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return false, curated.Errorf(ROMUnwritable, path, err)
		}
	}
	if err := os.WriteFile(path, rom, 0o644); err != nil {
		return false, curated.Errorf(ROMUnwritable, path, err)
	}

	logger.Logf(logger.Allow, "ale", "recreated rom file %s (%d bytes)", path, len(rom))

	return true, nil
}

// MarshalGame encodes the Game using the format.
func MarshalGame(g *Game, f codec.Format) ([]byte, error) {
	return codec.Marshal(f, g.Encode)
}

// UnmarshalGame decodes a Game from data that was created by MarshalGame()
// with the same format. Data following the encoded Game is an error.
func UnmarshalGame(data []byte, f codec.Format) (*Game, error) {
	b, err := engine.Default()
	if err != nil {
		return nil, err
	}
	return UnmarshalGameWithBackend(b, data, f)
}

// UnmarshalGameWithBackend is the same as UnmarshalGame() but with a specific
// backend.
func UnmarshalGameWithBackend(b engine.Backend, data []byte, f codec.Format) (*Game, error) {
	var g *Game
	err := codec.Unmarshal(f, data, func(dec codec.Decoder) error {
		var err error
		g, err = DecodeGameWithBackend(b, dec)
		return err
	})
	if err != nil {
		// the game was decoded but unmarshaling failed afterwards
		if g != nil {
			_ = g.Close()
		}
		return nil, err
	}
	return g, nil
}
