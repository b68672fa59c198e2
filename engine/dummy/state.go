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

package dummy

import (
	"bytes"
	"encoding/binary"

	"github.com/jetsetilly/gopherale/curated"
)

// RAMSize is the number of bytes of RAM in the dummy machine.
const RAMSize = 128

const (
	stateMagic   = "DUMY"
	stateVersion = 1
)

type stateKind uint8

const (
	kindLogic stateKind = iota
	kindSystem
)

// state is everything about the machine that changes during emulation. a
// logic state is the same as a system state except that the random number
// generator is not restored from it.
type state struct {
	Kind         stateKind
	ROMCRC       uint32
	RNG          uint32
	Frame        int32
	EpisodeFrame int32
	Lives        int32
	LastAction   int32
	RAM          [RAMSize]byte
}

type stateHeader struct {
	Magic   [4]byte
	Version uint16
}

func (st state) marshal() []byte {
	var b bytes.Buffer

	var hdr stateHeader
	copy(hdr.Magic[:], stateMagic)
	hdr.Version = stateVersion

	// writing to a bytes.Buffer cannot fail
	_ = binary.Write(&b, binary.LittleEndian, hdr)
	_ = binary.Write(&b, binary.LittleEndian, st)

	return b.Bytes()
}

func (st *state) unmarshal(data []byte) error {
	r := bytes.NewReader(data)

	var hdr stateHeader
	if err := binary.Read(r, binary.LittleEndian, &hdr); err != nil {
		return curated.Errorf(CorruptState, err)
	}
	if string(hdr.Magic[:]) != stateMagic {
		return curated.Errorf(CorruptState, "not a dummy state")
	}
	if hdr.Version != stateVersion {
		return curated.Errorf(CorruptState, "unsupported version")
	}

	if err := binary.Read(r, binary.LittleEndian, st); err != nil {
		return curated.Errorf(CorruptState, err)
	}
	if r.Len() != 0 {
		return curated.Errorf(CorruptState, "trailing data")
	}
	if st.Kind != kindLogic && st.Kind != kindSystem {
		return curated.Errorf(CorruptState, "unknown kind")
	}

	return nil
}
