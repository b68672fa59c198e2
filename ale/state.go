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
	"github.com/jetsetilly/gopherale/codec"
	"github.com/jetsetilly/gopherale/curated"
	"github.com/jetsetilly/gopherale/engine"
)

// StateDecodeFailed is the pattern used when the engine rejects encoded
// state data.
const StateDecodeFailed = "ale: cannot decode state: %v"

// snapshot owns one engine snapshot. the zero backend means the snapshot
// has been closed.
type snapshot struct {
	backend engine.Backend
	s       engine.Snapshot
}

func (sn *snapshot) snapshot() engine.Snapshot {
	if sn.backend == nil {
		panic(curated.Errorf(StateClosed))
	}
	return sn.s
}

// Close frees the engine snapshot. Closing more than once does nothing.
func (sn *snapshot) Close() {
	if sn.backend == nil {
		return
	}
	b := sn.backend
	sn.backend = nil
	b.DeleteState(sn.s)
}

// Bytes returns the engine's encoding of the snapshot. The encoding is only
// meaningful to the same engine backend.
func (sn *snapshot) Bytes() []byte {
	s := sn.snapshot()
	buf := make([]byte, sn.backend.EncodeStateLen(s))
	sn.backend.EncodeState(s, buf)
	return buf
}

// Encode writes the snapshot as a single byte sequence.
func (sn *snapshot) Encode(enc codec.Encoder) error {
	return enc.EncodeBytes(sn.Bytes())
}

// clone makes an independent copy of the snapshot by passing it through the
// engine encoding.
func (sn *snapshot) clone() snapshot {
	data := sn.Bytes()
	s, err := sn.backend.DecodeState(data)
	if err != nil {
		// the data was produced by the same backend a moment ago
		panic(curated.Errorf(StateDecodeFailed, err))
	}
	return snapshot{backend: sn.backend, s: s}
}

func decodeSnapshot(b engine.Backend, dec codec.Decoder, system bool) (snapshot, error) {
	data, err := dec.DecodeBytes()
	if err != nil {
		return snapshot{}, err
	}
	return newSnapshot(b, data, system)
}

// newSnapshot creates a snapshot from serialised data. errors match the
// StateDecodeFailed pattern.
func newSnapshot(b engine.Backend, data []byte, system bool) (snapshot, error) {
	// only some backends can tell the two kinds of state apart
	if k, ok := b.(engine.StateKinds); ok {
		sys, err := k.IsSystemState(data)
		if err != nil {
			return snapshot{}, curated.Errorf(StateDecodeFailed, err)
		}
		if sys != system {
			return snapshot{}, curated.Errorf(StateDecodeFailed, wrongKind(system))
		}
	}

	s, err := b.DecodeState(data)
	if err != nil {
		return snapshot{}, curated.Errorf(StateDecodeFailed, err)
	}
	return snapshot{backend: b, s: s}, nil
}

func wrongKind(system bool) string {
	if system {
		return "not a system state"
	}
	return "not a logic state"
}

// State is a snapshot of the game logic state. The State must be closed when
// it is no longer required.
type State struct {
	snapshot
}

// Clone returns an independent copy of the State.
func (st *State) Clone() *State {
	return &State{st.clone()}
}

// DecodeState reads a State that was written by Encode(). The default engine
// backend is used to reconstruct the snapshot.
func DecodeState(dec codec.Decoder) (*State, error) {
	b, err := engine.Default()
	if err != nil {
		return nil, err
	}
	return DecodeStateWithBackend(b, dec)
}

// DecodeStateWithBackend is the same as DecodeState() but with a specific
// backend.
//
// A serialised SystemState is rejected if the backend implements
// engine.StateKinds. The native engine does not, so the caller must not mix
// the two kinds of state with that backend.
func DecodeStateWithBackend(b engine.Backend, dec codec.Decoder) (*State, error) {
	sn, err := decodeSnapshot(b, dec, false)
	if err != nil {
		return nil, err
	}
	return &State{sn}, nil
}

// SystemState is a snapshot of the entire machine, sufficient to resume
// emulation exactly. The SystemState must be closed when it is no longer
// required.
type SystemState struct {
	snapshot
}

// Clone returns an independent copy of the SystemState.
func (st *SystemState) Clone() *SystemState {
	return &SystemState{st.clone()}
}

// DecodeSystemState reads a SystemState that was written by Encode(). The
// default engine backend is used to reconstruct the snapshot.
func DecodeSystemState(dec codec.Decoder) (*SystemState, error) {
	b, err := engine.Default()
	if err != nil {
		return nil, err
	}
	return DecodeSystemStateWithBackend(b, dec)
}

// DecodeSystemStateWithBackend is the same as DecodeSystemState() but with a
// specific backend. As with DecodeStateWithBackend(), a serialised State is
// only rejected by backends that implement engine.StateKinds.
func DecodeSystemStateWithBackend(b engine.Backend, dec codec.Decoder) (*SystemState, error) {
	sn, err := decodeSnapshot(b, dec, true)
	if err != nil {
		return nil, err
	}
	return &SystemState{sn}, nil
}
