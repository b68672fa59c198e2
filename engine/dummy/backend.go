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
	"sync"

	"github.com/jetsetilly/gopherale/curated"
	"github.com/jetsetilly/gopherale/engine"
)

// Name of the backend as registered with the engine package.
const Name = "dummy"

// Sentinal error patterns.
const (
	UnknownSnapshot = "dummy: unknown snapshot (%d)"
	CorruptState    = "dummy: corrupt state: %s"
)

// Backend implements the engine.Backend interface.
type Backend struct {
	crit   sync.Mutex
	next   engine.Snapshot
	states map[engine.Snapshot][]byte
}

// NewBackend creates a new dummy backend. Most users will want the
// registered instance returned by Registered().
func NewBackend() *Backend {
	return &Backend{
		states: make(map[engine.Snapshot][]byte),
	}
}

var registered *Backend

func init() {
	registered = NewBackend()
	engine.Register(registered)
}

// Registered returns the instance registered with the engine package.
func Registered() *Backend {
	return registered
}

// Name implements the engine.Backend interface.
func (b *Backend) Name() string {
	return Name
}

// NewEngine implements the engine.Backend interface.
func (b *Backend) NewEngine() (engine.Engine, error) {
	return newMachine(b), nil
}

// LiveSnapshots returns the number of snapshots that have not been deleted.
func (b *Backend) LiveSnapshots() int {
	b.crit.Lock()
	defer b.crit.Unlock()
	return len(b.states)
}

func (b *Backend) store(data []byte) engine.Snapshot {
	b.crit.Lock()
	defer b.crit.Unlock()
	b.next++
	b.states[b.next] = data
	return b.next
}

func (b *Backend) lookup(s engine.Snapshot) []byte {
	b.crit.Lock()
	defer b.crit.Unlock()
	data, ok := b.states[s]
	if !ok {
		panic(curated.Errorf(UnknownSnapshot, s))
	}
	return data
}

// DeleteState implements the engine.Backend interface.
func (b *Backend) DeleteState(s engine.Snapshot) {
	b.crit.Lock()
	defer b.crit.Unlock()
	if _, ok := b.states[s]; !ok {
		panic(curated.Errorf(UnknownSnapshot, s))
	}
	delete(b.states, s)
}

// EncodeStateLen implements the engine.Backend interface.
func (b *Backend) EncodeStateLen(s engine.Snapshot) int {
	return len(b.lookup(s))
}

// EncodeState implements the engine.Backend interface.
func (b *Backend) EncodeState(s engine.Snapshot, buf []byte) {
	copy(buf, b.lookup(s))
}

// DecodeState implements the engine.Backend interface.
func (b *Backend) DecodeState(data []byte) (engine.Snapshot, error) {
	var st state
	if err := st.unmarshal(data); err != nil {
		return 0, err
	}
	c := make([]byte, len(data))
	copy(c, data)
	return b.store(c), nil
}

// IsSystemState implements the engine.StateKinds interface.
func (b *Backend) IsSystemState(data []byte) (bool, error) {
	var st state
	if err := st.unmarshal(data); err != nil {
		return false, err
	}
	return st.Kind == kindSystem, nil
}
