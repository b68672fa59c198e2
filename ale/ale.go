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
	"github.com/jetsetilly/gopherale/curated"
	"github.com/jetsetilly/gopherale/engine"
	"github.com/jetsetilly/gopherale/lease"
	"github.com/jetsetilly/gopherale/logger"
)

// Sentinal error patterns.
const (
	CreateFailed  = "ale: cannot create engine (%s): %v"
	ROMLoadFailed = "ale: cannot load rom (%s): %v"
	CloseFailed   = "ale: cannot close engine: %v"
)

// Patterns used for panics caused by programming errors.
const (
	Consumed     = "ale: session has been consumed or closed"
	StateClosed  = "ale: state has been closed"
	ForeignState = "ale: state belongs to a different backend (%s not %s)"
)

const instanceAdvice = "the engine uses global state and is not thread safe. " +
	"if you need several instances run them in separate processes. " +
	"if you need to use instances one after another on different goroutines " +
	"then arrange the synchronisation yourself (for example with a mutex or by " +
	"sending the instance over a channel)"

// the process-wide lease for the engine instance.
var engineLease = lease.NewManager("ALE instance", instanceAdvice)

// Live returns true if an engine instance currently exists in the process.
func Live() bool {
	return engineLease.Held()
}

// instance is the single owner of an engine and the lease that allowed its
// creation. it moves between ALE and Game values but is never shared by two
// of them.
type instance struct {
	backend engine.Backend
	eng     engine.Engine
	lease   *lease.Lease
}

// close the engine and then release the lease.
func (in *instance) close() error {
	defer in.lease.Release()

	err := in.eng.Close()
	logger.Logf(logger.Allow, "ale", "%s engine destroyed", in.backend.Name())
	if err != nil {
		return curated.Errorf(CloseFailed, err)
	}
	return nil
}

// ALE is an engine instance with no ROM loaded.
type ALE struct {
	Options
}

// New creates an engine instance using the default backend.
func New() (*ALE, error) {
	b, err := engine.Default()
	if err != nil {
		return nil, err
	}
	return NewWithBackend(b)
}

// NewWithBackend creates an engine instance using the backend.
//
// Creating a second instance while another is live is a programming error
// and panics with an error matching the lease.InUse pattern.
func NewWithBackend(b engine.Backend) (*ALE, error) {
	l, err := engineLease.Acquire()
	if err != nil {
		panic(err)
	}

	eng, err := b.NewEngine()
	if err != nil {
		l.Release()
		return nil, curated.Errorf(CreateFailed, b.Name(), err)
	}

	logger.Logf(logger.Allow, "ale", "%s engine created", b.Name())

	return &ALE{
		Options: Options{
			in: &instance{
				backend: b,
				eng:     eng,
				lease:   l,
			},
		},
	}, nil
}

// Backend returns the backend that created the instance.
func (a *ALE) Backend() engine.Backend {
	return a.instance().backend
}

// LoadROM loads the ROM file and returns a Game. The ALE is consumed by a
// successful load. If the load fails the ALE is returned to its previous
// state and can still be used.
func (a *ALE) LoadROM(path string) (*Game, error) {
	in := a.take()
	g, err := load(in, path)
	if err != nil {
		a.in = in
		return nil, err
	}
	return g, nil
}

// Close destroys the engine instance. Closing an ALE that has been closed
// or consumed does nothing.
func (a *ALE) Close() error {
	return a.release()
}

// load the ROM into the instance, wrapping it in a new Game on success.
func load(in *instance, path string) (*Game, error) {
	if err := in.eng.LoadROM(path); err != nil {
		return nil, curated.Errorf(ROMLoadFailed, path, err)
	}
	logger.Logf(logger.Allow, "ale", "loaded rom %s", path)

	return &Game{
		Options: Options{in: in},
		romPath: path,
	}, nil
}
