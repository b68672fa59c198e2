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

package engine

import (
	"sort"
	"sync"

	"github.com/jetsetilly/gopherale/curated"
)

// Sentinal error patterns.
const (
	NoBackend      = "engine: no backend available"
	UnknownBackend = "engine: unknown backend (%s)"
	Duplicate      = "engine: backend already registered (%s)"
)

// NativeName is the name of the backend given preference by Default().
const NativeName = "native"

var registry = struct {
	crit     sync.Mutex
	backends map[string]Backend
}{
	backends: make(map[string]Backend),
}

// Register makes a backend available. It is normally called from the init()
// function of the backend's package. Registering two backends with the same
// name is a programming error and will panic.
func Register(b Backend) {
	registry.crit.Lock()
	defer registry.crit.Unlock()

	if _, ok := registry.backends[b.Name()]; ok {
		panic(curated.Errorf(Duplicate, b.Name()))
	}
	registry.backends[b.Name()] = b
}

// Lookup returns the named backend.
func Lookup(name string) (Backend, error) {
	registry.crit.Lock()
	defer registry.crit.Unlock()

	b, ok := registry.backends[name]
	if !ok {
		return nil, curated.Errorf(UnknownBackend, name)
	}
	return b, nil
}

// Default returns the native backend if it has been registered. Otherwise,
// if exactly one backend has been registered, that backend is returned.
func Default() (Backend, error) {
	registry.crit.Lock()
	defer registry.crit.Unlock()

	if b, ok := registry.backends[NativeName]; ok {
		return b, nil
	}

	if len(registry.backends) == 1 {
		for _, b := range registry.backends {
			return b, nil
		}
	}

	return nil, curated.Errorf(NoBackend)
}

// Backends returns the names of all registered backends in alphabetical
// order.
func Backends() []string {
	registry.crit.Lock()
	defer registry.crit.Unlock()

	n := make([]string, 0, len(registry.backends))
	for k := range registry.backends {
		n = append(n, k)
	}
	sort.Strings(n)
	return n
}
