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

// Package lease enforces exclusive ownership of a resource that may only
// exist once in the process.
//
// A Manager guards a single resource. Acquire() returns a Lease when the
// resource is free and an error when it is not. The holder of the Lease must
// call Release() when the resource has been destroyed. Typical use is to
// acquire the lease before creating the resource and to release it on every
// path that destroys it:
//
//	l, err := mgr.Acquire()
//	if err != nil {
//		return err
//	}
//	r, err := create()
//	if err != nil {
//		l.Release()
//		return err
//	}
//
// The Manager makes no attempt to serialise access to the resource itself.
// It only guarantees that the lifetimes of two holders never overlap.
package lease

import (
	"sync/atomic"

	"github.com/jetsetilly/gopherale/curated"
)

// InUse is the pattern of the error returned by Acquire() when the resource
// is already leased.
const InUse = "lease: %s already exists: %s"

// Manager guards a single process-wide resource.
type Manager struct {
	resource string
	advice   string
	held     atomic.Bool
}

// NewManager creates a new Manager for the named resource. The advice string
// is included in the error returned when the resource is already in use.
func NewManager(resource string, advice string) *Manager {
	return &Manager{
		resource: resource,
		advice:   advice,
	}
}

// Acquire the lease on the resource.
func (m *Manager) Acquire() (*Lease, error) {
	if !m.held.CompareAndSwap(false, true) {
		return nil, curated.Errorf(InUse, m.resource, m.advice)
	}
	return &Lease{mgr: m}, nil
}

// Held returns true if the resource is currently leased.
func (m *Manager) Held() bool {
	return m.held.Load()
}

// Lease is the exclusive right to hold the resource guarded by a Manager.
type Lease struct {
	mgr      *Manager
	released atomic.Bool
}

// Release the lease. Only the first call has any effect, so a released Lease
// can never clear the flag on behalf of a later holder.
func (l *Lease) Release() {
	if l.released.Swap(true) {
		return
	}
	l.mgr.held.Store(false)
}
