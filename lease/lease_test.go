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

package lease_test

import (
	"sync"
	"sync/atomic"
	"testing"

	"github.com/jetsetilly/gopherale/curated"
	"github.com/jetsetilly/gopherale/lease"
	"github.com/jetsetilly/gopherale/test"
)

func TestSingleHolder(t *testing.T) {
	mgr := lease.NewManager("widget", "use another process")
	test.ExpectFailure(t, mgr.Held())

	a, err := mgr.Acquire()
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, mgr.Held())

	b, err := mgr.Acquire()
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, b == nil)
	test.ExpectSuccess(t, curated.Is(err, lease.InUse))
	test.ExpectEquality(t, err.Error(), "lease: widget already exists: use another process")

	a.Release()
	test.ExpectFailure(t, mgr.Held())

	c, err := mgr.Acquire()
	test.DemandSuccess(t, err)
	c.Release()
}

func TestDoubleRelease(t *testing.T) {
	mgr := lease.NewManager("widget", "")

	a, err := mgr.Acquire()
	test.DemandSuccess(t, err)
	a.Release()

	b, err := mgr.Acquire()
	test.DemandSuccess(t, err)

	// releasing the stale lease again must not release b
	a.Release()
	test.ExpectSuccess(t, mgr.Held())

	b.Release()
	test.ExpectFailure(t, mgr.Held())
}

func TestSequences(t *testing.T) {
	mgr := lease.NewManager("widget", "")

	var live *lease.Lease
	for i := range 100 {
		if i%3 == 0 && live != nil {
			live.Release()
			live = nil
			continue
		}

		l, err := mgr.Acquire()
		if live == nil {
			test.DemandSuccess(t, err, i)
			live = l
		} else {
			test.DemandFailure(t, err, i)
		}
	}
}

func TestConcurrentAcquire(t *testing.T) {
	mgr := lease.NewManager("widget", "")

	var wg sync.WaitGroup
	var winners atomic.Int32

	start := make(chan struct{})
	for range 32 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start
			if _, err := mgr.Acquire(); err == nil {
				winners.Add(1)
			}
		}()
	}
	close(start)
	wg.Wait()

	test.ExpectEquality(t, winners.Load(), int32(1))
}
