// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Concurrency tests excluded from race detection.
//
// The happens-before edges in these tests run through the double-word
// compare-and-swap (hardware instruction or spin-lock engine), which the
// race detector cannot observe. The tests are correct; they are excluded
// rather than annotated.

//go:build !race

package atomicdouble_test

import (
	"sync"
	"testing"

	"github.com/Abishek0398/AtomicDouble"
)

// =============================================================================
// Mutual Exclusion of Increments
// =============================================================================

// TestFetchAddUniqueIncrements has N goroutines perform exactly one
// FetchAdd(1) each on a zero cell. The final value must be N and the set
// of returned previous values must be exactly {0..N-1}: duplicates or
// gaps would mean two increments interleaved non-atomically.
func TestFetchAddUniqueIncrements(t *testing.T) {
	const n = 64

	runBothPaths(t, func(t *testing.T) {
		a := atomicdouble.NewDefault[Bar]()
		prevs := make([]Bar, n)

		var wg sync.WaitGroup
		for i := range n {
			wg.Add(1)
			go func(slot int) {
				defer wg.Done()
				prevs[slot] = a.FetchAdd(Bar{A: 1}, atomicdouble.SeqCst)
			}(i)
		}
		wg.Wait()

		if got := a.Load(atomicdouble.SeqCst); got != (Bar{A: n}) {
			t.Fatalf("final value: got %+v, want {A:%d}", got, n)
		}

		seen := make(map[uint64]bool, n)
		for _, p := range prevs {
			if p.B != 0 {
				t.Fatalf("previous value with nonzero high field: %+v", p)
			}
			if p.A >= n {
				t.Fatalf("previous value out of range: %d", p.A)
			}
			if seen[p.A] {
				t.Fatalf("duplicate previous value: %d", p.A)
			}
			seen[p.A] = true
		}
	})
}

// =============================================================================
// Torn Read Detection
// =============================================================================

// TestNoTornReads runs writers that only ever store values with equal
// fields while readers assert that invariant. A torn 64-bit half-write
// would surface as a mixed pair.
func TestNoTornReads(t *testing.T) {
	const (
		writers    = 4
		readers    = 4
		iterations = 20000
	)

	runBothPaths(t, func(t *testing.T) {
		a := atomicdouble.NewDefault[Bar]()

		var wg sync.WaitGroup
		for w := range writers {
			wg.Add(1)
			go func(seed uint64) {
				defer wg.Done()
				for i := range uint64(iterations) {
					v := seed*iterations + i
					a.Store(Bar{v, v}, atomicdouble.Release)
				}
			}(uint64(w) + 1)
		}

		errs := make(chan Bar, readers)
		for range readers {
			wg.Add(1)
			go func() {
				defer wg.Done()
				for range iterations {
					got := a.Load(atomicdouble.Acquire)
					if got.A != got.B {
						select {
						case errs <- got:
						default:
						}
						return
					}
				}
			}()
		}

		wg.Wait()
		close(errs)
		if torn, ok := <-errs; ok {
			t.Fatalf("torn read observed: %+v", torn)
		}
	})
}

// =============================================================================
// Compare-Exchange Retry Loops
// =============================================================================

// TestCompareExchangeCounter increments a tagged counter from many
// goroutines using the single-attempt primitive with caller-side
// retries, the way a lock-free algorithm consumes contention failures.
func TestCompareExchangeCounter(t *testing.T) {
	const (
		goroutines = 8
		increments = 1000
	)

	runBothPaths(t, func(t *testing.T) {
		a := atomicdouble.NewDefault[Bar]()

		var wg sync.WaitGroup
		for range goroutines {
			wg.Add(1)
			go func() {
				defer wg.Done()
				for range increments {
					for {
						cur := a.Load(atomicdouble.Acquire)
						next := Bar{A: cur.A + 1, B: cur.B + 1}
						if _, ok := a.CompareExchange(cur, next,
							atomicdouble.AcqRel, atomicdouble.Relaxed); ok {
							break
						}
					}
				}
			}()
		}
		wg.Wait()

		want := Bar{goroutines * increments, goroutines * increments}
		if got := a.Load(atomicdouble.SeqCst); got != want {
			t.Fatalf("final value: got %+v, want %+v", got, want)
		}
	})
}

// TestConcurrentSwapChain passes a token through Swap from many
// goroutines; every handed-out value must come back exactly once.
func TestConcurrentSwapChain(t *testing.T) {
	const n = 32

	runBothPaths(t, func(t *testing.T) {
		a := atomicdouble.New(Bar{A: 0, B: 0})

		prevs := make([]Bar, n)
		var wg sync.WaitGroup
		for i := range n {
			wg.Add(1)
			go func(slot int) {
				defer wg.Done()
				prevs[slot] = a.Swap(Bar{A: uint64(slot) + 1, B: uint64(slot) + 1}, atomicdouble.SeqCst)
			}(i)
		}
		wg.Wait()

		// The initial value plus all swapped-in values, minus the one
		// left in the cell, must each have been returned exactly once.
		final := a.Load(atomicdouble.SeqCst)
		seen := map[uint64]int{final.A: 1}
		for _, p := range prevs {
			seen[p.A]++
		}
		for v := uint64(0); v <= n; v++ {
			if seen[v] != 1 {
				t.Fatalf("value %d observed %d times, want exactly once", v, seen[v])
			}
		}
	})
}
