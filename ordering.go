// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package atomicdouble

import "github.com/Abishek0398/AtomicDouble/internal/dwcas"

// Ordering specifies memory-ordering strength per the standard
// acquire/release/sequentially-consistent model.
//
// This is an alias for [dwcas.Ordering] so orderings flow to the engine
// without conversion.
type Ordering = dwcas.Ordering

const (
	// Relaxed imposes no synchronization, only atomicity.
	Relaxed = dwcas.Relaxed
	// Acquire makes later reads and writes observe writes released before it.
	Acquire = dwcas.Acquire
	// Release publishes earlier reads and writes to acquiring observers.
	Release = dwcas.Release
	// AcqRel combines Acquire on load with Release on store.
	AcqRel = dwcas.AcqRel
	// SeqCst adds a single total order over all SeqCst operations.
	SeqCst = dwcas.SeqCst
)

// strength ranks orderings for the failure-versus-success legality check.
// Acquire and Release are incomparable; both rank between Relaxed and
// AcqRel.
func strength(o Ordering) int {
	switch o {
	case Relaxed:
		return 0
	case Acquire, Release:
		return 1
	case AcqRel:
		return 2
	case SeqCst:
		return 3
	}
	panic("atomicdouble: unknown ordering " + o.String())
}

// checkLoadOrdering rejects orderings that are meaningless for a pure
// read. Surfaced as a panic: silently downgrading would hand the caller
// a memory-ordering bug.
func checkLoadOrdering(order Ordering) {
	strength(order)
	if order == Release || order == AcqRel {
		panic("atomicdouble: invalid ordering for load: " + order.String())
	}
}

// checkStoreOrdering rejects orderings that are meaningless for a pure
// write.
func checkStoreOrdering(order Ordering) {
	strength(order)
	if order == Acquire || order == AcqRel {
		panic("atomicdouble: invalid ordering for store: " + order.String())
	}
}

// checkRMWOrdering validates a read-modify-write ordering. Every known
// ordering is legal for an operation that both reads and writes; only
// out-of-range values are rejected.
func checkRMWOrdering(order Ordering) {
	strength(order)
}

// checkCompareExchangeOrderings validates the success/failure pair: the
// failure ordering cannot be Acquire or AcqRel and cannot be stronger
// than the success ordering.
func checkCompareExchangeOrderings(success, failure Ordering) {
	strength(success)
	if failure == Acquire || failure == AcqRel {
		panic("atomicdouble: invalid failure ordering for compare-exchange: " + failure.String())
	}
	if strength(failure) > strength(success) {
		panic("atomicdouble: failure ordering " + failure.String() +
			" is stronger than success ordering " + success.String())
	}
}
