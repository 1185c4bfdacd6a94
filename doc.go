// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package atomicdouble provides a generic double-width (128-bit) atomic
// cell.
//
// A [Double] holds one value of any type T up to 16 bytes and updates it
// as a single indivisible unit. Updating two machine words atomically is
// the classic defense against the ABA problem: pair a value with a
// monotonically changing tag and swap both together, so a stale
// compare-exchange can never succeed against a recycled value.
//
// # Quick Start
//
//	type Versioned struct {
//	    Index uint64 // slot in some table
//	    Tag   uint64 // bumped on every update
//	}
//
//	cell := atomicdouble.New(Versioned{Index: 0, Tag: 0})
//
//	// Read
//	cur := cell.Load(atomicdouble.Acquire)
//
//	// Attempt an ABA-safe update
//	next := Versioned{Index: 7, Tag: cur.Tag + 1}
//	prev, ok := cell.CompareExchange(cur, next,
//	    atomicdouble.AcqRel, atomicdouble.Relaxed)
//	if !ok {
//	    // Another writer won; prev holds the value it installed.
//	}
//
// # Operations
//
// All access goes through explicit memory-ordering parameters:
//
//	Load(order)                                     // no Release/AcqRel
//	Store(v, order)                                 // no Acquire/AcqRel
//	Swap(v, order)
//	CompareExchange(current, new, success, failure) // single attempt
//	FetchAdd(delta, order) / FetchSub(delta, order)
//	FetchAnd(op, order) / FetchOr(op, order) / FetchXor(op, order)
//
// CompareExchange is the one synchronization primitive; every other
// mutating operation is a retry loop built on top of it. It compares bit
// patterns, not domain values: two values that compare equal through an
// Equal method but differ in representation are different to the cell.
//
// FetchAdd and FetchSub interpret the cell's 16 bytes as a single
// unsigned 128-bit integer with wraparound. This is representation-level
// arithmetic, not T's addition; it is what lets a two-field struct such
// as an (index, generation) pair participate in counting at all.
//
// # Ordering Errors
//
// Passing an ordering that is meaningless for an operation is a caller
// bug and panics immediately: Release or AcqRel on a pure read, Acquire
// or AcqRel on a pure write, an Acquire/AcqRel failure ordering on
// CompareExchange, or a failure ordering stronger than the success
// ordering. None of these are ever downgraded silently, because
// proceeding would plant a memory-ordering bug in the caller.
//
// Contention is not an error. A failed CompareExchange returns the
// actual value and ok=false; callers retry with refreshed state:
//
//	backoff := iox.Backoff{}
//	for {
//	    cur := cell.Load(atomicdouble.Acquire)
//	    if _, ok := cell.CompareExchange(cur, bump(cur),
//	        atomicdouble.AcqRel, atomicdouble.Relaxed); ok {
//	        break
//	    }
//	    backoff.Wait()
//	}
//
// # Lock-Freedom and the Fallback Engine
//
// IsLockFree[T] reports true exactly when T is 16 bytes wide and the CPU
// supports a double-word CAS instruction (CMPXCHG16B on amd64, probed
// once at startup). Every other combination (smaller T, other
// architectures) still behaves correctly but routes through a spin-lock
// engine: mutual exclusion, not lock-freedom, so it is unsuitable for
// signal handlers and similarly constrained contexts.
//
// Building with the atomicdouble_nofallback tag removes the spin-lock
// engine. A cell whose type would need it then panics at construction,
// naming the type; the package never silently degrades to non-atomic
// access.
//
// # Exclusive Access
//
// Raw and Inner bypass the atomic discipline entirely. They are sound
// only while the caller holds the sole reference to the cell, e.g. before
// it is shared or after all other goroutines are done with it.
//
// # Garbage Collection
//
// The cell stores T's raw bit pattern in words the collector does not
// scan. Do not make a cell the only reference to a heap object; store an
// index or handle into a table that keeps the object alive, and resolve
// it on the consumer side.
//
// # Race Detection
//
// Go's race detector cannot observe the happens-before edges established
// by the double-word CAS, so concurrent stress tests report false
// positives. Those tests are excluded via //go:build !race; the
// single-goroutine surface is race-clean.
//
// # Dependencies
//
// This package uses [code.hybscloud.com/spin] for busy-waiting in retry
// loops and the fallback spin-lock, [code.hybscloud.com/atomix] for the
// lock word of the fallback engine, and
// [github.com/klauspost/cpuid/v2] as the CPU capability oracle.
// [code.hybscloud.com/iox] provides caller-side backoff in the examples.
package atomicdouble
