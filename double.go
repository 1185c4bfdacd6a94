// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package atomicdouble

import (
	"fmt"
	"reflect"
	"unsafe"

	"github.com/Abishek0398/AtomicDouble/internal/dwcas"
)

// Double is a 128-bit atomic cell holding exactly one value of type T.
//
// T must be at most 16 bytes; this is checked by New. Smaller types
// occupy the low-order bytes of the cell, with the remainder zero.
// All operations act on the full 16-byte region as one unit, so no
// observer ever sees a torn value.
//
// A Double must be created by [New] or [NewDefault] and must not be
// copied after first use: the aligned storage window is tied to the
// cell's address.
type Double[T any] struct {
	noCopy noCopy

	// words over-allocates the 16-byte region by one word so that a
	// 16-byte-aligned [2]uint64 window always exists inside it; see addr.
	words [3]uint64
}

// New creates a cell holding the given initial value.
//
// New panics if T is larger than 16 bytes, or if T needs the fallback
// engine on a build that compiled it out (atomicdouble_nofallback): in
// that case no correct implementation path exists and the panic names
// the type rather than degrading to non-atomic access.
func New[T any](initial T) *Double[T] {
	checkType[T]()
	d := &Double[T]{}
	// Not yet shared; a plain write is fine.
	*d.addr() = toBits(initial)
	return d
}

// NewDefault creates a cell holding the zero value of T.
func NewDefault[T any]() *Double[T] {
	var zero T
	return New(zero)
}

// IsLockFree reports whether cells of type T are lock-free: true exactly
// when T is 16 bytes wide and the CPU supports the double-word CAS
// instruction. Any other combination works correctly through the
// spin-lock fallback, which blocks instead of guaranteeing progress.
//
// The answer is a property of the type and platform, not of any cell
// instance, and cannot change during the process lifetime.
func IsLockFree[T any]() bool {
	var zero T
	return dwcas.For(unsafe.Sizeof(zero)) == dwcas.Hardware
}

// Load returns the current value.
//
// Panics if order is Release or AcqRel: those orderings are meaningless
// for a pure read.
func (d *Double[T]) Load(order Ordering) T {
	checkLoadOrdering(order)
	lo, hi := dwcas.Load(d.addr(), width[T](), order)
	return fromBits[T]([2]uint64{lo, hi})
}

// Store replaces the cell's value. Retries internally until the write
// lands; unbounded under pathological contention.
//
// Panics if order is Acquire or AcqRel: those orderings are meaningless
// for a pure write.
func (d *Double[T]) Store(value T, order Ordering) {
	checkStoreOrdering(order)
	b := toBits(value)
	dwcas.Store(d.addr(), width[T](), b[0], b[1], order)
}

// Swap replaces the cell's value and returns the value it replaced.
func (d *Double[T]) Swap(value T, order Ordering) T {
	checkRMWOrdering(order)
	b := toBits(value)
	lo, hi := dwcas.Swap(d.addr(), width[T](), b[0], b[1], order)
	return fromBits[T]([2]uint64{lo, hi})
}

// CompareExchange replaces the cell's value with new if its current bit
// pattern equals current's bit pattern. It returns the pre-operation
// value and whether the swap took place: (current, true) on success,
// (actual, false) on failure with the cell unchanged.
//
// This is the single-attempt primitive. A false return is ordinary
// contention, not an error; callers retry with the returned value as
// their refreshed view.
//
// Equality is bit-pattern equality of T, never a domain-level Equal.
//
// Panics if failure is Acquire or AcqRel, or stronger than success.
func (d *Double[T]) CompareExchange(current, new T, success, failure Ordering) (T, bool) {
	checkCompareExchangeOrderings(success, failure)
	c := toBits(current)
	n := toBits(new)
	prevLo, prevHi, swapped := dwcas.CompareExchange(
		d.addr(), width[T](), c[0], c[1], n[0], n[1], success, failure)
	return fromBits[T]([2]uint64{prevLo, prevHi}), swapped
}

// FetchAdd adds delta's bit pattern to the cell as an unsigned 128-bit
// integer with wraparound and returns the value that was present before
// the update. Representation-level arithmetic, not T's addition.
func (d *Double[T]) FetchAdd(delta T, order Ordering) T {
	checkRMWOrdering(order)
	b := toBits(delta)
	lo, hi := dwcas.Add(d.addr(), width[T](), b[0], b[1], order)
	return fromBits[T]([2]uint64{lo, hi})
}

// FetchSub subtracts delta's bit pattern from the cell as an unsigned
// 128-bit integer with wraparound and returns the previous value.
func (d *Double[T]) FetchSub(delta T, order Ordering) T {
	checkRMWOrdering(order)
	b := toBits(delta)
	lo, hi := dwcas.Sub(d.addr(), width[T](), b[0], b[1], order)
	return fromBits[T]([2]uint64{lo, hi})
}

// FetchAnd ANDs op's bit pattern into the cell and returns the previous
// value.
func (d *Double[T]) FetchAnd(op T, order Ordering) T {
	checkRMWOrdering(order)
	b := toBits(op)
	lo, hi := dwcas.And(d.addr(), width[T](), b[0], b[1], order)
	return fromBits[T]([2]uint64{lo, hi})
}

// FetchOr ORs op's bit pattern into the cell and returns the previous
// value.
func (d *Double[T]) FetchOr(op T, order Ordering) T {
	checkRMWOrdering(order)
	b := toBits(op)
	lo, hi := dwcas.Or(d.addr(), width[T](), b[0], b[1], order)
	return fromBits[T]([2]uint64{lo, hi})
}

// FetchXor XORs op's bit pattern into the cell and returns the previous
// value.
func (d *Double[T]) FetchXor(op T, order Ordering) T {
	checkRMWOrdering(order)
	b := toBits(op)
	lo, hi := dwcas.Xor(d.addr(), width[T](), b[0], b[1], order)
	return fromBits[T]([2]uint64{lo, hi})
}

// Raw returns a pointer to the contained value, bypassing the atomic
// discipline. Sound only while the caller holds exclusive access to the
// cell (for example, before it has been shared with any goroutine).
func (d *Double[T]) Raw() *T {
	return (*T)(unsafe.Pointer(d.addr()))
}

// Inner returns the contained value with a plain, non-atomic read.
// Sound only under the same exclusivity guarantee as Raw.
func (d *Double[T]) Inner() T {
	return *d.Raw()
}

// String returns a debug representation of the cell, reading the value
// with the strongest ordering.
func (d *Double[T]) String() string {
	return fmt.Sprintf("Double(%v)", d.Load(SeqCst))
}

// checkType validates T once at construction: the width bound, and that
// some engine can serve it.
func checkType[T any]() {
	var zero T
	size := unsafe.Sizeof(zero)
	if size > dwcas.Width {
		panic("atomicdouble: type " + reflect.TypeFor[T]().String() +
			" exceeds the 16-byte cell width")
	}
	if dwcas.For(size) == dwcas.Unsupported {
		panic("atomicdouble: atomic operations for type " + reflect.TypeFor[T]().String() +
			" are not available: the CPU lacks a double-word CAS and the fallback engine is compiled out")
	}
}

// width is the operand size handed to the engine. The hardware path is
// only legal for exactly 16-byte types, so the true size of T is passed
// through rather than the physical cell size.
func width[T any]() uintptr {
	var zero T
	return unsafe.Sizeof(zero)
}

// addr returns the 16-byte-aligned [2]uint64 window inside words.
// Go guarantees 8-byte alignment of the array, so one of the first two
// words starts a 16-byte-aligned region. Heap objects do not move, which
// keeps the window stable for the cell's lifetime.
func (d *Double[T]) addr() *[2]uint64 {
	p := unsafe.Pointer(&d.words[0])
	if uintptr(p)%dwcas.Width != 0 {
		p = unsafe.Pointer(&d.words[1])
	}
	return (*[2]uint64)(p)
}

// toBits copies the in-memory representation of v into a zeroed 16-byte
// pattern, low-order bytes first. Byte-copy through a fixed-width
// buffer, never pointer aliasing of caller memory.
func toBits[T any](v T) (b [2]uint64) {
	*(*T)(unsafe.Pointer(&b)) = v
	return b
}

// fromBits reinterprets the low bytes of a 16-byte pattern as a T.
func fromBits[T any](b [2]uint64) T {
	return *(*T)(unsafe.Pointer(&b))
}

// noCopy flags Double to go vet's copylocks check.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}
