// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package dwcas

import (
	"math/bits"

	"code.hybscloud.com/spin"
)

// Width is the operand size of the double-word CAS in bytes.
const Width = 16

// Strategy identifies which engine performs the compare-exchange.
type Strategy uint8

const (
	// Hardware executes the CPU's double-word CAS instruction directly.
	Hardware Strategy = iota
	// Fallback routes through the spin-lock engine.
	Fallback
	// Unsupported means no correct implementation path exists: the CPU
	// lacks the instruction and the fallback is compiled out.
	Unsupported
)

// hwEnabled is resolved by a single CPU probe at process start and treated
// as immutable afterwards (tests excepted, see SetHardware).
var hwEnabled = hwProbe()

// For reports the strategy used for operands of the given width.
// The hardware instruction only operates on full 16-byte patterns; any
// narrower operand takes the fallback engine even on capable CPUs.
func For(width uintptr) Strategy {
	if hwEnabled && width == Width {
		return Hardware
	}
	if fallbackEnabled {
		return Fallback
	}
	return Unsupported
}

// SetHardware overrides the capability probe and returns a restore
// function. Test-only: lets fallback-parity tests run every operation
// through the spin-lock engine on hardware that supports the instruction.
func SetHardware(enabled bool) (restore func()) {
	prev := hwEnabled
	hwEnabled = enabled
	return func() { hwEnabled = prev }
}

// CompareExchange atomically compares the 16 bytes at addr against
// (curLo, curHi) and, if equal, replaces them with (newLo, newHi).
// It returns the pre-operation bits and whether the swap took place.
// On failure the memory is left unmodified.
//
// This is the sole hardware/fallback dispatch point; all other operations
// in this package are retry loops over it. addr must be 16-byte aligned.
//
// The ordering parameters are accepted for contract symmetry with the
// typed surface; both engines already execute at full strength (see
// Ordering), so no per-call downgrade is performed.
func CompareExchange(addr *[2]uint64, width uintptr, curLo, curHi, newLo, newHi uint64, success, failure Ordering) (prevLo, prevHi uint64, swapped bool) {
	switch For(width) {
	case Hardware:
		return hwCompareExchange(addr, curLo, curHi, newLo, newHi)
	case Fallback:
		prevLo, prevHi = fallbackCompareExchange(addr, curLo, curHi, newLo, newHi)
		return prevLo, prevHi, prevLo == curLo && prevHi == curHi
	}
	panic("dwcas: no double-word compare-and-swap engine available")
}

// Load reads the current 16-byte pattern at addr.
//
// There is no double-word load instruction, so the read is a CAS probe
// with current = new = 0. Both branches of the probe yield the true
// current value: a "successful" probe means the cell held all-zero bits
// and rewrote them with the identical zero pattern (a no-op), a "failed"
// probe leaves the cell untouched and reports the actual bits. Either way
// memory is never corrupted.
func Load(addr *[2]uint64, width uintptr, order Ordering) (lo, hi uint64) {
	lo, hi, _ = CompareExchange(addr, width, 0, 0, 0, 0, order, order)
	return lo, hi
}

// Store writes (valLo, valHi) to addr, retrying until the CAS lands.
// The desired value stays fixed while the compare operand is refreshed
// from each failure's payload. The first guess is the value itself, so a
// store of the already-present pattern succeeds on the first attempt.
// Unbounded retries under contention.
func Store(addr *[2]uint64, width uintptr, valLo, valHi uint64, order Ordering) {
	curLo, curHi := valLo, valHi
	sw := spin.Wait{}
	for {
		prevLo, prevHi, ok := CompareExchange(addr, width, curLo, curHi, valLo, valHi, order, order)
		if ok {
			return
		}
		curLo, curHi = prevLo, prevHi
		sw.Once()
	}
}

// Add atomically adds (deltaLo, deltaHi) to the pattern at addr as an
// unsigned 128-bit integer with wraparound and returns the previous bits.
func Add(addr *[2]uint64, width uintptr, deltaLo, deltaHi uint64, order Ordering) (lo, hi uint64) {
	curLo, curHi := Load(addr, width, order)
	sw := spin.Wait{}
	for {
		newLo, carry := bits.Add64(curLo, deltaLo, 0)
		newHi, _ := bits.Add64(curHi, deltaHi, carry)
		prevLo, prevHi, ok := CompareExchange(addr, width, curLo, curHi, newLo, newHi, order, order)
		if ok {
			return prevLo, prevHi
		}
		curLo, curHi = prevLo, prevHi
		sw.Once()
	}
}

// Sub atomically subtracts (deltaLo, deltaHi) from the pattern at addr as
// an unsigned 128-bit integer with wraparound and returns the previous bits.
func Sub(addr *[2]uint64, width uintptr, deltaLo, deltaHi uint64, order Ordering) (lo, hi uint64) {
	curLo, curHi := Load(addr, width, order)
	sw := spin.Wait{}
	for {
		newLo, borrow := bits.Sub64(curLo, deltaLo, 0)
		newHi, _ := bits.Sub64(curHi, deltaHi, borrow)
		prevLo, prevHi, ok := CompareExchange(addr, width, curLo, curHi, newLo, newHi, order, order)
		if ok {
			return prevLo, prevHi
		}
		curLo, curHi = prevLo, prevHi
		sw.Once()
	}
}

// Swap atomically replaces the pattern at addr with (valLo, valHi) and
// returns the previous bits.
func Swap(addr *[2]uint64, width uintptr, valLo, valHi uint64, order Ordering) (lo, hi uint64) {
	return rmw(addr, width, order, func(uint64, uint64) (uint64, uint64) {
		return valLo, valHi
	})
}

// And atomically ANDs (opLo, opHi) into the pattern at addr and returns
// the previous bits.
func And(addr *[2]uint64, width uintptr, opLo, opHi uint64, order Ordering) (lo, hi uint64) {
	return rmw(addr, width, order, func(lo, hi uint64) (uint64, uint64) {
		return lo & opLo, hi & opHi
	})
}

// Or atomically ORs (opLo, opHi) into the pattern at addr and returns
// the previous bits.
func Or(addr *[2]uint64, width uintptr, opLo, opHi uint64, order Ordering) (lo, hi uint64) {
	return rmw(addr, width, order, func(lo, hi uint64) (uint64, uint64) {
		return lo | opLo, hi | opHi
	})
}

// Xor atomically XORs (opLo, opHi) into the pattern at addr and returns
// the previous bits.
func Xor(addr *[2]uint64, width uintptr, opLo, opHi uint64, order Ordering) (lo, hi uint64) {
	return rmw(addr, width, order, func(lo, hi uint64) (uint64, uint64) {
		return lo ^ opLo, hi ^ opHi
	})
}

// rmw is the generic read-modify-write retry loop: read, transform,
// attempt CAS, refresh the compare operand from the failure payload,
// repeat. Returns the pre-operation bits.
func rmw(addr *[2]uint64, width uintptr, order Ordering, f func(lo, hi uint64) (uint64, uint64)) (uint64, uint64) {
	curLo, curHi := Load(addr, width, order)
	sw := spin.Wait{}
	for {
		newLo, newHi := f(curLo, curHi)
		prevLo, prevHi, ok := CompareExchange(addr, width, curLo, curHi, newLo, newHi, order, order)
		if ok {
			return prevLo, prevHi
		}
		curLo, curHi = prevLo, prevHi
		sw.Once()
	}
}
