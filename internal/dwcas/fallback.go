// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build !atomicdouble_nofallback

package dwcas

import (
	"unsafe"

	"code.hybscloud.com/atomix"
	"code.hybscloud.com/spin"
)

// fallbackEnabled reports whether the spin-lock engine is compiled in.
const fallbackEnabled = true

// The fallback engine guards cells with a fixed table of spin-locks
// striped by cell address. Distinct cells may share a lock; that only
// costs contention, never correctness. Each lock sits on its own cache
// line to keep waiters from thrashing their neighbors.
const lockShards = 64

type casLock struct {
	state atomix.Uint64
	_     [64 - 8]byte
}

var locks [lockShards]casLock

// lockFor maps a cell address to its shard. Cells are 16-byte aligned,
// so the low 4 bits carry no information and are shifted out.
func lockFor(addr *[2]uint64) *casLock {
	return &locks[(uintptr(unsafe.Pointer(addr))>>4)&(lockShards-1)]
}

func (l *casLock) lock() {
	sw := spin.Wait{}
	for !l.state.CompareAndSwapAcqRel(0, 1) {
		sw.Once()
	}
}

func (l *casLock) unlock() {
	l.state.StoreRelease(0)
}

// fallbackCompareExchange is the spin-lock rendition of the double-word
// CAS: compare the 16 bytes at addr against the expected bits and swap in
// the desired bits if they match. The previous bits are returned in both
// branches, exactly like the hardware instruction. Mutual exclusion, not
// lock-freedom: a waiter busy-spins until the holder releases.
func fallbackCompareExchange(addr *[2]uint64, expLo, expHi, desLo, desHi uint64) (prevLo, prevHi uint64) {
	l := lockFor(addr)
	l.lock()
	prevLo, prevHi = addr[0], addr[1]
	if prevLo == expLo && prevHi == expHi {
		addr[0], addr[1] = desLo, desHi
	}
	l.unlock()
	return prevLo, prevHi
}
