// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package dwcas

import "github.com/klauspost/cpuid/v2"

// hwProbe reports whether the CPU executes CMPXCHG16B. Queried once at
// package init; the answer cannot change for the process lifetime.
func hwProbe() bool {
	return cpuid.CPU.Supports(cpuid.CX16)
}

// hwCompareExchange executes LOCK CMPXCHG16B on the 16-byte-aligned
// memory at addr. It returns the pre-operation bits in both branches:
// the compared value on success, the actual memory contents on failure.
// Implemented in cas_amd64.s.
//
//go:noescape
func hwCompareExchange(addr *[2]uint64, curLo, curHi, newLo, newHi uint64) (prevLo, prevHi uint64, swapped bool)
