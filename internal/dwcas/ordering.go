// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package dwcas

// Ordering specifies the memory-ordering strength of an atomic operation,
// following the standard acquire/release model.
//
// Both engines meet or exceed any requested strength: the hardware
// instruction is a locked operation (sequentially consistent on amd64), and
// the fallback engine serializes every access through a spin-lock whose
// acquire/release edges establish the same happens-before relationships.
// The parameter is still threaded through every operation so that ordering
// legality is part of each call site's contract.
type Ordering uint8

const (
	// Relaxed imposes no synchronization, only atomicity.
	Relaxed Ordering = iota
	// Acquire makes later reads and writes observe writes released before it.
	Acquire
	// Release publishes earlier reads and writes to acquiring observers.
	Release
	// AcqRel combines Acquire on load with Release on store.
	AcqRel
	// SeqCst adds a single total order over all SeqCst operations.
	SeqCst
)

// String returns the ordering name as spelled in the constant.
func (o Ordering) String() string {
	switch o {
	case Relaxed:
		return "Relaxed"
	case Acquire:
		return "Acquire"
	case Release:
		return "Release"
	case AcqRel:
		return "AcqRel"
	case SeqCst:
		return "SeqCst"
	}
	return "Ordering(invalid)"
}
