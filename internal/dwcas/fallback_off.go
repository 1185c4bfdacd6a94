// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build atomicdouble_nofallback

package dwcas

// fallbackEnabled reports whether the spin-lock engine is compiled in.
// With the atomicdouble_nofallback tag the engine is absent and any
// type/platform combination that needs it is Unsupported: construction
// fails loudly rather than degrading to non-atomic behavior.
const fallbackEnabled = false

// fallbackCompareExchange is unreachable: For never returns Fallback
// when the engine is compiled out.
func fallbackCompareExchange(addr *[2]uint64, expLo, expHi, desLo, desHi uint64) (prevLo, prevHi uint64) {
	panic("dwcas: fallback engine compiled out (atomicdouble_nofallback)")
}
