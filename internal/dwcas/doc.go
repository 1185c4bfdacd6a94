// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package dwcas implements the untyped double-word (128-bit)
// compare-and-swap engine.
//
// The package operates on raw 16-byte-aligned [2]uint64 windows and knows
// nothing about the caller's value types. A single dispatch point,
// CompareExchange, selects between two engines resolved once at process
// start:
//
//   - Hardware: the CPU's double-word CAS instruction (LOCK CMPXCHG16B on
//     amd64), usable only for full 16-byte operands.
//   - Fallback: a striped spin-lock engine providing the same
//     compare/swap/return semantics without lock-freedom. Compiled out by
//     the atomicdouble_nofallback build tag.
//
// Every other operation (Load, Store, Swap, Add, Sub, And, Or, Xor) is
// derived from CompareExchange by retry loops, so both engines only ever
// need to provide the one primitive.
//
// Bit order convention: lo is the first 8 bytes of the window in memory,
// hi the second. On little-endian targets lo therefore holds the low-order
// 64 bits of the 128-bit pattern.
package dwcas
