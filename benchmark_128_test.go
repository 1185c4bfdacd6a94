// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build !race

package atomicdouble_test

import (
	"testing"

	"github.com/Abishek0398/AtomicDouble"
)

// =============================================================================
// Single-Goroutine Baselines
// =============================================================================

func BenchmarkLoad(b *testing.B) {
	a := atomicdouble.New(Bar{1, 2})
	b.ResetTimer()
	for range b.N {
		a.Load(atomicdouble.Acquire)
	}
}

func BenchmarkStore(b *testing.B) {
	a := atomicdouble.NewDefault[Bar]()
	b.ResetTimer()
	for i := range b.N {
		a.Store(Bar{uint64(i), uint64(i)}, atomicdouble.Release)
	}
}

func BenchmarkCompareExchange(b *testing.B) {
	a := atomicdouble.NewDefault[Bar]()
	b.ResetTimer()
	for i := range b.N {
		cur := Bar{uint64(i), uint64(i)}
		a.CompareExchange(cur, Bar{uint64(i) + 1, uint64(i) + 1},
			atomicdouble.AcqRel, atomicdouble.Relaxed)
	}
}

func BenchmarkFetchAdd(b *testing.B) {
	a := atomicdouble.NewDefault[Bar]()
	b.ResetTimer()
	for range b.N {
		a.FetchAdd(Bar{A: 1}, atomicdouble.SeqCst)
	}
}

// =============================================================================
// Fallback Engine Baselines
// =============================================================================

func BenchmarkLoadFallback(b *testing.B) {
	restore := atomicdouble.ForceFallback()
	defer restore()

	a := atomicdouble.New(Bar{1, 2})
	b.ResetTimer()
	for range b.N {
		a.Load(atomicdouble.Acquire)
	}
}

func BenchmarkFetchAddFallback(b *testing.B) {
	restore := atomicdouble.ForceFallback()
	defer restore()

	a := atomicdouble.NewDefault[Bar]()
	b.ResetTimer()
	for range b.N {
		a.FetchAdd(Bar{A: 1}, atomicdouble.SeqCst)
	}
}

// =============================================================================
// Contention
// =============================================================================

func BenchmarkFetchAddParallel(b *testing.B) {
	a := atomicdouble.NewDefault[Bar]()
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			a.FetchAdd(Bar{A: 1}, atomicdouble.SeqCst)
		}
	})
}

func BenchmarkCompareExchangeParallel(b *testing.B) {
	a := atomicdouble.NewDefault[Bar]()
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			for {
				cur := a.Load(atomicdouble.Acquire)
				if _, ok := a.CompareExchange(cur, Bar{cur.A + 1, cur.B + 1},
					atomicdouble.AcqRel, atomicdouble.Relaxed); ok {
					break
				}
			}
		}
	})
}
