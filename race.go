// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build race

package atomicdouble

// RaceEnabled is true when the race detector is active.
// Used by tests to skip concurrent stress tests, whose happens-before
// edges run through the double-word CAS and are invisible to the
// detector.
const RaceEnabled = true
