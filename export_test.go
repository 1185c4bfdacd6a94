// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package atomicdouble

import "github.com/Abishek0398/AtomicDouble/internal/dwcas"

// HasHardware reports whether the running CPU takes the hardware path
// for 16-byte operands. Lets tests assert IsLockFree against the real
// capability instead of assuming the platform.
func HasHardware() bool {
	return dwcas.For(dwcas.Width) == dwcas.Hardware
}

// ForceFallback routes every operation through the spin-lock engine
// until the returned restore function runs. For fallback-parity tests;
// never call it while other goroutines are using cells.
func ForceFallback() (restore func()) {
	return dwcas.SetHardware(false)
}
