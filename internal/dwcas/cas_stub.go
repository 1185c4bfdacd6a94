// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build !amd64

package dwcas

// hwProbe is the capability oracle stub for architectures without a
// double-word CAS implementation. Everything routes through the fallback.
func hwProbe() bool {
	return false
}

// hwCompareExchange is unreachable when hwProbe reports false.
func hwCompareExchange(addr *[2]uint64, curLo, curHi, newLo, newHi uint64) (prevLo, prevHi uint64, swapped bool) {
	panic("dwcas: hardware double-word CAS is not implemented on this architecture")
}
