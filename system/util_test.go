package system

import "time"

func durationMs(ms int64) time.Duration {
	return time.Duration(ms) * time.Millisecond
}

func chebyshev(r0, c0, r1, c1 int) int {
	dr, dc := r1-r0, c1-c0
	if dr < 0 {
		dr = -dr
	}
	if dc < 0 {
		dc = -dc
	}
	if dr > dc {
		return dr
	}
	return dc
}
