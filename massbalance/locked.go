// SPDX-License-Identifier: MIT

package massbalance

import "sync"

// Locked serializes every call to the wrapped model behind one mutex.
// Use it when several goroutines share a RandomLinear: the cache lookup
// and the stream draw in ELA then happen as one step, so a year is never
// drawn twice.
type Locked struct {
	mu    sync.Mutex
	inner ELAModel
}

// NewLocked wraps m. m must not be used directly afterwards.
func NewLocked(m ELAModel) *Locked {
	return &Locked{inner: m}
}

// ELA forwards to the wrapped model under the lock.
func (l *Locked) ELA(year int) float64 {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.inner.ELA(year)
}

// AnnualMassBalance forwards to the wrapped model under the lock.
func (l *Locked) AnnualMassBalance(heights []float64, year int) []float64 {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.inner.AnnualMassBalance(heights, year)
}
