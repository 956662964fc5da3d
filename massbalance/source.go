// SPDX-License-Identifier: MIT

package massbalance

import "math/rand/v2"

// pcgStream is the fixed PCG increment paired with user seeds.
const pcgStream = 0x9e3779b97f4a7c15

// NormalSource yields standard-normal samples. *rand.Rand satisfies it.
type NormalSource interface {
	NormFloat64() float64
}

// NewSource returns a reproducible PCG-backed source for seed.
func NewSource(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, pcgStream))
}

// newEntropySource seeds a PCG stream from the runtime's entropy.
// Streams built this way cannot be replayed.
func newEntropySource() *rand.Rand {
	return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
}

func (o options) newSource() NormalSource {
	switch {
	case o.source != nil:
		return o.source
	case o.hasSeed:
		return NewSource(o.seed)
	default:
		return newEntropySource()
	}
}
