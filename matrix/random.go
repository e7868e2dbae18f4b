// SPDX-License-Identifier: MIT
// Package matrix - random sources shared by the random constructors.
//
// Goals:
//   - Determinism: same seed ⇒ identical matrices across runs and platforms.
//   - Encapsulation: no process-wide generator; every random constructor takes
//     its source explicitly. Wall-clock seeding is an explicit opt-in.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe. Do not share a *rand.Rand across goroutines.
//   - Use DeriveSource to create independent streams for parallel callers.

package matrix

import (
	"math/rand"
	"time"
)

// defaultSeed is the fixed "zero" seed used when callers pass seed==0 or a nil source.
const defaultSeed int64 = 1

// NewSource returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ defaultSeed; otherwise the provided seed verbatim.
func NewSource(seed int64) *rand.Rand {
	s := seed
	if s == 0 {
		s = defaultSeed
	}

	return rand.New(rand.NewSource(s))
}

// NewTimeSeededSource returns a generator seeded from the current wall-clock
// time. Matrices drawn from it differ between invocations.
func NewTimeSeededSource() *rand.Rand {
	return rand.New(rand.NewSource(time.Now().UnixNano()))
}

// DeriveSource creates an independent deterministic stream from base and a
// stream identifier. base==nil uses defaultSeed as the parent; otherwise
// base.Int63() is consumed once so repeated derivations never coincide.
func DeriveSource(base *rand.Rand, stream uint64) *rand.Rand {
	parent := defaultSeed
	if base != nil {
		parent = base.Int63()
	}

	return rand.New(rand.NewSource(mixSeed(parent, stream)))
}

// mixSeed is a SplitMix64 finalizer over (parent, stream).
func mixSeed(parent int64, stream uint64) int64 {
	x := uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31

	return int64(x)
}

// sourceOrDefault maps nil to the deterministic default stream.
func sourceOrDefault(src *rand.Rand) *rand.Rand {
	if src == nil {
		return NewSource(0)
	}

	return src
}
