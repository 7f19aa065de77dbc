// Package rng holds the single random stream that drives a simulation.
//
// Every probabilistic decision in a turn draws from one Source, in a fixed
// order, so a seed fully determines a run.
package rng

import (
	"math"
	"math/rand"
)

// Source is the subset of *rand.Rand the engine draws from.
type Source interface {
	Float64() float64
	NormFloat64() float64
}

// New returns a seeded math/rand generator.
func New(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// Uniform draws from U(min, max).
func Uniform(src Source, min, max float64) float64 {
	return min + src.Float64()*(max-min)
}

// IntRange draws an integer uniformly from [min, max], both inclusive.
func IntRange(src Source, min, max int) int {
	if max <= min {
		return min
	}
	n := min + int(math.Floor(src.Float64()*float64(max-min+1)))
	if n > max {
		n = max
	}
	return n
}

// Chance reports whether an event with probability p fires.
func Chance(src Source, p float64) bool {
	return src.Float64() < p
}

// Normal draws from N(mean, sd).
func Normal(src Source, mean, sd float64) float64 {
	return mean + sd*src.NormFloat64()
}

// Sequence replays fixed draws. Once a slice is exhausted the matching
// fallback is returned forever, which makes it easy to say "nothing else
// fires" (Fallback close to 1).
type Sequence struct {
	Floats       []float64
	Norms        []float64
	Fallback     float64
	NormFallback float64

	fi, ni int
	drawn  int
}

func (s *Sequence) Float64() float64 {
	s.drawn++
	if s.fi < len(s.Floats) {
		v := s.Floats[s.fi]
		s.fi++
		return v
	}
	return s.Fallback
}

func (s *Sequence) NormFloat64() float64 {
	if s.ni < len(s.Norms) {
		v := s.Norms[s.ni]
		s.ni++
		return v
	}
	return s.NormFallback
}

// Drawn returns how many uniform draws have been made, fallbacks included.
func (s *Sequence) Drawn() int { return s.drawn }
