package graph

import "math"

const (
	lcgMultiplier = 9301
	lcgIncrement  = 49297
	lcgModulus    = 233280
)

// Source is anything that yields draws in [0, 1).
type Source interface {
	Next() float64
}

// Sequence is a small linear congruential generator. It is not random in
// any useful statistical sense; it only has to replay the same draws for
// the same seed.
type Sequence struct {
	state float64
}

func NewSequence(seed float64) *Sequence {
	return &Sequence{state: seed}
}

// Next advances the state and returns it scaled into [0, 1).
func (s *Sequence) Next() float64 {
	s.state = math.Mod(s.state*lcgMultiplier+lcgIncrement, lcgModulus)
	return s.state / lcgModulus
}
