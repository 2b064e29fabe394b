package rng

// Script is a Source that replays fixed values in order.
//
// Ints feeds Intn and Int63, Floats feeds Float64. An exhausted queue yields
// 0. Intn clamps a scripted value into [0, n) so a script written for one
// range never escapes another.
type Script struct {
	Ints   []int
	Floats []float64

	intPos   int
	floatPos int
}

// NewScript returns a Script replaying the given values.
func NewScript(ints []int, floats []float64) *Script {
	return &Script{Ints: ints, Floats: floats}
}

// Intn returns the next scripted int clamped into [0, n).
func (s *Script) Intn(n int) int {
	if n <= 0 {
		panic("rng: Intn called with n <= 0")
	}
	v := s.nextInt()
	switch {
	case v < 0:
		return 0
	case v >= n:
		return n - 1
	default:
		return v
	}
}

// Float64 returns the next scripted float.
func (s *Script) Float64() float64 {
	if s.floatPos >= len(s.Floats) {
		return 0
	}
	v := s.Floats[s.floatPos]
	s.floatPos++
	return v
}

// Int63 returns the next scripted int as an int64.
func (s *Script) Int63() int64 {
	v := s.nextInt()
	if v < 0 {
		return 0
	}
	return int64(v)
}

func (s *Script) nextInt() int {
	if s.intPos >= len(s.Ints) {
		return 0
	}
	v := s.Ints[s.intPos]
	s.intPos++
	return v
}
