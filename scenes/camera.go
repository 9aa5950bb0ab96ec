package scenes

import "math"

// screenShake jolts the whole playfield for a few frames.
type screenShake struct {
	Intensity float64
	Duration  int // frames
	Elapsed   int
}

// trigger starts a shake. A running shake is only replaced by a stronger one.
func (s *screenShake) trigger(intensity float64, duration int) {
	if s.active() && intensity <= s.Intensity {
		return
	}
	s.Intensity = intensity
	s.Duration = duration
	s.Elapsed = 0
}

func (s *screenShake) active() bool {
	return s.Elapsed < s.Duration
}

// update advances one frame and returns the draw offset.
func (s *screenShake) update() (float64, float64) {
	if !s.active() {
		return 0, 0
	}
	s.Elapsed++

	// Calculate decaying intensity
	progress := float64(s.Duration-s.Elapsed) / float64(s.Duration)
	current := s.Intensity * math.Max(progress, 0)

	return math.Sin(float64(s.Elapsed)*1.1) * current, math.Cos(float64(s.Elapsed)*1.3) * current
}
