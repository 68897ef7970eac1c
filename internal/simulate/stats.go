package simulate

import (
	"math"

	"github.com/lox/handscore/internal/scoring"
)

// LabelStats tracks how often a label appears across simulated hands and
// how its candidates score.
type LabelStats struct {
	Label      scoring.Label
	Candidates int // candidates with this label across all hands
	Hands      int // hands offering at least one such candidate
	MaxScore   int
	SumScore   float64
	SumScore2  float64 // sum of squares for variance calculation
}

func (s *LabelStats) add(score int) {
	s.Candidates++
	s.SumScore += float64(score)
	s.SumScore2 += float64(score) * float64(score)
	if score > s.MaxScore {
		s.MaxScore = score
	}
}

func (s *LabelStats) merge(o LabelStats) {
	s.Candidates += o.Candidates
	s.Hands += o.Hands
	s.SumScore += o.SumScore
	s.SumScore2 += o.SumScore2
	s.MaxScore = max(s.MaxScore, o.MaxScore)
}

// MeanScore returns the mean score of candidates with this label
func (s *LabelStats) MeanScore() float64 {
	if s.Candidates == 0 {
		return 0
	}
	return s.SumScore / float64(s.Candidates)
}

// Variance returns the sample variance of candidate scores
func (s *LabelStats) Variance() float64 {
	if s.Candidates < 2 {
		return 0
	}
	mean := s.MeanScore()
	return (s.SumScore2 - float64(s.Candidates)*mean*mean) / float64(s.Candidates-1)
}

// StdDev returns the sample standard deviation of candidate scores
func (s *LabelStats) StdDev() float64 {
	return math.Sqrt(math.Max(s.Variance(), 0))
}

// HandRate returns the fraction of hands that offered this label
func (s *LabelStats) HandRate(hands int) float64 {
	if hands == 0 {
		return 0
	}
	return float64(s.Hands) / float64(hands)
}
