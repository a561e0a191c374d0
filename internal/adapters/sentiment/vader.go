// Package sentiment scores answer text with the VADER sentiment lexicon.
// Everything runs locally; no network is involved.
package sentiment

import (
	"strings"

	"github.com/PabloGalante/interview-coach/internal/domain"
	"github.com/jonreiter/govader"
)

// The analyzer loads its lexicon once and is read-only afterwards, so a
// single instance serves every scorer.
var analyzer = govader.NewSentimentIntensityAnalyzer()

type Scorer struct{}

func NewScorer() *Scorer {
	return &Scorer{}
}

// Score implements domain.SentimentScorer. Polarity is the VADER compound
// score in [-1, 1]; subjectivity is the non-neutral proportion of the text
// in [0, 1]. Blank input yields exactly {0, 0} by definition.
func (s *Scorer) Score(text string) domain.SentimentResult {
	if strings.TrimSpace(text) == "" {
		return domain.SentimentResult{}
	}

	scores := analyzer.PolarityScores(text)

	return domain.SentimentResult{
		Polarity:     clamp(scores.Compound, -1, 1),
		Subjectivity: clamp(1-scores.Neutral, 0, 1),
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
