package sentiment_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/PabloGalante/interview-coach/internal/adapters/sentiment"
	"github.com/PabloGalante/interview-coach/internal/domain"
)

func TestScoreBlankInputIsZeroDefault(t *testing.T) {
	scorer := sentiment.NewScorer()

	for _, text := range []string{"", "   ", "\t\n"} {
		res := scorer.Score(text)
		assert.Equal(t, domain.SentimentResult{}, res, "blank input %q", text)
	}
}

func TestScorePositiveText(t *testing.T) {
	scorer := sentiment.NewScorer()

	res := scorer.Score("I am really proud of this project, it was a great success and I loved the work.")

	assert.Greater(t, res.Polarity, 0.0)
	assert.Greater(t, res.Subjectivity, 0.0)
}

func TestScoreNegativeText(t *testing.T) {
	scorer := sentiment.NewScorer()

	res := scorer.Score("The project was a terrible failure and I hated every moment of it.")

	assert.Less(t, res.Polarity, 0.0)
}

func TestScoreStaysInRange(t *testing.T) {
	scorer := sentiment.NewScorer()

	for _, text := range []string{
		"I optimized a query from O(n^2) to O(n log n).",
		"Amazing amazing amazing wonderful fantastic!!!",
		"Awful horrible disgusting terrible worst ever!!!",
		"The quarterly report is due on Friday.",
	} {
		res := scorer.Score(text)
		assert.GreaterOrEqual(t, res.Polarity, -1.0, "polarity floor for %q", text)
		assert.LessOrEqual(t, res.Polarity, 1.0, "polarity ceiling for %q", text)
		assert.GreaterOrEqual(t, res.Subjectivity, 0.0, "subjectivity floor for %q", text)
		assert.LessOrEqual(t, res.Subjectivity, 1.0, "subjectivity ceiling for %q", text)
	}
}
