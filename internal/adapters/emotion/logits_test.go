package emotion

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScoresFromLogits(t *testing.T) {
	logits := []float32{0.1, -2.0, 0.3, 3.5, 0.2, -1.0, 1.5}

	scores, err := scoresFromLogits(logits)
	require.NoError(t, err)
	require.Len(t, scores, len(emotionLabels))

	var sum float64
	for label, score := range scores {
		assert.GreaterOrEqual(t, score, 0.0, "label %s", label)
		assert.LessOrEqual(t, score, 100.0, "label %s", label)
		sum += score
	}
	assert.InDelta(t, 100.0, sum, 1e-6, "confidences are percentages")

	assert.Greater(t, scores["happy"], scores["disgust"], "largest logit wins")
}

func TestScoresFromLogitsRejectsWrongClassCount(t *testing.T) {
	// An 8-class export (FERPlus style) must be rejected, not truncated
	// onto the 7-label set.
	for _, n := range []int{0, 6, 8, 10} {
		_, err := scoresFromLogits(make([]float32, n))
		assert.Error(t, err, "%d outputs", n)
	}
}
