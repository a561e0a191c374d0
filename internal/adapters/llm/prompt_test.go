package llm_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/PabloGalante/interview-coach/internal/adapters/llm"
	"github.com/PabloGalante/interview-coach/internal/domain"
)

func TestBuildFeedbackPromptDeterministic(t *testing.T) {
	answer := "I optimized a query from O(n^2) to O(n log n)."

	first := llm.BuildFeedbackPrompt(domain.CategoryTechnical, answer)
	second := llm.BuildFeedbackPrompt(domain.CategoryTechnical, answer)

	require.NotEmpty(t, first)
	assert.Equal(t, first, second, "same inputs must produce a byte-identical document")
}

func TestBuildFeedbackPromptEmbedsInputs(t *testing.T) {
	answer := "In my last role I led a migration to Kubernetes."

	prompt := llm.BuildFeedbackPrompt(domain.CategoryBehavioral, answer)

	assert.Contains(t, prompt, string(domain.CategoryBehavioral))
	assert.Contains(t, prompt, answer)
}

func TestBuildFeedbackPromptEmbedsAnswerVerbatim(t *testing.T) {
	// Textarea answers are usually multi-line and may quote things; they
	// must reach the model exactly as typed, not Go-escaped.
	answer := "First I said \"measure it\".\nThen I profiled the service.\n\tIt dropped p99 by 40%."

	prompt := llm.BuildFeedbackPrompt(domain.CategoryTechnical, answer)

	assert.Contains(t, prompt, answer)
	assert.NotContains(t, prompt, `\n`, "newlines must not be escaped")
	assert.NotContains(t, prompt, `\"`, "quotes must not be escaped")
}

func TestBuildFeedbackPromptListsAllDimensions(t *testing.T) {
	prompt := llm.BuildFeedbackPrompt(domain.CategoryHR, "some answer")

	for _, dimension := range []string{
		"Content and Relevance",
		"Structure and Clarity",
		"Conciseness",
		"Impact and Examples",
		"Strengths",
		"Areas for Improvement",
		"Overall Score/Rating",
	} {
		assert.Contains(t, prompt, dimension)
	}
}
