package llm

import (
	"context"
	"fmt"

	"github.com/PabloGalante/interview-coach/internal/domain"
)

// MockFeedbackClient returns canned markdown feedback without any network.
// Useful for local dev and for the handler/service tests.
type MockFeedbackClient struct {
	// Calls counts GenerateFeedback invocations, so tests can assert how
	// often the service exercises the backend.
	Calls int
}

func NewMockFeedbackClient() *MockFeedbackClient {
	return &MockFeedbackClient{}
}

func (m *MockFeedbackClient) GenerateFeedback(_ context.Context, category domain.Category, answer string) domain.FeedbackResult {
	m.Calls++

	if answerIsBlank(answer) {
		return domain.FeedbackFailed(domain.FailureInvalidInput, blankAnswerMessage)
	}

	markdown := fmt.Sprintf(`## Feedback (%s)

**Content and Relevance:** Your answer addresses the question.

**Structure and Clarity:** Reasonably organized; consider a clearer opening.

**Overall Score/Rating:** Good

> Answer reviewed: %d characters.`, category, len(answer))

	return domain.FeedbackSuccess(markdown)
}
